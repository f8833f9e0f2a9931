// Package resources finds the data files the graphical front end needs at
// startup.
package resources

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"

	"github.com/atomicstack/imdialog/internal/logging/events"
)

// Data file names.
const (
	Font           = "Muli.ttf"
	VertexShader   = "imgui.vs.glsl"
	FragmentShader = "imgui.fs.glsl"
)

// Prefix is the directory under each XDG data dir that holds the files.
const Prefix = "imdialog"

// ErrMissing is matched by every MissingError.
var ErrMissing = errors.New("data file not found")

// MissingError names a data file that no search location provided.
type MissingError struct {
	Name     string
	Searched []string
}

func (e *MissingError) Error() string {
	return fmt.Sprintf("error: couldn't find data file `%s`: try installing it to `~/.local/share/%s/%s` or `/usr/local/share/%s/%s`",
		e.Name, Prefix, e.Name, Prefix, e.Name)
}

func (e *MissingError) Is(target error) bool { return target == ErrMissing }

// Set holds the resolved paths of every data file.
type Set struct {
	Font           string
	VertexShader   string
	FragmentShader string
}

// Locate resolves name by looking in dataDir (when set), then the XDG data
// directories under Prefix, then the working directory.
func Locate(name, dataDir string) (string, error) {
	var searched []string
	if dataDir != "" {
		candidate := filepath.Join(dataDir, name)
		searched = append(searched, candidate)
		if isFile(candidate) {
			events.Resource.Found(name, candidate)
			return candidate, nil
		}
	}

	if path, err := xdg.SearchDataFile(filepath.Join(Prefix, name)); err == nil {
		events.Resource.Found(name, path)
		return path, nil
	}
	searched = append(searched, xdgCandidates(name)...)

	searched = append(searched, name)
	if isFile(name) {
		abs, err := filepath.Abs(name)
		if err != nil {
			abs = name
		}
		events.Resource.Found(name, abs)
		return abs, nil
	}

	events.Resource.Missing(name, searched)
	return "", &MissingError{Name: name, Searched: searched}
}

// LocateAll resolves the font and both shaders, stopping at the first
// missing file.
func LocateAll(dataDir string) (Set, error) {
	var set Set
	targets := []struct {
		name string
		dst  *string
	}{
		{VertexShader, &set.VertexShader},
		{FragmentShader, &set.FragmentShader},
		{Font, &set.Font},
	}
	for _, target := range targets {
		path, err := Locate(target.name, dataDir)
		if err != nil {
			return Set{}, err
		}
		*target.dst = path
	}
	return set, nil
}

// Read loads a resolved data file.
func Read(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read data file: %w", err)
	}
	return data, nil
}

func xdgCandidates(name string) []string {
	dirs := append([]string{xdg.DataHome}, xdg.DataDirs...)
	out := make([]string, 0, len(dirs))
	for _, dir := range dirs {
		if dir == "" {
			continue
		}
		out = append(out, filepath.Join(dir, Prefix, name))
	}
	return out
}

func isFile(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
