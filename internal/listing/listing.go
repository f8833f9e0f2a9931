package listing

import (
	"errors"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/atomicstack/imdialog/internal/logging/events"
)

const (
	// UpLabel is the display string of the synthetic parent entry.
	UpLabel = "Up one level"
	// DirMarker is appended to directory display strings.
	DirMarker = "/"
)

var errNotDirectory = errors.New("not a directory")

// Kind distinguishes the synthetic parent entry from real children.
type Kind int

const (
	KindUp Kind = iota
	KindDir
	KindFile
)

func (k Kind) String() string {
	switch k {
	case KindUp:
		return "up"
	case KindDir:
		return "dir"
	case KindFile:
		return "file"
	default:
		return "unknown"
	}
}

// Entry is one display-ready row of a directory listing.
type Entry struct {
	Name    string
	Display string
	Kind    Kind
}

// Listing is the ordered content of a single directory.
type Listing struct {
	Path    string
	Entries []Entry
}

// Len reports the number of entries, including the parent entry.
func (l Listing) Len() int {
	return len(l.Entries)
}

// Displays returns the display strings in listing order.
func (l Listing) Displays() []string {
	out := make([]string, len(l.Entries))
	for i, e := range l.Entries {
		out[i] = e.Display
	}
	return out
}

// HasUp reports whether the first entry is the synthetic parent entry.
func (l Listing) HasUp() bool {
	return len(l.Entries) > 0 && l.Entries[0].Kind == KindUp
}

// Parent returns the parent of path and whether one exists.
func Parent(path string) (string, bool) {
	clean := filepath.Clean(path)
	parent := filepath.Dir(clean)
	if parent == clean {
		return "", false
	}
	return parent, true
}

// Build lists the direct children of path. Any failure to stat or read the
// directory yields an empty listing rather than an error.
func Build(path string) Listing {
	out := Listing{Path: path}
	info, err := os.Stat(path)
	if err != nil {
		events.Listing.Failed(path, err)
		return out
	}
	if !info.IsDir() {
		events.Listing.Failed(path, errNotDirectory)
		return out
	}
	dirents, err := os.ReadDir(path)
	if err != nil {
		events.Listing.Failed(path, err)
		return out
	}

	entries := make([]Entry, 0, len(dirents)+1)
	skipped := 0
	for _, d := range dirents {
		name := d.Name()
		if !displayable(name) {
			skipped++
			continue
		}
		entry := Entry{Name: name, Display: name, Kind: KindFile}
		if isDir(filepath.Join(path, name), d) {
			entry.Kind = KindDir
			entry.Display = name + DirMarker
		}
		entries = append(entries, entry)
	}
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Display < entries[j].Display
	})

	if _, ok := Parent(path); ok {
		entries = append([]Entry{{Display: UpLabel, Kind: KindUp}}, entries...)
	}
	out.Entries = entries
	events.Listing.Built(path, len(entries), skipped)
	return out
}

// isDir follows symlinks so a link to a directory navigates like one.
func isDir(full string, d os.DirEntry) bool {
	if d.IsDir() {
		return true
	}
	if d.Type()&os.ModeSymlink == 0 {
		return false
	}
	info, err := os.Stat(full)
	return err == nil && info.IsDir()
}

func displayable(name string) bool {
	return utf8.ValidString(name) && !strings.ContainsRune(name, 0)
}
