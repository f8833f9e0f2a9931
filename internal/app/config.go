package app

import (
	"fmt"
	"path/filepath"

	"github.com/atomicstack/imdialog/internal/dialog"
)

// Mode selects which dialog the run presents.
type Mode int

const (
	ModeFile Mode = iota
	ModeInput
	ModeMenu
)

func (m Mode) String() string {
	switch m {
	case ModeFile:
		return "fselect"
	case ModeInput:
		return "inputbox"
	case ModeMenu:
		return "menu"
	default:
		return "unknown"
	}
}

// Front ends.
const (
	FrontendGL  = "gl"
	FrontendTUI = "tui"
)

// Config describes one dialog request and how to present it.
type Config struct {
	Mode      Mode
	Path      string
	Prompt    string
	Initial   string
	Width     int
	Height    int
	RowHeight int
	Items     []dialog.MenuItem

	Frontend          string
	DataDir           string
	FramebufferWidth  int
	FramebufferHeight int
}

// NewDialog builds the dialog model the config asks for. File dialogs start
// from the canonical form of Path.
func (c Config) NewDialog() (*dialog.Dialog, error) {
	switch c.Mode {
	case ModeFile:
		path, err := canonical(c.Path)
		if err != nil {
			return nil, err
		}
		return dialog.NewFile(path, c.Width, c.Height), nil
	case ModeInput:
		return dialog.NewInput(c.Prompt, c.Initial, c.Width, c.Height), nil
	case ModeMenu:
		return dialog.NewMenu(c.Prompt, c.Width, c.Height, c.RowHeight, c.Items), nil
	default:
		return nil, fmt.Errorf("unknown dialog mode %d", c.Mode)
	}
}

func canonical(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("resolve path %q: %w", path, err)
	}
	resolved, err := filepath.EvalSymlinks(abs)
	if err != nil {
		return "", fmt.Errorf("resolve path %q: %w", path, err)
	}
	return resolved, nil
}
