package dialog

import (
	"os"
	"path/filepath"

	"github.com/atomicstack/imdialog/internal/listing"
	"github.com/atomicstack/imdialog/internal/logging/events"
)

// FileDialog browses one directory at a time. Entries are rebuilt from disk
// on every navigation and the selection returns to the first row.
type FileDialog struct {
	path    string
	listing listing.Listing
	cursor  cursor
}

// NewFileDialog lists path, which should already be absolute.
func NewFileDialog(path string) *FileDialog {
	f := &FileDialog{path: filepath.Clean(path)}
	f.Refresh()
	return f
}

// Path is the directory currently shown.
func (f *FileDialog) Path() string { return f.path }

// Entries returns the current listing rows.
func (f *FileDialog) Entries() []listing.Entry { return f.listing.Entries }

// Displays returns the display strings of the current rows.
func (f *FileDialog) Displays() []string { return f.listing.Displays() }

// Len is the number of rows, including the parent entry.
func (f *FileDialog) Len() int { return len(f.listing.Entries) }

// Selected is the index of the highlighted row.
func (f *FileDialog) Selected() int { return f.cursor.index }

// Offset is the first row inside the visible list window.
func (f *FileDialog) Offset() int { return f.cursor.offset }

// Refresh rebuilds the listing for the current path and resets the selection.
func (f *FileDialog) Refresh() {
	f.listing = listing.Build(f.path)
	f.cursor.reset()
}

// Select highlights row i. Out-of-range indices are ignored.
func (f *FileDialog) Select(i int) bool {
	if !f.cursor.set(len(f.listing.Entries), i) {
		return false
	}
	events.Dialog.Cursor(KindFile.String(), f.cursor.index)
	return true
}

func (f *FileDialog) MoveUp() bool   { return f.move(-1) }
func (f *FileDialog) MoveDown() bool { return f.move(1) }

func (f *FileDialog) Home() bool {
	return f.traced(f.cursor.home(len(f.listing.Entries)))
}

func (f *FileDialog) End() bool {
	return f.traced(f.cursor.end(len(f.listing.Entries)))
}

func (f *FileDialog) PageUp(rows int) bool {
	return f.traced(f.cursor.pageUp(len(f.listing.Entries), rows))
}

func (f *FileDialog) PageDown(rows int) bool {
	return f.traced(f.cursor.pageDown(len(f.listing.Entries), rows))
}

// Scroll moves the visible window without changing the selection.
func (f *FileDialog) Scroll(rows, delta int) bool {
	return f.cursor.scroll(len(f.listing.Entries), rows, delta)
}

// EnsureVisible keeps the selection inside a window of rows entries.
func (f *FileDialog) EnsureVisible(rows int) {
	f.cursor.ensureVisible(len(f.listing.Entries), rows)
}

func (f *FileDialog) move(delta int) bool {
	return f.traced(f.cursor.moveBy(len(f.listing.Entries), delta))
}

func (f *FileDialog) traced(moved bool) bool {
	if moved {
		events.Dialog.Cursor(KindFile.String(), f.cursor.index)
	}
	return moved
}

// SelectedPath returns the absolute path the highlighted row points at.
func (f *FileDialog) SelectedPath() (string, listing.Kind, bool) {
	entries := f.listing.Entries
	if len(entries) == 0 {
		return "", 0, false
	}
	e := entries[f.cursor.index]
	if e.Kind == listing.KindUp {
		parent, ok := listing.Parent(f.path)
		return parent, e.Kind, ok
	}
	return filepath.Join(f.path, e.Name), e.Kind, true
}

// Confirm acts on the highlighted row: the parent entry and directories
// navigate, a file resolves the dialog with its absolute path.
func (f *FileDialog) Confirm() Resolution {
	target, kind, ok := f.SelectedPath()
	if !ok {
		return Resolution{}
	}
	switch kind {
	case listing.KindUp, listing.KindDir:
		f.navigate(target)
		return Resolution{}
	default:
		if _, err := os.Lstat(target); err != nil {
			// vanished since the listing was built
			f.Refresh()
			return Resolution{}
		}
		return accept(KindFile, target)
	}
}

// ConfirmAt selects row i and confirms it in one step, as a click does.
func (f *FileDialog) ConfirmAt(i int) Resolution {
	if i < 0 || i >= len(f.listing.Entries) {
		return Resolution{}
	}
	f.Select(i)
	return f.Confirm()
}

func (f *FileDialog) navigate(to string) {
	from := f.path
	f.path = filepath.Clean(to)
	f.Refresh()
	events.Dialog.Navigate(from, f.path, len(f.listing.Entries))
}
