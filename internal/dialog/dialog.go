// Package dialog holds the state machine behind the three dialog kinds. Every
// mutation happens through methods on the concrete subdialogs; confirming or
// cancelling yields a Resolution, and a resolved Resolution is terminal for
// the run.
package dialog

import (
	"github.com/atomicstack/imdialog/internal/logging/events"
)

// Exit codes reported by a resolved dialog.
const (
	CodeAccept = 0
	CodeCancel = 1
)

// Kind names the live subdialog variant.
type Kind int

const (
	KindFile Kind = iota
	KindInput
	KindMenu
)

func (k Kind) String() string {
	switch k {
	case KindFile:
		return "file"
	case KindInput:
		return "input"
	case KindMenu:
		return "menu"
	default:
		return "unknown"
	}
}

// Resolution is the exit decision of a dialog. The zero value means the
// dialog is still active.
type Resolution struct {
	Resolved bool
	Code     int
	Output   string
}

// Accepted reports whether the dialog resolved with the accept code.
func (r Resolution) Accepted() bool {
	return r.Resolved && r.Code == CodeAccept
}

func accept(kind Kind, output string) Resolution {
	events.Dialog.Resolve(kind.String(), CodeAccept, output)
	return Resolution{Resolved: true, Code: CodeAccept, Output: output}
}

func cancel(kind Kind) Resolution {
	events.Dialog.Resolve(kind.String(), CodeCancel, "")
	return Resolution{Resolved: true, Code: CodeCancel}
}

// Subdialog is implemented by *FileDialog, *InputDialog and *MenuDialog only.
type Subdialog interface {
	isSubdialog()
}

func (*FileDialog) isSubdialog()  {}
func (*InputDialog) isSubdialog() {}
func (*MenuDialog) isSubdialog()  {}

// Dialog is the top-level model: a requested window size and exactly one
// live subdialog.
type Dialog struct {
	Width  int
	Height int
	Sub    Subdialog
}

// NewFile builds a file-selection dialog rooted at path.
func NewFile(path string, width, height int) *Dialog {
	return &Dialog{Width: width, Height: height, Sub: NewFileDialog(path)}
}

// NewInput builds a text-input dialog seeded with initial.
func NewInput(prompt, initial string, width, height int) *Dialog {
	return &Dialog{Width: width, Height: height, Sub: NewInputDialog(prompt, initial)}
}

// NewMenu builds a tagged menu dialog.
func NewMenu(prompt string, width, height, rowHeight int, items []MenuItem) *Dialog {
	return &Dialog{Width: width, Height: height, Sub: NewMenuDialog(prompt, rowHeight, items)}
}

// Kind reports the live variant.
func (d *Dialog) Kind() Kind {
	switch d.Sub.(type) {
	case *FileDialog:
		return KindFile
	case *InputDialog:
		return KindInput
	case *MenuDialog:
		return KindMenu
	default:
		panic("dialog: unknown subdialog")
	}
}

// Cancel resolves any variant with the cancel code.
func (d *Dialog) Cancel() Resolution {
	return cancel(d.Kind())
}

// Abort is the escape action. It bypasses confirm semantics, including an
// edit in progress, and resolves with the cancel code.
func (d *Dialog) Abort() Resolution {
	return cancel(d.Kind())
}

// Confirm performs the variant's default accept action: the selected entry
// for files and menus, submission for text input.
func (d *Dialog) Confirm() Resolution {
	switch sub := d.Sub.(type) {
	case *FileDialog:
		return sub.Confirm()
	case *InputDialog:
		return sub.Submit()
	case *MenuDialog:
		return sub.SelectCurrent()
	default:
		panic("dialog: unknown subdialog")
	}
}
