package tui

import (
	"fmt"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/atomicstack/imdialog/internal/dialog"
	"github.com/atomicstack/imdialog/internal/testutil"
)

func TestHarnessFileDialogSelectsNestedFile(t *testing.T) {
	root := testutil.MakeTree(t, "docs/", "docs/readme.txt", "zeta.txt")
	h := NewHarness(NewModel(dialog.NewFile(root, 400, 300)))
	h.Send(tea.WindowSizeMsg{Width: 80, Height: 24})

	// Up one level, docs/, zeta.txt
	h.Press(tea.KeyDown)
	h.Press(tea.KeyEnter)
	if h.Done() {
		t.Fatalf("expected directory entry to navigate, not resolve")
	}
	f := h.Model().Dialog().Sub.(*dialog.FileDialog)
	if f.Path() != filepath.Join(root, "docs") {
		t.Fatalf("expected path %q, got %q", filepath.Join(root, "docs"), f.Path())
	}
	if !strings.Contains(h.View(), "readme.txt") {
		t.Fatalf("expected listing in view, got:\n%s", h.View())
	}

	h.Press(tea.KeyDown)
	h.Press(tea.KeyEnter)
	res := h.Model().Result()
	if !res.Resolution.Accepted() {
		t.Fatalf("expected accepted resolution, got %#v", res)
	}
	if want := filepath.Join(root, "docs", "readme.txt"); res.Resolution.Output != want {
		t.Fatalf("expected output %q, got %q", want, res.Resolution.Output)
	}
	if h.View() != "" {
		t.Fatalf("expected empty view after resolution")
	}
}

func TestHarnessFileDialogGoUpAndCancelButton(t *testing.T) {
	root := testutil.MakeTree(t, "sub/")
	h := NewHarness(NewModel(dialog.NewFile(filepath.Join(root, "sub"), 400, 300)))

	h.Press(tea.KeyEnter)
	f := h.Model().Dialog().Sub.(*dialog.FileDialog)
	if f.Path() != root {
		t.Fatalf("expected go-up to %q, got %q", root, f.Path())
	}

	h.Press(tea.KeyShiftTab)
	h.Press(tea.KeyEnter)
	res := h.Model().Result()
	if !res.Resolution.Resolved || res.Resolution.Code != dialog.CodeCancel {
		t.Fatalf("expected cancel resolution, got %#v", res)
	}
}

func TestHarnessInputDialogEditsAndSubmits(t *testing.T) {
	h := NewHarness(NewModel(dialog.NewInput("Name?", "rob", 300, 100)))
	if !strings.Contains(h.View(), "Name?") {
		t.Fatalf("expected prompt in view, got:\n%s", h.View())
	}

	h.Type("x")
	h.Press(tea.KeyBackspace)
	h.Type("ert smith")
	h.Press(tea.KeyCtrlW)
	h.Type("jones")
	h.Press(tea.KeyHome)
	h.Press(tea.KeyDelete)
	h.Type("R")
	d := h.Model().Dialog().Sub.(*dialog.InputDialog)
	if d.Text() != "Robert jones" {
		t.Fatalf("expected edited text %q, got %q", "Robert jones", d.Text())
	}

	h.Press(tea.KeyTab)
	h.Press(tea.KeyEnter)
	res := h.Model().Result()
	if !res.Resolution.Accepted() || res.Resolution.Output != "Robert jones" {
		t.Fatalf("expected OK to submit %q, got %#v", "Robert jones", res)
	}
}

func TestHarnessInputDialogPaste(t *testing.T) {
	h := NewHarness(NewModel(dialog.NewInput("Path?", "", 300, 100)))
	h.Send(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("/tmp/a b"), Paste: true})
	h.Press(tea.KeyEnter)
	res := h.Model().Result()
	if res.Resolution.Output != "/tmp/a b" {
		t.Fatalf("expected pasted text, got %q", res.Resolution.Output)
	}
}

func TestHarnessEscapeAbortsMidEdit(t *testing.T) {
	h := NewHarness(NewModel(dialog.NewInput("Name?", "", 300, 100)))
	h.Type("draft")
	h.Press(tea.KeyEsc)
	res := h.Model().Result()
	if !res.Resolution.Resolved || res.Resolution.Code != dialog.CodeCancel || res.Resolution.Output != "" {
		t.Fatalf("expected cancel with no output, got %#v", res)
	}
}

func TestHarnessMenuSelectsSecondRow(t *testing.T) {
	h := NewHarness(NewModel(pickOne()))
	view := h.View()
	for _, want := range []string{"Pick one", "y", "yes", "n", "no", "Cancel"} {
		if !strings.Contains(view, want) {
			t.Fatalf("expected %q in view, got:\n%s", want, view)
		}
	}
	h.Press(tea.KeyDown)
	h.Press(tea.KeyEnter)
	res := h.Model().Result()
	if !res.Resolution.Accepted() || res.Resolution.Output != "n" {
		t.Fatalf("expected tag n, got %#v", res)
	}
}

func TestHarnessMenuFilterNarrowsRows(t *testing.T) {
	items := make([]dialog.MenuItem, 0, 12)
	for i := 0; i < 12; i++ {
		items = append(items, dialog.MenuItem{Tag: fmt.Sprintf("t%02d", i), Label: fmt.Sprintf("item %d", i)})
	}
	items = append(items, dialog.MenuItem{Tag: "apple", Label: "fruit"})
	h := NewHarness(NewModel(dialog.NewMenu("Pick", 0, 0, 0, items)))
	h.Send(tea.WindowSizeMsg{Width: 60, Height: 12})

	h.Type("appl")
	m := h.Model().Dialog().Sub.(*dialog.MenuDialog)
	if m.Filter() != "appl" {
		t.Fatalf("expected filter appl, got %q", m.Filter())
	}
	if !strings.Contains(h.View(), "/appl") {
		t.Fatalf("expected filter line in view, got:\n%s", h.View())
	}
	h.Press(tea.KeyBackspace)
	if m.Filter() != "app" {
		t.Fatalf("expected filter app after backspace, got %q", m.Filter())
	}
	h.Press(tea.KeyEnter)
	res := h.Model().Result()
	if res.Resolution.Output != "apple" {
		t.Fatalf("expected filtered selection apple, got %#v", res)
	}
}

func TestHarnessMenuKeepsCursorVisible(t *testing.T) {
	items := make([]dialog.MenuItem, 0, 30)
	for i := 0; i < 30; i++ {
		items = append(items, dialog.MenuItem{Tag: fmt.Sprintf("row-%02d", i)})
	}
	h := NewHarness(NewModel(dialog.NewMenu("Pick", 0, 0, 0, items)))
	h.Send(tea.WindowSizeMsg{Width: 60, Height: 15})
	h.Press(tea.KeyEnd)
	view := h.View()
	if !strings.Contains(view, "row-29") {
		t.Fatalf("expected last row visible after end, got:\n%s", view)
	}
	if strings.Contains(view, "row-00") {
		t.Fatalf("expected first row scrolled out, got:\n%s", view)
	}

	h.Send(tea.MouseMsg{Button: tea.MouseButtonWheelUp})
	m := h.Model().Dialog().Sub.(*dialog.MenuDialog)
	if m.Cursor() != 29 {
		t.Fatalf("expected wheel to leave the cursor alone, got %d", m.Cursor())
	}
	if !strings.Contains(h.View(), fmt.Sprintf("row-%02d", m.Offset())) {
		t.Fatalf("expected scrolled offset row in view")
	}
}
