package ui

import (
	"path/filepath"
	"testing"

	"github.com/atomicstack/imdialog/internal/dialog"
	"github.com/atomicstack/imdialog/internal/input"
	"github.com/atomicstack/imdialog/internal/testutil"
	"github.com/atomicstack/imdialog/internal/theme"
	"github.com/atomicstack/imdialog/internal/ui/draw"
	"github.com/atomicstack/imdialog/internal/ui/font"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/font/basicfont"
)

func newTestSession(t *testing.T) *Session {
	t.Helper()
	atlas, err := font.Build(basicfont.Face7x13, basicfont.Face7x13)
	require.NoError(t, err)
	return NewSession(NewContext(atlas, theme.DefaultPalette().Packed()), 800, 600)
}

func keys(ks ...input.Key) input.Snapshot {
	var s input.Snapshot
	for _, k := range ks {
		s = s.WithPressed(input.Chord{Key: k})
	}
	return s
}

func chord(k input.Key, m input.Mods) input.Snapshot {
	return input.Snapshot{}.WithPressed(input.Chord{Key: k, Mods: m})
}

func typed(text string) input.Snapshot {
	return input.Snapshot{Text: []string{text}}
}

func pointer(x, y float32, down bool) input.Snapshot {
	var s input.Snapshot
	s.Pointer.X, s.Pointer.Y = x, y
	s.Pointer.Buttons[input.ButtonLeft] = down
	return s
}

// click presses and releases the left button at the centre of the widget.
func click(t *testing.T, s *Session, d *dialog.Dialog, id ID) dialog.Resolution {
	t.Helper()
	r, ok := s.Context().rects[id]
	require.True(t, ok, "widget %s not laid out", id)
	x, y := (r.MinX+r.MaxX)/2, (r.MinY+r.MaxY)/2
	res, _ := s.Frame(d, pointer(x, y, true))
	require.False(t, res.Resolved, "press alone must not resolve")
	res, _ = s.Frame(d, pointer(x, y, false))
	return res
}

func TestFileSessionKeyboard(t *testing.T) {
	root := testutil.MakeTree(t, "a/", "a/inner.txt", "b.txt")
	d := dialog.NewFile(root, 400, 300)
	f := d.Sub.(*dialog.FileDialog)
	s := newTestSession(t)

	res, frame := s.Frame(d, input.Snapshot{})
	require.False(t, res.Resolved)
	assert.Greater(t, frame.CommandCount(), 0)

	s.Frame(d, keys(input.KeyDown))
	assert.Equal(t, 1, f.Selected())
	res, _ = s.Frame(d, keys(input.KeyEnter))
	require.False(t, res.Resolved)
	assert.Equal(t, filepath.Join(root, "a"), f.Path())
	assert.Equal(t, 0, f.Selected())

	res, _ = s.Frame(d, keys(input.KeyKeypadEnter))
	require.False(t, res.Resolved)
	assert.Equal(t, root, f.Path())

	s.Frame(d, keys(input.KeyEnd))
	res, _ = s.Frame(d, keys(input.KeyEnter))
	require.True(t, res.Accepted())
	assert.Equal(t, filepath.Join(root, "b.txt"), res.Output)
}

func TestFileSessionClickEntryConfirms(t *testing.T) {
	root := testutil.MakeTree(t, "a/", "b.txt")
	d := dialog.NewFile(root, 400, 300)
	s := newTestSession(t)
	s.Frame(d, input.Snapshot{})

	res := click(t, s, d, "list:entries#2")
	require.True(t, res.Accepted())
	assert.Equal(t, filepath.Join(root, "b.txt"), res.Output)
}

func TestCancelButtonClick(t *testing.T) {
	d := dialog.NewFile(t.TempDir(), 400, 300)
	s := newTestSession(t)
	s.Frame(d, input.Snapshot{})

	res := click(t, s, d, "button:Cancel")
	assert.True(t, res.Resolved)
	assert.Equal(t, dialog.CodeCancel, res.Code)
	assert.Empty(t, res.Output)
}

func TestPressReleaseOnDifferentWidgetsIsNotAClick(t *testing.T) {
	d := dialog.NewInput("Name", "x", 400, 300)
	s := newTestSession(t)
	s.Frame(d, input.Snapshot{})
	ok := s.Context().rects["button:OK"]
	cancel := s.Context().rects["button:Cancel"]

	s.Frame(d, pointer(ok.MinX+1, ok.MinY+1, true))
	res, _ := s.Frame(d, pointer(cancel.MinX+1, cancel.MinY+1, false))
	assert.False(t, res.Resolved)
}

func TestInputSessionEditAndSubmit(t *testing.T) {
	d := dialog.NewInput("Name", "abc", 400, 300)
	in := d.Sub.(*dialog.InputDialog)
	s := newTestSession(t)
	s.Frame(d, input.Snapshot{})

	s.Frame(d, typed("d"))
	assert.Equal(t, "abcd", in.Text())
	s.Frame(d, keys(input.KeyBackspace, input.KeyLeft))
	assert.Equal(t, "abc", in.Text())
	assert.Equal(t, 2, in.Cursor())
	s.Frame(d, chord(input.KeyU, input.ModCtrl))
	assert.Equal(t, "", in.Text())
	s.Frame(d, typed("héllo"))

	res, _ := s.Frame(d, keys(input.KeyEnter))
	require.True(t, res.Accepted())
	assert.Equal(t, "héllo", res.Output)
}

func TestInputSessionSubmitUnchanged(t *testing.T) {
	d := dialog.NewInput("Name", "initial text", 400, 300)
	s := newTestSession(t)
	s.Frame(d, input.Snapshot{})
	res := click(t, s, d, "button:OK")
	require.True(t, res.Accepted())
	assert.Equal(t, "initial text", res.Output)
}

func TestTabCyclesFocus(t *testing.T) {
	d := dialog.NewInput("Name", "x", 400, 300)
	s := newTestSession(t)
	s.Frame(d, input.Snapshot{})
	assert.Equal(t, ID("input:text"), s.Context().focus)

	s.Frame(d, keys(input.KeyTab))
	assert.Equal(t, ID("button:OK"), s.Context().focus)
	s.Frame(d, keys(input.KeyTab))
	assert.Equal(t, ID("button:Cancel"), s.Context().focus)
	s.Frame(d, keys(input.KeyTab))
	assert.Equal(t, ID("input:text"), s.Context().focus)
	s.Frame(d, chord(input.KeyTab, input.ModShift))
	assert.Equal(t, ID("button:Cancel"), s.Context().focus)

	res, _ := s.Frame(d, keys(input.KeyEnter))
	assert.True(t, res.Resolved)
	assert.Equal(t, dialog.CodeCancel, res.Code)
}

func TestMenuSessionScenario(t *testing.T) {
	d := dialog.NewMenu("Pick one", 300, 200, 24, []dialog.MenuItem{
		{Tag: "yes", Label: "Confirm"},
		{Tag: "no", Label: "Abort"},
	})
	s := newTestSession(t)
	s.Frame(d, input.Snapshot{})

	res := click(t, s, d, "list:items#1")
	require.True(t, res.Accepted())
	assert.Equal(t, "no", res.Output)
}

func TestMenuSessionKeyboardAndFilter(t *testing.T) {
	d := dialog.NewMenu("Pick one", 300, 200, 24, []dialog.MenuItem{
		{Tag: "yes", Label: "Confirm"},
		{Tag: "no", Label: "Abort"},
		{Tag: "maybe", Label: "Later"},
	})
	m := d.Sub.(*dialog.MenuDialog)
	s := newTestSession(t)
	s.Frame(d, input.Snapshot{})

	s.Frame(d, typed("may"))
	assert.Equal(t, "may", m.Filter())
	require.Len(t, m.Visible(), 1)
	s.Frame(d, keys(input.KeyBackspace))
	assert.Equal(t, "ma", m.Filter())
	s.Frame(d, chord(input.KeyU, input.ModCtrl))
	assert.Equal(t, "", m.Filter())

	s.Frame(d, keys(input.KeyDown))
	res, _ := s.Frame(d, keys(input.KeyEnter))
	require.True(t, res.Accepted())
	assert.Equal(t, "no", res.Output)
}

func TestAbortResolvesAndStillDraws(t *testing.T) {
	d := dialog.NewInput("Name", "draft", 400, 300)
	s := newTestSession(t)
	s.Frame(d, input.Snapshot{})

	res, frame := s.Frame(d, keys(input.KeyEscape))
	assert.True(t, res.Resolved)
	assert.Equal(t, dialog.CodeCancel, res.Code)
	assert.Empty(t, res.Output)
	assert.Greater(t, frame.CommandCount(), 0)
}

func TestWindowCenteredAndClamped(t *testing.T) {
	s := newTestSession(t)
	s.Frame(dialog.NewInput("p", "", 400, 300), input.Snapshot{})
	assert.Equal(t, draw.Rect{MinX: 200, MinY: 150, MaxX: 600, MaxY: 450}, s.Context().win)

	s.Frame(dialog.NewInput("p", "", 5000, 5000), input.Snapshot{})
	assert.Equal(t, draw.Rect{MinX: 0, MinY: 0, MaxX: 800, MaxY: 600}, s.Context().win)
}

func TestButtonsSpanEightyPercentWhenRoomy(t *testing.T) {
	s := newTestSession(t)
	d := dialog.NewInput("p", "", 800, 300)
	s.Frame(d, input.Snapshot{})
	ok := s.Context().rects["button:OK"]
	assert.InDelta(t, 640, ok.Width(), 0.01)

	d = dialog.NewInput("p", "", 300, 300)
	s.Frame(d, input.Snapshot{})
	ok = s.Context().rects["button:OK"]
	assert.InDelta(t, 300-2*DefaultStyle().Padding, ok.Width(), 0.01)
}

func TestListWheelScrolls(t *testing.T) {
	root := testutil.MakeTree(t, "1", "2", "3", "4", "5", "6", "7", "8")
	d := dialog.NewFile(root, 400, 300)
	f := d.Sub.(*dialog.FileDialog)
	s := newTestSession(t)
	s.Frame(d, input.Snapshot{})

	r := s.Context().rects["list:entries"]
	snap := pointer(r.MinX+5, r.MinY+5, false)
	snap.Wheel = -2
	s.Frame(d, snap)
	assert.Equal(t, 2, f.Offset())
	assert.Equal(t, 0, f.Selected())
}
