package ui

import (
	"github.com/atomicstack/imdialog/internal/dialog"
	"github.com/atomicstack/imdialog/internal/input"
	"github.com/atomicstack/imdialog/internal/ui/draw"
	"github.com/charmbracelet/bubbles/key"
)

// ButtonWidthRatio sizes buttons and fields relative to the framebuffer.
const ButtonWidthRatio = 0.8

// Session lays out one dialog per frame on a fixed framebuffer.
type Session struct {
	ctx    *Context
	width  float32
	height float32
}

func NewSession(ctx *Context, width, height float32) *Session {
	return &Session{ctx: ctx, width: width, height: height}
}

// Context exposes the widget state, mainly for tests.
func (s *Session) Context() *Context { return s.ctx }

// Frame runs one UI pass over d. The returned resolution is non-zero when
// this pass decided the dialog; the frame is produced either way.
func (s *Session) Frame(d *dialog.Dialog, snap input.Snapshot) (dialog.Resolution, *draw.Frame) {
	c := s.ctx
	c.NewFrame(snap, s.width, s.height)
	c.BeginWindow(float32(d.Width), float32(d.Height))
	c.FocusFirstIfIdle()

	var res dialog.Resolution
	switch sub := d.Sub.(type) {
	case *dialog.FileDialog:
		res = s.file(d, sub)
	case *dialog.InputDialog:
		res = s.input(d, sub)
	case *dialog.MenuDialog:
		res = s.menu(d, sub)
	}
	c.EndWindow()
	if snap.Abort {
		res = d.Abort()
	}
	return res, c.Render()
}

func (s *Session) buttonWidth() float32 {
	w := s.width * ButtonWidthRatio
	if cw := s.ctx.ContentWidth(); w > cw {
		w = cw
	}
	return w
}

func (s *Session) okCancel(d *dialog.Dialog, ok func() dialog.Resolution) dialog.Resolution {
	bw := s.buttonWidth()
	if s.ctx.Button("OK", bw) {
		if res := ok(); res.Resolved {
			return res
		}
	}
	if s.ctx.Button("Cancel", bw) {
		return d.Cancel()
	}
	return dialog.Resolution{}
}

type fileRows struct{ *dialog.FileDialog }

func (s *Session) file(d *dialog.Dialog, f *dialog.FileDialog) dialog.Resolution {
	c := s.ctx
	c.PushFont(c.LabelFont())
	c.TextColored(f.Path(), c.Colors().Label)
	c.PopFont()

	displays := f.Displays()
	std := c.StandardFont()
	fp := c.style.FramePadding
	activated := c.ListBox("entries", fileRows{f}, s.buttonWidth(), c.style.ListRows, 0, func(i int, r draw.Rect, _ bool) {
		c.DrawText(std, r.MinX+fp[0], r.MinY, displays[i], c.Colors().Text)
	})
	if activated {
		if res := f.Confirm(); res.Resolved {
			return res
		}
	}
	return s.okCancel(d, f.Confirm)
}

func (s *Session) input(d *dialog.Dialog, in *dialog.InputDialog) dialog.Resolution {
	c := s.ctx
	c.Text(in.Prompt)
	if c.InputText("text", in, s.buttonWidth()) {
		return in.Submit()
	}
	return s.okCancel(d, in.Submit)
}

// menuRows adapts the menu cursor to List; Select only highlights.
type menuRows struct{ *dialog.MenuDialog }

func (m menuRows) Selected() int     { return m.Cursor() }
func (m menuRows) Select(i int) bool { return m.SetCursor(i) }

func (s *Session) menu(d *dialog.Dialog, m *dialog.MenuDialog) dialog.Resolution {
	c := s.ctx
	std, label := c.StandardFont(), c.LabelFont()
	c.Text(m.Prompt)
	if m.Filter() != "" {
		c.PushFont(label)
		c.TextColored("/"+m.Filter(), c.Colors().Label)
		c.PopFont()
	}

	tagHeight := maxf(float32(m.RowHeight), std.LineHeight)
	rowHeight := tagHeight + label.LineHeight
	reserve := c.frameHeight() + 2*c.style.Spacing + 2*c.style.FramePadding[1]
	rows := int(c.RemainingHeight(reserve) / rowHeight)
	if n := m.Len(); rows > n {
		rows = n
	}
	if rows < 1 {
		rows = 1
	}

	visible := m.Visible()
	fp := c.style.FramePadding
	colors := c.Colors()
	activated := c.ListBox("items", menuRows{m}, s.buttonWidth(), rows, rowHeight, func(i int, r draw.Rect, _ bool) {
		item := visible[i]
		c.DrawText(std, r.MinX+fp[0], r.MinY+(tagHeight-std.LineHeight)/2, item.DisplayTag(), colors.Text)
		c.DrawText(label, r.MinX+fp[0], r.MinY+tagHeight, item.DisplayLabel(), colors.Label)
	})
	if c.ItemFocused() && s.editFilter(m) {
		m.EnsureVisible(rows)
	}
	if activated {
		if res := m.SelectCurrent(); res.Resolved {
			return res
		}
	}
	if c.Button("Cancel", s.buttonWidth()) {
		return d.Cancel()
	}
	return dialog.Resolution{}
}

func (s *Session) editFilter(m *dialog.MenuDialog) bool {
	c := s.ctx
	changed := false
	for _, frag := range c.snap.Text {
		changed = m.InsertFilter(frag) || changed
	}
	for _, ch := range c.snap.Pressed {
		switch {
		case key.Matches(ch, c.keys.Backspace):
			changed = m.DeleteFilterBackward() || changed
		case key.Matches(ch, c.keys.DeleteWord):
			changed = m.DeleteFilterWordBackward() || changed
		case key.Matches(ch, c.keys.ClearLine):
			changed = m.ClearFilter() || changed
		}
	}
	return changed
}
