package ui

import (
	"fmt"
	"math"
	"strings"

	"github.com/atomicstack/imdialog/internal/dialog"
	"github.com/atomicstack/imdialog/internal/ui/draw"
	"github.com/charmbracelet/bubbles/key"
)

// Text draws one line in the current font.
func (c *Context) Text(s string) {
	c.TextColored(s, c.colors.Text)
}

// TextColored draws one line in the current font and the given color.
func (c *Context) TextColored(s string, col uint32) {
	f := c.font()
	c.DrawText(f, c.x, c.y, s, col)
	c.y += f.LineHeight + c.style.Spacing
	c.lastID = ""
}

// Spacing adds a vertical gap.
func (c *Context) Spacing() {
	c.y += c.style.Spacing
}

// Button draws a focusable push button and reports whether it was clicked
// or activated from the keyboard. A non-positive width fits the label.
func (c *Context) Button(label string, width float32) bool {
	id := ID("button:" + label)
	f := c.font()
	fp := c.style.FramePadding
	if width <= 0 {
		width = f.Measure(label) + 2*fp[0]
	}
	r := draw.Rect{MinX: c.x, MinY: c.y, MaxX: c.x + width, MaxY: c.y + c.frameHeight()}
	focused := c.registerFocusable(id)
	hovered, clicked := c.interact(id, r, id)
	if focused && c.snap.Triggered(c.keys.Submit) {
		clicked = true
	}

	col := c.colors.Button
	switch {
	case c.active == id:
		col = c.colors.ButtonActive
	case hovered:
		col = c.colors.ButtonHovered
	}
	c.list.AddRectFilled(r, col)
	if focused {
		c.list.AddRect(r, c.colors.Cursor, 1)
	}
	tx := r.MinX + (r.Width()-f.Measure(label))/2
	c.DrawText(f, tx, r.MinY+fp[1], label, c.colors.Text)
	c.advance(id, r)
	return clicked
}

// List is the cursor model a ListBox drives.
type List interface {
	Len() int
	Selected() int
	Offset() int
	Select(i int) bool
	MoveUp() bool
	MoveDown() bool
	Home() bool
	End() bool
	PageUp(rows int) bool
	PageDown(rows int) bool
	Scroll(rows, delta int) bool
	EnsureVisible(rows int)
}

// RowFunc paints row i inside r.
type RowFunc func(i int, r draw.Rect, selected bool)

// ListBox draws rows entries of l starting at its offset and reports whether
// a row was activated, by a click or by submit while focused. A
// non-positive rowHeight uses the current line height.
func (c *Context) ListBox(label string, l List, width float32, rows int, rowHeight float32, paint RowFunc) bool {
	id := ID("list:" + label)
	fp := c.style.FramePadding
	if rowHeight <= 0 {
		rowHeight = c.font().LineHeight
	}
	if rows < 1 {
		rows = 1
	}
	frame := draw.Rect{MinX: c.x, MinY: c.y, MaxX: c.x + width, MaxY: c.y + float32(rows)*rowHeight + 2*fp[1]}
	focused := c.registerFocusable(id)

	activated := false
	if focused {
		moved := false
		for _, ch := range c.snap.Pressed {
			switch {
			case key.Matches(ch, c.keys.Up):
				moved = l.MoveUp() || moved
			case key.Matches(ch, c.keys.Down):
				moved = l.MoveDown() || moved
			case key.Matches(ch, c.keys.PageUp):
				moved = l.PageUp(rows) || moved
			case key.Matches(ch, c.keys.PageDown):
				moved = l.PageDown(rows) || moved
			case key.Matches(ch, c.keys.Home):
				moved = l.Home() || moved
			case key.Matches(ch, c.keys.End):
				moved = l.End() || moved
			case key.Matches(ch, c.keys.Submit):
				activated = l.Len() > 0
			}
		}
		if moved {
			l.EnsureVisible(rows)
		}
	}
	p := c.snap.Pointer
	if c.snap.Wheel != 0 && frame.Intersect(c.list.Clip()).Contains(p.X, p.Y) {
		l.Scroll(rows, -int(math.Round(float64(c.snap.Wheel))))
	}

	c.list.AddRectFilled(frame, c.colors.Frame)
	c.list.PushClipRect(frame)
	top := frame.MinY + fp[1]
	for row := 0; row < rows; row++ {
		i := l.Offset() + row
		if i >= l.Len() {
			break
		}
		r := draw.Rect{MinX: frame.MinX, MinY: top + float32(row)*rowHeight, MaxX: frame.MaxX, MaxY: top + float32(row+1)*rowHeight}
		selected := i == l.Selected()
		if c.selectable(ID(fmt.Sprintf("%s#%d", id, i)), r, selected, id) {
			l.Select(i)
			activated = true
		}
		paint(i, r, selected)
	}
	c.list.PopClipRect()
	if focused {
		c.list.AddRect(frame, c.colors.Cursor, 1)
	}
	c.advance(id, frame)
	return activated
}

// Selectable draws a full-width row that reports a click.
func (c *Context) Selectable(label string, selected bool, height float32) bool {
	id := ID("selectable:" + label)
	f := c.font()
	if height < f.LineHeight {
		height = f.LineHeight
	}
	r := draw.Rect{MinX: c.x, MinY: c.y, MaxX: c.x + c.ContentWidth(), MaxY: c.y + height}
	clicked := c.selectable(id, r, selected, "")
	c.DrawText(f, r.MinX, r.MinY+(height-f.LineHeight)/2, label, c.colors.Text)
	c.advance(id, r)
	return clicked
}

func (c *Context) selectable(id ID, r draw.Rect, selected bool, focusTarget ID) bool {
	hovered, clicked := c.interact(id, r, focusTarget)
	switch {
	case selected:
		c.list.AddRectFilled(r, c.colors.Header)
	case hovered:
		c.list.AddRectFilled(r, c.colors.HeaderHovered)
	}
	c.nextRects[id] = r
	return clicked
}

// InputText edits d in a single-line field and reports whether submit was
// pressed while it had focus.
func (c *Context) InputText(label string, d *dialog.InputDialog, width float32) bool {
	id := ID("input:" + label)
	f := c.font()
	fp := c.style.FramePadding
	r := draw.Rect{MinX: c.x, MinY: c.y, MaxX: c.x + width, MaxY: c.y + c.frameHeight()}
	focused := c.registerFocusable(id)
	hovered, _ := c.interact(id, r, id)
	scroll := c.scrollX[id]
	if hovered && c.pressedNow {
		c.placeCaret(d, c.snap.Pointer.X-(r.MinX+fp[0])+scroll)
		focused = true
	}

	submitted := false
	if focused {
		for _, frag := range c.snap.Text {
			d.InsertText(frag)
		}
		for _, ch := range c.snap.Pressed {
			switch {
			case key.Matches(ch, c.keys.Submit):
				submitted = true
			case key.Matches(ch, c.keys.WordLeft):
				d.MoveWordLeft()
			case key.Matches(ch, c.keys.WordRight):
				d.MoveWordRight()
			case key.Matches(ch, c.keys.Left):
				d.MoveLeft()
			case key.Matches(ch, c.keys.Right):
				d.MoveRight()
			case key.Matches(ch, c.keys.Home):
				d.MoveStart()
			case key.Matches(ch, c.keys.End):
				d.MoveEnd()
			case key.Matches(ch, c.keys.Backspace):
				d.DeleteBackward()
			case key.Matches(ch, c.keys.Delete):
				d.DeleteForward()
			case key.Matches(ch, c.keys.DeleteWord):
				d.DeleteWordBackward()
			case key.Matches(ch, c.keys.ClearLine):
				d.Clear()
			case key.Matches(ch, c.keys.Paste):
				c.paste(d)
			case key.Matches(ch, c.keys.Copy):
				if c.clipboard != nil {
					_ = c.clipboard.SetText(d.Text())
				}
			}
		}
	}

	text := d.Text()
	caret := f.Measure(text[:d.Cursor()])
	visible := width - 2*fp[0]
	if caret-scroll > visible {
		scroll = caret - visible
	}
	if caret < scroll {
		scroll = caret
	}
	c.scrollX[id] = scroll

	c.list.AddRectFilled(r, c.colors.Frame)
	c.list.PushClipRect(r)
	tx := r.MinX + fp[0] - scroll
	c.DrawText(f, tx, r.MinY+fp[1], text, c.colors.Text)
	if focused {
		cx := tx + caret
		c.list.AddRectFilled(draw.Rect{MinX: cx, MinY: r.MinY + fp[1], MaxX: cx + 1, MaxY: r.MaxY - fp[1]}, c.colors.Cursor)
	}
	c.list.PopClipRect()
	c.advance(id, r)
	return submitted
}

// placeCaret moves the cursor to the rune boundary nearest x.
func (c *Context) placeCaret(d *dialog.InputDialog, x float32) {
	f := c.font()
	text := d.Text()
	var pos float32
	for i, r := range text {
		adv := f.Glyph(r).Advance
		if x < pos+adv/2 {
			d.SetCursor(i)
			return
		}
		pos += adv
	}
	d.SetCursor(len(text))
}

func (c *Context) paste(d *dialog.InputDialog) {
	if c.clipboard == nil {
		return
	}
	text, err := c.clipboard.Text()
	if err != nil {
		return
	}
	if i := strings.IndexAny(text, "\r\n"); i >= 0 {
		text = text[:i]
	}
	d.InsertText(text)
}
