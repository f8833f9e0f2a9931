// Package ui is a small immediate-mode widget layer. Widgets are declared
// anew every frame; the Context remembers only which widget is hovered,
// pressed or focused between frames, and records geometry into a draw.List.
package ui

import (
	"math"

	"github.com/atomicstack/imdialog/internal/input"
	"github.com/atomicstack/imdialog/internal/theme"
	"github.com/atomicstack/imdialog/internal/ui/draw"
	"github.com/atomicstack/imdialog/internal/ui/font"
)

// ID names a widget for the lifetime of the session.
type ID string

// Style holds layout metrics in pixels.
type Style struct {
	Padding      float32
	Spacing      float32
	FramePadding [2]float32
	Border       float32
	ListRows     int
}

func DefaultStyle() Style {
	return Style{
		Padding:      8,
		Spacing:      4,
		FramePadding: [2]float32{4, 3},
		Border:       1,
		ListRows:     5,
	}
}

// Clipboard is the system clipboard, when one is available.
type Clipboard interface {
	Text() (string, error)
	SetText(string) error
}

// Option configures a Context.
type Option func(*Context)

func WithStyle(s Style) Option { return func(c *Context) { c.style = s } }

func WithKeyMap(k input.KeyMap) Option { return func(c *Context) { c.keys = k } }

func WithClipboard(cb Clipboard) Option { return func(c *Context) { c.clipboard = cb } }

// Context is the per-session widget state.
type Context struct {
	std       *font.Font
	label     *font.Font
	white     [2]float32
	colors    theme.Colors
	style     Style
	keys      input.KeyMap
	clipboard Clipboard

	// rebuilt every frame
	list        *draw.List
	snap        input.Snapshot
	display     [2]float32
	fonts       []*font.Font
	win         draw.Rect
	x, y        float32
	focusables  []ID
	hoveredNext ID
	lastID      ID
	pressedNow  bool
	releasedNow bool
	focusFirst  bool
	nextRects   map[ID]draw.Rect

	// carried between frames
	hovered  ID
	active   ID
	focus    ID
	prevDown bool
	contentH float32
	rects    map[ID]draw.Rect
	scrollX  map[ID]float32
}

// NewContext lays text out with the atlas's first font; the second, when
// present, is the smaller label font.
func NewContext(atlas *font.Atlas, colors theme.Colors, opts ...Option) *Context {
	c := &Context{
		std:     atlas.Fonts[0],
		label:   atlas.Fonts[0],
		white:   atlas.White,
		colors:  colors,
		style:   DefaultStyle(),
		keys:    input.DefaultKeyMap(),
		rects:   make(map[ID]draw.Rect),
		scrollX: make(map[ID]float32),
	}
	if len(atlas.Fonts) > 1 {
		c.label = atlas.Fonts[1]
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Colors returns the packed palette.
func (c *Context) Colors() theme.Colors { return c.colors }

// StandardFont and LabelFont return the two text sizes.
func (c *Context) StandardFont() *font.Font { return c.std }
func (c *Context) LabelFont() *font.Font    { return c.label }

// NewFrame starts recording a frame for a width x height framebuffer.
func (c *Context) NewFrame(snap input.Snapshot, width, height float32) {
	c.snap = snap
	c.display = [2]float32{width, height}
	c.list = draw.NewList(width, height, c.white)
	down := snap.Pointer.Down(input.ButtonLeft)
	c.pressedNow = down && !c.prevDown
	c.releasedNow = !down && c.prevDown
	c.prevDown = down
	c.hoveredNext = ""
	c.lastID = ""
	c.focusables = c.focusables[:0]
	c.fonts = c.fonts[:0]
	c.focusFirst = false
	c.nextRects = make(map[ID]draw.Rect, len(c.rects))
}

// BeginWindow centers a window of width x height in the framebuffer. The
// height grows to the content measured in the previous frame; a
// non-positive width takes half the framebuffer.
func (c *Context) BeginWindow(width, height float32) {
	if width <= 0 {
		width = c.display[0] / 2
	}
	w := clamp(width, 0, c.display[0])
	h := clamp(maxf(height, c.contentH), 0, c.display[1])
	x0 := float32(math.Floor(float64(c.display[0]-w) / 2))
	y0 := float32(math.Floor(float64(c.display[1]-h) / 2))
	c.win = draw.Rect{MinX: x0, MinY: y0, MaxX: x0 + w, MaxY: y0 + h}
	c.list.AddRectFilled(c.win, c.colors.Window)
	c.list.AddRect(c.win, c.colors.Border, c.style.Border)
	b := c.style.Border
	c.list.PushClipRect(draw.Rect{MinX: x0 + b, MinY: y0 + b, MaxX: x0 + w - b, MaxY: y0 + h - b})
	c.x = x0 + c.style.Padding
	c.y = y0 + c.style.Padding
}

// EndWindow closes the window and remembers its content height.
func (c *Context) EndWindow() {
	c.contentH = c.y - c.win.MinY - c.style.Spacing + c.style.Padding
	c.list.PopClipRect()
}

// ContentWidth is the usable width inside the window padding.
func (c *Context) ContentWidth() float32 {
	return c.win.Width() - 2*c.style.Padding
}

// RemainingHeight is how much vertical space is left before the framebuffer
// edge once reserve pixels are set aside.
func (c *Context) RemainingHeight(reserve float32) float32 {
	used := c.y - c.win.MinY
	return c.display[1] - used - c.style.Padding - reserve
}

// FocusFirstIfIdle hands keyboard focus to the first focusable widget of
// this frame when nothing was hovered, pressed or focused last frame.
func (c *Context) FocusFirstIfIdle() {
	if c.hovered == "" && c.active == "" && c.focus == "" {
		c.focusFirst = true
	}
}

// ItemFocused reports whether the most recent widget has keyboard focus.
func (c *Context) ItemFocused() bool {
	return c.lastID != "" && c.focus == c.lastID
}

// Render finishes the frame. Tab and shift+tab move focus here so the
// change shows from the next frame on.
func (c *Context) Render() *draw.Frame {
	if c.active != "" && !c.prevDown {
		c.active = ""
	}
	switch {
	case c.snap.Triggered(c.keys.Prev):
		c.focus = c.cycleFocus(-1)
	case c.snap.Triggered(c.keys.Next):
		c.focus = c.cycleFocus(1)
	}
	if !c.isFocusable(c.focus) {
		c.focus = ""
	}
	c.hovered = c.hoveredNext
	c.rects = c.nextRects
	return c.list.Frame()
}

func (c *Context) cycleFocus(dir int) ID {
	n := len(c.focusables)
	if n == 0 {
		return ""
	}
	for i, id := range c.focusables {
		if id == c.focus {
			return c.focusables[((i+dir)%n+n)%n]
		}
	}
	if dir < 0 {
		return c.focusables[n-1]
	}
	return c.focusables[0]
}

func (c *Context) isFocusable(id ID) bool {
	for _, f := range c.focusables {
		if f == id {
			return true
		}
	}
	return false
}

func (c *Context) registerFocusable(id ID) bool {
	c.focusables = append(c.focusables, id)
	if c.focusFirst {
		c.focus = id
		c.focusFirst = false
	}
	return c.focus == id
}

// interact hit-tests r. A click is a press and a release over the same
// widget.
func (c *Context) interact(id ID, r draw.Rect, focusTarget ID) (hovered, clicked bool) {
	p := c.snap.Pointer
	visible := r.Intersect(c.list.Clip())
	hovered = visible.Contains(p.X, p.Y) && (c.active == "" || c.active == id)
	if hovered {
		c.hoveredNext = id
		if c.pressedNow {
			c.active = id
			if focusTarget != "" {
				c.focus = focusTarget
			}
		}
	}
	if c.active == id && c.releasedNow {
		c.active = ""
		clicked = hovered
	}
	return hovered, clicked
}

func (c *Context) advance(id ID, r draw.Rect) {
	c.nextRects[id] = r
	c.lastID = id
	c.y = r.MaxY + c.style.Spacing
}

func (c *Context) font() *font.Font {
	if n := len(c.fonts); n > 0 {
		return c.fonts[n-1]
	}
	return c.std
}

// PushFont makes f the font for following text until PopFont.
func (c *Context) PushFont(f *font.Font) { c.fonts = append(c.fonts, f) }

func (c *Context) PopFont() {
	if n := len(c.fonts); n > 0 {
		c.fonts = c.fonts[:n-1]
	}
}

func (c *Context) frameHeight() float32 {
	return c.font().LineHeight + 2*c.style.FramePadding[1]
}

// DrawText renders s with its top-left corner at x, y.
func (c *Context) DrawText(f *font.Font, x, y float32, s string, col uint32) {
	for _, r := range s {
		g := f.Glyph(r)
		if g.Bounds.Width() > 0 && g.Bounds.Height() > 0 {
			c.list.AddImageQuad(draw.Rect{
				MinX: x + g.Bounds.MinX,
				MinY: y + g.Bounds.MinY,
				MaxX: x + g.Bounds.MaxX,
				MaxY: y + g.Bounds.MaxY,
			}, g.UV, col)
		}
		x += g.Advance
	}
}

func clamp(v, lo, hi float32) float32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func maxf(a, b float32) float32 {
	if a > b {
		return a
	}
	return b
}
