// Package platform owns the SDL window, its GL context and the event queue.
// Everything here must run on the thread that called Open.
package platform

import (
	"fmt"

	"github.com/atomicstack/imdialog/internal/input"
	"github.com/veandco/go-sdl2/sdl"
)

const title = "imdialog"

// Window is an OpenGL window sized to the framebuffer.
type Window struct {
	win *sdl.Window
	ctx sdl.GLContext
}

// Open initializes SDL video and creates a centered window with a current
// GL 2.1 context.
func Open(width, height int32) (*Window, error) {
	if err := sdl.Init(sdl.INIT_VIDEO); err != nil {
		return nil, fmt.Errorf("sdl init: %w", err)
	}
	_ = sdl.GLSetAttribute(sdl.GL_CONTEXT_MAJOR_VERSION, 2)
	_ = sdl.GLSetAttribute(sdl.GL_CONTEXT_MINOR_VERSION, 1)
	_ = sdl.GLSetAttribute(sdl.GL_DOUBLEBUFFER, 1)

	win, err := sdl.CreateWindow(title, sdl.WINDOWPOS_CENTERED, sdl.WINDOWPOS_CENTERED, width, height, sdl.WINDOW_OPENGL)
	if err != nil {
		sdl.Quit()
		return nil, fmt.Errorf("create window: %w", err)
	}
	ctx, err := win.GLCreateContext()
	if err != nil {
		win.Destroy()
		sdl.Quit()
		return nil, fmt.Errorf("create gl context: %w", err)
	}
	if err := win.GLMakeCurrent(ctx); err != nil {
		sdl.GLDeleteContext(ctx)
		win.Destroy()
		sdl.Quit()
		return nil, fmt.Errorf("make gl context current: %w", err)
	}
	sdl.StartTextInput()
	return &Window{win: win, ctx: ctx}, nil
}

// Size reports the window size in pixels.
func (w *Window) Size() (int32, int32) {
	return w.win.GetSize()
}

// Swap presents the back buffer.
func (w *Window) Swap() {
	w.win.GLSwap()
}

// Close destroys the context and window and shuts SDL down.
func (w *Window) Close() {
	sdl.StopTextInput()
	sdl.GLDeleteContext(w.ctx)
	w.win.Destroy()
	sdl.Quit()
}

// Events is the SDL event queue as an input.Source.
type Events struct{}

func (Events) WaitEvent() input.Event {
	for {
		if ev := sdl.WaitEvent(); ev != nil {
			return translate(ev)
		}
	}
}

func (Events) PollEvent() (input.Event, bool) {
	ev := sdl.PollEvent()
	if ev == nil {
		return input.Event{}, false
	}
	return translate(ev), true
}

func (Events) Pointer() input.Pointer {
	x, y, state := sdl.GetMouseState()
	var p input.Pointer
	p.X, p.Y = float32(x), float32(y)
	p.Buttons[input.ButtonLeft] = state&sdl.Button(sdl.BUTTON_LEFT) != 0
	p.Buttons[input.ButtonRight] = state&sdl.Button(sdl.BUTTON_RIGHT) != 0
	p.Buttons[input.ButtonMiddle] = state&sdl.Button(sdl.BUTTON_MIDDLE) != 0
	return p
}

func (Events) Mods() input.Mods {
	return translateMods(sdl.GetModState())
}

// Clipboard is the SDL clipboard.
type Clipboard struct{}

func (Clipboard) Text() (string, error) { return sdl.GetClipboardText() }

func (Clipboard) SetText(s string) error { return sdl.SetClipboardText(s) }
