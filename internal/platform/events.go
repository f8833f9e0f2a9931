package platform

import (
	"github.com/atomicstack/imdialog/internal/input"
	"github.com/veandco/go-sdl2/sdl"
)

var scancodes = map[sdl.Scancode]input.Key{
	sdl.SCANCODE_TAB:       input.KeyTab,
	sdl.SCANCODE_LEFT:      input.KeyLeft,
	sdl.SCANCODE_RIGHT:     input.KeyRight,
	sdl.SCANCODE_UP:        input.KeyUp,
	sdl.SCANCODE_DOWN:      input.KeyDown,
	sdl.SCANCODE_PAGEUP:    input.KeyPageUp,
	sdl.SCANCODE_PAGEDOWN:  input.KeyPageDown,
	sdl.SCANCODE_HOME:      input.KeyHome,
	sdl.SCANCODE_END:       input.KeyEnd,
	sdl.SCANCODE_DELETE:    input.KeyDelete,
	sdl.SCANCODE_BACKSPACE: input.KeyBackspace,
	sdl.SCANCODE_RETURN:    input.KeyEnter,
	sdl.SCANCODE_ESCAPE:    input.KeyEscape,
	sdl.SCANCODE_A:         input.KeyA,
	sdl.SCANCODE_C:         input.KeyC,
	sdl.SCANCODE_V:         input.KeyV,
	sdl.SCANCODE_X:         input.KeyX,
	sdl.SCANCODE_Y:         input.KeyY,
	sdl.SCANCODE_Z:         input.KeyZ,
	sdl.SCANCODE_KP_ENTER:  input.KeyKeypadEnter,
	sdl.SCANCODE_U:         input.KeyU,
	sdl.SCANCODE_W:         input.KeyW,
}

// translate maps an SDL event. Events the dialogs ignore, such as mouse
// motion, still become EventNone so they wake the loop and the pointer is
// re-sampled.
func translate(ev sdl.Event) input.Event {
	switch e := ev.(type) {
	case *sdl.QuitEvent:
		return input.Event{Kind: input.EventQuit}
	case *sdl.KeyboardEvent:
		k := scancodes[e.Keysym.Scancode]
		if e.Type == sdl.KEYUP {
			return input.Event{Kind: input.EventKeyUp, Key: k}
		}
		return input.Event{Kind: input.EventKeyDown, Key: k}
	case *sdl.TextInputEvent:
		return input.Event{Kind: input.EventText, Text: e.GetText()}
	case *sdl.MouseWheelEvent:
		y := float32(e.Y)
		if e.Direction == sdl.MOUSEWHEEL_FLIPPED {
			y = -y
		}
		return input.Event{Kind: input.EventWheel, Wheel: y}
	default:
		return input.Event{}
	}
}

func translateMods(m sdl.Keymod) input.Mods {
	var out input.Mods
	if m&sdl.KMOD_SHIFT != 0 {
		out |= input.ModShift
	}
	if m&sdl.KMOD_CTRL != 0 {
		out |= input.ModCtrl
	}
	if m&sdl.KMOD_ALT != 0 {
		out |= input.ModAlt
	}
	if m&sdl.KMOD_GUI != 0 {
		out |= input.ModSuper
	}
	return out
}
