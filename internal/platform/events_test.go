package platform

import (
	"testing"

	"github.com/atomicstack/imdialog/internal/input"
	"github.com/veandco/go-sdl2/sdl"
)

func TestTranslateKeyboard(t *testing.T) {
	down := translate(&sdl.KeyboardEvent{Type: sdl.KEYDOWN, Keysym: sdl.Keysym{Scancode: sdl.SCANCODE_KP_ENTER}})
	if down.Kind != input.EventKeyDown || down.Key != input.KeyKeypadEnter {
		t.Fatalf("expected keypad enter down, got %+v", down)
	}
	up := translate(&sdl.KeyboardEvent{Type: sdl.KEYUP, Keysym: sdl.Keysym{Scancode: sdl.SCANCODE_ESCAPE}})
	if up.Kind != input.EventKeyUp || up.Key != input.KeyEscape {
		t.Fatalf("expected escape up, got %+v", up)
	}
	other := translate(&sdl.KeyboardEvent{Type: sdl.KEYDOWN, Keysym: sdl.Keysym{Scancode: sdl.SCANCODE_F5}})
	if other.Key != input.KeyUnknown {
		t.Fatalf("expected unknown key, got %v", other.Key)
	}
}

func TestTranslateOtherEvents(t *testing.T) {
	if ev := translate(&sdl.QuitEvent{Type: sdl.QUIT}); ev.Kind != input.EventQuit {
		t.Fatalf("expected quit, got %v", ev.Kind)
	}
	if ev := translate(&sdl.MouseWheelEvent{Type: sdl.MOUSEWHEEL, Y: 2}); ev.Kind != input.EventWheel || ev.Wheel != 2 {
		t.Fatalf("expected wheel 2, got %+v", ev)
	}
	if ev := translate(&sdl.MouseMotionEvent{Type: sdl.MOUSEMOTION}); ev.Kind != input.EventNone {
		t.Fatalf("expected motion to wake with no payload, got %v", ev.Kind)
	}
}

func TestTranslateMods(t *testing.T) {
	got := translateMods(sdl.KMOD_LCTRL | sdl.KMOD_RSHIFT)
	if !got.Ctrl() || !got.Shift() || got.Alt() {
		t.Fatalf("expected ctrl+shift, got %v", got)
	}
}
