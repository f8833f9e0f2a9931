package input

import "strings"

// Key identifies a physical key the dialogs react to. Keys outside this set
// reach the dialogs only as text input.
type Key int

const (
	KeyUnknown Key = iota
	KeyTab
	KeyLeft
	KeyRight
	KeyUp
	KeyDown
	KeyPageUp
	KeyPageDown
	KeyHome
	KeyEnd
	KeyDelete
	KeyBackspace
	KeyEnter
	KeyEscape
	KeyA
	KeyC
	KeyV
	KeyX
	KeyY
	KeyZ
	KeyKeypadEnter
	KeyU
	KeyW
	numKeys
)

var keyNames = [numKeys]string{
	KeyUnknown:     "unknown",
	KeyTab:         "tab",
	KeyLeft:        "left",
	KeyRight:       "right",
	KeyUp:          "up",
	KeyDown:        "down",
	KeyPageUp:      "pgup",
	KeyPageDown:    "pgdown",
	KeyHome:        "home",
	KeyEnd:         "end",
	KeyDelete:      "delete",
	KeyBackspace:   "backspace",
	KeyEnter:       "enter",
	KeyEscape:      "esc",
	KeyA:           "a",
	KeyC:           "c",
	KeyV:           "v",
	KeyX:           "x",
	KeyY:           "y",
	KeyZ:           "z",
	KeyKeypadEnter: "enter",
	KeyU:           "u",
	KeyW:           "w",
}

// String returns the key name used by key bindings. Keypad enter shares the
// name of the main enter key so both submit.
func (k Key) String() string {
	if k < 0 || k >= numKeys {
		return keyNames[KeyUnknown]
	}
	return keyNames[k]
}

// Mods is a set of held modifier keys.
type Mods uint8

const (
	ModShift Mods = 1 << iota
	ModCtrl
	ModAlt
	ModSuper
)

func (m Mods) Shift() bool { return m&ModShift != 0 }
func (m Mods) Ctrl() bool  { return m&ModCtrl != 0 }
func (m Mods) Alt() bool   { return m&ModAlt != 0 }
func (m Mods) Super() bool { return m&ModSuper != 0 }

// Chord is a key pressed together with the modifiers held at the time.
type Chord struct {
	Key  Key
	Mods Mods
}

// String renders the chord the way terminal key messages are named, for
// example "ctrl+u" or "shift+tab", so the same bindings serve both front ends.
func (c Chord) String() string {
	var b strings.Builder
	if c.Mods.Ctrl() {
		b.WriteString("ctrl+")
	}
	if c.Mods.Alt() {
		b.WriteString("alt+")
	}
	if c.Mods.Shift() {
		b.WriteString("shift+")
	}
	b.WriteString(c.Key.String())
	return b.String()
}

// KeySet is the set of keys currently held down.
type KeySet uint32

func (s KeySet) Has(k Key) bool {
	if k <= KeyUnknown || k >= numKeys {
		return false
	}
	return s&(1<<uint(k)) != 0
}

func (s KeySet) With(k Key) KeySet {
	if k <= KeyUnknown || k >= numKeys {
		return s
	}
	return s | 1<<uint(k)
}

func (s KeySet) Without(k Key) KeySet {
	if k <= KeyUnknown || k >= numKeys {
		return s
	}
	return s &^ (1 << uint(k))
}
