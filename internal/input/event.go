package input

import "fmt"

// EventKind distinguishes queued input events.
type EventKind int

const (
	EventNone EventKind = iota
	EventKeyDown
	EventKeyUp
	EventText
	EventWheel
	EventQuit
)

func (k EventKind) String() string {
	switch k {
	case EventKeyDown:
		return "keydown"
	case EventKeyUp:
		return "keyup"
	case EventText:
		return "text"
	case EventWheel:
		return "wheel"
	case EventQuit:
		return "quit"
	default:
		return "none"
	}
}

// Event is one discrete platform input event. Pointer motion and button state
// are never queued; they are sampled from the Source each iteration.
type Event struct {
	Kind  EventKind
	Key   Key
	Text  string
	Wheel float32
}

func (e Event) detail() string {
	switch e.Kind {
	case EventKeyDown, EventKeyUp:
		return e.Key.String()
	case EventText:
		return fmt.Sprintf("%d bytes", len(e.Text))
	case EventWheel:
		return fmt.Sprintf("%.2f", e.Wheel)
	default:
		return ""
	}
}

// Button indexes Pointer.Buttons.
type Button int

const (
	ButtonLeft Button = iota
	ButtonRight
	ButtonMiddle
	numButtons
)

// Pointer is a sample of the mouse position and buttons.
type Pointer struct {
	X, Y    float32
	Buttons [numButtons]bool
}

// Down reports whether button b is held.
func (p Pointer) Down(b Button) bool {
	if b < 0 || b >= numButtons {
		return false
	}
	return p.Buttons[b]
}

// Source is the platform side of input. WaitEvent blocks until an event is
// available; PollEvent never blocks.
type Source interface {
	WaitEvent() Event
	PollEvent() (Event, bool)
	Pointer() Pointer
	Mods() Mods
}
