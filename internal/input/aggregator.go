package input

import (
	"strings"
	"unicode/utf8"

	"github.com/atomicstack/imdialog/internal/logging/events"
)

// Applied describes the single event consumed by Step.
type Applied struct {
	Event Event
	Quit  bool
}

// Aggregator merges queued platform events and sampled pointer state into
// per-frame snapshots. It applies at most one queued event per Step.
type Aggregator struct {
	src   Source
	queue []Event

	down    KeySet
	pressed []Chord
	mods    Mods
	pointer Pointer
	text    []string
	wheel   float32
	abort   bool
}

func NewAggregator(src Source) *Aggregator {
	return &Aggregator{src: src}
}

// Pending is the number of queued events not yet applied.
func (a *Aggregator) Pending() int { return len(a.queue) }

// Fill blocks for one event when the queue is empty, then appends every event
// that is available without blocking.
func (a *Aggregator) Fill() {
	if len(a.queue) == 0 {
		a.queue = append(a.queue, a.src.WaitEvent())
	}
	for {
		ev, ok := a.src.PollEvent()
		if !ok {
			return
		}
		a.queue = append(a.queue, ev)
	}
}

// Step fills the queue and applies exactly one event.
func (a *Aggregator) Step() Applied {
	a.Fill()
	ev := a.queue[0]
	a.queue[0] = Event{}
	a.queue = a.queue[1:]
	events.Input.Event(ev.Kind.String(), ev.detail(), len(a.queue))
	return a.apply(ev)
}

func (a *Aggregator) apply(ev Event) Applied {
	switch ev.Kind {
	case EventKeyDown:
		a.mods = a.src.Mods()
		a.down = a.down.With(ev.Key)
		if ev.Key != KeyUnknown {
			a.pressed = append(a.pressed, Chord{Key: ev.Key, Mods: a.mods})
		}
		if ev.Key == KeyEscape {
			a.abort = true
		}
	case EventKeyUp:
		a.mods = a.src.Mods()
		a.down = a.down.Without(ev.Key)
	case EventText:
		if ev.Text == "" || !utf8.ValidString(ev.Text) || strings.IndexByte(ev.Text, 0) >= 0 {
			events.Input.Dropped("malformed text fragment")
			break
		}
		a.text = append(a.text, ev.Text)
	case EventWheel:
		a.wheel += ev.Wheel
	case EventQuit:
		return Applied{Event: ev, Quit: true}
	}
	return Applied{Event: ev}
}

// SamplePointer re-reads the pointer from the source.
func (a *Aggregator) SamplePointer() {
	a.pointer = a.src.Pointer()
}

// Snapshot returns the input state for one frame. Pressed keys, text, wheel
// and the abort flag are handed out once and then cleared.
func (a *Aggregator) Snapshot() Snapshot {
	s := Snapshot{
		Down:    a.down,
		Pressed: a.pressed,
		Mods:    a.mods,
		Pointer: a.pointer,
		Text:    a.text,
		Wheel:   a.wheel,
		Abort:   a.abort,
	}
	a.pressed = nil
	a.text = nil
	a.wheel = 0
	a.abort = false
	return s
}
