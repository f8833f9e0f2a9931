package input

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
)

// Snapshot is the input visible to one UI frame.
type Snapshot struct {
	Down    KeySet
	Pressed []Chord
	Mods    Mods
	Pointer Pointer
	Text    []string
	Wheel   float32
	Abort   bool
}

// Triggered reports whether any key pressed since the previous frame matches
// one of the bindings.
func (s Snapshot) Triggered(bindings ...key.Binding) bool {
	for _, c := range s.Pressed {
		if key.Matches(c, bindings...) {
			return true
		}
	}
	return false
}

// TypedText joins the text fragments queued for this frame.
func (s Snapshot) TypedText() string {
	return strings.Join(s.Text, "")
}

// WithPressed returns a copy with the chords appended, marking their keys down.
func (s Snapshot) WithPressed(chords ...Chord) Snapshot {
	s.Pressed = append(append([]Chord(nil), s.Pressed...), chords...)
	for _, c := range chords {
		s.Down = s.Down.With(c.Key)
		if c.Key == KeyEscape {
			s.Abort = true
		}
	}
	return s
}
