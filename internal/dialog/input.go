package dialog

import (
	"bytes"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/atomicstack/imdialog/internal/logging/events"
)

// Capacity is the size of the edit buffer including its NUL terminator.
const Capacity = 1024

// InputDialog edits a single line of text in a fixed-capacity buffer. The
// buffer always holds valid UTF-8 followed by zero bytes; the cursor is a
// byte offset on a rune boundary.
type InputDialog struct {
	Prompt string

	buf    [Capacity]byte
	n      int
	cursor int
}

// NewInputDialog seeds the buffer with the longest prefix of initial that
// fits. Invalid UTF-8 in initial is replaced.
func NewInputDialog(prompt, initial string) *InputDialog {
	d := &InputDialog{Prompt: prompt}
	initial = strings.ToValidUTF8(initial, string(utf8.RuneError))
	if i := strings.IndexByte(initial, 0); i >= 0 {
		initial = initial[:i]
	}
	d.insert(fitRunes(initial, Capacity-1))
	return d
}

// Text returns the buffer contents up to the first terminator.
func (d *InputDialog) Text() string {
	if i := bytes.IndexByte(d.buf[:], 0); i >= 0 {
		return string(d.buf[:i])
	}
	return string(d.buf[:])
}

// Len is the number of content bytes.
func (d *InputDialog) Len() int { return d.n }

// Cursor is the byte offset of the caret.
func (d *InputDialog) Cursor() int { return d.cursor }

// Bytes returns a copy of the whole fixed buffer.
func (d *InputDialog) Bytes() []byte {
	out := make([]byte, Capacity)
	copy(out, d.buf[:])
	return out
}

// Remaining reports how many more bytes can be inserted.
func (d *InputDialog) Remaining() int {
	return Capacity - 1 - d.n
}

// Submit resolves with the current text.
func (d *InputDialog) Submit() Resolution {
	return accept(KindInput, d.Text())
}

// InsertText inserts a text fragment at the cursor. Fragments that are not
// valid UTF-8 or hold a NUL are dropped; when the buffer is nearly full only
// the whole runes that fit are inserted.
func (d *InputDialog) InsertText(s string) bool {
	if s == "" {
		return false
	}
	if !utf8.ValidString(s) || strings.IndexByte(s, 0) >= 0 {
		events.Input.Dropped("malformed text fragment")
		return false
	}
	fit := fitRunes(s, d.Remaining())
	if fit == "" {
		return false
	}
	d.insert(fit)
	return true
}

func (d *InputDialog) insert(s string) {
	if s == "" {
		return
	}
	copy(d.buf[d.cursor+len(s):d.n+len(s)], d.buf[d.cursor:d.n])
	copy(d.buf[d.cursor:], s)
	d.n += len(s)
	d.cursor += len(s)
}

// remove deletes buf[from:to] and zeroes the vacated tail.
func (d *InputDialog) remove(from, to int) {
	if from >= to {
		return
	}
	copy(d.buf[from:], d.buf[to:d.n])
	width := to - from
	for i := d.n - width; i < d.n; i++ {
		d.buf[i] = 0
	}
	d.n -= width
	if d.cursor > to {
		d.cursor -= width
	} else if d.cursor > from {
		d.cursor = from
	}
}

// DeleteBackward removes the rune before the cursor.
func (d *InputDialog) DeleteBackward() bool {
	if d.cursor == 0 {
		return false
	}
	_, size := utf8.DecodeLastRune(d.buf[:d.cursor])
	d.remove(d.cursor-size, d.cursor)
	return true
}

// DeleteForward removes the rune after the cursor.
func (d *InputDialog) DeleteForward() bool {
	if d.cursor >= d.n {
		return false
	}
	_, size := utf8.DecodeRune(d.buf[d.cursor:d.n])
	d.remove(d.cursor, d.cursor+size)
	return true
}

// DeleteWordBackward removes the word preceding the cursor.
func (d *InputDialog) DeleteWordBackward() bool {
	start := d.wordStart()
	if start == d.cursor {
		return false
	}
	d.remove(start, d.cursor)
	return true
}

// Clear empties the buffer.
func (d *InputDialog) Clear() bool {
	if d.n == 0 {
		return false
	}
	d.buf = [Capacity]byte{}
	d.n = 0
	d.cursor = 0
	return true
}

// MoveLeft moves the cursor one rune backward.
func (d *InputDialog) MoveLeft() bool {
	if d.cursor == 0 {
		return false
	}
	_, size := utf8.DecodeLastRune(d.buf[:d.cursor])
	d.cursor -= size
	return true
}

// MoveRight moves the cursor one rune forward.
func (d *InputDialog) MoveRight() bool {
	if d.cursor >= d.n {
		return false
	}
	_, size := utf8.DecodeRune(d.buf[d.cursor:d.n])
	d.cursor += size
	return true
}

// MoveStart moves the cursor to the start of the text.
func (d *InputDialog) MoveStart() bool {
	if d.cursor == 0 {
		return false
	}
	d.cursor = 0
	return true
}

// MoveEnd moves the cursor past the last rune.
func (d *InputDialog) MoveEnd() bool {
	if d.cursor == d.n {
		return false
	}
	d.cursor = d.n
	return true
}

// MoveWordLeft moves the cursor to the start of the previous word.
func (d *InputDialog) MoveWordLeft() bool {
	start := d.wordStart()
	if start == d.cursor {
		return false
	}
	d.cursor = start
	return true
}

// MoveWordRight moves the cursor past the next word and its trailing spaces.
func (d *InputDialog) MoveWordRight() bool {
	i := d.cursor
	for i < d.n {
		r, size := utf8.DecodeRune(d.buf[i:d.n])
		if unicode.IsSpace(r) {
			break
		}
		i += size
	}
	for i < d.n {
		r, size := utf8.DecodeRune(d.buf[i:d.n])
		if !unicode.IsSpace(r) {
			break
		}
		i += size
	}
	if i == d.cursor {
		return false
	}
	d.cursor = i
	return true
}

// SetCursor places the cursor at the rune boundary at or before offset.
func (d *InputDialog) SetCursor(offset int) {
	if offset < 0 {
		offset = 0
	}
	if offset > d.n {
		offset = d.n
	}
	for offset > 0 && !utf8.RuneStart(d.buf[offset]) {
		offset--
	}
	d.cursor = offset
}

func (d *InputDialog) wordStart() int {
	i := d.cursor
	for i > 0 {
		r, size := utf8.DecodeLastRune(d.buf[:i])
		if !unicode.IsSpace(r) {
			break
		}
		i -= size
	}
	for i > 0 {
		r, size := utf8.DecodeLastRune(d.buf[:i])
		if unicode.IsSpace(r) {
			break
		}
		i -= size
	}
	return i
}

// fitRunes returns the longest prefix of s no longer than max bytes that
// ends on a rune boundary.
func fitRunes(s string, max int) string {
	if max <= 0 {
		return ""
	}
	if len(s) <= max {
		return s
	}
	cut := max
	for cut > 0 && !utf8.RuneStart(s[cut]) {
		cut--
	}
	return s[:cut]
}
