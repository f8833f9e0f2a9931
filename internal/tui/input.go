package tui

import (
	"unicode"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/atomicstack/imdialog/internal/dialog"
)

// typed returns the text a key press inserts, or "" for non-text keys.
// Bracketed pastes arrive as a single rune message.
func typed(msg tea.KeyMsg) string {
	switch msg.Type {
	case tea.KeySpace:
		return " "
	case tea.KeyRunes:
		if msg.Alt || len(msg.Runes) == 0 {
			return ""
		}
		for _, r := range msg.Runes {
			if unicode.IsControl(r) {
				return ""
			}
		}
		return string(msg.Runes)
	default:
		return ""
	}
}

func (m *Model) handleTextInput(d *dialog.InputDialog, msg tea.KeyMsg) bool {
	before := d.Cursor()
	var changed bool
	switch {
	case key.Matches(msg, m.keys.ClearLine):
		changed = d.Clear()
	case key.Matches(msg, m.keys.DeleteWord):
		changed = d.DeleteWordBackward()
	case key.Matches(msg, m.keys.Backspace):
		changed = d.DeleteBackward()
	case key.Matches(msg, m.keys.Delete):
		changed = d.DeleteForward()
	case key.Matches(msg, m.keys.WordLeft):
		changed = d.MoveWordLeft()
	case key.Matches(msg, m.keys.WordRight):
		changed = d.MoveWordRight()
	case key.Matches(msg, m.keys.Left):
		changed = d.MoveLeft()
	case key.Matches(msg, m.keys.Right):
		changed = d.MoveRight()
	case key.Matches(msg, m.keys.Home), msg.Type == tea.KeyCtrlA:
		changed = d.MoveStart()
	case key.Matches(msg, m.keys.End), msg.Type == tea.KeyCtrlE:
		changed = d.MoveEnd()
	default:
		if text := typed(msg); text != "" {
			changed = d.InsertText(text)
		}
	}
	if d.Cursor() != before {
		m.caretUp = true
	}
	return changed
}

func (m *Model) handleFilterInput(d *dialog.MenuDialog, msg tea.KeyMsg) bool {
	switch {
	case key.Matches(msg, m.keys.ClearLine):
		return m.refiltered(d, d.ClearFilter())
	case key.Matches(msg, m.keys.DeleteWord):
		return m.refiltered(d, d.DeleteFilterWordBackward())
	case key.Matches(msg, m.keys.Backspace):
		return m.refiltered(d, d.DeleteFilterBackward())
	}
	if text := typed(msg); text != "" {
		return m.refiltered(d, d.InsertFilter(text))
	}
	return false
}

func (m *Model) refiltered(d *dialog.MenuDialog, changed bool) bool {
	if changed {
		d.EnsureVisible(m.listRows())
	}
	return changed
}
