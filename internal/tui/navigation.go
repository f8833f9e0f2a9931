package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/atomicstack/imdialog/internal/dialog"
	"github.com/atomicstack/imdialog/internal/logging/events"
)

// wheelStep is how many rows one wheel notch scrolls.
const wheelStep = 3

// list is the cursor surface shared by file and menu dialogs.
type list interface {
	MoveUp() bool
	MoveDown() bool
	Home() bool
	End() bool
	PageUp(rows int) bool
	PageDown(rows int) bool
	Scroll(rows, delta int) bool
	EnsureVisible(rows int)
}

func (m *Model) handleKeyMsg(msg tea.Msg) tea.Cmd {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}
	events.Input.Event("key", keyMsg.String(), 0)

	switch {
	case keyMsg.Type == tea.KeyCtrlC:
		return m.quit()
	case key.Matches(keyMsg, m.keys.Abort):
		return m.resolve(m.dialog.Abort())
	case key.Matches(keyMsg, m.keys.Next):
		m.cycleFocus(1)
		return nil
	case key.Matches(keyMsg, m.keys.Prev):
		m.cycleFocus(-1)
		return nil
	case key.Matches(keyMsg, m.keys.Submit):
		return m.activate()
	}

	if m.focus != focusBody {
		switch {
		case key.Matches(keyMsg, m.keys.Left):
			m.cycleFocus(-1)
		case key.Matches(keyMsg, m.keys.Right):
			m.cycleFocus(1)
		}
		return nil
	}

	switch sub := m.dialog.Sub.(type) {
	case *dialog.FileDialog:
		m.navigateList(sub, keyMsg)
	case *dialog.InputDialog:
		m.handleTextInput(sub, keyMsg)
	case *dialog.MenuDialog:
		if !m.navigateList(sub, keyMsg) {
			m.handleFilterInput(sub, keyMsg)
		}
	}
	return nil
}

// activate performs the focused control's action.
func (m *Model) activate() tea.Cmd {
	if m.focus == focusCancel {
		return m.resolve(m.dialog.Cancel())
	}
	cmd := m.resolve(m.dialog.Confirm())
	if f, ok := m.dialog.Sub.(*dialog.FileDialog); ok && cmd == nil {
		f.EnsureVisible(m.listRows())
	}
	return cmd
}

func (m *Model) navigateList(l list, msg tea.KeyMsg) bool {
	rows := m.listRows()
	handled := true
	switch {
	case key.Matches(msg, m.keys.Up):
		l.MoveUp()
	case key.Matches(msg, m.keys.Down):
		l.MoveDown()
	case key.Matches(msg, m.keys.PageUp):
		l.PageUp(rows)
	case key.Matches(msg, m.keys.PageDown):
		l.PageDown(rows)
	case key.Matches(msg, m.keys.Home):
		l.Home()
	case key.Matches(msg, m.keys.End):
		l.End()
	default:
		handled = false
	}
	if handled {
		l.EnsureVisible(rows)
	}
	return handled
}

func (m *Model) handleMouseMsg(msg tea.Msg) tea.Cmd {
	ev, ok := msg.(tea.MouseMsg)
	if !ok {
		return nil
	}
	var l list
	switch sub := m.dialog.Sub.(type) {
	case *dialog.FileDialog:
		l = sub
	case *dialog.MenuDialog:
		l = sub
	default:
		return nil
	}
	switch ev.Button {
	case tea.MouseButtonWheelUp:
		l.Scroll(m.listRows(), -wheelStep)
	case tea.MouseButtonWheelDown:
		l.Scroll(m.listRows(), wheelStep)
	}
	return nil
}

func (m *Model) handleWindowSizeMsg(msg tea.Msg) tea.Cmd {
	resize, ok := msg.(tea.WindowSizeMsg)
	if !ok {
		return nil
	}
	m.width = resize.Width
	m.height = resize.Height
	switch sub := m.dialog.Sub.(type) {
	case *dialog.FileDialog:
		sub.EnsureVisible(m.listRows())
	case *dialog.MenuDialog:
		sub.EnsureVisible(m.listRows())
	}
	return nil
}
