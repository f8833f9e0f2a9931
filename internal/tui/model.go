package tui

import (
	"reflect"

	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/atomicstack/imdialog/internal/dialog"
	"github.com/atomicstack/imdialog/internal/input"
	"github.com/atomicstack/imdialog/internal/theme"
)

// defaultRows is the list height used before the terminal size is known.
const defaultRows = 5

type focusTarget int

const (
	focusBody focusTarget = iota
	focusOK
	focusCancel
)

func (f focusTarget) String() string {
	switch f {
	case focusBody:
		return "body"
	case focusOK:
		return "ok"
	case focusCancel:
		return "cancel"
	default:
		return "unknown"
	}
}

type msgHandler func(tea.Msg) tea.Cmd

// Result is how the terminal session ended.
type Result struct {
	Resolution dialog.Resolution
	Quit       bool
	Updates    int
}

// Model implements tea.Model for a single dialog.
type Model struct {
	dialog  *dialog.Dialog
	keys    input.KeyMap
	styles  theme.Styles
	help    help.Model
	caret   cursor.Model
	focus   focusTarget
	width   int
	height  int
	result  Result
	caretUp bool
	blinks  bool

	handlers map[reflect.Type]msgHandler
}

// NewModel wraps d. The focus starts on the dialog body.
func NewModel(d *dialog.Dialog) *Model {
	styles := *theme.Default()
	m := &Model{
		dialog: d,
		keys:   input.DefaultKeyMap(),
		styles: styles,
		help:   help.New(),
	}
	m.help.Styles.ShortKey = *styles.Help
	m.help.Styles.ShortDesc = *styles.Help
	c := cursor.New()
	c.Style = *styles.Cursor
	c.TextStyle = *styles.Input
	m.caret = c
	m.registerHandlers()
	return m
}

// Init is part of the tea.Model interface.
func (m *Model) Init() tea.Cmd {
	if m.dialog.Kind() != dialog.KindInput {
		return nil
	}
	m.blinks = true
	return m.caret.Focus()
}

// Update responds to Bubble Tea messages.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	cmds := make([]tea.Cmd, 0, 2)
	if cmd := m.updateCaret(msg); cmd != nil {
		cmds = append(cmds, cmd)
	}
	if m.result.Resolution.Resolved || m.result.Quit {
		return m, tea.Quit
	}
	if handler := m.handlerFor(msg); handler != nil {
		m.result.Updates++
		if cmd := handler(msg); cmd != nil {
			cmds = append(cmds, cmd)
		}
	}
	return m, m.finishUpdate(cmds)
}

// Result reports the resolution, or Quit when the session was abandoned.
func (m *Model) Result() Result { return m.result }

// Dialog exposes the model being edited.
func (m *Model) Dialog() *dialog.Dialog { return m.dialog }

func (m *Model) registerHandlers() {
	m.handlers = map[reflect.Type]msgHandler{
		reflect.TypeOf(tea.KeyMsg{}):        m.handleKeyMsg,
		reflect.TypeOf(tea.MouseMsg{}):      m.handleMouseMsg,
		reflect.TypeOf(tea.WindowSizeMsg{}): m.handleWindowSizeMsg,
	}
}

func (m *Model) handlerFor(msg tea.Msg) msgHandler {
	if msg == nil || m.handlers == nil {
		return nil
	}
	t := reflect.TypeOf(msg)
	if handler, ok := m.handlers[t]; ok {
		return handler
	}
	if t.Kind() == reflect.Ptr {
		if handler, ok := m.handlers[t.Elem()]; ok {
			return handler
		}
	}
	return nil
}

// resolve records a terminal resolution and ends the program.
func (m *Model) resolve(res dialog.Resolution) tea.Cmd {
	if !res.Resolved {
		return nil
	}
	m.result.Resolution = res
	return tea.Quit
}

func (m *Model) quit() tea.Cmd {
	m.result.Quit = true
	return tea.Quit
}

func (m *Model) updateCaret(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	m.caret, cmd = m.caret.Update(msg)
	return cmd
}

func (m *Model) finishUpdate(cmds []tea.Cmd) tea.Cmd {
	if m.caretUp {
		m.caretUp = false
		m.caret.Blink = false
		if m.blinks {
			if cmd := m.caret.BlinkCmd(); cmd != nil {
				cmds = append(cmds, cmd)
			}
		}
	}
	if len(cmds) == 0 {
		return nil
	}
	return tea.Batch(cmds...)
}

// targets lists the focusable controls of the live dialog in tab order.
func (m *Model) targets() []focusTarget {
	if m.dialog.Kind() == dialog.KindMenu {
		return []focusTarget{focusBody, focusCancel}
	}
	return []focusTarget{focusBody, focusOK, focusCancel}
}

func (m *Model) cycleFocus(dir int) {
	targets := m.targets()
	idx := 0
	for i, t := range targets {
		if t == m.focus {
			idx = i
			break
		}
	}
	idx = (idx + dir + len(targets)) % len(targets)
	m.focus = targets[idx]
}
