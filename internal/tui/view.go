package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/atomicstack/imdialog/internal/dialog"
	"github.com/atomicstack/imdialog/internal/format/table"
)

const (
	defaultInnerWidth = 60
	minInnerWidth     = 10
	// chromeRows counts border, header, spacer, buttons and help.
	chromeRows = 6
	ellipsis   = "…"
)

type styledLine struct {
	text          string
	style         *lipgloss.Style
	prefixStyle   *lipgloss.Style
	highlightFrom int
	raw           bool // text already carries escapes; truncate ANSI-aware
}

// View implements tea.Model.
func (m *Model) View() string {
	if m.result.Resolution.Resolved || m.result.Quit {
		return ""
	}
	width := m.innerWidth()
	var lines []styledLine
	switch sub := m.dialog.Sub.(type) {
	case *dialog.FileDialog:
		lines = m.fileLines(sub, width)
	case *dialog.InputDialog:
		lines = m.inputLines(sub, width)
	case *dialog.MenuDialog:
		lines = m.menuLines(sub, width)
	}
	lines = append(lines, styledLine{}, m.buttonLine())
	lines = applyWidth(lines, width)

	box := m.styles.Window.Width(width + 2).Render(renderLines(lines))
	helpLine := m.styles.Help.Render(ansi.Truncate(m.help.View(m.keys), width+4, ellipsis))
	view := lipgloss.JoinVertical(lipgloss.Center, box, helpLine)
	if m.width <= 0 || m.height <= 0 {
		return view
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, view)
}

func (m *Model) innerWidth() int {
	if m.width <= 0 {
		return defaultInnerWidth
	}
	w := m.width - 4
	if w < minInnerWidth {
		return minInnerWidth
	}
	return w
}

// listRows is how many list entries fit in the terminal.
func (m *Model) listRows() int {
	if m.height <= 0 {
		return defaultRows
	}
	used := chromeRows
	if m.dialog.Kind() == dialog.KindMenu {
		used++
	}
	if rows := m.height - used; rows > 0 {
		return rows
	}
	return 1
}

func (m *Model) fileLines(f *dialog.FileDialog, width int) []styledLine {
	lines := []styledLine{{text: f.Path(), style: m.styles.Path}}
	displays := f.Displays()
	if len(displays) == 0 {
		return append(lines, styledLine{text: "(nothing to show)", style: m.styles.Label})
	}
	start, end := window(f.Offset(), m.listRows(), len(displays))
	for i := start; i < end; i++ {
		lines = append(lines, m.itemLine(displays[i], i == f.Selected(), width))
	}
	return lines
}

func (m *Model) inputLines(d *dialog.InputDialog, width int) []styledLine {
	return []styledLine{
		{text: d.Prompt, style: m.styles.Prompt},
		{text: m.inputField(d, width), raw: true},
	}
}

func (m *Model) menuLines(d *dialog.MenuDialog, width int) []styledLine {
	lines := []styledLine{{text: d.Prompt, style: m.styles.Prompt}}
	if q := d.Filter(); q != "" {
		lines = append(lines, styledLine{text: m.styles.FilterPrompt.Render("/") + m.styles.Filter.Render(q), raw: true})
	} else {
		lines = append(lines, styledLine{text: "type to filter", style: m.styles.Label})
	}
	items := d.Visible()
	if len(items) == 0 {
		return append(lines, styledLine{text: fmt.Sprintf("No matches for %q", d.Filter()), style: m.styles.Label})
	}
	start, end := window(d.Offset(), m.listRows(), len(items))
	tagWidth := 0
	for _, item := range items[start:end] {
		if w := ansi.StringWidth(item.DisplayTag()); w > tagWidth {
			tagWidth = w
		}
	}
	for i := start; i < end; i++ {
		lines = append(lines, m.menuItemLine(items[i], i == d.Cursor(), tagWidth))
	}
	return lines
}

func (m *Model) itemLine(text string, selected bool, width int) styledLine {
	style := m.styles.Item
	if selected {
		style = m.styles.SelectedItem
	}
	full := marker(selected) + ansi.Strip(text)
	if pad := width - ansi.StringWidth(full); pad > 0 {
		full += strings.Repeat(" ", pad)
	}
	return styledLine{text: full, style: style, prefixStyle: m.styles.FilterPrompt, highlightFrom: 1}
}

// menuItemLine shows the tag padded to tagWidth, then the label in the
// label color.
func (m *Model) menuItemLine(item dialog.MenuItem, selected bool, tagWidth int) styledLine {
	style := m.styles.Item
	if selected {
		style = m.styles.SelectedItem
	}
	label := item.DisplayLabel()
	if label == "" {
		return styledLine{text: style.Render(marker(selected) + item.DisplayTag()), raw: true}
	}
	tag := marker(selected) + table.Pad(item.DisplayTag(), tagWidth, table.AlignLeft)
	return styledLine{text: style.Render(tag) + table.Gap + m.styles.Label.Render(label), raw: true}
}

func marker(selected bool) string {
	if selected {
		return "▌ "
	}
	return "  "
}

// inputField renders the edit buffer with the caret, scrolled so the caret
// stays inside width columns.
func (m *Model) inputField(d *dialog.InputDialog, width int) string {
	text := d.Text()
	before, after := text[:d.Cursor()], text[d.Cursor():]
	under := " "
	if after != "" {
		r := []rune(after)
		under, after = string(r[0]), string(r[1:])
	}
	for before != "" && ansi.StringWidth(before)+ansi.StringWidth(under) > width {
		r := []rune(before)
		before = string(r[1:])
	}
	if room := width - ansi.StringWidth(before) - ansi.StringWidth(under); ansi.StringWidth(after) > room {
		after = ansi.Truncate(after, room, "")
	}
	m.caret.SetChar(under)
	field := m.styles.Input.Render(before)
	if m.focus == focusBody {
		field += m.caret.View()
	} else {
		field += m.styles.Input.Render(under)
	}
	field += m.styles.Input.Render(after)
	if pad := width - ansi.StringWidth(before+under+after); pad > 0 {
		field += m.styles.Input.Render(strings.Repeat(" ", pad))
	}
	return field
}

func (m *Model) buttonLine() styledLine {
	render := func(label string, target focusTarget) string {
		if m.focus == target {
			return m.styles.FocusedButton.Render(label)
		}
		return m.styles.Button.Render(label)
	}
	var parts []string
	for _, t := range m.targets() {
		switch t {
		case focusOK:
			parts = append(parts, render("OK", focusOK))
		case focusCancel:
			parts = append(parts, render("Cancel", focusCancel))
		}
	}
	return styledLine{text: strings.Join(parts, " "), raw: true}
}

// window returns the half-open range of rows shown from offset.
func window(offset, rows, n int) (int, int) {
	if offset < 0 {
		offset = 0
	}
	if offset > n {
		offset = n
	}
	end := offset + rows
	if end > n {
		end = n
	}
	return offset, end
}

func applyWidth(lines []styledLine, width int) []styledLine {
	if width <= 0 {
		return lines
	}
	result := make([]styledLine, len(lines))
	for i, line := range lines {
		line.text = ansi.Truncate(line.text, width, ellipsis)
		result[i] = line
	}
	return result
}

func renderLines(lines []styledLine) string {
	out := make([]string, len(lines))
	for i, line := range lines {
		text := line.text
		if line.raw {
			out[i] = text
			continue
		}
		runes := []rune(text)
		if line.highlightFrom > 0 && line.highlightFrom < len(runes) {
			head := string(runes[:line.highlightFrom])
			tail := string(runes[line.highlightFrom:])
			if line.prefixStyle != nil {
				head = line.prefixStyle.Render(head)
			}
			if line.style != nil {
				tail = line.style.Render(tail)
			}
			text = head + tail
		} else if line.style != nil {
			text = line.style.Render(text)
		}
		out[i] = text
	}
	return strings.Join(out, "\n")
}
