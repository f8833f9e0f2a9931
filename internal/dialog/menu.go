package dialog

import (
	"strings"
	"unicode"

	"github.com/atomicstack/imdialog/internal/logging/events"
	"github.com/charmbracelet/x/ansi"
	"github.com/lithammer/fuzzysearch/fuzzy"
)

// MenuItem is one tagged row. The tag is echoed verbatim on selection.
type MenuItem struct {
	Tag   string
	Label string
}

// DisplayTag is the tag with terminal escape sequences removed.
func (it MenuItem) DisplayTag() string { return ansi.Strip(it.Tag) }

// DisplayLabel is the label with terminal escape sequences removed.
func (it MenuItem) DisplayLabel() string { return ansi.Strip(it.Label) }

// MenuDialog selects one of a fixed list of tagged rows. Typing narrows the
// visible rows; row indices given to Select refer to the visible rows.
type MenuDialog struct {
	Prompt    string
	RowHeight int

	items   []MenuItem
	visible []int
	filter  string
	cursor  cursor
}

// NewMenuDialog copies items so later edits by the caller have no effect.
func NewMenuDialog(prompt string, rowHeight int, items []MenuItem) *MenuDialog {
	m := &MenuDialog{
		Prompt:    prompt,
		RowHeight: rowHeight,
		items:     append([]MenuItem(nil), items...),
	}
	m.applyFilter()
	return m
}

// Items returns every row regardless of the filter.
func (m *MenuDialog) Items() []MenuItem { return m.items }

// Visible returns the rows that pass the current filter, in original order.
func (m *MenuDialog) Visible() []MenuItem {
	out := make([]MenuItem, len(m.visible))
	for i, idx := range m.visible {
		out[i] = m.items[idx]
	}
	return out
}

// Filter is the current filter query.
func (m *MenuDialog) Filter() string { return m.filter }

// Len is the number of visible rows.
func (m *MenuDialog) Len() int { return len(m.visible) }

// Cursor is the highlighted visible row.
func (m *MenuDialog) Cursor() int { return m.cursor.index }

// Offset is the first visible row inside the viewport.
func (m *MenuDialog) Offset() int { return m.cursor.offset }

// Select resolves with the tag of visible row i.
func (m *MenuDialog) Select(i int) Resolution {
	if i < 0 || i >= len(m.visible) {
		return Resolution{}
	}
	m.cursor.index = i
	return accept(KindMenu, m.items[m.visible[i]].Tag)
}

// SelectCurrent resolves with the highlighted row.
func (m *MenuDialog) SelectCurrent() Resolution {
	return m.Select(m.cursor.index)
}

// SetCursor highlights visible row i.
func (m *MenuDialog) SetCursor(i int) bool {
	return m.traced(m.cursor.set(len(m.visible), i))
}

func (m *MenuDialog) MoveUp() bool   { return m.traced(m.cursor.moveBy(len(m.visible), -1)) }
func (m *MenuDialog) MoveDown() bool { return m.traced(m.cursor.moveBy(len(m.visible), 1)) }
func (m *MenuDialog) Home() bool     { return m.traced(m.cursor.home(len(m.visible))) }
func (m *MenuDialog) End() bool      { return m.traced(m.cursor.end(len(m.visible))) }

func (m *MenuDialog) PageUp(rows int) bool {
	return m.traced(m.cursor.pageUp(len(m.visible), rows))
}

func (m *MenuDialog) PageDown(rows int) bool {
	return m.traced(m.cursor.pageDown(len(m.visible), rows))
}

// Scroll moves the viewport without changing the highlighted row.
func (m *MenuDialog) Scroll(rows, delta int) bool {
	return m.cursor.scroll(len(m.visible), rows, delta)
}

// EnsureVisible keeps the highlighted row inside a window of rows entries.
func (m *MenuDialog) EnsureVisible(rows int) {
	m.cursor.ensureVisible(len(m.visible), rows)
}

func (m *MenuDialog) traced(moved bool) bool {
	if moved {
		events.Dialog.Cursor(KindMenu.String(), m.cursor.index)
	}
	return moved
}

// InsertFilter appends text to the filter query.
func (m *MenuDialog) InsertFilter(text string) bool {
	if text == "" {
		return false
	}
	for _, r := range text {
		if unicode.IsControl(r) {
			return false
		}
	}
	m.setFilter(m.filter + text)
	return true
}

// DeleteFilterBackward removes the last rune of the filter query.
func (m *MenuDialog) DeleteFilterBackward() bool {
	runes := []rune(m.filter)
	if len(runes) == 0 {
		return false
	}
	m.setFilter(string(runes[:len(runes)-1]))
	return true
}

// DeleteFilterWordBackward removes the last word of the filter query.
func (m *MenuDialog) DeleteFilterWordBackward() bool {
	runes := []rune(m.filter)
	if len(runes) == 0 {
		return false
	}
	i := len(runes)
	for i > 0 && unicode.IsSpace(runes[i-1]) {
		i--
	}
	for i > 0 && !unicode.IsSpace(runes[i-1]) {
		i--
	}
	m.setFilter(string(runes[:i]))
	return true
}

// ClearFilter shows every row again.
func (m *MenuDialog) ClearFilter() bool {
	if m.filter == "" {
		return false
	}
	m.setFilter("")
	return true
}

func (m *MenuDialog) setFilter(query string) {
	m.filter = query
	m.applyFilter()
	m.cursor.reset()
	if trimmed := strings.TrimSpace(query); trimmed != "" {
		if idx := bestMatchIndex(m.Visible(), trimmed); idx >= 0 {
			m.cursor.index = idx
		}
	}
	events.Dialog.Filter(m.filter, len(m.visible))
}

func (m *MenuDialog) applyFilter() {
	m.visible = filterIndices(m.items, m.filter)
	m.cursor.clamp(len(m.visible))
}

// filterIndices returns the indices of items matching query, in item order.
func filterIndices(items []MenuItem, query string) []int {
	trimmed := strings.TrimSpace(query)
	all := make([]int, 0, len(items))
	if trimmed == "" {
		for i := range items {
			all = append(all, i)
		}
		return all
	}
	targets := make([]string, len(items))
	for i, item := range items {
		targets[i] = item.DisplayTag() + " " + item.DisplayLabel()
	}
	if ranks := fuzzy.RankFindNormalizedFold(trimmed, targets); len(ranks) > 0 {
		matched := make(map[int]struct{}, len(ranks))
		for _, rank := range ranks {
			matched[rank.OriginalIndex] = struct{}{}
		}
		for i := range items {
			if _, ok := matched[i]; ok {
				all = append(all, i)
			}
		}
		return all
	}
	lower := strings.ToLower(trimmed)
	for i, target := range targets {
		if strings.Contains(strings.ToLower(target), lower) {
			all = append(all, i)
		}
	}
	return all
}

// bestMatchIndex prefers exact, then prefix, then substring matches on the
// tag before the label, and falls back to the closest fuzzy match.
func bestMatchIndex(items []MenuItem, query string) int {
	if len(items) == 0 {
		return -1
	}
	lower := strings.ToLower(query)
	for i, item := range items {
		if strings.EqualFold(item.DisplayTag(), query) || strings.EqualFold(item.DisplayLabel(), query) {
			return i
		}
	}
	for i, item := range items {
		if strings.HasPrefix(strings.ToLower(item.DisplayTag()), lower) {
			return i
		}
	}
	for i, item := range items {
		if strings.HasPrefix(strings.ToLower(item.DisplayLabel()), lower) {
			return i
		}
	}
	labels := make([]string, len(items))
	for i, item := range items {
		labels[i] = item.DisplayTag() + " " + item.DisplayLabel()
	}
	ranks := fuzzy.RankFindNormalizedFold(query, labels)
	if len(ranks) == 0 {
		return 0
	}
	best := ranks[0]
	for _, rank := range ranks[1:] {
		if rank.Distance < best.Distance ||
			(rank.Distance == best.Distance && rank.OriginalIndex < best.OriginalIndex) {
			best = rank
		}
	}
	if best.OriginalIndex < 0 || best.OriginalIndex >= len(items) {
		return 0
	}
	return best.OriginalIndex
}
