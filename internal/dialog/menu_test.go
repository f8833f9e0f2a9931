package dialog

import (
	"testing"
)

func scenarioMenu() *MenuDialog {
	return NewMenuDialog("Pick one", 24, []MenuItem{
		{Tag: "yes", Label: "Confirm"},
		{Tag: "no", Label: "Abort"},
	})
}

func TestMenuSelectSecondRow(t *testing.T) {
	m := scenarioMenu()
	res := m.Select(1)
	if !res.Accepted() {
		t.Fatalf("expected accept, got %#v", res)
	}
	if res.Output != "no" {
		t.Fatalf("expected tag no, got %q", res.Output)
	}
}

func TestMenuSelectEchoesTagVerbatim(t *testing.T) {
	items := []MenuItem{
		{Tag: "dup", Label: "first"},
		{Tag: "dup", Label: "second"},
		{Tag: "\x1b[1mbold\x1b[0m", Label: "escape"},
		{Tag: " spaced ", Label: ""},
	}
	m := NewMenuDialog("", 0, items)
	for i, item := range items {
		if res := m.Select(i); res.Output != item.Tag || !res.Accepted() {
			t.Fatalf("expected row %d to emit %q, got %#v", i, item.Tag, res)
		}
	}
	if items[2].DisplayTag() != "bold" {
		t.Fatalf("expected escape codes stripped for display, got %q", items[2].DisplayTag())
	}
	if res := m.Select(len(items)); res.Resolved {
		t.Fatalf("expected out-of-range select to be ignored")
	}
}

func TestMenuFilterNarrowsRows(t *testing.T) {
	m := NewMenuDialog("", 0, []MenuItem{
		{Tag: "apple", Label: "Fruit"},
		{Tag: "carrot", Label: "Vegetable"},
		{Tag: "apricot", Label: "Fruit"},
	})
	m.InsertFilter("ap")
	vis := m.Visible()
	if len(vis) != 2 || vis[0].Tag != "apple" || vis[1].Tag != "apricot" {
		t.Fatalf("expected apple and apricot, got %#v", vis)
	}
	m.InsertFilter("r")
	if m.Filter() != "apr" {
		t.Fatalf("expected filter apr, got %q", m.Filter())
	}
	if res := m.SelectCurrent(); res.Output != "apricot" {
		t.Fatalf("expected apricot, got %#v", res)
	}

	m.DeleteFilterBackward()
	m.DeleteFilterBackward()
	m.DeleteFilterBackward()
	if len(m.Visible()) != 3 {
		t.Fatalf("expected all rows after clearing, got %d", len(m.Visible()))
	}
	if m.DeleteFilterBackward() {
		t.Fatalf("expected backspace on empty filter to fail")
	}
}

func TestMenuFilterPrefersPrefixMatch(t *testing.T) {
	m := NewMenuDialog("", 0, []MenuItem{
		{Tag: "xcar", Label: ""},
		{Tag: "car", Label: ""},
	})
	m.InsertFilter("car")
	if res := m.SelectCurrent(); res.Output != "car" {
		t.Fatalf("expected exact match highlighted, got %#v", res)
	}
	m.InsertFilter(" \x07")
	if m.Filter() != "car" {
		t.Fatalf("expected control characters rejected, got %q", m.Filter())
	}
}

func TestMenuFilterWithNoMatches(t *testing.T) {
	m := scenarioMenu()
	m.InsertFilter("zzz")
	if len(m.Visible()) != 0 {
		t.Fatalf("expected no rows, got %#v", m.Visible())
	}
	if res := m.SelectCurrent(); res.Resolved {
		t.Fatalf("expected no resolution with no rows")
	}
	if !m.ClearFilter() || len(m.Visible()) != 2 {
		t.Fatalf("expected rows restored after clear")
	}
	m.InsertFilter("yes no")
	m.DeleteFilterWordBackward()
	if m.Filter() != "yes " {
		t.Fatalf("expected trailing word removed, got %q", m.Filter())
	}
}

func TestMenuCursorMovement(t *testing.T) {
	m := scenarioMenu()
	if m.MoveUp() {
		t.Fatalf("expected no movement above first row")
	}
	if !m.MoveDown() || m.Cursor() != 1 {
		t.Fatalf("expected cursor on second row, got %d", m.Cursor())
	}
	if m.MoveDown() {
		t.Fatalf("expected no movement past last row")
	}
	m.Home()
	if res := m.SelectCurrent(); res.Output != "yes" {
		t.Fatalf("expected yes, got %#v", res)
	}
}
