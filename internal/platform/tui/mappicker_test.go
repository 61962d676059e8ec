package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/weekend-arcade/internal/raycast/maps"
)

func pickerUpdate(t *testing.T, m MapPickerModel, msg tea.Msg) (MapPickerModel, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	nm, ok := next.(MapPickerModel)
	if !ok {
		t.Fatalf("Update returned %T, expected MapPickerModel", next)
	}
	return nm, cmd
}

func TestMapPickerStartsOnCurrent(t *testing.T) {
	m := NewMapPickerModel(maps.Builtin(), "maze", 100, 30)
	if cur := m.table.Cursor(); m.maps[cur].ID != "maze" {
		t.Errorf("cursor on %q, expected maze", m.maps[cur].ID)
	}
}

func TestMapPickerSelect(t *testing.T) {
	m := NewMapPickerModel(maps.Builtin(), "arena", 100, 30)

	m, _ = pickerUpdate(t, m, tea.KeyMsg{Type: tea.KeyDown})
	m, _ = pickerUpdate(t, m, tea.KeyMsg{Type: tea.KeyDown})
	m, cmd := pickerUpdate(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("select should quit the picker")
	}
	if m.Selected() == nil || m.Selected().ID != "pillars" {
		t.Errorf("selected %v, expected pillars", m.Selected())
	}
	if m.IsGoingBack() || m.IsQuitting() {
		t.Error("selecting is neither back nor quit")
	}
}

func TestMapPickerBackAndQuit(t *testing.T) {
	m := NewMapPickerModel(maps.Builtin(), "", 100, 30)
	back, _ := pickerUpdate(t, m, tea.KeyMsg{Type: tea.KeyEscape})
	if !back.IsGoingBack() || back.Selected() != nil {
		t.Error("esc should go back without a selection")
	}

	quit, _ := pickerUpdate(t, m, runeKey('q'))
	if !quit.IsQuitting() {
		t.Error("q should quit")
	}
}

func TestMapPickerView(t *testing.T) {
	m := NewMapPickerModel(maps.Builtin(), "arena", 100, 30)

	view := m.View()
	for _, want := range []string{"CHOOSE A MAP", "arena", "maze", "pillars", "16x16", "@", "bordered room"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}

	m, _ = pickerUpdate(t, m, tea.KeyMsg{Type: tea.KeyTab})
	if m.showPreview {
		t.Fatal("tab should hide the preview")
	}
	if strings.Contains(m.View(), "@") {
		t.Error("hidden preview should not draw the spawn")
	}
}

func TestMapPickerResize(t *testing.T) {
	m := NewMapPickerModel(maps.Builtin(), "maze", 100, 30)

	m, _ = pickerUpdate(t, m, tea.WindowSizeMsg{Width: 60, Height: 20})
	if m.showPreview {
		t.Error("narrow window should hide the preview")
	}
	if cur := m.table.Cursor(); m.maps[cur].ID != "maze" {
		t.Errorf("resize moved the cursor to %q", m.maps[cur].ID)
	}
}

func TestMapPickerEmpty(t *testing.T) {
	m := NewMapPickerModel(nil, "", 100, 30)

	m, cmd := pickerUpdate(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if cmd != nil || m.Selected() != nil {
		t.Error("select on an empty list should do nothing")
	}
	if !strings.Contains(m.View(), "No maps found.") {
		t.Error("empty preview should say so")
	}
}
