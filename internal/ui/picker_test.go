package ui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func keyMsg(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case " ":
		return tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
}

func testItems() []FixItem {
	return []FixItem{
		{ID: "fix-1", Title: "wrap in do/catch", Location: "a.swift:1:9"},
		{ID: "fix-2", Title: "wrap in do/catch", Location: "a.swift:4:13"},
		{ID: "fix-3", Title: "wrap in do/catch", Location: "b.swift:2:5"},
	}
}

func drive(m *pickerModel, keys ...string) *pickerModel {
	var model tea.Model = m
	for _, k := range keys {
		model, _ = model.Update(keyMsg(k))
	}
	return model.(*pickerModel)
}

func TestPickerToggleAndConfirm(t *testing.T) {
	m := drive(newPickerModel(testItems()), " ", "j", "j", " ", "enter")
	if !m.done {
		t.Fatalf("enter must finish the session")
	}
	res := m.result()
	if res.Canceled {
		t.Fatalf("confirmed session reported as canceled")
	}
	if len(res.IDs) != 2 || res.IDs[0] != "fix-1" || res.IDs[1] != "fix-3" {
		t.Fatalf("ids = %v", res.IDs)
	}
}

func TestPickerSelectAllAndNone(t *testing.T) {
	m := drive(newPickerModel(testItems()), "a")
	if m.selectedCount() != 3 {
		t.Fatalf("selected = %d after all", m.selectedCount())
	}
	m = drive(m, "n")
	if m.selectedCount() != 0 {
		t.Fatalf("selected = %d after none", m.selectedCount())
	}
}

func TestPickerCancel(t *testing.T) {
	m := drive(newPickerModel(testItems()), " ", "q")
	res := m.result()
	if !res.Canceled || len(res.IDs) != 0 {
		t.Fatalf("result = %+v", res)
	}
}

func TestPickerCursorBounds(t *testing.T) {
	m := drive(newPickerModel(testItems()), "k", "k")
	if m.cursor != 0 {
		t.Fatalf("cursor = %d, want 0", m.cursor)
	}
	m = drive(m, "j", "j", "j", "j")
	if m.cursor != 2 {
		t.Fatalf("cursor = %d, want 2", m.cursor)
	}
}

func TestPickerViewShowsSelection(t *testing.T) {
	m := drive(newPickerModel(testItems()), " ")
	view := m.View()
	if !strings.Contains(view, "[x]") {
		t.Fatalf("view missing selection marker:\n%s", view)
	}
	if !strings.Contains(view, "a.swift:1:9") {
		t.Fatalf("view missing location:\n%s", view)
	}
}
