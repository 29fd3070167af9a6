// Package ui contains the interactive terminal front-end for choosing which
// rewrites to apply.
package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

// FixItem is one selectable rewrite candidate.
type FixItem struct {
	ID       string
	Title    string
	Location string
	Detail   string
}

// PickResult holds the outcome of an interactive session.
type PickResult struct {
	IDs      []string
	Canceled bool
}

type pickerKeyMap struct {
	Up      key.Binding
	Down    key.Binding
	Toggle  key.Binding
	All     key.Binding
	None    key.Binding
	Confirm key.Binding
	Cancel  key.Binding
}

func defaultPickerKeys() pickerKeyMap {
	return pickerKeyMap{
		Up:      key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("up/k", "move up")),
		Down:    key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("down/j", "move down")),
		Toggle:  key.NewBinding(key.WithKeys(" ", "x"), key.WithHelp("space", "toggle")),
		All:     key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "select all")),
		None:    key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "select none")),
		Confirm: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "apply selected")),
		Cancel:  key.NewBinding(key.WithKeys("q", "esc", "ctrl+c"), key.WithHelp("q", "quit without applying")),
	}
}

type pickerModel struct {
	items    []FixItem
	selected []bool
	cursor   int
	keys     pickerKeyMap
	width    int
	done     bool
	canceled bool
}

func newPickerModel(items []FixItem) *pickerModel {
	return &pickerModel{
		items:    items,
		selected: make([]bool, len(items)),
		keys:     defaultPickerKeys(),
		width:    80,
	}
}

func (m *pickerModel) Init() tea.Cmd {
	return nil
}

func (m *pickerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		if msg.Width > 0 {
			m.width = msg.Width
		}
		return m, nil
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Up):
			if m.cursor > 0 {
				m.cursor--
			}
		case key.Matches(msg, m.keys.Down):
			if m.cursor < len(m.items)-1 {
				m.cursor++
			}
		case key.Matches(msg, m.keys.Toggle):
			if len(m.items) > 0 {
				m.selected[m.cursor] = !m.selected[m.cursor]
			}
		case key.Matches(msg, m.keys.All):
			for i := range m.selected {
				m.selected[i] = true
			}
		case key.Matches(msg, m.keys.None):
			for i := range m.selected {
				m.selected[i] = false
			}
		case key.Matches(msg, m.keys.Confirm):
			m.done = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Cancel):
			m.canceled = true
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m *pickerModel) View() string {
	if m.done || m.canceled {
		return ""
	}
	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("7"))
	cursorStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	markStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	dimStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("8"))

	var b strings.Builder
	b.WriteString(titleStyle.Render(fmt.Sprintf("select rewrites (%d/%d)", m.selectedCount(), len(m.items))))
	b.WriteString("\n\n")

	lineWidth := m.width - 8
	if lineWidth < 20 {
		lineWidth = 20
	}

	for i, item := range m.items {
		pointer := "  "
		if i == m.cursor {
			pointer = cursorStyle.Render("> ")
		}
		mark := "[ ]"
		if m.selected[i] {
			mark = markStyle.Render("[x]")
		}
		label := truncate(fmt.Sprintf("%s  %s", item.Location, item.Title), lineWidth)
		b.WriteString(fmt.Sprintf("%s%s %s\n", pointer, mark, label))
		if i == m.cursor && item.Detail != "" {
			b.WriteString(dimStyle.Render("       " + truncate(item.Detail, lineWidth)))
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(dimStyle.Render("space toggle, a all, n none, enter apply, q quit"))
	b.WriteString("\n")
	return b.String()
}

func (m *pickerModel) selectedCount() int {
	count := 0
	for _, sel := range m.selected {
		if sel {
			count++
		}
	}
	return count
}

func (m *pickerModel) result() PickResult {
	if m.canceled {
		return PickResult{Canceled: true}
	}
	var ids []string
	for i, sel := range m.selected {
		if sel {
			ids = append(ids, m.items[i].ID)
		}
	}
	return PickResult{IDs: ids}
}

// PickFixes runs the interactive picker and returns the chosen fix IDs.
func PickFixes(items []FixItem) (PickResult, error) {
	if len(items) == 0 {
		return PickResult{}, nil
	}
	model := newPickerModel(items)
	prog := tea.NewProgram(model)
	out, err := prog.Run()
	if err != nil {
		return PickResult{}, fmt.Errorf("interactive picker failed: %w", err)
	}
	final, ok := out.(*pickerModel)
	if !ok {
		return PickResult{}, fmt.Errorf("unexpected picker model type %T", out)
	}
	return final.result(), nil
}

func truncate(value string, width int) string {
	if width <= 0 {
		return value
	}
	if runewidth.StringWidth(value) <= width {
		return value
	}
	if width <= 3 {
		return runewidth.Truncate(value, width, "")
	}
	return runewidth.Truncate(value, width-3, "...")
}
