package input

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

// selectModel is the Bubble Tea model behind Prompter.Select.
type selectModel struct {
	message  string
	options  []string
	cursor   int
	selected *int
}

func newSelectModel(message string, options []string, defaultIndex int) selectModel {
	cursor := 0
	if defaultIndex >= 0 && defaultIndex < len(options) {
		cursor = defaultIndex
	}
	return selectModel{
		message: message,
		options: options,
		cursor:  cursor,
	}
}

func (m selectModel) Init() tea.Cmd {
	return nil
}

func (m selectModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q", "esc":
			return m, tea.Quit

		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}

		case "down", "j":
			if m.cursor < len(m.options)-1 {
				m.cursor++
			}

		case "enter":
			choice := m.cursor
			m.selected = &choice
			return m, tea.Quit
		}
	}

	return m, nil
}

func (m selectModel) View() string {
	var b strings.Builder

	b.WriteString(promptStyle.Render(m.message) + "\n")
	b.WriteString(hintStyle.Render("  [↑/↓] Navigate    [Enter] Select    [q] Cancel") + "\n\n")

	for i, option := range m.options {
		if m.cursor == i {
			b.WriteString("  " + selectedStyle.Render("> "+option) + "\n")
		} else {
			b.WriteString("    " + option + "\n")
		}
	}

	return b.String()
}
