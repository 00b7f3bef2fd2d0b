package input

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

// confirmModel is the Bubble Tea model behind Prompter.Confirm.
type confirmModel struct {
	message string
	value   bool
	done    bool
	aborted bool
}

func newConfirmModel(message string, defaultYes bool) confirmModel {
	return confirmModel{
		message: message,
		value:   defaultYes,
	}
}

func (m confirmModel) Init() tea.Cmd {
	return nil
}

func (m confirmModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			m.aborted = true
			return m, tea.Quit

		case "y", "Y":
			m.value = true
			m.done = true
			return m, tea.Quit

		case "n", "N":
			m.value = false
			m.done = true
			return m, tea.Quit

		case "left", "right", "tab", "h", "l":
			m.value = !m.value

		case "enter":
			m.done = true
			return m, tea.Quit
		}
	}

	return m, nil
}

func (m confirmModel) View() string {
	var b strings.Builder

	yes, no := "  Yes  ", "  No  "
	if m.value {
		yes = selectedStyle.Render("> Yes <")
	} else {
		no = selectedStyle.Render("> No <")
	}

	b.WriteString(promptStyle.Render(m.message) + "\n")
	b.WriteString(hintStyle.Render("  [←/→] Toggle    [y/n] Answer    [Enter] Accept") + "\n\n")
	b.WriteString("  " + yes + "   " + no + "\n")

	return b.String()
}
