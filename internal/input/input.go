// Package input provides interactive terminal prompts for the nativekit CLI.
//
// Prompts are Bubble Tea programs styled with lipgloss. Callers talk to the
// Prompter interface so the scaffolding flow can be tested without a terminal.
package input

import (
	"errors"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"
)

var (
	// ErrInputUnavailable is returned when prompts are requested but stdin is
	// not an interactive terminal.
	ErrInputUnavailable = errors.New("interactive input unavailable: stdin is not a terminal")

	// ErrAborted is returned when the user cancels a prompt with ctrl+c or
	// esc; the select menu also cancels on q.
	ErrAborted = errors.New("prompt aborted")
)

var (
	promptStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("cyan")).Bold(true)
	hintStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	selectedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("cyan")).Bold(true)
)

// Prompter asks the operator questions. Each call blocks until the operator
// answers or cancels; prompts are never concurrent.
type Prompter interface {
	// Confirm asks a yes/no question and returns the answer.
	Confirm(message string, defaultYes bool) (bool, error)

	// Select presents a closed list of options and returns the chosen index.
	Select(message string, options []string, defaultIndex int) (int, error)
}

// TerminalPrompter implements Prompter on the controlling terminal.
type TerminalPrompter struct{}

// NewTerminalPrompter returns a terminal-backed prompter, or
// ErrInputUnavailable when stdin is not a terminal.
func NewTerminalPrompter() (*TerminalPrompter, error) {
	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return nil, ErrInputUnavailable
	}
	return &TerminalPrompter{}, nil
}

// Confirm asks a yes/no question.
func (p *TerminalPrompter) Confirm(message string, defaultYes bool) (bool, error) {
	final, err := tea.NewProgram(newConfirmModel(message, defaultYes)).Run()
	if err != nil {
		return false, err
	}

	m := final.(confirmModel)
	if m.aborted {
		return false, ErrAborted
	}
	return m.value, nil
}

// Select presents a vertical menu and returns the index of the chosen option.
func (p *TerminalPrompter) Select(message string, options []string, defaultIndex int) (int, error) {
	final, err := tea.NewProgram(newSelectModel(message, options, defaultIndex)).Run()
	if err != nil {
		return 0, err
	}

	m := final.(selectModel)
	if m.selected == nil {
		return 0, ErrAborted
	}
	return *m.selected, nil
}
