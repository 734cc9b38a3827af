package cmd

import (
	"context"
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type dialDoneMsg struct {
	err error
}

type dialSpinnerModel struct {
	spinner spinner.Model
	label   string
	dial    tea.Cmd
	err     error
	done    bool
}

func newDialSpinnerModel(label string, dial tea.Cmd) dialSpinnerModel {
	s := spinner.New(
		spinner.WithSpinner(spinner.Dot),
		spinner.WithStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("69"))),
	)

	return dialSpinnerModel{
		spinner: s,
		label:   label,
		dial:    dial,
	}
}

func (m dialSpinnerModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.dial)
}

func (m dialSpinnerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case dialDoneMsg:
		m.done = true
		m.err = msg.err
		return m, tea.Quit
	default:
		return m, nil
	}
}

func (m dialSpinnerModel) View() string {
	if m.done {
		return ""
	}

	return fmt.Sprintf("%s %s", m.spinner.View(), m.label)
}

// runDialSpinner shows a spinner on output while dial runs.
func runDialSpinner(ctx context.Context, output io.Writer, label string, dial func(context.Context) error) error {
	dialCmd := func() tea.Msg {
		return dialDoneMsg{err: dial(ctx)}
	}

	p := tea.NewProgram(
		newDialSpinnerModel(label, dialCmd),
		tea.WithInput(nil),
		tea.WithOutput(output),
		tea.WithContext(ctx),
	)

	finalModel, err := p.Run()
	if err != nil {
		return err
	}

	result, ok := finalModel.(dialSpinnerModel)
	if !ok {
		return fmt.Errorf("unexpected final spinner model type %T", finalModel)
	}

	return result.err
}
