package ui

import (
	"fmt"
	"os"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

// doneMsg tells the spinner program the wrapped work finished.
type doneMsg struct{}

type spinnerModel struct {
	sp      spinner.Model
	label   string
	aborted bool
	done    bool
}

func newSpinnerModel(label string) spinnerModel {
	return spinnerModel{
		sp: spinner.New(
			spinner.WithSpinner(spinner.MiniDot),
			spinner.WithStyle(cyanStyle),
		),
		label: label,
	}
}

func (m spinnerModel) Init() tea.Cmd {
	return m.sp.Tick
}

func (m spinnerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case doneMsg:
		m.done = true
		return m, tea.Quit
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			m.aborted = true
			return m, tea.Quit
		}
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.sp, cmd = m.sp.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m spinnerModel) View() string {
	if m.done || m.aborted {
		return ""
	}
	return fmt.Sprintf(" %s %s\n", m.sp.View(), HiBlack(m.label))
}

// RunWithSpinner runs f while showing a spinner with the given label.
// The spinner renders on stderr so stdout stays pipe-clean.
func RunWithSpinner(label string, f func() error) error {
	p := tea.NewProgram(newSpinnerModel(label), tea.WithOutput(os.Stderr))

	result := make(chan error, 1)
	go func() {
		result <- f()
		p.Send(doneMsg{})
	}()

	if _, err := p.Run(); err != nil {
		return err
	}
	return <-result
}
