package cmd

import (
	"context"
	"fmt"
	"io"

	"github.com/bnema/mcli/internal/adapters/fetch"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type downloadDoneMsg struct {
	err error
}

type downloadProgressMsg struct {
	done  int
	total int
}

type downloadSpinnerModel struct {
	spinner  spinner.Model
	counter  lipgloss.Style
	label    string
	work     tea.Cmd
	done     int
	total    int
	err      error
	finished bool
}

func newDownloadSpinnerModel(label string, work tea.Cmd) downloadSpinnerModel {
	s := spinner.New(
		spinner.WithSpinner(spinner.Dot),
		spinner.WithStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("69"))),
	)

	return downloadSpinnerModel{
		spinner: s,
		counter: lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		label:   label,
		work:    work,
	}
}

func (m downloadSpinnerModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.work)
}

func (m downloadSpinnerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case downloadProgressMsg:
		m.done = msg.done
		m.total = msg.total
		return m, nil
	case downloadDoneMsg:
		m.finished = true
		m.err = msg.err
		return m, tea.Quit
	default:
		return m, nil
	}
}

func (m downloadSpinnerModel) View() string {
	if m.finished {
		return ""
	}
	if m.total == 0 {
		return fmt.Sprintf("%s %s", m.spinner.View(), m.label)
	}

	return fmt.Sprintf("%s %s %s", m.spinner.View(), m.label, m.counter.Render(fmt.Sprintf("%d/%d files", m.done, m.total)))
}

// runDownloadSpinner runs work behind a spinner. onProgress installs the
// callback the fetch engine reports completed transfers through; it is
// reset once work returns.
func runDownloadSpinner(ctx context.Context, output io.Writer, label string, onProgress func(fetch.ProgressFunc), work func(context.Context) error) error {
	workCmd := func() tea.Msg {
		return downloadDoneMsg{err: work(ctx)}
	}

	p := tea.NewProgram(
		newDownloadSpinnerModel(label, workCmd),
		tea.WithInput(nil),
		tea.WithOutput(output),
		tea.WithContext(ctx),
	)

	onProgress(func(done, total int) {
		p.Send(downloadProgressMsg{done: done, total: total})
	})
	defer onProgress(nil)

	finalModel, err := p.Run()
	if err != nil {
		return err
	}

	result, ok := finalModel.(downloadSpinnerModel)
	if !ok {
		return fmt.Errorf("unexpected final spinner model type %T", finalModel)
	}

	return result.err
}
