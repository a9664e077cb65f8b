package java

import (
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type scanFinishedMsg struct{}

type scannerModel struct {
	spinner  spinner.Model
	quitting bool
}

func newScannerModel() scannerModel {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("12"))

	return scannerModel{
		spinner: s,
	}
}

func (m scannerModel) Init() tea.Cmd {
	return m.spinner.Tick
}

func (m scannerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			m.quitting = true
			return m, tea.Quit
		}
		return m, nil

	case scanFinishedMsg:
		m.quitting = true
		return m, tea.Quit

	default:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}
}

func (m scannerModel) View() string {
	if m.quitting {
		return ""
	}
	return fmt.Sprintf(" %s Scanning for JVMs...\n", m.spinner.View())
}

// FindAllWithSpinner runs FindAll while a spinner animates on out.
// Discovery itself still runs start to finish on one goroutine.
func (d *Detector) FindAllWithSpinner(out io.Writer) []JVM {
	p := tea.NewProgram(newScannerModel(), tea.WithOutput(out), tea.WithInput(nil))

	var jvms []JVM
	done := make(chan struct{})
	go func() {
		defer close(done)
		jvms = d.FindAll()
		p.Send(scanFinishedMsg{})
	}()

	if _, err := p.Run(); err != nil {
		d.logger.Debug("spinner failed", "err", err)
	}
	<-done
	return jvms
}
