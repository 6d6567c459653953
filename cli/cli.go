// Package cli provides the interactive terminal interface: pick a built-in
// suite, watch the run progress live, then inspect the summary table.
package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/mwiater/varbench/bench"
	"github.com/mwiater/varbench/report"
	"github.com/mwiater/varbench/workloads"
)

// viewState represents the current state of the application's view.
type viewState int

const (
	viewSuiteSelector viewState = iota // viewSuiteSelector is the state where the user picks a suite.
	viewRunning                        // viewRunning is the state while a benchmark run is in flight.
	viewResults                        // viewResults is the state showing the finished run's table.
)

// variantProgress tracks one variant's live progress during a run.
type variantProgress struct {
	label     string
	completed int
	total     int
	failed    bool
	cause     error
	done      bool
}

// model is the main application model for the Bubble Tea UI.
type model struct {
	state       viewState
	repetitions int
	err         error

	suiteList list.Model
	spinner   spinner.Model
	viewport  viewport.Model

	selectedSuite workloads.Suite
	progress      []variantProgress
	result        bench.Result
	runStartTime  time.Time

	width, height int
	program       *tea.Program
}

// item represents a selectable suite in the list.
type item struct {
	title string
	desc  string
}

func (i item) Title() string       { return i.title }
func (i item) Description() string { return i.desc }
func (i item) FilterValue() string { return i.title }

// variantStartedMsg is sent when a variant begins its repetitions.
type variantStartedMsg struct {
	label string
	total int
}

// measurementMsg is sent after each recorded repetition.
type measurementMsg bench.Measurement

// variantDoneMsg is sent when a variant finishes or fails.
type variantDoneMsg bench.VariantReport

// runDoneMsg is sent when the whole run completes.
type runDoneMsg bench.Result

// runErrMsg is sent when the run could not start at all.
type runErrMsg error

// tickMsg drives the elapsed-time display while a run is in flight.
type tickMsg time.Time

// programObserver forwards bench progress events into the Bubble Tea
// program from the run goroutine.
type programObserver struct {
	p *tea.Program
}

func (o programObserver) VariantStarted(label string, repetitions int) {
	o.p.Send(variantStartedMsg{label: label, total: repetitions})
}

func (o programObserver) MeasurementRecorded(m bench.Measurement) {
	o.p.Send(measurementMsg(m))
}

func (o programObserver) VariantFinished(rep bench.VariantReport) {
	o.p.Send(variantDoneMsg(rep))
}

// initialModel sets up the suite list, spinner, and viewport.
func initialModel(repetitions int) *model {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))

	suites := workloads.Suites()
	items := make([]list.Item, len(suites))
	for i, su := range suites {
		items[i] = item{title: su.Name, desc: su.Description}
	}
	suiteList := list.New(items, list.NewDefaultDelegate(), 0, 0)
	suiteList.Title = "Select a Suite"

	return &model{
		state:       viewSuiteSelector,
		repetitions: repetitions,
		spinner:     s,
		suiteList:   suiteList,
		viewport:    viewport.New(100, 5),
	}
}

// startRunCmd launches the benchmark in a goroutine; progress flows back
// through the observer's p.Send calls.
func startRunCmd(p *tea.Program, suite workloads.Suite, repetitions int) tea.Cmd {
	return func() tea.Msg {
		go func() {
			res, err := bench.Run(suite.Variants(), bench.Config{
				Repetitions: repetitions,
				Observer:    programObserver{p: p},
			})
			if err != nil {
				p.Send(runErrMsg(err))
				return
			}
			p.Send(runDoneMsg(res))
		}()
		return nil
	}
}

// tickCmd returns a command that sends a tickMsg at a regular interval.
func tickCmd() tea.Cmd {
	return tea.Tick(time.Millisecond*100, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// Init starts the spinner animation.
func (m *model) Init() tea.Cmd {
	return m.spinner.Tick
}

// Update handles incoming messages and advances the application state.
func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var (
		cmd  tea.Cmd
		cmds []tea.Cmd
	)

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "q":
			if m.state != viewRunning {
				return m, tea.Quit
			}
		case "tab":
			if m.state == viewResults {
				m.state = viewSuiteSelector
				m.err = nil
				return m, nil
			}
		}

	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.suiteList.SetSize(msg.Width-2, msg.Height-4)
		m.viewport.Width = msg.Width
		m.viewport.Height = msg.Height - 4

	case variantStartedMsg:
		m.progress = append(m.progress, variantProgress{label: msg.label, total: msg.total})
		return m, nil

	case measurementMsg:
		for i := range m.progress {
			if m.progress[i].label == msg.Label {
				m.progress[i].completed++
			}
		}
		return m, nil

	case variantDoneMsg:
		rep := bench.VariantReport(msg)
		for i := range m.progress {
			if m.progress[i].label == rep.Label {
				m.progress[i].done = true
				m.progress[i].failed = rep.Failed()
				m.progress[i].cause = rep.Err
			}
		}
		return m, nil

	case runDoneMsg:
		m.result = bench.Result(msg)
		m.state = viewResults
		m.viewport.SetContent(report.Table(m.result))
		m.viewport.GotoTop()
		return m, nil

	case runErrMsg:
		m.err = msg
		m.state = viewSuiteSelector
		return m, nil

	case tickMsg:
		if m.state == viewRunning {
			return m, tickCmd()
		}
		return m, nil
	}

	switch m.state {
	case viewSuiteSelector:
		m.suiteList, cmd = m.suiteList.Update(msg)
		cmds = append(cmds, cmd)
		if msg, ok := msg.(tea.KeyMsg); ok && msg.String() == "enter" {
			if selected, ok := m.suiteList.SelectedItem().(item); ok {
				if suite, found := workloads.Find(selected.title); found {
					m.selectedSuite = suite
					m.state = viewRunning
					m.progress = nil
					m.err = nil
					m.runStartTime = time.Now()
					cmds = append(cmds, m.spinner.Tick, startRunCmd(m.program, suite, m.repetitions), tickCmd())
				}
			}
		}

	case viewResults:
		m.viewport, cmd = m.viewport.Update(msg)
		cmds = append(cmds, cmd)
	}

	if m.state == viewRunning {
		m.spinner, cmd = m.spinner.Update(msg)
		cmds = append(cmds, cmd)
	}

	return m, tea.Batch(cmds...)
}

// View renders the UI for the current state.
func (m *model) View() string {
	if m.width == 0 {
		return "Initializing..."
	}

	switch m.state {
	case viewSuiteSelector:
		var b strings.Builder
		if m.err != nil {
			errorStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Padding(1)
			b.WriteString(errorStyle.Render(fmt.Sprintf("Error: %v", m.err)) + "\n")
		}
		b.WriteString(lipgloss.NewStyle().Margin(1, 2).Render(m.suiteList.View()))
		return b.String()

	case viewRunning:
		return m.runningView()

	case viewResults:
		header := lipgloss.NewStyle().Background(lipgloss.Color("62")).Foreground(lipgloss.Color("230")).Padding(0, 1).
			Render(fmt.Sprintf("Suite: %s", m.selectedSuite.Name))
		help := lipgloss.NewStyle().Faint(true).Render(" (tab to run another, q to quit)")
		return header + help + "\n\n" + m.viewport.View()

	default:
		return "Unknown state"
	}
}

// runningView renders the spinner, elapsed timer, and per-variant rows.
func (m *model) runningView() string {
	var b strings.Builder
	timer := fmt.Sprintf("%.1f", time.Since(m.runStartTime).Seconds())
	b.WriteString(fmt.Sprintf("\n  %s Running %s... %ss\n\n", m.spinner.View(), m.selectedSuite.Name, timer))
	for _, p := range m.progress {
		b.WriteString("  " + progressLine(p) + "\n")
	}
	return b.String()
}

// progressLine renders one variant's progress row.
func progressLine(p variantProgress) string {
	label := lipgloss.NewStyle().Bold(true).Render(fmt.Sprintf("%-24s", p.label))
	switch {
	case p.failed:
		return label + lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Render(fmt.Sprintf(" FAILED: %v", p.cause))
	case p.done:
		return label + fmt.Sprintf(" %d/%d done", p.completed, p.total)
	default:
		return label + fmt.Sprintf(" %d/%d", p.completed, p.total)
	}
}

// StartGUI runs the interactive suite browser until the user quits.
func StartGUI(repetitions int) error {
	m := initialModel(repetitions)
	p := tea.NewProgram(m, tea.WithAltScreen())
	m.program = p

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("error running program: %w", err)
	}
	return nil
}
