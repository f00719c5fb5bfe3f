// Package ui implements the watch-mode TUI: it re-runs the performance
// whenever the config file changes and shows the latest frames.
package ui

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"log/slog"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/viviai0214/fanfare/internal/app"
	"github.com/viviai0214/fanfare/internal/config"
	"github.com/viviai0214/fanfare/internal/log"
)

// maxLogLines bounds the log tail shown under the performance
const maxLogLines = 5

type status int

const (
	statusWatching status = iota
	statusPerforming
	statusError
	statusSuccess
)

// Model is the Bubble Tea model for watch mode
type Model struct {
	configPath string
	status     status
	lastUpdate time.Time
	lastOutput string
	logs       []string
	err        error

	// UI state
	spinner int
	width   int
	height  int
}

type configChangedMsg struct{}
type performDoneMsg struct {
	output string
	err    error
}
type logLineMsg string
type tickMsg time.Time

// NewModel creates a watch model following the given config file
func NewModel(configPath string) Model {
	return Model{
		configPath: configPath,
		status:     statusWatching,
	}
}

// ConfigChanged returns the message the file watcher sends into the program
func ConfigChanged() tea.Msg {
	return configChangedMsg{}
}

// LogLine converts a log record into the message watch mode displays.
// The record is rendered through the same handler that formats plain
// output, so both modes read identically.
func LogLine(record slog.Record) tea.Msg {
	var buf strings.Builder
	h := log.NewHandler(&buf, slog.LevelDebug)
	_ = h.Handle(context.Background(), record)
	return logLineMsg(strings.TrimRight(buf.String(), "\n"))
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(
		tick(),
		m.perform(),
	)
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "q" || msg.String() == "ctrl+c" {
			return m, tea.Quit
		}

	case configChangedMsg:
		m.status = statusPerforming
		m.lastUpdate = time.Now()
		return m, m.perform()

	case performDoneMsg:
		if msg.err != nil {
			m.status = statusError
			m.err = msg.err
		} else {
			m.status = statusSuccess
			m.lastOutput = msg.output
		}
		return m, nil

	case logLineMsg:
		m.logs = append(m.logs, string(msg))
		if len(m.logs) > maxLogLines {
			m.logs = m.logs[len(m.logs)-maxLogLines:]
		}
		return m, nil

	case tickMsg:
		if m.status == statusPerforming {
			m.spinner++
		}
		return m, tick()
	}

	return m, nil
}

func (m Model) View() string {
	var s strings.Builder

	// Header
	headerStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("12")).
		MarginBottom(1)

	s.WriteString(headerStyle.Render("🎺 Fanfare - Ceremonial Greeting"))
	s.WriteString("\n\n")

	// File info
	fileStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	s.WriteString(fileStyle.Render(fmt.Sprintf("Watching: %s", m.configPath)))
	s.WriteString("\n\n")

	// Status
	statusStyle := lipgloss.NewStyle().Bold(true)
	switch m.status {
	case statusWatching:
		s.WriteString(statusStyle.Foreground(lipgloss.Color("10")).Render("✓ Watching for changes..."))
	case statusPerforming:
		spinner := []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}
		s.WriteString(statusStyle.Foreground(lipgloss.Color("12")).Render(
			fmt.Sprintf("%s Performing...", spinner[m.spinner%len(spinner)])))
	case statusSuccess:
		s.WriteString(statusStyle.Foreground(lipgloss.Color("10")).Render("✓ Performance complete!"))
		if !m.lastUpdate.IsZero() {
			s.WriteString(fmt.Sprintf(" (%s)", time.Since(m.lastUpdate).Round(time.Millisecond)))
		}
	case statusError:
		s.WriteString(statusStyle.Foreground(lipgloss.Color("9")).Render("✗ Error: "))
		if m.err != nil {
			s.WriteString(m.err.Error())
		}
	}
	s.WriteString("\n\n")

	// Latest performance
	if m.lastOutput != "" {
		s.WriteString(m.lastOutput)
		s.WriteString("\n")
	}

	// Recent logs
	if len(m.logs) > 0 {
		logStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
		s.WriteString(logStyle.Render(strings.Join(m.logs, "\n")))
		s.WriteString("\n\n")
	}

	// Instructions
	helpStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	s.WriteString(helpStyle.Render("Press 'q' to quit"))

	return s.String()
}

func (m Model) perform() tea.Cmd {
	return func() tea.Msg {
		cfg, err := config.Load(filepath.Dir(m.configPath))
		if err != nil {
			return performDoneMsg{err: fmt.Errorf("config error: %w", err)}
		}

		// Pauses are pointless when frames replace each other
		cfg.DelayMS = 0

		if err := cfg.Validate(); err != nil {
			return performDoneMsg{err: fmt.Errorf("config error: %w", err)}
		}

		var out strings.Builder
		performApp := app.NewPerformApp(&out)
		if err := performApp.Run(context.Background(), cfg); err != nil {
			return performDoneMsg{err: fmt.Errorf("performance error: %w", err)}
		}

		return performDoneMsg{output: out.String()}
	}
}

func tick() tea.Cmd {
	return tea.Tick(100*time.Millisecond, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}
