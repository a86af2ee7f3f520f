package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/taskboard-io/taskboard/internal/dashboard"
	"github.com/taskboard-io/taskboard/internal/models"
	"github.com/taskboard-io/taskboard/internal/warnings"
)

// Tab identifies which view the board is showing
type Tab int

const (
	TabDashboard Tab = iota
	TabTimeline
)

// BoardModel is the TUI model for the dashboard and timeline views
type BoardModel struct {
	width  int
	height int

	tab      Tab
	view     *dashboard.View
	timeline []dashboard.TimelineTask

	progressBar progress.Model
}

// NewBoardModel creates a board model over prebuilt views
func NewBoardModel(view *dashboard.View, timeline []dashboard.TimelineTask) BoardModel {
	bar := progress.New(
		progress.WithSolidFill(ColorAccentMain),
		progress.WithWidth(40),
	)
	return BoardModel{
		tab:         TabDashboard,
		view:        view,
		timeline:    timeline,
		progressBar: bar,
	}
}

// Init initializes the model
func (m BoardModel) Init() tea.Cmd {
	return nil
}

// Update handles messages
func (m BoardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		barWidth := m.width - 30
		if barWidth > 60 {
			barWidth = 60
		}
		if barWidth < 10 {
			barWidth = 10
		}
		m.progressBar.Width = barWidth
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q", "esc":
			return m, tea.Quit
		case "tab", "t":
			if m.tab == TabDashboard {
				m.tab = TabTimeline
			} else {
				m.tab = TabDashboard
			}
			return m, nil
		}
	}

	return m, nil
}

// View renders the board
func (m BoardModel) View() string {
	var b strings.Builder

	b.WriteString(m.renderTabs())
	b.WriteString("\n\n")

	if m.tab == TabDashboard {
		b.WriteString(m.renderDashboard())
	} else {
		b.WriteString(m.renderTimeline())
	}

	help := lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorHelpText)).
		Render("tab: switch view • q: quit")
	b.WriteString("\n" + help + "\n")

	return b.String()
}

func (m BoardModel) renderTabs() string {
	active := lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorPrimaryText)).
		Background(lipgloss.Color(ColorAccentMain)).
		Padding(0, 2).
		Bold(true)
	inactive := lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorDisabledText)).
		Padding(0, 2)

	dash := inactive.Render("Dashboard")
	tl := inactive.Render("Timeline")
	if m.tab == TabDashboard {
		dash = active.Render("Dashboard")
	} else {
		tl = active.Render("Timeline")
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, dash, " ", tl)
}

func (m BoardModel) renderDashboard() string {
	var b strings.Builder

	label := lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorSecondaryText)).
		Render(fmt.Sprintf("Progress: %d%%", m.view.Progress))
	b.WriteString(label + "\n")
	b.WriteString(m.progressBar.ViewAs(float64(m.view.Progress)/100) + "\n\n")

	for _, group := range m.view.Groups {
		b.WriteString(renderGroupHeader(group.Status, len(group.Tasks)) + "\n")
		for _, task := range group.Tasks {
			b.WriteString(renderDashboardRow(task) + "\n")
		}
		b.WriteString("\n")
	}

	return b.String()
}

func (m BoardModel) renderTimeline() string {
	var b strings.Builder

	rowStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(ColorPrimaryText))
	dateStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(ColorSecondaryText))

	for _, row := range m.timeline {
		title := row.Title
		if title == "" {
			title = fmt.Sprintf("task #%d", row.ID)
		}
		window := fmt.Sprintf("%s → %s",
			row.Start.Format("02/01"),
			row.Finish.Format("02/01/2006"))

		line := fmt.Sprintf("%s %-32s %s %s",
			statusBadge(row.Status),
			truncate(title, 32),
			dateStyle.Render(window),
			renderWarnings(row.Warnings))
		b.WriteString(rowStyle.Render(line) + "\n")
	}

	if len(m.timeline) == 0 {
		b.WriteString(lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorDisabledText)).
			Render("No tasks yet.") + "\n")
	}

	return b.String()
}

func renderGroupHeader(status models.TaskStatus, count int) string {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color(statusColor(status))).
		Bold(true).
		Render(fmt.Sprintf("%s (%d)", strings.ToUpper(string(status)), count))
}

func renderDashboardRow(task dashboard.Task) string {
	title := task.Title
	if title == "" {
		title = fmt.Sprintf("task #%d", task.ID)
	}

	responsible := "—"
	if task.Responsible != nil {
		responsible = task.Responsible.Name
	}

	return fmt.Sprintf("  #%-4d %-32s %-12s %-14s %s",
		task.ID,
		truncate(title, 32),
		task.Deadline.Format("02/01/2006"),
		truncate(responsible, 14),
		renderWarnings(task.Warnings))
}

func renderWarnings(warns []warnings.Warning) string {
	if len(warns) == 0 {
		return ""
	}

	parts := make([]string, 0, len(warns))
	for _, w := range warns {
		style := lipgloss.NewStyle().Foreground(lipgloss.Color(warningColor(w.Type)))
		parts = append(parts, style.Render(string(w.Type)))
	}
	return strings.Join(parts, " ")
}

func statusBadge(status models.TaskStatus) string {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color(statusColor(status))).
		Render(fmt.Sprintf("%-11s", status))
}

func statusColor(status models.TaskStatus) string {
	switch status {
	case models.StatusToDo:
		return ColorToDo
	case models.StatusInProgress:
		return ColorInProgress
	case models.StatusDone:
		return ColorDone
	}
	return ColorSecondaryText
}

func warningColor(t warnings.Type) string {
	switch t {
	case warnings.StartHard, warnings.FinishHard, warnings.LateDeadline, warnings.CrossedDeadline:
		return ColorError
	case warnings.StartSoft, warnings.FinishSoft:
		return ColorWarning
	}
	return ColorSecondaryText
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	if max <= 3 {
		return s[:max]
	}
	return s[:max-3] + "..."
}
