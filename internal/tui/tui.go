package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/taskboard-io/taskboard/internal/dashboard"
)

// RunBoardTUI starts the interactive dashboard/timeline view
func RunBoardTUI(view *dashboard.View, timeline []dashboard.TimelineTask) error {
	model := NewBoardModel(view, timeline)

	p := tea.NewProgram(model, tea.WithAltScreen())
	_, err := p.Run()
	return err
}
