package commands

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/taskboard-io/taskboard/internal/dashboard"
	"github.com/taskboard-io/taskboard/internal/db"
	"github.com/taskboard-io/taskboard/internal/parser"
	"github.com/taskboard-io/taskboard/internal/tui"
	"github.com/taskboard-io/taskboard/internal/warnings"
)

var dashboardCmd = &cobra.Command{
	Use:     "dashboard",
	Aliases: []string{"board"},
	Short:   "Show the status-grouped dashboard with deadline warnings",
	Run: func(cmd *cobra.Command, args []string) {
		initApp()

		view, timeline, err := buildViews()
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}

		if useTUI, _ := cmd.Flags().GetBool("tui"); useTUI {
			if err := tui.RunBoardTUI(view, timeline); err != nil {
				fmt.Printf("Error: %v\n", err)
			}
			return
		}

		printDashboard(view)
	},
}

var timelineCmd = &cobra.Command{
	Use:   "timeline",
	Short: "Show the schedule timeline with crossed-deadline warnings",
	Run: func(cmd *cobra.Command, args []string) {
		initApp()

		view, timeline, err := buildViews()
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}

		if useTUI, _ := cmd.Flags().GetBool("tui"); useTUI {
			if err := tui.RunBoardTUI(view, timeline); err != nil {
				fmt.Printf("Error: %v\n", err)
			}
			return
		}

		printTimeline(timeline)
	},
}

// buildViews assembles both aggregate views from current data.
func buildViews() (*dashboard.View, []dashboard.TimelineTask, error) {
	tasks, err := db.GetTasksOrderedByDeadline(false)
	if err != nil {
		return nil, nil, err
	}

	today := time.Now()
	coef := cfg.ReserveCoefficient

	view, err := dashboard.Build(tasks, db.GetUserByID, today, coef)
	if err != nil {
		return nil, nil, err
	}

	timeline, err := dashboard.BuildTimeline(tasks, db.GetUserByID, db.GetDependencyTasksOf, today, coef)
	if err != nil {
		return nil, nil, err
	}

	return view, timeline, nil
}

func printDashboard(view *dashboard.View) {
	fmt.Printf("Progress: %d%%\n\n", view.Progress)

	for _, group := range view.Groups {
		fmt.Printf("%s (%d)\n", strings.ToUpper(string(group.Status)), len(group.Tasks))
		for _, task := range group.Tasks {
			title := task.Title
			if title == "" {
				title = fmt.Sprintf("task #%d", task.ID)
			}
			responsible := "-"
			if task.Responsible != nil {
				responsible = task.Responsible.Name
			}
			fmt.Printf("  #%-4d %-36s %-16s %-14s %s\n",
				task.ID,
				title,
				parser.FormatDate(task.Deadline),
				responsible,
				formatWarnings(task.Warnings))
		}
		fmt.Println()
	}

	if len(view.Groups) == 0 {
		fmt.Println("No tasks yet.")
	}
}

func printTimeline(timeline []dashboard.TimelineTask) {
	if len(timeline) == 0 {
		fmt.Println("No tasks yet.")
		return
	}

	fmt.Printf("%-4s %-12s %-36s %-24s %s\n", "ID", "STATUS", "TITLE", "WINDOW", "WARNINGS")
	fmt.Println(strings.Repeat("-", 100))

	for _, row := range timeline {
		title := row.Title
		if title == "" {
			title = fmt.Sprintf("task #%d", row.ID)
		}
		window := fmt.Sprintf("%s → %s",
			parser.FormatDate(row.Start), parser.FormatDate(row.Finish))
		fmt.Printf("%-4d %-12s %-36s %-24s %s\n",
			row.ID, row.Status, title, window, formatWarnings(row.Warnings))
	}
}

func formatWarnings(warns []warnings.Warning) string {
	if len(warns) == 0 {
		return ""
	}
	parts := make([]string, 0, len(warns))
	for _, w := range warns {
		parts = append(parts, "⚠ "+string(w.Type))
	}
	return strings.Join(parts, " ")
}

func init() {
	dashboardCmd.Flags().BoolP("tui", "i", false, "Interactive TUI view")
	timelineCmd.Flags().BoolP("tui", "i", false, "Interactive TUI view")
}
