package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/taskboard-io/taskboard/internal/db"
	"github.com/taskboard-io/taskboard/internal/parser"
)

var listCmd = &cobra.Command{
	Use:     "ls",
	Aliases: []string{"list"},
	Short:   "List tasks",
	Long:    "List tasks ordered by deadline, optionally including archived ones",
	Run: func(cmd *cobra.Command, args []string) {
		initApp()
		includeArchived, _ := cmd.Flags().GetBool("all")

		tasks, err := db.GetTasksOrderedByDeadline(includeArchived)
		if err != nil {
			fmt.Printf("Error fetching tasks: %v\n", err)
			return
		}

		if len(tasks) == 0 {
			fmt.Println("No tasks found. Use 'taskboard add \"task title\"' to create your first task.")
			return
		}

		// Print table header
		fmt.Printf("%-4s %-12s %-40s %-6s %-12s %s\n", "ID", "STATUS", "TITLE", "DAYS", "RESP", "DEADLINE")
		fmt.Println(strings.Repeat("-", 90))

		for _, task := range tasks {
			// Truncate title if too long
			title := task.Title
			if len(title) > 38 {
				title = title[:35] + "..."
			}

			responsible := "-"
			if task.ResponsibleUserID != nil {
				responsible = fmt.Sprintf("#%d", *task.ResponsibleUserID)
			}

			status := string(task.Status)
			if task.Archived {
				status += " 🗃"
			}

			fmt.Printf("%-4d %-12s %-40s %-6d %-12s %s\n",
				task.ID,
				status,
				title,
				task.DaysForCompletion,
				responsible,
				parser.FormatDeadline(task.Deadline))
		}
	},
}

func init() {
	listCmd.Flags().BoolP("all", "a", false, "Include archived tasks")
}
