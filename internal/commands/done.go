package commands

import (
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/taskboard-io/taskboard/internal/db"
)

var startCmd = &cobra.Command{
	Use:   "start [task-id]",
	Short: "Start working on a task (to_do -> in_progress)",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		initApp()
		taskID, err := strconv.ParseUint(args[0], 10, 32)
		if err != nil {
			fmt.Printf("Error: invalid task ID '%s'\n", args[0])
			return
		}

		task, err := db.StartTask(uint(taskID), time.Now())
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}

		fmt.Printf("▶️  Started task #%d: %s\n", task.ID, task.Title)
		if task.ActualStartDate != nil {
			fmt.Printf("Started on: %s\n", task.ActualStartDate.Format("02/01/2006"))
		}
	},
}

var doneCmd = &cobra.Command{
	Use:   "done [task-id]",
	Short: "Mark a task as completed (in_progress -> done)",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		initApp()
		taskID, err := strconv.ParseUint(args[0], 10, 32)
		if err != nil {
			fmt.Printf("Error: invalid task ID '%s'\n", args[0])
			return
		}

		task, err := db.FinishTask(uint(taskID), time.Now())
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}

		fmt.Printf("✅ Marked task #%d as done: %s\n", task.ID, task.Title)
		if task.ActualCompletionDays != nil {
			fmt.Printf("Completed in %d days\n", *task.ActualCompletionDays)
		}
	},
}

var reopenCmd = &cobra.Command{
	Use:   "reopen [task-id]",
	Short: "Move a task back to to_do and clear its actual dates",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		initApp()
		taskID, err := strconv.ParseUint(args[0], 10, 32)
		if err != nil {
			fmt.Printf("Error: invalid task ID '%s'\n", args[0])
			return
		}

		task, err := db.ReopenTask(uint(taskID))
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}

		fmt.Printf("↩️  Reopened task #%d: %s\n", task.ID, task.Title)
		fmt.Printf("Status: %s\n", task.Status)
	},
}
