package commands

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/taskboard-io/taskboard/internal/db"
	"github.com/taskboard-io/taskboard/internal/parser"
)

var deadlineCmd = &cobra.Command{
	Use:   "deadline <task_id> <date>",
	Short: "Move the deadline of a task",
	Long: `Move the deadline of a task to a new date.

Usage:
  taskboard deadline 42 20/12/2026
  taskboard deadline 42 "2 weeks"`,
	Args: cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		initApp()
		taskID, err := strconv.ParseUint(args[0], 10, 32)
		if err != nil {
			fmt.Printf("Error: invalid task ID '%s'\n", args[0])
			return
		}

		deadline, err := parser.ParseDate(args[1])
		if err != nil {
			fmt.Printf("Error parsing date: %v\n", err)
			return
		}

		ok, err := db.UpdateTaskDeadline(uint(taskID), deadline)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		if !ok {
			fmt.Printf("Error: task #%d not found\n", taskID)
			return
		}

		fmt.Printf("📅 Task #%d deadline moved to %s\n", taskID, parser.FormatDate(deadline))
	},
}
