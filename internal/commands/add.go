package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/taskboard-io/taskboard/internal/db"
	"github.com/taskboard-io/taskboard/internal/parser"
)

var addCmd = &cobra.Command{
	Use:   "add [task title]",
	Short: "Add a new task",
	Long: `Add a new task with a deadline and a planned duration.

Examples:
  taskboard add "Prepare release notes" --deadline 15/12/2026 --days 3
  taskboard add "Load test" --deadline "2 weeks" --days 5 --responsible 2`,
	Args: cobra.ArbitraryArgs,
	Run: func(cmd *cobra.Command, args []string) {
		initApp()

		title := strings.Join(args, " ")

		deadlineStr, _ := cmd.Flags().GetString("deadline")
		if deadlineStr == "" {
			fmt.Println("Error: --deadline is required")
			return
		}
		deadline, err := parser.ParseDate(deadlineStr)
		if err != nil {
			fmt.Printf("Error parsing deadline: %v\n", err)
			return
		}

		days, _ := cmd.Flags().GetInt("days")
		description, _ := cmd.Flags().GetString("description")

		req := db.CreateTaskRequest{
			Title:             title,
			Description:       description,
			Deadline:          deadline,
			DaysForCompletion: days,
		}

		if responsible, _ := cmd.Flags().GetUint("responsible"); responsible > 0 {
			user, err := db.GetUserByID(responsible)
			if err != nil {
				fmt.Printf("Error: %v\n", err)
				return
			}
			if user == nil {
				fmt.Printf("Error: user #%d not found\n", responsible)
				return
			}
			req.ResponsibleUserID = &user.ID
		}

		task, err := db.CreateTask(req)
		if err != nil {
			fmt.Printf("Error creating task: %v\n", err)
			return
		}

		fmt.Printf("Created task #%d: %s\n", task.ID, task.Title)
		fmt.Printf("  Deadline: %s\n", parser.FormatDeadline(task.Deadline))
		fmt.Printf("  Planned days: %d\n", task.DaysForCompletion)
		if task.ResponsibleUserID != nil {
			fmt.Printf("  Responsible: #%d\n", *task.ResponsibleUserID)
		}
	},
}

func init() {
	addCmd.Flags().StringP("deadline", "D", "", "Deadline: dd/mm/yyyy, yyyy-mm-dd, X days, X weeks")
	addCmd.Flags().IntP("days", "d", 1, "Planned days for completion")
	addCmd.Flags().StringP("description", "", "", "Task description")
	addCmd.Flags().UintP("responsible", "r", 0, "Responsible user ID")
}
