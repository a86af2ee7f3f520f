package commands

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/taskboard-io/taskboard/internal/db"
	"github.com/taskboard-io/taskboard/internal/parser"
)

var editCmd = &cobra.Command{
	Use:   "edit <task_id>",
	Short: "Edit an existing task",
	Long: `Edit the main fields of an existing task. Fields not passed as
flags keep their current values.

Usage:
  taskboard edit 42 --title "New title" --days 4
  taskboard edit 42 --responsible 0    (clears the responsible user)`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		initApp()
		taskID, err := strconv.ParseUint(args[0], 10, 32)
		if err != nil {
			fmt.Printf("Error: invalid task ID '%s'\n", args[0])
			return
		}

		task, err := db.GetTaskByID(uint(taskID))
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		if task == nil {
			fmt.Printf("Error: task #%d not found\n", taskID)
			return
		}

		title := task.Title
		description := task.Description
		deadline := task.Deadline
		responsible := task.ResponsibleUserID
		days := task.DaysForCompletion

		if cmd.Flags().Changed("title") {
			title, _ = cmd.Flags().GetString("title")
		}
		if cmd.Flags().Changed("description") {
			description, _ = cmd.Flags().GetString("description")
		}
		if cmd.Flags().Changed("deadline") {
			deadlineStr, _ := cmd.Flags().GetString("deadline")
			deadline, err = parser.ParseDate(deadlineStr)
			if err != nil {
				fmt.Printf("Error parsing deadline: %v\n", err)
				return
			}
		}
		if cmd.Flags().Changed("days") {
			days, _ = cmd.Flags().GetInt("days")
		}
		if cmd.Flags().Changed("responsible") {
			id, _ := cmd.Flags().GetUint("responsible")
			if id == 0 {
				responsible = nil
			} else {
				user, err := db.GetUserByID(id)
				if err != nil {
					fmt.Printf("Error: %v\n", err)
					return
				}
				if user == nil {
					fmt.Printf("Error: user #%d not found\n", id)
					return
				}
				responsible = &user.ID
			}
		}

		updated, err := db.UpdateTaskData(uint(taskID), title, description, deadline, responsible, days)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		if updated == nil {
			fmt.Printf("Error: task #%d not found\n", taskID)
			return
		}

		fmt.Printf("✏️  Updated task #%d: %s\n", updated.ID, updated.Title)
		fmt.Printf("  Deadline: %s, planned days: %d\n",
			parser.FormatDate(updated.Deadline), updated.DaysForCompletion)
	},
}

func init() {
	editCmd.Flags().StringP("title", "t", "", "New title")
	editCmd.Flags().StringP("description", "", "", "New description")
	editCmd.Flags().StringP("deadline", "D", "", "New deadline: dd/mm/yyyy, yyyy-mm-dd, X days, X weeks")
	editCmd.Flags().IntP("days", "d", 0, "New planned days for completion")
	editCmd.Flags().UintP("responsible", "r", 0, "New responsible user ID (0 clears)")
}
