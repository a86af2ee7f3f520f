package commands

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/taskboard-io/taskboard/internal/db"
)

var archiveCmd = &cobra.Command{
	Use:     "archive [task-id]",
	Aliases: []string{"a"},
	Short:   "Archive a task",
	Args:    cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		initApp()
		taskID, err := strconv.ParseUint(args[0], 10, 32)
		if err != nil {
			fmt.Printf("Error: invalid task ID '%s'\n", args[0])
			return
		}

		ok, err := db.UpdateTaskArchived(uint(taskID), true)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		if !ok {
			fmt.Printf("Error: task #%d not found\n", taskID)
			return
		}

		fmt.Printf("🗃️  Archived task #%d\n", taskID)
	},
}

var unarchiveCmd = &cobra.Command{
	Use:     "unarchive [task-id]",
	Aliases: []string{"ua"},
	Short:   "Unarchive a task",
	Args:    cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		initApp()
		taskID, err := strconv.ParseUint(args[0], 10, 32)
		if err != nil {
			fmt.Printf("Error: invalid task ID '%s'\n", args[0])
			return
		}

		ok, err := db.UpdateTaskArchived(uint(taskID), false)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		if !ok {
			fmt.Printf("Error: task #%d not found\n", taskID)
			return
		}

		fmt.Printf("📤 Unarchived task #%d\n", taskID)
	},
}
