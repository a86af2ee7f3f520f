package commands

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/taskboard-io/taskboard/internal/db"
	"github.com/taskboard-io/taskboard/internal/models"
	"github.com/taskboard-io/taskboard/internal/parser"
)

var dependCmd = &cobra.Command{
	Use:   "depend <task_id> <depends_on_id>",
	Short: "Add a dependency between two tasks",
	Long: `Record that a task depends on another task completing first.
Adding an existing dependency is a no-op.`,
	Args: cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		initApp()
		taskID, dependsOnID, err := parseEdgeArgs(args)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}

		if err := db.AddDependency(taskID, dependsOnID); err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}

		fmt.Printf("🔗 Task #%d now depends on task #%d\n", taskID, dependsOnID)
	},
}

var undependCmd = &cobra.Command{
	Use:   "undepend <task_id> <depends_on_id>",
	Short: "Remove a dependency between two tasks",
	Args:  cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		initApp()
		taskID, dependsOnID, err := parseEdgeArgs(args)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}

		removed, err := db.RemoveDependency(taskID, dependsOnID)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		if !removed {
			fmt.Printf("No dependency from task #%d to task #%d\n", taskID, dependsOnID)
			return
		}

		fmt.Printf("✂️  Removed dependency of task #%d on task #%d\n", taskID, dependsOnID)
	},
}

var depsCmd = &cobra.Command{
	Use:   "deps <task_id>",
	Short: "Show all dependency relations of a task",
	Long: `Show the unioned dependency view of a task: the tasks it depends
on, the tasks that depend on it, and the task itself, ordered by deadline.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		initApp()
		taskID, err := strconv.ParseUint(args[0], 10, 32)
		if err != nil {
			fmt.Printf("Error: invalid task ID '%s'\n", args[0])
			return
		}

		relations, err := db.GetAllRelations(uint(taskID))
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		if relations == nil {
			fmt.Printf("Error: task #%d not found\n", taskID)
			return
		}

		fmt.Printf("%-6s %-14s %-32s %s\n", "ID", "RELATION", "TITLE", "DEADLINE")
		for _, r := range relations {
			title := r.Title
			if title == "" {
				title = fmt.Sprintf("task #%d", r.TaskID)
			}
			fmt.Printf("%-6d %-14s %-32s %s\n",
				r.TaskID, relationLabel(r.Kind), title, parser.FormatDate(r.Deadline))
		}
	},
}

func parseEdgeArgs(args []string) (taskID, dependsOnID uint, err error) {
	from, err := strconv.ParseUint(args[0], 10, 32)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid task ID '%s'", args[0])
	}
	to, err := strconv.ParseUint(args[1], 10, 32)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid task ID '%s'", args[1])
	}
	return uint(from), uint(to), nil
}

func relationLabel(kind models.RelationKind) string {
	switch kind {
	case models.RelationDependsOf:
		return "depends on"
	case models.RelationDependentFor:
		return "dependent"
	case models.RelationSelf:
		return "self"
	}
	return string(kind)
}
