package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

var helpCmd = &cobra.Command{
	Use:   "help",
	Short: "Show comprehensive help for taskboard",
	Long:  `Display detailed help for all taskboard commands and flags.`,
	Run: func(cmd *cobra.Command, args []string) {
		showCustomHelp()
	},
}

func showCustomHelp() {
	fmt.Print(`
taskboard - task tracking with deadlines and dependencies

COMMANDS:

  add <title>             Create a new task
    -D, --deadline        Deadline (dd/mm/yyyy, yyyy-mm-dd, X days, X weeks)
    -d, --days            Planned days for completion
    -r, --responsible     Responsible user ID
    --description         Task description

    Example:
      taskboard add "Prepare release notes" -D 15/12/2026 -d 3 -r 2

  ls                      List tasks ordered by deadline
    -a, --all             Include archived tasks

  edit <id>               Edit task fields (unset flags keep current values)
  deadline <id> <date>    Move a task's deadline

  start <id>              Begin work (to_do -> in_progress)
  done <id>               Complete work (in_progress -> done)
  reopen <id>             Back to to_do, clearing actual dates

  archive <id>            Archive a task
  unarchive <id>          Restore an archived task

  depend <id> <on-id>     Record that a task depends on another
  undepend <id> <on-id>   Remove a dependency
  deps <id>               Show all dependency relations of a task

  user add <name>         Add a responsible user
  user rm <id>            Remove a user (their tasks become unassigned)
  user ls                 List users

  dashboard               Status-grouped board with warnings and progress
    -i, --tui             Interactive TUI view
  timeline                Per-task schedule windows with warnings
    -i, --tui             Interactive TUI view

  help                    Show this help

Warnings are recomputed on every read from each task's status, dates and
the reserve coefficient in ~/.taskboard/config.yaml.

`)
}
