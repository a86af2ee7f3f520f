package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/taskboard-io/taskboard/internal/config"
	"github.com/taskboard-io/taskboard/internal/db"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// cfg is loaded once per invocation by initApp.
var cfg *config.Config

var rootCmd = &cobra.Command{
	Use:   "taskboard",
	Short: "A CLI task tracker with deadlines and dependencies",
	Long: `taskboard tracks work items with deadlines, statuses and inter-task
dependencies, and derives deadline warnings, a status-grouped dashboard
and a schedule timeline from them.`,
}

// initApp loads the configuration and initializes the database, panicking
// on failure since no command can run without either.
func initApp() {
	c, err := config.Load()
	if err != nil {
		panic(err)
	}
	cfg = c
	if err := db.Initialize(cfg); err != nil {
		panic(err)
	}
}

// SetVersion sets the version information
func SetVersion(v, c, d string) {
	version = v
	commit = c
	date = d
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("taskboard %s (commit %s, built %s)\n", version, commit, date)
	},
}

func init() {
	// Add subcommands here
	rootCmd.AddCommand(addCmd)
	rootCmd.AddCommand(editCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(startCmd)
	rootCmd.AddCommand(doneCmd)
	rootCmd.AddCommand(reopenCmd)
	rootCmd.AddCommand(archiveCmd)
	rootCmd.AddCommand(unarchiveCmd)
	rootCmd.AddCommand(deadlineCmd)
	rootCmd.AddCommand(dependCmd)
	rootCmd.AddCommand(undependCmd)
	rootCmd.AddCommand(depsCmd)
	rootCmd.AddCommand(userCmd)
	rootCmd.AddCommand(dashboardCmd)
	rootCmd.AddCommand(timelineCmd)
	rootCmd.AddCommand(helpCmd)
	rootCmd.AddCommand(versionCmd)
}
