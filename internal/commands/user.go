package commands

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/taskboard-io/taskboard/internal/db"
)

var userCmd = &cobra.Command{
	Use:   "user",
	Short: "Manage responsible users",
}

var userAddCmd = &cobra.Command{
	Use:   "add <name>",
	Short: "Add a user",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		initApp()
		role, _ := cmd.Flags().GetString("role")

		user, err := db.CreateUser(args[0], role)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}

		fmt.Printf("Created user #%d: %s\n", user.ID, user.Name)
	},
}

var userRemoveCmd = &cobra.Command{
	Use:   "rm <user_id>",
	Short: "Remove a user and unassign their tasks",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		initApp()
		userID, err := strconv.ParseUint(args[0], 10, 32)
		if err != nil {
			fmt.Printf("Error: invalid user ID '%s'\n", args[0])
			return
		}

		ok, err := db.DeleteUser(uint(userID))
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		if !ok {
			fmt.Printf("Error: user #%d not found\n", userID)
			return
		}

		fmt.Printf("Removed user #%d and cleared their tasks\n", userID)
	},
}

var userListCmd = &cobra.Command{
	Use:   "ls",
	Short: "List users",
	Run: func(cmd *cobra.Command, args []string) {
		initApp()
		users, err := db.GetUsers()
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}

		if len(users) == 0 {
			fmt.Println("No users yet. Use 'taskboard user add <name>' to create one.")
			return
		}

		fmt.Printf("%-6s %-24s %s\n", "ID", "NAME", "ROLE")
		for _, u := range users {
			fmt.Printf("%-6d %-24s %s\n", u.ID, u.Name, u.Role)
		}
	},
}

func init() {
	userAddCmd.Flags().StringP("role", "", "", "User role")
	userCmd.AddCommand(userAddCmd)
	userCmd.AddCommand(userRemoveCmd)
	userCmd.AddCommand(userListCmd)
}
