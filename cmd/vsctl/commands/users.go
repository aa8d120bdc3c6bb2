package commands

import (
	"context"
	"fmt"
	"os"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/virtstack-io/vsapi-client/pkg/vsapi"
)

// NewUsersCommand creates the users command group.
func NewUsersCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "users",
		Aliases: []string{"user"},
		Short:   "Manage users",
		Long:    "List and manage VirtStack user accounts",
	}

	cmd.AddCommand(newUsersListCommand())
	cmd.AddCommand(newUsersGetCommand())
	cmd.AddCommand(newUsersCreateCommand())
	cmd.AddCommand(newUsersDeleteCommand())

	return cmd
}

func newUsersListCommand() *cobra.Command {
	var (
		perPage int
		group   string
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List users",
		Long:  "List all user accounts",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient()
			if err != nil {
				return err
			}

			params := vsapi.NewQueryParams().WithPerPage(perPage)
			if group != "" {
				params.WithFilter("group", group)
			}

			users, err := client.Users().List(params).All(context.Background())
			if err != nil {
				return fmt.Errorf("failed to list users: %w", err)
			}

			structured, err := renderStructured(users)
			if structured || err != nil {
				return err
			}

			if len(users) == 0 {
				fmt.Println("No users found")

				return nil
			}

			table := tablewriter.NewWriter(os.Stdout)
			table.Header("Email", "Full Name", "Group", "Suspended")

			for _, user := range users {
				_ = table.Append(user.Email, user.FullName, user.Group, yesNo(user.Suspended))
			}

			return table.Render()
		},
	}

	cmd.Flags().IntVar(&perPage, "per-page", 50, "results per page")
	cmd.Flags().StringVar(&group, "group", "", "filter by group")

	return cmd
}

func newUsersGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get EMAIL",
		Short: "Get user details",
		Long:  "Display detailed information about a specific user",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient()
			if err != nil {
				return err
			}

			user, err := client.Users().Get(args[0]).Value(context.Background())
			if err != nil {
				return fmt.Errorf("failed to get user: %w", err)
			}

			structured, err := renderStructured(user)
			if structured || err != nil {
				return err
			}

			fmt.Printf("User: %s\n", user.Email)
			fmt.Printf("  Full Name: %s\n", user.FullName)
			fmt.Printf("  Group:     %s\n", user.Group)
			fmt.Printf("  Suspended: %t\n", user.Suspended)

			if !user.CreatedAt.IsZero() {
				fmt.Printf("  Created:   %s\n", user.CreatedAt.Format("2006-01-02 15:04:05"))
			}

			return nil
		},
	}
}

func newUsersCreateCommand() *cobra.Command {
	var (
		fullName string
		group    string
	)

	cmd := &cobra.Command{
		Use:   "create EMAIL",
		Short: "Create a user",
		Long:  "Create a new user account",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient()
			if err != nil {
				return err
			}

			user, err := client.Users().Create(context.Background(), &vsapi.UserCreateRequest{
				Email:    args[0],
				FullName: fullName,
				Group:    group,
			})
			if err != nil {
				return fmt.Errorf("failed to create user: %w", err)
			}

			fmt.Printf("Successfully created user '%s'\n", user.Email)

			return nil
		},
	}

	cmd.Flags().StringVar(&fullName, "full-name", "", "user display name")
	cmd.Flags().StringVar(&group, "group", "", "group to place the user in")

	return cmd
}

func newUsersDeleteCommand() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "delete EMAIL",
		Short: "Delete a user",
		Long:  "Delete a user account",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			email := args[0]

			if !force {
				fmt.Printf("Really delete user '%s'? (y/N): ", email)

				var response string

				_, _ = fmt.Scanln(&response)
				if response != "y" && response != "Y" {
					fmt.Println("Cancelled")

					return nil
				}
			}

			client, err := createClient()
			if err != nil {
				return err
			}

			err = client.Users().Delete(context.Background(), email)
			if err != nil {
				return fmt.Errorf("failed to delete user: %w", err)
			}

			fmt.Printf("Successfully deleted user '%s'\n", email)

			return nil
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "skip confirmation prompt")

	return cmd
}
