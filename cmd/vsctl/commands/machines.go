package commands

import (
	"context"
	"fmt"
	"os"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/virtstack-io/vsapi-client/pkg/vsapi"
)

// NewMachinesCommand creates the machines command group.
func NewMachinesCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "machines",
		Aliases: []string{"machine", "vms"},
		Short:   "Manage virtual machines",
		Long:    "List, create, and control VirtStack virtual machines",
	}

	cmd.AddCommand(newMachinesListCommand())
	cmd.AddCommand(newMachinesGetCommand())
	cmd.AddCommand(newMachinesCreateCommand())
	cmd.AddCommand(newMachinesDeleteCommand())
	cmd.AddCommand(newMachinesDeleteAllCommand())
	cmd.AddCommand(newMachinesActionCommand("start", "Start a virtual machine"))
	cmd.AddCommand(newMachinesActionCommand("stop", "Stop a virtual machine"))
	cmd.AddCommand(newMachinesActionCommand("restart", "Restart a virtual machine"))

	return cmd
}

func newMachinesListCommand() *cobra.Command {
	var (
		perPage int
		node    string
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List virtual machines",
		Long:  "List all virtual machines",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient()
			if err != nil {
				return err
			}

			params := vsapi.NewQueryParams().WithPerPage(perPage)
			if node != "" {
				params.WithFilter("node", node)
			}

			machines, err := client.Machines().List(params).All(context.Background())
			if err != nil {
				return fmt.Errorf("failed to list machines: %w", err)
			}

			structured, err := renderStructured(machines)
			if structured || err != nil {
				return err
			}

			if len(machines) == 0 {
				fmt.Println("No machines found")

				return nil
			}

			table := tablewriter.NewWriter(os.Stdout)
			table.Header("Name", "State", "CPUs", "Memory (MB)", "Node", "Image")

			for _, machine := range machines {
				_ = table.Append(machine.Name, string(machine.PowerState),
					strconv.Itoa(machine.CPUs), strconv.Itoa(machine.MemoryMB),
					machine.Node, machine.Image)
			}

			return table.Render()
		},
	}

	cmd.Flags().IntVar(&perPage, "per-page", 50, "results per page")
	cmd.Flags().StringVar(&node, "node", "", "filter by hosting node")

	return cmd
}

func newMachinesGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get MACHINE_NAME",
		Short: "Get machine details",
		Long:  "Display detailed information about a specific virtual machine",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient()
			if err != nil {
				return err
			}

			machine, err := client.Machines().Get(args[0]).Value(context.Background())
			if err != nil {
				return fmt.Errorf("failed to get machine: %w", err)
			}

			structured, err := renderStructured(machine)
			if structured || err != nil {
				return err
			}

			fmt.Printf("Machine: %s\n", machine.Name)
			fmt.Printf("  UUID:   %s\n", machine.UUID)
			fmt.Printf("  State:  %s\n", machine.PowerState)
			fmt.Printf("  CPUs:   %d\n", machine.CPUs)
			fmt.Printf("  Memory: %d MB\n", machine.MemoryMB)
			fmt.Printf("  Disk:   %d GB\n", machine.DiskGB)
			fmt.Printf("  Node:   %s\n", machine.Node)
			fmt.Printf("  Image:  %s\n", machine.Image)

			if !machine.CreatedAt.IsZero() {
				fmt.Printf("  Created: %s\n", machine.CreatedAt.Format("2006-01-02 15:04:05"))
			}

			return nil
		},
	}
}

func newMachinesCreateCommand() *cobra.Command {
	var (
		image    string
		node     string
		cpus     int
		memoryMB int
		diskGB   int
	)

	cmd := &cobra.Command{
		Use:   "create MACHINE_NAME",
		Short: "Create a virtual machine",
		Long:  "Create a new virtual machine from an image",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient()
			if err != nil {
				return err
			}

			machine, err := client.Machines().Create(context.Background(), &vsapi.MachineCreateRequest{
				Name:     args[0],
				Image:    image,
				Node:     node,
				CPUs:     cpus,
				MemoryMB: memoryMB,
				DiskGB:   diskGB,
			})
			if err != nil {
				return fmt.Errorf("failed to create machine: %w", err)
			}

			fmt.Printf("Successfully created machine '%s' (%s)\n", machine.Name, machine.PowerState)

			return nil
		},
	}

	cmd.Flags().StringVar(&image, "image", "", "image to provision from (required)")
	cmd.Flags().StringVar(&node, "node", "", "node to place the machine on")
	cmd.Flags().IntVar(&cpus, "cpus", 1, "number of virtual CPUs")
	cmd.Flags().IntVar(&memoryMB, "memory", 1024, "memory in MB")
	cmd.Flags().IntVar(&diskGB, "disk", 10, "disk size in GB")
	_ = cmd.MarkFlagRequired("image")

	return cmd
}

func newMachinesDeleteCommand() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "delete MACHINE_NAME",
		Short: "Delete a virtual machine",
		Long:  "Delete a virtual machine",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := args[0]

			if !force {
				fmt.Printf("Really delete machine '%s'? (y/N): ", name)

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

			err = client.Machines().Delete(context.Background(), name)
			if err != nil {
				return fmt.Errorf("failed to delete machine: %w", err)
			}

			fmt.Printf("Successfully deleted machine '%s'\n", name)

			return nil
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "skip confirmation prompt")

	return cmd
}

func newMachinesDeleteAllCommand() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "delete-all",
		Short: "Delete all virtual machines",
		Long:  "Delete every virtual machine. Succeeds even when there is nothing to delete.",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !force {
				fmt.Print("This will delete ALL machines. Continue? (y/N): ")

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

			err = client.Machines().DeleteAll(context.Background())
			if err != nil {
				return fmt.Errorf("failed to delete machines: %w", err)
			}

			fmt.Println("Successfully deleted all machines")

			return nil
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "skip confirmation prompt")

	return cmd
}

func newMachinesActionCommand(action, short string) *cobra.Command {
	return &cobra.Command{
		Use:   action + " MACHINE_NAME",
		Short: short,
		Long:  short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient()
			if err != nil {
				return err
			}

			ctx := context.Background()
			name := args[0]

			var machine *vsapi.VirtualMachine

			switch action {
			case "start":
				machine, err = client.Machines().Start(ctx, name)
			case "stop":
				machine, err = client.Machines().Stop(ctx, name)
			default:
				machine, err = client.Machines().Restart(ctx, name)
			}

			if err != nil {
				return fmt.Errorf("failed to %s machine: %w", action, err)
			}

			fmt.Printf("Machine '%s' is now %s\n", machine.Name, machine.PowerState)

			return nil
		},
	}
}
