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

// NewNodesCommand creates the nodes command group.
func NewNodesCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "nodes",
		Aliases: []string{"node"},
		Short:   "Manage nodes",
		Long:    "List VirtStack hypervisor nodes",
	}

	cmd.AddCommand(newNodesListCommand())
	cmd.AddCommand(newNodesGetCommand())

	return cmd
}

func newNodesListCommand() *cobra.Command {
	var perPage int

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List nodes",
		Long:  "List all hypervisor nodes",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient()
			if err != nil {
				return err
			}

			params := vsapi.NewQueryParams().WithPerPage(perPage)

			nodes, err := client.Nodes().List(params).All(context.Background())
			if err != nil {
				return fmt.Errorf("failed to list nodes: %w", err)
			}

			structured, err := renderStructured(nodes)
			if structured || err != nil {
				return err
			}

			if len(nodes) == 0 {
				fmt.Println("No nodes found")

				return nil
			}

			table := tablewriter.NewWriter(os.Stdout)
			table.Header("Name", "Address", "State", "CPUs", "Memory (MB)", "Machines")

			for _, node := range nodes {
				_ = table.Append(node.Name, node.Address, string(node.State),
					strconv.Itoa(node.CPUCapacity), strconv.Itoa(node.MemoryMB),
					strconv.Itoa(node.MachineCount))
			}

			return table.Render()
		},
	}

	cmd.Flags().IntVar(&perPage, "per-page", 50, "results per page")

	return cmd
}

func newNodesGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get NODE_NAME",
		Short: "Get node details",
		Long:  "Display detailed information about a specific node",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient()
			if err != nil {
				return err
			}

			node, err := client.Nodes().Get(args[0]).Value(context.Background())
			if err != nil {
				return fmt.Errorf("failed to get node: %w", err)
			}

			structured, err := renderStructured(node)
			if structured || err != nil {
				return err
			}

			fmt.Printf("Node: %s\n", node.Name)
			fmt.Printf("  Address:  %s\n", node.Address)
			fmt.Printf("  State:    %s\n", node.State)
			fmt.Printf("  CPUs:     %d\n", node.CPUCapacity)
			fmt.Printf("  Memory:   %d MB\n", node.MemoryMB)
			fmt.Printf("  Machines: %d\n", node.MachineCount)

			return nil
		},
	}
}
