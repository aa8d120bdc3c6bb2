package commands

import (
	"context"
	"fmt"
	"os"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

// NewInfoCommand creates the info command.
func NewInfoCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "info",
		Short: "Display API information",
		Long:  "Display version and build information about the targeted VirtStack API",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient()
			if err != nil {
				return err
			}

			info, err := client.GetInfo(context.Background())
			if err != nil {
				return fmt.Errorf("failed to get API info: %w", err)
			}

			structured, err := renderStructured(info)
			if structured || err != nil {
				return err
			}

			table := tablewriter.NewWriter(os.Stdout)
			table.Header("Property", "Value")
			_ = table.Append("Name", info.Name)
			_ = table.Append("Version", info.Version)
			_ = table.Append("Build", info.Build)

			return table.Render()
		},
	}
}
