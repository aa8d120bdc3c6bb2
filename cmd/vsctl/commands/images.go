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

// NewImagesCommand creates the images command group.
func NewImagesCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "images",
		Aliases: []string{"image"},
		Short:   "Manage images",
		Long:    "List VirtStack machine images",
	}

	cmd.AddCommand(newImagesListCommand())
	cmd.AddCommand(newImagesGetCommand())

	return cmd
}

func newImagesListCommand() *cobra.Command {
	var perPage int

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List images",
		Long:  "List all available machine images",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient()
			if err != nil {
				return err
			}

			params := vsapi.NewQueryParams().WithPerPage(perPage)

			images, err := client.Images().List(params).All(context.Background())
			if err != nil {
				return fmt.Errorf("failed to list images: %w", err)
			}

			structured, err := renderStructured(images)
			if structured || err != nil {
				return err
			}

			if len(images) == 0 {
				fmt.Println("No images found")

				return nil
			}

			table := tablewriter.NewWriter(os.Stdout)
			table.Header("Name", "OS", "Size (MB)", "Public")

			for _, image := range images {
				_ = table.Append(image.Name, image.OS, strconv.Itoa(image.SizeMB), yesNo(image.Public))
			}

			return table.Render()
		},
	}

	cmd.Flags().IntVar(&perPage, "per-page", 50, "results per page")

	return cmd
}

func newImagesGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get IMAGE_NAME",
		Short: "Get image details",
		Long:  "Display detailed information about a specific image",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient()
			if err != nil {
				return err
			}

			image, err := client.Images().Get(args[0]).Value(context.Background())
			if err != nil {
				return fmt.Errorf("failed to get image: %w", err)
			}

			structured, err := renderStructured(image)
			if structured || err != nil {
				return err
			}

			fmt.Printf("Image: %s\n", image.Name)
			fmt.Printf("  OS:       %s\n", image.OS)
			fmt.Printf("  Size:     %d MB\n", image.SizeMB)
			fmt.Printf("  Public:   %s\n", yesNo(image.Public))

			if image.Checksum != "" {
				fmt.Printf("  Checksum: %s\n", image.Checksum)
			}

			return nil
		},
	}
}
