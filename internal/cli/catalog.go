package cli

import (
	"github.com/spf13/cobra"

	"github.com/matzehuels/archviz/pkg/architecture"
	archio "github.com/matzehuels/archviz/pkg/io"
)

// catalogCommand groups catalog file operations.
func (c *CLI) catalogCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "Work with JSON figure catalogs",
	}
	cmd.AddCommand(c.catalogExportCommand())
	cmd.AddCommand(c.catalogCheckCommand())
	return cmd
}

// catalogExportCommand writes the built-in catalog as JSON.
func (c *CLI) catalogExportCommand() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export the built-in architecture catalog as JSON",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cat := architecture.Presentation()
			if output == "" {
				return archio.WriteJSON(cmd.OutOrStdout(), cat)
			}
			if err := archio.ExportJSON(cat, output); err != nil {
				return err
			}
			printFile(output)
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default: stdout)")
	return cmd
}

// catalogCheckCommand validates a JSON catalog without rendering it.
func (c *CLI) catalogCheckCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "check <file>",
		Short: "Validate a JSON catalog",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cat, err := archio.ImportJSON(args[0])
			if err != nil {
				return err
			}
			printSuccess("%s is valid", args[0])
			printStats(cat.NodeCount(), cat.EdgeCount(), false)
			if ids := cat.OutOfRange(); len(ids) > 0 {
				printDetail("outside the visible canvas: %v", ids)
			}
			return nil
		},
	}
}
