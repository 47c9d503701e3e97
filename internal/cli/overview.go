package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/archviz/pkg/pipeline"
)

// overviewCommand prints or writes the ASCII project overview.
func (c *CLI) overviewCommand() *cobra.Command {
	var (
		run   runFlags
		write bool
	)

	cmd := &cobra.Command{
		Use:   "overview",
		Short: "Print the plain-text architecture overview",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := pipeline.Options{Kind: pipeline.KindOverview}
			if !write && run.output == "" {
				runner, err := c.newRunner(cmd.Context(), true)
				if err != nil {
					return err
				}
				result, err := runner.Execute(cmd.Context(), opts)
				if err != nil {
					return err
				}
				name := pipeline.FileName(pipeline.KindOverview, "", pipeline.FormatTXT)
				fmt.Fprint(cmd.OutOrStdout(), string(result.Artifacts[name]))
				return nil
			}

			run.noCache = true
			_, err := c.execute(cmd.Context(), opts, &run)
			return err
		},
	}

	cmd.Flags().StringVarP(&run.output, "output", "o", "", "write the overview into this directory instead of stdout")
	cmd.Flags().BoolVarP(&write, "write", "w", false, "write the overview into the configured output directory")
	return cmd
}
