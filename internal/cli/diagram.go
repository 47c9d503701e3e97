package cli

import (
	"github.com/spf13/cobra"

	"github.com/matzehuels/archviz/pkg/architecture"
	"github.com/matzehuels/archviz/pkg/pipeline"
)

// diagramCommand renders the clustered Graphviz diagrams.
func (c *CLI) diagramCommand() *cobra.Command {
	var (
		run   runFlags
		scale float64
		list  bool
	)

	cmd := &cobra.Command{
		Use:   "diagram [name]",
		Short: "Render the clustered architecture diagrams",
		Long: `Render the static architecture diagrams through Graphviz.

Without a name all diagrams are rendered. Available diagrams:
  infrastructure  GitHub, authentication and the GCP project layers
  network         internet, public and private subnets
  cicd            developer workflow through deployment
  stunning        shared infrastructure and the three environments`,
		Args:      cobra.MaximumNArgs(1),
		ValidArgs: architecture.DiagramNames(),
		RunE: func(cmd *cobra.Command, args []string) error {
			if list {
				for _, d := range architecture.Diagrams() {
					printKeyValue(d.Name, d.Title)
				}
				return nil
			}

			opts := pipeline.Options{
				Kind:    pipeline.KindDiagram,
				Formats: parseFormats(run.formats),
				Scale:   scale,
			}
			if len(args) == 1 {
				opts.Diagram = args[0]
			}

			result, err := c.execute(cmd.Context(), opts, &run)
			if err != nil {
				return err
			}
			printStats(result.Stats.NodeCount, result.Stats.EdgeCount, result.CacheInfo.AllHit())
			if result.Stats.Units > 1 {
				printDetail("%d diagrams", result.Stats.Units)
			}
			return nil
		},
	}

	run.register(cmd, "output format(s): svg (default), dot, png, pdf (comma-separated)")
	cmd.Flags().Float64Var(&scale, "scale", pipeline.DefaultScale, "PNG scale factor")
	cmd.Flags().BoolVarP(&list, "list", "l", false, "list the available diagrams")
	return cmd
}
