package cli

import (
	"github.com/spf13/cobra"

	archio "github.com/matzehuels/archviz/pkg/io"
	"github.com/matzehuels/archviz/pkg/pipeline"
	"github.com/matzehuels/archviz/pkg/present"
)

// figureFlags hold the layout overrides shared by figure and present.
type figureFlags struct {
	catalog string
	title   string
	width   int
	height  int
}

func (f *figureFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.catalog, "catalog", "", "JSON catalog to render instead of the built-in one")
	cmd.Flags().StringVar(&f.title, "title", "", "figure title")
	cmd.Flags().IntVar(&f.width, "width", 0, "figure width in pixels (default: responsive)")
	cmd.Flags().IntVar(&f.height, "height", 0, "figure height in pixels (default 700)")
}

// figureOptions merges the flags over the [figure] config section.
func (c *CLI) figureOptions(cmd *cobra.Command, f *figureFlags) (pipeline.Options, error) {
	cfg := c.cfg().Figure
	opts := pipeline.Options{
		Kind:   pipeline.KindFigure,
		Title:  flagOr(cmd, "title", f.title, cfg.Title),
		Width:  flagOr(cmd, "width", f.width, cfg.Width),
		Height: flagOr(cmd, "height", f.height, cfg.Height),
	}
	if path := flagOr(cmd, "catalog", f.catalog, cfg.Catalog); path != "" {
		cat, err := archio.ImportJSON(path)
		if err != nil {
			return opts, err
		}
		c.Logger.Debug("loaded catalog", "path", path, "nodes", cat.NodeCount(), "edges", cat.EdgeCount())
		opts.Catalog = cat
	}
	return opts, nil
}

// figureCommand renders the presentation figure.
func (c *CLI) figureCommand() *cobra.Command {
	var (
		run   runFlags
		fig   figureFlags
		scale float64
	)

	cmd := &cobra.Command{
		Use:   "figure",
		Short: "Render the architecture figure (plotly JSON, SVG, PNG, PDF)",
		Long: `Render the interactive architecture figure.

The JSON output is a plotly.js figure ({data, layout, config}). SVG, PNG and
PDF are static renderings of the same figure; PNG and PDF need rsvg-convert.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := c.figureOptions(cmd, &fig)
			if err != nil {
				return err
			}
			opts.Formats = parseFormats(run.formats)
			if len(opts.Formats) == 0 {
				opts.Formats = []string{pipeline.FormatJSON}
			}
			opts.Scale = scale

			result, err := c.execute(cmd.Context(), opts, &run)
			if err != nil {
				return err
			}
			printStats(result.Stats.NodeCount, result.Stats.EdgeCount, result.CacheInfo.AllHit())
			return nil
		},
	}

	run.register(cmd, "output format(s): json (default), html, svg, png, pdf (comma-separated)")
	fig.register(cmd)
	cmd.Flags().Float64Var(&scale, "scale", pipeline.DefaultScale, "PNG scale factor")
	return cmd
}

// presentCommand renders the HTML presentation.
func (c *CLI) presentCommand() *cobra.Command {
	var (
		run         runFlags
		fig         figureFlags
		template    string
		containerID string
	)

	cmd := &cobra.Command{
		Use:   "present",
		Short: "Render the HTML architecture presentation",
		Long: `Render the multi-tab HTML presentation with the architecture figure
embedded. The page loads plotly.js from its CDN when opened.

A custom template must contain the line

    ` + present.Placeholder + `

where the figure script is inserted.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := c.cfg().Figure
			opts, err := c.figureOptions(cmd, &fig)
			if err != nil {
				return err
			}
			opts.Formats = []string{pipeline.FormatHTML}
			opts.ContainerID = flagOr(cmd, "container-id", containerID, cfg.ContainerID)

			if path := flagOr(cmd, "template", template, cfg.Template); path != "" {
				tmpl, err := present.LoadTemplate(path)
				if err != nil {
					return err
				}
				opts.Template = tmpl
			}

			result, err := c.execute(cmd.Context(), opts, &run)
			if err != nil {
				return err
			}
			printSuccess("Presentation ready")
			printStats(result.Stats.NodeCount, result.Stats.EdgeCount, false)
			return nil
		},
	}

	cmd.Flags().StringVarP(&run.output, "output", "o", "", "output directory (default from config, else .)")
	fig.register(cmd)
	cmd.Flags().StringVar(&template, "template", "", "HTML template path (default: built-in page)")
	cmd.Flags().StringVar(&containerID, "container-id", "", "element id the figure is drawn into")
	return cmd
}
