package pipeline

import (
	"context"

	"github.com/matzehuels/archviz/pkg/errors"
	"github.com/matzehuels/archviz/pkg/figure"
	"github.com/matzehuels/archviz/pkg/present"
	"github.com/matzehuels/archviz/pkg/render"
	"github.com/matzehuels/archviz/pkg/render/cluster"
	figsvg "github.com/matzehuels/archviz/pkg/render/svg"
	"github.com/matzehuels/archviz/pkg/render/textdiagram"
)

// FileName returns the artifact file name for one output.
func FileName(kind, name, format string) string {
	switch kind {
	case KindFigure:
		if format == FormatHTML {
			return PresentationFile
		}
		return FigureBase + "." + format
	case KindOverview:
		return OverviewBase + "." + format
	default:
		return name + "." + format
	}
}

// RenderFigure encodes fig in one format. The HTML format splices the
// figure into opts.Template (or the built-in page).
func RenderFigure(ctx context.Context, fig figure.Figure, format string, opts Options) ([]byte, error) {
	switch format {
	case FormatJSON:
		return figure.Marshal(fig)
	case FormatHTML:
		tmpl := opts.Template
		if tmpl == "" {
			tmpl = present.DefaultTemplate()
		}
		html, err := present.Render(tmpl, fig, figure.EmbedOptions{ContainerID: opts.ContainerID})
		if err != nil {
			return nil, err
		}
		return []byte(html), nil
	case FormatSVG:
		return figsvg.Render(fig), nil
	case FormatPNG:
		return render.ToPNG(ctx, figsvg.Render(fig), opts.Scale)
	case FormatPDF:
		return render.ToPDF(ctx, figsvg.Render(fig))
	}
	return nil, errors.New(errors.ErrCodeUnsupported, "unsupported figure format: %s", format)
}

// RenderDiagram encodes DOT source in one format.
func RenderDiagram(ctx context.Context, dot, format string, opts Options) ([]byte, error) {
	switch format {
	case FormatDOT:
		return []byte(dot), nil
	case FormatSVG:
		return cluster.RenderSVG(ctx, dot)
	case FormatPNG:
		return cluster.RenderPNG(ctx, dot, opts.Scale)
	case FormatPDF:
		return cluster.RenderPDF(ctx, dot)
	}
	return nil, errors.New(errors.ErrCodeUnsupported, "unsupported diagram format: %s", format)
}

// RenderOverview encodes the overview document.
func RenderOverview(doc textdiagram.Document, format string) ([]byte, error) {
	if format != FormatTXT {
		return nil, errors.New(errors.ErrCodeUnsupported, "unsupported overview format: %s", format)
	}
	return []byte(textdiagram.Render(doc)), nil
}

// cacheable reports whether producing format is worth a cache lookup.
func cacheable(kind, format string) bool {
	switch format {
	case FormatPNG, FormatPDF:
		return true
	case FormatSVG:
		return kind == KindDiagram
	}
	return false
}
