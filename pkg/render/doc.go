// Package render holds the renderers that turn architecture data into files.
//
// # Overview
//
// Three renderers live in subpackages:
//
//   - [cluster]: clustered node-link diagrams laid out by Graphviz
//   - [svg]: a static SVG drawing of an interactive [figure.Figure]
//   - [textdiagram]: the plain ASCII project overview
//
// # Format Conversion
//
// The [ToPDF] and [ToPNG] functions convert any SVG to other formats using
// the external rsvg-convert tool (from librsvg). Both SVG-producing
// renderers use them.
//
//	svg, err := cluster.RenderSVG(ctx, dot)
//	pdf, err := render.ToPDF(ctx, svg)
//	png, err := render.ToPNG(ctx, svg, 2.0)  // 2x scale
//
// [cluster]: github.com/matzehuels/archviz/pkg/render/cluster
// [svg]: github.com/matzehuels/archviz/pkg/render/svg
// [textdiagram]: github.com/matzehuels/archviz/pkg/render/textdiagram
// [figure.Figure]: github.com/matzehuels/archviz/pkg/figure.Figure
package render
