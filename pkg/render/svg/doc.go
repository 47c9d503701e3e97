// Package svg renders a [figure.Figure] as a standalone SVG image.
//
// The output is a static snapshot of what the browser would draw: panel
// rectangles first, then edge lines, node markers, node labels, panel
// annotations and finally the title. Hover text becomes an SVG <title>
// child of each marker, which most viewers show as a native tooltip.
//
// Data coordinates are mapped through the fixed axis ranges of the layout
// onto the plot area inside the margins, so the image matches the
// interactive figure at the same width and height. The SVG is the input for
// PNG and PDF export via [render.ToPNG] and [render.ToPDF].
//
// [render.ToPNG]: github.com/matzehuels/archviz/pkg/render.ToPNG
// [render.ToPDF]: github.com/matzehuels/archviz/pkg/render.ToPDF
package svg
