package figure

import (
	"github.com/matzehuels/archviz/pkg/catalog"
	"github.com/matzehuels/archviz/pkg/errors"
)

const (
	edgeColor = "#7f8c8d"
	edgeWidth = 2.0

	markerSize        = 26.0
	markerBorderColor = "#ffffff"
	markerBorderWidth = 2.0
	labelFontSize     = 13.0
	labelColor        = "#1b2631"
	labelPosition     = "bottom center"

	panelBorderColor = "#d0d3d4"
	panelBorderWidth = 1.2
	panelTitleInsetX = 1.0
	panelTitleInsetY = 1.5
	panelTitleSize   = 13.0
	panelTitleColor  = "#2c3e50"
)

// BuildEdgeLayer draws every edge as a straight segment between its
// endpoints. Coordinates are (source, target, gap) per edge, in edge order.
// An endpoint missing from nodes fails with UNKNOWN_NODE_REFERENCE.
func BuildEdgeLayer(nodes []catalog.Node, edges []catalog.Edge) (Trace, error) {
	byID := catalog.Index(nodes)

	xs := make([]Sample, 0, 3*len(edges))
	ys := make([]Sample, 0, 3*len(edges))
	for _, e := range edges {
		src, ok := byID[e.From]
		if !ok {
			return Trace{}, errors.UnknownNode(e.From)
		}
		dst, ok := byID[e.To]
		if !ok {
			return Trace{}, errors.UnknownNode(e.To)
		}
		xs = append(xs, Value(src.X), Value(dst.X), Gap)
		ys = append(ys, Value(src.Y), Value(dst.Y), Gap)
	}

	return Trace{
		Type:      "scatter",
		Name:      "edges",
		Mode:      "lines",
		X:         xs,
		Y:         ys,
		Line:      &Line{Color: edgeColor, Width: edgeWidth},
		HoverInfo: "none",
	}, nil
}

// BuildNodeLayer emits one marker, label and hover text per node, all indexed
// like nodes. A group without a colour fails with UNKNOWN_GROUP.
func BuildNodeLayer(nodes []catalog.Node, colors catalog.ColorTable) (Trace, error) {
	n := len(nodes)
	var (
		xs     = make([]Sample, n)
		ys     = make([]Sample, n)
		labels = make([]string, n)
		fill   = make([]string, n)
		hover  = make([]string, n)
	)
	for i, node := range nodes {
		c, err := colors.Color(node.Group)
		if err != nil {
			return Trace{}, err
		}
		xs[i], ys[i] = Value(node.X), Value(node.Y)
		labels[i] = node.Label
		fill[i] = c
		hover[i] = node.Hover
	}

	return Trace{
		Type:         "scatter",
		Name:         "nodes",
		Mode:         "markers+text",
		X:            xs,
		Y:            ys,
		Text:         labels,
		TextPosition: labelPosition,
		TextFont:     &Font{Size: labelFontSize, Color: labelColor},
		Marker: &Marker{
			Size:  markerSize,
			Color: fill,
			Line:  &Line{Color: markerBorderColor, Width: markerBorderWidth},
		},
		HoverText: hover,
		HoverInfo: "text",
	}, nil
}

// BuildPanels returns one below-layer rectangle and one title annotation per
// panel, in input order.
func BuildPanels(panels []catalog.Panel) ([]Shape, []Annotation) {
	shapes := make([]Shape, 0, len(panels))
	notes := make([]Annotation, 0, len(panels))
	for _, p := range panels {
		shapes = append(shapes, Shape{
			Type:      "rect",
			XRef:      "x",
			YRef:      "y",
			X0:        p.X0,
			Y0:        p.Y0,
			X1:        p.X1,
			Y1:        p.Y1,
			Line:      &Line{Color: panelBorderColor, Width: panelBorderWidth},
			FillColor: p.Fill,
			Opacity:   1,
			Layer:     "below",
		})
		notes = append(notes, Annotation{
			XRef:      "x",
			YRef:      "y",
			X:         p.X0 + panelTitleInsetX,
			Y:         p.Y1 - panelTitleInsetY,
			Text:      "<b>" + p.Title + "</b>",
			ShowArrow: false,
			XAnchor:   "left",
			Font:      &Font{Size: panelTitleSize, Color: panelTitleColor},
		})
	}
	return shapes, notes
}

// Build runs the layer builders over c and assembles the figure.
func Build(c *catalog.Catalog, opts ...Option) (Figure, error) {
	cfg := DefaultLayout()
	cfg.Title = c.Title()
	for _, opt := range opts {
		opt(&cfg)
	}

	nodes := c.Nodes()
	edgeLayer, err := BuildEdgeLayer(nodes, c.Edges())
	if err != nil {
		return Figure{}, err
	}
	nodeLayer, err := BuildNodeLayer(nodes, c.Colors())
	if err != nil {
		return Figure{}, err
	}
	shapes, notes := BuildPanels(c.Panels())

	return Assemble(edgeLayer, nodeLayer, shapes, notes, cfg), nil
}
