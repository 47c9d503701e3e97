package figure

import "github.com/matzehuels/archviz/pkg/catalog"

const (
	// DefaultHeight is the canvas height in pixels.
	DefaultHeight = 700

	defaultBackground = "#ffffff"
	titleFontSize     = 22.0
	hoverFontSize     = 12.0
)

// LayoutConfig holds the global layout settings applied by [Assemble].
// The axis ranges are not configurable: they are always 0–100.
type LayoutConfig struct {
	Title      string
	Width      int // 0 lets plotly fill the container
	Height     int
	Background string
	Margin     Margin
}

// DefaultLayout returns the layout used for the architecture presentation.
func DefaultLayout() LayoutConfig {
	return LayoutConfig{
		Height:     DefaultHeight,
		Background: defaultBackground,
		Margin:     Margin{L: 24, R: 24, T: 80, B: 24},
	}
}

// Option adjusts the layout used by [Build].
type Option func(*LayoutConfig)

// WithTitle overrides the catalog title.
func WithTitle(title string) Option {
	return func(c *LayoutConfig) {
		if title != "" {
			c.Title = title
		}
	}
}

// WithSize fixes the canvas size. Zero values keep the current setting.
func WithSize(width, height int) Option {
	return func(c *LayoutConfig) {
		if width > 0 {
			c.Width = width
		}
		if height > 0 {
			c.Height = height
		}
	}
}

// Assemble combines the layers into one figure. Edges are drawn before nodes
// and panels sit on the below layer, so the stacking is always
// panels < edges < nodes.
func Assemble(edges, nodes Trace, shapes []Shape, annotations []Annotation, cfg LayoutConfig) Figure {
	shapes = append([]Shape{}, shapes...)
	annotations = append([]Annotation{}, annotations...)
	for i := range shapes {
		shapes[i].Layer = "below"
	}
	bg := cfg.Background
	if bg == "" {
		bg = defaultBackground
	}
	height := cfg.Height
	if height <= 0 {
		height = DefaultHeight
	}

	axis := Axis{
		Visible:    false,
		Range:      [2]float64{catalog.MinCoord, catalog.MaxCoord},
		FixedRange: true,
	}

	return Figure{
		Data: []Trace{edges, nodes},
		Layout: Layout{
			Title: Title{
				Text:    cfg.Title,
				X:       0.5,
				XAnchor: "center",
				Font:    &Font{Size: titleFontSize},
			},
			ShowLegend:   false,
			XAxis:        axis,
			YAxis:        axis,
			Margin:       cfg.Margin,
			PlotBGColor:  bg,
			PaperBGColor: bg,
			HoverLabel:   HoverLabel{BGColor: bg, Font: &Font{Size: hoverFontSize}},
			Width:        cfg.Width,
			Height:       height,
			Shapes:       shapes,
			Annotations:  annotations,
		},
		Config: Config{Responsive: true, DisplayModeBar: false},
	}
}
