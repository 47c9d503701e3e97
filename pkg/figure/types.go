package figure

import (
	"fmt"
	"math"
	"strconv"
)

// Figure is a plotly.js figure: traces, layout and client config.
type Figure struct {
	Data   []Trace `json:"data"`
	Layout Layout  `json:"layout"`
	Config Config  `json:"config"`
}

// Trace is a plotly scatter trace.
type Trace struct {
	Type         string   `json:"type"`
	Name         string   `json:"name,omitempty"`
	Mode         string   `json:"mode"`
	X            []Sample `json:"x"`
	Y            []Sample `json:"y"`
	Text         []string `json:"text,omitempty"`
	TextPosition string   `json:"textposition,omitempty"`
	TextFont     *Font    `json:"textfont,omitempty"`
	Line         *Line    `json:"line,omitempty"`
	Marker       *Marker  `json:"marker,omitempty"`
	HoverText    []string `json:"hovertext,omitempty"`
	HoverInfo    string   `json:"hoverinfo,omitempty"`
	ShowLegend   bool     `json:"showlegend"`
}

// Marker styles the points of a trace. Color is per point.
type Marker struct {
	Size  float64  `json:"size"`
	Color []string `json:"color"`
	Line  *Line    `json:"line,omitempty"`
}

// Line is a stroke colour and width.
type Line struct {
	Color string  `json:"color"`
	Width float64 `json:"width"`
}

// Font is a text size and colour.
type Font struct {
	Size  float64 `json:"size,omitempty"`
	Color string  `json:"color,omitempty"`
}

// Shape is a layout shape. Only rectangles are produced.
type Shape struct {
	Type      string  `json:"type"`
	XRef      string  `json:"xref"`
	YRef      string  `json:"yref"`
	X0        float64 `json:"x0"`
	Y0        float64 `json:"y0"`
	X1        float64 `json:"x1"`
	Y1        float64 `json:"y1"`
	Line      *Line   `json:"line,omitempty"`
	FillColor string  `json:"fillcolor"`
	Opacity   float64 `json:"opacity"`
	Layer     string  `json:"layer"`
}

// Annotation is a free text label placed in data coordinates.
type Annotation struct {
	XRef      string  `json:"xref"`
	YRef      string  `json:"yref"`
	X         float64 `json:"x"`
	Y         float64 `json:"y"`
	Text      string  `json:"text"`
	ShowArrow bool    `json:"showarrow"`
	XAnchor   string  `json:"xanchor"`
	Font      *Font   `json:"font,omitempty"`
}

// Layout is the plotly layout object.
type Layout struct {
	Title        Title        `json:"title"`
	ShowLegend   bool         `json:"showlegend"`
	XAxis        Axis         `json:"xaxis"`
	YAxis        Axis         `json:"yaxis"`
	Margin       Margin       `json:"margin"`
	PlotBGColor  string       `json:"plot_bgcolor"`
	PaperBGColor string       `json:"paper_bgcolor"`
	HoverLabel   HoverLabel   `json:"hoverlabel"`
	Width        int          `json:"width,omitempty"`
	Height       int          `json:"height"`
	Shapes       []Shape      `json:"shapes"`
	Annotations  []Annotation `json:"annotations"`
}

// Title is the figure heading.
type Title struct {
	Text    string  `json:"text"`
	X       float64 `json:"x"`
	XAnchor string  `json:"xanchor"`
	Font    *Font   `json:"font,omitempty"`
}

// Axis pins an axis range and hides it.
type Axis struct {
	Visible    bool       `json:"visible"`
	Range      [2]float64 `json:"range"`
	FixedRange bool       `json:"fixedrange"`
}

// Margin is the space around the plot area in pixels.
type Margin struct {
	L float64 `json:"l"`
	R float64 `json:"r"`
	T float64 `json:"t"`
	B float64 `json:"b"`
}

// HoverLabel styles hover tooltips.
type HoverLabel struct {
	BGColor string `json:"bgcolor"`
	Font    *Font  `json:"font,omitempty"`
}

// Config is the plotly client configuration passed to Plotly.newPlot.
type Config struct {
	Responsive     bool `json:"responsive"`
	DisplayLogo    bool `json:"displaylogo"`
	DisplayModeBar bool `json:"displayModeBar"`
}

// Sample is one entry of a trace coordinate array. A gap breaks the line
// and marshals to null.
type Sample struct {
	V   float64
	Gap bool
}

// Value returns a sample holding v.
func Value(v float64) Sample { return Sample{V: v} }

// Gap is the segment terminator between two edges.
var Gap = Sample{Gap: true}

// MarshalJSON encodes a gap as null and a value as the shortest decimal.
func (s Sample) MarshalJSON() ([]byte, error) {
	if s.Gap {
		return []byte("null"), nil
	}
	if math.IsNaN(s.V) || math.IsInf(s.V, 0) {
		return nil, fmt.Errorf("figure: unsupported coordinate %v", s.V)
	}
	return strconv.AppendFloat(nil, s.V, 'f', -1, 64), nil
}

// String formats the sample for test failures and logs.
func (s Sample) String() string {
	if s.Gap {
		return "null"
	}
	return strconv.FormatFloat(s.V, 'f', -1, 64)
}
