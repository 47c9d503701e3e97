package svg

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"math"
	"regexp"
	"strings"

	"github.com/matzehuels/archviz/pkg/figure"
)

const (
	// DefaultWidth is used when the figure layout leaves the width to the browser.
	DefaultWidth = 1200

	// DefaultFontFamily matches the plotly.js default font stack.
	DefaultFontFamily = `"Open Sans", verdana, arial, sans-serif`
)

// Option configures SVG rendering.
type Option func(*renderer)

// WithWidth overrides the image width in pixels.
func WithWidth(px int) Option { return func(r *renderer) { r.width = px } }

// WithFontFamily overrides the font stack used for all text.
func WithFontFamily(f string) Option { return func(r *renderer) { r.font = f } }

type renderer struct {
	width, height int
	font          string

	x0, x1, y0, y1 float64 // axis ranges
	left, top      float64
	plotW, plotH   float64
}

// Render draws fig as SVG.
func Render(fig figure.Figure, opts ...Option) []byte {
	r := newRenderer(fig, opts...)
	lay := fig.Layout

	var buf bytes.Buffer
	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %d %d" width="%d" height="%d" font-family="%s">`+"\n",
		r.width, r.height, r.width, r.height, escapeXML(r.font))

	fmt.Fprintf(&buf, `  <rect class="paper" x="0" y="0" width="%d" height="%d" fill="%s"/>`+"\n",
		r.width, r.height, fill(lay.PaperBGColor))
	fmt.Fprintf(&buf, `  <rect class="plot" x="%.1f" y="%.1f" width="%.1f" height="%.1f" fill="%s"/>`+"\n",
		r.left, r.top, r.plotW, r.plotH, fill(lay.PlotBGColor))

	r.renderShapes(&buf, lay.Shapes, "below")
	for _, t := range fig.Data {
		r.renderLines(&buf, t)
	}
	for _, t := range fig.Data {
		r.renderMarkers(&buf, t)
	}
	for _, t := range fig.Data {
		r.renderText(&buf, t)
	}
	r.renderShapes(&buf, lay.Shapes, "above")
	r.renderAnnotations(&buf, lay.Annotations)
	r.renderTitle(&buf, lay.Title)

	buf.WriteString("</svg>\n")
	return buf.Bytes()
}

func newRenderer(fig figure.Figure, opts ...Option) renderer {
	lay := fig.Layout
	r := renderer{
		width:  lay.Width,
		height: lay.Height,
		font:   DefaultFontFamily,
	}
	for _, opt := range opts {
		opt(&r)
	}
	if r.width <= 0 {
		r.width = DefaultWidth
	}
	if r.height <= 0 {
		r.height = figure.DefaultHeight
	}

	r.x0, r.x1 = axisRange(lay.XAxis)
	r.y0, r.y1 = axisRange(lay.YAxis)
	r.left, r.top = lay.Margin.L, lay.Margin.T
	r.plotW = math.Max(float64(r.width)-lay.Margin.L-lay.Margin.R, 1)
	r.plotH = math.Max(float64(r.height)-lay.Margin.T-lay.Margin.B, 1)
	return r
}

func axisRange(a figure.Axis) (float64, float64) {
	if a.Range[0] == a.Range[1] {
		return 0, 100
	}
	return a.Range[0], a.Range[1]
}

// px maps a data x coordinate to pixels.
func (r *renderer) px(x float64) float64 {
	return r.left + (x-r.x0)/(r.x1-r.x0)*r.plotW
}

// py maps a data y coordinate to pixels; SVG y grows downwards.
func (r *renderer) py(y float64) float64 {
	return r.top + (1-(y-r.y0)/(r.y1-r.y0))*r.plotH
}

func (r *renderer) renderShapes(buf *bytes.Buffer, shapes []figure.Shape, layer string) {
	for _, s := range shapes {
		l := s.Layer
		if l == "" {
			l = "above"
		}
		if l != layer || s.Type != "rect" {
			continue
		}
		x0, x1 := math.Min(r.px(s.X0), r.px(s.X1)), math.Max(r.px(s.X0), r.px(s.X1))
		y0, y1 := math.Min(r.py(s.Y0), r.py(s.Y1)), math.Max(r.py(s.Y0), r.py(s.Y1))
		stroke, width := "none", 0.0
		if s.Line != nil {
			stroke, width = fill(s.Line.Color), s.Line.Width
		}
		fmt.Fprintf(buf, `  <rect class="panel" x="%.1f" y="%.1f" width="%.1f" height="%.1f" fill="%s" stroke="%s" stroke-width="%.1f" opacity="%g"/>`+"\n",
			x0, y0, x1-x0, y1-y0, fill(s.FillColor), stroke, width, opacity(s.Opacity))
	}
}

func (r *renderer) renderLines(buf *bytes.Buffer, t figure.Trace) {
	if !strings.Contains(t.Mode, "lines") || t.Line == nil {
		return
	}
	var d strings.Builder
	pen := false
	for i := 0; i < len(t.X) && i < len(t.Y); i++ {
		x, y := t.X[i], t.Y[i]
		if x.Gap || y.Gap {
			pen = false
			continue
		}
		cmd := "L"
		if !pen {
			cmd = "M"
		}
		if d.Len() > 0 {
			d.WriteByte(' ')
		}
		fmt.Fprintf(&d, "%s%.1f %.1f", cmd, r.px(x.V), r.py(y.V))
		pen = true
	}
	if d.Len() == 0 {
		return
	}
	fmt.Fprintf(buf, `  <path class="%s" d="%s" fill="none" stroke="%s" stroke-width="%.1f"/>`+"\n",
		traceClass(t, "lines"), d.String(), fill(t.Line.Color), t.Line.Width)
}

func (r *renderer) renderMarkers(buf *bytes.Buffer, t figure.Trace) {
	if !strings.Contains(t.Mode, "markers") || t.Marker == nil {
		return
	}
	radius := t.Marker.Size / 2
	stroke, width := "none", 0.0
	if t.Marker.Line != nil {
		stroke, width = fill(t.Marker.Line.Color), t.Marker.Line.Width
	}
	for i := 0; i < len(t.X) && i < len(t.Y); i++ {
		x, y := t.X[i], t.Y[i]
		if x.Gap || y.Gap {
			continue
		}
		color := "#1f77b4"
		if i < len(t.Marker.Color) {
			color = t.Marker.Color[i]
		}
		hover := ""
		if t.HoverInfo != "none" && i < len(t.HoverText) {
			hover = t.HoverText[i]
		}
		fmt.Fprintf(buf, `  <circle class="%s" cx="%.1f" cy="%.1f" r="%.1f" fill="%s" stroke="%s" stroke-width="%.1f"`,
			traceClass(t, "marker"), r.px(x.V), r.py(y.V), radius, fill(color), stroke, width)
		if hover == "" {
			buf.WriteString("/>\n")
			continue
		}
		fmt.Fprintf(buf, "><title>%s</title></circle>\n", escapeXML(plainText(hover, "\n")))
	}
}

func (r *renderer) renderText(buf *bytes.Buffer, t figure.Trace) {
	if !strings.Contains(t.Mode, "text") {
		return
	}
	size, color := 12.0, "#444444"
	if t.TextFont != nil {
		if t.TextFont.Size > 0 {
			size = t.TextFont.Size
		}
		if t.TextFont.Color != "" {
			color = t.TextFont.Color
		}
	}
	offset := 0.0
	if t.Marker != nil {
		offset = t.Marker.Size / 2
	}
	for i := 0; i < len(t.X) && i < len(t.Y) && i < len(t.Text); i++ {
		x, y := t.X[i], t.Y[i]
		if x.Gap || y.Gap || t.Text[i] == "" {
			continue
		}
		cx, cy := r.px(x.V), r.py(y.V)
		switch t.TextPosition {
		case "top center":
			cy -= offset + size*0.4
		case "middle center":
			cy += size * 0.35
		default:
			cy += offset + size
		}
		fmt.Fprintf(buf, `  <text class="%s" x="%.1f" y="%.1f" text-anchor="middle" font-size="%g" fill="%s">%s</text>`+"\n",
			traceClass(t, "label"), cx, cy, size, fill(color), escapeXML(plainText(t.Text[i], " ")))
	}
}

func (r *renderer) renderAnnotations(buf *bytes.Buffer, anns []figure.Annotation) {
	for _, a := range anns {
		size, color := 12.0, "#444444"
		if a.Font != nil {
			if a.Font.Size > 0 {
				size = a.Font.Size
			}
			if a.Font.Color != "" {
				color = a.Font.Color
			}
		}
		fmt.Fprintf(buf, `  <text class="annotation" x="%.1f" y="%.1f" text-anchor="%s" dominant-baseline="middle" font-size="%g" fill="%s"%s>%s</text>`+"\n",
			r.px(a.X), r.py(a.Y), anchor(a.XAnchor), size, fill(color), weight(a.Text), escapeXML(plainText(a.Text, " ")))
	}
}

func (r *renderer) renderTitle(buf *bytes.Buffer, t figure.Title) {
	if t.Text == "" {
		return
	}
	size := 17.0
	if t.Font != nil && t.Font.Size > 0 {
		size = t.Font.Size
	}
	x := t.X * float64(r.width)
	y := math.Max(r.top/2, size)
	fmt.Fprintf(buf, `  <text class="title" x="%.1f" y="%.1f" text-anchor="%s" dominant-baseline="middle" font-size="%g" fill="#444444"%s>%s</text>`+"\n",
		x, y, anchor(t.XAnchor), size, weight(t.Text), escapeXML(plainText(t.Text, " ")))
}

func traceClass(t figure.Trace, part string) string {
	if t.Name == "" {
		return part
	}
	return t.Name + "-" + part
}

func anchor(xanchor string) string {
	switch xanchor {
	case "left":
		return "start"
	case "right":
		return "end"
	default:
		return "middle"
	}
}

func weight(text string) string {
	if strings.Contains(text, "<b>") {
		return ` font-weight="bold"`
	}
	return ""
}

func opacity(o float64) float64 {
	if o <= 0 || o > 1 {
		return 1
	}
	return o
}

func fill(c string) string {
	if c == "" {
		return "none"
	}
	return escapeXML(c)
}

var (
	breakRe = regexp.MustCompile(`(?i)<br\s*/?>`)
	tagRe   = regexp.MustCompile(`<[^>]*>`)
)

// plainText reduces plotly's HTML subset to plain text, replacing line
// breaks with sep.
func plainText(s, sep string) string {
	s = breakRe.ReplaceAllString(s, sep)
	return tagRe.ReplaceAllString(s, "")
}

func escapeXML(s string) string {
	var buf bytes.Buffer
	xml.EscapeText(&buf, []byte(s))
	return buf.String()
}
