package cluster

import (
	"bytes"
	"context"
	"fmt"
	"maps"
	"regexp"
	"slices"
	"strconv"
	"strings"

	"github.com/goccy/go-graphviz"

	"github.com/matzehuels/archviz/pkg/render"
)

type kindStyle struct {
	shape string
	fill  string
}

var kindStyles = map[Kind]kindStyle{
	KindRepo:      {"folder", "#e3f2fd"},
	KindPipeline:  {"cds", "#bbdefb"},
	KindIAM:       {"octagon", "#f3e5f5"},
	KindVPC:       {"box3d", "#e8f5e9"},
	KindRouter:    {"diamond", "#fff3e0"},
	KindNAT:       {"invhouse", "#fff3e0"},
	KindFirewall:  {"hexagon", "#ffebee"},
	KindCompute:   {"component", "#e0f7fa"},
	KindStorage:   {"cylinder", "#fbe9e7"},
	KindInternet:  {"ellipse", "#eceff1"},
	KindUsers:     {"egg", "#fffde7"},
	KindTerraform: {"tab", "#ede7f6"},
	KindSecurity:  {"septagon", "#fce4ec"},
}

var defaultNodeAttr = map[string]string{
	"shape":     "box",
	"style":     "rounded,filled",
	"fillcolor": "white",
	"fontsize":  "12",
	"margin":    "0.2,0.1",
}

// ToDOT converts a diagram to Graphviz DOT source.
// The diagram is validated first; invalid diagrams produce no output.
func ToDOT(d Diagram) (string, error) {
	if err := d.Validate(); err != nil {
		return "", err
	}

	var buf bytes.Buffer
	fmt.Fprintf(&buf, "digraph %s {\n", quote(d.Name))
	if d.Title != "" {
		fmt.Fprintf(&buf, "  label=%s;\n", quote(d.Title))
		buf.WriteString("  labelloc=\"t\";\n")
	}
	dir := d.Direction
	if dir == "" {
		dir = TopBottom
	}
	fmt.Fprintf(&buf, "  rankdir=%s;\n", dir)
	writeDefaults(&buf, "graph", d.GraphAttr)
	writeDefaults(&buf, "node", merge(defaultNodeAttr, d.NodeAttr))
	writeDefaults(&buf, "edge", d.EdgeAttr)
	buf.WriteString("\n")

	counter := 0
	writeNodes(&buf, d.Root.Nodes, "  ")
	for _, c := range d.Root.Clusters {
		writeCluster(&buf, c, "  ", &counter)
	}

	buf.WriteString("\n")
	for _, e := range d.Edges {
		attrs := edgeAttrs(e)
		if len(attrs) == 0 {
			fmt.Fprintf(&buf, "  %s -> %s;\n", quote(e.From), quote(e.To))
			continue
		}
		fmt.Fprintf(&buf, "  %s -> %s [%s];\n", quote(e.From), quote(e.To), strings.Join(attrs, ", "))
	}

	buf.WriteString("}\n")
	return buf.String(), nil
}

func writeCluster(buf *bytes.Buffer, c Cluster, indent string, counter *int) {
	*counter++
	fmt.Fprintf(buf, "%ssubgraph cluster_%d {\n", indent, *counter)
	inner := indent + "  "
	fmt.Fprintf(buf, "%slabel=%s;\n", inner, quote(c.Label))
	for _, k := range slices.Sorted(maps.Keys(c.Attr)) {
		fmt.Fprintf(buf, "%s%s=%s;\n", inner, k, quote(c.Attr[k]))
	}
	writeNodes(buf, c.Nodes, inner)
	for _, sub := range c.Clusters {
		writeCluster(buf, sub, inner, counter)
	}
	fmt.Fprintf(buf, "%s}\n", indent)
}

func writeNodes(buf *bytes.Buffer, nodes []Node, indent string) {
	for _, n := range nodes {
		fmt.Fprintf(buf, "%s%s [%s];\n", indent, quote(n.ID), strings.Join(nodeAttrs(n), ", "))
	}
}

func writeDefaults(buf *bytes.Buffer, kind string, attrs map[string]string) {
	if len(attrs) == 0 {
		return
	}
	fmt.Fprintf(buf, "  %s [%s];\n", kind, strings.Join(fmtAttrs(attrs), ", "))
}

func nodeAttrs(n Node) []string {
	label := n.Label
	if label == "" {
		label = n.ID
	}
	attrs := []string{"label=" + quote(label)}
	if s, ok := kindStyles[n.Kind]; ok {
		attrs = append(attrs, "shape="+quote(s.shape), "fillcolor="+quote(s.fill))
	}
	return attrs
}

func edgeAttrs(e Edge) []string {
	var attrs []string
	if e.Label != "" {
		attrs = append(attrs, "label="+quote(e.Label))
	}
	if e.Color != "" {
		attrs = append(attrs, "color="+quote(e.Color))
	}
	if e.Style != "" {
		attrs = append(attrs, "style="+quote(e.Style))
	}
	return attrs
}

func fmtAttrs(attrs map[string]string) []string {
	out := make([]string, 0, len(attrs))
	for _, k := range slices.Sorted(maps.Keys(attrs)) {
		out = append(out, k+"="+quote(attrs[k]))
	}
	return out
}

var dotEscaper = strings.NewReplacer(`"`, `\"`, "\n", `\n`)

// quote returns s as a DOT double-quoted string. Newlines become the \n
// centred line break; other characters, emoji included, pass through.
func quote(s string) string {
	return `"` + dotEscaper.Replace(s) + `"`
}

func merge(base, override map[string]string) map[string]string {
	out := maps.Clone(base)
	maps.Copy(out, override)
	return out
}

// RenderSVG renders DOT source to SVG using Graphviz.
func RenderSVG(ctx context.Context, dot string) ([]byte, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return normalizeViewBox(buf.Bytes()), nil
}

var (
	svgTagRe  = regexp.MustCompile(`<svg[^>]*>`)
	viewBoxRe = regexp.MustCompile(`viewBox="([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)"`)
)

func normalizeViewBox(svg []byte) []byte {
	match := viewBoxRe.FindSubmatch(svg)
	if match == nil {
		return svg
	}

	w, _ := strconv.ParseFloat(string(match[3]), 64)
	h, _ := strconv.ParseFloat(string(match[4]), 64)
	if w == 0 || h == 0 {
		return svg
	}

	newSvg := fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.2f %.2f" width="%.0f" height="%.0f">`,
		w, h, w, h)

	return svgTagRe.ReplaceAll(svg, []byte(newSvg))
}

// RenderPDF renders DOT source as PDF via SVG conversion.
func RenderPDF(ctx context.Context, dot string) ([]byte, error) {
	svg, err := RenderSVG(ctx, dot)
	if err != nil {
		return nil, err
	}
	return render.ToPDF(ctx, svg)
}

// RenderPNG renders DOT source as PNG via SVG conversion at the given scale.
func RenderPNG(ctx context.Context, dot string, scale float64) ([]byte, error) {
	svg, err := RenderSVG(ctx, dot)
	if err != nil {
		return nil, err
	}
	return render.ToPNG(ctx, svg, scale)
}
