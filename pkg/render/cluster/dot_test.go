package cluster

import (
	"context"
	"strings"
	"testing"

	"github.com/matzehuels/archviz/pkg/errors"
)

func sample() Diagram {
	return Diagram{
		Name:      "sample",
		Title:     "Sample Diagram",
		Direction: LeftRight,
		GraphAttr: map[string]string{"pad": "0.5", "bgcolor": "white"},
		Root: Cluster{
			Nodes: []Node{{ID: "internet", Label: "Internet", Kind: KindInternet}},
			Clusters: []Cluster{
				{
					Label: "GCP VPC",
					Attr:  map[string]string{"bgcolor": "#E8F5E8"},
					Nodes: []Node{{ID: "fw", Label: "Firewall\nSSH: 22", Kind: KindFirewall}},
					Clusters: []Cluster{
						{Label: "Private Subnet", Nodes: []Node{{ID: "vm", Label: "dev-vm", Kind: KindCompute}}},
					},
				},
			},
		},
		Edges: []Edge{
			{From: "internet", To: "fw", Label: "inbound", Color: "red"},
			{From: "fw", To: "vm"},
		},
	}
}

func TestToDOT_Structure(t *testing.T) {
	dot, err := ToDOT(sample())
	if err != nil {
		t.Fatalf("ToDOT() error: %v", err)
	}

	for _, want := range []string{
		`digraph "sample" {`,
		`label="Sample Diagram";`,
		"rankdir=LR;",
		`graph [bgcolor="white", pad="0.5"];`,
		"subgraph cluster_1 {",
		`label="GCP VPC";`,
		`bgcolor="#E8F5E8";`,
		"subgraph cluster_2 {",
		`"fw" [label="Firewall\nSSH: 22", shape="hexagon", fillcolor="#ffebee"];`,
		`"internet" -> "fw" [label="inbound", color="red"];`,
		`"fw" -> "vm";`,
	} {
		if !strings.Contains(dot, want) {
			t.Errorf("ToDOT() output missing %q\n%s", want, dot)
		}
	}

	if strings.Index(dot, "cluster_2") < strings.Index(dot, "cluster_1") {
		t.Error("nested cluster should follow its parent")
	}
}

func TestToDOT_DefaultDirection(t *testing.T) {
	d := sample()
	d.Direction = ""
	dot, err := ToDOT(d)
	if err != nil {
		t.Fatalf("ToDOT() error: %v", err)
	}
	if !strings.Contains(dot, "rankdir=TB;") {
		t.Error("ToDOT() should default to top-bottom")
	}
}

func TestToDOT_Deterministic(t *testing.T) {
	first, _ := ToDOT(sample())
	for range 5 {
		again, _ := ToDOT(sample())
		if again != first {
			t.Fatal("ToDOT() output changed between runs")
		}
	}
}

func TestToDOT_NodeAttrOverride(t *testing.T) {
	d := sample()
	d.NodeAttr = map[string]string{"fontsize": "14", "color": "#2196F3"}
	dot, err := ToDOT(d)
	if err != nil {
		t.Fatalf("ToDOT() error: %v", err)
	}
	if !strings.Contains(dot, `color="#2196F3"`) || !strings.Contains(dot, `fontsize="14"`) {
		t.Errorf("node defaults not merged:\n%s", dot)
	}
	if strings.Contains(dot, `fontsize="12"`) {
		t.Error("override should replace the default fontsize")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Diagram)
		code   errors.Code
	}{
		{"unknown target", func(d *Diagram) { d.Edges = append(d.Edges, Edge{From: "vm", To: "nat"}) }, errors.ErrCodeUnknownNode},
		{"unknown source", func(d *Diagram) { d.Edges = append(d.Edges, Edge{From: "nat", To: "vm"}) }, errors.ErrCodeUnknownNode},
		{"duplicate node", func(d *Diagram) { d.Root.Nodes = append(d.Root.Nodes, Node{ID: "vm"}) }, errors.ErrCodeDuplicateNode},
		{"bad identifier", func(d *Diagram) { d.Root.Nodes[0].ID = "the internet" }, errors.ErrCodeInvalidInput},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := sample()
			tt.mutate(&d)
			if _, err := ToDOT(d); !errors.Is(err, tt.code) {
				t.Errorf("ToDOT() error = %v, want %s", err, tt.code)
			}
		})
	}
}

func TestValidate_NamesMissingNode(t *testing.T) {
	d := sample()
	d.Edges = []Edge{{From: "vm", To: "nat"}}
	err := d.Validate()
	if err == nil || !strings.Contains(err.Error(), `unknown node "nat"`) {
		t.Errorf("Validate() error = %v, want it to name %q", err, "nat")
	}
}

func TestChain(t *testing.T) {
	edges := Chain("a", "b", "c")
	if len(edges) != 2 || edges[0] != (Edge{From: "a", To: "b"}) || edges[1] != (Edge{From: "b", To: "c"}) {
		t.Errorf("Chain() = %+v", edges)
	}
	if Chain("a") != nil {
		t.Error("Chain() of one id should be empty")
	}
}

func TestNodeCount(t *testing.T) {
	if n := sample().NodeCount(); n != 3 {
		t.Errorf("NodeCount() = %d, want 3", n)
	}
}

func TestNormalizeViewBox(t *testing.T) {
	tests := []struct {
		name string
		svg  string
		want string
	}{
		{
			name: "with viewBox",
			svg:  `<svg viewBox="10 20 800 600" xmlns="http://www.w3.org/2000/svg">content</svg>`,
			want: `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 800.00 600.00" width="800" height="600">content</svg>`,
		},
		{
			name: "no viewBox",
			svg:  `<svg xmlns="http://www.w3.org/2000/svg">content</svg>`,
			want: `<svg xmlns="http://www.w3.org/2000/svg">content</svg>`,
		},
		{
			name: "zero dimensions",
			svg:  `<svg viewBox="0 0 0 0">content</svg>`,
			want: `<svg viewBox="0 0 0 0">content</svg>`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := normalizeViewBox([]byte(tt.svg))
			if string(got) != tt.want {
				t.Errorf("normalizeViewBox() = %q, want %q", string(got), tt.want)
			}
		})
	}
}

func TestRenderSVG(t *testing.T) {
	dot, err := ToDOT(sample())
	if err != nil {
		t.Fatalf("ToDOT() error: %v", err)
	}
	svg, err := RenderSVG(context.Background(), dot)
	if err != nil {
		t.Fatalf("RenderSVG() error: %v", err)
	}
	if !strings.Contains(string(svg), "<svg") {
		t.Error("RenderSVG() output missing <svg> tag")
	}
}

func TestRenderSVG_InvalidDOT(t *testing.T) {
	if _, err := RenderSVG(context.Background(), `not valid DOT {{{`); err == nil {
		t.Error("RenderSVG() should return error for invalid DOT")
	}
}

func TestQuote(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"plain", `"plain"`},
		{"two\nlines", `"two\nlines"`},
		{`say "hi"`, `"say \"hi\""`},
		{"👨‍💻 Development", "\"👨‍💻 Development\""},
	}
	for _, tt := range tests {
		if got := quote(tt.in); got != tt.want {
			t.Errorf("quote(%q) = %s, want %s", tt.in, got, tt.want)
		}
	}
}
