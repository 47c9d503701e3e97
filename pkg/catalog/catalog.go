package catalog

import (
	"maps"
	"slices"

	"github.com/matzehuels/archviz/pkg/errors"
)

const (
	// MinCoord and MaxCoord bound the visible coordinate space on both axes.
	MinCoord = 0.0
	MaxCoord = 100.0
)

// Node is a labelled, positioned, grouped point of the figure.
type Node struct {
	ID    string  // Unique key referenced by edges
	Label string  // Text drawn below the marker
	X, Y  float64 // Position in the 0–100 space
	Group Group   // Colour category
	Hover string  // Optional rich-text tooltip (plotly HTML subset)
}

// Edge is a directed, optionally labelled connection between two nodes.
type Edge struct {
	From  string
	To    string
	Label string
}

// Panel is a titled background rectangle grouping related nodes visually.
type Panel struct {
	X0, Y0 float64
	X1, Y1 float64
	Fill   string
	Title  string
}

// Spec is the literal input to [New].
type Spec struct {
	Title  string
	Nodes  []Node
	Edges  []Edge
	Panels []Panel
	Colors ColorTable
}

// Catalog is a validated, immutable node/edge/panel set.
type Catalog struct {
	title  string
	nodes  []Node
	edges  []Edge
	panels []Panel
	colors ColorTable
	index  map[string]int
}

// New validates s and returns an immutable catalog.
// Only referential integrity is checked: unique node IDs, resolvable edge
// endpoints and a colour for every node group. IDs, labels, positions and
// colour strings are otherwise opaque. The first violation aborts
// construction; no partial catalog is returned.
func New(s Spec) (*Catalog, error) {
	c := &Catalog{
		title:  s.Title,
		nodes:  slices.Clone(s.Nodes),
		edges:  slices.Clone(s.Edges),
		panels: slices.Clone(s.Panels),
		colors: maps.Clone(s.Colors),
		index:  make(map[string]int, len(s.Nodes)),
	}
	if c.colors == nil {
		c.colors = ColorTable{}
	}

	for i, n := range c.nodes {
		if _, dup := c.index[n.ID]; dup {
			return nil, errors.New(errors.ErrCodeDuplicateNode, "duplicate node %q", n.ID)
		}
		c.index[n.ID] = i
	}

	for _, e := range c.edges {
		for _, id := range []string{e.From, e.To} {
			if _, ok := c.index[id]; !ok {
				return nil, errors.UnknownNode(id)
			}
		}
	}

	used := make([]Group, 0, len(c.nodes))
	for _, n := range c.nodes {
		used = append(used, n.Group)
	}
	if err := c.colors.Validate(used); err != nil {
		return nil, err
	}

	return c, nil
}

// MustNew is like [New] but panics on error. It is meant for catalogs
// authored as package-level literals.
func MustNew(s Spec) *Catalog {
	c, err := New(s)
	if err != nil {
		panic(err)
	}
	return c
}

// Title returns the figure title.
func (c *Catalog) Title() string { return c.title }

// Nodes returns a copy of the nodes in authored order.
func (c *Catalog) Nodes() []Node { return slices.Clone(c.nodes) }

// Edges returns a copy of the edges in authored order.
func (c *Catalog) Edges() []Edge { return slices.Clone(c.edges) }

// Panels returns a copy of the panels in authored order.
func (c *Catalog) Panels() []Panel { return slices.Clone(c.panels) }

// Colors returns a copy of the colour table.
func (c *Catalog) Colors() ColorTable { return maps.Clone(c.colors) }

// NodeCount returns the number of nodes.
func (c *Catalog) NodeCount() int { return len(c.nodes) }

// EdgeCount returns the number of edges.
func (c *Catalog) EdgeCount() int { return len(c.edges) }

// Node looks up a node by identifier.
func (c *Catalog) Node(id string) (Node, bool) {
	i, ok := c.index[id]
	if !ok {
		return Node{}, false
	}
	return c.nodes[i], true
}

// OutOfRange returns the IDs of nodes positioned outside the visible
// 0–100 space, in authored order.
func (c *Catalog) OutOfRange() []string {
	var ids []string
	for _, n := range c.nodes {
		if !inRange(n.X) || !inRange(n.Y) {
			ids = append(ids, n.ID)
		}
	}
	return ids
}

func inRange(v float64) bool {
	return v >= MinCoord && v <= MaxCoord
}

// Index maps node identifiers to nodes. Later duplicates replace earlier ones.
func Index(nodes []Node) map[string]Node {
	m := make(map[string]Node, len(nodes))
	for _, n := range nodes {
		m[n.ID] = n
	}
	return m
}
