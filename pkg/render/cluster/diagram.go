package cluster

import (
	"github.com/matzehuels/archviz/pkg/errors"
)

// Kind selects the visual treatment of a node.
type Kind string

const (
	KindGeneric   Kind = ""
	KindRepo      Kind = "repo"
	KindPipeline  Kind = "pipeline"
	KindIAM       Kind = "iam"
	KindVPC       Kind = "vpc"
	KindRouter    Kind = "router"
	KindNAT       Kind = "nat"
	KindFirewall  Kind = "firewall"
	KindCompute   Kind = "compute"
	KindStorage   Kind = "storage"
	KindInternet  Kind = "internet"
	KindUsers     Kind = "users"
	KindTerraform Kind = "terraform"
	KindSecurity  Kind = "security"
)

// Direction is the Graphviz rank direction.
type Direction string

const (
	TopBottom Direction = "TB"
	LeftRight Direction = "LR"
)

// Diagram is a titled, clustered node-link diagram.
type Diagram struct {
	Name      string // Output file base name
	Title     string
	Direction Direction
	GraphAttr map[string]string
	NodeAttr  map[string]string
	EdgeAttr  map[string]string
	Root      Cluster // Top-level content; Root.Label is ignored
	Edges     []Edge
}

// Cluster is a titled group of nodes and nested clusters.
type Cluster struct {
	Label    string
	Attr     map[string]string
	Nodes    []Node
	Clusters []Cluster
}

// Node is a single diagram element.
type Node struct {
	ID    string
	Label string
	Kind  Kind
}

// Edge connects two nodes. Label, Color and Style are optional.
type Edge struct {
	From  string
	To    string
	Label string
	Color string
	Style string // Graphviz edge style: "dashed", "bold", ...
}

// Chain returns edges linking ids in sequence: ids[0]→ids[1]→...
func Chain(ids ...string) []Edge {
	if len(ids) < 2 {
		return nil
	}
	edges := make([]Edge, 0, len(ids)-1)
	for i := 1; i < len(ids); i++ {
		edges = append(edges, Edge{From: ids[i-1], To: ids[i]})
	}
	return edges
}

// Walk visits every node depth-first in authored order.
func (c Cluster) Walk(fn func(Node)) {
	for _, n := range c.Nodes {
		fn(n)
	}
	for _, sub := range c.Clusters {
		sub.Walk(fn)
	}
}

// NodeCount returns the number of nodes in the diagram.
func (d Diagram) NodeCount() int {
	n := 0
	d.Root.Walk(func(Node) { n++ })
	return n
}

// Validate checks node identifiers and edge endpoints.
func (d Diagram) Validate() error {
	seen := make(map[string]bool)
	var err error
	d.Root.Walk(func(n Node) {
		if err != nil {
			return
		}
		if e := errors.ValidateIdentifier(n.ID); e != nil {
			err = e
			return
		}
		if seen[n.ID] {
			err = errors.New(errors.ErrCodeDuplicateNode, "diagram %q: duplicate node %q", d.Name, n.ID)
			return
		}
		seen[n.ID] = true
	})
	if err != nil {
		return err
	}

	for _, e := range d.Edges {
		for _, id := range []string{e.From, e.To} {
			if !seen[id] {
				return errors.New(errors.ErrCodeUnknownNode, "diagram %q: unknown node %q", d.Name, id)
			}
		}
	}
	return nil
}
