// Package catalog defines the hand-authored data behind an architecture figure.
//
// # Overview
//
// A [Catalog] is the fixed set of nodes, edges and panels supplied for one
// figure, together with the [ColorTable] that maps each node's [Group] to a
// display colour. Catalogs are immutable: [New] copies its input, checks the
// referential invariants once, and every accessor hands back a copy.
//
// # Invariants
//
// [New] rejects a catalog when:
//
//   - a node identifier is empty, malformed, or used twice (DUPLICATE_NODE)
//   - an edge names a node that is not in the catalog (UNKNOWN_NODE_REFERENCE)
//   - a node's group is not one of the known [Group] values, or has no colour
//     in the table (UNKNOWN_GROUP)
//
// Panels are decorative. They never reference nodes, so overlap between a
// panel and a node position is an authoring concern rather than an error.
//
// # Coordinates
//
// Positions live in a fixed 0–100 space on both axes. Values outside that
// range are accepted and render outside the visible canvas; [Catalog.OutOfRange]
// lists the affected nodes so callers can warn about them.
//
// # Usage
//
//	c, err := catalog.New(catalog.Spec{
//	    Title: "Example",
//	    Nodes: []catalog.Node{
//	        {ID: "a", Label: "A", X: 10, Y: 90, Group: catalog.GroupDev},
//	        {ID: "b", Label: "B", X: 90, Y: 10, Group: catalog.GroupProd},
//	    },
//	    Edges:  []catalog.Edge{{From: "a", To: "b"}},
//	    Colors: catalog.DefaultColors(),
//	})
package catalog
