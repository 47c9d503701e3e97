// Package figure turns an architecture [catalog.Catalog] into an interactive
// plotly.js figure.
//
// # Overview
//
// The package is a single pure transformation. A catalog of positioned nodes,
// directed edges and decorative panels becomes a [Figure] holding:
//
//   - an edge layer: one "lines" scatter trace whose coordinates are
//     (source, target, gap) triples in edge order
//   - a node layer: one "markers+text" scatter trace with one marker, label
//     and hover text per node, in node order
//   - panel shapes: filled rectangles drawn on the "below" layer
//   - panel annotations: bold titles inset from each panel's top-left corner
//
// and a layout that pins both axes to 0–100, hides them, and fixes the canvas
// size so authored positions are never rescaled.
//
// # Layers
//
// Each layer has its own builder so it can be tested alone:
//
//	edges, err := figure.BuildEdgeLayer(nodes, edgeList)
//	markers, err := figure.BuildNodeLayer(nodes, colors)
//	shapes, notes := figure.BuildPanels(panels)
//	fig := figure.Assemble(edges, markers, shapes, notes, figure.DefaultLayout())
//
// [Build] runs all four steps against a catalog.
//
// # Z-order
//
// Panels are always below edges, and edges are always below nodes. Shapes
// carry layer="below" and traces are emitted edges-first, so input order
// never changes the stacking.
//
// # Serialization
//
// Figures marshal to the plotly.js JSON schema. Every collection is a slice
// and every object a struct, so [Marshal] is byte-for-byte deterministic for
// a given catalog. [Embed] wraps the compact JSON in the few lines of script
// needed to instantiate the plot against a container element.
//
// # Errors
//
// Two integrity errors abort construction, both from [errors]:
//
//   - UNKNOWN_NODE_REFERENCE: an edge endpoint is not in the node list
//   - UNKNOWN_GROUP: a node's group has no colour
//
// No partial figure is returned in either case.
//
// [errors]: github.com/matzehuels/archviz/pkg/errors
package figure
