// Package cluster renders clustered node-link architecture diagrams with Graphviz.
//
// # Overview
//
// A [Diagram] is a tree of titled [Cluster] boxes holding [Node] values,
// plus labelled [Edge] connections that may cross cluster boundaries. Unlike
// the interactive figure, positions are not authored: Graphviz computes the
// layout from the DOT source.
//
//	Diagram → ToDOT() → DOT → RenderSVG() → SVG → render.ToPNG/ToPDF
//
// # Node kinds
//
// Each node carries a [Kind] (compute, vpc, iam, ...) that selects its
// shape and fill colour, standing in for the provider icons a diagramming
// library would draw.
//
// # Determinism
//
// [ToDOT] sorts attribute keys and numbers clusters in authored order, so
// the same diagram always produces the same DOT text. That text is also the
// cache key for rendered artifacts.
//
// # Dependencies
//
// This package uses [github.com/goccy/go-graphviz] for in-process SVG
// rendering. PDF and PNG conversion requires librsvg (rsvg-convert).
package cluster
