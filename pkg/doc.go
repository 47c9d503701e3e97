// Package pkg provides the libraries behind archviz, which renders the GCP
// Terraform architecture (CI/CD, shared Workload Identity Federation, one VPC
// per environment) as diagrams.
//
// # Overview
//
// The pkg directory is organized into four areas:
//
//  1. Data: [catalog] (nodes, edges, panels, colour groups), [architecture]
//     (the authored catalog, diagrams and overview) and [io] (JSON catalogs)
//  2. Figures: [figure] assembles a catalog into a plotly.js figure;
//     [present] embeds it in an HTML page
//  3. Rendering: [render/cluster] (Graphviz), [render/svg] (static figure)
//     and [render/textdiagram] (ASCII overview)
//  4. Orchestration: [pipeline], with [cache] and [observability]
//
// # Data Flow
//
//	architecture.Presentation()      architecture.Diagrams()    architecture.Overview()
//	         |                                |                          |
//	   figure.Build                     cluster.ToDOT            textdiagram.Render
//	         |                                |                          |
//	 JSON / HTML / SVG / PNG / PDF     DOT / SVG / PNG / PDF             TXT
//
// # Quick Start
//
//	fig, err := figure.Build(architecture.Presentation())
//	if err != nil {
//	    return err
//	}
//	html, err := present.Render(present.DefaultTemplate(), fig, figure.EmbedOptions{})
//
// Errors carry machine-readable codes from [errors]; see errors.Is.
//
// [catalog]: github.com/matzehuels/archviz/pkg/catalog
// [architecture]: github.com/matzehuels/archviz/pkg/architecture
// [io]: github.com/matzehuels/archviz/pkg/io
// [figure]: github.com/matzehuels/archviz/pkg/figure
// [present]: github.com/matzehuels/archviz/pkg/present
// [render/cluster]: github.com/matzehuels/archviz/pkg/render/cluster
// [render/svg]: github.com/matzehuels/archviz/pkg/render/svg
// [render/textdiagram]: github.com/matzehuels/archviz/pkg/render/textdiagram
// [pipeline]: github.com/matzehuels/archviz/pkg/pipeline
// [cache]: github.com/matzehuels/archviz/pkg/cache
// [observability]: github.com/matzehuels/archviz/pkg/observability
// [errors]: github.com/matzehuels/archviz/pkg/errors
package pkg
