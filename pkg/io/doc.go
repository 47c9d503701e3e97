// Package io provides JSON import and export for catalogs.
//
// # Overview
//
// The built-in GCP catalog is authored in Go, but the figure can be rendered
// from any catalog in this format. Exporting the built-in catalog gives a
// starting point to edit:
//
//	archviz catalog export -o catalog.json
//	archviz present --catalog catalog.json
//
// # JSON Format
//
//	{
//	  "title": "My Architecture",
//	  "colors": {"github": "#2d9cdb", "dev": "#27ae60"},
//	  "nodes": [
//	    {"id": "gh", "label": "GitHub", "x": 10, "y": 90, "group": "github"},
//	    {"id": "dev", "label": "Dev VPC", "x": 40, "y": 40, "group": "dev",
//	     "hover": "<b>Dev</b><br>10.10.0.0/16"}
//	  ],
//	  "edges": [{"from": "gh", "to": "dev"}],
//	  "panels": [
//	    {"x0": 30, "y0": 25, "x1": 55, "y1": 60, "fill": "#e9f7ef", "title": "Dev"}
//	  ]
//	}
//
// Node fields id, x, y and group are required; label defaults to the id.
// When "colors" is omitted the default group palette is used. Groups are
// the closed set github, wif, dev, staging, prod and meta.
//
// # Validation
//
// Decoded catalogs go through [catalog.New], so a file with duplicate node
// IDs, dangling edge endpoints or unknown groups is rejected with the same
// error codes as an authored catalog.
package io
