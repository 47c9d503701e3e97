package io

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/matzehuels/archviz/pkg/catalog"
	"github.com/matzehuels/archviz/pkg/errors"
)

// ReadJSON decodes a JSON catalog from r and validates it.
//
// Unknown fields are rejected so typos ("grup") do not silently fall back to
// zero values. ReadJSON does not close r.
func ReadJSON(r io.Reader) (*catalog.Catalog, error) {
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()

	var data document
	if err := dec.Decode(&data); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "decode catalog")
	}

	spec := catalog.Spec{
		Title:  data.Title,
		Nodes:  make([]catalog.Node, len(data.Nodes)),
		Edges:  make([]catalog.Edge, len(data.Edges)),
		Panels: make([]catalog.Panel, len(data.Panels)),
		Colors: catalog.DefaultColors(),
	}

	if data.Colors != nil {
		spec.Colors = make(catalog.ColorTable, len(data.Colors))
		for tag, color := range data.Colors {
			g, err := catalog.ParseGroup(tag)
			if err != nil {
				return nil, fmt.Errorf("colors: %w", err)
			}
			spec.Colors[g] = color
		}
	}

	for i, n := range data.Nodes {
		if n.X == nil || n.Y == nil {
			return nil, errors.New(errors.ErrCodeInvalidInput, "node %q: missing x or y", n.ID)
		}
		g, err := catalog.ParseGroup(n.Group)
		if err != nil {
			return nil, fmt.Errorf("node %q: %w", n.ID, err)
		}
		label := n.Label
		if label == "" {
			label = n.ID
		}
		spec.Nodes[i] = catalog.Node{ID: n.ID, Label: label, X: *n.X, Y: *n.Y, Group: g, Hover: n.Hover}
	}
	for i, e := range data.Edges {
		spec.Edges[i] = catalog.Edge{From: e.From, To: e.To, Label: e.Label}
	}
	for i, p := range data.Panels {
		spec.Panels[i] = catalog.Panel{X0: p.X0, Y0: p.Y0, X1: p.X1, Y1: p.Y1, Fill: p.Fill, Title: p.Title}
	}

	return catalog.New(spec)
}

// ImportJSON reads and validates the JSON catalog at path.
func ImportJSON(path string) (*catalog.Catalog, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrap(errors.ErrCodeNotFound, err, "catalog %s", path)
		}
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	c, err := ReadJSON(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return c, nil
}
