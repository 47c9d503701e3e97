package io

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/matzehuels/archviz/pkg/catalog"
	"github.com/matzehuels/archviz/pkg/errors"
)

type document struct {
	Title  string            `json:"title,omitempty"`
	Colors map[string]string `json:"colors,omitempty"`
	Nodes  []node            `json:"nodes"`
	Edges  []edge            `json:"edges"`
	Panels []panel           `json:"panels,omitempty"`
}

type node struct {
	ID    string   `json:"id"`
	Label string   `json:"label,omitempty"`
	X     *float64 `json:"x"`
	Y     *float64 `json:"y"`
	Group string   `json:"group"`
	Hover string   `json:"hover,omitempty"`
}

type edge struct {
	From  string `json:"from"`
	To    string `json:"to"`
	Label string `json:"label,omitempty"`
}

type panel struct {
	X0    float64 `json:"x0"`
	Y0    float64 `json:"y0"`
	X1    float64 `json:"x1"`
	Y1    float64 `json:"y1"`
	Fill  string  `json:"fill"`
	Title string  `json:"title"`
}

// WriteJSON encodes c as indented JSON. The output re-imports with
// [ReadJSON] to an equal catalog. Colours are written for every group with
// an entry (encoding/json sorts the keys).
func WriteJSON(w io.Writer, c *catalog.Catalog) error {
	out := document{
		Title:  c.Title(),
		Colors: make(map[string]string),
	}
	for g, color := range c.Colors() {
		out.Colors[string(g)] = color
	}
	for _, n := range c.Nodes() {
		x, y := n.X, n.Y
		out.Nodes = append(out.Nodes, node{ID: n.ID, Label: n.Label, X: &x, Y: &y, Group: string(n.Group), Hover: n.Hover})
	}
	for _, e := range c.Edges() {
		out.Edges = append(out.Edges, edge(e))
	}
	for _, p := range c.Panels() {
		out.Panels = append(out.Panels, panel(p))
	}
	if out.Nodes == nil {
		out.Nodes = []node{}
	}
	if out.Edges == nil {
		out.Edges = []edge{}
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}

// ExportJSON writes c to a JSON file at path, creating parent directories.
func ExportJSON(c *catalog.Catalog, path string) error {
	if err := errors.ValidateOutputPath(path); err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create directory: %w", err)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := WriteJSON(f, c); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
