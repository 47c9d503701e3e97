// Package architecture holds the authored content of archviz: the
// presentation catalog, the clustered Graphviz diagrams and the ASCII
// overview of the GCP Terraform layout.
//
// Everything here is data. Positions, colours and labels are hand-placed
// constants; no layout is computed. Each constructor returns a fresh value,
// so callers may modify the result without affecting other callers.
package architecture
