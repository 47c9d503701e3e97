// Package textdiagram renders plain ASCII architecture overviews.
//
// A [Document] is a titled tree followed by free-form sections. The tree is
// drawn with lipgloss/tree using ASCII-only connectors so the output survives
// any terminal or console encoding:
//
//	Project: example
//	|-- Shared
//	|   `-- pool
//	|
//	`-- Production
//	    `-- vm
//
// Sections are either a flow (steps joined with " -> ") or a bullet list.
package textdiagram
