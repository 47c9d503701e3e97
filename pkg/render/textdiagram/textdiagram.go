package textdiagram

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/tree"
)

// Connectors used for tree branches.
const (
	branch     = "|-- "
	lastBranch = "`-- "
	pipe       = "|   "
	space      = "    "
)

// Item is one entry of the overview tree.
type Item struct {
	Label    string
	Children []Item
}

// SectionKind selects how a section's lines are drawn.
type SectionKind int

const (
	// Bullets prefixes each line with "- ".
	Bullets SectionKind = iota
	// Flow joins all lines on one row with " -> ".
	Flow
)

// Section is a titled block printed after the tree.
type Section struct {
	Title string
	Kind  SectionKind
	Lines []string
}

// Document is a complete ASCII overview.
type Document struct {
	Title    string
	Root     Item
	Sections []Section
	// Spaced separates top-level branches that have children with a lone
	// "|" connector line.
	Spaced bool
}

// Render draws the document. The result ends with a newline and contains
// only the characters present in the labels plus ASCII connectors.
func Render(doc Document) string {
	var blocks []string
	if doc.Title != "" {
		blocks = append(blocks, doc.Title)
	}
	if doc.Root.Label != "" || len(doc.Root.Children) > 0 {
		blocks = append(blocks, RenderTree(doc.Root, doc.Spaced))
	}
	for _, s := range doc.Sections {
		blocks = append(blocks, renderSection(s))
	}
	return strings.Join(blocks, "\n\n") + "\n"
}

// RenderTree draws a single item tree without a trailing newline.
func RenderTree(root Item, spaced bool) string {
	out := strings.TrimRight(build(root).String(), "\n")
	if !spaced {
		return out
	}
	return spaceBranches(out, root)
}

func build(it Item) *tree.Tree {
	t := tree.Root(it.Label).
		Enumerator(enumerate).
		Indenter(indent).
		EnumeratorStyle(lipgloss.NewStyle()).
		ItemStyle(lipgloss.NewStyle())
	for _, c := range it.Children {
		if len(c.Children) == 0 {
			t.Child(c.Label)
			continue
		}
		t.Child(build(c))
	}
	return t
}

func enumerate(children tree.Children, index int) string {
	if index == children.Length()-1 {
		return lastBranch
	}
	return branch
}

func indent(children tree.Children, index int) string {
	if index == children.Length()-1 {
		return space
	}
	return pipe
}

// spaceBranches inserts a "|" line before every top-level branch that
// follows a branch with children.
func spaceBranches(rendered string, root Item) string {
	lines := strings.Split(rendered, "\n")
	out := make([]string, 0, len(lines)+len(root.Children))
	top := -1
	for i, line := range lines {
		if i > 0 || root.Label == "" {
			if strings.HasPrefix(line, branch) || strings.HasPrefix(line, lastBranch) {
				top++
				if top > 0 && len(root.Children[top-1].Children) > 0 {
					out = append(out, strings.TrimRight(pipe, " "))
				}
			}
		}
		out = append(out, line)
	}
	return strings.Join(out, "\n")
}

func renderSection(s Section) string {
	var b strings.Builder
	if s.Title != "" {
		b.WriteString(s.Title)
		b.WriteString(":\n")
	}
	switch s.Kind {
	case Flow:
		b.WriteString(strings.Join(s.Lines, " -> "))
	default:
		for i, l := range s.Lines {
			if i > 0 {
				b.WriteByte('\n')
			}
			b.WriteString("- ")
			b.WriteString(l)
		}
	}
	return b.String()
}
