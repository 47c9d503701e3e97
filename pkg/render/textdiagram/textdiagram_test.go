package textdiagram

import (
	"strings"
	"testing"
)

func sampleDoc() Document {
	return Document{
		Title: "Overview",
		Root: Item{
			Label: "Project: demo",
			Children: []Item{
				{Label: "Shared", Children: []Item{{Label: "pool"}, {Label: "provider"}}},
				{Label: "Notes"},
				{Label: "Production", Children: []Item{{Label: "vpc"}, {Label: "vm"}}},
			},
		},
		Sections: []Section{
			{Title: "Flow", Kind: Flow, Lines: []string{"push", "auth", "deploy"}},
			{Title: "Security", Lines: []string{"isolated VPCs", "private SSH"}},
		},
	}
}

func TestRenderTree(t *testing.T) {
	want := strings.Join([]string{
		"Project: demo",
		"|-- Shared",
		"|   |-- pool",
		"|   `-- provider",
		"|-- Notes",
		"`-- Production",
		"    |-- vpc",
		"    `-- vm",
	}, "\n")

	if got := RenderTree(sampleDoc().Root, false); got != want {
		t.Errorf("RenderTree() =\n%s\nwant:\n%s", got, want)
	}
}

func TestRenderTree_Spaced(t *testing.T) {
	got := RenderTree(sampleDoc().Root, true)
	lines := strings.Split(got, "\n")

	want := []string{
		"Project: demo",
		"|-- Shared",
		"|   |-- pool",
		"|   `-- provider",
		"|",
		"|-- Notes",
		"`-- Production",
		"    |-- vpc",
		"    `-- vm",
	}
	if len(lines) != len(want) {
		t.Fatalf("RenderTree() =\n%s", got)
	}
	for i := range want {
		if lines[i] != want[i] {
			t.Errorf("line %d = %q, want %q", i, lines[i], want[i])
		}
	}
}

func TestRender_Sections(t *testing.T) {
	out := Render(sampleDoc())

	for _, want := range []string{
		"Overview\n\nProject: demo\n",
		"Flow:\npush -> auth -> deploy",
		"Security:\n- isolated VPCs\n- private SSH\n",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("Render() missing %q in:\n%s", want, out)
		}
	}
	if !strings.HasSuffix(out, "\n") {
		t.Error("Render() should end with a newline")
	}
}

func TestRender_ASCIIOnly(t *testing.T) {
	out := Render(sampleDoc())
	for i, r := range out {
		if r > 127 {
			t.Fatalf("non-ASCII rune %q at byte %d", r, i)
		}
	}
}

func TestRender_Empty(t *testing.T) {
	if got := Render(Document{}); got != "\n" {
		t.Errorf("Render(empty) = %q, want a single newline", got)
	}
}
