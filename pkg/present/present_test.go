package present

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/matzehuels/archviz/pkg/catalog"
	"github.com/matzehuels/archviz/pkg/errors"
	"github.com/matzehuels/archviz/pkg/figure"
)

func testFigure(t *testing.T) figure.Figure {
	t.Helper()
	c, err := catalog.New(catalog.Spec{
		Title: "Test",
		Nodes: []catalog.Node{
			{ID: "a", Label: "A", X: 10, Y: 90, Group: catalog.GroupDev},
			{ID: "b", Label: "B", X: 90, Y: 10, Group: catalog.GroupProd},
		},
		Edges:  []catalog.Edge{{From: "a", To: "b"}},
		Colors: catalog.DefaultColors(),
	})
	if err != nil {
		t.Fatalf("catalog.New() error: %v", err)
	}
	fig, err := figure.Build(c)
	if err != nil {
		t.Fatalf("figure.Build() error: %v", err)
	}
	return fig
}

func TestRender_Splice(t *testing.T) {
	tmpl := "<script>\n    init();\n    " + Placeholder + "\n</script>\n"

	out, err := Render(tmpl, testFigure(t), figure.EmbedOptions{})
	if err != nil {
		t.Fatalf("Render() error: %v", err)
	}

	if strings.Contains(out, Placeholder) {
		t.Error("placeholder should be replaced")
	}
	for _, want := range []string{
		"    init();\n    const diagramData = {",
		"\n    Plotly.newPlot('architecture-diagram', diagramData.data, diagramData.layout, diagramData.config);\n",
		"\n    window.architectureDiagramData = diagramData;\n</script>\n",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("Render() missing %q in:\n%s", want, out)
		}
	}
}

func TestRender_AllPlaceholders(t *testing.T) {
	tmpl := Placeholder + "\n" + Placeholder
	out, err := Render(tmpl, testFigure(t), figure.EmbedOptions{ContainerID: "plot"})
	if err != nil {
		t.Fatalf("Render() error: %v", err)
	}
	if n := strings.Count(out, "Plotly.newPlot('plot'"); n != 2 {
		t.Errorf("newPlot count = %d, want 2", n)
	}
}

func TestRender_MissingPlaceholder(t *testing.T) {
	_, err := Render("<html></html>", testFigure(t), figure.EmbedOptions{})
	if !errors.Is(err, errors.ErrCodeMissingPlaceholder) {
		t.Errorf("Render() error = %v, want MISSING_PLACEHOLDER", err)
	}
}

func TestRender_InvalidOptions(t *testing.T) {
	_, err := Render(Placeholder, testFigure(t), figure.EmbedOptions{ContainerID: "bad id'"})
	if !errors.Is(err, errors.ErrCodeInvalidInput) {
		t.Errorf("Render() error = %v, want INVALID_INPUT", err)
	}
}

func TestRender_Deterministic(t *testing.T) {
	fig := testFigure(t)
	a, _ := Render(DefaultTemplate(), fig, figure.EmbedOptions{})
	b, _ := Render(DefaultTemplate(), fig, figure.EmbedOptions{})
	if a != b {
		t.Error("Render() output changed between calls")
	}
}

func TestDefaultTemplate(t *testing.T) {
	tmpl := DefaultTemplate()
	for _, want := range []string{
		Placeholder,
		`id="architecture-diagram"`,
		"cdn.plot.ly",
		"window.architectureDiagramData",
	} {
		if !strings.Contains(tmpl, want) {
			t.Errorf("DefaultTemplate() missing %q", want)
		}
	}
}

func TestLoadTemplate(t *testing.T) {
	got, err := LoadTemplate("")
	if err != nil || got != DefaultTemplate() {
		t.Errorf("LoadTemplate(\"\") = %d bytes, %v", len(got), err)
	}

	path := filepath.Join(t.TempDir(), "custom.html")
	if err := os.WriteFile(path, []byte("<p>"+Placeholder+"</p>"), 0o644); err != nil {
		t.Fatal(err)
	}
	got, err = LoadTemplate(path)
	if err != nil || !strings.Contains(got, Placeholder) {
		t.Errorf("LoadTemplate() = %q, %v", got, err)
	}

	if _, err := LoadTemplate(filepath.Join(t.TempDir(), "missing.html")); !errors.Is(err, errors.ErrCodeNotFound) {
		t.Errorf("LoadTemplate(missing) error = %v, want NOT_FOUND", err)
	}
}

func TestWriteFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out", "page.html")
	if err := WriteFile(path, "<html></html>"); err != nil {
		t.Fatalf("WriteFile() error: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil || string(data) != "<html></html>" {
		t.Errorf("ReadFile() = %q, %v", data, err)
	}

	if err := WriteFile(t.TempDir()+"/", "x"); !errors.Is(err, errors.ErrCodeInvalidPath) {
		t.Errorf("WriteFile(dir) error = %v, want INVALID_PATH", err)
	}
}
