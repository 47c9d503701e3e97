package figure

import (
	"encoding/json"
	"math"
	"strings"
	"testing"

	"github.com/google/uuid"

	"github.com/matzehuels/archviz/pkg/errors"
)

func TestSampleMarshal(t *testing.T) {
	tests := []struct {
		name string
		s    Sample
		want string
	}{
		{"integer", Value(10), "10"},
		{"fraction", Value(95.5), "95.5"},
		{"negative", Value(-3.25), "-3.25"},
		{"gap", Gap, "null"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := json.Marshal(tt.s)
			if err != nil {
				t.Fatalf("Marshal() error: %v", err)
			}
			if string(got) != tt.want {
				t.Errorf("Marshal() = %s, want %s", got, tt.want)
			}
		})
	}

	if _, err := json.Marshal(Value(math.NaN())); err == nil {
		t.Error("Marshal(NaN) should fail")
	}
}

func TestMarshalShape(t *testing.T) {
	fig, err := Build(testCatalog(t))
	if err != nil {
		t.Fatalf("Build() error: %v", err)
	}
	data, err := Marshal(fig)
	if err != nil {
		t.Fatalf("Marshal() error: %v", err)
	}

	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		t.Fatalf("output is not JSON: %v", err)
	}
	for _, key := range []string{"data", "layout", "config"} {
		if _, ok := raw[key]; !ok {
			t.Errorf("missing top-level key %q", key)
		}
	}
	layout := raw["layout"].(map[string]any)
	xaxis := layout["xaxis"].(map[string]any)
	if xaxis["visible"] != false || xaxis["fixedrange"] != true {
		t.Errorf("xaxis = %v", xaxis)
	}
}

func TestEmbed(t *testing.T) {
	fig, err := Build(testCatalog(t))
	if err != nil {
		t.Fatalf("Build() error: %v", err)
	}

	script, err := Embed(fig, EmbedOptions{ContainerID: DefaultContainerID})
	if err != nil {
		t.Fatalf("Embed() error: %v", err)
	}

	lines := strings.Split(script, "\n")
	if len(lines) != 3 {
		t.Fatalf("Embed() produced %d lines, want 3:\n%s", len(lines), script)
	}
	if !strings.HasPrefix(lines[0], "const diagramData = {") || !strings.HasSuffix(lines[0], "};") {
		t.Errorf("line 1 = %.60q...", lines[0])
	}
	payload := strings.TrimSuffix(strings.TrimPrefix(lines[0], "const diagramData = "), ";")
	if !json.Valid([]byte(payload)) {
		t.Error("embedded payload is not valid JSON")
	}
	if want := "Plotly.newPlot('architecture-diagram', diagramData.data, diagramData.layout, diagramData.config);"; lines[1] != want {
		t.Errorf("line 2 = %q, want %q", lines[1], want)
	}
	if lines[2] != "window.architectureDiagramData = diagramData;" {
		t.Errorf("line 3 = %q", lines[2])
	}
}

func TestEmbed_EscapesMarkup(t *testing.T) {
	fig := Assemble(Trace{}, Trace{HoverText: []string{"</script><b>x</b>"}}, nil, nil, DefaultLayout())
	script, err := Embed(fig, EmbedOptions{ContainerID: "plot"})
	if err != nil {
		t.Fatalf("Embed() error: %v", err)
	}
	if strings.Contains(script, "</script>") {
		t.Error("Embed() should escape markup inside the JSON payload")
	}
}

func TestEmbed_GeneratedContainerID(t *testing.T) {
	script, err := Embed(Figure{}, EmbedOptions{})
	if err != nil {
		t.Fatalf("Embed() error: %v", err)
	}
	start := strings.Index(script, "Plotly.newPlot('") + len("Plotly.newPlot('")
	end := strings.Index(script[start:], "'")
	if _, err := uuid.Parse(script[start : start+end]); err != nil {
		t.Errorf("generated container id %q is not a UUID: %v", script[start:start+end], err)
	}
}

func TestEmbed_InvalidOptions(t *testing.T) {
	tests := []struct {
		name string
		opts EmbedOptions
	}{
		{"quote in container", EmbedOptions{ContainerID: "a'b"}},
		{"space in container", EmbedOptions{ContainerID: "a b"}},
		{"bad global", EmbedOptions{ContainerID: "ok", Global: "1bad"}},
		{"dotted global", EmbedOptions{ContainerID: "ok", Global: "a.b"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Embed(Figure{}, tt.opts)
			if !errors.Is(err, errors.ErrCodeInvalidInput) {
				t.Errorf("Embed() error = %v, want INVALID_INPUT", err)
			}
		})
	}
}
