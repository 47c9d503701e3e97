package figure

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"regexp"

	"github.com/google/uuid"

	"github.com/matzehuels/archviz/pkg/errors"
)

// Marshal encodes fig as indented plotly JSON. The output depends only on
// fig, so rebuilding the same catalog yields identical bytes.
func Marshal(fig Figure) ([]byte, error) {
	var buf bytes.Buffer
	if err := WriteJSON(&buf, fig); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// WriteJSON writes fig as indented plotly JSON to w.
func WriteJSON(w io.Writer, fig Figure) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(fig); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}

// DefaultContainerID is the element id the presentation template provides.
const DefaultContainerID = "architecture-diagram"

// EmbedOptions configures the script produced by [Embed].
type EmbedOptions struct {
	// ContainerID is the id of the element the plot is drawn into. When
	// empty a random UUID is used, the way plotly's own HTML export does.
	ContainerID string

	// Global is the window property the figure data is stored under so the
	// page can re-plot it later (for example on tab switches).
	Global string
}

var jsIdentRe = regexp.MustCompile(`^[A-Za-z_$][A-Za-z0-9_$]*$`)
var containerIDRe = regexp.MustCompile(`^[A-Za-z0-9_:.-]+$`)

// Embed returns the script lines that instantiate fig in a page:
//
//	const diagramData = {...};
//	Plotly.newPlot('<id>', diagramData.data, diagramData.layout, diagramData.config);
//	window.architectureDiagramData = diagramData;
//
// The JSON is compact and HTML-escaped so it is safe inside a <script> tag.
func Embed(fig Figure, opts EmbedOptions) (string, error) {
	id := opts.ContainerID
	if id == "" {
		id = uuid.NewString()
	}
	if !containerIDRe.MatchString(id) {
		return "", errors.New(errors.ErrCodeInvalidInput, "invalid container id %q", id)
	}
	global := opts.Global
	if global == "" {
		global = "architectureDiagramData"
	}
	if !jsIdentRe.MatchString(global) {
		return "", errors.New(errors.ErrCodeInvalidInput, "invalid global name %q", global)
	}

	data, err := json.Marshal(fig)
	if err != nil {
		return "", fmt.Errorf("encode: %w", err)
	}

	var buf bytes.Buffer
	fmt.Fprintf(&buf, "const diagramData = %s;\n", data)
	fmt.Fprintf(&buf, "Plotly.newPlot('%s', diagramData.data, diagramData.layout, diagramData.config);\n", id)
	fmt.Fprintf(&buf, "window.%s = diagramData;", global)
	return buf.String(), nil
}
