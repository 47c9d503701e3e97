package present

import (
	_ "embed"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/matzehuels/archviz/pkg/errors"
	"github.com/matzehuels/archviz/pkg/figure"
)

// Placeholder marks where the figure script is spliced in.
const Placeholder = "// DIAGRAM_DATA_PLACEHOLDER"

// DefaultOutput is the file name written when no output path is given.
const DefaultOutput = "architecture-presentation.html"

//go:embed templates/presentation.html
var defaultTemplate string

// DefaultTemplate returns the built-in presentation page.
func DefaultTemplate() string { return defaultTemplate }

// LoadTemplate reads a template from path, or returns the built-in page when
// path is empty.
func LoadTemplate(path string) (string, error) {
	if path == "" {
		return defaultTemplate, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", errors.Wrap(errors.ErrCodeNotFound, err, "read template %s", path)
	}
	return string(data), nil
}

// Render splices the embed script for fig into tmpl at every placeholder.
// A template without a placeholder fails with MISSING_PLACEHOLDER.
func Render(tmpl string, fig figure.Figure, opts figure.EmbedOptions) (string, error) {
	if !strings.Contains(tmpl, Placeholder) {
		return "", errors.New(errors.ErrCodeMissingPlaceholder, "template has no %q marker", Placeholder)
	}
	if opts.ContainerID == "" {
		opts.ContainerID = figure.DefaultContainerID
	}
	script, err := figure.Embed(fig, opts)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	rest := tmpl
	for {
		i := strings.Index(rest, Placeholder)
		if i < 0 {
			b.WriteString(rest)
			break
		}
		b.WriteString(rest[:i])
		b.WriteString(indentLines(script, leadingSpace(rest[:i])))
		rest = rest[i+len(Placeholder):]
	}
	return b.String(), nil
}

// leadingSpace returns the whitespace between the last newline of s and its end.
func leadingSpace(s string) string {
	line := s[strings.LastIndexByte(s, '\n')+1:]
	if strings.TrimLeft(line, " \t") != "" {
		return ""
	}
	return line
}

// indentLines prefixes every line but the first with indent.
func indentLines(s, indent string) string {
	if indent == "" {
		return s
	}
	return strings.ReplaceAll(s, "\n", "\n"+indent)
}

// WriteFile writes the rendered page to path, creating parent directories.
// The page is a regenerable artifact, so the write is not atomic.
func WriteFile(path, html string) error {
	if err := errors.ValidateOutputPath(path); err != nil {
		return err
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create output dir: %w", err)
		}
	}
	if err := os.WriteFile(path, []byte(html), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
