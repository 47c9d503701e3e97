// Package pipeline turns the authored architecture into output files.
//
// A run has two stages:
//
//  1. Build: catalog to figure, diagram to DOT, or overview to document
//  2. Render: encode the built value into each requested format
//
// Graphviz layout and rsvg-convert rasterisation are slow, so rendered SVG,
// PNG and PDF artifacts are cached by a hash of their source (the figure
// JSON or the DOT text). The CLI is the only caller today; the package keeps
// all defaults so other front ends produce identical files.
//
// # Usage
//
//	runner := pipeline.NewRunner(cache, nil, logger)
//	result, err := runner.Execute(ctx, pipeline.Options{
//	    Kind:    pipeline.KindDiagram,
//	    Formats: []string{"svg", "png"},
//	})
//	if err != nil {
//	    return err
//	}
//	for _, name := range result.Names() {
//	    os.WriteFile(name, result.Artifacts[name], 0o644)
//	}
package pipeline

import (
	"io"
	"maps"
	"slices"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/archviz/pkg/cache"
	"github.com/matzehuels/archviz/pkg/catalog"
	"github.com/matzehuels/archviz/pkg/errors"
)

// Kinds of run.
const (
	KindFigure   = "figure"
	KindDiagram  = "diagram"
	KindOverview = "overview"
)

// Output formats.
const (
	FormatJSON = "json"
	FormatHTML = "html"
	FormatSVG  = "svg"
	FormatPNG  = "png"
	FormatPDF  = "pdf"
	FormatDOT  = "dot"
	FormatTXT  = "txt"
)

// Defaults shared by every front end.
const (
	DefaultScale = 2.0

	// FigureBase and OverviewBase name the output files of the figure and
	// overview kinds; diagram files are named after the diagram.
	FigureBase       = "architecture-diagram"
	OverviewBase     = "architecture-overview"
	PresentationFile = "architecture-presentation.html"
)

// kindFormats lists the valid formats of each kind; the first is the default.
var kindFormats = map[string][]string{
	KindFigure:   {FormatHTML, FormatJSON, FormatSVG, FormatPNG, FormatPDF},
	KindDiagram:  {FormatSVG, FormatDOT, FormatPNG, FormatPDF},
	KindOverview: {FormatTXT},
}

// Kinds returns the supported kinds in a stable order.
func Kinds() []string { return slices.Sorted(maps.Keys(kindFormats)) }

// Formats returns the formats supported by kind.
func Formats(kind string) []string { return slices.Clone(kindFormats[kind]) }

// ValidateKind checks that kind is supported.
func ValidateKind(kind string) error {
	if _, ok := kindFormats[kind]; !ok {
		return errors.New(errors.ErrCodeInvalidKind, "invalid kind: %q (must be one of: %s)",
			kind, strings.Join(Kinds(), ", "))
	}
	return nil
}

// ValidateFormat checks that format is supported by kind.
func ValidateFormat(kind, format string) error {
	if !slices.Contains(kindFormats[kind], format) {
		return errors.New(errors.ErrCodeInvalidFormat, "invalid %s format: %q (must be one of: %s)",
			kind, format, strings.Join(kindFormats[kind], ", "))
	}
	return nil
}

// ValidateFormats checks every format against kind.
func ValidateFormats(kind string, formats []string) error {
	for _, f := range formats {
		if err := ValidateFormat(kind, f); err != nil {
			return err
		}
	}
	return nil
}

// Options configures a run.
type Options struct {
	Kind    string   `json:"kind"`
	Diagram string   `json:"diagram,omitempty"` // empty renders every diagram
	Formats []string `json:"formats,omitempty"`

	// Figure options
	Catalog     *catalog.Catalog `json:"-"` // nil uses the built-in architecture catalog
	Title       string           `json:"title,omitempty"`
	Width       int              `json:"width,omitempty"`
	Height      int              `json:"height,omitempty"`
	ContainerID string           `json:"container_id,omitempty"`
	Template    string           `json:"-"` // HTML template text; empty uses the built-in page
	Scale       float64          `json:"scale,omitempty"`

	Refresh bool          `json:"refresh,omitempty"` // bypass cache reads
	TTL     time.Duration `json:"-"`

	Logger *log.Logger `json:"-"`

	validated bool
}

// ValidateAndSetDefaults checks the options and fills in defaults. It is
// idempotent.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	if o.Kind == "" {
		o.Kind = KindFigure
	}
	if err := ValidateKind(o.Kind); err != nil {
		return err
	}
	if len(o.Formats) == 0 {
		o.Formats = []string{kindFormats[o.Kind][0]}
	}
	o.Formats = dedupe(o.Formats)
	if err := ValidateFormats(o.Kind, o.Formats); err != nil {
		return err
	}
	if o.Diagram != "" && o.Kind != KindDiagram {
		return errors.New(errors.ErrCodeInvalidInput, "diagram name only applies to kind %q", KindDiagram)
	}
	if o.Catalog != nil && o.Kind != KindFigure {
		return errors.New(errors.ErrCodeInvalidInput, "a custom catalog only applies to kind %q", KindFigure)
	}
	if o.Width < 0 || o.Height < 0 {
		return errors.New(errors.ErrCodeInvalidInput, "width and height must not be negative")
	}
	if o.Scale <= 0 {
		o.Scale = DefaultScale
	}
	if o.TTL == 0 {
		o.TTL = cache.DefaultTTL
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	o.validated = true
	return nil
}

// ArtifactKeyOpts returns cache key options for one artifact.
func (o *Options) ArtifactKeyOpts(name, format string) cache.ArtifactKeyOpts {
	return cache.ArtifactKeyOpts{
		Kind:   o.Kind,
		Name:   name,
		Format: format,
		Width:  o.Width,
		Height: o.Height,
		Scale:  o.Scale,
	}
}

func dedupe(in []string) []string {
	out := make([]string, 0, len(in))
	for _, s := range in {
		s = strings.ToLower(strings.TrimSpace(s))
		if s != "" && !slices.Contains(out, s) {
			out = append(out, s)
		}
	}
	return out
}

// Result holds the outputs of a run.
type Result struct {
	// Artifacts maps output file names to contents.
	Artifacts map[string][]byte
	Stats     Stats
	CacheInfo CacheInfo
}

// Names returns the artifact file names in sorted order.
func (r *Result) Names() []string { return slices.Sorted(maps.Keys(r.Artifacts)) }

// Stats describes a run.
type Stats struct {
	Units      int // figures, diagrams or documents built
	NodeCount  int
	EdgeCount  int
	BuildTime  time.Duration
	RenderTime time.Duration
}

// CacheInfo counts artifact cache lookups.
type CacheInfo struct {
	Hits   int
	Misses int
}

// AllHit reports whether every cacheable artifact came from the cache.
func (c CacheInfo) AllHit() bool { return c.Hits > 0 && c.Misses == 0 }
