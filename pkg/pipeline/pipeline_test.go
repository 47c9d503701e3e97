package pipeline

import (
	"slices"
	"testing"

	"github.com/matzehuels/archviz/pkg/cache"
	"github.com/matzehuels/archviz/pkg/errors"
)

func TestValidateKind(t *testing.T) {
	tests := []struct {
		kind    string
		wantErr bool
	}{
		{"figure", false},
		{"diagram", false},
		{"overview", false},
		{"sankey", true},
		{"Figure", true},
		{"", true},
	}
	for _, tt := range tests {
		err := ValidateKind(tt.kind)
		if (err != nil) != tt.wantErr {
			t.Errorf("ValidateKind(%q) error = %v, wantErr %v", tt.kind, err, tt.wantErr)
		}
		if err != nil && !errors.Is(err, errors.ErrCodeInvalidKind) {
			t.Errorf("ValidateKind(%q) code = %s", tt.kind, errors.GetCode(err))
		}
	}
}

func TestValidateFormat(t *testing.T) {
	tests := []struct {
		kind, format string
		wantErr      bool
	}{
		{KindFigure, "json", false},
		{KindFigure, "html", false},
		{KindFigure, "svg", false},
		{KindFigure, "png", false},
		{KindFigure, "pdf", false},
		{KindFigure, "dot", true},
		{KindDiagram, "dot", false},
		{KindDiagram, "svg", false},
		{KindDiagram, "html", true},
		{KindOverview, "txt", false},
		{KindOverview, "svg", true},
		{KindFigure, "", true},
	}
	for _, tt := range tests {
		err := ValidateFormat(tt.kind, tt.format)
		if (err != nil) != tt.wantErr {
			t.Errorf("ValidateFormat(%q, %q) error = %v, wantErr %v", tt.kind, tt.format, err, tt.wantErr)
		}
	}
}

func TestValidateFormats(t *testing.T) {
	if err := ValidateFormats(KindDiagram, []string{"svg", "dot"}); err != nil {
		t.Errorf("valid formats should pass: %v", err)
	}
	if err := ValidateFormats(KindDiagram, []string{"svg", "json"}); !errors.Is(err, errors.ErrCodeInvalidFormat) {
		t.Errorf("invalid format error = %v, want INVALID_FORMAT", err)
	}
	if err := ValidateFormats(KindFigure, nil); err != nil {
		t.Errorf("empty formats should pass: %v", err)
	}
}

func TestValidateAndSetDefaults(t *testing.T) {
	var o Options
	if err := o.ValidateAndSetDefaults(); err != nil {
		t.Fatalf("ValidateAndSetDefaults() error: %v", err)
	}
	if o.Kind != KindFigure || !slices.Equal(o.Formats, []string{FormatHTML}) {
		t.Errorf("defaults = %s %v, want figure [html]", o.Kind, o.Formats)
	}
	if o.Scale != DefaultScale || o.TTL != cache.DefaultTTL || o.Logger == nil {
		t.Errorf("defaults not applied: %+v", o)
	}

	o.Kind = "bogus"
	if err := o.ValidateAndSetDefaults(); err != nil {
		t.Error("ValidateAndSetDefaults should be idempotent once validated")
	}
}

func TestValidateAndSetDefaults_PerKind(t *testing.T) {
	tests := []struct {
		kind string
		want string
	}{
		{KindFigure, FormatHTML},
		{KindDiagram, FormatSVG},
		{KindOverview, FormatTXT},
	}
	for _, tt := range tests {
		o := Options{Kind: tt.kind}
		if err := o.ValidateAndSetDefaults(); err != nil {
			t.Fatalf("%s: %v", tt.kind, err)
		}
		if !slices.Equal(o.Formats, []string{tt.want}) {
			t.Errorf("%s default formats = %v, want [%s]", tt.kind, o.Formats, tt.want)
		}
	}
}

func TestValidateAndSetDefaults_Errors(t *testing.T) {
	tests := []struct {
		name string
		opts Options
		code errors.Code
	}{
		{"bad kind", Options{Kind: "sankey"}, errors.ErrCodeInvalidKind},
		{"bad format", Options{Kind: KindOverview, Formats: []string{"svg"}}, errors.ErrCodeInvalidFormat},
		{"diagram on figure", Options{Kind: KindFigure, Diagram: "network"}, errors.ErrCodeInvalidInput},
		{"negative size", Options{Width: -1}, errors.ErrCodeInvalidInput},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.opts.ValidateAndSetDefaults(); !errors.Is(err, tt.code) {
				t.Errorf("error = %v, want %s", err, tt.code)
			}
		})
	}
}

func TestValidateAndSetDefaults_NormalizesFormats(t *testing.T) {
	o := Options{Kind: KindDiagram, Formats: []string{"SVG", " dot", "svg", ""}}
	if err := o.ValidateAndSetDefaults(); err != nil {
		t.Fatalf("ValidateAndSetDefaults() error: %v", err)
	}
	if !slices.Equal(o.Formats, []string{"svg", "dot"}) {
		t.Errorf("Formats = %v, want [svg dot]", o.Formats)
	}
}

func TestFileName(t *testing.T) {
	tests := []struct {
		kind, name, format, want string
	}{
		{KindFigure, "", FormatHTML, "architecture-presentation.html"},
		{KindFigure, "", FormatJSON, "architecture-diagram.json"},
		{KindFigure, "", FormatPNG, "architecture-diagram.png"},
		{KindDiagram, "cicd-pipeline-flow", FormatSVG, "cicd-pipeline-flow.svg"},
		{KindOverview, "", FormatTXT, "architecture-overview.txt"},
	}
	for _, tt := range tests {
		if got := FileName(tt.kind, tt.name, tt.format); got != tt.want {
			t.Errorf("FileName(%s, %s, %s) = %q, want %q", tt.kind, tt.name, tt.format, got, tt.want)
		}
	}
}

func TestArtifactKeyOpts(t *testing.T) {
	o := Options{Kind: KindDiagram, Scale: 3, Width: 10}
	got := o.ArtifactKeyOpts("network", FormatPNG)
	want := cache.ArtifactKeyOpts{Kind: KindDiagram, Name: "network", Format: FormatPNG, Width: 10, Scale: 3}
	if got != want {
		t.Errorf("ArtifactKeyOpts() = %+v, want %+v", got, want)
	}
}

func TestCacheInfo_AllHit(t *testing.T) {
	if (CacheInfo{}).AllHit() {
		t.Error("no lookups is not an all-hit run")
	}
	if !(CacheInfo{Hits: 2}).AllHit() || (CacheInfo{Hits: 2, Misses: 1}).AllHit() {
		t.Error("AllHit() wrong")
	}
}
