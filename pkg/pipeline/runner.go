package pipeline

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/archviz/pkg/architecture"
	"github.com/matzehuels/archviz/pkg/cache"
	"github.com/matzehuels/archviz/pkg/figure"
	"github.com/matzehuels/archviz/pkg/observability"
	"github.com/matzehuels/archviz/pkg/render/cluster"
)

// Runner executes runs against a cache. It holds no per-run state, so one
// Runner may serve concurrent runs.
type Runner struct {
	Cache  cache.Cache
	Keyer  cache.Keyer
	Logger *log.Logger
}

// NewRunner creates a runner. A nil cache disables caching, a nil keyer uses
// [cache.DefaultKeyer] and a nil logger uses the default logger.
func NewRunner(c cache.Cache, keyer cache.Keyer, logger *log.Logger) *Runner {
	if c == nil {
		c = cache.NewNullCache()
	}
	if keyer == nil {
		keyer = cache.NewDefaultKeyer()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{Cache: c, Keyer: keyer, Logger: logger}
}

// Execute builds and renders everything opts asks for.
func (r *Runner) Execute(ctx context.Context, opts Options) (*Result, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}

	result := &Result{Artifacts: make(map[string][]byte)}
	var err error
	switch opts.Kind {
	case KindFigure:
		err = r.executeFigure(ctx, opts, result)
	case KindDiagram:
		err = r.executeDiagrams(ctx, opts, result)
	case KindOverview:
		err = r.executeOverview(ctx, opts, result)
	}
	if err != nil {
		return nil, err
	}

	r.Logger.Info("rendered outputs",
		"kind", opts.Kind,
		"artifacts", len(result.Artifacts),
		"cache_hits", result.CacheInfo.Hits,
		"duration", result.Stats.BuildTime+result.Stats.RenderTime)
	return result, nil
}

// BuildFigure builds the presentation figure with the layout overrides of opts.
func (r *Runner) BuildFigure(ctx context.Context, opts Options) (figure.Figure, error) {
	hooks := observability.Pipeline()
	hooks.OnBuildStart(ctx, KindFigure)
	start := time.Now()

	c := opts.Catalog
	if c == nil {
		c = architecture.Presentation()
	}
	if ids := c.OutOfRange(); len(ids) > 0 {
		r.Logger.Warn("nodes outside the visible canvas", "ids", ids)
	}
	fig, err := figure.Build(c, figure.WithTitle(opts.Title), figure.WithSize(opts.Width, opts.Height))

	hooks.OnBuildComplete(ctx, KindFigure, c.NodeCount(), time.Since(start), err)
	return fig, err
}

func (r *Runner) executeFigure(ctx context.Context, opts Options, result *Result) error {
	start := time.Now()
	fig, err := r.BuildFigure(ctx, opts)
	if err != nil {
		return fmt.Errorf("build figure: %w", err)
	}
	result.Stats.BuildTime = time.Since(start)
	result.Stats.Units = 1
	if len(fig.Data) == 2 {
		result.Stats.EdgeCount = len(fig.Data[0].X) / 3
		result.Stats.NodeCount = len(fig.Data[1].X)
	}

	data, err := figure.Marshal(fig)
	if err != nil {
		return fmt.Errorf("encode figure: %w", err)
	}
	source := cache.Hash(data)

	return r.renderAll(ctx, opts, result, "", source, func(format string) ([]byte, error) {
		if format == FormatJSON {
			return data, nil
		}
		return RenderFigure(ctx, fig, format, opts)
	})
}

func (r *Runner) executeDiagrams(ctx context.Context, opts Options, result *Result) error {
	diagrams := architecture.Diagrams()
	if opts.Diagram != "" {
		d, err := architecture.Diagram(opts.Diagram)
		if err != nil {
			return err
		}
		diagrams = []cluster.Diagram{d}
	}

	hooks := observability.Pipeline()
	for _, d := range diagrams {
		hooks.OnBuildStart(ctx, KindDiagram)
		start := time.Now()
		dot, err := cluster.ToDOT(d)
		hooks.OnBuildComplete(ctx, KindDiagram, d.NodeCount(), time.Since(start), err)
		if err != nil {
			return fmt.Errorf("build diagram %s: %w", d.Name, err)
		}
		result.Stats.BuildTime += time.Since(start)
		result.Stats.Units++
		result.Stats.NodeCount += d.NodeCount()
		result.Stats.EdgeCount += len(d.Edges)

		r.Logger.Debug("built diagram", "name", d.Name, "nodes", d.NodeCount(), "edges", len(d.Edges))

		err = r.renderAll(ctx, opts, result, d.Name, cache.Hash([]byte(dot)), func(format string) ([]byte, error) {
			return RenderDiagram(ctx, dot, format, opts)
		})
		if err != nil {
			return err
		}
	}
	return nil
}

func (r *Runner) executeOverview(ctx context.Context, opts Options, result *Result) error {
	hooks := observability.Pipeline()
	hooks.OnBuildStart(ctx, KindOverview)
	start := time.Now()
	doc := architecture.Overview()
	hooks.OnBuildComplete(ctx, KindOverview, len(doc.Root.Children), time.Since(start), nil)
	result.Stats.BuildTime = time.Since(start)
	result.Stats.Units = 1

	return r.renderAll(ctx, opts, result, "", "", func(format string) ([]byte, error) {
		return RenderOverview(doc, format)
	})
}

// renderAll renders every requested format of one unit, consulting the
// cache for the slow formats.
func (r *Runner) renderAll(ctx context.Context, opts Options, result *Result, name, source string, fn func(string) ([]byte, error)) error {
	hooks := observability.Pipeline()
	hooks.OnRenderStart(ctx, opts.Kind, opts.Formats)
	start := time.Now()

	var err error
	for _, format := range opts.Formats {
		if err = ctx.Err(); err != nil {
			break
		}
		var data []byte
		if source != "" && cacheable(opts.Kind, format) {
			data, err = r.cached(ctx, opts, result, r.Keyer.ArtifactKey(source, opts.ArtifactKeyOpts(name, format)), format, fn)
		} else {
			data, err = fn(format)
		}
		if err != nil {
			err = fmt.Errorf("render %s: %w", FileName(opts.Kind, name, format), err)
			break
		}
		result.Artifacts[FileName(opts.Kind, name, format)] = data
	}

	elapsed := time.Since(start)
	result.Stats.RenderTime += elapsed
	hooks.OnRenderComplete(ctx, opts.Kind, opts.Formats, elapsed, err)
	return err
}

func (r *Runner) cached(ctx context.Context, opts Options, result *Result, key, format string, fn func(string) ([]byte, error)) ([]byte, error) {
	hooks := observability.Cache()
	if !opts.Refresh {
		data, hit, err := r.Cache.Get(ctx, key)
		if err != nil {
			r.Logger.Warn("cache read failed", "format", format, "err", err)
		}
		if err == nil && hit {
			hooks.OnCacheHit(ctx, format)
			result.CacheInfo.Hits++
			return data, nil
		}
	}
	hooks.OnCacheMiss(ctx, format)
	result.CacheInfo.Misses++

	data, err := fn(format)
	if err != nil {
		return nil, err
	}
	if err := r.Cache.Set(ctx, key, data, opts.TTL); err != nil {
		r.Logger.Warn("cache write failed", "format", format, "err", err)
	} else {
		hooks.OnCacheSet(ctx, format, len(data))
	}
	return data, nil
}
