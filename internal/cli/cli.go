package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/archviz/pkg/architecture"
	"github.com/matzehuels/archviz/pkg/buildinfo"
	"github.com/matzehuels/archviz/pkg/cache"
	"github.com/matzehuels/archviz/pkg/errors"
	"github.com/matzehuels/archviz/pkg/observability"
	"github.com/matzehuels/archviz/pkg/pipeline"
	"github.com/matzehuels/archviz/pkg/present"
)

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger

	configPath string
	verbose    bool
	config     *Config
}

// New creates a new CLI instance logging to w.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{Logger: newLogger(w, level)}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   "archviz",
		Short: "archviz renders the GCP Terraform architecture diagrams",
		Long: `archviz renders the GCP Terraform architecture (shared Workload Identity
Federation, one VPC per environment) as an interactive presentation, as
clustered Graphviz diagrams and as a plain-text overview.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if c.verbose {
				c.SetLogLevel(LogDebug)
				hooks := observability.NewLogHooks(c.Logger)
				observability.SetPipelineHooks(hooks)
				observability.SetCacheHooks(hooks)
			}
			cfg, err := loadConfig(c.configPath)
			if err != nil {
				return err
			}
			c.config = cfg
			return nil
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().BoolVarP(&c.verbose, "verbose", "v", false, "enable verbose logging")
	root.PersistentFlags().StringVar(&c.configPath, "config", "", "config file (default ./"+defaultConfigFile+")")

	root.AddCommand(c.figureCommand())
	root.AddCommand(c.presentCommand())
	root.AddCommand(c.diagramCommand())
	root.AddCommand(c.overviewCommand())
	root.AddCommand(c.catalogCommand())
	root.AddCommand(c.cacheCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// =============================================================================
// Runner Factory
// =============================================================================

// cfg returns the loaded configuration, or the defaults when the root
// pre-run did not execute (for commands invoked directly in tests).
func (c *CLI) cfg() *Config {
	if c.config == nil {
		c.config = defaultConfig()
	}
	return c.config
}

// newRunner creates a pipeline runner backed by the configured cache.
func (c *CLI) newRunner(ctx context.Context, noCache bool) (*pipeline.Runner, error) {
	store, keyer, err := c.newCache(ctx, noCache)
	if err != nil {
		return nil, err
	}
	return pipeline.NewRunner(store, keyer, c.Logger), nil
}

func (c *CLI) newCache(ctx context.Context, noCache bool) (cache.Cache, cache.Keyer, error) {
	cfg := c.cfg().Cache
	if noCache {
		return cache.NewNullCache(), nil, nil
	}

	switch cfg.Backend {
	case backendNone:
		return cache.NewNullCache(), nil, nil
	case backendRedis:
		rc, err := cache.NewRedisCache(ctx, cfg.RedisURL, cache.WithRedisPrefix(cfg.Prefix))
		if err != nil {
			return nil, nil, err
		}
		return rc, cache.NewScopedKeyer(nil, architecture.Project+":"), nil
	}

	dir, err := c.cacheDir()
	if err != nil {
		c.Logger.Warn("no cache directory, caching disabled", "err", err)
		return cache.NewNullCache(), nil, nil
	}
	fc, err := cache.NewFileCache(dir)
	if err != nil {
		return nil, nil, err
	}
	return fc, nil, nil
}

// cacheDir returns the file cache directory.
func (c *CLI) cacheDir() (string, error) {
	if dir := c.cfg().Cache.Dir; dir != "" {
		return dir, nil
	}
	return cache.DefaultDir()
}

// =============================================================================
// Running & Writing
// =============================================================================

// runFlags are shared by every rendering command.
type runFlags struct {
	output  string
	formats string
	refresh bool
	noCache bool
}

func (f *runFlags) register(cmd *cobra.Command, formatHelp string) {
	cmd.Flags().StringVarP(&f.output, "output", "o", "", "output directory (default from config, else .)")
	cmd.Flags().StringVarP(&f.formats, "format", "f", "", formatHelp)
	cmd.Flags().BoolVar(&f.refresh, "refresh", false, "re-render even when cached")
	cmd.Flags().BoolVar(&f.noCache, "no-cache", false, "disable the artifact cache")
}

// outputDir returns the directory artifacts are written to.
func (c *CLI) outputDir(f *runFlags) string {
	if f.output != "" {
		return f.output
	}
	return c.cfg().Output.Dir
}

// execute runs the pipeline and writes every artifact into dir.
func (c *CLI) execute(ctx context.Context, opts pipeline.Options, f *runFlags) (*pipeline.Result, error) {
	runner, err := c.newRunner(ctx, f.noCache)
	if err != nil {
		return nil, err
	}
	defer runner.Cache.Close()

	opts.Refresh = f.refresh
	opts.Logger = c.Logger
	if opts.TTL == 0 {
		opts.TTL = c.cfg().Cache.TTL.Duration
	}

	prog := newProgress(c.Logger)
	spinner := newSpinnerWithContext(ctx, fmt.Sprintf("Rendering %s...", opts.Kind))
	spinner.Start()
	result, err := runner.Execute(ctx, opts)
	spinner.Stop()
	if err != nil {
		return nil, err
	}
	prog.done(fmt.Sprintf("Rendered %d %s artifact(s)", len(result.Artifacts), opts.Kind))

	if err := writeArtifacts(c.outputDir(f), result); err != nil {
		return nil, err
	}
	return result, nil
}

// writeArtifacts writes each artifact under dir and prints its path.
func writeArtifacts(dir string, result *pipeline.Result) error {
	for _, name := range result.Names() {
		path := filepath.Join(dir, name)
		data := result.Artifacts[name]
		if strings.HasSuffix(name, "."+pipeline.FormatHTML) {
			if err := present.WriteFile(path, string(data)); err != nil {
				return err
			}
		} else if err := writeFile(path, data); err != nil {
			return err
		}
		printFile(path)
	}
	return nil
}

func writeFile(path string, data []byte) error {
	if err := errors.ValidateOutputPath(path); err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create directory: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

// parseFormats splits a comma-separated format flag. Empty means the
// pipeline default for the kind.
func parseFormats(s string) []string {
	if s == "" {
		return nil
	}
	var out []string
	for _, f := range strings.Split(s, ",") {
		if f = strings.TrimSpace(f); f != "" {
			out = append(out, f)
		}
	}
	return out
}

// flagOr returns the flag value when the user set it, otherwise fallback.
func flagOr[T any](cmd *cobra.Command, name string, value, fallback T) T {
	if cmd.Flags().Changed(name) {
		return value
	}
	return fallback
}
