package cli

import (
	"fmt"
	"os"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"

	"github.com/matzehuels/archviz/pkg/cache"
	"github.com/matzehuels/archviz/pkg/errors"
)

// defaultConfigFile is read from the working directory when --config is not given.
const defaultConfigFile = "archviz.toml"

// Cache backends accepted in [cache] backend.
const (
	backendFile  = "file"
	backendRedis = "redis"
	backendNone  = "none"
)

// Environment overrides.
const (
	envRedisURL     = "ARCHVIZ_REDIS_URL"
	envCacheBackend = "ARCHVIZ_CACHE_BACKEND"
)

// Config is the archviz.toml file.
type Config struct {
	Figure FigureConfig `toml:"figure"`
	Output OutputConfig `toml:"output"`
	Cache  CacheConfig  `toml:"cache"`
}

// FigureConfig holds figure and presentation defaults.
type FigureConfig struct {
	Catalog     string `toml:"catalog"` // path to a JSON catalog
	Title       string `toml:"title"`
	Width       int    `toml:"width"`
	Height      int    `toml:"height"`
	ContainerID string `toml:"container_id"`
	Template    string `toml:"template"` // path to an HTML template
}

// OutputConfig controls where artifacts are written.
type OutputConfig struct {
	Dir string `toml:"dir"`
}

// CacheConfig selects and configures the artifact cache.
type CacheConfig struct {
	Backend  string   `toml:"backend"` // file (default), redis, none
	Dir      string   `toml:"dir"`
	RedisURL string   `toml:"redis_url"`
	Prefix   string   `toml:"prefix"`
	TTL      Duration `toml:"ttl"`
}

// Duration is a time.Duration written as a Go duration string ("36h").
type Duration struct {
	time.Duration
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return fmt.Errorf("parse duration %q: %w", text, err)
	}
	d.Duration = v
	return nil
}

// defaultConfig returns the configuration used when no file is present.
func defaultConfig() *Config {
	return &Config{
		Output: OutputConfig{Dir: "."},
		Cache: CacheConfig{
			Backend: backendFile,
			Prefix:  cache.DefaultRedisPrefix,
			TTL:     Duration{cache.DefaultTTL},
		},
	}
}

// loadConfig reads the config file at path. An empty path falls back to
// archviz.toml in the working directory, which may be absent. A .env file is
// loaded first so environment overrides can live next to the config.
func loadConfig(path string) (*Config, error) {
	_ = godotenv.Load()

	cfg := defaultConfig()
	explicit := path != ""
	if !explicit {
		path = defaultConfigFile
	}

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := toml.Unmarshal(data, cfg); err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "parse %s", path)
		}
	case os.IsNotExist(err) && !explicit:
	default:
		return nil, errors.Wrap(errors.ErrCodeNotFound, err, "read config")
	}

	cfg.applyEnv()
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) applyEnv() {
	if v := os.Getenv(envCacheBackend); v != "" {
		c.Cache.Backend = v
	}
	if v := os.Getenv(envRedisURL); v != "" {
		c.Cache.RedisURL = v
	}
}

func (c *Config) validate() error {
	switch c.Cache.Backend {
	case "":
		c.Cache.Backend = backendFile
	case backendFile, backendNone:
	case backendRedis:
		if c.Cache.RedisURL == "" {
			return errors.New(errors.ErrCodeInvalidInput, "cache backend redis needs redis_url or %s", envRedisURL)
		}
	default:
		return errors.New(errors.ErrCodeInvalidInput, "unknown cache backend %q (want file, redis or none)", c.Cache.Backend)
	}
	if c.Cache.TTL.Duration < 0 {
		return errors.New(errors.ErrCodeInvalidInput, "cache ttl cannot be negative")
	}
	if c.Figure.Width < 0 || c.Figure.Height < 0 {
		return errors.New(errors.ErrCodeInvalidInput, "figure size cannot be negative")
	}
	if c.Output.Dir == "" {
		c.Output.Dir = "."
	}
	return nil
}
