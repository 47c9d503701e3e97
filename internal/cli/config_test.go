package cli

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/matzehuels/archviz/pkg/cache"
	"github.com/matzehuels/archviz/pkg/errors"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "archviz.toml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadConfigDefaults(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv(envRedisURL, "")
	t.Setenv(envCacheBackend, "")

	cfg, err := loadConfig("")
	if err != nil {
		t.Fatalf("loadConfig() error: %v", err)
	}
	if cfg.Cache.Backend != backendFile {
		t.Errorf("Backend = %q, want %q", cfg.Cache.Backend, backendFile)
	}
	if cfg.Cache.TTL.Duration != cache.DefaultTTL {
		t.Errorf("TTL = %v, want %v", cfg.Cache.TTL, cache.DefaultTTL)
	}
	if cfg.Output.Dir != "." {
		t.Errorf("Output.Dir = %q, want .", cfg.Output.Dir)
	}
}

func TestLoadConfigFile(t *testing.T) {
	t.Setenv(envRedisURL, "")
	t.Setenv(envCacheBackend, "")
	path := writeConfig(t, `
[figure]
title = "Staging Only"
width = 1280
height = 720
container_id = "diagram"

[output]
dir = "build"

[cache]
backend = "none"
ttl = "36h"
`)

	cfg, err := loadConfig(path)
	if err != nil {
		t.Fatalf("loadConfig() error: %v", err)
	}
	if cfg.Figure.Title != "Staging Only" || cfg.Figure.Width != 1280 || cfg.Figure.Height != 720 {
		t.Errorf("Figure = %+v", cfg.Figure)
	}
	if cfg.Figure.ContainerID != "diagram" {
		t.Errorf("ContainerID = %q", cfg.Figure.ContainerID)
	}
	if cfg.Output.Dir != "build" {
		t.Errorf("Output.Dir = %q", cfg.Output.Dir)
	}
	if cfg.Cache.Backend != backendNone || cfg.Cache.TTL.Duration != 36*time.Hour {
		t.Errorf("Cache = %+v", cfg.Cache)
	}
}

func TestLoadConfigEnvOverride(t *testing.T) {
	t.Setenv(envCacheBackend, "redis")
	t.Setenv(envRedisURL, "redis://localhost:6379/2")
	path := writeConfig(t, "[cache]\nbackend = \"file\"\n")

	cfg, err := loadConfig(path)
	if err != nil {
		t.Fatalf("loadConfig() error: %v", err)
	}
	if cfg.Cache.Backend != backendRedis || cfg.Cache.RedisURL != "redis://localhost:6379/2" {
		t.Errorf("Cache = %+v", cfg.Cache)
	}
}

func TestLoadConfigErrors(t *testing.T) {
	t.Setenv(envRedisURL, "")
	t.Setenv(envCacheBackend, "")

	tests := []struct {
		name string
		body string
	}{
		{"unknown backend", "[cache]\nbackend = \"memcached\"\n"},
		{"redis without url", "[cache]\nbackend = \"redis\"\n"},
		{"bad ttl", "[cache]\nttl = \"a week\"\n"},
		{"negative size", "[figure]\nwidth = -1\n"},
		{"malformed", "[figure\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := loadConfig(writeConfig(t, tt.body)); err == nil {
				t.Error("loadConfig() should fail")
			}
		})
	}
}

func TestLoadConfigMissingExplicit(t *testing.T) {
	_, err := loadConfig(filepath.Join(t.TempDir(), "nope.toml"))
	if !errors.Is(err, errors.ErrCodeNotFound) {
		t.Errorf("loadConfig() error = %v, want NOT_FOUND", err)
	}
}
