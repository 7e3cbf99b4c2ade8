// Package config loads and validates generator configuration from JSON or
// YAML files.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config is the root configuration document.
type Config struct {
	Terrain TerrainConfig `json:"terrain" yaml:"terrain"`
	Cache   CacheConfig   `json:"cache" yaml:"cache"`
	Assets  AssetsConfig  `json:"assets" yaml:"assets"`
	Run     RunConfig     `json:"run" yaml:"run"`
}

// TerrainConfig holds the world-shaping parameters.
type TerrainConfig struct {
	Seed        int64 `json:"seed" yaml:"seed"`
	WorldHeight int   `json:"worldHeight" yaml:"worldHeight"`
	SeaLevel    int   `json:"seaLevel" yaml:"seaLevel"`
}

// CacheConfig bounds the per-generator column cache. Columns is the total
// number of cached columns across all shards; zero means unbounded.
type CacheConfig struct {
	Columns int `json:"columns" yaml:"columns"`
}

// AssetsConfig points at the rule tables. An empty Dir selects the
// built-in defaults.
type AssetsConfig struct {
	Dir string `json:"dir" yaml:"dir"`
}

// RunConfig parameterises the batch generation commands.
type RunConfig struct {
	Workers     int    `json:"workers" yaml:"workers"`
	ChunksX     int    `json:"chunksX" yaml:"chunksX"`
	ChunksY     int    `json:"chunksY" yaml:"chunksY"`
	PreviewPath string `json:"previewPath" yaml:"previewPath"`
}

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{
		Terrain: TerrainConfig{
			Seed:        1337,
			WorldHeight: 1024,
			SeaLevel:    440,
		},
		Cache: CacheConfig{
			Columns: 4096,
		},
		Run: RunConfig{
			ChunksX:     16,
			ChunksY:     32,
			PreviewPath: "preview.png",
		},
	}
}

// Load reads the configuration at path, layered over Default. The format
// follows the file extension: .yaml/.yml decodes as YAML, anything else as
// JSON. An empty path returns the defaults unchanged.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(raw, &cfg); err != nil {
			return Config{}, fmt.Errorf("parse config: %w", err)
		}
	default:
		if err := json.Unmarshal(raw, &cfg); err != nil {
			return Config{}, fmt.Errorf("parse config: %w", err)
		}
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("validate config: %w", err)
	}
	return cfg, nil
}

// Validate checks the configuration for values the generator cannot work
// with.
func (c Config) Validate() error {
	if c.Terrain.WorldHeight <= 0 {
		return errors.New("terrain.worldHeight must be positive")
	}
	if c.Terrain.SeaLevel < 0 || c.Terrain.SeaLevel > c.Terrain.WorldHeight {
		return errors.New("terrain.seaLevel must lie within the world height")
	}
	if c.Cache.Columns < 0 {
		return errors.New("cache.columns cannot be negative")
	}
	if c.Run.Workers < 0 {
		return errors.New("run.workers cannot be negative")
	}
	if c.Run.ChunksX <= 0 {
		return errors.New("run.chunksX must be positive")
	}
	if c.Run.ChunksY <= 0 {
		return errors.New("run.chunksY must be positive")
	}
	return nil
}
