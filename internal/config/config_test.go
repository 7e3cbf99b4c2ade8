package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultIsValid(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
}

func TestValidate(t *testing.T) {
	cases := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"defaults pass", func(*Config) {}, false},
		{"zero world height", func(c *Config) { c.Terrain.WorldHeight = 0 }, true},
		{"negative world height", func(c *Config) { c.Terrain.WorldHeight = -32 }, true},
		{"sea level below zero", func(c *Config) { c.Terrain.SeaLevel = -1 }, true},
		{"sea level above world", func(c *Config) { c.Terrain.SeaLevel = c.Terrain.WorldHeight + 1 }, true},
		{"sea level at world top", func(c *Config) { c.Terrain.SeaLevel = c.Terrain.WorldHeight }, false},
		{"negative cache", func(c *Config) { c.Cache.Columns = -1 }, true},
		{"unbounded cache", func(c *Config) { c.Cache.Columns = 0 }, false},
		{"negative workers", func(c *Config) { c.Run.Workers = -2 }, true},
		{"zero chunksX", func(c *Config) { c.Run.ChunksX = 0 }, true},
		{"zero chunksY", func(c *Config) { c.Run.ChunksY = 0 }, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := Default()
			tc.mutate(&cfg)
			err := cfg.Validate()
			if tc.wantErr && err == nil {
				t.Fatalf("expected error, got nil")
			}
			if !tc.wantErr && err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		})
	}
}

func TestLoadEmptyPathReturnsDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load(\"\"): %v", err)
	}
	if cfg != Default() {
		t.Fatalf("Load(\"\") = %+v, want defaults", cfg)
	}
}

func TestLoadJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	body := `{
		"terrain": {"seed": 99, "worldHeight": 512, "seaLevel": 200},
		"cache": {"columns": 128},
		"assets": {"dir": "assets"},
		"run": {"workers": 4, "chunksX": 8, "chunksY": 16, "previewPath": "out.png"}
	}`
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Terrain.Seed != 99 || cfg.Terrain.WorldHeight != 512 || cfg.Terrain.SeaLevel != 200 {
		t.Fatalf("terrain not decoded: %+v", cfg.Terrain)
	}
	if cfg.Cache.Columns != 128 || cfg.Assets.Dir != "assets" {
		t.Fatalf("cache/assets not decoded: %+v", cfg)
	}
	if cfg.Run.Workers != 4 || cfg.Run.PreviewPath != "out.png" {
		t.Fatalf("run not decoded: %+v", cfg.Run)
	}
}

func TestLoadJSONKeepsDefaultsForOmittedFields(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte(`{"terrain": {"seed": 7}}`), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Terrain.Seed != 7 {
		t.Fatalf("seed = %d, want 7", cfg.Terrain.Seed)
	}
	def := Default()
	if cfg.Terrain.WorldHeight != def.Terrain.WorldHeight || cfg.Cache.Columns != def.Cache.Columns {
		t.Fatalf("omitted fields lost their defaults: %+v", cfg)
	}
}

func TestLoadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	body := `
terrain:
  seed: 55
  worldHeight: 256
  seaLevel: 100
run:
  chunksX: 4
  chunksY: 8
`
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Terrain.Seed != 55 || cfg.Terrain.WorldHeight != 256 || cfg.Terrain.SeaLevel != 100 {
		t.Fatalf("terrain not decoded from YAML: %+v", cfg.Terrain)
	}
	if cfg.Run.ChunksX != 4 || cfg.Run.ChunksY != 8 {
		t.Fatalf("run not decoded from YAML: %+v", cfg.Run)
	}
	if cfg.Run.PreviewPath != Default().Run.PreviewPath {
		t.Fatalf("preview path lost its default: %q", cfg.Run.PreviewPath)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.json")); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte(`{"terrain": {"worldHeight": -1}}`), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	if _, err := Load(path); err == nil {
		t.Fatal("expected validation error")
	}
}
