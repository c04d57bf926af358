package config

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	var fromYAML AsteroidsConfig
	if err := yaml.Unmarshal(GetDefaultYAML(), &fromYAML); err != nil {
		t.Fatalf("embedded YAML does not parse: %v", err)
	}

	if !reflect.DeepEqual(fromYAML, DefaultAsteroidsConfig()) {
		t.Errorf("embedded defaults drifted from DefaultAsteroidsConfig():\nyaml: %+v\ngo:   %+v",
			fromYAML, DefaultAsteroidsConfig())
	}
}

func TestDefaultConfigIsValid(t *testing.T) {
	if err := DefaultAsteroidsConfig().Validate(); err != nil {
		t.Errorf("default config should validate, got %v", err)
	}
}

func TestValidateRejectsZeroVelocity(t *testing.T) {
	cfg := DefaultAsteroidsConfig()
	cfg.Asteroids.Velocities = []int{1, 0, -1}

	if err := cfg.Validate(); err == nil {
		t.Error("velocities containing zero should be rejected")
	}

	cfg.Asteroids.Velocities = nil
	if err := cfg.Validate(); err == nil {
		t.Error("empty velocities should be rejected")
	}
}

func TestValidateRejectsBadSizes(t *testing.T) {
	cfg := DefaultAsteroidsConfig()
	cfg.Asteroids.MinSize = 90

	if err := cfg.Validate(); err == nil {
		t.Error("min_size above max_size should be rejected")
	}

	cfg = DefaultAsteroidsConfig()
	cfg.World.Width = 0
	if err := cfg.Validate(); err == nil {
		t.Error("zero world width should be rejected")
	}
}

func TestLoadAsteroidsCustomPathPartialOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	data := []byte("world:\n  width: 800\nasteroids:\n  velocities: [4, -4]\n")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadAsteroids(path)
	if err != nil {
		t.Fatalf("LoadAsteroids() failed: %v", err)
	}

	if cfg.World.Width != 800 {
		t.Errorf("World.Width = %d, expected 800", cfg.World.Width)
	}
	if cfg.World.Height != 480 {
		t.Errorf("World.Height = %d, expected default 480", cfg.World.Height)
	}
	if !reflect.DeepEqual(cfg.Asteroids.Velocities, []int{4, -4}) {
		t.Errorf("Velocities = %v, expected [4 -4]", cfg.Asteroids.Velocities)
	}
	if cfg.Asteroids.SpawnInterval != 300 {
		t.Errorf("SpawnInterval = %d, expected default 300", cfg.Asteroids.SpawnInterval)
	}
}

func TestLoadAsteroidsCustomPathErrors(t *testing.T) {
	if _, err := LoadAsteroids(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("missing custom config should return an error")
	}

	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("asteroids:\n  velocities: [0]\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadAsteroids(path); err == nil {
		t.Error("invalid custom config should return an error")
	}
}

func TestApplyAsteroidsPreset(t *testing.T) {
	cfg := DefaultAsteroidsConfig()

	ApplyAsteroidsPreset(&cfg, DifficultyHard)
	if !cfg.Difficulty.Enabled {
		t.Error("hard preset should enable progression")
	}
	if cfg.Difficulty.InitialLevel != 0.7 {
		t.Errorf("InitialLevel = %v, expected 0.7", cfg.Difficulty.InitialLevel)
	}

	ApplyAsteroidsPreset(&cfg, DifficultyFixed)
	if cfg.Difficulty.Enabled {
		t.Error("fixed preset should disable progression")
	}

	before := cfg
	ApplyAsteroidsPreset(&cfg, ParsePreset("bogus"))
	if !reflect.DeepEqual(before, cfg) {
		t.Error("unknown preset should leave config untouched")
	}
}

func TestSpawnIntervalDisabled(t *testing.T) {
	d := NewDifficultyManager(DefaultAsteroidsConfig().Difficulty)

	if got := d.SpawnInterval(300, 1000, 100000); got != 300 {
		t.Errorf("SpawnInterval() = %d, expected unchanged 300 when disabled", got)
	}
}

func TestSpawnIntervalScalesWithScore(t *testing.T) {
	cfg := DefaultAsteroidsConfig().Difficulty
	cfg.Enabled = true

	d := NewDifficultyManager(cfg)

	if got := d.SpawnInterval(300, 0, 0); got != 300 {
		t.Errorf("at score 0, SpawnInterval() = %d, expected 300", got)
	}
	if got := d.SpawnInterval(300, 50, 0); got != 180 {
		t.Errorf("at half progression, SpawnInterval() = %d, expected 180", got)
	}
	if got := d.SpawnInterval(300, 500, 0); got != 60 {
		t.Errorf("past max_at, SpawnInterval() = %d, expected 60", got)
	}
}

func TestSpawnIntervalFloor(t *testing.T) {
	cfg := DefaultAsteroidsConfig().Difficulty
	cfg.Enabled = true
	cfg.Scaling.SpawnReduction = 1000
	cfg.Scaling.MinSpawnInterval = 0

	d := NewDifficultyManager(cfg)
	if got := d.SpawnInterval(300, 100, 0); got != 1 {
		t.Errorf("SpawnInterval() = %d, expected floor of 1", got)
	}
}
