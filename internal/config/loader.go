package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadAsteroids loads the asteroids configuration.
// Search order: customPath -> ~/.asteroids/configs/asteroids.yaml -> ./configs/asteroids.yaml -> embedded default
func LoadAsteroids(customPath string) (AsteroidsConfig, error) {
	// Try custom path first
	if customPath != "" {
		cfg, err := loadFile(customPath)
		if err != nil {
			return cfg, err
		}
		if err := cfg.Validate(); err != nil {
			return cfg, fmt.Errorf("invalid config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("asteroids.yaml"); userCfgPath != "" {
		if cfg, err := loadFile(userCfgPath); err == nil && cfg.Validate() == nil {
			return cfg, nil
		}
	}

	// Try local configs directory
	if cfg, err := loadFile("configs/asteroids.yaml"); err == nil && cfg.Validate() == nil {
		return cfg, nil
	}

	// Use embedded default YAML
	cfg := DefaultAsteroidsConfig()
	if err := yaml.Unmarshal(defaultAsteroidsYAML, &cfg); err != nil {
		return DefaultAsteroidsConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// loadFile reads a YAML file on top of the hardcoded defaults, so a partial
// file only overrides the keys it names.
func loadFile(path string) (AsteroidsConfig, error) {
	cfg := DefaultAsteroidsConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".asteroids", "configs", filename)
}

// Validate checks that the configuration describes a playable simulation.
func (c AsteroidsConfig) Validate() error {
	var errs []error

	if c.World.Width <= 0 || c.World.Height <= 0 {
		errs = append(errs, fmt.Errorf("world size must be positive, got %dx%d", c.World.Width, c.World.Height))
	}
	if c.Ship.Width <= 0 || c.Ship.Height <= 0 {
		errs = append(errs, fmt.Errorf("ship size must be positive, got %dx%d", c.Ship.Width, c.Ship.Height))
	}
	if c.Ship.Drag < 0 || c.Ship.Drag >= 1 {
		errs = append(errs, fmt.Errorf("ship drag must be in [0, 1), got %v", c.Ship.Drag))
	}
	if c.Bullets.Size <= 0 {
		errs = append(errs, fmt.Errorf("bullet size must be positive, got %d", c.Bullets.Size))
	}
	if c.Asteroids.MinSize <= 0 || c.Asteroids.MinSize > c.Asteroids.MaxSize {
		errs = append(errs, fmt.Errorf("asteroid sizes must satisfy 0 < min_size <= max_size, got [%d, %d]",
			c.Asteroids.MinSize, c.Asteroids.MaxSize))
	}
	if c.Asteroids.SpawnInterval <= 0 {
		errs = append(errs, fmt.Errorf("spawn_interval must be positive, got %d", c.Asteroids.SpawnInterval))
	}
	if len(c.Asteroids.Velocities) == 0 {
		errs = append(errs, errors.New("asteroid velocities must not be empty"))
	}
	for _, v := range c.Asteroids.Velocities {
		if v == 0 {
			errs = append(errs, errors.New("asteroid velocities must not contain zero"))
			break
		}
	}
	if c.Asteroids.MaxSpin < 0 || c.Asteroids.MaxSpin >= 360 {
		errs = append(errs, fmt.Errorf("max_spin must be in [0, 360), got %v", c.Asteroids.MaxSpin))
	}
	if c.Ship.TurnRate <= -360 || c.Ship.TurnRate >= 360 {
		errs = append(errs, fmt.Errorf("turn_rate must be in (-360, 360), got %v", c.Ship.TurnRate))
	}
	if c.HighScores.MaxEntries <= 0 {
		errs = append(errs, fmt.Errorf("high_scores.max_entries must be positive, got %d", c.HighScores.MaxEntries))
	}

	return errors.Join(errs...)
}

// ApplyAsteroidsPreset modifies the config based on a difficulty preset.
func ApplyAsteroidsPreset(cfg *AsteroidsConfig, preset DifficultyPreset) {
	switch preset {
	case "":
		return
	case DifficultyFixed:
		cfg.Difficulty.Enabled = false
	default:
		cfg.Difficulty.Enabled = true
		cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)
	}
}
