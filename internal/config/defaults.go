package config

import (
	_ "embed"
)

//go:embed defaults/asteroids.yaml
var defaultAsteroidsYAML []byte

// DefaultAsteroidsConfig returns the default asteroids configuration.
// Matches defaults/asteroids.yaml.
func DefaultAsteroidsConfig() AsteroidsConfig {
	return AsteroidsConfig{
		World: WorldConfig{
			Width:  600,
			Height: 480,
		},
		Ship: ShipConfig{
			Width:    30,
			Height:   40,
			TurnRate: 5,
			Thrust:   0.4,
			Drag:     0.005,
		},
		Bullets: BulletConfig{
			Size:        8,
			MuzzleSpeed: 5,
		},
		Asteroids: AsteroidConfig{
			MinSize:       10,
			MaxSize:       80,
			FragmentMin:   10,
			SpawnInterval: 300, // 5 seconds at 60 ticks per second
			Velocities:    []int{1, 2, -3, -2},
			MaxSpin:       5,
			InitialCount:  0,
		},
		HighScores: HighScoreConfig{
			MaxEntries:    5,
			MaxNameLength: 16,
		},
		Input: InputConfig{
			HoldTicks: 30,
		},
		Difficulty: DifficultyConfig{
			Enabled:      false,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "score",
				MaxAt: 100,
			},
			Scaling: ScalingConfig{
				SpawnReduction:   240,
				MinSpawnInterval: 60,
			},
		},
	}
}

// GetDefaultYAML returns the embedded default YAML.
func GetDefaultYAML() []byte {
	return defaultAsteroidsYAML
}
