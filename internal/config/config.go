// Package config provides YAML-based game configuration loading and
// difficulty management for the asteroids game.
package config

// AsteroidsConfig contains all configuration for the asteroids simulation.
type AsteroidsConfig struct {
	World      WorldConfig      `yaml:"world"`
	Ship       ShipConfig       `yaml:"ship"`
	Bullets    BulletConfig     `yaml:"bullets"`
	Asteroids  AsteroidConfig   `yaml:"asteroids"`
	HighScores HighScoreConfig  `yaml:"high_scores"`
	Input      InputConfig      `yaml:"input"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// WorldConfig defines the logical simulation bounds in world units.
// The terminal renderer scales this area onto the available cells.
type WorldConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// ShipConfig defines the player ship's size and handling.
type ShipConfig struct {
	Width    int     `yaml:"width"`
	Height   int     `yaml:"height"`
	TurnRate float64 `yaml:"turn_rate"` // Degrees per tick
	Thrust   float64 `yaml:"thrust"`    // Acceleration magnitude per tick²
	Drag     float64 `yaml:"drag"`      // Fraction of velocity lost per tick
}

// BulletConfig defines projectile parameters.
type BulletConfig struct {
	Size        int     `yaml:"size"`
	MuzzleSpeed float64 `yaml:"muzzle_speed"` // Units per tick added along the heading
}

// AsteroidConfig defines spawning and fragmentation parameters.
type AsteroidConfig struct {
	MinSize       int     `yaml:"min_size"`
	MaxSize       int     `yaml:"max_size"`
	FragmentMin   int     `yaml:"fragment_min"`   // Fragments smaller than this are not created
	SpawnInterval int     `yaml:"spawn_interval"` // Ticks between spawns while the ship is alive
	Velocities    []int   `yaml:"velocities"`     // Per-axis velocity choices, zero not allowed
	MaxSpin       float64 `yaml:"max_spin"`       // Degrees per tick, exclusive upper bound
	InitialCount  int     `yaml:"initial_count"`  // Asteroids spawned at session start
}

// HighScoreConfig defines the high-score table limits.
type HighScoreConfig struct {
	MaxEntries    int `yaml:"max_entries"`
	MaxNameLength int `yaml:"max_name_length"`
}

// InputConfig tunes how terminal key presses become press/release events.
type InputConfig struct {
	// HoldTicks is how many ticks a key counts as held after its last
	// press or auto-repeat. Terminals do not report key releases.
	HoldTicks int `yaml:"hold_ticks"`
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases over time.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "score", "time", or "none"
	MaxAt int    `yaml:"max_at"` // Score/ticks at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	SpawnReduction   int `yaml:"spawn_reduction"`    // Spawn interval reduction (ticks) at max difficulty
	MinSpawnInterval int `yaml:"min_spawn_interval"` // Floor for the spawn interval
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset converts a CLI string into a preset.
// Unknown strings yield the empty preset, meaning "use the config as loaded".
func ParsePreset(s string) DifficultyPreset {
	switch DifficultyPreset(s) {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return DifficultyPreset(s)
	default:
		return ""
	}
}

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}
