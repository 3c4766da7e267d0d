// Package config provides YAML-based tuning configuration and difficulty
// management for the chasm game.
package config

import (
	chasmcore "github.com/vovakirdan/tui-chasm/internal/chasm/core"
)

// ChasmConfig contains all tuning for the chasm simulation and its conveyor.
type ChasmConfig struct {
	Chasm      ChasmDimensions  `yaml:"chasm"`
	Fall       FallConfig       `yaml:"fall"`
	Damage     DamageConfig     `yaml:"damage"`
	Conveyor   ConveyorConfig   `yaml:"conveyor"`
	Spawn      SpawnConfig      `yaml:"spawn"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// ChasmDimensions defines the playfield geometry.
type ChasmDimensions struct {
	Width      int `yaml:"width"`       // buildable columns between the walls (odd)
	AnchorRows int `yaml:"anchor_rows"` // wall anchors embedded per side at start
}

// FallConfig defines falling-chunk kinematics.
type FallConfig struct {
	Acceleration     float64 `yaml:"acceleration"`       // rows per tick squared
	TerminalVelocity float64 `yaml:"terminal_velocity"`  // rows per tick cap
	BottomViewMargin int     `yaml:"bottom_view_margin"` // rows below the deepest block before voiding
}

// DamageConfig defines the stochastic degradation model.
type DamageConfig struct {
	CadenceTicks    uint64    `yaml:"cadence_ticks"`     // ticks between damage trials
	BreakChances    []float64 `yaml:"break_chances"`     // indexed by live bond count, 0..4
	WallBraceFactor float64   `yaml:"wall_brace_factor"` // chance multiplier at the walls
	FullRowFactor   float64   `yaml:"full_row_factor"`   // chance multiplier on complete rows
}

// ConveyorConfig defines the supply of placeable blocks.
type ConveyorConfig struct {
	Size           int `yaml:"size"`            // blocks visible on the conveyor
	BlockAllowance int `yaml:"block_allowance"` // total blocks per run (standard mode)
}

// SpawnConfig defines random block generation weights.
type SpawnConfig struct {
	ScaffoldWeight  float64 `yaml:"scaffold_weight"`
	SolidWeight     float64 `yaml:"solid_weight"`
	AnchorWeight    float64 `yaml:"anchor_weight"`
	ConnectorChance float64 `yaml:"connector_chance"` // per-side connector probability
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases over a run.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "depth", "time", or "none"
	MaxAt int    `yaml:"max_at"` // depth/ticks at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	DamageScaleMin float64 `yaml:"damage_scale_min"` // break-chance multiplier at level 0
	DamageScaleMax float64 `yaml:"damage_scale_max"` // break-chance multiplier at level 1
}

// DamageScale interpolates the break-chance multiplier for a difficulty
// level in [0, 1].
func (s ScalingConfig) DamageScale(level float64) float64 {
	if s.DamageScaleMax <= 0 {
		return 1.0
	}
	return s.DamageScaleMin + level*(s.DamageScaleMax-s.DamageScaleMin)
}

// SimConfig maps the loaded tuning onto the simulation core's config.
// Zero-valued fields fall back to the core defaults.
func (c ChasmConfig) SimConfig() chasmcore.Config {
	sim := chasmcore.DefaultConfig()

	if c.Chasm.Width > 0 {
		sim.ChasmWidth = c.Chasm.Width
	}
	if c.Chasm.AnchorRows > 0 {
		sim.AnchorRows = c.Chasm.AnchorRows
	}
	if c.Fall.Acceleration > 0 {
		sim.FallAcceleration = c.Fall.Acceleration
	}
	if c.Fall.TerminalVelocity > 0 {
		sim.FallTerminal = c.Fall.TerminalVelocity
	}
	if c.Fall.BottomViewMargin > 0 {
		sim.BottomViewMargin = c.Fall.BottomViewMargin
	}
	if c.Damage.CadenceTicks > 0 {
		sim.DamageCadence = c.Damage.CadenceTicks
	}
	if len(c.Damage.BreakChances) == len(sim.BreakChances) {
		copy(sim.BreakChances[:], c.Damage.BreakChances)
	}
	if c.Damage.WallBraceFactor > 0 {
		sim.WallBraceFactor = c.Damage.WallBraceFactor
	}
	if c.Damage.FullRowFactor > 0 {
		sim.FullRowFactor = c.Damage.FullRowFactor
	}
	if c.Spawn.ScaffoldWeight > 0 || c.Spawn.SolidWeight > 0 || c.Spawn.AnchorWeight > 0 {
		sim.Spawn = chasmcore.SpawnConfig{
			ScaffoldWeight:  c.Spawn.ScaffoldWeight,
			SolidWeight:     c.Spawn.SolidWeight,
			AnchorWeight:    c.Spawn.AnchorWeight,
			ConnectorChance: c.Spawn.ConnectorChance,
		}
	}
	return sim
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

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

// IsFixedPreset returns true if the preset disables progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}
