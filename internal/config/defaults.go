package config

import (
	_ "embed"
)

//go:embed defaults/chasm.yaml
var defaultChasmYAML []byte

// DefaultChasmConfig returns the default chasm tuning, matching the embedded
// defaults/chasm.yaml. Used as the last-resort fallback if the embedded YAML
// cannot be parsed.
func DefaultChasmConfig() ChasmConfig {
	return ChasmConfig{
		Chasm: ChasmDimensions{
			Width:      9,
			AnchorRows: 4,
		},
		Fall: FallConfig{
			Acceleration:     1.0 / 60.0,
			TerminalVelocity: 0.5,
			BottomViewMargin: 12,
		},
		Damage: DamageConfig{
			CadenceTicks:    60,
			BreakChances:    []float64{0.0, 0.005, 0.0167, 0.025, 0.05},
			WallBraceFactor: 0.5,
			FullRowFactor:   0.1,
		},
		Conveyor: ConveyorConfig{
			Size:           7,
			BlockAllowance: 100,
		},
		Spawn: SpawnConfig{
			ScaffoldWeight:  0.55,
			SolidWeight:     0.35,
			AnchorWeight:    0.10,
			ConnectorChance: 0.6,
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "depth",
				MaxAt: 40,
			},
			Scaling: ScalingConfig{
				DamageScaleMin: 0.8,
				DamageScaleMax: 1.6,
			},
		},
	}
}

// GetDefaultYAML returns the embedded default YAML.
func GetDefaultYAML() []byte {
	return defaultChasmYAML
}
