package core

// Config holds the simulation tunables. The zero value is not usable; start
// from DefaultConfig and override.
type Config struct {
	// ChasmWidth is the number of buildable columns between the walls.
	// Odd, so the centerline X = 0 is a real column.
	ChasmWidth int
	// AnchorRows is how many wall anchors are embedded per side at start.
	AnchorRows int

	// FallAcceleration is added to a chunk's velocity per tick of age,
	// in rows per tick.
	FallAcceleration float64
	// FallTerminal caps chunk velocity so a chunk cannot tunnel through
	// a full row in one step.
	FallTerminal float64
	// BottomViewMargin is the number of rows past the deepest block a
	// chunk may fall before it is voided.
	BottomViewMargin int

	// DamageCadence is the tick interval between stochastic damage trials.
	DamageCadence uint64
	// BreakChances maps live bond count (0..4) to per-cadence damage
	// probability. More heavily loaded joints fail more often.
	BreakChances [DirCount + 1]float64
	// WallBraceFactor scales the chance for blocks flush against a wall.
	WallBraceFactor float64
	// FullRowFactor scales the chance for blocks in a complete row.
	FullRowFactor float64

	// Spawn tunes random conveyor block generation.
	Spawn SpawnConfig
}

// SpawnConfig tunes random block sampling for the conveyor.
type SpawnConfig struct {
	ScaffoldWeight  float64
	SolidWeight     float64
	AnchorWeight    float64
	ConnectorChance float64
}

// DefaultConfig returns the standard game tuning.
func DefaultConfig() Config {
	return Config{
		ChasmWidth:       9,
		AnchorRows:       4,
		FallAcceleration: 1.0 / 60.0,
		FallTerminal:     0.5,
		BottomViewMargin: 12,
		DamageCadence:    60,
		BreakChances: [DirCount + 1]float64{
			0.0, // a resting block never takes damage
			0.3 / 60.0,
			1.0 / 60.0,
			1.5 / 60.0,
			3.0 / 60.0,
		},
		WallBraceFactor: 0.5,
		FullRowFactor:   0.1,
		Spawn: SpawnConfig{
			ScaffoldWeight:  0.55,
			SolidWeight:     0.35,
			AnchorWeight:    0.10,
			ConnectorChance: 0.6,
		},
	}
}

// WallColumn returns the X magnitude of the two wall columns where anchors
// embed. For the default width 9 the walls sit at X = ±5.
func (c Config) WallColumn() int {
	return (c.ChasmWidth + 1) / 2
}

// InnerHalf returns the largest X magnitude strictly inside the chasm.
func (c Config) InnerHalf() int {
	return c.ChasmWidth / 2
}

// InChasm reports whether the column is strictly between the walls.
func (c Config) InChasm(x int) bool {
	return Abs(x) <= c.InnerHalf()
}

// AtWall reports whether the column is one of the two wall columns.
func (c Config) AtWall(x int) bool {
	return Abs(x) == c.WallColumn()
}
