package core

import (
	"io"
	"math/rand"

	"github.com/charmbracelet/log"
)

// Simulation is the structural-integrity core: the sparse grid of stable
// blocks plus the chunks currently falling through the chasm.
//
// One Simulation is advanced by exactly one caller, once per tick; there is
// no internal locking. External layers read queries between ticks and feed
// placement and chisel requests through RequestPlace and RequestDamage.
// No input history can make a tick fail: every anomaly degrades to a logged
// diagnostic and the simulation stays steppable.
type Simulation struct {
	cfg    Config
	rng    *rand.Rand
	logger *log.Logger

	grid        *Grid
	chunks      []*Chunk
	damageScale float64

	tick         uint64
	maxDepth     int
	centerOfMass float64
}

// TickEvents reports what happened during one AdvanceTick, for UI feedback
// (the terminal stands in for the original's sound effects).
type TickEvents struct {
	Damaged    bool // at least one block took stochastic damage
	Destroyed  bool // at least one block exceeded its resilience
	Detached   bool // a new falling chunk was created
	Reattached bool // a chunk re-bonded into the grid
	Voided     int  // blocks lost to the depths or to occupied cells
}

// NewSimulation creates a simulation with wall anchors embedded and no other
// blocks. The rng drives every stochastic decision, so a fixed seed replays
// an identical run.
func NewSimulation(cfg Config, rng *rand.Rand) *Simulation {
	s := &Simulation{
		cfg:         cfg,
		rng:         rng,
		logger:      log.New(io.Discard),
		grid:        NewGrid(),
		damageScale: 1.0,
	}
	s.seedAnchors()
	return s
}

// SetLogger routes the simulation's diagnostics (voided blocks, occupied-cell
// collisions) to the given logger.
func (s *Simulation) SetLogger(l *log.Logger) {
	if l != nil {
		s.logger = l
	}
}

// SetDamageScale sets a global multiplier on every break chance, used by the
// difficulty progression. Values at or below zero are ignored.
func (s *Simulation) SetDamageScale(scale float64) {
	if scale > 0 {
		s.damageScale = scale
	}
}

// seedAnchors embeds anchors into both walls facing inward, one per row.
func (s *Simulation) seedAnchors() {
	for side := 0; side < 2; side++ {
		x := s.cfg.WallColumn()
		facing := DirWest
		if side == 0 {
			x = -x
			facing = DirEast
		}
		for depth := 0; depth < s.cfg.AnchorRows; depth++ {
			b := &Block{Kind: KindAnchor}
			b.Connectors[facing] = SampleConnector(s.rng)
			s.grid.Insert(C(x, depth), b)
		}
	}
}

// AdvanceTick runs one simulation step: age and destroy damaged blocks,
// reclassify support, carve unsupported blocks into a falling chunk, and
// advance every chunk. Pure function of prior state plus accumulated input
// requests.
func (s *Simulation) AdvanceTick() TickEvents {
	var ev TickEvents

	s.damagePass(&ev)

	supported := SupportedSet(s.grid)
	s.detachUnsupported(supported, &ev)

	s.advanceChunks(&ev)

	s.tick++
	return ev
}

// Config returns the simulation tuning.
func (s *Simulation) Config() Config {
	return s.cfg
}

// Tick returns the number of completed ticks.
func (s *Simulation) Tick() uint64 {
	return s.tick
}

// MaxDepth returns the deepest occupied row as of the last tick.
func (s *Simulation) MaxDepth() int {
	return s.maxDepth
}

// CenterOfMass returns the mass-weighted center of depth of the stable
// structure as of the last tick. Zero when nothing with mass is placed.
func (s *Simulation) CenterOfMass() float64 {
	return s.centerOfMass
}

// StableCount returns the number of blocks in the stable grid.
func (s *Simulation) StableCount() int {
	return s.grid.Len()
}

// EachStable calls fn for every stable block. Iteration order is unspecified.
func (s *Simulation) EachStable(fn func(Coord, *Block)) {
	s.grid.Each(fn)
}

// StableAt returns the stable block at the coordinate, if any.
func (s *Simulation) StableAt(c Coord) (*Block, bool) {
	return s.grid.Get(c)
}

// Chunks returns the chunks currently falling. The slice and its contents
// are owned by the simulation; callers must treat them as read-only.
func (s *Simulation) Chunks() []*Chunk {
	return s.chunks
}

// RequestDamage applies one manual chisel hit to the block at the
// coordinate. Only removable blocks (scaffolds) take chisel damage; the hit
// is counted against resilience on the next tick like any other damage.
func (s *Simulation) RequestDamage(c Coord) bool {
	b, ok := s.grid.Get(c)
	if !ok || !b.IsRemovable() {
		return false
	}
	b.Damage++
	return true
}
