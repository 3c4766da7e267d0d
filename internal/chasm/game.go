// Package chasm implements the chasm-building game: blocks from a conveyor
// are bonded into a structure hanging over a chasm, unsupported regions
// break off and fall, and the run is scored by how deep the structure's
// center of mass ends up.
//
// All structural rules live in the core subpackage; this package owns the
// conveyor, the build cursor, input handling and terminal rendering.
package chasm

import (
	"math"
	"math/rand"

	chasmcore "github.com/vovakirdan/tui-chasm/internal/chasm/core"
	"github.com/vovakirdan/tui-chasm/internal/config"
	"github.com/vovakirdan/tui-chasm/internal/core"
	"github.com/vovakirdan/tui-chasm/internal/registry"
)

// Mode represents the game mode.
type Mode string

const (
	// ModeStandard gives a fixed block allowance; the run ends when the
	// conveyor runs dry.
	ModeStandard Mode = "standard"
	// ModeFree never runs out of blocks; the run ends when the player
	// decides to stop digging.
	ModeFree Mode = "free"
)

// flashDuration is how many ticks an event message stays in the HUD.
const flashDuration = 45

// Game implements the chasm game around the simulation core.
type Game struct {
	mode Mode
	rng  *rand.Rand
	cfg  config.ChasmConfig
	diff *config.DifficultyManager
	sim  *chasmcore.Simulation

	// Conveyor state
	conveyor   []*chasmcore.Block
	held       int // index of the held conveyor block
	blocksLeft int

	// Build cursor
	cursor chasmcore.Coord

	// Screen dimensions
	screenW int
	screenH int

	// Game state flags
	gameOver bool
	finished bool
	paused   bool
	tooSmall bool

	score      int
	placed     int
	lost       int
	events     chasmcore.TickEvents
	flash      string
	flashTicks int
}

// Package-level variables for config/difficulty (set from the CLI before
// game creation, like the other platform flags).
var (
	configPath       string
	difficultyPreset string
)

// SetConfigPath sets the config file path used by the next Reset.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset used by the next Reset.
func SetDifficultyPreset(preset string) {
	difficultyPreset = preset
}

// New creates a new standard mode chasm game.
func New() *Game {
	return &Game{mode: ModeStandard}
}

// NewFree creates a new free build mode chasm game.
func NewFree() *Game {
	return &Game{mode: ModeFree}
}

func init() {
	registry.Register("chasm", func() registry.Game {
		return New()
	})
	registry.Register("chasm_free", func() registry.Game {
		return NewFree()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	if g.mode == ModeFree {
		return "chasm_free"
	}
	return "chasm"
}

// Title returns the display name.
func (g *Game) Title() string {
	if g.mode == ModeFree {
		return "Chasm (Free Build)"
	}
	return "Chasm"
}

// Reset initializes/restarts the game.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	loaded, err := config.LoadChasm(configPath)
	if err != nil {
		loaded = config.DefaultChasmConfig()
	}
	if difficultyPreset != "" {
		config.ApplyChasmPreset(&loaded, config.DifficultyPreset(difficultyPreset))
	}
	g.cfg = loaded
	g.diff = config.NewDifficultyManager(loaded.Difficulty)

	g.rng = rand.New(rand.NewSource(cfg.Seed))
	g.sim = chasmcore.NewSimulation(loaded.SimConfig(), g.rng)

	g.blocksLeft = loaded.Conveyor.BlockAllowance
	g.conveyor = g.conveyor[:0]
	for i := 0; i < loaded.Conveyor.Size; i++ {
		g.conveyor = append(g.conveyor, chasmcore.SampleBlock(g.rng, g.sim.Config().Spawn))
	}
	g.held = 0

	g.cursor = chasmcore.C(0, 0)
	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH
	g.tooSmall = cfg.ScreenW < minScreenW || cfg.ScreenH < minScreenH

	g.gameOver = false
	g.finished = false
	g.paused = false
	g.score = 0
	g.placed = 0
	g.lost = 0
	g.events = chasmcore.TickEvents{}
	g.flash = ""
	g.flashTicks = 0
}

// Step advances the game by one tick.
func (g *Game) Step(input core.InputFrame) core.StepResult {
	// Handle restart
	if input.Has(core.ActionRestart) && g.gameOver {
		g.Reset(core.RuntimeConfig{
			Seed:    g.rng.Int63(),
			ScreenW: g.screenW,
			ScreenH: g.screenH,
		})
		return core.StepResult{State: g.State()}
	}

	// Handle pause toggle
	if input.Has(core.ActionPause) {
		g.paused = !g.paused
	}

	if g.gameOver || g.paused || g.tooSmall {
		return core.StepResult{State: g.State()}
	}

	g.handleInput(input)
	if g.gameOver {
		return core.StepResult{State: g.State()}
	}

	// Difficulty tracks how deep the structure has grown.
	g.sim.SetDamageScale(g.diff.DamageScale(g.sim.MaxDepth(), int(g.sim.Tick())))

	g.events = g.sim.AdvanceTick()
	g.lost += g.events.Voided
	g.flashFromEvents()
	g.score = depthScore(g.sim.CenterOfMass())

	return core.StepResult{State: g.State()}
}

// handleInput applies one tick's worth of player intent.
func (g *Game) handleInput(input core.InputFrame) {
	switch {
	case input.Has(core.ActionUp):
		g.cursor = g.cursor.Above()
	case input.Has(core.ActionDown):
		g.cursor = g.cursor.Below()
	case input.Has(core.ActionLeft):
		g.cursor = g.cursor.Add(-1, 0)
	case input.Has(core.ActionRight):
		g.cursor = g.cursor.Add(1, 0)
	}
	g.clampCursor()

	if input.Has(core.ActionNextBlock) && len(g.conveyor) > 0 {
		g.held = (g.held + 1) % len(g.conveyor)
	}
	if input.Has(core.ActionPrevBlock) && len(g.conveyor) > 0 {
		g.held = (g.held + len(g.conveyor) - 1) % len(g.conveyor)
	}

	if b := g.heldBlock(); b != nil {
		if input.Has(core.ActionRotateCW) {
			b.RotateCW()
		}
		if input.Has(core.ActionRotateCCW) {
			b.RotateCCW()
		}
	}

	if input.Has(core.ActionPlace) {
		g.placeHeld()
	}

	if input.Has(core.ActionChisel) {
		if g.sim.RequestDamage(g.cursor) {
			g.setFlash("chip!")
		} else {
			g.setFlash("can't chisel that")
		}
	}

	if input.Has(core.ActionFinish) && g.conveyorDone() {
		g.finishRun()
	}
}

// placeHeld tries to place the held conveyor block at the cursor.
func (g *Game) placeHeld() {
	b := g.heldBlock()
	if b == nil {
		return
	}
	if !g.sim.RequestPlace(g.cursor, b) {
		g.setFlash("won't fit there")
		return
	}

	g.conveyor = append(g.conveyor[:g.held], g.conveyor[g.held+1:]...)
	refill := g.mode == ModeFree
	if g.mode == ModeStandard && g.blocksLeft > 0 {
		g.blocksLeft--
		refill = true
	}
	if refill {
		g.conveyor = append(g.conveyor, chasmcore.SampleBlock(g.rng, g.sim.Config().Spawn))
	}
	if g.held >= len(g.conveyor) && g.held > 0 {
		g.held = len(g.conveyor) - 1
	}
	g.placed++
	g.setFlash("placed")
}

// conveyorDone reports whether the supply is exhausted and the run may end.
func (g *Game) conveyorDone() bool {
	if g.mode == ModeFree {
		return true // free build can stop at any time
	}
	return len(g.conveyor) == 0
}

// finishRun freezes the simulation and records the final depth score.
func (g *Game) finishRun() {
	g.finished = true
	g.gameOver = true
	g.score = depthScore(g.sim.CenterOfMass())
}

// clampCursor keeps the build cursor inside the legal band plus the walls,
// and within a sensible depth range.
func (g *Game) clampCursor() {
	simCfg := g.sim.Config()
	wall := simCfg.WallColumn()
	g.cursor.X = core.Clamp(g.cursor.X, -wall, wall)
	maxY := g.sim.MaxDepth() + simCfg.BottomViewMargin
	g.cursor.Y = core.Clamp(g.cursor.Y, 0, maxY)
}

// heldBlock returns the currently held conveyor block, or nil.
func (g *Game) heldBlock() *chasmcore.Block {
	if g.held < 0 || g.held >= len(g.conveyor) {
		return nil
	}
	return g.conveyor[g.held]
}

// setFlash replaces the HUD event message.
func (g *Game) setFlash(msg string) {
	g.flash = msg
	g.flashTicks = flashDuration
}

// flashFromEvents surfaces this tick's simulation events in the HUD. The
// terminal flash stands in for the original's sound effects.
func (g *Game) flashFromEvents() {
	switch {
	case g.events.Detached:
		g.setFlash("a chunk breaks loose!")
	case g.events.Reattached:
		g.setFlash("thud - it caught hold")
	case g.events.Voided > 0:
		g.setFlash("blocks lost to the depths...")
	case g.events.Destroyed:
		g.setFlash("a block crumbles")
	}
	if g.flashTicks > 0 {
		g.flashTicks--
		if g.flashTicks == 0 {
			g.flash = ""
		}
	}
}

// depthScore converts the center-of-mass depth to a score in tenths of a
// row, so shallow improvements still move the leaderboard.
func depthScore(centerOfMass float64) int {
	s := int(math.Round(centerOfMass * 10))
	if s < 0 {
		return 0
	}
	return s
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		GameOver: g.gameOver,
		Paused:   g.paused,
	}
}

// RunStats reports the run's aggregate counters for persistence.
func (g *Game) RunStats() (maxDepth, blocksPlaced, blocksLost int, ticks int64) {
	return g.sim.MaxDepth(), g.placed, g.lost, int64(g.sim.Tick())
}

// Snapshot returns the simulation snapshot for determinism verification.
func (g *Game) Snapshot() chasmcore.Snapshot {
	return g.sim.Snapshot()
}
