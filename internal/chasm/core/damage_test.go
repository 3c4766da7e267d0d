package core

import (
	"math"
	"math/rand"
	"testing"
)

func testSim(seed int64) *Simulation {
	return NewSimulation(DefaultConfig(), rand.New(rand.NewSource(seed)))
}

func bondedPair() (*Block, *Block) {
	a := &Block{Kind: KindScaffold}
	a.Connectors[DirEast] = &Connector{Shape: ShapeSquare, SticksOut: true}
	b := &Block{Kind: KindScaffold}
	b.Connectors[DirWest] = &Connector{Shape: ShapeSquare, SticksOut: false}
	return a, b
}

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-12
}

func TestBreakChanceZeroBonds(t *testing.T) {
	s := testSim(1)
	s.grid.Insert(C(0, 5), &Block{Kind: KindScaffold})

	if got := s.breakChanceAt(C(0, 5)); got != 0 {
		t.Errorf("unbonded block break chance = %v, want 0", got)
	}
}

func TestBreakChanceScalesWithBonds(t *testing.T) {
	s := testSim(2)
	a, b := bondedPair()
	s.grid.Insert(C(0, 5), a)
	s.grid.Insert(C(1, 5), b)

	want := s.cfg.BreakChances[1]
	if got := s.breakChanceAt(C(0, 5)); !almostEqual(got, want) {
		t.Errorf("one-bond break chance = %v, want %v", got, want)
	}
	if got := s.breakChanceAt(C(1, 5)); !almostEqual(got, want) {
		t.Errorf("one-bond break chance = %v, want %v", got, want)
	}
}

func TestBreakChanceWallBrace(t *testing.T) {
	s := testSim(3)
	wall := s.cfg.WallColumn()

	a, b := bondedPair()
	s.grid.Insert(C(wall-1, 10), a)
	s.grid.Insert(C(wall, 10), b)

	inner := s.breakChanceAt(C(wall-1, 10))
	braced := s.breakChanceAt(C(wall, 10))
	want := inner * s.cfg.WallBraceFactor
	if !almostEqual(braced, want) {
		t.Errorf("wall-braced break chance = %v, want %v", braced, want)
	}
}

func TestBreakChanceFullRow(t *testing.T) {
	s := testSim(4)
	half := s.cfg.InnerHalf()

	// Fill row 10 wall to wall; bond one pair in the middle so the
	// tested block has a nonzero base chance.
	a, b := bondedPair()
	for x := -half; x <= half; x++ {
		switch x {
		case 0:
			s.grid.Insert(C(x, 10), a)
		case 1:
			s.grid.Insert(C(x, 10), b)
		default:
			s.grid.Insert(C(x, 10), &Block{Kind: KindScaffold})
		}
	}

	want := s.cfg.BreakChances[1] * s.cfg.FullRowFactor
	if got := s.breakChanceAt(C(0, 10)); !almostEqual(got, want) {
		t.Errorf("full-row break chance = %v, want %v", got, want)
	}

	// Breaking the row restores the base chance.
	s.grid.Remove(C(-half, 10))
	if got := s.breakChanceAt(C(0, 10)); !almostEqual(got, s.cfg.BreakChances[1]) {
		t.Errorf("partial-row break chance = %v, want %v", got, s.cfg.BreakChances[1])
	}
}

func TestBreakChanceDamageScale(t *testing.T) {
	s := testSim(5)
	a, b := bondedPair()
	s.grid.Insert(C(0, 5), a)
	s.grid.Insert(C(1, 5), b)

	base := s.breakChanceAt(C(0, 5))
	s.SetDamageScale(1.5)
	if got := s.breakChanceAt(C(0, 5)); !almostEqual(got, base*1.5) {
		t.Errorf("scaled break chance = %v, want %v", got, base*1.5)
	}

	s.SetDamageScale(0) // ignored
	if got := s.breakChanceAt(C(0, 5)); !almostEqual(got, base*1.5) {
		t.Error("non-positive damage scale should be ignored")
	}
}

func TestDamageRollsOnlyOnCadence(t *testing.T) {
	cfg := DefaultConfig()
	// Guarantee a hit whenever a roll happens.
	for i := 1; i < len(cfg.BreakChances); i++ {
		cfg.BreakChances[i] = 1.0
	}
	s := NewSimulation(cfg, rand.New(rand.NewSource(6)))

	// Chain the pair to an anchor so it survives the stability pass.
	anchor := &Block{Kind: KindAnchor}
	anchor.Connectors[DirEast] = &Connector{Shape: ShapeRound, SticksOut: true}
	s.grid.Insert(C(-1, 5), anchor)

	a, b := bondedPair()
	a.Connectors[DirWest] = &Connector{Shape: ShapeRound, SticksOut: false}
	s.grid.Insert(C(0, 5), a)
	s.grid.Insert(C(1, 5), b)

	s.AdvanceTick() // tick 0 is a cadence tick
	if a.Damage != 1 {
		t.Fatalf("damage after cadence tick = %d, want 1", a.Damage)
	}
	for i := 0; i < int(cfg.DamageCadence)-1; i++ {
		s.AdvanceTick()
	}
	if a.Damage != 1 {
		t.Errorf("damage between cadence ticks = %d, want still 1", a.Damage)
	}
	s.AdvanceTick() // next cadence tick
	if a.Damage != 2 {
		t.Errorf("damage after second cadence tick = %d, want 2", a.Damage)
	}
}
