package core_test

import (
	"math/rand"
	"testing"

	"github.com/vovakirdan/tui-chasm/internal/chasm/core"
)

func conn(s core.Shape, out bool) *core.Connector {
	return &core.Connector{Shape: s, SticksOut: out}
}

func TestLinksWith(t *testing.T) {
	cases := []struct {
		name string
		a, b core.Connector
		want bool
	}{
		{"same shape, one protrudes", *conn(core.ShapeSquare, true), *conn(core.ShapeSquare, false), true},
		{"same shape, both protrude", *conn(core.ShapeSquare, true), *conn(core.ShapeSquare, true), false},
		{"same shape, both recessed", *conn(core.ShapeRound, false), *conn(core.ShapeRound, false), false},
		{"shape mismatch", *conn(core.ShapeSquare, true), *conn(core.ShapeRound, false), false},
	}
	for _, tc := range cases {
		if got := tc.a.LinksWith(tc.b); got != tc.want {
			t.Errorf("%s: got %v, want %v", tc.name, got, tc.want)
		}
		// Bonding is symmetric
		if got := tc.b.LinksWith(tc.a); got != tc.want {
			t.Errorf("%s (reversed): got %v, want %v", tc.name, got, tc.want)
		}
	}
}

func TestRotation(t *testing.T) {
	b := &core.Block{Kind: core.KindScaffold}
	b.Connectors[core.DirNorth] = conn(core.ShapeSquare, true)
	b.Connectors[core.DirEast] = conn(core.ShapeRound, false)

	b.RotateCW()
	if b.Connector(core.DirEast) == nil || b.Connector(core.DirEast).Shape != core.ShapeSquare {
		t.Error("north connector should move to east after CW rotation")
	}
	if b.Connector(core.DirSouth) == nil || b.Connector(core.DirSouth).Shape != core.ShapeRound {
		t.Error("east connector should move to south after CW rotation")
	}
	if b.Connector(core.DirNorth) != nil {
		t.Error("north side should be smooth after CW rotation")
	}

	b.RotateCCW()
	if b.Connector(core.DirNorth) == nil || b.Connector(core.DirNorth).Shape != core.ShapeSquare {
		t.Error("CCW rotation should undo CW rotation")
	}
	if b.Connector(core.DirEast) == nil || b.Connector(core.DirEast).Shape != core.ShapeRound {
		t.Error("CCW rotation should undo CW rotation")
	}
}

func TestRotationFullCircle(t *testing.T) {
	b := &core.Block{Kind: core.KindSolid}
	b.Connectors[core.DirWest] = conn(core.ShapePointy, true)

	for i := 0; i < 4; i++ {
		b.RotateCW()
	}
	if b.Connector(core.DirWest) == nil || b.Connector(core.DirWest).Shape != core.ShapePointy {
		t.Error("four CW rotations should return to the original orientation")
	}
}

func TestMassAndResilience(t *testing.T) {
	scaffold := &core.Block{Kind: core.KindScaffold}
	solid := &core.Block{Kind: core.KindSolid}
	anchor := &core.Block{Kind: core.KindAnchor}

	if scaffold.Mass() >= solid.Mass() {
		t.Error("solid blocks should outweigh scaffolds")
	}
	if anchor.Mass() != 0 {
		t.Errorf("anchor mass = %v, want 0", anchor.Mass())
	}
	if scaffold.Resilience() >= solid.Resilience() {
		t.Error("solid blocks should be tougher than scaffolds")
	}
	if !scaffold.IsRemovable() {
		t.Error("scaffolds should be chiselable")
	}
	if solid.IsRemovable() || anchor.IsRemovable() {
		t.Error("only scaffolds should be chiselable")
	}
}

func TestSampleBlockAlwaysBondable(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	cfg := core.DefaultConfig().Spawn
	cfg.ConnectorChance = 0 // force the fallback path

	for i := 0; i < 100; i++ {
		b := core.SampleBlock(rng, cfg)
		found := false
		for _, d := range core.Dirs {
			if b.Connector(d) != nil {
				found = true
			}
		}
		if !found {
			t.Fatal("sampled block has no connectors at all")
		}
	}
}

func TestCloneIsDeep(t *testing.T) {
	b := &core.Block{Kind: core.KindScaffold, Damage: 3}
	b.Connectors[core.DirNorth] = conn(core.ShapeRound, true)

	c := b.Clone()
	c.Connectors[core.DirNorth].SticksOut = false
	c.Damage = 9

	if !b.Connectors[core.DirNorth].SticksOut {
		t.Error("mutating the clone's connector changed the original")
	}
	if b.Damage != 3 {
		t.Error("mutating the clone's damage changed the original")
	}
}
