package core_test

import (
	"testing"

	"github.com/vovakirdan/tui-chasm/internal/chasm/core"
)

func TestPlaceRejectsOccupiedCell(t *testing.T) {
	s := newSim(20)
	wall := s.Config().WallColumn()

	b := &core.Block{Kind: core.KindScaffold}
	if s.CanPlace(core.C(-wall, 0), b) {
		t.Error("placing onto a seeded anchor should be rejected")
	}
}

func TestPlaceRejectsAboveGround(t *testing.T) {
	s := newSim(21)
	if s.CanPlace(core.C(0, -1), &core.Block{Kind: core.KindScaffold}) {
		t.Error("placing above the ground line should be rejected")
	}
}

func TestPlaceRejectsOutsideChasm(t *testing.T) {
	s := newSim(22)
	wall := s.Config().WallColumn()

	b := &core.Block{Kind: core.KindScaffold}
	if s.CanPlace(core.C(wall, 10), b) {
		t.Error("scaffolds cannot be placed into the wall")
	}
	if s.CanPlace(core.C(wall+3, 5), b) {
		t.Error("scaffolds cannot be placed into the dirt")
	}
}

func TestPlaceScaffoldMidAir(t *testing.T) {
	// Placement checks position legality only; support is the next
	// tick's problem.
	s := newSim(23)
	if !s.CanPlace(core.C(0, 20), &core.Block{Kind: core.KindScaffold}) {
		t.Error("mid-air placement inside the chasm should be accepted")
	}
}

func TestPlaceAnchorOnlyAtWalls(t *testing.T) {
	s := newSim(24)
	wall := s.Config().WallColumn()

	a := &core.Block{Kind: core.KindAnchor}
	if s.CanPlace(core.C(0, 5), a) {
		t.Error("anchors cannot be placed inside the chasm")
	}
	// Directly below the seeded anchor column: cell above is occupied.
	if !s.CanPlace(core.C(wall, s.Config().AnchorRows), a) {
		t.Error("anchor below the seeded column should be accepted")
	}
}

func TestPlaceAnchorNeedsFooting(t *testing.T) {
	s := newSim(25)
	wall := s.Config().WallColumn()

	// Far below the seeded anchors, nothing above, below or beside.
	a := &core.Block{Kind: core.KindAnchor}
	if s.CanPlace(core.C(wall, 20), a) {
		t.Error("a free-floating anchor should be rejected")
	}
}

func TestRequestPlaceInserts(t *testing.T) {
	s := newSim(26)
	before := s.StableCount()

	if !s.RequestPlace(core.C(1, 7), &core.Block{Kind: core.KindScaffold}) {
		t.Fatal("valid placement rejected")
	}
	if s.StableCount() != before+1 {
		t.Error("accepted placement should appear in the stable grid")
	}
	if s.RequestPlace(core.C(1, 7), &core.Block{Kind: core.KindScaffold}) {
		t.Error("second placement on the same cell should be rejected")
	}
}
