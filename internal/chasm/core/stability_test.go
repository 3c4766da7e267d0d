package core_test

import (
	"math/rand"
	"testing"

	"github.com/vovakirdan/tui-chasm/internal/chasm/core"
)

// anchorAt builds a wall anchor with a single inward-facing connector.
func anchorAt(g *core.Grid, pos core.Coord, facing core.Dir, c *core.Connector) {
	b := &core.Block{Kind: core.KindAnchor}
	b.Connectors[facing] = c
	g.Insert(pos, b)
}

// scaffoldAt builds a scaffold with connectors on the given sides.
func scaffoldAt(g *core.Grid, pos core.Coord, conns map[core.Dir]*core.Connector) {
	b := &core.Block{Kind: core.KindScaffold}
	for d, c := range conns {
		b.Connectors[d] = c
	}
	g.Insert(pos, b)
}

func TestSupportedSetBondedToAnchor(t *testing.T) {
	g := core.NewGrid()
	anchorAt(g, core.C(-5, 0), core.DirEast, conn(core.ShapeSquare, true))
	scaffoldAt(g, core.C(-4, 0), map[core.Dir]*core.Connector{
		core.DirWest: conn(core.ShapeSquare, false),
	})

	supported := core.SupportedSet(g)
	if !supported[core.C(-5, 0)] {
		t.Error("anchor should always be supported")
	}
	if !supported[core.C(-4, 0)] {
		t.Error("scaffold bonded to an anchor should be supported")
	}
}

func TestSupportedSetShapeMismatch(t *testing.T) {
	g := core.NewGrid()
	anchorAt(g, core.C(-5, 0), core.DirEast, conn(core.ShapeSquare, true))
	scaffoldAt(g, core.C(-4, 0), map[core.Dir]*core.Connector{
		core.DirWest: conn(core.ShapeRound, false),
	})

	supported := core.SupportedSet(g)
	if supported[core.C(-4, 0)] {
		t.Error("mismatched connector shapes must not bond")
	}
}

func TestSupportedSetBothProtrude(t *testing.T) {
	g := core.NewGrid()
	anchorAt(g, core.C(-5, 0), core.DirEast, conn(core.ShapeSquare, true))
	scaffoldAt(g, core.C(-4, 0), map[core.Dir]*core.Connector{
		core.DirWest: conn(core.ShapeSquare, true),
	})

	supported := core.SupportedSet(g)
	if supported[core.C(-4, 0)] {
		t.Error("two protruding connectors must not bond")
	}
}

func TestSupportedSetRestingContact(t *testing.T) {
	g := core.NewGrid()
	anchorAt(g, core.C(-5, 1), core.DirEast, conn(core.ShapeSquare, true))
	scaffoldAt(g, core.C(-4, 1), map[core.Dir]*core.Connector{
		core.DirWest: conn(core.ShapeSquare, false),
	})
	// No connectors at all: this block just sits on the one below.
	scaffoldAt(g, core.C(-4, 0), nil)

	supported := core.SupportedSet(g)
	if !supported[core.C(-4, 0)] {
		t.Error("block resting on a supported block should be supported")
	}
}

func TestSupportedSetRestingDoesNotSpreadDown(t *testing.T) {
	g := core.NewGrid()
	anchorAt(g, core.C(-5, 0), core.DirEast, conn(core.ShapeSquare, true))
	scaffoldAt(g, core.C(-4, 0), map[core.Dir]*core.Connector{
		core.DirWest: conn(core.ShapeSquare, false),
	})
	// Smooth block hanging below the supported scaffold.
	scaffoldAt(g, core.C(-4, 1), nil)

	supported := core.SupportedSet(g)
	if supported[core.C(-4, 1)] {
		t.Error("a smooth block hanging below a supported one must not be supported")
	}
}

func TestSupportedSetChainThroughBonds(t *testing.T) {
	g := core.NewGrid()
	anchorAt(g, core.C(-5, 0), core.DirEast, conn(core.ShapeSquare, true))
	// Chain eastward: anchor -> s1 -> s2.
	scaffoldAt(g, core.C(-4, 0), map[core.Dir]*core.Connector{
		core.DirWest: conn(core.ShapeSquare, false),
		core.DirEast: conn(core.ShapeRound, true),
	})
	scaffoldAt(g, core.C(-3, 0), map[core.Dir]*core.Connector{
		core.DirWest: conn(core.ShapeRound, false),
	})

	supported := core.SupportedSet(g)
	for _, c := range []core.Coord{core.C(-4, 0), core.C(-3, 0)} {
		if !supported[c] {
			t.Errorf("block at %v should be supported through the bond chain", c)
		}
	}
}

func TestSupportedSetNoAnchors(t *testing.T) {
	g := core.NewGrid()
	scaffoldAt(g, core.C(0, 0), map[core.Dir]*core.Connector{
		core.DirEast: conn(core.ShapeSquare, true),
	})
	scaffoldAt(g, core.C(1, 0), map[core.Dir]*core.Connector{
		core.DirWest: conn(core.ShapeSquare, false),
	})

	supported := core.SupportedSet(g)
	if len(supported) != 0 {
		t.Errorf("without anchors nothing is supported, got %d supported", len(supported))
	}
}

func TestUnionFindMatchesFloodFill(t *testing.T) {
	// Both analyzers must classify every random grid identically.
	for seed := int64(0); seed < 20; seed++ {
		rng := rand.New(rand.NewSource(seed))
		g := core.NewGrid()

		anchorAt(g, core.C(-5, 0), core.DirEast, core.SampleConnector(rng))
		anchorAt(g, core.C(5, 0), core.DirWest, core.SampleConnector(rng))
		for i := 0; i < 40; i++ {
			pos := core.C(rng.Intn(9)-4, rng.Intn(8))
			b := &core.Block{Kind: core.KindScaffold}
			for d := range b.Connectors {
				if rng.Float64() < 0.6 {
					b.Connectors[d] = core.SampleConnector(rng)
				}
			}
			g.Insert(pos, b)
		}

		fill := core.SupportedSet(g)
		dsu := core.SupportedSetUnionFind(g, rng)

		if len(fill) != len(dsu) {
			t.Fatalf("seed %d: flood fill found %d supported, union-find %d",
				seed, len(fill), len(dsu))
		}
		for c := range fill {
			if !dsu[c] {
				t.Fatalf("seed %d: %v supported by flood fill but not union-find", seed, c)
			}
		}
	}
}
