package core

import "math/rand"

// This file holds the union-find formulation of the stability question.
// The flood fill in stability.go is canonical; this variant exists as an
// optimization candidate and is cross-checked against the fill in tests,
// including components that touch both wall anchors through non-simple
// paths.
//
// Bond edges are symmetric and union freely. Resting contact is not: a
// block resting on a supported block is supported, but nothing flows
// downward through a rest. Resting is therefore applied as a directed
// closure over components after the bond unions, not as a union.

type unionFind struct {
	parent map[Coord]Coord
	rng    *rand.Rand
}

func newUnionFind(rng *rand.Rand) *unionFind {
	return &unionFind{parent: make(map[Coord]Coord), rng: rng}
}

func (u *unionFind) find(c Coord) Coord {
	p, ok := u.parent[c]
	if !ok {
		u.parent[c] = c
		return c
	}
	if p == c {
		return c
	}
	root := u.find(p)
	u.parent[c] = root // path compression
	return root
}

// union merges the two components. Which root becomes the parent is decided
// by a coin flip; correctness never depends on the winner.
func (u *unionFind) union(a, b Coord) {
	ra, rb := u.find(a), u.find(b)
	if ra == rb {
		return
	}
	if u.rng.Intn(2) == 0 {
		u.parent[rb] = ra
	} else {
		u.parent[ra] = rb
	}
}

// SupportedSetUnionFind computes the same supported set as SupportedSet
// via connected components.
func SupportedSetUnionFind(g *Grid, rng *rand.Rand) map[Coord]bool {
	u := newUnionFind(rng)

	// Union each undirected bond edge once: checking east and south from
	// every block covers all four sides without double counting.
	g.Each(func(pos Coord, b *Block) {
		u.find(pos)
		for _, d := range [2]Dir{DirEast, DirSouth} {
			if WouldLink(g, pos, b.Connector(d), d) {
				u.union(pos, pos.Step(d))
			}
		}
	})

	// Components holding an anchor are supported outright.
	supportedRoots := make(map[Coord]bool)
	g.Each(func(pos Coord, b *Block) {
		if b.Kind == KindAnchor {
			supportedRoots[u.find(pos)] = true
		}
	})

	// Directed closure of resting contact: a component whose member rests
	// on a supported block joins the supported set. Iterate to fixed
	// point; each pass either promotes a component or terminates.
	for {
		changed := false
		g.Each(func(pos Coord, _ *Block) {
			root := u.find(pos)
			if supportedRoots[root] {
				return
			}
			if g.Has(pos.Below()) && supportedRoots[u.find(pos.Below())] {
				supportedRoots[root] = true
				changed = true
			}
		})
		if !changed {
			break
		}
	}

	supported := make(map[Coord]bool, g.Len())
	g.Each(func(pos Coord, _ *Block) {
		if supportedRoots[u.find(pos)] {
			supported[pos] = true
		}
	})
	return supported
}
