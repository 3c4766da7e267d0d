package core

// WouldLink reports whether a connector at pos facing the given direction
// would bond with whatever occupies the neighboring cell. Absence of a
// neighbor, or of a connector on either side, means no bond.
//
// This is the single source of truth for bonding; every bonding decision in
// the simulation goes through here.
func WouldLink(g *Grid, pos Coord, conn *Connector, facing Dir) bool {
	if conn == nil {
		return false
	}
	neighbor, ok := g.Get(pos.Step(facing))
	if !ok {
		return false
	}
	facingConn := neighbor.Connector(facing.Opposite())
	if facingConn == nil {
		// nothing matches with a smooth face
		return false
	}
	return facingConn.LinksWith(*conn)
}

// LiveBonds counts how many of the block's four sides currently bond with a
// neighbor in the grid.
func LiveBonds(g *Grid, pos Coord, b *Block) int {
	n := 0
	for _, d := range Dirs {
		if WouldLink(g, pos, b.Connector(d), d) {
			n++
		}
	}
	return n
}

// SupportedSet classifies every block in the grid as supported or not and
// returns the supported coordinates.
//
// The set is the fixed point of a flood fill seeded from all anchors:
// from a supported block, support spreads through bonded connectors to the
// south, east and west, and unconditionally to the block directly above
// (resting contact needs no connector). The relation is monotone so a
// plain worklist suffices. Anything the fill never reaches is unsupported.
func SupportedSet(g *Grid) map[Coord]bool {
	var work []Coord
	g.Each(func(c Coord, b *Block) {
		if b.Kind == KindAnchor {
			work = append(work, c)
		}
	})

	supported := make(map[Coord]bool, g.Len())
	for len(work) > 0 {
		pos := work[len(work)-1]
		work = work[:len(work)-1]
		if supported[pos] {
			continue
		}
		supported[pos] = true

		block, ok := g.Get(pos)
		if !ok {
			delete(supported, pos)
			continue
		}

		// Resting contact: whatever sits directly on top is supported.
		if g.Has(pos.Above()) {
			work = append(work, pos.Above())
		}

		// Bonds: upward spread is covered by the resting rule, so only
		// the remaining three sides need connector checks.
		for _, d := range [3]Dir{DirSouth, DirEast, DirWest} {
			neighborPos := pos.Step(d)
			if WouldLink(g, pos, block.Connector(d), d) {
				work = append(work, neighborPos)
			}
		}
	}
	return supported
}

// IsStableAt reports whether a single block would hold at pos against the
// current grid: anchors always hold; anything else must rest on an occupied
// cell below or bond through at least one connector.
//
// This is the predicate falling chunks and anchor placement test against.
// It looks one step only; full reachability is SupportedSet's job.
func IsStableAt(g *Grid, pos Coord, b *Block) bool {
	return b.Kind == KindAnchor || isStableAnchorless(g, pos, b)
}

func isStableAnchorless(g *Grid, pos Coord, b *Block) bool {
	if g.Has(pos.Below()) {
		return true
	}
	for _, d := range Dirs {
		if WouldLink(g, pos, b.Connector(d), d) {
			return true
		}
	}
	return false
}
