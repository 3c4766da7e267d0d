package core

import "sort"

// damagePass ages the stable structure and removes destroyed blocks. It also
// doubles as the per-tick stats sweep: max depth and center of mass are
// aggregates of the same iteration, so they are computed here rather than in
// a second pass over the grid.
//
// Stochastic trials only roll on cadence ticks; destruction (damage past
// resilience, including manual chisel hits) is checked every tick and takes
// effect immediately.
func (s *Simulation) damagePass(ev *TickEvents) {
	type trial struct {
		pos    Coord
		chance float64
	}

	maxDepth := 0
	superposes := 0.0
	masses := 0.0
	depthsSeen := make(map[int]bool)
	trials := make([]trial, 0, s.grid.Len())

	s.grid.Each(func(pos Coord, b *Block) {
		if pos.Y > maxDepth {
			maxDepth = pos.Y
		}
		superposes += float64(pos.Y) * b.Mass()
		masses += b.Mass()
		depthsSeen[pos.Y] = true

		chance := s.cfg.BreakChances[LiveBonds(s.grid, pos, b)]
		// Blocks flush against a wall are braced by it.
		if !s.cfg.InChasm(pos.X) {
			chance *= s.cfg.WallBraceFactor
		}
		trials = append(trials, trial{pos: pos, chance: chance})
	})

	s.maxDepth = maxDepth
	if masses == 0 {
		// nothing with mass placed, define the center rather than divide
		s.centerOfMass = 0
	} else {
		s.centerOfMass = superposes / masses
	}

	// A row occupied across the full chasm width is self-reinforcing.
	fullRows := make(map[int]bool)
	for depth := range depthsSeen {
		if s.rowComplete(depth) {
			fullRows[depth] = true
		}
	}

	// Grid iteration order is arbitrary; the rng draws must not be. Sort
	// the trials so identical seeds replay identical runs.
	sort.Slice(trials, func(i, j int) bool {
		if trials[i].pos.Y != trials[j].pos.Y {
			return trials[i].pos.Y < trials[j].pos.Y
		}
		return trials[i].pos.X < trials[j].pos.X
	})

	roll := s.tick%s.cfg.DamageCadence == 0
	for _, t := range trials {
		b, ok := s.grid.Get(t.pos)
		if !ok {
			continue
		}
		chance := t.chance * s.damageScale
		if fullRows[t.pos.Y] {
			chance *= s.cfg.FullRowFactor
		}
		if roll && chance > 0 && s.rng.Float64() < chance {
			b.Damage++
			ev.Damaged = true
		}
		if b.Damage > b.Resilience() {
			s.grid.Remove(t.pos)
			ev.Destroyed = true
		}
	}
}

// rowComplete reports whether every column strictly inside the chasm is
// occupied at the given depth.
func (s *Simulation) rowComplete(depth int) bool {
	for i := 0; i < s.cfg.ChasmWidth; i++ {
		col := i - s.cfg.InnerHalf()
		if !s.grid.Has(C(col, depth)) {
			return false
		}
	}
	return true
}

// breakChanceAt returns the effective per-cadence damage probability for the
// block at pos, with all modifiers applied. Exposed within the package for
// verification.
func (s *Simulation) breakChanceAt(pos Coord) float64 {
	b, ok := s.grid.Get(pos)
	if !ok {
		return 0
	}
	chance := s.cfg.BreakChances[LiveBonds(s.grid, pos, b)] * s.damageScale
	if !s.cfg.InChasm(pos.X) {
		chance *= s.cfg.WallBraceFactor
	}
	if s.rowComplete(pos.Y) {
		chance *= s.cfg.FullRowFactor
	}
	return chance
}
