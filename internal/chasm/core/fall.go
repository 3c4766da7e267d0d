package core

import "sort"

// ChunkBlock is one member of a falling chunk: the block plus the grid
// coordinate it occupied when it detached. Render position and
// re-attachment targets are this origin plus the chunk's shared offset.
type ChunkBlock struct {
	Pos   Coord
	Block *Block
}

// Chunk is a rigid group of blocks that left the stable grid together in
// one tick and falls as a unit. Members never separate while falling; the
// whole chunk re-attaches at one offset or is voided together (individual
// members can still be lost to occupied cells at commit time).
type Chunk struct {
	Blocks []ChunkBlock
	// Progress is the shared vertical offset in rows, fractional while
	// between cells.
	Progress float64
	// TicksFalling ages the chunk for the acceleration ramp.
	TicksFalling int
}

// Offset returns the whole-row displacement the chunk has fallen so far.
func (ch *Chunk) Offset() int {
	return int(ch.Progress)
}

// detachUnsupported removes every block the stability pass left unmarked and
// groups them into a single new chunk. All of one tick's casualties share a
// fall clock even if they are topologically disjoint.
func (s *Simulation) detachUnsupported(supported map[Coord]bool, ev *TickEvents) {
	var members []ChunkBlock
	for _, pos := range s.grid.Coords() {
		if supported[pos] {
			continue
		}
		b, _ := s.grid.Remove(pos)
		members = append(members, ChunkBlock{Pos: pos, Block: b})
	}
	if len(members) == 0 {
		return
	}

	// Stable member order keeps commit-time collision resolution and
	// replay deterministic.
	sort.Slice(members, func(i, j int) bool {
		if members[i].Pos.Y != members[j].Pos.Y {
			return members[i].Pos.Y < members[j].Pos.Y
		}
		return members[i].Pos.X < members[j].Pos.X
	})

	s.chunks = append(s.chunks, &Chunk{Blocks: members})
	ev.Detached = true
}

// advanceChunks moves every falling chunk by its current velocity, testing
// each integer row crossed this tick for re-attachment against the stable
// grid. Chunks do not interact with each other.
func (s *Simulation) advanceChunks(ev *TickEvents) {
	kept := s.chunks[:0]
	for _, ch := range s.chunks {
		v := s.cfg.FallAcceleration * float64(ch.TicksFalling)
		if v > s.cfg.FallTerminal {
			v = s.cfg.FallTerminal
		}
		prev := ch.Offset()
		ch.Progress += v
		ch.TicksFalling++
		now := ch.Offset()

		// Scan crossed rows from the top down: the first offset where
		// any member would hold wins, and the whole chunk commits there.
		committed := false
		for off := prev + 1; off <= now; off++ {
			if s.chunkStableAt(ch, off) {
				s.commitChunk(ch, off, ev)
				committed = true
				break
			}
		}
		if committed {
			continue
		}

		if now > prev && s.chunkBelowView(ch, now) {
			ev.Voided += len(ch.Blocks)
			s.logger.Info("chunk fell out of view",
				"blocks", len(ch.Blocks), "offset", now)
			continue
		}

		kept = append(kept, ch)
	}
	s.chunks = kept
}

// chunkStableAt reports whether the chunk, shifted down by off rows as a
// rigid unit, would hold against the current stable grid.
func (s *Simulation) chunkStableAt(ch *Chunk, off int) bool {
	for _, m := range ch.Blocks {
		if IsStableAt(s.grid, m.Pos.Add(0, off), m.Block) {
			return true
		}
	}
	return false
}

// chunkBelowView reports whether every member has fallen past the discard
// threshold below the deepest stable block.
func (s *Simulation) chunkBelowView(ch *Chunk, off int) bool {
	limit := s.maxDepth + 2*s.cfg.BottomViewMargin
	for _, m := range ch.Blocks {
		if m.Pos.Y+off < limit {
			return false
		}
	}
	return true
}

// commitChunk writes every member back into the grid at its origin plus the
// winning offset. A member whose target cell is already occupied is
// discarded with a diagnostic; the rest of the chunk still commits.
func (s *Simulation) commitChunk(ch *Chunk, off int, ev *TickEvents) {
	for _, m := range ch.Blocks {
		target := m.Pos.Add(0, off)
		if s.grid.Insert(target, m.Block) {
			continue
		}
		ev.Voided++
		s.logger.Warn("discarding block, cell already occupied",
			"pos", target, "kind", m.Block.Kind)
	}
	ev.Reattached = true
}
