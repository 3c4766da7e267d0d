package core

import (
	"fmt"
	"sort"
	"strings"
)

// Snapshot captures the observable simulation state for determinism testing
// and replay comparison.
type Snapshot struct {
	Tick         uint64
	StableCount  int
	ChunkCount   int
	FallingCount int // total blocks across all chunks
	MaxDepth     int
	CenterOfMass float64
	// Digest is a canonical textual dump of every stable block and chunk
	// member, sorted so two equal states always produce equal digests.
	Digest string
}

// Snapshot returns the current state snapshot.
func (s *Simulation) Snapshot() Snapshot {
	var lines []string
	s.grid.Each(func(pos Coord, b *Block) {
		lines = append(lines, fmt.Sprintf("S %s %s d=%d %s",
			pos, b.Kind, b.Damage, connectorDigest(b)))
	})
	falling := 0
	for i, ch := range s.chunks {
		for _, m := range ch.Blocks {
			falling++
			lines = append(lines, fmt.Sprintf("F%d %s %s d=%d p=%.3f",
				i, m.Pos, m.Block.Kind, m.Block.Damage, ch.Progress))
		}
	}
	sort.Strings(lines)

	return Snapshot{
		Tick:         s.tick,
		StableCount:  s.grid.Len(),
		ChunkCount:   len(s.chunks),
		FallingCount: falling,
		MaxDepth:     s.maxDepth,
		CenterOfMass: s.centerOfMass,
		Digest:       strings.Join(lines, "\n"),
	}
}

func connectorDigest(b *Block) string {
	var sb strings.Builder
	for _, d := range Dirs {
		c := b.Connector(d)
		if c == nil {
			sb.WriteByte('.')
			continue
		}
		ch := "sqp"[c.Shape]
		if c.SticksOut {
			ch -= 'a' - 'A'
		}
		sb.WriteByte(ch)
	}
	return sb.String()
}
