package core

// CanPlace reports whether the candidate block may be placed at the
// coordinate: the cell must be free, the position legal for the block's
// kind, and anchors must themselves anchor to something.
func (s *Simulation) CanPlace(pos Coord, b *Block) bool {
	if s.grid.Has(pos) {
		return false
	}
	if !s.validPosition(pos, b.Kind) {
		return false
	}
	if b.Kind == KindAnchor && !s.canAnchorAt(pos, b) {
		return false
	}
	return true
}

// validPosition checks the legal band for a kind: nothing above the ground
// line, anchors only at the wall columns, everything else strictly inside
// the chasm.
func (s *Simulation) validPosition(pos Coord, kind Kind) bool {
	if pos.Y < 0 {
		return false
	}
	if kind == KindAnchor {
		return s.cfg.AtWall(pos.X)
	}
	return s.cfg.InChasm(pos.X)
}

// canAnchorAt applies the extra anchor rule: the cell directly above must be
// occupied, or the anchor must already rest or bond at the position.
func (s *Simulation) canAnchorAt(pos Coord, b *Block) bool {
	return s.grid.Has(pos.Above()) || isStableAnchorless(s.grid, pos, b)
}

// RequestPlace validates and, on acceptance, inserts the block. Rejection is
// an answer, not an error; feedback to the player is the caller's concern.
func (s *Simulation) RequestPlace(pos Coord, b *Block) bool {
	if !s.CanPlace(pos, b) {
		return false
	}
	s.grid.Insert(pos, b)
	return true
}
