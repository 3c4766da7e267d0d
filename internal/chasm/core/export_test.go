package core

// RemoveStable pulls a block straight out of the stable grid, bypassing the
// chisel path. Black-box tests use it to knock out anchors, which normal
// play cannot remove.
func (s *Simulation) RemoveStable(c Coord) (*Block, bool) {
	return s.grid.Remove(c)
}
