package core

// Grid is the sparse index of placed blocks, keyed by coordinate.
// Depth is unbounded so there is no backing array; consumers must not rely
// on any iteration order.
type Grid struct {
	cells map[Coord]*Block
}

// NewGrid creates an empty grid.
func NewGrid() *Grid {
	return &Grid{cells: make(map[Coord]*Block)}
}

// Get returns the block at the given coordinate, if any.
func (g *Grid) Get(c Coord) (*Block, bool) {
	b, ok := g.cells[c]
	return b, ok
}

// Has reports whether the coordinate is occupied.
func (g *Grid) Has(c Coord) bool {
	_, ok := g.cells[c]
	return ok
}

// Insert places a block at the coordinate. It refuses to overwrite: if the
// cell is already occupied the grid is unchanged and Insert returns false.
func (g *Grid) Insert(c Coord, b *Block) bool {
	if _, ok := g.cells[c]; ok {
		return false
	}
	g.cells[c] = b
	return true
}

// Remove takes the block at the coordinate out of the grid and returns it.
func (g *Grid) Remove(c Coord) (*Block, bool) {
	b, ok := g.cells[c]
	if ok {
		delete(g.cells, c)
	}
	return b, ok
}

// Len returns the number of placed blocks.
func (g *Grid) Len() int {
	return len(g.cells)
}

// Each calls fn for every placed block. Iteration order is unspecified.
func (g *Grid) Each(fn func(Coord, *Block)) {
	for c, b := range g.cells {
		fn(c, b)
	}
}

// Coords returns the coordinates of all placed blocks in unspecified order.
func (g *Grid) Coords() []Coord {
	coords := make([]Coord, 0, len(g.cells))
	for c := range g.cells {
		coords = append(coords, c)
	}
	return coords
}
