package core

import "math/rand"

// Kind classifies a block. The kind is immutable for the block's lifetime
// and determines mass, resilience and whether the player may chisel it.
type Kind uint8

const (
	// KindScaffold is the light, cheap, chiselable building block.
	KindScaffold Kind = iota
	// KindSolid is heavy and cannot be chiseled away.
	KindSolid
	// KindAnchor holds the whole structure in place from the chasm walls.
	// Anchors are always considered supported and never contribute mass.
	KindAnchor
)

// String returns a human-readable name for the kind.
func (k Kind) String() string {
	switch k {
	case KindScaffold:
		return "scaffold"
	case KindSolid:
		return "solid"
	case KindAnchor:
		return "anchor"
	default:
		return "unknown"
	}
}

// Shape is the profile of a connector. Two connectors only bond when their
// shapes match.
type Shape uint8

const (
	ShapeSquare Shape = iota
	ShapeRound
	ShapePointy

	shapeCount = 3
)

// String returns a human-readable name for the shape.
func (s Shape) String() string {
	switch s {
	case ShapeSquare:
		return "square"
	case ShapeRound:
		return "round"
	case ShapePointy:
		return "pointy"
	default:
		return "unknown"
	}
}

// Connector is the bonding descriptor on one side of a block: a shape plus
// whether it protrudes (sticks out) or is recessed.
type Connector struct {
	Shape     Shape
	SticksOut bool
}

// LinksWith reports whether two facing connectors bond: same shape, and
// exactly one of the pair protrudes. The relation is symmetric.
func (c Connector) LinksWith(other Connector) bool {
	return c.Shape == other.Shape && c.SticksOut != other.SticksOut
}

// Block is a placed or conveyed building block: an immutable kind, a damage
// counter, and up to one connector per cardinal side (indexed by Dir).
type Block struct {
	Kind       Kind
	Damage     int
	Connectors [DirCount]*Connector
}

// Mass returns the block's weight for center-of-mass accounting.
// Anchors are weightless so they never skew the depth measure.
func (b *Block) Mass() float64 {
	switch b.Kind {
	case KindScaffold:
		return 1.0
	case KindSolid:
		return 5.0
	default:
		return 0.0
	}
}

// Resilience returns the damage threshold past which the block is destroyed.
func (b *Block) Resilience() int {
	switch b.Kind {
	case KindScaffold:
		return 8
	case KindSolid:
		return 16
	default:
		return 64
	}
}

// IsRemovable reports whether the player may chisel this block directly.
func (b *Block) IsRemovable() bool {
	return b.Kind == KindScaffold
}

// Connector returns the connector on the given side, or nil for a smooth face.
func (b *Block) Connector(d Dir) *Connector {
	return b.Connectors[d]
}

// RotateCW rotates the connector array one step clockwise
// (the north connector moves to the east side).
func (b *Block) RotateCW() {
	last := b.Connectors[DirCount-1]
	copy(b.Connectors[1:], b.Connectors[:DirCount-1])
	b.Connectors[0] = last
}

// RotateCCW rotates the connector array one step counterclockwise.
func (b *Block) RotateCCW() {
	first := b.Connectors[0]
	copy(b.Connectors[:DirCount-1], b.Connectors[1:])
	b.Connectors[DirCount-1] = first
}

// Clone returns a deep copy of the block.
func (b *Block) Clone() *Block {
	nb := &Block{Kind: b.Kind, Damage: b.Damage}
	for i, c := range b.Connectors {
		if c != nil {
			cc := *c
			nb.Connectors[i] = &cc
		}
	}
	return nb
}

// SampleConnector draws a random connector: uniform shape, fair coin for
// protrusion.
func SampleConnector(rng *rand.Rand) *Connector {
	return &Connector{
		Shape:     Shape(rng.Intn(shapeCount)),
		SticksOut: rng.Intn(2) == 0,
	}
}

// SampleBlock draws a random conveyor block using the given spawn tuning.
// Each side independently receives a connector with cfg.ConnectorChance.
func SampleBlock(rng *rand.Rand, cfg SpawnConfig) *Block {
	total := cfg.ScaffoldWeight + cfg.SolidWeight + cfg.AnchorWeight
	if total <= 0 {
		total = 1
	}
	roll := rng.Float64() * total

	kind := KindScaffold
	switch {
	case roll < cfg.ScaffoldWeight:
		kind = KindScaffold
	case roll < cfg.ScaffoldWeight+cfg.SolidWeight:
		kind = KindSolid
	default:
		kind = KindAnchor
	}

	b := &Block{Kind: kind}
	for i := range b.Connectors {
		if rng.Float64() < cfg.ConnectorChance {
			b.Connectors[i] = SampleConnector(rng)
		}
	}
	// A block with no connectors at all can only ever rest; give it one
	// so every conveyed block is at least theoretically bondable.
	if b.Connectors[0] == nil && b.Connectors[1] == nil &&
		b.Connectors[2] == nil && b.Connectors[3] == nil {
		b.Connectors[rng.Intn(DirCount)] = SampleConnector(rng)
	}
	return b
}
