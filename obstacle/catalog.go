// Package obstacle holds the immutable obstacle catalog and the live
// instance pool with its spawn/advance/prune lifecycle.
package obstacle

import (
	"fmt"

	"github.com/lixenwraith/surf-scout/vmath"
)

// Visual is an opaque render tag chosen by the catalog author
type Visual uint8

const (
	VisualRoadBlock Visual = iota
	VisualHurdle
	VisualGate
	VisualTrain
)

func (v Visual) String() string {
	switch v {
	case VisualRoadBlock:
		return "road_block"
	case VisualHurdle:
		return "hurdle"
	case VisualGate:
		return "gate"
	case VisualTrain:
		return "train"
	}
	return "unknown"
}

// Type is an obstacle template. Extents are world units relative to the
// instance origin on the ground at its rail center; Front faces the player.
// Roof > 0 marks an overhead hazard: lethal on body contact, and its top at
// height Roof can be stood on.
type Type struct {
	Name    string
	Extents vmath.Extents
	Roof    float64
	Visual  Visual
}

// IsRoof reports whether the type is an overhead hazard
func (t Type) IsRoof() bool {
	return t.Roof > 0
}

// NearExtent is how far the type reaches from its origin toward the player
func (t Type) NearExtent() float64 {
	return t.Extents.Front
}

// FarExtent is how far the type reaches from its origin away from the player
func (t Type) FarExtent() float64 {
	return -t.Extents.Rear
}

// Catalog is the fixed ordered list of obstacle types of a session
type Catalog struct {
	types []Type
}

// NewCatalog validates and freezes the given types
func NewCatalog(types ...Type) (*Catalog, error) {
	if len(types) == 0 {
		return nil, fmt.Errorf("catalog is empty")
	}
	for i, t := range types {
		e := t.Extents
		if e.Right < e.Left || e.Up < e.Down || e.Front < e.Rear {
			return nil, fmt.Errorf("type %d (%s): inverted extents", i, t.Name)
		}
		if t.Roof < 0 {
			return nil, fmt.Errorf("type %d (%s): negative roof", i, t.Name)
		}
	}
	c := &Catalog{types: make([]Type, len(types))}
	copy(c.types, types)
	return c, nil
}

// DefaultCatalog is the stock obstacle set
func DefaultCatalog() *Catalog {
	c, err := NewCatalog(
		Type{
			Name:    "road_block",
			Extents: vmath.Extents{Right: 0.5, Left: -0.5, Up: 0.5, Down: 0, Front: 0.25, Rear: -0.25},
			Visual:  VisualRoadBlock,
		},
		Type{
			Name:    "hurdle",
			Extents: vmath.Extents{Right: 0.8, Left: -0.8, Up: 0.35, Down: 0, Front: 0.1, Rear: -0.1},
			Visual:  VisualHurdle,
		},
		Type{
			Name:    "gate",
			Extents: vmath.Extents{Right: 0.9, Left: -0.9, Up: 1.2, Down: 0.45, Front: 0.15, Rear: -0.15},
			Roof:    1.2,
			Visual:  VisualGate,
		},
		Type{
			Name:    "train",
			Extents: vmath.Extents{Right: 0.9, Left: -0.9, Up: 1.2, Down: 0, Front: 2, Rear: -2},
			Roof:    1.2,
			Visual:  VisualTrain,
		},
	)
	if err != nil {
		panic(err)
	}
	return c
}

// Len returns the number of types
func (c *Catalog) Len() int {
	return len(c.types)
}

// Type returns a copy of the template at index i
func (c *Catalog) Type(i int) Type {
	return c.types[i]
}
