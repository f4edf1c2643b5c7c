// Package render hands world transforms to a draw sink once per visible
// entity per frame, and provides a tcell terminal sink.
package render

import (
	"github.com/lixenwraith/surf-scout/obstacle"
	"github.com/lixenwraith/surf-scout/player"
	"github.com/lixenwraith/surf-scout/vmath"
)

// EntityKind identifies what is being drawn
type EntityKind uint8

const (
	EntityTunnel EntityKind = iota
	EntityRail
	EntityObstacle
	EntityScoutPart
)

func (k EntityKind) String() string {
	switch k {
	case EntityTunnel:
		return "tunnel"
	case EntityRail:
		return "rail"
	case EntityObstacle:
		return "obstacle"
	case EntityScoutPart:
		return "scout_part"
	}
	return "unknown"
}

// Pose summarizes the scout's posture for sinks that draw a single glyph
type Pose uint8

const (
	PoseRun Pose = iota
	PoseDuck
	PoseAir
)

// Variant carries per-entity material data. Extents is the local box that
// Transform places; sinks that only need footprints can bound it directly.
type Variant struct {
	Extents vmath.Extents

	Visual obstacle.Visual // obstacles
	Spent  bool            // obstacle hit zone already consumed

	Part player.PartKind // scout parts
	Pose Pose

	Rail   int     // rails
	Scroll float64 // rail texture offset in [0, 1)
}

// Sink receives draw calls; nothing it returns affects the simulation
type Sink interface {
	Draw(kind EntityKind, transform vmath.Mat4, variant Variant)
}

// SinkFunc adapts a function to Sink
type SinkFunc func(kind EntityKind, transform vmath.Mat4, variant Variant)

func (f SinkFunc) Draw(kind EntityKind, transform vmath.Mat4, variant Variant) {
	f(kind, transform, variant)
}
