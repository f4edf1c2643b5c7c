package render

import (
	"math"

	"github.com/lixenwraith/surf-scout/obstacle"
	"github.com/lixenwraith/surf-scout/parameter"
	"github.com/lixenwraith/surf-scout/player"
	"github.com/lixenwraith/surf-scout/vmath"
)

// railHalfWidth is the drawn half width of one rail
const railHalfWidth = 0.1

// partExtents is the unit box each scout part transform scales
var partExtents = vmath.Extents{Right: 0.5, Left: -0.5, Up: 0.5, Down: -0.5, Front: 0.5, Rear: -0.5}

// Scene is the read-only view of one frame
type Scene struct {
	Obstacles *obstacle.Pool
	Player    *player.Motion

	Near, Far    float64
	TunnelWidth  float64
	TunnelHeight float64
	RailWidth    float64
	RailScroll   float64
	ScoutVisible bool
}

// RailScroll is the rail texture offset for a travelled distance, in [0, 1)
func RailScroll(travelled, railWidth, stretch float64) float64 {
	if railWidth <= 0 || stretch <= 0 {
		return 0
	}
	s := travelled / railWidth / stretch
	return s - math.Floor(s)
}

// Draw emits the tunnel, the rails, every live obstacle and, when visible,
// every scout part
func Draw(sink Sink, sc Scene) {
	length := sc.Far - sc.Near
	center := vmath.Translation(0, 0, -(sc.Near + length/2))

	sink.Draw(EntityTunnel, center, Variant{
		Extents: vmath.Extents{
			Right: sc.TunnelWidth / 2, Left: -sc.TunnelWidth / 2,
			Up: sc.TunnelHeight, Down: 0,
			Front: length / 2, Rear: -length / 2,
		},
	})

	for rail := parameter.RailMin; rail <= parameter.RailMax; rail++ {
		sink.Draw(EntityRail, vmath.Translation(float64(rail)*sc.RailWidth, 0, 0).Times(center), Variant{
			Extents: vmath.Extents{
				Right: railHalfWidth, Left: -railHalfWidth,
				Front: length / 2, Rear: -length / 2,
			},
			Rail:   rail,
			Scroll: sc.RailScroll,
		})
	}

	if pool := sc.Obstacles; pool != nil {
		cat := pool.Catalog()
		for i := 0; i < pool.Len(); i++ {
			inst := pool.At(i)
			typ := cat.Type(inst.TypeIndex)
			sink.Draw(EntityObstacle, pool.Transform(inst), Variant{
				Extents: typ.Extents,
				Visual:  typ.Visual,
				Spent:   !inst.HitZoneActive,
				Rail:    inst.Rail,
			})
		}
	}

	if sc.Player == nil || !sc.ScoutVisible {
		return
	}
	pose := poseOf(sc.Player)
	for _, part := range sc.Player.Parts() {
		sink.Draw(EntityScoutPart, part.Transform, Variant{
			Extents: partExtents,
			Part:    part.Kind,
			Pose:    pose,
			Rail:    sc.Player.Rail(),
		})
	}
}

func poseOf(m *player.Motion) Pose {
	switch {
	case m.Vertical == player.Airborne:
		return PoseAir
	case m.Posture != player.Upright:
		return PoseDuck
	}
	return PoseRun
}
