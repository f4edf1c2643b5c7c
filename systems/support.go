package systems

import (
	"github.com/lixenwraith/surf-scout/engine"
	"github.com/lixenwraith/surf-scout/obstacle"
	"github.com/lixenwraith/surf-scout/parameter"
	"github.com/lixenwraith/surf-scout/vmath"
)

// Support returns the floor under the player at height h and the index of
// the roof instance providing it, or (0, -1) for the ground. A roof counts
// when its top is at or below h and its footprint overlaps the player's.
func Support(w *engine.World, h float64) (floor float64, index int) {
	pool := w.Obstacles
	cat := pool.Catalog()
	pb := w.Player.Bound()

	index = -1
	for i := 0; i < pool.Len(); i++ {
		inst := pool.At(i)
		typ := cat.Type(inst.TypeIndex)
		if !supportLevel(typ, h) || typ.Roof <= floor {
			continue
		}
		if !vmath.FootprintOverlap(pb, pool.Bound(inst)) {
			continue
		}
		floor, index = typ.Roof, i
	}
	return floor, index
}

// supportLevel reports whether typ has a roof at or below h. Such a roof is
// something to stand on, never a strike, even when it is not the highest one
// under the player.
func supportLevel(typ obstacle.Type, h float64) bool {
	return typ.IsRoof() && typ.Roof <= h+parameter.LandingEpsilon
}
