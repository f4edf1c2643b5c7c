package obstacle

import (
	"github.com/lixenwraith/surf-scout/invariant"
	"github.com/lixenwraith/surf-scout/parameter"
	"github.com/lixenwraith/surf-scout/vmath"
)

// Instance is one live obstacle. Distance is measured along the travel axis
// from the player plane and decreases as the run advances.
type Instance struct {
	TypeIndex     int
	Distance      float64
	Rail          int
	HitZoneActive bool
}

// Pool owns the live instances of a session. Order is not significant.
type Pool struct {
	catalog   *Catalog
	far, near float64
	railWidth float64
	instances []Instance
}

// NewPool creates an empty pool spawning at far and pruning past near
func NewPool(catalog *Catalog, far, near, railWidth float64) *Pool {
	return &Pool{
		catalog:   catalog,
		far:       far,
		near:      near,
		railWidth: railWidth,
		instances: make([]Instance, 0, 16),
	}
}

// Catalog returns the shared read-only catalog
func (p *Pool) Catalog() *Catalog {
	return p.catalog
}

// Far and Near return the scene boundaries
func (p *Pool) Far() float64  { return p.far }
func (p *Pool) Near() float64 { return p.near }

// Spawn adds an instance of the given type at the far boundary
func (p *Pool) Spawn(typeIndex, rail int) Instance {
	if !invariant.Check(typeIndex >= 0 && typeIndex < p.catalog.Len(), "obstacle type out of range") {
		typeIndex = vmath.ClampInt(typeIndex, 0, p.catalog.Len()-1)
	}
	if !invariant.Check(rail >= parameter.RailMin && rail <= parameter.RailMax, "rail index out of range") {
		rail = vmath.ClampInt(rail, parameter.RailMin, parameter.RailMax)
	}
	inst := Instance{
		TypeIndex:     typeIndex,
		Distance:      p.far,
		Rail:          rail,
		HitZoneActive: true,
	}
	p.instances = append(p.instances, inst)
	return inst
}

// AdvanceAll moves every instance toward the player by speed*dt
func (p *Pool) AdvanceAll(dt, speed float64) {
	step := speed * dt
	for i := range p.instances {
		p.instances[i].Distance -= step
	}
}

// PruneLimit is the distance an instance must pass to be fully out of view
func (p *Pool) PruneLimit(inst *Instance) float64 {
	return p.near - p.catalog.Type(inst.TypeIndex).Extents.Depth()
}

// Prune removes instances whose distance has passed the near boundary by
// their own depth. Returns the number removed.
func (p *Pool) Prune() int {
	kept := p.instances[:0]
	for i := range p.instances {
		if p.instances[i].Distance < p.PruneLimit(&p.instances[i]) {
			continue
		}
		kept = append(kept, p.instances[i])
	}
	removed := len(p.instances) - len(kept)
	p.instances = kept
	return removed
}

// Len returns the number of live instances
func (p *Pool) Len() int {
	return len(p.instances)
}

// At returns a pointer to instance i for in-place mutation during a frame
func (p *Pool) At(i int) *Instance {
	return &p.instances[i]
}

// Clear removes every instance
func (p *Pool) Clear() {
	p.instances = p.instances[:0]
}

// Transform places an instance in the world: its rail across, -Distance in depth
func (p *Pool) Transform(inst *Instance) vmath.Mat4 {
	return vmath.Translation(float64(inst.Rail)*p.railWidth, 0, -inst.Distance)
}

// Bound is the world-space hit zone of an instance
func (p *Pool) Bound(inst *Instance) vmath.Bound3 {
	return vmath.ComputeBound(p.catalog.Type(inst.TypeIndex).Extents, p.Transform(inst))
}
