package vmath

// Interval is a closed range on one axis; Max >= Min
type Interval struct {
	Max, Min float64
}

// Bound3 is an axis-aligned box as one interval per axis
type Bound3 struct {
	X, Y, Z Interval
}

// Extents is a local-space box described by its six faces
// Front faces +Z (toward the viewer), Rear faces -Z
type Extents struct {
	Right, Left float64
	Up, Down    float64
	Front, Rear float64
}

// Depth is the Z span of the box
func (e Extents) Depth() float64 {
	return e.Front - e.Rear
}

// Corners returns the eight corner points of the box
func (e Extents) Corners() [8]Vec3F {
	var c [8]Vec3F
	i := 0
	for _, x := range [2]float64{e.Right, e.Left} {
		for _, y := range [2]float64{e.Up, e.Down} {
			for _, z := range [2]float64{e.Front, e.Rear} {
				c[i] = Vec3F{x, y, z}
				i++
			}
		}
	}
	return c
}

// ComputeBound transforms all eight corners of e through world and returns
// the enclosing axis-aligned box
func ComputeBound(e Extents, world Mat4) Bound3 {
	corners := e.Corners()
	lo := world.Apply(corners[0])
	hi := lo
	for _, c := range corners[1:] {
		p := world.Apply(c)
		lo = V3FMin(lo, p)
		hi = V3FMax(hi, p)
	}
	return Bound3{
		X: Interval{Max: hi.X, Min: lo.X},
		Y: Interval{Max: hi.Y, Min: lo.Y},
		Z: Interval{Max: hi.Z, Min: lo.Z},
	}
}

// IntervalsOverlap reports whether closed intervals intersect; touching counts
func IntervalsOverlap(a, b Interval) bool {
	return a.Min <= b.Max && b.Min <= a.Max
}

// BoundsOverlap is the collision predicate: all three axes must overlap.
// Discrete test only; a box moving farther than its depth in one frame can
// pass through a thin box without ever overlapping it.
func BoundsOverlap(a, b Bound3) bool {
	return IntervalsOverlap(a.X, b.X) &&
		IntervalsOverlap(a.Y, b.Y) &&
		IntervalsOverlap(a.Z, b.Z)
}

// FootprintOverlap tests only the horizontal (X) and depth (Z) axes
func FootprintOverlap(a, b Bound3) bool {
	return IntervalsOverlap(a.X, b.X) && IntervalsOverlap(a.Z, b.Z)
}
