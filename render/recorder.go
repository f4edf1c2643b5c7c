package render

import "github.com/lixenwraith/surf-scout/vmath"

// Call is one recorded draw
type Call struct {
	Kind      EntityKind
	Transform vmath.Mat4
	Variant   Variant
}

// Recorder is a Sink that keeps every call, for tests and replays
type Recorder struct {
	Calls []Call
}

func (r *Recorder) Draw(kind EntityKind, transform vmath.Mat4, variant Variant) {
	r.Calls = append(r.Calls, Call{Kind: kind, Transform: transform, Variant: variant})
}

// Count returns the number of calls of one kind
func (r *Recorder) Count(kind EntityKind) int {
	n := 0
	for _, c := range r.Calls {
		if c.Kind == kind {
			n++
		}
	}
	return n
}

// Reset drops recorded calls
func (r *Recorder) Reset() {
	r.Calls = r.Calls[:0]
}
