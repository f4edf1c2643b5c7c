package player

import (
	"math"

	"github.com/lixenwraith/surf-scout/parameter"
	"github.com/lixenwraith/surf-scout/vmath"
)

// Extents is the scout's collision box in model units
var Extents = vmath.Extents{
	Right: parameter.ScoutRight,
	Left:  parameter.ScoutLeft,
	Up:    parameter.ScoutUp,
	Down:  parameter.ScoutDown,
	Front: parameter.ScoutFront,
	Rear:  parameter.ScoutRear,
}

// Lift is the torso height compensation for a duck angle
func Lift(angle float64) float64 {
	return parameter.DuckLiftBase + parameter.DuckLiftRange*math.Cos(angle)
}

// WorldTransform composes the model placement from current state: lateral
// offset first, then duck pitch with lift, then vertical offset
func (m *Motion) WorldTransform() vmath.Mat4 {
	return vmath.Translation(0, m.CurrH, 0).
		Times(vmath.Translation(0, Lift(m.DuckAngle), 0)).
		Times(vmath.RotationX(m.DuckAngle)).
		Times(vmath.Translation(m.CurrX, 0, 0)).
		Times(vmath.Scaling(parameter.ScoutScale, parameter.ScoutScale, parameter.ScoutScale))
}

// Bound is the world-space collision box for the current state
func (m *Motion) Bound() vmath.Bound3 {
	return vmath.ComputeBound(Extents, m.WorldTransform())
}

// PartKind names one drawable piece of the scout
type PartKind uint8

const (
	PartBody PartKind = iota
	PartHead
	PartLeftLeg
	PartRightLeg
	PartLeftArm
	PartRightArm
)

// Part is a body piece with its world transform
type Part struct {
	Kind      PartKind
	Transform vmath.Mat4
}

var partLayout = [...]struct {
	kind PartKind
	def  *parameter.ScoutPart
}{
	{PartBody, &parameter.ScoutBody},
	{PartHead, &parameter.ScoutHead},
	{PartLeftLeg, &parameter.ScoutLeftLeg},
	{PartRightLeg, &parameter.ScoutRightLeg},
	{PartLeftArm, &parameter.ScoutLeftArm},
	{PartRightArm, &parameter.ScoutRightArm},
}

// Parts returns the body pieces posed with the current limb swing
func (m *Motion) Parts() []Part {
	world := m.WorldTransform()
	swing := m.Swing()

	parts := make([]Part, 0, len(partLayout))
	for _, p := range partLayout {
		d := p.def
		t := world
		switch d.SwingAxis {
		case 'x':
			t = t.Times(vmath.RotationX(d.SwingSign * swing))
		case 'y':
			t = t.Times(vmath.RotationY(d.SwingSign * swing))
		}
		t = t.Times(vmath.Translation(d.OffsetX, d.OffsetY, 0))
		if d.Roll != 0 {
			t = t.Times(vmath.RotationZ(d.Roll))
		}
		t = t.Times(vmath.Scaling(d.ScaleX, d.ScaleY, d.ScaleZ))
		parts = append(parts, Part{Kind: p.kind, Transform: t})
	}
	return parts
}
