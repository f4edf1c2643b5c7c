package parameter

import "math"

// Scout model, in model units before ScoutScale
const (
	ScoutScale = 0.3

	// Collision extents enclosing head, torso, arms and legs
	ScoutRight = 1.0
	ScoutLeft  = -1.0
	ScoutUp    = 1.55
	ScoutDown  = -1.6
	ScoutFront = 0.5
	ScoutRear  = -0.5
)

// ScoutPart is a fixed model-space placement of one body sphere
type ScoutPart struct {
	OffsetX, OffsetY float64
	ScaleX, ScaleY   float64
	ScaleZ           float64
	Roll             float64 // rotation about Z before scaling
	SwingAxis        byte    // 'x' or 'y': axis of the sway rotation, 0 for none
	SwingSign        float64
}

// Scout body layout
var (
	ScoutBody     = ScoutPart{ScaleX: 0.5, ScaleY: 0.75, ScaleZ: 0.5}
	ScoutHead     = ScoutPart{OffsetY: 1.1, ScaleX: 0.45, ScaleY: 0.45, ScaleZ: 0.45}
	ScoutLeftLeg  = ScoutPart{OffsetX: -0.3, OffsetY: -1, ScaleX: 0.25, ScaleY: 0.6, ScaleZ: 0.25, SwingAxis: 'x', SwingSign: 1}
	ScoutRightLeg = ScoutPart{OffsetX: 0.3, OffsetY: -1, ScaleX: 0.25, ScaleY: 0.6, ScaleZ: 0.25, SwingAxis: 'x', SwingSign: -1}
	ScoutLeftArm  = ScoutPart{OffsetX: -0.8, Roll: -math.Pi / 4, ScaleX: 0.25, ScaleY: 0.6, ScaleZ: 0.25, SwingAxis: 'y', SwingSign: 1}
	ScoutRightArm = ScoutPart{OffsetX: 0.8, Roll: math.Pi / 4, ScaleX: 0.25, ScaleY: 0.6, ScaleZ: 0.25, SwingAxis: 'y', SwingSign: 1}
)
