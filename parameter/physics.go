package parameter

import "math"

// Jump profiles: each strength has its own gravity so the two arcs can be
// tuned independently
const (
	// JumpHighHeight is the apex height of the high jump in world units
	JumpHighHeight = 1.5
	// JumpHighGravity is the downward acceleration during a high jump
	JumpHighGravity = 15.0

	// JumpLowHeight is the apex height of the low jump
	JumpLowHeight = 0.75
	// JumpLowGravity is the downward acceleration during a low jump
	JumpLowGravity = 15.0

	// FallGravity applies when leaving a roof without jumping
	FallGravity = JumpHighGravity

	// LandingEpsilon absorbs float error when an arc returns to its floor
	LandingEpsilon = 1e-9
)

// Rail switching
const (
	// RailWidth is the lateral spacing between rails
	RailWidth = 2.0
	// RailSwitchSpeed is the constant lateral speed while switching
	RailSwitchSpeed = 10.0
	// RailMin and RailMax bound the rail index
	RailMin = -1
	RailMax = 1
	// RailCount is the number of rails
	RailCount = RailMax - RailMin + 1
	// RailStretch scales the scrolling rail texture along the track
	RailStretch = 3.5
)

// Posture
const (
	// DuckAngularSpeed is the pitch rate toward and away from lying down (2 turns/s)
	DuckAngularSpeed = 2 * math.Pi * 2
	// DuckMaxAngle is the fully ducked pitch
	DuckMaxAngle = math.Pi / 2
	// DuckLiftBase and DuckLiftRange compensate torso height: lift = base + range*cos(angle)
	DuckLiftBase  = 0.15
	DuckLiftRange = 0.35
)

// Sway animation
const (
	// SwayAngularSpeed drives the limb swing phase
	SwayAngularSpeed = 10.0
	// SwayAmplitude is the maximum limb swing angle
	SwayAmplitude = math.Pi / 6
)
