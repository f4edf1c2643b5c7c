package parameter

import "math"

// Camera placement; the visible tunnel span is derived from it
const (
	CameraX = 0.0
	CameraY = 5.0
	CameraZ = 6.0

	// CameraAngle is the downward pitch; must exceed CameraHalfFOV
	CameraAngle = math.Pi / 6
	// CameraHalfFOV is half the vertical field of view
	CameraHalfFOV = math.Pi / 8

	// SceneRounding snaps the scene boundaries to multiples of this length
	SceneRounding = 10.0
)

// Tunnel cross-section
const (
	// TunnelMargin is extra width beyond the outer rails
	TunnelMargin = 0.5
	// TunnelSideDrop and TunnelTopRise place the wall top and arch apex relative to CameraY
	TunnelSideDrop = 1.5
	TunnelTopRise  = 1.0
)
