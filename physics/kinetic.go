package physics

import "math"

// Ballistic advances height h and vertical velocity v under constant gravity
// g for dt seconds. Uses the closed-form step h += v*dt - g*dt²/2 so the arc
// is independent of how the frame deltas are sliced.
func Ballistic(h, v, g, dt float64) (float64, float64) {
	return h + v*dt - 0.5*g*dt*dt, v - g*dt
}

// LaunchVelocity is the upward speed that peaks at height under gravity
func LaunchVelocity(height, g float64) float64 {
	if height <= 0 || g <= 0 {
		return 0
	}
	return math.Sqrt(2 * g * height)
}

// Approach moves x toward target by at most step. Returns the new value and
// true once target is reached; eps absorbs accumulated float drift so that
// arrival snaps exactly onto target.
func Approach(x, target, step, eps float64) (float64, bool) {
	d := target - x
	if d < 0 {
		d = -d
	}
	if step >= d-eps {
		return target, true
	}
	if target > x {
		return x + step, false
	}
	return x - step, false
}
