package vmath

import "math"

// Clamp restricts v to [lo, hi]
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// ClampInt restricts v to [lo, hi]
func ClampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// ApproachExp moves current toward target with exponential smoothing
// tau is the time constant in seconds; tau <= 0 snaps to target
func ApproachExp(current, target, tau, dt float64) float64 {
	if tau <= 0 {
		return target
	}
	k := 1 - math.Exp(-dt/tau)
	return current + (target-current)*k
}

// WrapAngle maps a to [0, 2π)
func WrapAngle(a float64) float64 {
	a = math.Mod(a, 2*math.Pi)
	if a < 0 {
		a += 2 * math.Pi
	}
	if a >= 2*math.Pi {
		a = 0
	}
	return a
}
