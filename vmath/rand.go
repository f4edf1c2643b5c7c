package vmath

import "math"

// Source yields uniform draws in [0, 1)
type Source interface {
	Float64() float64
}

// FastRand is a xorshift64 generator, deterministic per seed
type FastRand struct {
	state uint64
}

func NewFastRand(seed uint64) *FastRand {
	if seed == 0 {
		seed = 1
	}
	return &FastRand{state: seed}
}

func (r *FastRand) Next() uint64 {
	x := r.state
	x ^= x << 13
	x ^= x >> 17
	x ^= x << 5
	r.state = x
	return x
}

func (r *FastRand) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	return int(r.Next() % uint64(n))
}

// Float64 uses the top 53 bits for a uniform value in [0, 1)
func (r *FastRand) Float64() float64 {
	return float64(r.Next()>>11) / (1 << 53)
}

// largestBelowOne is the greatest float64 strictly less than 1
var largestBelowOne = math.Nextafter(1, 0)

// Unit clamps an untrusted draw into [0, 1); NaN maps to 0
func Unit(v float64) float64 {
	if v != v || v < 0 {
		return 0
	}
	if v >= 1 {
		return largestBelowOne
	}
	return v
}

// Pick returns a uniform index in [0, n) from a draw in [0, 1)
func Pick(src Source, n int) int {
	if n <= 0 {
		return 0
	}
	i := int(Unit(src.Float64()) * float64(n))
	if i >= n {
		i = n - 1
	}
	return i
}
