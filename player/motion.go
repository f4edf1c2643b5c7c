package player

import (
	"math"

	"github.com/lixenwraith/surf-scout/input"
	"github.com/lixenwraith/surf-scout/invariant"
	"github.com/lixenwraith/surf-scout/parameter"
	"github.com/lixenwraith/surf-scout/physics"
	"github.com/lixenwraith/surf-scout/vmath"
)

// Report lists the transitions that happened during one Update
type Report struct {
	Jumped      bool
	JumpKind    JumpKind
	Landed      bool
	Fell        bool
	SwitchStart bool
	TargetRail  int
	DuckStart   bool
}

// Motion owns the player state and steps it once per frame
type Motion struct {
	State
	params Params
}

func NewMotion(p Params) *Motion {
	return &Motion{params: p}
}

// Params returns the motion constants
func (m *Motion) Params() Params {
	return m.params
}

// Reset returns every sub-machine to its initial state on the center rail
func (m *Motion) Reset() {
	m.State = State{}
}

// Rail is the rail index derived from the continuous lateral offset
func (m *Motion) Rail() int {
	return int(math.Floor(m.CurrX/m.params.RailWidth + 0.5))
}

// Update steps vertical, lateral and posture machines in that order, then
// the sway animation. floor is the supporting height under the player this
// frame, re-derived by the caller every frame.
func (m *Motion) Update(dt, floor float64, in input.Intents) Report {
	var r Report
	if !invariant.Check(dt >= 0, "negative frame delta") {
		dt = 0
	}

	m.updateVertical(dt, floor, in, &r)
	m.updateLateral(dt, in, &r)
	m.updatePosture(dt, in, &r)
	m.updateSway(dt)

	return r
}

func (m *Motion) updateVertical(dt, floor float64, in input.Intents, r *Report) {
	if m.Vertical == Grounded {
		switch {
		case m.CurrH > floor+parameter.LandingEpsilon:
			// Support vanished (ran off a roof): free fall from rest
			m.Vertical = Airborne
			m.VelY = 0
			m.gravity = m.params.FallGravity
			r.Fell = true
		default:
			m.CurrH = floor
			if (in.JumpHigh || in.JumpLow) && m.Posture == Upright {
				kind := JumpHigh
				if !in.JumpHigh {
					kind = JumpLow
				}
				prof := m.params.profile(kind)
				m.Vertical = Airborne
				m.Jump = kind
				m.VelY = prof.Velocity
				m.gravity = prof.Gravity
				r.Jumped = true
				r.JumpKind = kind
			}
		}
	}

	if m.Vertical == Airborne {
		h, v := physics.Ballistic(m.CurrH, m.VelY, m.gravity, dt)
		if h <= floor+parameter.LandingEpsilon && v <= 0 {
			h, v = floor, 0
			m.Vertical = Grounded
			r.Landed = true
		}
		m.CurrH, m.VelY = h, v
	}

	if !invariant.Check(m.CurrH >= floor-parameter.LandingEpsilon, "player below floor") {
		m.CurrH = floor
	}
}

func (m *Motion) updateLateral(dt float64, in input.Intents, r *Report) {
	if m.Lateral == Centered && in.MoveLeft != in.MoveRight {
		rail := m.Rail()
		switch {
		case in.MoveLeft && rail > m.params.RailMin:
			m.Lateral = SwitchingLeft
			m.targetX = float64(rail-1) * m.params.RailWidth
			r.SwitchStart, r.TargetRail = true, rail-1
		case in.MoveRight && rail < m.params.RailMax:
			m.Lateral = SwitchingRight
			m.targetX = float64(rail+1) * m.params.RailWidth
			r.SwitchStart, r.TargetRail = true, rail+1
		}
	}

	if m.Lateral == Centered {
		return
	}

	x, arrived := physics.Approach(m.CurrX, m.targetX, m.params.SwitchSpeed*dt, parameter.LandingEpsilon)
	m.CurrX = x
	if arrived {
		m.Lateral = Centered
	}

	rail := m.Rail()
	if !invariant.Check(rail >= m.params.RailMin && rail <= m.params.RailMax, "rail index out of range") {
		m.CurrX = float64(vmath.ClampInt(rail, m.params.RailMin, m.params.RailMax)) * m.params.RailWidth
		m.Lateral = Centered
	}
}

func (m *Motion) updatePosture(dt float64, in input.Intents, r *Report) {
	grounded := m.Vertical == Grounded

	switch m.Posture {
	case Upright, Recovering:
		if in.DuckHeld && grounded {
			if m.Posture == Upright {
				r.DuckStart = true
			}
			m.Posture = Ducking
		}
	case Ducking:
		if !in.DuckHeld {
			m.Posture = Recovering
		}
	}

	switch m.Posture {
	case Ducking:
		m.DuckAngle = math.Min(parameter.DuckMaxAngle, m.DuckAngle+dt*m.params.DuckSpeed)
	case Recovering:
		m.DuckAngle = math.Max(0, m.DuckAngle-dt*m.params.DuckSpeed)
		if m.DuckAngle == 0 {
			m.Posture = Upright
		}
	}
}

// updateSway advances the limb phase; frozen while ducking or recovering
func (m *Motion) updateSway(dt float64) {
	if m.Posture != Upright {
		return
	}
	m.SwayPhase = vmath.WrapAngle(m.SwayPhase + dt*m.params.SwaySpeed)
}

// Swing is the current limb swing angle, zero unless upright
func (m *Motion) Swing() float64 {
	if m.Posture != Upright {
		return 0
	}
	return m.params.SwayAmplitude * math.Cos(m.SwayPhase)
}
