// Package player models the scout's motion as three independent state
// machines (vertical, lateral, posture) stepped in a fixed order each frame.
package player

import (
	"github.com/lixenwraith/surf-scout/config"
	"github.com/lixenwraith/surf-scout/physics"
)

// VerticalState is the jump/fall machine
type VerticalState uint8

const (
	Grounded VerticalState = iota
	Airborne
)

// LateralState is the rail switch machine
type LateralState uint8

const (
	Centered LateralState = iota
	SwitchingLeft
	SwitchingRight
)

// PostureState is the duck/recover machine
type PostureState uint8

const (
	Upright PostureState = iota
	Ducking
	Recovering
)

// JumpKind selects a jump profile
type JumpKind uint8

const (
	JumpHigh JumpKind = iota
	JumpLow
)

func (s VerticalState) String() string {
	switch s {
	case Grounded:
		return "grounded"
	case Airborne:
		return "airborne"
	}
	return "unknown"
}

func (s LateralState) String() string {
	switch s {
	case Centered:
		return "centered"
	case SwitchingLeft:
		return "switching_left"
	case SwitchingRight:
		return "switching_right"
	}
	return "unknown"
}

func (s PostureState) String() string {
	switch s {
	case Upright:
		return "upright"
	case Ducking:
		return "ducking"
	case Recovering:
		return "recovering"
	}
	return "unknown"
}

// Profile is a launch velocity with the gravity that brings it back down
type Profile struct {
	Velocity float64
	Gravity  float64
}

// Params are the motion constants of a session
type Params struct {
	RailWidth   float64
	SwitchSpeed float64
	RailMin     int
	RailMax     int

	High        Profile
	Low         Profile
	FallGravity float64

	DuckSpeed     float64
	SwaySpeed     float64
	SwayAmplitude float64
}

// ParamsFrom derives motion constants from configuration
func ParamsFrom(cfg *config.Config) Params {
	return Params{
		RailWidth:   cfg.Rails.Width,
		SwitchSpeed: cfg.Rails.SwitchSpeed,
		RailMin:     -1,
		RailMax:     1,
		High: Profile{
			Velocity: physics.LaunchVelocity(cfg.Jump.High.Height, cfg.Jump.High.Gravity),
			Gravity:  cfg.Jump.High.Gravity,
		},
		Low: Profile{
			Velocity: physics.LaunchVelocity(cfg.Jump.Low.Height, cfg.Jump.Low.Gravity),
			Gravity:  cfg.Jump.Low.Gravity,
		},
		FallGravity:   cfg.Jump.FallGravity,
		DuckSpeed:     cfg.Posture.DuckSpeed,
		SwaySpeed:     cfg.Posture.SwaySpeed,
		SwayAmplitude: cfg.Posture.SwayAmplitude,
	}
}

func (p Params) profile(k JumpKind) Profile {
	if k == JumpLow {
		return p.Low
	}
	return p.High
}

// State is the complete mutable player state
type State struct {
	CurrX     float64 // lateral offset, continuous
	CurrH     float64 // height of the feet reference above ground
	VelY      float64
	DuckAngle float64 // [0, π/2]
	SwayPhase float64 // [0, 2π)

	Vertical VerticalState
	Lateral  LateralState
	Posture  PostureState

	Jump    JumpKind
	gravity float64
	targetX float64
}
