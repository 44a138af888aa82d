// Package hydro implements the hydrodynamic force and torque model for a
// thin body partially submerged in a flat water surface. Each physical
// effect (lift, drag, vertical damping, suction, added mass) is a separate
// pure function combined by the stone model.
package hydro

import "github.com/san-kum/skipstone/internal/phase"

// Environment holds the fluid and force coefficients for a run. It is
// constructed once before the simulation starts and never mutated mid-run;
// tuning changes build a new value.
type Environment struct {
	// Gravity is the downward gravitational acceleration (m/s^2).
	Gravity float64

	// WaterLevel is the y coordinate of the surface; the fluid fills the
	// half-plane below it.
	WaterLevel float64

	// Rho is the fluid density (kg/m^3). Every hydrodynamic term scales
	// multiplicatively through it.
	Rho float64

	// Lift and Drag are the dimensionless force coefficients.
	Lift float64
	Drag float64

	// DampLinear and DampQuadratic form the hybrid vertical damping that
	// suppresses contact oscillation: linear at low speed, quadratic at high.
	DampLinear    float64
	DampQuadratic float64

	// Suction scales the surface-tension adhesion; SuctionDepth and
	// SuctionSpeed bound when it applies.
	Suction      float64
	SuctionDepth float64
	SuctionSpeed float64

	// AddedMass scales the displaced-fluid mass folded into the effective
	// inertia. This is the main stabilizer against acceleration blow-up.
	AddedMass float64

	// PitchDamp resists pitch rotation while in contact.
	PitchDamp float64

	// MaxLeverArm clamps the distance between the body centroid and the
	// pressure center, bounding the hydrodynamic torque.
	MaxLeverArm float64

	// MaxAngularAccel clamps the pitch acceleration (rad/s^2).
	MaxAngularAccel float64

	// Thresholds drive the phase classifier.
	Thresholds phase.Thresholds
}

// DefaultEnvironment returns coefficients tuned for a palm-sized stone on
// fresh water. Lift is calibrated against the chord-normal velocity form,
// which reads much lower than the raw speed at planing attitudes, so the
// coefficient is well above unity.
func DefaultEnvironment() Environment {
	return Environment{
		Gravity:         9.81,
		WaterLevel:      0,
		Rho:             1000,
		Lift:            5.0,
		Drag:            0.08,
		DampLinear:      1,
		DampQuadratic:   2,
		Suction:         0.5,
		SuctionDepth:    0.02,
		SuctionSpeed:    0.3,
		AddedMass:       1.0,
		PitchDamp:       5,
		MaxLeverArm:     0.2,
		MaxAngularAccel: 500,
		Thresholds: phase.Thresholds{
			ContactArea:    1e-4,
			SinkFraction:   0.6,
			SinkDuration:   0.25,
			MinBounceSpeed: 0.15,
		},
	}
}
