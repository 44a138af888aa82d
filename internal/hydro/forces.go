package hydro

import (
	"math"

	"github.com/san-kum/skipstone/internal/geom"
)

// minSpeed guards direction normalization at near-rest velocities.
const minSpeed = 1e-6

// LiftForce returns the planing lift on the submerged area. The magnitude
// scales with the squared velocity component normal to the chord at pitch
// angle theta; the direction is perpendicular to the velocity with the
// vertical component always upward, so lift never drives the body deeper.
func (e *Environment) LiftForce(v geom.Vec, theta, area float64) geom.Vec {
	speed := v.Length()
	if area <= 0 || speed < minSpeed {
		return geom.Vec{}
	}
	// Planing lift needs motion across the surface. A body falling straight
	// down generates no lift, only drag and damping.
	if math.Abs(v.X) < minSpeed {
		return geom.Vec{}
	}

	chordNormal := geom.Vec{X: -math.Sin(theta), Y: math.Cos(theta)}
	vn := v.Dot(chordNormal)

	dir := v.Scale(1 / speed).Perp()
	if dir.Y < 0 {
		dir = dir.Scale(-1)
	}

	return dir.Scale(0.5 * e.Rho * e.Lift * area * vn * vn)
}

// DragForce returns the form drag, anti-parallel to the velocity. Pure
// dissipation: its power is never positive.
func (e *Environment) DragForce(v geom.Vec, area float64) geom.Vec {
	speed := v.Length()
	if area <= 0 || speed < minSpeed {
		return geom.Vec{}
	}
	return v.Scale(-0.5 * e.Rho * e.Drag * area * speed)
}

// VerticalDamping returns the hybrid linear+quadratic damping force on the
// vertical velocity component. The linear term settles slow surface contact,
// the quadratic term absorbs hard impacts; both oppose vy.
func (e *Environment) VerticalDamping(vy, area float64) geom.Vec {
	if area <= 0 {
		return geom.Vec{}
	}
	mag := 0.5 * e.Rho * area * (e.DampLinear + e.DampQuadratic*math.Abs(vy))
	return geom.Vec{Y: -mag * vy}
}

// SuctionForce models surface-tension adhesion: a small downward pull active
// only at shallow depth and low vertical speed, fading linearly with speed
// and with time since contact began. A body moving upward fast enough to
// leave the water is never held back.
func (e *Environment) SuctionForce(area, depth, vy, contactTime float64) geom.Vec {
	if area <= 0 || e.Suction == 0 {
		return geom.Vec{}
	}
	if depth > e.SuctionDepth || vy > 0 {
		return geom.Vec{}
	}
	speed := math.Abs(vy)
	if speed >= e.SuctionSpeed {
		return geom.Vec{}
	}

	fade := (1 - speed/e.SuctionSpeed) / (1 + contactTime)
	return geom.Vec{Y: -e.Suction * e.Rho * area * e.Gravity * fade}
}

// EffectiveMass folds the co-accelerated displaced fluid into the
// translational inertia. Recomputed each evaluation from the instantaneous
// submerged area.
func (e *Environment) EffectiveMass(mass, area, thickness float64) float64 {
	return mass + e.AddedMass*e.Rho*area*thickness
}

// EffectiveInertia folds the displaced fluid into the pitch inertia, using
// the equivalent-disc moment of the submerged area.
func (e *Environment) EffectiveInertia(inertia, area, thickness float64) float64 {
	displaced := e.AddedMass * e.Rho * area * thickness
	return inertia + displaced*area/(2*math.Pi)
}

// Torque returns the pitch torque: the hydrodynamic force applied at the
// pressure center (the submerged centroid), with the lever arm clamped so a
// stray pressure center cannot explode the moment, plus pitch damping
// proportional to the angular velocity.
func (e *Environment) Torque(pos, pressureCenter, force geom.Vec, area, omega float64) float64 {
	if area <= 0 {
		return 0
	}

	arm := pressureCenter.Sub(pos)
	if e.MaxLeverArm > 0 && arm.LengthSq() > e.MaxLeverArm*e.MaxLeverArm {
		arm = arm.Normalize().Scale(e.MaxLeverArm)
	}

	damping := -0.5 * e.Rho * area * e.PitchDamp * omega
	return arm.Cross(force) + damping
}

// ClampAngularAccel bounds the pitch acceleration to keep a thin, light body
// from flipping off to infinity in a single step.
func (e *Environment) ClampAngularAccel(alpha float64) float64 {
	if e.MaxAngularAccel <= 0 {
		return alpha
	}
	if alpha > e.MaxAngularAccel {
		return e.MaxAngularAccel
	}
	if alpha < -e.MaxAngularAccel {
		return -e.MaxAngularAccel
	}
	return alpha
}
