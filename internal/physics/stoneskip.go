package physics

import (
	"fmt"
	"math"

	"github.com/san-kum/skipstone/internal/dynamo"
	"github.com/san-kum/skipstone/internal/geom"
	"github.com/san-kum/skipstone/internal/hydro"
	"github.com/san-kum/skipstone/internal/phase"
	"github.com/san-kum/skipstone/internal/stone"
)

// State vector layout for the stone model.
const (
	IX = iota
	IY
	IVX
	IVY
	ITheta
	IOmega
	stoneStateDim
)

// StoneSkip is the rigid thin-body skipping model. The derivative dispatches
// on the current contact phase; the phase itself is advanced once per step by
// the simulator via AdvancePhase, so Derive stays side-effect free across the
// integrator's trial evaluations.
type StoneSkip struct {
	props      *stone.Properties
	env        hydro.Environment
	classifier *phase.Classifier
}

func NewStoneSkip(props *stone.Properties, env hydro.Environment) *StoneSkip {
	return &StoneSkip{
		props:      props,
		env:        env,
		classifier: phase.NewClassifier(env.Thresholds),
	}
}

func (s *StoneSkip) StateDim() int { return stoneStateDim }

func (s *StoneSkip) Phase() phase.Phase { return s.classifier.Phase() }

func (s *StoneSkip) Properties() *stone.Properties { return s.props }

func (s *StoneSkip) Environment() hydro.Environment { return s.env }

// Reset returns the phase machine to airborne for a fresh run.
func (s *StoneSkip) Reset() { s.classifier.Reset() }

// AdvancePhase updates the contact regime from the committed state. Called
// exactly once per integrator step, never on trial states.
func (s *StoneSkip) AdvancePhase(x dynamo.State, t, dt float64) phase.Phase {
	sub := s.submerged(x)
	fraction := 0.0
	if s.props.Area > 0 {
		fraction = sub.Area / s.props.Area
	}
	speed := math.Hypot(x[IVX], x[IVY])
	return s.classifier.Update(sub.Area, fraction, x[IVY], speed, t, dt)
}

func (s *StoneSkip) submerged(x dynamo.State) hydro.Submerged {
	pos := geom.Vec{X: x[IX], Y: x[IY]}

	// Cheap reject: the whole body is above the line when even the farthest
	// outline point cannot reach it.
	if pos.Y-s.props.DMax() > s.env.WaterLevel {
		return hydro.Submerged{}
	}
	return hydro.ComputeSubmerged(s.props.Outline, pos, x[ITheta], s.env.WaterLevel)
}

func (s *StoneSkip) Derive(x dynamo.State, t float64) dynamo.State {
	switch s.classifier.Phase() {
	case phase.Bouncing:
		return s.deriveBouncing(x, t)
	case phase.Sinking:
		return s.deriveSinking(x)
	default:
		return s.deriveFlying(x)
	}
}

func (s *StoneSkip) deriveFlying(x dynamo.State) dynamo.State {
	return dynamo.State{
		x[IVX], x[IVY],
		0, -s.env.Gravity,
		x[IOmega], 0,
	}
}

func (s *StoneSkip) deriveBouncing(x dynamo.State, t float64) dynamo.State {
	// The submerged polygon is recomputed from the trial state itself;
	// reusing the previous step's contact geometry here injects a half-step
	// of lag into every RK4 stage and destabilizes shallow contact.
	sub := s.submerged(x)
	pos := geom.Vec{X: x[IX], Y: x[IY]}
	vel := geom.Vec{X: x[IVX], Y: x[IVY]}

	fHydro := s.env.LiftForce(vel, x[ITheta], sub.Area)
	fHydro = fHydro.Add(s.env.DragForce(vel, sub.Area))
	fHydro = fHydro.Add(s.env.VerticalDamping(vel.Y, sub.Area))
	fHydro = fHydro.Add(s.env.SuctionForce(sub.Area, sub.Depth, vel.Y, s.classifier.ContactTime(t)))

	return s.accelerate(x, pos, fHydro, sub)
}

// deriveSinking is the settled full-drag variant: no lift, no suction, just
// dissipation until the body comes to rest below the surface.
func (s *StoneSkip) deriveSinking(x dynamo.State) dynamo.State {
	sub := s.submerged(x)
	pos := geom.Vec{X: x[IX], Y: x[IY]}
	vel := geom.Vec{X: x[IVX], Y: x[IVY]}

	fHydro := s.env.DragForce(vel, sub.Area)
	fHydro = fHydro.Add(s.env.VerticalDamping(vel.Y, sub.Area))

	return s.accelerate(x, pos, fHydro, sub)
}

func (s *StoneSkip) accelerate(x dynamo.State, pos, fHydro geom.Vec, sub hydro.Submerged) dynamo.State {
	gravity := geom.Vec{Y: -s.props.Mass * s.env.Gravity}
	fTotal := fHydro.Add(gravity)

	mEff := s.env.EffectiveMass(s.props.Mass, sub.Area, s.props.Thickness)
	iEff := s.env.EffectiveInertia(s.props.PitchInertia, sub.Area, s.props.Thickness)

	accel := fTotal.Scale(1 / mEff)

	alpha := 0.0
	if iEff > 0 {
		torque := s.env.Torque(pos, sub.Centroid, fHydro, sub.Area, x[IOmega])
		alpha = s.env.ClampAngularAccel(torque / iEff)
	}

	return dynamo.State{
		x[IVX], x[IVY],
		accel.X, accel.Y,
		x[IOmega], alpha,
	}
}

// Energy returns the total mechanical energy: translational and rotational
// kinetic energy plus gravitational potential.
func (s *StoneSkip) Energy(x dynamo.State) float64 {
	v2 := x[IVX]*x[IVX] + x[IVY]*x[IVY]
	ke := 0.5*s.props.Mass*v2 + 0.5*s.props.PitchInertia*x[IOmega]*x[IOmega]
	pe := s.props.Mass * s.env.Gravity * x[IY]
	return ke + pe
}

// Diagnostics is the read-only per-step view exposed to rendering and UI.
type Diagnostics struct {
	Phase     phase.Phase
	Submerged hydro.Submerged
	Force     geom.Vec
	Torque    float64
}

// Diagnostics recomputes the submerged geometry and net hydrodynamic
// force/torque for the given committed state. It never mutates the model.
func (s *StoneSkip) Diagnostics(x dynamo.State, t float64) Diagnostics {
	sub := s.submerged(x)
	d := Diagnostics{Phase: s.classifier.Phase(), Submerged: sub}
	if sub.Area <= 0 {
		return d
	}

	pos := geom.Vec{X: x[IX], Y: x[IY]}
	vel := geom.Vec{X: x[IVX], Y: x[IVY]}

	f := s.env.DragForce(vel, sub.Area)
	f = f.Add(s.env.VerticalDamping(vel.Y, sub.Area))
	if s.classifier.Phase() != phase.Sinking {
		f = f.Add(s.env.LiftForce(vel, x[ITheta], sub.Area))
		f = f.Add(s.env.SuctionForce(sub.Area, sub.Depth, vel.Y, s.classifier.ContactTime(t)))
	}

	d.Force = f
	d.Torque = s.env.Torque(pos, sub.Centroid, f, sub.Area, x[IOmega])
	return d
}

// GetParams exposes the tunable environment coefficients.
func (s *StoneSkip) GetParams() map[string]float64 {
	return map[string]float64{
		"gravity":    s.env.Gravity,
		"rho":        s.env.Rho,
		"lift":       s.env.Lift,
		"drag":       s.env.Drag,
		"damp_lin":   s.env.DampLinear,
		"damp_quad":  s.env.DampQuadratic,
		"suction":    s.env.Suction,
		"added_mass": s.env.AddedMass,
		"pitch_damp": s.env.PitchDamp,
	}
}

// SetParam rebuilds the environment with one coefficient replaced. The
// environment value itself is never mutated mid-run; callers reset the run
// after tuning.
func (s *StoneSkip) SetParam(name string, value float64) error {
	env := s.env
	switch name {
	case "gravity":
		env.Gravity = value
	case "rho":
		env.Rho = value
	case "lift":
		env.Lift = value
	case "drag":
		env.Drag = value
	case "damp_lin":
		env.DampLinear = value
	case "damp_quad":
		env.DampQuadratic = value
	case "suction":
		env.Suction = value
	case "added_mass":
		env.AddedMass = value
	case "pitch_damp":
		env.PitchDamp = value
	default:
		return fmt.Errorf("unknown param: %s", name)
	}
	s.env = env
	return nil
}
