package hydro

import (
	"math"
	"testing"

	"github.com/san-kum/skipstone/internal/geom"
)

func TestZeroDensityKillsAllHydroTerms(t *testing.T) {
	env := DefaultEnvironment()
	env.Rho = 0

	v := geom.Vec{X: 5, Y: -2}
	area := 0.005

	if f := env.LiftForce(v, 0.2, area); f != (geom.Vec{}) {
		t.Errorf("lift should vanish with zero density, got %+v", f)
	}
	if f := env.DragForce(v, area); f != (geom.Vec{}) {
		t.Errorf("drag should vanish with zero density, got %+v", f)
	}
	if f := env.VerticalDamping(-2, area); f != (geom.Vec{}) {
		t.Errorf("damping should vanish with zero density, got %+v", f)
	}
	if f := env.SuctionForce(area, 0.01, -0.1, 0.5); f != (geom.Vec{}) {
		t.Errorf("suction should vanish with zero density, got %+v", f)
	}
	if m := env.EffectiveMass(0.3, area, 0.01); m != 0.3 {
		t.Errorf("added mass should vanish with zero density, got %f", m)
	}
	if tq := env.Torque(geom.Vec{}, geom.Vec{X: 0.1}, geom.Vec{}, area, 3); tq != 0 {
		t.Errorf("pitch damping should vanish with zero density, got %f", tq)
	}
}

func TestLiftOpposesDiving(t *testing.T) {
	env := DefaultEnvironment()

	// Forward and descending: lift must point up regardless of which
	// perpendicular the velocity picks.
	for _, v := range []geom.Vec{{X: 5, Y: -2}, {X: -5, Y: -2}, {X: 3, Y: 1}} {
		f := env.LiftForce(v, 0.3, 0.005)
		if f.Y < 0 {
			t.Errorf("lift vertical component negative for v=%+v: %+v", v, f)
		}
		if math.Abs(f.Dot(v)) > 1e-9*f.Length()*v.Length() {
			t.Errorf("lift not perpendicular to velocity for v=%+v", v)
		}
	}
}

func TestLiftScalesWithNormalVelocity(t *testing.T) {
	env := DefaultEnvironment()

	// Velocity along the chord produces no lift.
	theta := 0.3
	chord := geom.Vec{X: math.Cos(theta), Y: math.Sin(theta)}.Scale(4)
	if f := env.LiftForce(chord, theta, 0.005); f.Length() > 1e-9 {
		t.Errorf("chordwise motion should give zero lift, got %+v", f)
	}

	// Velocity normal to the chord maximizes it.
	normal := geom.Vec{X: -math.Sin(theta), Y: math.Cos(theta)}.Scale(4)
	if f := env.LiftForce(normal, theta, 0.005); f.Length() < 1e-6 {
		t.Error("normal motion should give nonzero lift")
	}
}

func TestDragNeverDoesPositiveWork(t *testing.T) {
	env := DefaultEnvironment()

	for _, v := range []geom.Vec{{X: 5, Y: -2}, {X: -1, Y: 0.5}, {X: 0, Y: -3}} {
		f := env.DragForce(v, 0.005)
		if power := f.Dot(v); power > 0 {
			t.Errorf("drag did positive work %f for v=%+v", power, v)
		}
	}

	// Magnitude proportional to speed squared.
	f1 := env.DragForce(geom.Vec{X: 2}, 0.005).Length()
	f2 := env.DragForce(geom.Vec{X: 4}, 0.005).Length()
	if math.Abs(f2/f1-4) > 1e-9 {
		t.Errorf("drag should quadruple when speed doubles, ratio %f", f2/f1)
	}
}

func TestVerticalDampingOpposesVerticalMotion(t *testing.T) {
	env := DefaultEnvironment()

	down := env.VerticalDamping(-2, 0.005)
	if down.Y <= 0 || down.X != 0 {
		t.Errorf("damping should push up against descent, got %+v", down)
	}

	up := env.VerticalDamping(2, 0.005)
	if up.Y >= 0 {
		t.Errorf("damping should push down against ascent, got %+v", up)
	}

	// Hybrid: more than linear growth with speed.
	slow := env.VerticalDamping(-1, 0.005).Y
	fast := env.VerticalDamping(-2, 0.005).Y
	if fast < 2*slow {
		t.Errorf("quadratic term missing: %f vs %f", fast, slow)
	}
}

func TestSuctionActivationWindow(t *testing.T) {
	env := DefaultEnvironment()
	area := 0.005

	f := env.SuctionForce(area, 0.01, -0.1, 0.1)
	if f.Y >= 0 {
		t.Errorf("active suction should pull down, got %+v", f)
	}

	if f := env.SuctionForce(area, env.SuctionDepth*2, -0.1, 0.1); f != (geom.Vec{}) {
		t.Error("suction should be off when deep")
	}
	if f := env.SuctionForce(area, 0.01, -env.SuctionSpeed*2, 0.1); f != (geom.Vec{}) {
		t.Error("suction should be off at speed")
	}
	if f := env.SuctionForce(area, 0.01, 0.1, 0.1); f != (geom.Vec{}) {
		t.Error("suction must not hold an exiting body")
	}

	// Fades as contact ages.
	early := env.SuctionForce(area, 0.01, -0.1, 0.0).Y
	late := env.SuctionForce(area, 0.01, -0.1, 2.0).Y
	if math.Abs(late) >= math.Abs(early) {
		t.Errorf("suction should weaken over contact: %f vs %f", early, late)
	}
}

func TestSuctionVanishesSmoothly(t *testing.T) {
	env := DefaultEnvironment()

	// Approaching the speed threshold from below, the force goes to zero
	// rather than cutting off at a finite value.
	eps := env.SuctionSpeed * 0.999
	f := env.SuctionForce(0.005, 0.01, -eps, 0)
	full := env.SuctionForce(0.005, 0.01, -1e-9, 0)
	if math.Abs(f.Y) > math.Abs(full.Y)*0.01 {
		t.Errorf("suction should fade near the speed threshold, got %f vs %f", f.Y, full.Y)
	}
}

func TestEffectiveInertiaGrowsWithSubmersion(t *testing.T) {
	env := DefaultEnvironment()

	m0 := env.EffectiveMass(0.27, 0, 0.01)
	if m0 != 0.27 {
		t.Errorf("dry effective mass should equal true mass, got %f", m0)
	}

	m1 := env.EffectiveMass(0.27, 0.005, 0.01)
	if m1 <= 0.27 {
		t.Errorf("submerged effective mass should exceed true mass, got %f", m1)
	}

	i1 := env.EffectiveInertia(1e-4, 0.005, 0.01)
	if i1 <= 1e-4 {
		t.Errorf("submerged effective inertia should exceed true inertia, got %g", i1)
	}
}

func TestTorqueLeverArmClamp(t *testing.T) {
	env := DefaultEnvironment()
	force := geom.Vec{Y: 10}

	near := env.Torque(geom.Vec{}, geom.Vec{X: env.MaxLeverArm}, force, 0.005, 0)
	far := env.Torque(geom.Vec{}, geom.Vec{X: env.MaxLeverArm * 50}, force, 0.005, 0)

	if math.Abs(far-near) > 1e-9 {
		t.Errorf("lever arm should clamp: %f vs %f", near, far)
	}
}

func TestClampAngularAccel(t *testing.T) {
	env := DefaultEnvironment()

	if got := env.ClampAngularAccel(env.MaxAngularAccel * 10); got != env.MaxAngularAccel {
		t.Errorf("expected clamp to %f, got %f", env.MaxAngularAccel, got)
	}
	if got := env.ClampAngularAccel(-env.MaxAngularAccel * 10); got != -env.MaxAngularAccel {
		t.Errorf("expected clamp to %f, got %f", -env.MaxAngularAccel, got)
	}
	if got := env.ClampAngularAccel(1.5); got != 1.5 {
		t.Errorf("in-range value should pass through, got %f", got)
	}
}
