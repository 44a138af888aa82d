package integrators

import (
	"math"
	"testing"

	"github.com/san-kum/skipstone/internal/dynamo"
)

// oscillator is x'' = -x, with solution cos(t) from x0 = {1, 0}.
type oscillator struct{}

func (s *oscillator) Derive(x dynamo.State, t float64) dynamo.State {
	return dynamo.State{x[1], -x[0]}
}

func (s *oscillator) StateDim() int { return 2 }

func TestRK4Accuracy(t *testing.T) {
	dyn := &oscillator{}
	integ := NewRK4()

	x := dynamo.State{1.0, 0.0}
	dt := 0.01
	steps := 100

	for i := 0; i < steps; i++ {
		x = integ.Step(dyn, x, float64(i)*dt, dt)
	}

	expectedX := math.Cos(float64(steps) * dt)
	expectedV := -math.Sin(float64(steps) * dt)

	if math.Abs(x[0]-expectedX) > 1e-4 {
		t.Errorf("position error too large: got %.6f, expected %.6f", x[0], expectedX)
	}

	if math.Abs(x[1]-expectedV) > 1e-4 {
		t.Errorf("velocity error too large: got %.6f, expected %.6f", x[1], expectedV)
	}
}

// runToTime integrates the oscillator to t=1 with the given step count and
// returns the position error against the closed form.
func runToTime(integ dynamo.Integrator, steps int) float64 {
	dyn := &oscillator{}
	dt := 1.0 / float64(steps)
	x := dynamo.State{1.0, 0.0}
	for i := 0; i < steps; i++ {
		x = integ.Step(dyn, x, float64(i)*dt, dt)
	}
	return math.Abs(x[0] - math.Cos(1.0))
}

func TestRK4ConvergenceOrder(t *testing.T) {
	// Halving the step should shrink the global error by about 2^4 for a
	// fourth-order method.
	coarse := runToTime(NewRK4(), 50)
	fine := runToTime(NewRK4(), 100)

	ratio := coarse / fine
	if ratio < 10 || ratio > 24 {
		t.Errorf("expected error ratio near 16, got %.2f (coarse %g, fine %g)", ratio, coarse, fine)
	}
}

func TestEulerIsFirstOrder(t *testing.T) {
	coarse := runToTime(NewEuler(), 50)
	fine := runToTime(NewEuler(), 100)

	ratio := coarse / fine
	if ratio < 1.5 || ratio > 3 {
		t.Errorf("expected error ratio near 2, got %.2f", ratio)
	}
}

func TestStepDoesNotMutateInput(t *testing.T) {
	dyn := &oscillator{}
	integ := NewRK4()

	x := dynamo.State{0.7, -0.3}
	orig := x.Clone()

	integ.Step(dyn, x, 0, 0.01)

	for i := range x {
		if x[i] != orig[i] {
			t.Fatalf("input state mutated at component %d", i)
		}
	}
}

func BenchmarkRK4(b *testing.B) {
	dyn := &oscillator{}
	integ := NewRK4()
	x := dynamo.State{1.0, 0.0}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		x = integ.Step(dyn, x, 0, 0.01)
	}
}
