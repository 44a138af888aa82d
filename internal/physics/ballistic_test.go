package physics

import (
	"math"
	"testing"

	"github.com/san-kum/skipstone/internal/dynamo"
	"github.com/san-kum/skipstone/internal/integrators"
)

func TestBallisticDragFreeMatchesClosedForm(t *testing.T) {
	b := NewBallistic()
	integ := integrators.NewRK4()

	x := dynamo.State{0, 0, 4, 6}
	dt := 0.001
	steps := 1000

	for i := 0; i < steps; i++ {
		x = integ.Step(b, x, float64(i)*dt, dt)
	}

	tf := float64(steps) * dt
	wantX := 4 * tf
	wantY := 6*tf - 0.5*b.Gravity*tf*tf

	if math.Abs(x[0]-wantX) > 1e-6 {
		t.Errorf("x: expected %f, got %f", wantX, x[0])
	}
	if math.Abs(x[1]-wantY) > 1e-6 {
		t.Errorf("y: expected %f, got %f", wantY, x[1])
	}
}

func TestBallisticDragFreeConservesEnergy(t *testing.T) {
	b := NewBallistic()
	integ := integrators.NewRK4()

	x := dynamo.State{0, 0, 4, 6}
	e0 := b.Energy(x)

	dt := 0.001
	for i := 0; i < 1000; i++ {
		x = integ.Step(b, x, float64(i)*dt, dt)
	}

	if math.Abs(b.Energy(x)-e0) > 1e-8 {
		t.Errorf("energy drifted from %f to %f", e0, b.Energy(x))
	}
}

func TestBallisticDragOpposesMotion(t *testing.T) {
	b := NewBallistic()
	b.Drag = 0.05

	dx := b.Derive(dynamo.State{0, 0, 10, 0}, 0)
	if dx[2] >= 0 {
		t.Errorf("drag should decelerate forward motion, got ax=%f", dx[2])
	}
}

func TestBallisticParams(t *testing.T) {
	b := NewBallistic()

	if err := b.SetParam("drag", 0.2); err != nil {
		t.Fatalf("set param failed: %v", err)
	}
	if b.GetParams()["drag"] != 0.2 {
		t.Errorf("drag not applied, got %f", b.GetParams()["drag"])
	}
	if err := b.SetParam("bogus", 1); err == nil {
		t.Error("expected error for unknown param")
	}
}
