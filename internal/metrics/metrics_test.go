package metrics

import (
	"math"
	"testing"

	"github.com/san-kum/skipstone/internal/dynamo"
)

type flatEnergy struct{ e float64 }

func (f *flatEnergy) Derive(x dynamo.State, t float64) dynamo.State { return dynamo.State{0} }
func (f *flatEnergy) StateDim() int                                 { return 1 }
func (f *flatEnergy) Energy(x dynamo.State) float64                 { return f.e }

func TestEnergyDriftTracksWorstDeviation(t *testing.T) {
	dyn := &flatEnergy{e: 10}
	m := NewEnergyDrift(dyn)

	m.Observe(dynamo.State{0}, 0)
	dyn.e = 9
	m.Observe(dynamo.State{0}, 1)
	dyn.e = 9.5
	m.Observe(dynamo.State{0}, 2)

	if math.Abs(m.Value()-0.1) > 1e-12 {
		t.Errorf("expected drift 0.1, got %f", m.Value())
	}

	m.Reset()
	if m.Value() != 0 {
		t.Error("expected zero drift after reset")
	}
}

func TestPeakHeight(t *testing.T) {
	m := NewPeakHeight()

	for _, y := range []float64{0.1, 0.4, -0.2, 0.3} {
		m.Observe(dynamo.State{0, y, 0, 0, 0, 0}, 0)
	}

	if m.Value() != 0.4 {
		t.Errorf("expected peak 0.4, got %f", m.Value())
	}
}

func TestPeakHeightEmpty(t *testing.T) {
	m := NewPeakHeight()
	if m.Value() != 0 {
		t.Errorf("expected 0 before any observation, got %f", m.Value())
	}
}

func TestMaxDepth(t *testing.T) {
	m := NewMaxDepth(0)

	m.Observe(dynamo.State{0, 0.5}, 0)
	if m.Value() != 0 {
		t.Error("above the surface should record no depth")
	}

	m.Observe(dynamo.State{0, -0.03}, 1)
	m.Observe(dynamo.State{0, -0.01}, 2)
	if math.Abs(m.Value()-0.03) > 1e-12 {
		t.Errorf("expected depth 0.03, got %f", m.Value())
	}
}

func TestDistance(t *testing.T) {
	m := NewDistance()

	m.Observe(dynamo.State{2, 0}, 0)
	m.Observe(dynamo.State{3.5, 0}, 1)
	m.Observe(dynamo.State{6, 0}, 2)

	if math.Abs(m.Value()-4) > 1e-12 {
		t.Errorf("expected distance 4, got %f", m.Value())
	}
}
