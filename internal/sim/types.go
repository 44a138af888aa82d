package sim

import (
	"github.com/san-kum/skipstone/internal/dynamo"
	"github.com/san-kum/skipstone/internal/phase"
)

// Phased is implemented by models whose derivative dispatches on a contact
// regime. The simulator advances the regime exactly once per committed step;
// trial states inside the integrator never touch it.
type Phased interface {
	AdvancePhase(x dynamo.State, t, dt float64) phase.Phase
	Phase() phase.Phase
}

// Config drives a single fixed-step run.
type Config struct {
	Dt       float64
	Duration float64
	Seed     int64

	// ValidateState halts the run with a fatal error when a step produces a
	// non-finite state, instead of silently corrupting every later step.
	ValidateState bool

	// StopOnSink ends the run SettleTime seconds after the model enters the
	// terminal Sinking regime.
	StopOnSink bool
	SettleTime float64
}

func DefaultConfig() Config {
	return Config{
		Dt:            0.001,
		Duration:      10.0,
		ValidateState: true,
		StopOnSink:    true,
		SettleTime:    0.5,
	}
}

// Result is the recorded trajectory of a run. Phases[i] is the regime the
// model was in while producing States[i+1]; len(Phases) == len(States)-1 on a
// clean run.
type Result struct {
	States      []dynamo.State
	Times       []float64
	Phases      []phase.Phase
	Metrics     map[string]float64
	EnergyDrift float64
	StepsTaken  int
	Bounces     int
	FinalPhase  phase.Phase
	Errors      []error
}
