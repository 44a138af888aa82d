package sim

import (
	"context"
	"fmt"
	"math"

	"github.com/san-kum/skipstone/internal/dynamo"
	"github.com/san-kum/skipstone/internal/phase"
)

// Simulator owns the step loop: it is the single writer of the simulation
// state. Observers and metrics receive fully-computed snapshots only.
type Simulator struct {
	dyn        dynamo.System
	integrator dynamo.Integrator
	metrics    []dynamo.Metric
	observers  []dynamo.Observer
}

func New(dyn dynamo.System, integrator dynamo.Integrator) *Simulator {
	return &Simulator{
		dyn:        dyn,
		integrator: integrator,
		metrics:    make([]dynamo.Metric, 0),
		observers:  make([]dynamo.Observer, 0),
	}
}

func (s *Simulator) AddMetric(m dynamo.Metric)     { s.metrics = append(s.metrics, m) }
func (s *Simulator) AddObserver(o dynamo.Observer) { s.observers = append(s.observers, o) }

func (s *Simulator) Run(ctx context.Context, x0 dynamo.State, cfg Config) (*Result, error) {
	if err := s.validateConfig(cfg); err != nil {
		return nil, err
	}
	if len(x0) != s.dyn.StateDim() {
		return nil, dynamo.ErrDimensionMismatch
	}

	steps := int(cfg.Duration / cfg.Dt)
	result := &Result{
		States:  make([]dynamo.State, 0, steps+1),
		Times:   make([]float64, 0, steps+1),
		Phases:  make([]phase.Phase, 0, steps),
		Metrics: make(map[string]float64),
		Errors:  make([]error, 0),
	}

	for _, m := range s.metrics {
		m.Reset()
	}

	phased, hasPhase := s.dyn.(Phased)

	x := x0.Clone()
	t := 0.0
	dt := cfg.Dt

	result.States = append(result.States, x.Clone())
	result.Times = append(result.Times, t)

	initialEnergy := s.computeEnergy(x)
	sinkAt := -1.0
	lastPhase := phase.Flying
	var fatal error

	for i := 0; i < steps; i++ {
		select {
		case <-ctx.Done():
			return result, ctx.Err()
		default:
		}

		p := phase.Flying
		if hasPhase {
			p = phased.AdvancePhase(x, t, dt)
			if lastPhase == phase.Bouncing && p == phase.Flying {
				result.Bounces++
			}
			lastPhase = p
		}

		for _, m := range s.metrics {
			m.Observe(x, t)
		}
		for _, obs := range s.observers {
			obs.OnStep(x, t)
		}

		newX := s.integrator.Step(s.dyn, x, t, dt)

		if cfg.ValidateState && !newX.IsValid() {
			// Fatal for this run: halt, keep the trajectory so far and
			// surface the offending state to the caller.
			fatal = &dynamo.SimulationError{
				Step:    i,
				Time:    t,
				State:   newX.Clone(),
				Wrapped: dynamo.ErrInvalidState,
			}
			result.Errors = append(result.Errors, fatal)
			break
		}

		x = newX
		t += dt
		result.StepsTaken++

		result.States = append(result.States, x.Clone())
		result.Times = append(result.Times, t)
		result.Phases = append(result.Phases, p)

		if cfg.StopOnSink && p == phase.Sinking {
			if sinkAt < 0 {
				sinkAt = t
			}
			if t-sinkAt >= cfg.SettleTime {
				break
			}
		}
	}

	result.FinalPhase = lastPhase

	finalEnergy := s.computeEnergy(x)
	if initialEnergy != 0 {
		result.EnergyDrift = math.Abs(finalEnergy-initialEnergy) / math.Abs(initialEnergy)
	}

	for _, m := range s.metrics {
		result.Metrics[m.Name()] = m.Value()
	}

	return result, fatal
}

// RunWithCallback steps the simulation, handing each committed state to the
// callback. Returning false from the callback stops the run. Used by the
// live view, which paces frames itself.
func (s *Simulator) RunWithCallback(ctx context.Context, x0 dynamo.State, cfg Config, callback func(x dynamo.State, p phase.Phase, t float64) bool) error {
	if err := s.validateConfig(cfg); err != nil {
		return err
	}

	phased, hasPhase := s.dyn.(Phased)

	x := x0.Clone()
	t := 0.0
	dt := cfg.Dt

	for t < cfg.Duration {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		p := phase.Flying
		if hasPhase {
			p = phased.AdvancePhase(x, t, dt)
		}

		if !callback(x.Clone(), p, t) {
			return nil
		}

		x = s.integrator.Step(s.dyn, x, t, dt)
		t += dt

		if cfg.ValidateState && !x.IsValid() {
			return fmt.Errorf("invalid state at t=%.4f", t)
		}
	}

	return nil
}

func (s *Simulator) validateConfig(cfg Config) error {
	if cfg.Dt <= 0 {
		return fmt.Errorf("dt must be positive, got %f", cfg.Dt)
	}
	if cfg.Duration <= 0 {
		return fmt.Errorf("duration must be positive, got %f", cfg.Duration)
	}
	return nil
}

func (s *Simulator) computeEnergy(x dynamo.State) float64 {
	if ec, ok := s.dyn.(dynamo.Hamiltonian); ok {
		return ec.Energy(x)
	}
	return 0
}
