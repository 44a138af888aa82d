// Package sweep runs batches of throws over a grid of release parameters,
// one simulation per grid point, fanned out across workers. Used to map out
// which speed and entry-angle combinations actually skip.
package sweep

import (
	"context"
	"fmt"
	"runtime"
	"sync"

	"github.com/san-kum/skipstone/internal/config"
	"github.com/san-kum/skipstone/internal/integrators"
	"github.com/san-kum/skipstone/internal/metrics"
	"github.com/san-kum/skipstone/internal/phase"
	"github.com/san-kum/skipstone/internal/physics"
	"github.com/san-kum/skipstone/internal/sim"
)

// Axis is one swept release parameter: speed, angle, pitch, spin or height.
type Axis struct {
	Name   string
	Values []float64
}

// Outcome is the summary of one grid point.
type Outcome struct {
	Params     map[string]float64
	Bounces    int
	Distance   float64
	FinalPhase phase.Phase
	Err        error
}

type Sweep struct {
	base    *config.Config
	axes    []Axis
	workers int
}

func New(base *config.Config, axes []Axis) *Sweep {
	return &Sweep{
		base:    base,
		axes:    axes,
		workers: runtime.NumCPU(),
	}
}

// SetWorkers overrides the worker count; values below one are ignored.
func (s *Sweep) SetWorkers(n int) {
	if n >= 1 {
		s.workers = n
	}
}

// Run enumerates the cartesian product of the axes and simulates every
// combination. The returned outcomes are in enumeration order regardless of
// which worker ran them.
func (s *Sweep) Run(ctx context.Context) ([]Outcome, error) {
	for _, axis := range s.axes {
		if err := validateAxis(axis); err != nil {
			return nil, err
		}
	}

	points := enumerate(s.axes)
	outcomes := make([]Outcome, len(points))

	jobs := make(chan int)
	var wg sync.WaitGroup

	workers := s.workers
	if workers > len(points) {
		workers = len(points)
	}
	if workers < 1 {
		workers = 1
	}

	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range jobs {
				outcomes[idx] = s.runPoint(ctx, points[idx])
			}
		}()
	}

	for i := range points {
		select {
		case <-ctx.Done():
			close(jobs)
			wg.Wait()
			return nil, ctx.Err()
		case jobs <- i:
		}
	}
	close(jobs)
	wg.Wait()

	return outcomes, nil
}

func validateAxis(axis Axis) error {
	switch axis.Name {
	case "speed", "angle", "pitch", "spin", "height":
	default:
		return fmt.Errorf("sweep: unknown axis %q", axis.Name)
	}
	if len(axis.Values) == 0 {
		return fmt.Errorf("sweep: axis %q has no values", axis.Name)
	}
	return nil
}

// enumerate builds the cartesian product of the axes.
func enumerate(axes []Axis) []map[string]float64 {
	points := []map[string]float64{{}}
	for _, axis := range axes {
		next := make([]map[string]float64, 0, len(points)*len(axis.Values))
		for _, pt := range points {
			for _, v := range axis.Values {
				combined := make(map[string]float64, len(pt)+1)
				for k, val := range pt {
					combined[k] = val
				}
				combined[axis.Name] = v
				next = append(next, combined)
			}
		}
		points = next
	}
	return points
}

// runPoint simulates a single grid point with its own model and integrator,
// so workers share nothing.
func (s *Sweep) runPoint(ctx context.Context, params map[string]float64) Outcome {
	outcome := Outcome{Params: params}

	cfg := *s.base
	cfg.Throw = s.base.Throw
	for name, v := range params {
		switch name {
		case "speed":
			cfg.Throw.Speed = v
		case "angle":
			cfg.Throw.Angle = v
		case "pitch":
			cfg.Throw.Pitch = v
		case "spin":
			cfg.Throw.Spin = v
		case "height":
			cfg.Throw.Height = v
		}
	}

	props, err := cfg.BuildStone()
	if err != nil {
		outcome.Err = err
		return outcome
	}

	model := physics.NewStoneSkip(props, cfg.BuildEnvironment())
	runner := sim.New(model, integrators.NewRK4())
	distance := metrics.NewDistance()
	runner.AddMetric(distance)

	runCfg := sim.DefaultConfig()
	runCfg.Dt = cfg.Dt
	runCfg.Duration = cfg.Duration
	runCfg.StopOnSink = cfg.StopOnSink
	if cfg.SettleTime > 0 {
		runCfg.SettleTime = cfg.SettleTime
	}

	result, err := runner.Run(ctx, cfg.InitState(), runCfg)
	if err != nil {
		outcome.Err = err
		return outcome
	}

	outcome.Bounces = result.Bounces
	outcome.Distance = result.Metrics[distance.Name()]
	outcome.FinalPhase = result.FinalPhase
	return outcome
}

// Best returns the outcome with the most bounces, breaking ties by distance.
// Errored points are skipped; ok is false if every point errored.
func Best(outcomes []Outcome) (Outcome, bool) {
	best := Outcome{Bounces: -1}
	found := false
	for _, o := range outcomes {
		if o.Err != nil {
			continue
		}
		if o.Bounces > best.Bounces ||
			(o.Bounces == best.Bounces && o.Distance > best.Distance) {
			best = o
			found = true
		}
	}
	return best, found
}
