package dynamo

import "math"

// State is a flat vector of the simulated degrees of freedom. The stone model
// uses [x, y, vx, vy, theta, omega].
type State []float64

func (s State) Clone() State {
	c := make(State, len(s))
	copy(c, s)
	return c
}

// IsValid reports whether every component is finite. A false result after an
// integration step is fatal for the run.
func (s State) IsValid() bool {
	for _, v := range s {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

func (s State) Norm() float64 {
	sum := 0.0
	for _, v := range s {
		sum += v * v
	}
	return math.Sqrt(sum)
}

func (s State) Add(other State) State {
	result := make(State, len(s))
	for i := range s {
		if i < len(other) {
			result[i] = s[i] + other[i]
		} else {
			result[i] = s[i]
		}
	}
	return result
}

func (s State) Scale(factor float64) State {
	result := make(State, len(s))
	for i := range s {
		result[i] = s[i] * factor
	}
	return result
}

func (s State) Sub(other State) State {
	result := make(State, len(s))
	for i := range s {
		if i < len(other) {
			result[i] = s[i] - other[i]
		} else {
			result[i] = s[i]
		}
	}
	return result
}

// System is a dynamical system dX/dt = f(X, t). Derive must be free of side
// effects: the integrator evaluates it several times per step on trial states.
type System interface {
	Derive(x State, t float64) State
	StateDim() int
}

// Hamiltonian is implemented by systems that can report total mechanical
// energy, used for drift diagnostics.
type Hamiltonian interface {
	Energy(x State) float64
}

// Integrator advances a state by one fixed step. Implementations must not
// retain references to trial states beyond the call.
type Integrator interface {
	Step(dyn System, x State, t float64, dt float64) State
}

// Configurable is implemented by systems whose parameters can be listed and
// replaced between runs.
type Configurable interface {
	GetParams() map[string]float64
	SetParam(name string, value float64) error
}

// Metric accumulates a scalar over a run.
type Metric interface {
	Name() string
	Observe(x State, t float64)
	Value() float64
	Reset()
}

// Observer is notified after every completed step with a consistent snapshot.
type Observer interface {
	OnStep(x State, t float64)
}
