package physics

import (
	"fmt"
	"math"

	"github.com/san-kum/skipstone/internal/dynamo"
)

// Ballistic is a point mass under gravity and quadratic air drag, state
// [x, y, vx, vy]. It has a closed-form solution when drag is zero, which
// makes it the reference system for integrator accuracy comparisons.
type Ballistic struct {
	Mass    float64
	Gravity float64
	Drag    float64
}

func NewBallistic() *Ballistic {
	return &Ballistic{
		Mass:    0.1,
		Gravity: 9.81,
		Drag:    0.0,
	}
}

func (b *Ballistic) StateDim() int { return 4 }

func (b *Ballistic) Derive(x dynamo.State, t float64) dynamo.State {
	vx, vy := x[2], x[3]

	ax, ay := 0.0, -b.Gravity
	if b.Drag > 0 {
		speed := math.Hypot(vx, vy)
		ax -= b.Drag * speed * vx / b.Mass
		ay -= b.Drag * speed * vy / b.Mass
	}

	return dynamo.State{vx, vy, ax, ay}
}

func (b *Ballistic) Energy(x dynamo.State) float64 {
	ke := 0.5 * b.Mass * (x[2]*x[2] + x[3]*x[3])
	pe := b.Mass * b.Gravity * x[1]
	return ke + pe
}

func (b *Ballistic) GetParams() map[string]float64 {
	return map[string]float64{
		"mass":    b.Mass,
		"gravity": b.Gravity,
		"drag":    b.Drag,
	}
}

func (b *Ballistic) SetParam(name string, value float64) error {
	switch name {
	case "mass":
		b.Mass = value
	case "gravity":
		b.Gravity = value
	case "drag":
		b.Drag = value
	default:
		return fmt.Errorf("unknown param: %s", name)
	}
	return nil
}
