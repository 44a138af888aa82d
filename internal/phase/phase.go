// Package phase tracks the contact regime of a body skimming a water
// surface. The machine has three states: Flying (no contact), Bouncing
// (partially submerged, hydrodynamic forces active) and Sinking (submerged
// past recovery; terminal).
package phase

// Phase is the discrete contact regime.
type Phase int

const (
	Flying Phase = iota
	Bouncing
	Sinking
)

func (p Phase) String() string {
	switch p {
	case Flying:
		return "flying"
	case Bouncing:
		return "bouncing"
	case Sinking:
		return "sinking"
	default:
		return "unknown"
	}
}

// Thresholds are the tunable transition parameters. Their magnitudes are a
// calibration concern; only their roles are fixed.
type Thresholds struct {
	// ContactArea is the submerged area above which contact begins, and
	// below which a rising body counts as clear of the surface (m^2). A
	// wetted tip sliver is not contact.
	ContactArea float64

	// SinkFraction is the submerged-area fraction beyond which the body is
	// considered too deep to recover.
	SinkFraction float64

	// SinkDuration is how long the body must stay past SinkFraction before
	// the run is declared sunk (s).
	SinkDuration float64

	// MinBounceSpeed is the speed below which a deeply submerged body no
	// longer has the energy to rebound (m/s).
	MinBounceSpeed float64
}

// Classifier advances the phase machine once per integrator step. It owns the
// contact and deep-submersion timers; reads are side-effect free.
type Classifier struct {
	phase        Phase
	thresholds   Thresholds
	contactStart float64
	deepTime     float64
	inContact    bool
}

func NewClassifier(th Thresholds) *Classifier {
	return &Classifier{phase: Flying, thresholds: th}
}

func (c *Classifier) Phase() Phase { return c.phase }

// ContactTime returns the time since the current contact began, or zero when
// airborne. Used by the suction term, which weakens as contact ages.
func (c *Classifier) ContactTime(t float64) float64 {
	if !c.inContact {
		return 0
	}
	return t - c.contactStart
}

// Update advances the machine given the submerged area, the submerged
// fraction of the total outline, the vertical velocity, the total speed and
// the current time. Sinking is terminal: once entered, no transition leaves
// it.
func (c *Classifier) Update(area, fraction, vy, speed, t, dt float64) Phase {
	switch c.phase {
	case Flying:
		if area > c.thresholds.ContactArea {
			c.phase = Bouncing
			c.contactStart = t
			c.inContact = true
			c.deepTime = 0
		}

	case Bouncing:
		if area <= c.thresholds.ContactArea && vy > 0 {
			// Rebound confirmed: airborne and moving up, not resting.
			c.phase = Flying
			c.inContact = false
			c.deepTime = 0
			return c.phase
		}

		if fraction > c.thresholds.SinkFraction {
			c.deepTime += dt
			// The stall test uses total speed. A hard impact drives the
			// vertical component through zero at every reversal while the
			// body still carries most of its forward energy.
			if c.deepTime >= c.thresholds.SinkDuration ||
				speed < c.thresholds.MinBounceSpeed {
				c.phase = Sinking
			}
		} else {
			c.deepTime = 0
		}

	case Sinking:
		// Terminal.
	}

	return c.phase
}

// Reset returns the classifier to the initial airborne state.
func (c *Classifier) Reset() {
	c.phase = Flying
	c.contactStart = 0
	c.deepTime = 0
	c.inContact = false
}
