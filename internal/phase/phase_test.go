package phase

import "testing"

func testThresholds() Thresholds {
	return Thresholds{
		ContactArea:    1e-6,
		SinkFraction:   0.5,
		SinkDuration:   0.2,
		MinBounceSpeed: 0.1,
	}
}

func TestFlyingToBouncing(t *testing.T) {
	c := NewClassifier(testThresholds())

	if got := c.Update(0, 0, -1, 1, 0, 0.01); got != Flying {
		t.Errorf("no contact should stay flying, got %v", got)
	}

	if got := c.Update(0.001, 0.1, -1, 1, 0.01, 0.01); got != Bouncing {
		t.Errorf("contact should switch to bouncing, got %v", got)
	}
}

func TestBouncingToFlyingRequiresUpwardVelocity(t *testing.T) {
	c := NewClassifier(testThresholds())
	c.Update(0.001, 0.1, -1, 1, 0, 0.01)

	// Area gone but still descending: not a rebound.
	if got := c.Update(0, 0, -0.5, 0.5, 0.01, 0.01); got != Bouncing {
		t.Errorf("descending exit should stay bouncing, got %v", got)
	}

	if got := c.Update(0, 0, 0.5, 0.5, 0.02, 0.01); got != Flying {
		t.Errorf("upward exit should switch to flying, got %v", got)
	}
}

func TestBouncingToSinkingByDuration(t *testing.T) {
	c := NewClassifier(testThresholds())
	c.Update(0.001, 0.1, -1, 1, 0, 0.01)

	t0 := 0.01
	var got Phase
	for i := 0; i < 30; i++ {
		got = c.Update(0.006, 0.8, -1.0, 1.0, t0, 0.01)
		t0 += 0.01
	}

	if got != Sinking {
		t.Errorf("deep for longer than sink duration should sink, got %v", got)
	}
}

func TestBouncingToSinkingByStall(t *testing.T) {
	c := NewClassifier(testThresholds())
	c.Update(0.001, 0.1, -1, 1, 0, 0.01)

	// Deep and barely moving: energy insufficient to rebound.
	if got := c.Update(0.006, 0.8, -0.05, 0.05, 0.01, 0.01); got != Sinking {
		t.Errorf("deep stall should sink, got %v", got)
	}
}

func TestStallUsesTotalSpeedNotVertical(t *testing.T) {
	c := NewClassifier(testThresholds())
	c.Update(0.001, 0.1, -1, 5, 0, 0.01)

	// During a hard impact the vertical component sweeps through zero on
	// every reversal while the body still carries its forward speed. That
	// window must not read as a stall.
	t0 := 0.01
	for _, vy := range []float64{-0.08, -0.03, 0.0, 0.04} {
		if got := c.Update(0.006, 0.8, vy, 4.8, t0, 0.001); got == Sinking {
			t.Fatalf("fast transit (vy=%.2f, speed 4.8) read as a stall", vy)
		}
		t0 += 0.001
	}
}

func TestSinkingIsTerminal(t *testing.T) {
	c := NewClassifier(testThresholds())
	c.Update(0.001, 0.1, -1, 1, 0, 0.01)
	c.Update(0.006, 0.8, -0.05, 0.05, 0.01, 0.01)

	if c.Phase() != Sinking {
		t.Fatalf("setup failed, phase %v", c.Phase())
	}

	// No state sequence may leave Sinking, whatever the inputs.
	inputs := []struct{ area, fraction, vy, speed float64 }{
		{0, 0, 5, 5},
		{0.001, 0.1, 1, 2},
		{0, 0, 0, 0},
	}
	t0 := 0.02
	for _, in := range inputs {
		if got := c.Update(in.area, in.fraction, in.vy, in.speed, t0, 0.01); got != Sinking {
			t.Fatalf("sinking must be terminal, got %v", got)
		}
		t0 += 0.01
	}
}

func TestDeepTimerResetsOnRecovery(t *testing.T) {
	c := NewClassifier(testThresholds())
	c.Update(0.001, 0.1, -1, 1, 0, 0.01)

	// Dip deep briefly, recover, dip again: timer must not accumulate across
	// the recovery.
	for i := 0; i < 15; i++ {
		c.Update(0.006, 0.8, -1.0, 1.0, float64(i)*0.01, 0.01)
	}
	if c.Phase() == Sinking {
		t.Fatal("sank before the duration elapsed")
	}

	c.Update(0.002, 0.2, -1.0, 1.0, 0.16, 0.01)

	for i := 0; i < 15; i++ {
		if got := c.Update(0.006, 0.8, -1.0, 1.0, 0.17+float64(i)*0.01, 0.01); got == Sinking {
			t.Fatalf("timer carried across recovery (step %d)", i)
		}
	}
}

func TestContactTime(t *testing.T) {
	c := NewClassifier(testThresholds())

	if c.ContactTime(5) != 0 {
		t.Error("airborne contact time should be zero")
	}

	c.Update(0.001, 0.1, -1, 1, 2.0, 0.01)
	if got := c.ContactTime(2.5); got != 0.5 {
		t.Errorf("expected contact time 0.5, got %f", got)
	}
}
