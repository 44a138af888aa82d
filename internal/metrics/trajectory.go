package metrics

import (
	"math"

	"github.com/san-kum/skipstone/internal/dynamo"
)

// State indices observed by the trajectory metrics.
const (
	ix = 0
	iy = 1
)

// PeakHeight records the highest y reached over the run.
type PeakHeight struct {
	name    string
	peak    float64
	samples int
}

func NewPeakHeight() *PeakHeight {
	return &PeakHeight{name: "peak_height", peak: math.Inf(-1)}
}

func (p *PeakHeight) Name() string { return p.name }

func (p *PeakHeight) Observe(x dynamo.State, t float64) {
	if len(x) <= iy {
		return
	}
	p.peak = math.Max(p.peak, x[iy])
	p.samples++
}

func (p *PeakHeight) Value() float64 {
	if p.samples == 0 {
		return 0
	}
	return p.peak
}

func (p *PeakHeight) Reset() {
	p.peak = math.Inf(-1)
	p.samples = 0
}

// MaxDepth records how far below the surface the body centroid travels.
// Reported as a positive distance; zero if it never crosses the given level.
type MaxDepth struct {
	name       string
	waterLevel float64
	depth      float64
}

func NewMaxDepth(waterLevel float64) *MaxDepth {
	return &MaxDepth{name: "max_depth", waterLevel: waterLevel}
}

func (m *MaxDepth) Name() string { return m.name }

func (m *MaxDepth) Observe(x dynamo.State, t float64) {
	if len(x) <= iy {
		return
	}
	if d := m.waterLevel - x[iy]; d > m.depth {
		m.depth = d
	}
}

func (m *MaxDepth) Value() float64 { return m.depth }

func (m *MaxDepth) Reset() { m.depth = 0 }

// Distance records the horizontal span covered from the first observed state.
type Distance struct {
	name    string
	startX  float64
	lastX   float64
	samples int
}

func NewDistance() *Distance {
	return &Distance{name: "distance"}
}

func (d *Distance) Name() string { return d.name }

func (d *Distance) Observe(x dynamo.State, t float64) {
	if len(x) <= ix {
		return
	}
	if d.samples == 0 {
		d.startX = x[ix]
	}
	d.lastX = x[ix]
	d.samples++
}

func (d *Distance) Value() float64 {
	if d.samples == 0 {
		return 0
	}
	return d.lastX - d.startX
}

func (d *Distance) Reset() {
	d.startX = 0
	d.lastX = 0
	d.samples = 0
}
