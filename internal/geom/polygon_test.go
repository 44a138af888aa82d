package geom

import (
	"math"
	"testing"
)

func TestSquareArea(t *testing.T) {
	p := square(0.5)
	if math.Abs(p.Area()-1.0) > 1e-12 {
		t.Errorf("unit square area: got %f", p.Area())
	}
}

func TestCentroidOffsetSquare(t *testing.T) {
	p := square(1).Translate(Vec{3, -2})
	c := p.Centroid()

	if math.Abs(c.X-3) > 1e-9 || math.Abs(c.Y+2) > 1e-9 {
		t.Errorf("expected centroid (3,-2), got (%f,%f)", c.X, c.Y)
	}
}

func TestCentroidDegenerate(t *testing.T) {
	// Collinear points have zero area; centroid falls back to vertex average.
	p := Polygon{{0, 0}, {1, 0}, {2, 0}}
	c := p.Centroid()

	if math.Abs(c.X-1) > 1e-9 || math.Abs(c.Y) > 1e-9 {
		t.Errorf("expected vertex average (1,0), got (%f,%f)", c.X, c.Y)
	}
}

func TestContains(t *testing.T) {
	p := square(1)

	if !p.Contains(Vec{0, 0}) {
		t.Error("center should be inside")
	}
	if p.Contains(Vec{2, 0}) {
		t.Error("(2,0) should be outside")
	}
}

func TestIsSimple(t *testing.T) {
	if !square(1).IsSimple() {
		t.Error("square should be simple")
	}

	bowtie := Polygon{{0, 0}, {1, 1}, {1, 0}, {0, 1}}
	if bowtie.IsSimple() {
		t.Error("bowtie should be self-intersecting")
	}

	if (Polygon{{0, 0}, {1, 1}}).IsSimple() {
		t.Error("two points are not a simple polygon")
	}
}

func TestTransformRoundTrip(t *testing.T) {
	p := Polygon{{1, 0}, {0, 1}, {-1, 0}}
	angle := math.Pi / 3
	pos := Vec{5, -1}

	world := p.Transform(pos, angle)
	if math.Abs(world.Area()-p.Area()) > 1e-9 {
		t.Errorf("rigid transform changed area: %f vs %f", world.Area(), p.Area())
	}

	c := p.Centroid().Rotate(angle).Add(pos)
	wc := world.Centroid()
	if math.Abs(c.X-wc.X) > 1e-9 || math.Abs(c.Y-wc.Y) > 1e-9 {
		t.Errorf("transformed centroid mismatch: (%f,%f) vs (%f,%f)", c.X, c.Y, wc.X, wc.Y)
	}
}

func TestVecRotate(t *testing.T) {
	v := Vec{1, 0}.Rotate(math.Pi / 2)
	if math.Abs(v.X) > 1e-12 || math.Abs(v.Y-1) > 1e-12 {
		t.Errorf("expected (0,1), got (%f,%f)", v.X, v.Y)
	}
}
