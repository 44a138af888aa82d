package stone

import (
	"errors"
	"math"

	"github.com/san-kum/skipstone/internal/geom"
)

var (
	// ErrEmptyOutline indicates a blueprint with no outline points.
	ErrEmptyOutline = errors.New("stone: outline is empty")

	// ErrTooFewVertices indicates an outline with fewer than three vertices.
	ErrTooFewVertices = errors.New("stone: outline needs at least three vertices")

	// ErrSelfIntersecting indicates a non-simple outline polygon.
	ErrSelfIntersecting = errors.New("stone: outline is self-intersecting")

	// ErrDegenerateArea indicates an outline with near-zero enclosed area.
	ErrDegenerateArea = errors.New("stone: outline encloses no area")
)

// DensitySlate is the default stone density in kg/m^3.
const DensitySlate = 2700.0

// Blueprint is the immutable shape description handed to the physics core:
// a closed outline in body-local coordinates plus material parameters.
type Blueprint struct {
	Name      string
	Outline   geom.Polygon
	Thickness float64
	Density   float64
}

// Validate rejects degenerate outlines before they reach the integrator.
func (b *Blueprint) Validate() error {
	if len(b.Outline) == 0 {
		return ErrEmptyOutline
	}
	if len(b.Outline) < 3 {
		return ErrTooFewVertices
	}
	if !b.Outline.IsSimple() {
		return ErrSelfIntersecting
	}
	if b.Outline.Area() < 1e-9 {
		return ErrDegenerateArea
	}
	return nil
}

// Ellipse builds an elliptical outline with semi-axes a, b and n vertices.
func Ellipse(name string, a, b float64, n int) *Blueprint {
	outline := make(geom.Polygon, n)
	for i := 0; i < n; i++ {
		angle := 2 * math.Pi * float64(i) / float64(n)
		outline[i] = geom.Vec{X: a * math.Cos(angle), Y: b * math.Sin(angle)}
	}
	return &Blueprint{Name: name, Outline: outline, Thickness: 0.01, Density: DensitySlate}
}

// Disc builds a circular outline of radius r with n vertices.
func Disc(name string, r float64, n int) *Blueprint {
	return Ellipse(name, r, r, n)
}

// Rect builds a rectangular outline centered on the origin.
func Rect(name string, w, h float64) *Blueprint {
	outline := geom.Polygon{
		{X: -w / 2, Y: -h / 2},
		{X: w / 2, Y: -h / 2},
		{X: w / 2, Y: h / 2},
		{X: -w / 2, Y: h / 2},
	}
	return &Blueprint{Name: name, Outline: outline, Thickness: 0.01, Density: DensitySlate}
}
