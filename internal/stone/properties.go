package stone

import (
	"math"

	"github.com/san-kum/skipstone/internal/geom"
)

// meshPoints is the approximate collision point-cloud size used when sampling
// the outline interior.
const meshPoints = 4000

// Properties holds the mass properties derived once from a validated
// blueprint. The outline and mesh are re-centered on the area centroid, so
// the body origin coincides with the center of mass.
type Properties struct {
	Name string

	// Mass in kg: outline area x thickness x density.
	Mass float64

	// Area of the outline polygon in m^2.
	Area float64

	// Thickness of the slab in m.
	Thickness float64

	// PitchInertia is the moment about the axis perpendicular to the
	// simulation plane (flipping). SpinInertia is the moment about the
	// in-plane long axis (spin), kept for diagnostics.
	PitchInertia float64
	SpinInertia  float64

	// Outline in centroid coordinates.
	Outline geom.Polygon

	// Mesh is the collision point cloud in centroid coordinates.
	Mesh []geom.Vec

	// DMaxSq is the squared distance from the centroid to the farthest mesh
	// point, used as a cheap water-contact reject.
	DMaxSq float64
}

// NewProperties validates the blueprint and derives mass, inertia and the
// collision point cloud.
func NewProperties(b *Blueprint) (*Properties, error) {
	if err := b.Validate(); err != nil {
		return nil, err
	}

	area := b.Outline.Area()
	centroid := b.Outline.Centroid()

	density := b.Density
	if density <= 0 {
		density = DensitySlate
	}
	mass := area * b.Thickness * density

	outline := b.Outline.Translate(geom.Vec{X: -centroid.X, Y: -centroid.Y})
	mesh := sampleMesh(outline, meshPoints, area)

	p := &Properties{
		Name:         b.Name,
		Mass:         mass,
		Area:         area,
		Thickness:    b.Thickness,
		Outline:      outline,
		Mesh:         mesh,
		PitchInertia: pitchInertia(mesh, mass),
		SpinInertia:  spinInertia(mesh, mass),
	}

	for _, pt := range mesh {
		if d := pt.LengthSq(); d > p.DMaxSq {
			p.DMaxSq = d
		}
	}

	return p, nil
}

// DMax is the distance from the centroid to the farthest sampled point.
func (p *Properties) DMax() float64 {
	return math.Sqrt(p.DMaxSq)
}

// sampleMesh grid-samples the outline interior so that each point represents
// roughly equal area.
func sampleMesh(outline geom.Polygon, n int, area float64) []geom.Vec {
	if len(outline) == 0 || area < 1e-9 {
		return nil
	}

	min, max := outline.Bounds()
	w := max.X - min.X
	h := max.Y - min.Y
	if w < 1e-9 || h < 1e-9 {
		return nil
	}

	delta := math.Sqrt(area / float64(n))
	cols := int(math.Ceil(w/delta)) + 1
	rows := int(math.Ceil(h/delta)) + 1

	mesh := make([]geom.Vec, 0, n)
	for i := 0; i < rows; i++ {
		y := min.Y + float64(i)*delta
		if y > max.Y {
			continue
		}
		for j := 0; j < cols; j++ {
			x := min.X + float64(j)*delta
			if x > max.X {
				continue
			}
			pt := geom.Vec{X: x, Y: y}
			if outline.Contains(pt) {
				mesh = append(mesh, pt)
			}
		}
	}
	return mesh
}

// pitchInertia sums m_i * x_i^2 over the point cloud: the moment resisting
// rotation about the horizontal axis through the centroid.
func pitchInertia(mesh []geom.Vec, mass float64) float64 {
	if len(mesh) == 0 {
		return 0
	}
	perPoint := mass / float64(len(mesh))
	sum := 0.0
	for _, pt := range mesh {
		sum += pt.X * pt.X
	}
	return perPoint * sum
}

// spinInertia sums m_i * (x_i^2 + y_i^2): the polar moment about the
// centroid.
func spinInertia(mesh []geom.Vec, mass float64) float64 {
	if len(mesh) == 0 {
		return 0
	}
	perPoint := mass / float64(len(mesh))
	sum := 0.0
	for _, pt := range mesh {
		sum += pt.LengthSq()
	}
	return perPoint * sum
}
