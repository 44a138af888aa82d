package hydro

import "github.com/san-kum/skipstone/internal/geom"

// Submerged is the portion of the body below the water line, in world
// coordinates. It is derived fresh for every derivative evaluation and never
// cached across trial states.
type Submerged struct {
	Polygon  geom.Polygon
	Area     float64
	Centroid geom.Vec

	// Depth is how far the deepest vertex sits below the water line.
	Depth float64
}

// ComputeSubmerged poses the body-local outline (rotate then translate) and
// clips it against the water line. Fewer than three surviving vertices is a
// valid zero-area result, not an error.
func ComputeSubmerged(outline geom.Polygon, pos geom.Vec, angle, waterLevel float64) Submerged {
	world := outline.Transform(pos, angle)
	clipped := geom.ClipBelowLine(world, waterLevel)

	if len(clipped) < 3 {
		return Submerged{}
	}

	min, _ := clipped.Bounds()
	return Submerged{
		Polygon:  clipped,
		Area:     clipped.Area(),
		Centroid: clipped.Centroid(),
		Depth:    waterLevel - min.Y,
	}
}
