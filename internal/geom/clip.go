package geom

import "math"

// ClipBelowLine clips a polygon against the half-plane y < lineY using a
// Sutherland-Hodgman pass, inserting intersection vertices where edges cross
// the line. A vertex exactly on the line counts as above: the strict
// comparison avoids emitting spurious micro-polygons at tangent contact.
// Fewer than three surviving vertices means zero submerged area.
func ClipBelowLine(p Polygon, lineY float64) Polygon {
	n := len(p)
	if n == 0 {
		return nil
	}

	out := make(Polygon, 0, n+2)
	for i := 0; i < n; i++ {
		cur := p[i]
		next := p[(i+1)%n]

		curBelow := cur.Y < lineY
		nextBelow := next.Y < lineY

		switch {
		case curBelow && nextBelow:
			out = append(out, next)
		case curBelow && !nextBelow:
			if inter, ok := intersectHorizontal(cur, next, lineY); ok {
				out = append(out, inter)
			}
		case !curBelow && nextBelow:
			if inter, ok := intersectHorizontal(cur, next, lineY); ok {
				out = append(out, inter)
			}
			out = append(out, next)
		}
	}
	return out
}

// intersectHorizontal returns the intersection of segment p1-p2 with the
// horizontal line at y, if the endpoints straddle it.
func intersectHorizontal(p1, p2 Vec, y float64) (Vec, bool) {
	if (p1.Y-y)*(p2.Y-y) > 0 {
		return Vec{}, false
	}
	if math.Abs(p1.Y-p2.Y) < 1e-12 {
		return Vec{}, false
	}
	t := (y - p1.Y) / (p2.Y - p1.Y)
	return Vec{p1.X + t*(p2.X-p1.X), y}, true
}
