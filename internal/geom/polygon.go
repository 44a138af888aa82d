package geom

import "math"

// Polygon is a closed polygon given as an ordered vertex list. The closing
// edge from the last vertex back to the first is implicit.
type Polygon []Vec

// Area returns the unsigned area via the shoelace formula.
func (p Polygon) Area() float64 {
	return math.Abs(p.SignedArea())
}

// SignedArea is positive for counterclockwise winding.
func (p Polygon) SignedArea() float64 {
	if len(p) < 3 {
		return 0
	}
	area := 0.0
	n := len(p)
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		area += p[i].X*p[j].Y - p[j].X*p[i].Y
	}
	return area / 2
}

// Centroid returns the area centroid. Degenerate polygons (near-zero area)
// fall back to the vertex average so callers always get a finite point.
func (p Polygon) Centroid() Vec {
	if len(p) == 0 {
		return Vec{}
	}

	signedArea2 := 0.0
	var cx, cy float64
	n := len(p)
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		cross := p[i].X*p[j].Y - p[j].X*p[i].Y
		signedArea2 += cross
		cx += (p[i].X + p[j].X) * cross
		cy += (p[i].Y + p[j].Y) * cross
	}

	if math.Abs(signedArea2) < 1e-12 {
		var sum Vec
		for _, v := range p {
			sum = sum.Add(v)
		}
		return sum.Scale(1 / float64(n))
	}

	factor := 1 / (3 * signedArea2)
	return Vec{cx * factor, cy * factor}
}

// Bounds returns the axis-aligned bounding box (min, max corners).
func (p Polygon) Bounds() (Vec, Vec) {
	min := Vec{math.Inf(1), math.Inf(1)}
	max := Vec{math.Inf(-1), math.Inf(-1)}
	for _, v := range p {
		min.X = math.Min(min.X, v.X)
		min.Y = math.Min(min.Y, v.Y)
		max.X = math.Max(max.X, v.X)
		max.Y = math.Max(max.Y, v.Y)
	}
	return min, max
}

// Contains reports whether point lies inside the polygon (ray casting).
func (p Polygon) Contains(point Vec) bool {
	inside := false
	n := len(p)
	j := n - 1
	for i := 0; i < n; i++ {
		pi, pj := p[i], p[j]
		if (pi.Y > point.Y) != (pj.Y > point.Y) &&
			point.X < (pj.X-pi.X)*(point.Y-pi.Y)/(pj.Y-pi.Y)+pi.X {
			inside = !inside
		}
		j = i
	}
	return inside
}

// Transform maps body-local vertices to world coordinates by rotating about
// the origin and then translating.
func (p Polygon) Transform(pos Vec, angle float64) Polygon {
	c := math.Cos(angle)
	s := math.Sin(angle)
	out := make(Polygon, len(p))
	for i, v := range p {
		out[i] = Vec{
			X: pos.X + v.X*c - v.Y*s,
			Y: pos.Y + v.X*s + v.Y*c,
		}
	}
	return out
}

// Translate returns a copy shifted by offset.
func (p Polygon) Translate(offset Vec) Polygon {
	out := make(Polygon, len(p))
	for i, v := range p {
		out[i] = v.Add(offset)
	}
	return out
}

// IsSimple reports whether no two non-adjacent edges intersect. Quadratic in
// the vertex count, which is fine for hand-sized outlines checked once at
// initialization.
func (p Polygon) IsSimple() bool {
	n := len(p)
	if n < 3 {
		return false
	}
	for i := 0; i < n; i++ {
		a1 := p[i]
		a2 := p[(i+1)%n]
		for j := i + 1; j < n; j++ {
			// Skip adjacent edges (they share a vertex).
			if j == i || (j+1)%n == i || (i+1)%n == j {
				continue
			}
			b1 := p[j]
			b2 := p[(j+1)%n]
			if segmentsIntersect(a1, a2, b1, b2) {
				return false
			}
		}
	}
	return true
}

func segmentsIntersect(a1, a2, b1, b2 Vec) bool {
	d1 := a2.Sub(a1).Cross(b1.Sub(a1))
	d2 := a2.Sub(a1).Cross(b2.Sub(a1))
	d3 := b2.Sub(b1).Cross(a1.Sub(b1))
	d4 := b2.Sub(b1).Cross(a2.Sub(b1))
	return d1*d2 < 0 && d3*d4 < 0
}
