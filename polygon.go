package spheric

import (
	"fmt"
	"math"
)

// Polygon is a region of the unit sphere bounded by an ordered cycle of
// vertices joined by geodesic edges. The cycle is implicitly closed:
// the last vertex connects back to the first.
//
// The edges must not self-intersect. This is not validated, and the
// area of a self-intersecting polygon is meaningless.
type Polygon struct {
	vertices []Coord
}

// NewPolygon returns the polygon with the given vertices in traversal
// order. Fewer than three vertices do not bound a region and return an
// error.
func NewPolygon(vertices ...Coord) (Polygon, error) {
	if len(vertices) < 3 {
		return Polygon{}, fmt.Errorf("spheric: polygon needs at least 3 vertices, got %d", len(vertices))
	}
	p := Polygon{vertices: make([]Coord, len(vertices))}
	copy(p.vertices, vertices)
	return p, nil
}

// Vertices returns a copy of the polygon's vertices in traversal order.
func (p Polygon) Vertices() []Coord {
	out := make([]Coord, len(p.vertices))
	copy(out, p.vertices)
	return out
}

// Area returns the enclosed area in steradians.
//
// By Girard's theorem the sum of a spherical polygon's interior angles
// exceeds the planar value (n-2)⋅π by exactly the enclosed area on a
// unit sphere. The interior angle at each vertex is the angle between
// the tangents of the two incident edges, both oriented away from the
// vertex.
//
// Vertices that all lie on a single great circle enclose no area and
// yield a result near zero.
func (p Polygon) Area() float64 {
	n := len(p.vertices)
	var angles float64
	for i := 0; i < n; i++ {
		v := p.vertices[i]
		prev := p.vertices[(i+n-1)%n]
		next := p.vertices[(i+1)%n]

		toPrev := NewGreatCircle(v, prev).TangentAtToward(v, prev.Vector())
		toNext := NewGreatCircle(v, next).TangentAtToward(v, next.Vector())
		angles += math.Acos(clamp1(toPrev.Dot(toNext)))
	}
	return angles - float64(n-2)*math.Pi
}

// Perimeter returns the total geodesic length of the polygon's edges,
// in radians.
func (p Polygon) Perimeter() float64 {
	n := len(p.vertices)
	var sum float64
	for i := 0; i < n; i++ {
		sum += ArcLength(p.vertices[i], p.vertices[(i+1)%n])
	}
	return sum
}
