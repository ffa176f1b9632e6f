package spheric

import (
	"fmt"
	"math"
)

// Arc is a bounded segment of a great circle between two points,
// following the shorter of the two paths along the circle.
type Arc struct {
	circle GreatCircle
	start  Coord
	end    Coord
	length float64
}

// NewArc returns the arc from start to end along the great circle
// through both points. The endpoints must be distinct and non-antipodal
// for the circle to be determined; see NewGreatCircle.
func NewArc(start, end Coord) Arc {
	return Arc{
		circle: NewGreatCircle(start, end),
		start:  start,
		end:    end,
		length: ArcLength(start, end),
	}
}

// ArcOnCircle returns the arc from start to end along the supplied
// circle. Both endpoints must lie on the circle; an endpoint off the
// circle is an invalid argument and returns an error.
func ArcOnCircle(circle GreatCircle, start, end Coord) (Arc, error) {
	if !circle.Contains(start) {
		return Arc{}, fmt.Errorf("spheric: start point %+v does not lie on the circle", start)
	}
	if !circle.Contains(end) {
		return Arc{}, fmt.Errorf("spheric: end point %+v does not lie on the circle", end)
	}
	return Arc{circle: circle, start: start, end: end, length: ArcLength(start, end)}, nil
}

// ArcLength returns the geodesic distance between two points, in
// radians.
func ArcLength(a, b Coord) float64 {
	// 2⋅asin(chord/2), where chord is the straight-line distance
	// between the Cartesian forms of the two points. Better
	// conditioned than acos of the dot product for nearby points.
	chord := a.Vector().Sub(b.Vector()).Length()
	return 2 * math.Asin(clamp1(chord/2))
}

// Start point of the arc.
func (a Arc) Start() Coord {
	return a.start
}

// End point of the arc.
func (a Arc) End() Coord {
	return a.end
}

// Circle returns the great circle the arc lies on.
func (a Arc) Circle() GreatCircle {
	return a.circle
}

// Length of the arc in radians, computed once at construction.
func (a Arc) Length() float64 {
	return a.length
}

// Midpoint returns the point on the arc at equal geodesic distance from
// Start and End.
//
// The normalized chord midpoint and its antipode are the two points of
// the circle equidistant from both endpoints; the containment test
// selects the one on the bounded arc.
func (a Arc) Midpoint() Coord {
	mid := CoordFromVector(a.start.Vector().Add(a.end.Vector()))
	if !a.Contains(mid) {
		mid = mid.Antipode()
	}
	return mid
}

// Contains reports whether p lies on the bounded arc, not merely on the
// underlying circle: the geodesic distances from p to the two endpoints
// must sum to the arc's length, within Epsilon.
func (a Arc) Contains(p Coord) bool {
	return eqish(ArcLength(a.start, p)+ArcLength(p, a.end), a.length)
}

// Intersect returns the point where the two bounded arcs cross. It
// reports false when either arc has zero length within Epsilon, when
// the underlying circles are coincident, or when neither of the two
// candidate crossing points lies on both arcs.
func (a Arc) Intersect(other Arc) (Coord, bool) {
	if eqish(a.length, 0) || eqish(other.length, 0) {
		return Coord{}, false
	}
	p, ok := a.circle.Intersect(other.circle)
	if !ok {
		return Coord{}, false
	}
	if a.Contains(p) && other.Contains(p) {
		return p, true
	}
	if q := p.Antipode(); a.Contains(q) && other.Contains(q) {
		return q, true
	}
	return Coord{}, false
}
