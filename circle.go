package spheric

// GreatCircle is the circle cut from the unit sphere by a plane through
// the origin, represented by the plane's unit normal.
type GreatCircle struct {
	normal Vector
}

// NewGreatCircle returns the great circle through the two given points.
//
// The points must be distinct and non-antipodal; coincident or
// antipodal points leave the plane undetermined and the resulting
// normal has NaN components.
func NewGreatCircle(a, b Coord) GreatCircle {
	return GreatCircle{normal: a.Vector().Cross(b.Vector()).Unit()}
}

// GreatCircleFromNormal returns the great circle whose plane has the
// given normal. The normal need not have length 1; it is normalized
// first.
func GreatCircleFromNormal(n Vector) GreatCircle {
	return GreatCircle{normal: n.Unit()}
}

// Normal of the circle's plane, unit length.
func (g GreatCircle) Normal() Vector {
	return g.normal
}

// Contains reports whether p lies on the circle: the dot product of the
// point and the plane normal must be within Epsilon of zero.
func (g GreatCircle) Contains(p Coord) bool {
	return eqish(g.normal.Dot(p.Vector()), 0)
}

// TangentAt returns a unit tangent to the circle at p, which must lie
// on the circle. Every point has two antipodal tangent directions and
// which of the two is returned is unspecified; use TangentAtToward when
// the traversal direction matters.
func (g GreatCircle) TangentAt(p Coord) Vector {
	return g.normal.Cross(p.Vector()).Unit()
}

// TangentAtToward returns the unit tangent to the circle at p whose dot
// product with dir is non-negative, fixing a deterministic traversal
// direction.
func (g GreatCircle) TangentAtToward(p Coord, dir Vector) Vector {
	t := g.TangentAt(p)
	if t.Dot(dir) < 0 {
		return t.Neg()
	}
	return t
}

// Intersect returns one of the two antipodal points where the two
// circles cross; the other is its Antipode. It reports false when the
// circles are coincident, that is when their normals are parallel or
// anti-parallel within Epsilon, because no unique crossing exists then.
func (g GreatCircle) Intersect(other GreatCircle) (Coord, bool) {
	cross := g.normal.Cross(other.normal)
	if eqish(cross.Length(), 0) {
		return Coord{}, false
	}
	return CoordFromVector(cross), true
}
