package spheric

import "math"

// Coord is an angular coordinate on the unit sphere. Theta is the
// colatitude in radians, 0 at the +Y pole and π at the -Y pole. Phi is
// the longitude in radians, measured from the +Z axis toward +X and
// normalized to [0, 2π).
type Coord struct {
	Theta float64
	Phi   float64
}

// Vector converts the coordinate to its Cartesian unit-vector form.
func (c Coord) Vector() Vector {
	// x = sinθ⋅sinϕ, y = cosθ, z = sinθ⋅cosϕ
	sinTheta := math.Sin(c.Theta)
	return Vector{
		X: sinTheta * math.Sin(c.Phi),
		Y: math.Cos(c.Theta),
		Z: sinTheta * math.Cos(c.Phi),
	}
}

// CoordFromVector converts a Cartesian vector to its angular form. The
// vector need not have length 1; it is normalized first. The zero
// vector has no angular form and yields NaN components.
func CoordFromVector(v Vector) Coord {
	u := v.Unit()
	// θ = acos(y), ϕ = atan2(x, z) wrapped to [0, 2π)
	phi := math.Atan2(u.X, u.Z)
	if phi < 0 {
		phi += 2 * math.Pi
	}
	return Coord{Theta: math.Acos(clamp1(u.Y)), Phi: phi}
}

// Antipode returns the coordinate diametrically opposite c.
func (c Coord) Antipode() Coord {
	phi := math.Mod(c.Phi+math.Pi, 2*math.Pi)
	if phi < 0 {
		phi += 2 * math.Pi
	}
	return Coord{Theta: math.Pi - c.Theta, Phi: phi}
}

// Eq reports whether the two coordinates denote the same point on the
// sphere, within the package tolerance. The comparison happens in
// Cartesian form, so it is insensitive to the longitude ambiguity at
// the poles.
func (c Coord) Eq(other Coord) bool {
	return c.Vector().Eq(other.Vector())
}
