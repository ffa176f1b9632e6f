package spheric

import "math"

// Vector is a Cartesian 3-vector.
//
// Length and Unit are undefined for the zero vector: the division by a
// zero length propagates NaN components rather than returning an error.
// Callers must not invoke them on a zero vector.
type Vector struct {
	X, Y, Z float64
}

// Length returns the Euclidean norm of the vector.
func (v Vector) Length() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y + v.Z*v.Z)
}

// Unit returns the vector scaled to length 1.
func (v Vector) Unit() Vector {
	return v.Scale(1 / v.Length())
}

// Cross returns the cross product v × other.
func (v Vector) Cross(other Vector) Vector {
	return Vector{
		X: v.Y*other.Z - v.Z*other.Y,
		Y: v.Z*other.X - v.X*other.Z,
		Z: v.X*other.Y - v.Y*other.X,
	}
}

// Dot returns the dot product of the two vectors.
func (v Vector) Dot(other Vector) float64 {
	return v.X*other.X + v.Y*other.Y + v.Z*other.Z
}

// Neg returns the vector pointing in the opposite direction.
func (v Vector) Neg() Vector {
	return Vector{X: -v.X, Y: -v.Y, Z: -v.Z}
}

// Add returns v + other.
func (v Vector) Add(other Vector) Vector {
	return Vector{X: v.X + other.X, Y: v.Y + other.Y, Z: v.Z + other.Z}
}

// Sub returns v - other.
func (v Vector) Sub(other Vector) Vector {
	return Vector{X: v.X - other.X, Y: v.Y - other.Y, Z: v.Z - other.Z}
}

// Scale returns the vector multiplied by the scalar s.
func (v Vector) Scale(s float64) Vector {
	return Vector{X: v.X * s, Y: v.Y * s, Z: v.Z * s}
}

// Eq reports whether the two vectors are equal within tolerance: each
// component pair must differ by less than Epsilon. Never compare
// vectors with ==; exact float equality is meaningless after any
// arithmetic.
func (v Vector) Eq(other Vector) bool {
	return eqish(v.X, other.X) && eqish(v.Y, other.Y) && eqish(v.Z, other.Z)
}

// Hash returns a hash of the vector with each component quantized to
// the Epsilon grid, so vectors that compare Eq and fall in the same
// grid cell hash identically. Tolerant equality is not transitive, so
// two vectors straddling a grid boundary can still compare Eq yet hash
// apart.
func (v Vector) Hash() uint64 {
	// FNV-1a over the three quantized components.
	const (
		offset64 = 14695981039346656037
		prime64  = 1099511628211
	)
	h := uint64(offset64)
	for _, c := range [3]float64{v.X, v.Y, v.Z} {
		h ^= uint64(int64(math.Round(c / Epsilon)))
		h *= prime64
	}
	return h
}
