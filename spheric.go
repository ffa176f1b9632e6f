// Package spheric provides geometric primitives on the surface of the
// unit sphere: Cartesian 3-vectors, spherical angular coordinates,
// great circles, great-circle arcs, and spherical polygons.
//
// All distances and areas are angular: the sphere has radius 1, so arc
// lengths are in radians and areas are in steradians.
//
// Every type is an immutable value and every operation is a pure
// function of its inputs, so values may be shared freely between
// goroutines without synchronization.
package spheric

import "math"

// Epsilon is the tolerance used by every approximate comparison in this
// package. Vector equality, circle membership, and arc containment all
// treat quantities within Epsilon of each other as equal.
const Epsilon = 1e-9

// eqish reports whether x and y are within Epsilon of each other.
func eqish(x, y float64) bool {
	return math.Abs(x-y) < Epsilon
}

// clamp1 clamps x to [-1, 1] before it is fed to asin or acos, guarding
// against arguments that drift just past the domain through rounding.
func clamp1(x float64) float64 {
	if x > 1 {
		return 1
	} else if x < -1 {
		return -1
	}
	return x
}
