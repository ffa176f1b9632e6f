package spheric

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// randVector returns a vector with components in [-1, 1).
func randVector(rng *rand.Rand) Vector {
	return Vector{
		X: rng.Float64()*2 - 1,
		Y: rng.Float64()*2 - 1,
		Z: rng.Float64()*2 - 1,
	}
}

func TestVectorLength(t *testing.T) {
	require.InDelta(t, 5, Vector{X: 3, Y: 4}.Length(), Epsilon)
	require.InDelta(t, math.Sqrt(3), Vector{X: 1, Y: -1, Z: 1}.Length(), Epsilon)
	require.Equal(t, 0.0, Vector{}.Length())
}

func TestVectorUnitIdempotence(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 100; i++ {
		v := randVector(rng)
		if v.Length() < 1e-3 {
			continue
		}
		require.InDelta(t, 1, v.Unit().Length(), Epsilon)
		// Normalizing an already-unit vector changes nothing.
		require.True(t, v.Unit().Eq(v.Unit().Unit()))
	}
}

func TestVectorCrossAntisymmetry(t *testing.T) {
	rng := rand.New(rand.NewSource(2))
	for i := 0; i < 100; i++ {
		a, b := randVector(rng), randVector(rng)
		require.True(t, a.Cross(b).Eq(b.Cross(a).Neg()))
	}
}

func TestVectorCrossOrthogonal(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	for i := 0; i < 100; i++ {
		a, b := randVector(rng), randVector(rng)
		c := a.Cross(b)
		require.InDelta(t, 0, c.Dot(a), Epsilon)
		require.InDelta(t, 0, c.Dot(b), Epsilon)
	}
}

func TestVectorAlgebra(t *testing.T) {
	a := Vector{X: 1, Y: 2, Z: 3}
	b := Vector{X: 4, Y: 5, Z: 6}

	assert.True(t, a.Add(b).Eq(Vector{X: 5, Y: 7, Z: 9}))
	assert.True(t, b.Sub(a).Eq(Vector{X: 3, Y: 3, Z: 3}))
	assert.True(t, a.Neg().Eq(Vector{X: -1, Y: -2, Z: -3}))
	assert.True(t, a.Scale(2).Eq(Vector{X: 2, Y: 4, Z: 6}))
	assert.InDelta(t, 32, a.Dot(b), Epsilon)
	assert.True(t, a.Cross(b).Eq(Vector{X: -3, Y: 6, Z: -3}))
}

func TestVectorEq(t *testing.T) {
	a := Vector{X: 1, Y: 2, Z: 3}

	assert.True(t, a.Eq(a))
	assert.True(t, a.Eq(Vector{X: 1 + Epsilon/2, Y: 2 - Epsilon/2, Z: 3}))
	assert.False(t, a.Eq(Vector{X: 1 + 2*Epsilon, Y: 2, Z: 3}))
	assert.False(t, a.Eq(Vector{X: 1, Y: 2, Z: -3}))
}

func TestVectorHashConsistentWithEq(t *testing.T) {
	a := Vector{X: 1, Y: 2, Z: 3}
	// Offsets well inside the quantization cell keep the hash stable.
	b := Vector{X: 1 + Epsilon/5, Y: 2 - Epsilon/5, Z: 3 + Epsilon/5}

	require.True(t, a.Eq(b))
	require.Equal(t, a.Hash(), b.Hash())

	// Clearly distinct vectors hash apart.
	require.NotEqual(t, a.Hash(), Vector{X: 1.5, Y: 2, Z: 3}.Hash())
	require.NotEqual(t, a.Hash(), a.Neg().Hash())

	// Signed zero quantizes like zero.
	require.Equal(t, Vector{}.Hash(), Vector{X: math.Copysign(0, -1)}.Hash())
}
