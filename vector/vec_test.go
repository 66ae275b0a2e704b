package vector

import (
	"testing"

	"github.com/chewxy/math32"
	"github.com/stretchr/testify/assert"
)

//Vector module testing
func TestVecAdd(t *testing.T) {
	var x = Vec32{1.0, 1.0, 1.0}
	var y = Vec32{1, 1, 1}

	assert.Equal(t, Vec32{2, 2, 2}, *x.Add(y))
	assert.Equal(t, Vec32{2, 2, 2}, x, "Add should mutate the receiver")
	assert.Equal(t, Vec32{3, 3, 3}, Add(x, y))
	assert.Equal(t, Vec32{2, 2, 2}, x, "Add function should not mutate")
}

func TestVecDot(t *testing.T) {
	var x = Vec32{1, 2, 3}
	var y = Vec32{1, 1, 1}

	assert.Equal(t, float32(6), Dot(x, y))
	assert.Equal(t, float32(6), x.Dot(y))
}

func TestVector(t *testing.T) {
	a := Vec32{2, 2, 2}

	assert.Equal(t, Vec32{2, 2, 2}, *NewVec32(2))
	assert.Equal(t, Vec32{4, 4, 4}, Scale(a, 2.0))
	assert.Equal(t, Vec32{0, 0, 0}, Sub(a, a))
	assert.Equal(t, Vec32{2, 0, -2}, Cross(Vec32{-2, -2, -2}, Vec32{1, 2, 1}))
	assert.Equal(t, math32.Sqrt(12), Length(a))
	assert.Equal(t, Vec32{1, 2, 3}, Abs(Vec32{-1, 2, -3}))

	b := Vec32{1, 2, 3}
	b.Scale(2).Sub(Vec32{1, 1, 1})
	assert.Equal(t, Vec32{1, 3, 5}, b)
	b.Clear()
	assert.Equal(t, Vec32{}, b)
}

func TestNormalize(t *testing.T) {
	n := Normalize(Vec32{3, 4, 12})
	assert.InDelta(t, 1.0, n.Length(), 1e-6, "Normalized vector error: %s", n)
	assert.True(t, isEpsilon(Length(Normalize(Vec32{0, 0, 5})), 1.0))
	assert.Equal(t, Vec32{}, Normalize(Vec32{}), "zero vector normalizes to zero")
}

func TestMinMaxLerp(t *testing.T) {
	a := Vec32{0, 5, -1}
	b := Vec32{2, 1, -3}

	assert.Equal(t, Vec32{0, 1, -3}, Min(a, b))
	assert.Equal(t, Vec32{2, 5, -1}, Max(a, b))
	assert.Equal(t, Vec32{1, 3, -2}, Lerp(a, b, Vec32{0.5, 0.5, 0.5}))
	assert.Equal(t, a, Lerp(a, b, Vec32{}))
	assert.True(t, VecEquals(b, Lerp(a, b, Vec32{1, 1, 1})))
}

func TestDistanceString(t *testing.T) {
	a := Vec32{1, 0, 0}
	assert.Equal(t, float32(1), a.Distance(Vec32{}))
	assert.Equal(t, "[ 1.000000, 0.000000, 0.000000]", a.String())
}

func isEpsilon(a float32, b float32) bool {
	return math32.Abs(b-a) <= 0.00000019
}
