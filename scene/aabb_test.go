package scene

import (
	"github.com/fogleman/fauxgl"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"math"
	"testing"
)

func unitBox() AABB {
	return NewAABBHalfExtents(0.5, 0.5, 0.5)
}

func assertVectorInDelta(t *testing.T, expected, got fauxgl.Vector) {
	t.Helper()
	assert.InDelta(t, expected.X, got.X, 1e-9, "X")
	assert.InDelta(t, expected.Y, got.Y, 1e-9, "Y")
	assert.InDelta(t, expected.Z, got.Z, 1e-9, "Z")
}

func TestAABBRayHitFront(t *testing.T) {
	hit, dist := unitBox().RayHit(fauxgl.Vector{Z: -5}, fauxgl.Vector{Z: 1}, fauxgl.Identity())
	assert.True(t, hit)
	assert.InDelta(t, 4.5, dist, 1e-9)
}

func TestAABBRayHitAway(t *testing.T) {
	hit, dist := unitBox().RayHit(fauxgl.Vector{Z: -5}, fauxgl.Vector{Z: -1}, fauxgl.Identity())
	assert.False(t, hit)
	assert.True(t, math.IsInf(dist, 1))
}

func TestAABBRayHitCases(t *testing.T) {
	cases := []struct {
		name      string
		origin    fauxgl.Vector
		direction fauxgl.Vector
		hit       bool
		dist      float64
	}{
		{"diagonal", fauxgl.Vector{X: -5, Y: -5, Z: -5}, fauxgl.Vector{X: 1, Y: 1, Z: 1}.Normalize(), true, math.Sqrt(3) * 4.5},
		{"parallel inside slabs", fauxgl.Vector{X: 0.25, Y: -0.25, Z: -3}, fauxgl.Vector{Z: 1}, true, 2.5},
		{"parallel outside slab", fauxgl.Vector{X: 2, Z: -3}, fauxgl.Vector{Z: 1}, false, math.Inf(1)},
		{"parallel on slab plane", fauxgl.Vector{X: 0.5, Z: -3}, fauxgl.Vector{Z: 1}, false, math.Inf(1)},
		{"zero direction", fauxgl.Vector{}, fauxgl.Vector{}, false, math.Inf(1)},
		{"passes beside", fauxgl.Vector{X: 1, Z: -5}, fauxgl.Vector{Z: 1}, false, math.Inf(1)},
		{"from inside", fauxgl.Vector{}, fauxgl.Vector{X: 1}, true, -0.5},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			hit, dist := unitBox().RayHit(tc.origin, tc.direction, fauxgl.Identity())
			assert.Equal(t, tc.hit, hit)
			if math.IsInf(tc.dist, 1) {
				assert.True(t, math.IsInf(dist, 1), "expected the +Inf sentinel, got %v", dist)
			} else {
				assert.InDelta(t, tc.dist, dist, 1e-9)
			}
		})
	}
}

func TestAABBRayHitToLocal(t *testing.T) {
	// The box lives 10 units further along Z in the caller's space
	hit, dist := unitBox().RayHit(fauxgl.Vector{Z: -5}, fauxgl.Vector{Z: 1}, Translation(0, 0, 10))
	assert.True(t, hit)
	assert.InDelta(t, 14.5, dist, 1e-9)
}

func TestAABBRayHitSingularMatrix(t *testing.T) {
	hit, dist := unitBox().RayHit(fauxgl.Vector{Z: -5}, fauxgl.Vector{Z: 1}, Scaling(0, 0, 0))
	assert.False(t, hit)
	assert.True(t, math.IsInf(dist, 1))
}

func TestAABBScaleRoundTrip(t *testing.T) {
	box := NewAABB(fauxgl.Vector{X: 1, Y: 2, Z: 3}, fauxgl.Vector{X: 2, Y: 5, Z: 4})
	orig := box
	for _, f := range []float64{1.1, 0.9, 3, 0.25} {
		box.Scale(f)
		box.Scale(1 / f)
		assertVectorInDelta(t, orig.Min, box.Min)
		assertVectorInDelta(t, orig.Max, box.Max)
	}
}

func TestAABBScaleAboutCenter(t *testing.T) {
	box := NewAABB(fauxgl.Vector{X: 1, Y: 1, Z: 1}, fauxgl.Vector{X: 3, Y: 3, Z: 3})
	box.Scale(2)
	assertVectorInDelta(t, fauxgl.Vector{X: 2, Y: 2, Z: 2}, box.Center())
	assertVectorInDelta(t, fauxgl.Vector{X: 4, Y: 4, Z: 4}, box.Size())
}

func TestAABBInvariants(t *testing.T) {
	require.Panics(t, func() { NewAABB(fauxgl.Vector{X: 1}, fauxgl.Vector{}) })
	box := unitBox()
	require.Panics(t, func() { box.Scale(0) })
	require.Panics(t, func() { box.Scale(-1) })
	require.Panics(t, func() { box.Scale(math.NaN()) })
}

func TestAABBTransformed(t *testing.T) {
	box := unitBox().Transformed(Translation(1, 2, 3).Mul(UniformScaling(2)))
	assertVectorInDelta(t, fauxgl.Vector{X: 0, Y: 1, Z: 2}, box.Min)
	assertVectorInDelta(t, fauxgl.Vector{X: 2, Y: 3, Z: 4}, box.Max)
}

func TestTransformVectorIgnoresTranslation(t *testing.T) {
	m := Translation(5, 5, 5).Mul(UniformScaling(3))
	assertVectorInDelta(t, fauxgl.Vector{X: 3}, TransformVector(m, fauxgl.Vector{X: 1}))
	assertVectorInDelta(t, fauxgl.Vector{X: 8, Y: 5, Z: 5}, TransformPoint(m, fauxgl.Vector{X: 1}))
}
