package editor

import (
	"github.com/Yeicor/sdfx-editor/scene"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"testing"
)

func newTestGeometry() *geometryLibrary {
	g := newGeometryLibrary()
	g.cells = 12
	return g
}

func TestGeometryUnitMeshes(t *testing.T) {
	g := newTestGeometry()
	for _, kind := range []scene.Kind{scene.KindCube, scene.KindSphere} {
		mesh, err := g.Mesh(kind)
		require.NoError(t, err, kind.String())
		require.NotEmpty(t, mesh.Triangles, kind.String())
		// Same extents as the pick volume of a primitive
		bb := mesh.BoundingBox()
		for _, v := range []float64{bb.Min.X, bb.Min.Y, bb.Min.Z} {
			assert.InDelta(t, -0.5, v, 0.1, kind.String())
		}
		for _, v := range []float64{bb.Max.X, bb.Max.Y, bb.Max.Z} {
			assert.InDelta(t, 0.5, v, 0.1, kind.String())
		}
	}
}

func TestGeometryIsShared(t *testing.T) {
	g := newTestGeometry()
	first, err := g.Mesh(scene.KindCube)
	require.NoError(t, err)
	second, err := g.Mesh(scene.KindCube)
	require.NoError(t, err)
	assert.Same(t, first, second)

	g.Release()
	third, err := g.Mesh(scene.KindCube)
	require.NoError(t, err)
	assert.NotSame(t, first, third)
}

func TestGeometryOnlyForPrimitives(t *testing.T) {
	g := newTestGeometry()
	for _, kind := range []scene.Kind{scene.KindFigure, scene.KindGroup} {
		_, err := g.Mesh(kind)
		assert.ErrorIs(t, err, scene.ErrUnknownKind)
	}
}
