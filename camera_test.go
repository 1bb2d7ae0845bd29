package editor

import (
	"github.com/Yeicor/sdfx-editor/internal"
	"github.com/Yeicor/sdfx-editor/scene"
	"github.com/fogleman/fauxgl"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"image"
	"math/rand"
	"testing"
)

var testScreen = image.Point{X: 101, Y: 81}

func testProjection() fauxgl.Matrix {
	return viewProjection(70, float64(testScreen.X)/float64(testScreen.Y), 0.1, 1000, 15)
}

func TestScreenRayCenter(t *testing.T) {
	ray := screenRay(testProjection(), testScreen, 50, 40)
	assert.InDelta(t, 0, ray.Origin.X, 1e-6)
	assert.InDelta(t, 0, ray.Origin.Y, 1e-6)
	assert.Greater(t, ray.Origin.Z, 14.0) // Near the eye, in front of it
	assert.Less(t, ray.Origin.Z, 15.0)
	assert.InDelta(t, 0, ray.Direction.X, 1e-6)
	assert.InDelta(t, 0, ray.Direction.Y, 1e-6)
	assert.InDelta(t, -1, ray.Direction.Z, 1e-6)
}

func TestScreenRayDirections(t *testing.T) {
	topLeft := screenRay(testProjection(), testScreen, 0, 0)
	assert.Less(t, topLeft.Direction.X, 0.0)
	assert.Greater(t, topLeft.Direction.Y, 0.0) // Screen Y grows down, view Y grows up
	assert.InDelta(t, 1, topLeft.Direction.Length(), 1e-9)
	bottomRight := screenRay(testProjection(), testScreen, testScreen.X-1, testScreen.Y-1)
	assert.Greater(t, bottomRight.Direction.X, 0.0)
	assert.Less(t, bottomRight.Direction.Y, 0.0)
}

func TestScreenRayHitsProjectedPoint(t *testing.T) {
	projection := testProjection()
	p := fauxgl.Vector{X: 2, Y: -1.5, Z: 0.5}
	clip := projection.MulPositionW(p)
	ndcX, ndcY := clip.X/clip.W, clip.Y/clip.W
	cx := int((ndcX + 1) / 2 * float64(testScreen.X))
	cy := int((1 - ndcY) / 2 * float64(testScreen.Y))
	ray := screenRay(projection, testScreen, cx, cy)
	// Distance from p to the ray is below the size of a pixel at that depth
	toP := p.Sub(ray.Origin)
	closest := ray.Origin.Add(ray.Direction.MulScalar(toP.Dot(ray.Direction)))
	assert.Less(t, closest.Sub(p).Length(), 0.3)
}

// Placing below the cursor and then clicking the same pixel selects what was just placed, whatever the camera.
func TestPlaceThenPickBelowCursor(t *testing.T) {
	for _, kind := range []scene.Kind{scene.KindCube, scene.KindSphere, scene.KindFigure} {
		t.Run(kind.String(), func(t *testing.T) {
			local := internal.NewLocalScene(scene.New(scene.DefaultPalette(), scene.OptRand(rand.New(rand.NewSource(3)))))
			camera := scene.NewCamera()
			camera.Trackball().DragTo(10, 10, 0, 0)
			camera.Trackball().DragTo(40, 30, 30, 20)
			camera.Translate(1, -2, 3)
			ray := screenRay(testProjection(), testScreen, 70, 20)
			require.NoError(t, local.Place(internal.PlaceArgs{Kind: kind, Ray: ray, InvCamera: camera.InverseModelView()}))
			assert.True(t, local.Pick(internal.RayArgs{Ray: ray, Camera: camera.ModelView()}))
			snap := local.Snapshot()
			assert.True(t, snap.Selected)
			assert.Less(t, snap.Depth, scene.PlaceDepth)
			assert.Greater(t, snap.Depth, scene.PlaceDepth-1.5)
		})
	}
}

func TestResetCamera(t *testing.T) {
	r := NewEditor(nil)
	r.camera.Translate(3, 4, 5)
	r.camera.Trackball().DragTo(0, 0, 0, 0)
	r.camera.Trackball().DragTo(5, 5, 5, 5)
	r.resetCamera()
	assert.Equal(t, fauxgl.Identity(), r.camera.ModelView())
	assert.Nil(t, r.cameraReset)
}

func TestResetCameraSmooth(t *testing.T) {
	r := NewEditor(nil, OptSmoothCamera(true))
	r.camera.Translate(3, 4, 5)
	r.resetCamera()
	assert.Equal(t, fauxgl.Identity(), r.camera.Trackball().Matrix())
	require.NotNil(t, r.cameraReset)
	assert.Equal(t, fauxgl.Vector{X: 3, Y: 4, Z: 5}, r.camera.Offset()) // Not moved until the animation advances
	progress, done := r.cameraReset.tween.Update(cameraResetDuration / 2)
	assert.False(t, done)
	assert.Greater(t, progress, float32(0.5)) // Eased out
	_, done = r.cameraReset.tween.Update(cameraResetDuration)
	assert.True(t, done)
}
