package editor

import (
	"github.com/Yeicor/sdfx-editor/internal"
	"github.com/Yeicor/sdfx-editor/scene"
	"github.com/fogleman/fauxgl"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"image"
)

const (
	// Window depths used to unproject the two ends of a pick ray
	rayNearDepth = 0.001
	rayFarDepth  = 0.999
	// Duration of the smooth camera reset, in seconds
	cameraResetDuration = 0.4
)

// cameraAnimation moves the camera offset back to the origin.
type cameraAnimation struct {
	from  fauxgl.Vector
	tween *gween.Tween
}

// projection maps view space to clip space, pulling the eye back from the view origin (caller must hold implStateLock).
func (r *Editor) projection() fauxgl.Matrix {
	aspect := float64(max(1, r.screenSize.X)) / float64(max(1, r.screenSize.Y))
	return viewProjection(r.camFovY, aspect, r.camNear, r.camFar, r.camDistance)
}

func viewProjection(fovY, aspect, near, far, distance float64) fauxgl.Matrix {
	return fauxgl.Perspective(fovY, aspect, near, far).Mul(scene.Translation(0, 0, -distance))
}

// screenRay unprojects the given screen pixel into a view-space ray.
func screenRay(projection fauxgl.Matrix, screenSize image.Point, cx, cy int) internal.Ray {
	inv := projection.Inverse()
	ndcX := 2*(float64(cx)+0.5)/float64(max(1, screenSize.X)) - 1
	ndcY := 1 - 2*(float64(cy)+0.5)/float64(max(1, screenSize.Y)) // Screen Y grows down
	start := unproject(inv, fauxgl.Vector{X: ndcX, Y: ndcY, Z: 2*rayNearDepth - 1})
	end := unproject(inv, fauxgl.Vector{X: ndcX, Y: ndcY, Z: 2*rayFarDepth - 1})
	return internal.Ray{Origin: start, Direction: end.Sub(start).Normalize()}
}

func unproject(inv fauxgl.Matrix, ndc fauxgl.Vector) fauxgl.Vector {
	w := inv.X30*ndc.X + inv.X31*ndc.Y + inv.X32*ndc.Z + inv.X33
	return scene.TransformPoint(inv, ndc).MulScalar(1 / w)
}

// cursorRay is the pick ray below the cursor
func (r *Editor) cursorRay(cx, cy int) internal.Ray {
	r.implStateLock.RLock()
	defer r.implStateLock.RUnlock()
	return screenRay(r.projection(), r.screenSize, cx, cy)
}

// resetCamera drops the rotation and either animates or drops the offset.
func (r *Editor) resetCamera() {
	r.camera.Trackball().Reset()
	if !r.smoothCamera {
		r.camera.Reset()
		r.cameraReset = nil
		return
	}
	r.cameraReset = &cameraAnimation{
		from:  r.camera.Offset(),
		tween: gween.New(0, 1, cameraResetDuration, ease.OutCubic),
	}
}

// onUpdateCamera advances the smooth camera reset (if running)
func (r *Editor) onUpdateCamera() {
	if r.cameraReset == nil {
		return
	}
	progress, done := r.cameraReset.tween.Update(1 / float32(ebiten.TPS()))
	r.camera.SetOffset(r.cameraReset.from.MulScalar(1 - float64(progress)))
	if done {
		r.camera.SetOffset(fauxgl.Vector{})
		r.cameraReset = nil
	}
	r.rerender()
}
