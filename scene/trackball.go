package scene

import (
	"github.com/fogleman/fauxgl"
	"math"
)

// dragRadiansPerPixel converts drag deltas to rotation angles.
const dragRadiansPerPixel = 0.01

// Trackball accumulates a rotation from mouse drags.
//
// Each drag step right-multiplies a small rotation about X (from dx) followed by one about Y (from dy). This is an
// order-dependent approximation of an arcball, not a true one.
type Trackball struct {
	matrix       fauxgl.Matrix
	anchored     bool
	lastX, lastY float64
}

// NewTrackball starts with no rotation.
func NewTrackball() *Trackball {
	return &Trackball{matrix: fauxgl.Identity()}
}

// DragTo applies a drag step. The first call after creation or Release only records the position, avoiding a jump.
func (t *Trackball) DragTo(x, y, dx, dy float64) {
	if !t.anchored {
		t.anchored = true
		t.lastX, t.lastY = x, y
		return
	}
	rotX := rotationX(dx * dragRadiansPerPixel)
	rotY := rotationY(dy * dragRadiansPerPixel)
	t.matrix = t.matrix.Mul(rotX.Mul(rotY))
	t.lastX, t.lastY = x, y
}

// Release ends the current drag (the next DragTo only anchors).
func (t *Trackball) Release() {
	t.anchored = false
}

// Anchor returns the last recorded drag position, if dragging.
func (t *Trackball) Anchor() (x, y float64, ok bool) {
	return t.lastX, t.lastY, t.anchored
}

// Matrix is the accumulated rotation.
func (t *Trackball) Matrix() fauxgl.Matrix {
	return t.matrix
}

// Reset drops the accumulated rotation.
func (t *Trackball) Reset() {
	t.matrix = fauxgl.Identity()
	t.anchored = false
}

func rotationX(a float64) fauxgl.Matrix {
	s, c := math.Sincos(a)
	return fauxgl.Matrix{
		X00: 1, X01: 0, X02: 0, X03: 0,
		X10: 0, X11: c, X12: -s, X13: 0,
		X20: 0, X21: s, X22: c, X23: 0,
		X30: 0, X31: 0, X32: 0, X33: 1,
	}
}

func rotationY(a float64) fauxgl.Matrix {
	s, c := math.Sincos(a)
	return fauxgl.Matrix{
		X00: c, X01: 0, X02: s, X03: 0,
		X10: 0, X11: 1, X12: 0, X13: 0,
		X20: -s, X21: 0, X22: c, X23: 0,
		X30: 0, X31: 0, X32: 0, X33: 1,
	}
}
