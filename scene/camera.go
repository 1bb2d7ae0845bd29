package scene

import (
	"github.com/fogleman/fauxgl"
)

// Camera is the view of the scene: a trackball rotation plus a free translation offset applied after it.
type Camera struct {
	trackball *Trackball
	offset    fauxgl.Vector
}

// NewCamera starts at the identity view.
func NewCamera() *Camera {
	return &Camera{trackball: NewTrackball()}
}

// Trackball gives access to the rotation state.
func (c *Camera) Trackball() *Trackball {
	return c.trackball
}

// Offset is the accumulated translation.
func (c *Camera) Offset() fauxgl.Vector {
	return c.offset
}

// SetOffset replaces the translation (used by animations).
func (c *Camera) SetOffset(offset fauxgl.Vector) {
	c.offset = offset
}

// Translate moves the camera offset.
func (c *Camera) Translate(dx, dy, dz float64) {
	c.offset = c.offset.Add(fauxgl.Vector{X: dx, Y: dy, Z: dz})
}

// ModelView maps scene space to view space: offset * rotation.
func (c *Camera) ModelView() fauxgl.Matrix {
	return Translation(c.offset.X, c.offset.Y, c.offset.Z).Mul(c.trackball.Matrix())
}

// InverseModelView maps view space back to scene space.
func (c *Camera) InverseModelView() fauxgl.Matrix {
	return c.ModelView().Inverse()
}

// Reset drops both the rotation and the offset.
func (c *Camera) Reset() {
	c.trackball.Reset()
	c.offset = fauxgl.Vector{}
}
