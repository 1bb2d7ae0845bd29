package scene

import (
	"github.com/fogleman/fauxgl"
)

// Translation returns the homogeneous matrix that moves points by (x, y, z).
func Translation(x, y, z float64) fauxgl.Matrix {
	return fauxgl.Translate(fauxgl.Vector{X: x, Y: y, Z: z})
}

// Scaling returns the homogeneous matrix that scales each axis independently.
func Scaling(x, y, z float64) fauxgl.Matrix {
	return fauxgl.Scale(fauxgl.Vector{X: x, Y: y, Z: z})
}

// UniformScaling returns Scaling(f, f, f).
func UniformScaling(f float64) fauxgl.Matrix {
	return Scaling(f, f, f)
}

// TransformPoint applies m to p with w = 1 (translation is applied).
// Only affine matrices are expected, so there is no perspective divide.
func TransformPoint(m fauxgl.Matrix, p fauxgl.Vector) fauxgl.Vector {
	return fauxgl.Vector{
		X: m.X00*p.X + m.X01*p.Y + m.X02*p.Z + m.X03,
		Y: m.X10*p.X + m.X11*p.Y + m.X12*p.Z + m.X13,
		Z: m.X20*p.X + m.X21*p.Y + m.X22*p.Z + m.X23,
	}
}

// TransformVector applies m to v with w = 0 (translation is ignored).
// Unlike fauxgl.Matrix.MulDirection the result is NOT normalized, so distances measured along a transformed ray keep
// the parametrization of the original ray.
func TransformVector(m fauxgl.Matrix, v fauxgl.Vector) fauxgl.Vector {
	return fauxgl.Vector{
		X: m.X00*v.X + m.X01*v.Y + m.X02*v.Z,
		Y: m.X10*v.X + m.X11*v.Y + m.X12*v.Z,
		Z: m.X20*v.X + m.X21*v.Y + m.X22*v.Z,
	}
}

// rayPoint is origin + direction * t
func rayPoint(origin, direction fauxgl.Vector, t float64) fauxgl.Vector {
	return origin.Add(direction.MulScalar(t))
}
