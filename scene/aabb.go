package scene

import (
	"fmt"
	"github.com/fogleman/fauxgl"
	"math"
)

// AABB is an axis-aligned bounding box expressed in the local space of the node that owns it.
// It is only ever scaled about its own center: boxes are never translated or rotated.
type AABB struct {
	Min, Max fauxgl.Vector
}

// NewAABB builds a box from its corners. Inverted corners are a programming error.
func NewAABB(min, max fauxgl.Vector) AABB {
	if min.X > max.X || min.Y > max.Y || min.Z > max.Z {
		panic(fmt.Sprintf("scene: inverted AABB corners %v > %v", min, max))
	}
	return AABB{Min: min, Max: max}
}

// NewAABBHalfExtents builds a box centered at the origin.
func NewAABBHalfExtents(hx, hy, hz float64) AABB {
	return NewAABB(fauxgl.Vector{X: -hx, Y: -hy, Z: -hz}, fauxgl.Vector{X: hx, Y: hy, Z: hz})
}

// RayHit tests the ray against the box with the slab method.
//
// The ray is given in the caller's space and is moved into the box's space by the inverse of toLocal (the origin as a
// point, the direction as a vector). The returned distance is the ray parameter of the entry point, so it is measured in
// the caller's units whenever the given direction is normalized. Misses return +Inf, which must never be compared as a
// valid distance.
func (a AABB) RayHit(origin, direction fauxgl.Vector, toLocal fauxgl.Matrix) (bool, float64) {
	inv := toLocal.Inverse()
	o := TransformPoint(inv, origin)
	d := TransformVector(inv, direction)
	if d.X == 0 && d.Y == 0 && d.Z == 0 {
		return false, math.Inf(1)
	}

	// Axis-parallel rays divide by zero: +-Inf keeps the slab unbounded and NaN (origin exactly on a slab plane) poisons
	// the min/max below, which then fails the final comparison.
	tNear, tFar := math.Inf(-1), math.Inf(1)
	for axis := 0; axis < 3; axis++ {
		lo, hi, oa, da := axisOf(a.Min, axis), axisOf(a.Max, axis), axisOf(o, axis), axisOf(d, axis)
		t0 := (lo - oa) / da
		t1 := (hi - oa) / da
		if t0 > t1 {
			t0, t1 = t1, t0
		}
		tNear = math.Max(tNear, t0)
		tFar = math.Min(tFar, t1)
	}

	if tFar >= tNear && tFar >= 0 {
		return true, tNear
	}
	return false, math.Inf(1)
}

// Scale rescales the box around its own center by a strictly positive factor.
func (a *AABB) Scale(factor float64) {
	if !(factor > 0) {
		panic(fmt.Sprintf("scene: non-positive AABB scale factor %v", factor))
	}
	center := a.Center()
	a.Min = center.Add(a.Min.Sub(center).MulScalar(factor))
	a.Max = center.Add(a.Max.Sub(center).MulScalar(factor))
}

// Center is the midpoint of both corners.
func (a AABB) Center() fauxgl.Vector {
	return a.Min.Add(a.Max).MulScalar(0.5)
}

// Size is the extent of the box along each axis.
func (a AABB) Size() fauxgl.Vector {
	return a.Max.Sub(a.Min)
}

// Corners lists the 8 corners of the box.
func (a AABB) Corners() [8]fauxgl.Vector {
	var res [8]fauxgl.Vector
	for i := range res {
		res[i] = a.Min
		if i&1 != 0 {
			res[i].X = a.Max.X
		}
		if i&2 != 0 {
			res[i].Y = a.Max.Y
		}
		if i&4 != 0 {
			res[i].Z = a.Max.Z
		}
	}
	return res
}

// Transformed returns the axis-aligned box enclosing this box after applying m to its corners.
func (a AABB) Transformed(m fauxgl.Matrix) AABB {
	corners := a.Corners()
	res := AABB{Min: TransformPoint(m, corners[0]), Max: TransformPoint(m, corners[0])}
	for _, c := range corners[1:] {
		p := TransformPoint(m, c)
		res.Min = res.Min.Min(p)
		res.Max = res.Max.Max(p)
	}
	return res
}

// Box converts to the fauxgl representation (used when drawing outlines).
func (a AABB) Box() fauxgl.Box {
	return fauxgl.Box{Min: a.Min, Max: a.Max}
}

func axisOf(v fauxgl.Vector, axis int) float64 {
	switch axis {
	case 0:
		return v.X
	case 1:
		return v.Y
	default:
		return v.Z
	}
}
