package scene

import (
	"errors"
	"fmt"
	"github.com/fogleman/fauxgl"
	"strings"
)

// Kind identifies what a node draws (and what Scene.Place builds).
type Kind int

const (
	KindCube Kind = iota
	KindSphere
	KindFigure
	KindGroup
)

// ErrUnknownKind is returned when a shape name or Kind is not one of the known kinds.
var ErrUnknownKind = errors.New("unknown node kind")

var kindNames = [...]string{KindCube: "cube", KindSphere: "sphere", KindFigure: "figure", KindGroup: "group"}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return fmt.Sprintf("Kind(%d)", int(k))
	}
	return kindNames[k]
}

// ParseKind maps a kind name (case-insensitive) to its Kind.
func ParseKind(s string) (Kind, error) {
	for i, name := range kindNames {
		if strings.EqualFold(s, name) {
			return Kind(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownKind, s)
}

const (
	growFactor   = 1.1
	shrinkFactor = 0.9

	// SelectedEmission is the emission added to the color of selected nodes (and their children) while drawing.
	SelectedEmission = 0.3
)

// ScaleFactor maps the direction flag of Node.Scale to the applied factor.
func ScaleFactor(up bool) float64 {
	if up {
		return growFactor
	}
	return shrinkFactor
}

// DrawItem is what the scene asks the renderer to draw: a single primitive with its final transform and appearance.
type DrawItem struct {
	Kind        Kind          // KindCube or KindSphere
	World       fauxgl.Matrix // Local (unit primitive) to scene world
	Color       fauxgl.Color
	Highlighted bool // Selected, or a descendant of the selected node
}

// Node is a placeable scene object: a Primitive leaf or a Group of owned children.
//
// The set of implementations is closed: variants differ only in how they draw themselves (renderSelf), while the
// transform, color, selection and picking behavior is shared.
type Node interface {
	Kind() Kind
	// TranslationMatrix and ScalingMatrix are the independent local transforms, composed as translation * scaling.
	TranslationMatrix() fauxgl.Matrix
	ScalingMatrix() fauxgl.Matrix
	Transform() fauxgl.Matrix
	AABB() AABB
	ColorIndex() int
	SetColorIndex(i int)
	Color() fauxgl.Color
	Selected() bool
	Select(selected bool)
	ToggleSelect()
	Translate(dx, dy, dz float64)
	Scale(up bool)
	RotateColor(forward bool)
	Pick(origin, direction fauxgl.Vector, ancestor fauxgl.Matrix) (bool, float64)
	Children() []Node
	// Render emits one DrawItem per primitive below (and including) this node.
	Render(parent fauxgl.Matrix, emit func(DrawItem))

	base() *node
	renderSelf(world fauxgl.Matrix, highlighted bool, emit func(DrawItem))
}

// node holds the state shared by all variants.
type node struct {
	palette              *Palette
	translation, scaling fauxgl.Matrix
	colorIndex           int
	selected             bool
	aabb                 AABB // Scaled in lockstep with scaling
}

func newNode(palette *Palette, colorIndex int, aabb AABB) node {
	n := node{
		palette:     palette,
		translation: fauxgl.Identity(),
		scaling:     fauxgl.Identity(),
		aabb:        aabb,
	}
	n.SetColorIndex(colorIndex)
	return n
}

func (n *node) base() *node {
	return n
}

func (n *node) TranslationMatrix() fauxgl.Matrix {
	return n.translation
}

func (n *node) ScalingMatrix() fauxgl.Matrix {
	return n.scaling
}

func (n *node) Transform() fauxgl.Matrix {
	return n.translation.Mul(n.scaling)
}

func (n *node) AABB() AABB {
	return n.aabb
}

func (n *node) ColorIndex() int {
	return n.colorIndex
}

// SetColorIndex panics if i is outside of the palette.
func (n *node) SetColorIndex(i int) {
	if i < n.palette.Min() || i > n.palette.Max() {
		panic(fmt.Sprintf("scene: color index %d out of palette range [%d, %d]", i, n.palette.Min(), n.palette.Max()))
	}
	n.colorIndex = i
}

func (n *node) Color() fauxgl.Color {
	return n.palette.Color(n.colorIndex)
}

func (n *node) Selected() bool {
	return n.selected
}

func (n *node) Select(selected bool) {
	n.selected = selected
}

func (n *node) ToggleSelect() {
	n.selected = !n.selected
}

// Translate accumulates a translation in the node's current local frame.
func (n *node) Translate(dx, dy, dz float64) {
	n.translation = n.translation.Mul(Translation(dx, dy, dz))
}

// Scale grows (1.1) or shrinks (0.9) the node, keeping the AABB in sync with the scaling matrix.
func (n *node) Scale(up bool) {
	n.scaleBy(ScaleFactor(up))
}

func (n *node) scaleBy(factor float64) {
	n.aabb.Scale(factor) // Panics on non-positive factors before touching the matrix
	n.scaling = n.scaling.Mul(UniformScaling(factor))
}

func (n *node) RotateColor(forward bool) {
	n.colorIndex = n.palette.Next(n.colorIndex, forward)
}

// Pick tests the ray against the node's box in its unscaled local space: ancestor * translation * scaling^-1.
// The box extents already carry the accumulated scale.
func (n *node) Pick(origin, direction fauxgl.Vector, ancestor fauxgl.Matrix) (bool, float64) {
	toLocal := ancestor.Mul(n.translation).Mul(n.scaling.Inverse())
	return n.aabb.RayHit(origin, direction, toLocal)
}

// PickVolume is the box that Pick tests, expressed in the space of the given ancestor matrix.
func PickVolume(n Node, ancestor fauxgl.Matrix) AABB {
	b := n.base()
	return b.aabb.Transformed(ancestor.Mul(b.translation).Mul(b.scaling.Inverse()))
}

// render composes the world transform and delegates to the variant.
func render(n Node, parent fauxgl.Matrix, highlighted bool, emit func(DrawItem)) {
	b := n.base()
	world := parent.Mul(b.translation).Mul(b.scaling)
	n.renderSelf(world, highlighted || b.selected, emit)
}
