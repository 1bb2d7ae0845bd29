package scene

import (
	"fmt"
	"github.com/fogleman/fauxgl"
	"math"
	"math/rand"
)

// PlaceDepth is the default distance from the camera, along the placement ray, at which new nodes appear.
const PlaceDepth = 15.0

// Selection is the state of the current selection session. It lives in the Scene, never on the node.
type Selection struct {
	Node   Node
	Depth  float64       // Distance along the picking ray when selected
	Anchor fauxgl.Vector // Last ray point at Depth (updated while dragging)
}

// Option configures a Scene.
type Option func(s *Scene)

// OptRand sets the random source used to color new nodes.
func OptRand(r *rand.Rand) Option {
	return func(s *Scene) {
		s.rand = r
	}
}

// OptPlaceDepth overrides PlaceDepth.
func OptPlaceDepth(depth float64) Option {
	return func(s *Scene) {
		s.placeDepth = depth
	}
}

// Scene owns the root nodes (in draw order) and the selection. It is not safe for concurrent use: callers that render
// or serve it from other goroutines must guard it with a single lock.
type Scene struct {
	palette    *Palette
	rand       *rand.Rand
	placeDepth float64
	nodes      []Node
	selection  *Selection
}

// New builds an empty scene whose nodes index into palette.
func New(palette *Palette, opts ...Option) *Scene {
	s := &Scene{
		palette:    palette,
		rand:       rand.New(rand.NewSource(rand.Int63())),
		placeDepth: PlaceDepth,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// NewSampleScene builds a scene with a cube and a sphere sharing a position and a snow figure.
func NewSampleScene(palette *Palette, opts ...Option) *Scene {
	s := New(palette, opts...)
	cube := NewCube(palette, 2%palette.Len())
	cube.Translate(2, 0, 2)
	s.Add(cube)
	sphere := NewSphere(palette, 1%palette.Len())
	sphere.Translate(2, 0, 2)
	s.Add(sphere)
	figure := NewSnowFigure(palette, s.randomColor())
	figure.Translate(-2, 0, -2)
	s.Add(figure)
	return s
}

// Palette is the palette shared by all the nodes of this scene.
func (s *Scene) Palette() *Palette {
	return s.palette
}

// PlaceDepth is the distance used by Place.
func (s *Scene) PlaceDepth() float64 {
	return s.placeDepth
}

// Add appends a root node.
func (s *Scene) Add(n Node) {
	s.nodes = append(s.nodes, n)
}

// Nodes returns a copy of the root nodes in draw order.
func (s *Scene) Nodes() []Node {
	return append([]Node(nil), s.nodes...)
}

// Len is the number of root nodes.
func (s *Scene) Len() int {
	return len(s.nodes)
}

// NewNode builds a node of the given kind with a random palette color.
func (s *Scene) NewNode(kind Kind) (Node, error) {
	switch kind {
	case KindCube:
		return NewCube(s.palette, s.randomColor()), nil
	case KindSphere:
		return NewSphere(s.palette, s.randomColor()), nil
	case KindFigure:
		return NewSnowFigure(s.palette, s.randomColor()), nil
	default:
		return nil, fmt.Errorf("%w: cannot place %v", ErrUnknownKind, kind)
	}
}

func (s *Scene) randomColor() int {
	return s.palette.Min() + s.rand.Intn(s.palette.Len())
}

// Place builds a node of the given kind and moves it PlaceDepth units along the ray, mapped through invCamera (the
// inverse of the camera matrix used for picking) so that the current camera orientation is accounted for.
func (s *Scene) Place(kind Kind, origin, direction fauxgl.Vector, invCamera fauxgl.Matrix) (Node, error) {
	n, err := s.NewNode(kind)
	if err != nil {
		return nil, err
	}
	s.Add(n)
	p := TransformPoint(invCamera, rayPoint(origin, direction, s.placeDepth))
	n.Translate(p.X, p.Y, p.Z)
	return n, nil
}

// Pick clears the selection and then selects the root node closest along the ray, if any. camera maps scene space to
// the space of the ray. Ties keep the first node in draw order.
func (s *Scene) Pick(origin, direction fauxgl.Vector, camera fauxgl.Matrix) Node {
	s.Deselect()

	minDist := math.Inf(1)
	var closest Node
	for _, n := range s.nodes {
		hit, dist := n.Pick(origin, direction, camera)
		if hit && dist < minDist {
			minDist, closest = dist, n
		}
	}

	if closest != nil {
		closest.Select(true)
		s.selection = &Selection{
			Node:   closest,
			Depth:  minDist,
			Anchor: rayPoint(origin, direction, minDist),
		}
	}
	return closest
}

// Deselect clears the current selection, if any.
func (s *Scene) Deselect() {
	if s.selection != nil {
		s.selection.Node.Select(false)
		s.selection = nil
	}
}

// Selected returns the selected node or nil.
func (s *Scene) Selected() Node {
	if s.selection == nil {
		return nil
	}
	return s.selection.Node
}

// Selection returns a copy of the current selection session.
func (s *Scene) Selection() (Selection, bool) {
	if s.selection == nil {
		return Selection{}, false
	}
	return *s.selection, true
}

// MoveSelected drags the selected node so that it follows the new ray at the depth it was picked at: it slides on the
// plane perpendicular to the view. The world delta is mapped through invCamera as a direction (w = 0).
func (s *Scene) MoveSelected(origin, direction fauxgl.Vector, invCamera fauxgl.Matrix) {
	if s.selection == nil {
		return
	}
	newLoc := rayPoint(origin, direction, s.selection.Depth)
	delta := TransformVector(invCamera, newLoc.Sub(s.selection.Anchor))
	s.selection.Node.Translate(delta.X, delta.Y, delta.Z)
	s.selection.Anchor = newLoc
}

// ScaleSelected grows or shrinks the selected node, if any.
func (s *Scene) ScaleSelected(up bool) {
	if s.selection == nil {
		return
	}
	s.selection.Node.Scale(up)
}

// RotateSelectedColor cycles the color of the selected node, if any.
func (s *Scene) RotateSelectedColor(forward bool) {
	if s.selection == nil {
		return
	}
	s.selection.Node.RotateColor(forward)
}

// Remove drops a root node. Removing the selected node also ends the selection.
func (s *Scene) Remove(n Node) bool {
	for i, other := range s.nodes {
		if other == n {
			if s.selection != nil && s.selection.Node == n {
				s.Deselect()
			}
			s.nodes = append(s.nodes[:i], s.nodes[i+1:]...)
			return true
		}
	}
	return false
}

// RemoveSelected removes the selected node, if any.
func (s *Scene) RemoveSelected() bool {
	if s.selection == nil {
		return false
	}
	return s.Remove(s.selection.Node)
}

// Render emits every primitive of the scene, in draw order, with parent as the outermost transform.
func (s *Scene) Render(parent fauxgl.Matrix, emit func(DrawItem)) {
	for _, n := range s.nodes {
		n.Render(parent, emit)
	}
}

// DrawList collects Render into a slice (in scene space).
func (s *Scene) DrawList() []DrawItem {
	var res []DrawItem
	s.Render(fauxgl.Identity(), func(item DrawItem) {
		res = append(res, item)
	})
	return res
}
