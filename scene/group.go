package scene

import (
	"github.com/fogleman/fauxgl"
)

// Group is a node that owns and draws a fixed set of children as one unit.
// It is picked as a whole against its own box: picking never descends into the children.
type Group struct {
	node
	kind     Kind
	children []Node
}

// NewGroup takes ownership of the given children, which are picked as a whole against aabb.
func NewGroup(palette *Palette, colorIndex int, aabb AABB, children ...Node) *Group {
	return &Group{
		node:     newNode(palette, colorIndex, aabb),
		kind:     KindGroup,
		children: children,
	}
}

// NewSnowFigure builds three stacked spheres (bottom to top: scale 1, 0.8 and 0.7) colored with the first palette color.
func NewSnowFigure(palette *Palette, colorIndex int) *Group {
	bottom := NewSphere(palette, palette.Min())
	bottom.Translate(0, -0.6, 0)
	middle := NewSphere(palette, palette.Min())
	middle.Translate(0, 0.1, 0)
	middle.scaleBy(0.8)
	head := NewSphere(palette, palette.Min())
	head.Translate(0, 0.75, 0)
	head.scaleBy(0.7)
	g := NewGroup(palette, colorIndex, NewAABBHalfExtents(0.5, 1.1, 0.5), bottom, middle, head)
	g.kind = KindFigure
	return g
}

func (g *Group) Kind() Kind {
	return g.kind
}

// Children returns the owned children (do not modify the slice).
func (g *Group) Children() []Node {
	return g.children
}

func (g *Group) Render(parent fauxgl.Matrix, emit func(DrawItem)) {
	render(g, parent, false, emit)
}

func (g *Group) renderSelf(world fauxgl.Matrix, highlighted bool, emit func(DrawItem)) {
	for _, child := range g.children {
		render(child, world, highlighted, emit)
	}
}
