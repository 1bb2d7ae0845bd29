package scene

import (
	"github.com/fogleman/fauxgl"
)

// Primitive is a leaf node drawing a unit cube or a sphere of diameter 1, both centered at the origin.
type Primitive struct {
	node
	kind Kind
}

// NewCube builds a unit cube with the given palette color.
func NewCube(palette *Palette, colorIndex int) *Primitive {
	return &Primitive{node: newNode(palette, colorIndex, NewAABBHalfExtents(0.5, 0.5, 0.5)), kind: KindCube}
}

// NewSphere builds a sphere of radius 0.5 with the given palette color.
func NewSphere(palette *Palette, colorIndex int) *Primitive {
	return &Primitive{node: newNode(palette, colorIndex, NewAABBHalfExtents(0.5, 0.5, 0.5)), kind: KindSphere}
}

func (p *Primitive) Kind() Kind {
	return p.kind
}

func (p *Primitive) Children() []Node {
	return nil
}

func (p *Primitive) Render(parent fauxgl.Matrix, emit func(DrawItem)) {
	render(p, parent, false, emit)
}

func (p *Primitive) renderSelf(world fauxgl.Matrix, highlighted bool, emit func(DrawItem)) {
	emit(DrawItem{Kind: p.kind, World: world, Color: p.Color(), Highlighted: highlighted})
}
