package internal

import (
	"github.com/Yeicor/sdfx-editor/scene"
	"github.com/mitchellh/reflectwalk"
	"reflect"
)

// OverlayBox is a pick volume flattened out of a snapshot tree, with its depth in the node hierarchy.
type OverlayBox struct {
	Level    int // 0 for root nodes
	Box      scene.AABB
	Selected bool
}

var nodeSnapshotType = reflect.TypeOf(NodeSnapshot{})

// OverlayBoxes flattens the hierarchy of the snapshot (pre-order) if only bounds are wanted.
func (s *SceneSnapshot) OverlayBoxes() []OverlayBox {
	w := &overlayWalker{}
	err := reflectwalk.Walk(s, w)
	if err != nil {
		panic(err) // Shouldn't happen
	}
	return w.res
}

// overlayWalker finds every NodeSnapshot, wherever it is stored, keeping track of how many NodeSnapshot values enclose it.
type overlayWalker struct {
	structs []bool // For each struct being walked: whether it is a NodeSnapshot
	res     []OverlayBox
}

func (w *overlayWalker) Enter(l reflectwalk.Location) error {
	if l == reflectwalk.Struct {
		w.structs = append(w.structs, false)
	}
	return nil
}

func (w *overlayWalker) Exit(l reflectwalk.Location) error {
	if l == reflectwalk.Struct {
		w.structs = w.structs[:len(w.structs)-1]
	}
	return nil
}

func (w *overlayWalker) Struct(value reflect.Value) error {
	if value.Type() != nodeSnapshotType {
		return nil
	}
	level := 0
	for _, isNode := range w.structs[:len(w.structs)-1] {
		if isNode {
			level++
		}
	}
	w.structs[len(w.structs)-1] = true
	n := value.Interface().(NodeSnapshot)
	w.res = append(w.res, OverlayBox{Level: level, Box: n.PickVolume, Selected: n.Selected})
	return nil
}

func (w *overlayWalker) StructField(_ reflect.StructField, _ reflect.Value) error {
	return nil
}
