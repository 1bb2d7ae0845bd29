package internal

import (
	"context"
	"github.com/Yeicor/sdfx-editor/scene"
	"github.com/fogleman/fauxgl"
	"image"
	"sync"
)

// SceneImpl is the interface implemented by the local scene and the remote scene client.
// Every method is a complete, synchronous scene operation (one input event).
type SceneImpl interface {
	// Place builds a node of the given kind along the ray (see scene.Scene.Place)
	Place(args PlaceArgs) error
	// Pick selects the nearest node along the ray, returning whether anything was selected
	Pick(args RayArgs) bool
	// MoveSelected drags the current selection following the ray at its pick depth
	MoveSelected(args RayArgs)
	ScaleSelected(up bool)
	RotateSelectedColor(forward bool)
	RemoveSelected() bool
	// Snapshot returns a detached copy of everything needed to draw the scene
	Snapshot() *SceneSnapshot
}

// Ray is a world-space ray produced by the input layer (unprojected from the screen).
type Ray struct {
	Origin, Direction fauxgl.Vector
}

// PlaceArgs is an internal struct that has to be exported for RPC.
type PlaceArgs struct {
	Kind      scene.Kind
	Ray       Ray
	InvCamera fauxgl.Matrix // Inverse of the camera matrix used for picking
}

// RayArgs is an internal struct that has to be exported for RPC.
// Camera is the camera matrix for picking and its inverse for moving.
type RayArgs struct {
	Ray    Ray
	Camera fauxgl.Matrix
}

// SceneSnapshot is a detached copy of the scene: the draw list plus the tree of pick volumes.
type SceneSnapshot struct {
	Items    []scene.DrawItem
	Nodes    []NodeSnapshot
	Selected bool    // Whether any node is selected
	Depth    float64 // The pick depth of the selection
}

// NodeSnapshot describes a node of the hierarchy for overlays.
type NodeSnapshot struct {
	Kind       scene.Kind
	PickVolume scene.AABB // The box tested by picking, in scene space
	Selected   bool
	Children   []NodeSnapshot
}

// ViewState is an internal struct that has to be exported for RPC.
type ViewState struct {
	ResInv    int            // How detailed is the image: number screen pixels for each pixel rendered
	DrawBbs   bool           // Whether to draw the pick volumes of all nodes
	ColorMode int            // The color mode (shaded, flat or wireframe)
	Camera    fauxgl.Matrix  // Scene to view space (trackball and offset)
	Scene     *SceneSnapshot // The last scene snapshot
}

// RenderArgs carries everything a background render needs.
type RenderArgs struct {
	Ctx                         context.Context
	State                       *ViewState
	StateLock, CachedRenderLock *sync.RWMutex
	FullRender                  *image.RGBA
}

// NewSceneSnapshot copies the scene (the caller must hold the scene's lock).
func NewSceneSnapshot(s *scene.Scene) *SceneSnapshot {
	res := &SceneSnapshot{Items: s.DrawList()}
	for _, n := range s.Nodes() {
		res.Nodes = append(res.Nodes, newNodeSnapshot(n, fauxgl.Identity()))
	}
	if sel, ok := s.Selection(); ok {
		res.Selected = true
		res.Depth = sel.Depth
	}
	return res
}

func newNodeSnapshot(n scene.Node, ancestor fauxgl.Matrix) NodeSnapshot {
	res := NodeSnapshot{
		Kind:       n.Kind(),
		PickVolume: scene.PickVolume(n, ancestor),
		Selected:   n.Selected(),
	}
	world := ancestor.Mul(n.Transform())
	for _, child := range n.Children() {
		res.Children = append(res.Children, newNodeSnapshot(child, world))
	}
	return res
}
