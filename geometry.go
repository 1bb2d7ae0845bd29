package editor

import (
	"fmt"
	"github.com/Yeicor/sdfx-editor/scene"
	"github.com/deadsy/sdfx/render"
	"github.com/deadsy/sdfx/sdf"
	v3 "github.com/deadsy/sdfx/vec/v3"
	"github.com/fogleman/fauxgl"
	"log"
	"math"
	"sync"
)

//-----------------------------------------------------------------------------
// CONFIGURATION
//-----------------------------------------------------------------------------

// OptMeshCells sets the number of marching cubes cells used to mesh each primitive (along the longest axis)
func OptMeshCells(cells int) Option {
	return func(r *Editor) {
		r.raster.geometry.cells = max(4, cells)
	}
}

//-----------------------------------------------------------------------------
// GEOMETRY LIBRARY
//-----------------------------------------------------------------------------

// geometryEntry is the mesh of a primitive kind, built on first use.
type geometryEntry struct {
	once sync.Once
	mesh *fauxgl.Mesh
	err  error
}

// geometryLibrary holds one unit mesh per primitive kind (centered at the origin, spanning -0.5..0.5), shared by
// every node of that kind.
type geometryLibrary struct {
	cells                int
	smoothNormalsRadians float64
	lock                 sync.Mutex
	entries              map[scene.Kind]*geometryEntry
}

func newGeometryLibrary() *geometryLibrary {
	return &geometryLibrary{
		cells:                40,
		smoothNormalsRadians: math.Pi / 3,
		entries:              map[scene.Kind]*geometryEntry{},
	}
}

// Mesh returns the shared mesh for the given primitive kind, meshing it if this is the first use.
func (g *geometryLibrary) Mesh(kind scene.Kind) (*fauxgl.Mesh, error) {
	g.lock.Lock()
	entry, ok := g.entries[kind]
	if !ok {
		entry = &geometryEntry{}
		g.entries[kind] = entry
	}
	g.lock.Unlock()
	entry.once.Do(func() {
		var s sdf.SDF3
		s, entry.err = primitiveSDF(kind)
		if entry.err != nil {
			return
		}
		log.Println("[Editor] Meshing", kind, "...") // only performed once per kind
		entry.mesh = meshSDF(s, render.NewMarchingCubesUniform(g.cells))
		if kind == scene.KindSphere {
			entry.mesh.SmoothNormalsThreshold(g.smoothNormalsRadians)
		}
		log.Println("[Editor] Mesh for", kind, "is ready:", len(entry.mesh.Triangles), "triangles")
	})
	return entry.mesh, entry.err
}

// Release drops every mesh (they are rebuilt on next use).
func (g *geometryLibrary) Release() {
	g.lock.Lock()
	defer g.lock.Unlock()
	g.entries = map[scene.Kind]*geometryEntry{}
}

// primitiveSDF is the unit shape of a primitive kind
func primitiveSDF(kind scene.Kind) (sdf.SDF3, error) {
	switch kind {
	case scene.KindCube:
		return sdf.Box3D(v3.Vec{X: 1, Y: 1, Z: 1}, 0)
	case scene.KindSphere:
		return sdf.Sphere3D(0.5)
	default:
		return nil, fmt.Errorf("no geometry for %s: %w", kind, scene.ErrUnknownKind)
	}
}

// meshSDF collects all the triangles generated for s into a fauxgl mesh
func meshSDF(s sdf.SDF3, meshGenerator render.Render3) *fauxgl.Mesh {
	var triangles []*fauxgl.Triangle
	triChan := make(chan []*render.Triangle3)
	go func() {
		meshGenerator.Render(s, triChan)
		close(triChan)
	}()
	for tris := range triChan {
		for _, tri := range tris {
			triangles = append(triangles, convertTriangle(tri))
		}
	}
	return fauxgl.NewTriangleMesh(triangles)
}

func convertTriangle(tri *render.Triangle3) *fauxgl.Triangle {
	normalV := toFauxglVector(tri.Normal())
	return &fauxgl.Triangle{
		V1: fauxgl.Vertex{Position: toFauxglVector(tri.V[0]), Normal: normalV, Color: fauxgl.Gray(1)},
		V2: fauxgl.Vertex{Position: toFauxglVector(tri.V[1]), Normal: normalV, Color: fauxgl.Gray(1)},
		V3: fauxgl.Vertex{Position: toFauxglVector(tri.V[2]), Normal: normalV, Color: fauxgl.Gray(1)},
	}
}

func toFauxglVector(v v3.Vec) fauxgl.Vector {
	return fauxgl.Vector{X: v.X, Y: v.Y, Z: v.Z}
}
