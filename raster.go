package editor

import (
	"github.com/Yeicor/sdfx-editor/internal"
	"github.com/Yeicor/sdfx-editor/scene"
	"github.com/fogleman/fauxgl"
	"image"
	"image/color"
	"image/color/palette"
	"math"
)

// Color modes
const (
	colorModeShaded = iota
	colorModeNormals
	colorModeWireframe
	colorModes
)

var colorModeNames = [colorModes]string{"shaded", "normals", "wireframe"}

// Half the number of grid lines along each axis (the grid spans -gridHalfLines..gridHalfLines)
const gridHalfLines = 10

// rasterizer draws scene snapshots on the CPU using fauxgl
type rasterizer struct {
	geometry        *geometryLibrary
	grid            *fauxgl.Mesh
	lastContext     *fauxgl.Context
	lightDir        fauxgl.Vector // In view space
	backgroundColor color.RGBA
	gridColor       color.RGBA
	selectedBbColor color.RGBA
	getBBColor      func(level int) color.Color
}

func newRasterizer() *rasterizer {
	return &rasterizer{
		geometry:        newGeometryLibrary(),
		grid:            newGridMesh(gridHalfLines),
		lightDir:        fauxgl.Vector{X: -0.4, Y: 0.6, Z: 1}.Normalize(),
		backgroundColor: color.RGBA{R: 25, G: 25, B: 35, A: 255},
		gridColor:       color.RGBA{R: 90, G: 90, B: 90, A: 255},
		selectedBbColor: color.RGBA{R: 255, G: 255, B: 255, A: 255},
		getBBColor: func(level int) color.Color {
			return palette.WebSafe[((level+1)*5)%len(palette.WebSafe)]
		},
	}
}

// Render draws the scene snapshot of the given state, as seen through projection from eye (in view space).
// It returns the context's error if cancelled before completion.
func (rm *rasterizer) Render(args *internal.RenderArgs, projection fauxgl.Matrix, eye fauxgl.Vector) error {
	args.StateLock.RLock()
	state := args.State
	args.StateLock.RUnlock()
	rm.reset(args.FullRender.Bounds().Size())
	viewMatrix := projection.Mul(state.Camera)

	// Reference grid
	rm.lastContext.Shader = fauxgl.NewSolidColorShader(viewMatrix, fauxgl.MakeColor(rm.gridColor))
	rm.lastContext.Wireframe = true
	rm.lastContext.DrawMesh(rm.grid)

	if state.Scene != nil {
		for _, item := range state.Scene.Items {
			select {
			case <-args.Ctx.Done():
				return args.Ctx.Err()
			default:
			}
			if err := rm.renderItem(item, state, viewMatrix, eye); err != nil {
				return err
			}
		}
		if state.DrawBbs {
			// Draw pick volumes over the scene, colored by hierarchy level
			for _, bb := range state.Scene.OverlayBoxes() {
				c := rm.getBBColor(bb.Level)
				if bb.Selected {
					c = rm.selectedBbColor
				}
				rm.renderBoundingBox(bb.Box, viewMatrix, c)
			}
		}
	}
	img := rm.lastContext.Image().(*image.NRGBA)

	// Copy output full render (no partial renders supported)
	args.CachedRenderLock.Lock()
	copy(args.FullRender.Pix[args.FullRender.PixOffset(0, 0):], img.Pix[img.PixOffset(0, 0):])
	args.CachedRenderLock.Unlock()
	return nil
}

func (rm *rasterizer) reset(size image.Point) {
	if rm.lastContext == nil || rm.lastContext.Width != size.X || rm.lastContext.Height != size.Y {
		// Rebuild rendering context only when needed
		rm.lastContext = fauxgl.NewContext(size.X, size.Y)
		rm.lastContext.Cull = fauxgl.CullNone // Mesh winding is not guaranteed
	} else {
		rm.lastContext.ClearDepthBuffer()
	}
	rm.lastContext.ClearColorBufferWith(fauxgl.MakeColor(rm.backgroundColor))
}

// renderItem draws the shared mesh of the item's kind placed at its world matrix
func (rm *rasterizer) renderItem(item scene.DrawItem, state *internal.ViewState, viewMatrix fauxgl.Matrix, eye fauxgl.Vector) error {
	mesh, err := rm.geometry.Mesh(item.Kind)
	if err != nil {
		return err
	}
	matrix := viewMatrix.Mul(item.World)
	objectColor := item.Color
	if item.Highlighted {
		objectColor = objectColor.Add(fauxgl.Gray(scene.SelectedEmission)).Min(fauxgl.White)
	}
	switch state.ColorMode {
	case colorModeShaded:
		// Lighting happens in object space: move the light and the eye there
		toObject := state.Camera.Mul(item.World).Inverse()
		shader := fauxgl.NewPhongShader(matrix,
			scene.TransformVector(toObject, rm.lightDir).Normalize(),
			scene.TransformPoint(toObject, eye))
		shader.ObjectColor = objectColor
		rm.lastContext.Shader = shader
		rm.lastContext.Wireframe = false
	case colorModeNormals:
		rm.lastContext.Shader = &normalShader{Matrix: matrix}
		rm.lastContext.Wireframe = false
	default:
		rm.lastContext.Shader = fauxgl.NewSolidColorShader(matrix, objectColor)
		rm.lastContext.Wireframe = true
	}
	rm.lastContext.DrawMesh(mesh) // This is already multithread, no need to parallelize anymore
	return nil
}

func (rm *rasterizer) renderBoundingBox(bb scene.AABB, viewMatrix fauxgl.Matrix, color color.Color) {
	mesh := fauxgl.NewCubeOutlineForBox(bb.Box())
	// Render the cube as a wireframe
	rm.lastContext.Shader = fauxgl.NewSolidColorShader(viewMatrix, fauxgl.MakeColor(color))
	rm.lastContext.Wireframe = true
	rm.lastContext.DrawMesh(mesh)
}

// newGridMesh builds the reference grid on the XY plane, one unit between lines
func newGridMesh(halfLines int) *fauxgl.Mesh {
	var lines []*fauxgl.Line
	extent := float64(halfLines)
	for i := -halfLines; i <= halfLines; i++ {
		f := float64(i)
		lines = append(lines,
			newLine(fauxgl.Vector{X: f, Y: -extent}, fauxgl.Vector{X: f, Y: extent}),
			newLine(fauxgl.Vector{X: -extent, Y: f}, fauxgl.Vector{X: extent, Y: f}))
	}
	return fauxgl.NewMesh(nil, lines)
}

func newLine(from, to fauxgl.Vector) *fauxgl.Line {
	return &fauxgl.Line{V1: fauxgl.Vertex{Position: from}, V2: fauxgl.Vertex{Position: to}}
}

// normalShader colors each fragment with its (object space) normal XYZ as RGB
type normalShader struct {
	Matrix fauxgl.Matrix
}

func (shader *normalShader) Vertex(v fauxgl.Vertex) fauxgl.Vertex {
	v.Output = shader.Matrix.MulPositionW(v.Position)
	return v
}

func (shader *normalShader) Fragment(v fauxgl.Vertex) fauxgl.Color {
	return fauxgl.MakeColor(color.RGBA{
		R: uint8(math.Abs(v.Normal.X) * 255),
		G: uint8(math.Abs(v.Normal.Y) * 255),
		B: uint8(math.Abs(v.Normal.Z) * 255),
		A: 255,
	})
}
