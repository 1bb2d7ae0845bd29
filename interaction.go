package editor

import (
	"context"
	"fmt"
	"github.com/Yeicor/sdfx-editor/internal"
	"github.com/Yeicor/sdfx-editor/scene"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"image"
	"image/color"
	"log"
	"math"
	"time"
)

// Screen pixels of middle-drag for each unit of camera translation
const panPixelsPerUnit = 60

var defaultFont font.Face = basicfont.Face7x13

// placeKeys maps the keys that place a new node below the cursor
var placeKeys = map[ebiten.Key]scene.Kind{
	ebiten.KeyS: scene.KindSphere,
	ebiten.KeyC: scene.KindCube,
	ebiten.KeyF: scene.KindFigure,
}

// scaleKeys maps the keys that grow (true) or shrink (false) the selection
var scaleKeys = map[ebiten.Key]bool{
	ebiten.KeyArrowUp:   true,
	ebiten.KeyArrowDown: false,
}

// colorKeys maps the keys that rotate the color of the selection forward (true) or backward (false)
var colorKeys = map[ebiten.Key]bool{
	ebiten.KeyArrowLeft:  true,
	ebiten.KeyArrowRight: false,
}

// onUpdateInputs handles inputs
func (r *Editor) onUpdateInputs() {
	cx, cy := ebiten.CursorPosition()
	cursor := image.Point{X: cx, Y: cy}
	delta := cursor.Sub(r.mouseLoc)
	r.onUpdateInputsView()
	r.onUpdateInputsScene(cursor, delta)
	r.onUpdateInputsCamera(cursor, delta)
	r.mouseLoc = cursor
}

// onUpdateInputsView handles controls that only affect how the scene is drawn
func (r *Editor) onUpdateInputsView() {
	if inpututil.IsKeyJustPressed(ebiten.KeyNumpadAdd) || inpututil.IsKeyJustPressed(ebiten.KeyEqual) {
		r.implStateLock.Lock()
		r.implState.ResInv /= 2
		if r.implState.ResInv < 1 {
			r.implState.ResInv = 1
		}
		r.implStateLock.Unlock()
		r.rerender()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyNumpadSubtract) || inpututil.IsKeyJustPressed(ebiten.KeyMinus) {
		r.implStateLock.Lock()
		r.implState.ResInv *= 2
		if r.implState.ResInv > 16 {
			r.implState.ResInv = 16
		}
		r.implStateLock.Unlock()
		r.rerender()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyB) {
		r.implStateLock.Lock()
		r.implState.DrawBbs = !r.implState.DrawBbs
		r.implStateLock.Unlock()
		r.rerender()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyM) {
		r.implStateLock.Lock()
		r.implState.ColorMode = (r.implState.ColorMode + 1) % colorModes
		r.implStateLock.Unlock()
		r.rerender()
	}
}

// onUpdateInputsScene handles the scene operations: placing, picking, moving, scaling, recoloring and removing
func (r *Editor) onUpdateInputsScene(cursor, delta image.Point) {
	impl := r.getImpl()
	changed := false
	for key, kind := range placeKeys {
		if inpututil.IsKeyJustPressed(key) {
			err := impl.Place(internal.PlaceArgs{
				Kind:      kind,
				Ray:       r.cursorRay(cursor.X, cursor.Y),
				InvCamera: r.camera.InverseModelView(),
			})
			if err != nil {
				log.Println("[Editor] Error placing", kind, ":", err)
			}
			changed = true
		}
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		impl.Pick(internal.RayArgs{Ray: r.cursorRay(cursor.X, cursor.Y), Camera: r.camera.ModelView()})
		changed = true
	} else if ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) && delta != (image.Point{}) {
		impl.MoveSelected(internal.RayArgs{Ray: r.cursorRay(cursor.X, cursor.Y), Camera: r.camera.InverseModelView()})
		changed = true
	}
	for key, up := range scaleKeys {
		if inpututil.IsKeyJustPressed(key) {
			impl.ScaleSelected(up)
			changed = true
		}
	}
	for key, forward := range colorKeys {
		if inpututil.IsKeyJustPressed(key) {
			impl.RotateSelectedColor(forward)
			changed = true
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyDelete) || inpututil.IsKeyJustPressed(ebiten.KeyBackspace) {
		changed = impl.RemoveSelected() || changed
	}
	if changed {
		r.refresh()
	}
}

// onUpdateInputsCamera handles the trackball (right drag), panning (middle drag) and zooming (wheel)
func (r *Editor) onUpdateInputsCamera(cursor, delta image.Point) {
	changed := false
	r.implStateLock.RLock()
	screenHeight := r.screenSize.Y
	r.implStateLock.RUnlock()
	if ebiten.IsMouseButtonPressed(ebiten.MouseButtonRight) && (delta != image.Point{} || !r.trackballAnchored()) {
		// The trackball works with Y growing up
		r.camera.Trackball().DragTo(float64(cursor.X), float64(screenHeight-cursor.Y), float64(delta.X), float64(-delta.Y))
		changed = true
	}
	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonRight) {
		r.camera.Trackball().Release()
	}
	if ebiten.IsMouseButtonPressed(ebiten.MouseButtonMiddle) && delta != (image.Point{}) {
		r.camera.Translate(float64(delta.X)/panPixelsPerUnit, float64(-delta.Y)/panPixelsPerUnit, 0)
		changed = true
	}
	if _, wheelUpDown := ebiten.Wheel(); wheelUpDown != 0 {
		r.camera.Translate(0, 0, math.Copysign(1, wheelUpDown))
		changed = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		r.resetCamera()
		changed = true
	}
	if changed {
		r.rerender()
	}
}

func (r *Editor) trackballAnchored() bool {
	_, _, ok := r.camera.Trackball().Anchor()
	return ok
}

// drawUI draws the rendering indicator, the current state and the controls
func (r *Editor) drawUI(screen *ebiten.Image) {
	// Notify when rendering
	ctx, cancelFunc := context.WithTimeout(context.Background(), time.Millisecond)
	defer cancelFunc()
	if r.renderingLock.RTryLock(ctx) {
		r.renderingLock.RUnlock()
	} else {
		drawDefaultTextWithShadow(screen, "Rendering...", 5, 5+12, color.RGBA{R: 255, A: 255})
	}

	// Draw current state and controls
	r.implStateLock.RLock()
	defer r.implStateLock.RUnlock()
	selected := "none"
	nodes := 0
	if r.implState.Scene != nil {
		nodes = len(r.implState.Scene.Nodes)
		if r.implState.Scene.Selected {
			selected = fmt.Sprintf("depth %.2f", r.implState.Scene.Depth)
		}
	}
	msgFmt := "Scene Editor\n============\nTPS: %0.2f/%d\nResolution: %.2f [+/-]\nColor mode: %s [M]\nBoxes: %t [B]\n" +
		"Nodes: %d\nSelected: %s\nPlace sphere/cube/figure [S/C/F]\nPick and move [LeftMouse]\nScale [Up/Down]\n" +
		"Recolor [Left/Right]\nRemove [Delete]\nRotate cam [RightMouse]\nTranslate cam [MiddleMouse]\nZoom cam [MouseWheel]\nReset camera [R]"
	msgValues := []interface{}{ebiten.ActualTPS(), ebiten.TPS(), 1 / float64(r.implState.ResInv), colorModeNames[r.implState.ColorMode],
		r.implState.DrawBbs, nodes, selected}
	msg := fmt.Sprintf(msgFmt, msgValues...)
	boundString := text.BoundString(defaultFont, msg)
	drawDefaultTextWithShadow(screen, msg, 5, r.screenSize.Y-boundString.Size().Y+10, color.RGBA{G: 255, A: 255})
}

func drawDefaultTextWithShadow(screen *ebiten.Image, msg string, x, y int, c color.Color) {
	text.Draw(screen, msg, defaultFont, x+1, y+1, color.RGBA{A: 255})
	text.Draw(screen, msg, defaultFont, x, y, c)
}
