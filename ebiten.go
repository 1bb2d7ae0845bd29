package editor

import (
	"github.com/hajimehoshi/ebiten/v2"
	"image"
)

// rendererEbitenGame hides the private ebiten implementation while behaving like an *Editor internally
type rendererEbitenGame struct {
	*Editor
}

func (r rendererEbitenGame) Update() error {
	r.ticks++
	r.onUpdateOptions()
	r.onUpdateInputs()
	r.onUpdateCamera()
	if r.remoteAddr != "" && r.ticks%r.remotePollAt == 0 {
		r.refresh() // Other clients may be editing the same scene
	}
	return nil
}

func (r rendererEbitenGame) Draw(screen *ebiten.Image) {
	r.drawScene(screen)
	r.drawUI(screen)
}

func (r rendererEbitenGame) Layout(outsideWidth, outsideHeight int) (screenWidth, screenHeight int) {
	newScreenSize := image.Point{X: outsideWidth, Y: outsideHeight}
	r.implStateLock.Lock()
	changed := r.screenSize != newScreenSize
	r.screenSize = newScreenSize
	r.implStateLock.Unlock()
	if changed {
		r.rerender()
	}
	return outsideWidth, outsideHeight // Use all available pixels, no re-scaling (unless ResInv is modified)
}
