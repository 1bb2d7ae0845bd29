package editor

import (
	"context"
	"github.com/Yeicor/sdfx-editor/internal"
	"github.com/Yeicor/sdfx-editor/scene"
	"github.com/barkimedes/go-deepcopy"
	"github.com/fogleman/fauxgl"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/subchen/go-trylock/v2"
	"image"
	"image/color"
	"log"
	"sync"
)

// Editor is the interactive scene editor: it turns window input into scene operations and draws the scene.
type Editor struct {
	// SCENE
	impl       internal.SceneImpl // The local or remote scene (see OptRemote)
	implLock   *sync.RWMutex
	sceneBuild sceneBuild // How to build the scene if none is given
	// VIEW
	implState     *internal.ViewState // Current view state (camera, options and last scene snapshot)
	implStateLock *sync.RWMutex
	camera        *scene.Camera
	cameraReset   *cameraAnimation // Running smooth camera reset, if any
	smoothCamera  bool
	camFovY       float64 // Vertical field of view, in degrees
	camNear       float64
	camFar        float64
	camDistance   float64 // The eye is pulled back this distance from the view origin
	screenSize    image.Point
	// RENDERING
	raster           *rasterizer
	renderingLock    tryRWLocker // Held while rendering in the background
	prevRenderCancel func()
	cachedRenderLock *sync.RWMutex
	cachedRender     *ebiten.Image
	renderedImage    *image.RGBA // The last complete background render (nil once uploaded to cachedRender)
	// INPUT
	mouseLoc image.Point
	// MISC
	remoteAddr     string
	watchFiles     []string
	pendingOptions chan []Option // Options reloaded by the watchers, applied on the next update
	remotePollAt   int           // Ticks between snapshot refreshes in remote mode
	ticks          int
}

// tryRWLocker is the part of a trylock.New() lock used by the editor
type tryRWLocker interface {
	Lock()
	Unlock()
	RTryLock(ctx context.Context) bool
	RUnlock()
}

// sceneBuild configures the scene built when NewEditor receives none
type sceneBuild struct {
	palette *scene.Palette
	opts    []scene.Option
	sample  bool
}

func (b sceneBuild) build() *scene.Scene {
	palette := b.palette
	if palette == nil {
		palette = scene.DefaultPalette()
	}
	if b.sample {
		return scene.NewSampleScene(palette, b.opts...)
	}
	return scene.New(palette, b.opts...)
}

// NewEditor edits the given scene. If s is nil, the scene is either built from the options or served remotely
// (see OptRemote).
func NewEditor(s *scene.Scene, opts ...Option) *Editor {
	r := &Editor{
		implLock:         &sync.RWMutex{},
		implStateLock:    &sync.RWMutex{},
		camera:           scene.NewCamera(),
		camFovY:          70,
		camNear:          0.1,
		camFar:           1000,
		camDistance:      15,
		screenSize:       image.Point{X: 640, Y: 480},
		raster:           newRasterizer(),
		renderingLock:    trylock.New(),
		prevRenderCancel: func() {},
		cachedRenderLock: &sync.RWMutex{},
		remotePollAt:     30,
		pendingOptions:   make(chan []Option, 4),
		implState: &internal.ViewState{
			ResInv: 1,
		},
	}
	if s != nil {
		r.impl = internal.NewLocalScene(s)
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Run opens the window and blocks until it is closed.
func (r *Editor) Run() error {
	if r.remoteAddr != "" {
		if r.getImpl() != nil {
			return errSceneAndRemote
		}
		cl, err := dialSceneClient(context.Background(), r.remoteAddr)
		if err != nil {
			return err
		}
		r.setImpl(cl)
		defer func() {
			if err := cl.Close(); err != nil {
				log.Println("[Editor] Error closing remote scene:", err)
			}
		}()
	}
	if r.getImpl() == nil {
		r.setImpl(internal.NewLocalScene(r.sceneBuild.build()))
	}
	if len(r.watchFiles) > 0 {
		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()
		for _, path := range r.watchFiles {
			if err := r.watchConfig(ctx, path); err != nil {
				return err
			}
		}
	}
	defer r.raster.geometry.Release()
	ebiten.SetWindowSize(r.screenSize.X, r.screenSize.Y)
	r.refresh()
	return ebiten.RunGame(rendererEbitenGame{r})
}

func (r *Editor) getImpl() internal.SceneImpl {
	r.implLock.RLock()
	defer r.implLock.RUnlock()
	return r.impl
}

func (r *Editor) setImpl(impl internal.SceneImpl) {
	r.implLock.Lock()
	r.impl = impl
	r.implLock.Unlock()
}

// refresh fetches a new scene snapshot and starts a new render
func (r *Editor) refresh() {
	snapshot := r.getImpl().Snapshot()
	r.implStateLock.Lock()
	r.implState.Scene = snapshot
	r.implStateLock.Unlock()
	r.rerender()
}

// rerender cancels the previous render (if any) and renders the current state in the background.
func (r *Editor) rerender() {
	r.prevRenderCancel()
	ctx, cancel := context.WithCancel(context.Background())
	r.prevRenderCancel = cancel

	// Clone the state to avoid locking while the rendering is happening
	r.implStateLock.Lock()
	r.implState.Camera = r.camera.ModelView()
	state := deepcopy.MustAnything(r.implState).(*internal.ViewState)
	projection := r.projection()
	eyeDistance := r.camDistance
	renderSize := r.screenSize.Div(max(1, state.ResInv))
	r.implStateLock.Unlock()

	go func() {
		r.renderingLock.Lock()
		defer r.renderingLock.Unlock()
		if ctx.Err() != nil { // Superseded while waiting for the previous render
			return
		}
		fullRender := image.NewRGBA(image.Rect(0, 0, max(1, renderSize.X), max(1, renderSize.Y)))
		err := r.raster.Render(&internal.RenderArgs{
			Ctx:              ctx,
			State:            state,
			StateLock:        &sync.RWMutex{},
			CachedRenderLock: r.cachedRenderLock,
			FullRender:       fullRender,
		}, projection, fauxgl.Vector{Z: eyeDistance})
		if err == nil {
			r.cachedRenderLock.Lock()
			r.renderedImage = fullRender
			r.cachedRenderLock.Unlock()
		} else if ctx.Err() == nil {
			log.Println("[Editor] Render error:", err)
		}
	}()
}

// drawScene uploads the last complete render (if new) and draws it scaled to the screen
func (r *Editor) drawScene(screen *ebiten.Image) {
	r.cachedRenderLock.Lock()
	if r.renderedImage != nil {
		if r.cachedRender != nil {
			r.cachedRender.Deallocate()
		}
		r.cachedRender = ebiten.NewImageFromImage(r.renderedImage)
		r.renderedImage = nil
	}
	cachedRender := r.cachedRender
	r.cachedRenderLock.Unlock()
	if cachedRender == nil {
		screen.Fill(color.RGBA{A: 255})
		return
	}
	drawOpts := &ebiten.DrawImageOptions{}
	cachedSize := cachedRender.Bounds().Size()
	drawOpts.GeoM.Scale(float64(r.screenSize.X)/float64(cachedSize.X), float64(r.screenSize.Y)/float64(cachedSize.Y))
	screen.DrawImage(cachedRender, drawOpts)
}
