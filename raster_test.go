package editor

import (
	"context"
	"github.com/Yeicor/sdfx-editor/internal"
	"github.com/Yeicor/sdfx-editor/scene"
	"github.com/fogleman/fauxgl"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"image"
	"image/color"
	"sync"
	"testing"
)

func newTestRasterizer() *rasterizer {
	rm := newRasterizer()
	rm.geometry.cells = 12
	return rm
}

func renderTestState(t testing.TB, rm *rasterizer, ctx context.Context, state *internal.ViewState, size int) (*image.RGBA, error) {
	t.Helper()
	fullRender := image.NewRGBA(image.Rect(0, 0, size, size))
	err := rm.Render(&internal.RenderArgs{
		Ctx:              ctx,
		State:            state,
		StateLock:        &sync.RWMutex{},
		CachedRenderLock: &sync.RWMutex{},
		FullRender:       fullRender,
	}, viewProjection(70, 1, 0.1, 1000, 15), fauxgl.Vector{Z: 15})
	return fullRender, err
}

func cubeSnapshot(selected bool) *internal.SceneSnapshot {
	s := scene.New(scene.DefaultPalette())
	cube := scene.NewCube(s.Palette(), 0) // Red
	s.Add(cube)
	if selected {
		s.Pick(fauxgl.Vector{Z: 5}, fauxgl.Vector{Z: -1}, fauxgl.Identity())
	}
	return internal.NewSceneSnapshot(s)
}

func TestRasterizerDrawsItems(t *testing.T) {
	rm := newTestRasterizer()
	empty, err := renderTestState(t, rm, context.Background(), &internal.ViewState{ResInv: 1, Camera: fauxgl.Identity()}, 64)
	require.NoError(t, err)
	center := empty.RGBAAt(32, 32)
	assert.Equal(t, center.R, center.G) // Only the gray grid and the background

	for _, colorMode := range []int{colorModeShaded, colorModeWireframe} {
		state := &internal.ViewState{ResInv: 1, ColorMode: colorMode, Camera: fauxgl.Identity(), Scene: cubeSnapshot(false)}
		img, err := renderTestState(t, rm, context.Background(), state, 64)
		require.NoError(t, err)
		if colorMode == colorModeShaded {
			center = img.RGBAAt(32, 32)
			assert.Greater(t, center.R, center.G, "the red cube covers the center")
		}
		assert.NotEqual(t, empty.Pix, img.Pix, colorModeNames[colorMode])
	}
}

func TestRasterizerHighlightsSelection(t *testing.T) {
	rm := newTestRasterizer()
	plain, err := renderTestState(t, rm, context.Background(),
		&internal.ViewState{ResInv: 1, Camera: fauxgl.Identity(), Scene: cubeSnapshot(false)}, 64)
	require.NoError(t, err)
	highlighted, err := renderTestState(t, rm, context.Background(),
		&internal.ViewState{ResInv: 1, Camera: fauxgl.Identity(), Scene: cubeSnapshot(true)}, 64)
	require.NoError(t, err)
	plainCenter, highlightedCenter := plain.RGBAAt(32, 32), highlighted.RGBAAt(32, 32)
	assert.Greater(t, highlightedCenter.G, plainCenter.G) // Emission brightens every channel
}

func TestRasterizerDrawsPickVolumes(t *testing.T) {
	rm := newTestRasterizer()
	rm.selectedBbColor = color.RGBA{G: 255, A: 255}
	state := &internal.ViewState{ResInv: 1, Camera: fauxgl.Identity(), Scene: cubeSnapshot(true)}
	withoutBbs, err := renderTestState(t, rm, context.Background(), state, 64)
	require.NoError(t, err)
	state.DrawBbs = true
	withBbs, err := renderTestState(t, rm, context.Background(), state, 64)
	require.NoError(t, err)
	assert.NotEqual(t, withoutBbs.Pix, withBbs.Pix)
}

func TestRasterizerCancelled(t *testing.T) {
	rm := newTestRasterizer()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	state := &internal.ViewState{ResInv: 1, Camera: fauxgl.Identity(), Scene: cubeSnapshot(false)}
	_, err := renderTestState(t, rm, ctx, state, 16)
	assert.ErrorIs(t, err, context.Canceled)
}

func BenchmarkRasterizer_Render(b *testing.B) {
	rm := newTestRasterizer()
	palette := scene.DefaultPalette()
	state := &internal.ViewState{ResInv: 1, Camera: fauxgl.Identity(), Scene: internal.NewSceneSnapshot(scene.NewSampleScene(palette))}
	b.ReportAllocs()
	b.ResetTimer()
	for n := 0; n < b.N; n++ {
		if _, err := renderTestState(b, rm, context.Background(), state, 256); err != nil {
			b.Fatal(err)
		}
	}
}
