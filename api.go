package editor

import (
	"errors"
	"github.com/Yeicor/sdfx-editor/scene"
	"image"
	"image/color"
	"math/rand"
)

// Option configures an Editor
type Option func(r *Editor)

var errSceneAndRemote = errors.New("cannot edit a local scene and a remote scene at the same time")

//-----------------------------------------------------------------------------
// SCENE
//-----------------------------------------------------------------------------

// OptPalette sets the palette of the scene built by the editor when NewEditor receives no scene.
func OptPalette(palette *scene.Palette) Option {
	return func(r *Editor) {
		r.sceneBuild.palette = palette
	}
}

// OptPlaceDepth sets the distance from the camera at which new nodes are placed (for a scene built by the editor).
func OptPlaceDepth(depth float64) Option {
	return func(r *Editor) {
		r.sceneBuild.opts = append(r.sceneBuild.opts, scene.OptPlaceDepth(depth))
	}
}

// OptSeed makes the random colors of new nodes reproducible (for a scene built by the editor).
func OptSeed(seed int64) Option {
	return func(r *Editor) {
		r.sceneBuild.opts = append(r.sceneBuild.opts, scene.OptRand(rand.New(rand.NewSource(seed))))
	}
}

// OptSampleScene starts with the sample scene instead of an empty one (for a scene built by the editor).
func OptSampleScene(sample bool) Option {
	return func(r *Editor) {
		r.sceneBuild.sample = sample
	}
}

// OptRemote edits the scene served by another process (see Serve) instead of a local one.
func OptRemote(addr string) Option {
	return func(r *Editor) {
		r.remoteAddr = addr
	}
}

//-----------------------------------------------------------------------------
// VIEW
//-----------------------------------------------------------------------------

// OptCamera configures the perspective (vertical field of view in degrees and clipping planes) and how far the
// eye is pulled back from the view origin.
func OptCamera(fovY, near, far, distance float64) Option {
	return func(r *Editor) {
		r.camFovY = fovY
		r.camNear = near
		r.camFar = far
		r.camDistance = distance
	}
}

// OptSmoothCamera animates camera resets instead of jumping.
func OptSmoothCamera(smooth bool) Option {
	return func(r *Editor) {
		r.smoothCamera = smooth
	}
}

// OptColors sets the background and the reference grid colors.
func OptColors(background, grid color.RGBA) Option {
	return func(r *Editor) {
		r.raster.backgroundColor = background
		r.raster.gridColor = grid
	}
}

// OptBBColor sets the color of the pick volumes overlay for each hierarchy level (0 for root nodes).
func OptBBColor(getBBColor func(level int) color.Color) Option {
	return func(r *Editor) {
		r.raster.getBBColor = getBBColor
	}
}

// OptResolution sets the number of screen pixels for each rendered pixel (>= 1), the pick volume overlay and the color
// mode (shaded, normals or wireframe).
func OptResolution(resInv int, drawBbs bool, colorMode int) Option {
	return func(r *Editor) {
		r.implStateLock.Lock()
		defer r.implStateLock.Unlock()
		r.implState.ResInv = max(1, resInv)
		r.implState.DrawBbs = drawBbs
		r.implState.ColorMode = ((colorMode % colorModes) + colorModes) % colorModes
	}
}

// OptWindowSize sets the initial window size.
func OptWindowSize(width, height int) Option {
	return func(r *Editor) {
		r.screenSize = image.Point{X: width, Y: height}
	}
}

// OptWatchConfig reloads the view settings of the given config file whenever it changes.
func OptWatchConfig(path string) Option {
	return func(r *Editor) {
		r.watchFiles = append(r.watchFiles, path)
	}
}
