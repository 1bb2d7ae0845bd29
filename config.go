package editor

import (
	"errors"
	"fmt"
	"github.com/Yeicor/sdfx-editor/scene"
	"github.com/fogleman/fauxgl"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
	"image/color"
	"os"
	"path/filepath"
	"strings"
)

// ErrUnknownConfigFormat is returned when the config file extension is not .toml, .yaml or .yml
var ErrUnknownConfigFormat = errors.New("unknown config format")

// Config is the file configuration of the editor, see LoadConfig.
type Config struct {
	Window WindowConfig `toml:"window" yaml:"window"`
	Camera CameraConfig `toml:"camera" yaml:"camera"`
	Scene  SceneConfig  `toml:"scene" yaml:"scene"`
	View   ViewConfig   `toml:"view" yaml:"view"`
	Remote RemoteConfig `toml:"remote" yaml:"remote"`
}

type WindowConfig struct {
	Width  int `toml:"width" yaml:"width"`
	Height int `toml:"height" yaml:"height"`
}

type CameraConfig struct {
	FovY     float64 `toml:"fov_y" yaml:"fov_y"` // Degrees
	Near     float64 `toml:"near" yaml:"near"`
	Far      float64 `toml:"far" yaml:"far"`
	Distance float64 `toml:"distance" yaml:"distance"`
	Smooth   bool    `toml:"smooth" yaml:"smooth"`
}

type SceneConfig struct {
	Palette    [][3]float64 `toml:"palette" yaml:"palette"` // RGB in 0..1, the default palette if empty
	PlaceDepth float64      `toml:"place_depth" yaml:"place_depth"`
	Sample     bool         `toml:"sample" yaml:"sample"`
	Seed       int64        `toml:"seed" yaml:"seed"` // 0 for random colors
}

type ViewConfig struct {
	Resolution int      `toml:"resolution" yaml:"resolution"` // Screen pixels for each rendered pixel
	Boxes      bool     `toml:"boxes" yaml:"boxes"`
	ColorMode  string   `toml:"color_mode" yaml:"color_mode"`
	Background [3]uint8 `toml:"background" yaml:"background"`
	Grid       [3]uint8 `toml:"grid" yaml:"grid"`
	MeshCells  int      `toml:"mesh_cells" yaml:"mesh_cells"`
}

type RemoteConfig struct {
	Serve   string `toml:"serve" yaml:"serve"`     // Address to serve the scene at
	Connect string `toml:"connect" yaml:"connect"` // Address of a served scene to edit
}

// DefaultConfig is the configuration used for any value missing from a config file.
func DefaultConfig() *Config {
	return &Config{
		Window: WindowConfig{Width: 640, Height: 480},
		Camera: CameraConfig{FovY: 70, Near: 0.1, Far: 1000, Distance: 15},
		Scene:  SceneConfig{PlaceDepth: scene.PlaceDepth},
		View: ViewConfig{
			Resolution: 1,
			ColorMode:  colorModeNames[colorModeShaded],
			Background: [3]uint8{25, 25, 35},
			Grid:       [3]uint8{90, 90, 90},
			MeshCells:  40,
		},
	}
}

// LoadConfig reads a TOML (.toml) or YAML (.yaml, .yml) config file on top of DefaultConfig.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	cfg := DefaultConfig()
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".toml":
		err = toml.Unmarshal(data, cfg)
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, cfg)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownConfigFormat, ext)
	}
	if err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}
	return cfg, nil
}

// Palette builds the configured palette.
func (c *Config) Palette() (*scene.Palette, error) {
	if len(c.Scene.Palette) == 0 {
		return scene.DefaultPalette(), nil
	}
	colors := make([]fauxgl.Color, len(c.Scene.Palette))
	for i, rgb := range c.Scene.Palette {
		colors[i] = fauxgl.Color{R: rgb[0], G: rgb[1], B: rgb[2], A: 1}
	}
	return scene.NewPalette(colors...)
}

// SceneOptions are the options of the scene built from this config.
func (c *Config) SceneOptions() []Option {
	opts := []Option{OptPlaceDepth(c.Scene.PlaceDepth), OptSampleScene(c.Scene.Sample)}
	if c.Scene.Seed != 0 {
		opts = append(opts, OptSeed(c.Scene.Seed))
	}
	return opts
}

// NewScene builds the configured scene, as an editor would (see Serve).
func (c *Config) NewScene() (*scene.Scene, error) {
	palette, err := c.Palette()
	if err != nil {
		return nil, err
	}
	r := &Editor{} // Scene options only touch the scene build
	for _, opt := range append(c.SceneOptions(), OptPalette(palette)) {
		opt(r)
	}
	return r.sceneBuild.build(), nil
}

// Options converts the whole config to editor options (the palette is loaded once here).
func (c *Config) Options() ([]Option, error) {
	palette, err := c.Palette()
	if err != nil {
		return nil, err
	}
	viewOpts, err := c.ViewOptions()
	if err != nil {
		return nil, err
	}
	opts := []Option{
		OptPalette(palette),
		OptWindowSize(c.Window.Width, c.Window.Height),
		OptMeshCells(c.View.MeshCells),
	}
	opts = append(opts, c.SceneOptions()...)
	opts = append(opts, viewOpts...)
	if c.Remote.Connect != "" {
		opts = append(opts, OptRemote(c.Remote.Connect))
	}
	return opts, nil
}

// ViewOptions are the options that only affect how the scene is seen, which may be applied to a running editor.
func (c *Config) ViewOptions() ([]Option, error) {
	colorMode, err := parseColorMode(c.View.ColorMode)
	if err != nil {
		return nil, err
	}
	return []Option{
		OptCamera(c.Camera.FovY, c.Camera.Near, c.Camera.Far, c.Camera.Distance),
		OptSmoothCamera(c.Camera.Smooth),
		OptResolution(c.View.Resolution, c.View.Boxes, colorMode),
		OptColors(rgb(c.View.Background), rgb(c.View.Grid)),
	}, nil
}

func parseColorMode(name string) (int, error) {
	for i, modeName := range colorModeNames {
		if strings.EqualFold(modeName, name) {
			return i, nil
		}
	}
	return 0, fmt.Errorf("unknown color mode %q (expected one of %v)", name, colorModeNames)
}

func rgb(c [3]uint8) color.RGBA {
	return color.RGBA{R: c[0], G: c[1], B: c[2], A: 255}
}
