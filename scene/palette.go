package scene

import (
	"errors"
	"fmt"
	"github.com/fogleman/fauxgl"
)

// ErrEmptyPalette is returned when building a palette without colors.
var ErrEmptyPalette = errors.New("palette has no colors")

// Palette is the fixed list of colors that nodes index into. It is immutable once built and shared by reference.
type Palette struct {
	colors []fauxgl.Color
}

// NewPalette copies the given colors into a new palette.
func NewPalette(colors ...fauxgl.Color) (*Palette, error) {
	if len(colors) == 0 {
		return nil, ErrEmptyPalette
	}
	return &Palette{colors: append([]fauxgl.Color(nil), colors...)}, nil
}

// DefaultPalette returns the 10 builtin colors.
func DefaultPalette() *Palette {
	return &Palette{colors: []fauxgl.Color{
		{R: 0.8, G: 0.0, B: 0.0, A: 1}, // Red
		{R: 0.0, G: 0.8, B: 0.0, A: 1}, // Green
		{R: 0.0, G: 0.0, B: 0.8, A: 1}, // Blue
		{R: 0.8, G: 0.8, B: 0.0, A: 1}, // Yellow
		{R: 0.8, G: 0.0, B: 0.8, A: 1}, // Magenta
		{R: 0.0, G: 0.8, B: 0.8, A: 1}, // Cyan
		{R: 0.5, G: 0.5, B: 0.5, A: 1}, // Gray
		{R: 0.8, G: 0.5, B: 0.0, A: 1}, // Orange
		{R: 0.0, G: 0.5, B: 0.8, A: 1}, // Light Blue
		{R: 0.8, G: 0.0, B: 0.5, A: 1}, // Pink
	}}
}

// Min is the lowest valid color index.
func (p *Palette) Min() int {
	return 0
}

// Max is the highest valid color index.
func (p *Palette) Max() int {
	return len(p.colors) - 1
}

// Len is the number of colors.
func (p *Palette) Len() int {
	return len(p.colors)
}

// Color returns the color at index i, which must be in [Min, Max].
func (p *Palette) Color(i int) fauxgl.Color {
	if i < p.Min() || i > p.Max() {
		panic(fmt.Sprintf("scene: color index %d out of palette range [%d, %d]", i, p.Min(), p.Max()))
	}
	return p.colors[i]
}

// Next returns the index after i (or before, if !forward), wrapping at both ends.
func (p *Palette) Next(i int, forward bool) int {
	if forward {
		i++
	} else {
		i--
	}
	if i > p.Max() {
		i = p.Min()
	}
	if i < p.Min() {
		i = p.Max()
	}
	return i
}
