package scene

import (
	"github.com/fogleman/fauxgl"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"testing"
)

func TestNewPalette(t *testing.T) {
	_, err := NewPalette()
	assert.ErrorIs(t, err, ErrEmptyPalette)

	colors := []fauxgl.Color{fauxgl.Gray(0.1), fauxgl.Gray(0.9)}
	p, err := NewPalette(colors...)
	require.NoError(t, err)
	colors[0] = fauxgl.Gray(1) // The palette keeps its own copy
	assert.Equal(t, fauxgl.Gray(0.1), p.Color(0))
	assert.Equal(t, 1, p.Max())
	assert.Equal(t, 2, p.Len())
	assert.Panics(t, func() { p.Color(2) })
}

func TestPaletteNextSingleColor(t *testing.T) {
	p, err := NewPalette(fauxgl.Gray(0.5))
	require.NoError(t, err)
	assert.Equal(t, 0, p.Next(0, true))
	assert.Equal(t, 0, p.Next(0, false))
}

func TestDefaultPalette(t *testing.T) {
	p := DefaultPalette()
	assert.Equal(t, 0, p.Min())
	assert.Equal(t, 9, p.Max())
}
