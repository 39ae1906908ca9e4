package render

import (
	"image"
	"image/color"
	"testing"

	"tictactoe/internal/core"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGlyphOriginCentersInk(t *testing.T) {
	face, err := NewGlyphFace(GlyphSize)
	require.NoError(t, err)
	defer face.Close()

	for _, s := range []string{core.Player1.String(), core.Player2.String()} {
		cx, cy := CellCenter(1, 2, core.CellWidth, core.CellHeight)
		x, y := GlyphOrigin(face, s, cx, cy)

		b := GlyphBounds(face, s).Add(image.Pt(x, y))
		assert.False(t, b.Empty(), s)
		assert.InDelta(t, cx, (b.Min.X+b.Max.X)/2, 1, s)
		assert.InDelta(t, cy, (b.Min.Y+b.Max.Y)/2, 1, s)
		assert.LessOrEqual(t, b.Dx(), core.CellWidth, s)
		assert.LessOrEqual(t, b.Dy(), core.CellHeight, s)
	}
}

func TestCellCenter(t *testing.T) {
	x, y := CellCenter(0, 0, core.CellWidth, core.CellHeight)
	assert.Equal(t, 150, x)
	assert.Equal(t, 150, y)

	x, y = CellCenter(2, 1, core.CellWidth, core.CellHeight)
	assert.Equal(t, 750, x)
	assert.Equal(t, 450, y)
}

func TestPartitionLines(t *testing.T) {
	img := Partition(core.Screen(), core.Cols, core.Rows, DefaultLineWidth, color.Black)

	require.Equal(t, core.ScreenWidth, img.Bounds().Dx())
	require.Equal(t, core.ScreenHeight, img.Bounds().Dy())

	opaque := func(x, y int) bool { return img.RGBAAt(x, y).A == 0xff }

	// On the boundaries between cells.
	assert.True(t, opaque(300, 10))
	assert.True(t, opaque(600, 890))
	assert.True(t, opaque(10, 300))
	assert.True(t, opaque(890, 600))
	assert.True(t, opaque(300, 600))

	// Cell interiors stay transparent so the background shows through.
	for _, c := range core.Lines[0] {
		cx, cy := CellCenter(c.Col, c.Row, core.CellWidth, core.CellHeight)
		assert.Zero(t, img.RGBAAt(cx, cy).A, "cell (%d,%d)", c.Col, c.Row)
	}
	assert.Zero(t, img.RGBAAt(0, 0).A)
	assert.Zero(t, img.RGBAAt(899, 899).A)
}

func TestPartitionDegenerate(t *testing.T) {
	img := Partition(core.Size{W: 9, H: 9}, 0, 3, 1, color.Black)
	for y := 0; y < 9; y++ {
		for x := 0; x < 9; x++ {
			require.Zero(t, img.RGBAAt(x, y).A)
		}
	}
}
