package render

import (
	"image"
	"image/color"
	"image/draw"

	"tictactoe/internal/core"

	"golang.org/x/image/vector"
)

// DefaultLineWidth is the stroke width of the partition lines in pixels.
const DefaultLineWidth = 8

// Partition rasterizes the grid lines separating the cells onto a
// transparent image of the given size.
func Partition(size core.Size, cols, rows int, lineWidth float32, clr color.Color) *image.RGBA {
	dst := image.NewRGBA(image.Rect(0, 0, size.W, size.H))
	if cols <= 0 || rows <= 0 || lineWidth <= 0 {
		return dst
	}

	z := vector.NewRasterizer(size.W, size.H)
	half := lineWidth / 2
	w, h := float32(size.W), float32(size.H)
	for i := 1; i < cols; i++ {
		x := w * float32(i) / float32(cols)
		rect(z, x-half, 0, x+half, h)
	}
	for i := 1; i < rows; i++ {
		y := h * float32(i) / float32(rows)
		rect(z, 0, y-half, w, y+half)
	}
	z.DrawOp = draw.Over
	z.Draw(dst, dst.Bounds(), image.NewUniform(clr), image.Point{})
	return dst
}

func rect(z *vector.Rasterizer, x0, y0, x1, y1 float32) {
	z.MoveTo(x0, y0)
	z.LineTo(x1, y0)
	z.LineTo(x1, y1)
	z.LineTo(x0, y1)
	z.ClosePath()
}
