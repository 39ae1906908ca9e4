//go:build ebiten

package render

import (
	"image"
	"image/color"

	"tictactoe/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font"
)

// Painter holds the GPU-side resources shared by every frame.
type Painter struct {
	partition *ebiten.Image
	face      font.Face
	cell      core.Size
}

// NewPainter uploads the partition image and keeps the glyph face.
func NewPainter(partition image.Image, face font.Face) *Painter {
	return &Painter{
		partition: ebiten.NewImageFromImage(partition),
		face:      face,
		cell:      core.Size{W: core.CellWidth, H: core.CellHeight},
	}
}

// Frame wraps the screen for one Draw call.
func (p *Painter) Frame(screen *ebiten.Image) *Frame {
	return &Frame{p: p, dst: screen}
}

var _ core.Canvas = (*Frame)(nil)

// Frame implements core.Canvas on top of an ebiten screen.
type Frame struct {
	p   *Painter
	dst *ebiten.Image
}

// Fill clears the screen to clr.
func (f *Frame) Fill(clr color.Color) { f.dst.Fill(clr) }

// DrawPartition draws the partition image at the origin.
func (f *Frame) DrawPartition() {
	f.dst.DrawImage(f.p.partition, &ebiten.DrawImageOptions{})
}

// DrawGlyph draws s centered in the cell at (col, row).
func (f *Frame) DrawGlyph(col, row int, s string, clr color.Color) {
	cx, cy := CellCenter(col, row, f.p.cell.W, f.p.cell.H)
	x, y := GlyphOrigin(f.p.face, s, cx, cy)
	text.Draw(f.dst, s, f.p.face, x, y, clr)
}
