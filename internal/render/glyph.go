package render

import (
	"fmt"
	"image"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/opentype"
)

// GlyphSize is the point size used for the marks, at 72 DPI one point per pixel.
const GlyphSize = 300

// NewGlyphFace parses the bundled Go Bold font at the given size.
func NewGlyphFace(size float64) (font.Face, error) {
	f, err := opentype.Parse(gobold.TTF)
	if err != nil {
		return nil, fmt.Errorf("parse glyph font: %w", err)
	}
	face, err := opentype.NewFace(f, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("create glyph face: %w", err)
	}
	return face, nil
}

// GlyphBounds returns the pixel bounds of s drawn with its dot at the origin.
func GlyphBounds(face font.Face, s string) image.Rectangle {
	b, _ := font.BoundString(face, s)
	return image.Rect(b.Min.X.Floor(), b.Min.Y.Floor(), b.Max.X.Ceil(), b.Max.Y.Ceil())
}

// GlyphOrigin returns the dot position that centers the ink of s on (cx, cy).
func GlyphOrigin(face font.Face, s string, cx, cy int) (int, int) {
	b := GlyphBounds(face, s)
	return cx - (b.Min.X+b.Max.X)/2, cy - (b.Min.Y+b.Max.Y)/2
}

// CellCenter returns the pixel center of the cell at (col, row).
func CellCenter(col, row int, cellW, cellH int) (int, int) {
	return col*cellW + cellW/2, row*cellH + cellH/2
}
