package core

import "image/color"

// Size describes pixel dimensions.
type Size struct {
	W int
	H int
}

const (
	// ScreenWidth is the fixed logical width of the window.
	ScreenWidth = 900
	// ScreenHeight is the fixed logical height of the window.
	ScreenHeight = 900

	// CellWidth is the pixel width of one grid cell.
	CellWidth = ScreenWidth / Cols
	// CellHeight is the pixel height of one grid cell.
	CellHeight = ScreenHeight / Rows
)

// Screen returns the logical window size.
func Screen() Size { return Size{W: ScreenWidth, H: ScreenHeight} }

// Input is the per-frame input snapshot a state samples during Update.
type Input interface {
	// PointerJustPressed reports whether the primary pointer button went
	// down this frame.
	PointerJustPressed() bool
	// PointerPosition returns the pointer location in logical pixels.
	PointerPosition() (x, y int)
	// RestartJustPressed reports whether the restart key went down this frame.
	RestartJustPressed() bool
}

// Canvas is the immediate-mode drawing surface handed to a state's Draw.
type Canvas interface {
	Fill(clr color.Color)
	DrawPartition()
	// DrawGlyph draws s centered in the cell at (col, row).
	DrawGlyph(col, row int, s string, clr color.Color)
}
