// Package render draws the board: glyph layout and partition rasterization
// are headless, while Painter (built with the ebiten tag) targets the screen.
package render
