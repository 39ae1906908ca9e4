//go:build ebiten

package app

import (
	"tictactoe/internal/core"
	"tictactoe/internal/render"

	"github.com/hajimehoshi/ebiten/v2"
)

// Runner adapts an App to the ebiten.Game interface.
type Runner struct {
	app     *App
	input   core.Input
	painter *render.Painter
}

// NewRunner constructs a Runner driving app with the given input and painter.
func NewRunner(app *App, input core.Input, painter *render.Painter) *Runner {
	return &Runner{app: app, input: input, painter: painter}
}

// Update applies pending stack actions and updates the active state.
func (r *Runner) Update() error {
	return r.app.Update(r.input)
}

// Draw renders the active state onto the screen.
func (r *Runner) Draw(screen *ebiten.Image) {
	r.app.Draw(r.painter.Frame(screen))
}

// Layout returns the fixed logical screen size.
func (r *Runner) Layout(outsideWidth, outsideHeight int) (int, int) {
	return core.ScreenWidth, core.ScreenHeight
}
