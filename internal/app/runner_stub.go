//go:build !ebiten

package app

import "fmt"

// Runner is a placeholder that satisfies the API expected by the GUI build.
type Runner struct{}

// NewRunner panics to indicate that the ebiten build tag is required for GUI support.
func NewRunner(*App, any, any) *Runner {
	panic("app.NewRunner requires building with the 'ebiten' tag")
}

// Update always reports that the GUI build tag is missing.
func (r *Runner) Update() error {
	return fmt.Errorf("app.Runner.Update requires building with the 'ebiten' tag")
}

// Draw is a no-op placeholder to satisfy the interface shape.
func (r *Runner) Draw(any) {}

// Layout returns zeros in the headless build.
func (r *Runner) Layout(int, int) (int, int) { return 0, 0 }
