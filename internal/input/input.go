//go:build ebiten

package input

import (
	"fmt"

	"tictactoe/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

var keys = map[string]ebiten.Key{
	"space":     ebiten.KeySpace,
	"enter":     ebiten.KeyEnter,
	"backspace": ebiten.KeyBackspace,
	"escape":    ebiten.KeyEscape,
	"tab":       ebiten.KeyTab,
	"r":         ebiten.KeyR,
	"n":         ebiten.KeyN,
	"y":         ebiten.KeyY,
	"0":         ebiten.KeyDigit0,
	"1":         ebiten.KeyDigit1,
	"2":         ebiten.KeyDigit2,
	"3":         ebiten.KeyDigit3,
	"4":         ebiten.KeyDigit4,
	"5":         ebiten.KeyDigit5,
	"6":         ebiten.KeyDigit6,
	"7":         ebiten.KeyDigit7,
	"8":         ebiten.KeyDigit8,
	"9":         ebiten.KeyDigit9,
}

// ParseKey maps a configured key name to an ebiten key.
func ParseKey(name string) (ebiten.Key, error) {
	n, ok := NormalizeKey(name)
	if !ok {
		return 0, fmt.Errorf("%w %q, want one of %v", ErrUnknownKey, name, KeyNames())
	}
	return keys[n], nil
}

// Ebiten reads the left mouse button, cursor and restart key from ebiten.
type Ebiten struct {
	restart ebiten.Key
}

var _ core.Input = (*Ebiten)(nil)

// New returns an Ebiten input using the named restart key.
func New(restartKey string) (*Ebiten, error) {
	key, err := ParseKey(restartKey)
	if err != nil {
		return nil, err
	}
	return &Ebiten{restart: key}, nil
}

// PointerJustPressed reports a left click this tick.
func (e *Ebiten) PointerJustPressed() bool {
	return inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft)
}

// PointerPosition returns the cursor in logical pixels.
func (e *Ebiten) PointerPosition() (int, int) { return ebiten.CursorPosition() }

// RestartJustPressed reports a press of the restart key this tick.
func (e *Ebiten) RestartJustPressed() bool {
	return inpututil.IsKeyJustPressed(e.restart)
}
