// Package game implements the tic-tac-toe play state driven by the app's
// state stack.
package game

import (
	"image/color"
	"io"
	"log/slog"

	"tictactoe/internal/core"
)

var (
	background   = color.White
	player1Color = color.RGBA{R: 255, A: 255}
	player2Color = color.RGBA{B: 255, A: 255}
)

// Outcome describes how a finished game ended.
type Outcome struct {
	Winner core.Mark
	Line   core.Line
	Draw   bool
}

// Options carries the collaborators shared by every Game instance.
type Options struct {
	Logger *slog.Logger
	// Console receives the end-of-game messages. Nil discards them.
	Console io.Writer
	// KeepConsole skips clearing the terminal when a game starts.
	KeepConsole bool
}

// Game is one round of tic-tac-toe.
type Game struct {
	grid     core.Grid
	turn     core.Mark
	gameOver bool
	active   bool
	outcome  Outcome

	opts    Options
	log     *slog.Logger
	console *console
}

// New starts a fresh round with an empty grid and player 1 to move.
func New(opts Options) *Game {
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	g := &Game{
		grid:    core.NewGrid(),
		turn:    core.Player1,
		active:  true,
		opts:    opts,
		log:     opts.Logger.With("component", "game"),
		console: newConsole(opts.Console),
	}
	if !opts.KeepConsole {
		g.console.clear()
	}
	g.log.Info("new game", "turn", g.turn.String())
	return g
}

// Grid returns a copy of the board.
func (g *Game) Grid() core.Grid { return g.grid }

// Turn returns the mark that will be placed next.
func (g *Game) Turn() core.Mark { return g.turn }

// GameOver reports whether the round has ended.
func (g *Game) GameOver() bool { return g.gameOver }

// Active reports whether the round is still on screen. It turns false once
// the restart key is pressed after game over.
func (g *Game) Active() bool { return g.active }

// Outcome returns the result of a finished round.
func (g *Game) Outcome() Outcome { return g.outcome }

// Update places a mark on click while playing, then checks for a win or a
// full board. After game over only the restart key is observed.
func (g *Game) Update(in core.Input) error {
	if g.gameOver {
		if in.RestartJustPressed() {
			g.active = false
		}
		return nil
	}

	if in.PointerJustPressed() {
		if cell, ok := core.CellAt(in.PointerPosition()); ok {
			g.place(cell)
		}
	}
	return g.evaluate()
}

// Draw renders the partition and every placed mark. Once the round is
// inactive it requests replacement by a fresh Game.
func (g *Game) Draw(c core.Canvas) core.Action {
	c.Fill(background)
	c.DrawPartition()
	for row := 0; row < core.Rows; row++ {
		for col := 0; col < core.Cols; col++ {
			mark := g.grid.At(col, row)
			if mark == core.Empty {
				continue
			}
			c.DrawGlyph(col, row, mark.String(), markColor(mark))
		}
	}

	if !g.active {
		return core.Change(New(g.opts))
	}
	return core.Action{}
}

func (g *Game) place(cell core.Cell) bool {
	if !g.grid.IsEmpty(cell.Col, cell.Row) {
		return false
	}
	g.grid.Set(cell.Col, cell.Row, g.turn)
	g.log.Debug("mark placed", "mark", g.turn.String(), "col", cell.Col, "row", cell.Row)
	g.turn = g.turn.Other()
	return true
}

func (g *Game) evaluate() error {
	if winner, line, ok := g.grid.Winner(); ok {
		g.gameOver = true
		g.outcome = Outcome{Winner: winner, Line: line}
		g.log.Info("game over", "outcome", "win", "winner", winner.String())
		return g.console.win(winner)
	}
	if g.grid.Full() {
		g.gameOver = true
		g.outcome = Outcome{Winner: core.Empty, Draw: true}
		g.log.Info("game over", "outcome", "draw")
		return g.console.draw()
	}
	return nil
}

func markColor(m core.Mark) color.Color {
	if m == core.Player1 {
		return player1Color
	}
	return player2Color
}
