//go:build ebiten

package main

import (
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"tictactoe/internal/app"
	"tictactoe/internal/assets"
	"tictactoe/internal/core"
	"tictactoe/internal/game"
	"tictactoe/internal/input"
	"tictactoe/internal/render"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg, err := app.LoadConfig(os.Getenv(app.ConfigEnv))
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	logger := app.NewLogger(cfg.LogLevel, os.Stderr)
	if err := run(cfg, logger); err != nil {
		logger.Error("tic-tac-toe stopped", "error", err)
		os.Exit(1)
	}
}

func run(cfg *app.Config, logger *slog.Logger) error {
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	board, err := assets.LoadImage(cfg.AssetDir, cfg.BoardImage)
	if err != nil {
		return fmt.Errorf("load partition image: %w", err)
	}
	face, err := render.NewGlyphFace(render.GlyphSize)
	if err != nil {
		return err
	}
	defer face.Close()

	in, err := input.New(cfg.RestartKey)
	if err != nil {
		return fmt.Errorf("restart key: %w", err)
	}

	shell := app.New(logger)
	shell.AddAction(core.Create(game.New(game.Options{
		Logger:      logger,
		Console:     os.Stdout,
		KeepConsole: cfg.KeepConsole,
	})))

	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowSize(core.ScreenWidth, core.ScreenHeight)
	ebiten.SetTPS(cfg.TPS)

	runner := app.NewRunner(shell, in, render.NewPainter(board, face))
	if err := ebiten.RunGame(runner); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}
