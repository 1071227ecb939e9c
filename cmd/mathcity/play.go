package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/math-city/internal/city"
	"github.com/vovakirdan/math-city/internal/core"
	"github.com/vovakirdan/math-city/internal/engine"
	"github.com/vovakirdan/math-city/internal/journal"
	"github.com/vovakirdan/math-city/internal/mathgen"
	"github.com/vovakirdan/math-city/internal/platform/tui"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Start the game",
	Long: `Start building. Each building needs a solved problem before it is placed.

Controls:
  1-4          - Select house, shop, factory, park
  Arrows/Mouse - Move the cursor
  Enter/Space  - Place at the cursor (left click places too)
  Enter        - Submit the answer
  Esc          - Cancel
  H            - Toggle help
  Tab          - Toggle answer history
  Q/Ctrl+C     - Quit

Answers may be expressions: 12*7, (5+7)*2, 84/2.

Examples:
  mathcity play
  mathcity play --seed 42 --fps 30
  mathcity play --config ./my-city.yaml --log-file city.log`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func runPlay(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	// The alternate screen owns stdout: log to the file or discard.
	logger, closeLog, err := newLogger(cfg, io.Discard)
	if err != nil {
		return err
	}
	defer closeLog()

	// Get terminal size early for the help bar width
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	rc := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: cfg.TickRate,
		Seed:     flagSeed,
	}

	history, err := journal.Open()
	if err != nil {
		// Continue without history - the game still works
		logger.Warn("could not open answer journal", "error", err)
		history = nil
	}

	grid := city.NewGridFromPixels(cfg.Board.Width, cfg.Board.Height, cfg.Board.CellSize)
	opts := []engine.Option{
		engine.WithLogger(logger),
		engine.WithMessageTicks(cfg.MessageTicks),
	}
	if history != nil {
		defer history.Close()
		opts = append(opts, engine.WithRecorder(history))
	}
	ctrl := engine.New(grid, mathgen.NewGenerator(rc.Seed), &engine.State{ShowHelp: cfg.ShowHelp}, opts...)

	logger.Info("session started",
		"grid", fmt.Sprintf("%dx%d", grid.Width(), grid.Height()),
		"seed", rc.Seed,
		"terminal", fmt.Sprintf("%dx%d", width, height),
	)

	if err := tui.Run(ctrl, history, rc, logger); err != nil {
		return fmt.Errorf("game error: %w", err)
	}

	logger.Info("session ended", "buildings", len(grid.Cells()))
	return nil
}
