// Command slide2048 plays 2048 in the terminal.
//
// The board is printed after every turn. Each line typed moves the tiles by
// its first character: w (up), a (left), s (down), d (right); anything else is
// ignored. The game ends with "Game over!" once no move can change the board.
//
// Flags allow a fixed seed for reproducible games and debug logging on stderr.
package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/urfave/cli/v3"
	"github.com/wricardo/slide2048/game/config"
	"github.com/wricardo/slide2048/game/console"
	"github.com/wricardo/slide2048/game/engine"
	"go.uber.org/zap"
)

// Version information
const (
	Version = "1.0.0"
	AppName = "slide2048"
)

// main builds the command and runs it against the process streams
func main() {
	cmd := newCommand(os.Stdin, os.Stdout)
	if err := cmd.Run(context.Background(), os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", AppName, err)
		os.Exit(1)
	}
}

// newCommand wires configuration, logging, engine and console loop together.
// Input and output are injected so the whole game can run under test.
func newCommand(in io.Reader, out io.Writer) *cli.Command {
	return &cli.Command{
		Name:      AppName,
		Usage:     "play 2048 in the terminal (w/a/s/d + Enter)",
		Version:   Version,
		Flags:     config.Flags(),
		Writer:    out,
		ErrWriter: os.Stderr,
		Action: func(ctx context.Context, cmd *cli.Command) error {
			cfg, err := config.FromCommand(cmd)
			if err != nil {
				return err
			}
			return play(cfg, in, out)
		},
	}
}

// play runs one game to completion using the given configuration
func play(cfg config.Config, in io.Reader, out io.Writer) error {
	logger, err := config.NewLogger(cfg)
	if err != nil {
		return err
	}
	defer logger.Sync() //nolint:errcheck

	logger.Info("Starting game",
		zap.String("version", Version),
		zap.Uint64("seed", cfg.Seed))

	gameEngine, err := engine.NewEngine(engine.NewRandomSource(cfg.Seed), engine.WithLogger(logger))
	if err != nil {
		logger.Error("Failed to create engine", zap.Error(err))
		return fmt.Errorf("failed to create engine: %w", err)
	}

	if err := console.NewGame(gameEngine, in, out, logger).Run(); err != nil {
		logger.Error("Game aborted", zap.Error(err))
		return err
	}

	return nil
}
