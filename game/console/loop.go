package console

import (
	"fmt"
	"io"

	"github.com/wricardo/slide2048/game/engine"
	"go.uber.org/zap"
)

// GameOverMessage is printed once the board is stalled
const GameOverMessage = "Game over!"

// Game drives one engine from a line-oriented input stream
type Game struct {
	engine engine.Engine
	input  *lineReader
	out    io.Writer
	logger *zap.Logger
}

// NewGame creates a game reading moves from in and rendering to out
func NewGame(eng engine.Engine, in io.Reader, out io.Writer, logger *zap.Logger) *Game {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Game{
		engine: eng,
		input:  newLineReader(in),
		out:    out,
		logger: logger,
	}
}

// Run plays until the board is stalled. It returns nil after printing the
// game-over message, or an error wrapping ErrInputClosed if input runs out.
func (g *Game) Run() error {
	turns := 0

	for {
		if err := RenderBoard(g.out, g.engine.Board()); err != nil {
			return err
		}

		if g.engine.IsGameOver() {
			g.logger.Info("Game over", zap.Int("turns", turns))
			if _, err := fmt.Fprintln(g.out, GameOverMessage); err != nil {
				return fmt.Errorf("failed to write game over message: %w", err)
			}
			return nil
		}

		c, err := g.input.ReadChar()
		if err != nil {
			return err
		}
		turns++

		dir, ok := engine.ParseDirection(c)
		if !ok {
			g.logger.Debug("Ignoring input", zap.String("char", string(c)))
			continue
		}

		if _, err := g.engine.Move(dir); err != nil {
			return fmt.Errorf("move %s: %w", dir, err)
		}
	}
}
