package engine

import (
	"fmt"

	"go.uber.org/zap"
)

// Engine provides the main interface for game operations
type Engine interface {
	// Game state
	Board() Board
	IsGameOver() bool

	// Movement operations
	Move(dir Direction) (bool, error)
	CanMove(dir Direction) bool
	PossibleMoves() []Direction
}

// GameEngine implements the Engine interface. It owns the single current
// board and replaces it with a new value on every effective move.
type GameEngine struct {
	board  Board
	rng    RandomSource
	logger *zap.Logger
}

// Option customizes a GameEngine
type Option func(*GameEngine)

// WithLogger sets the logger used for move and spawn events
func WithLogger(logger *zap.Logger) Option {
	return func(e *GameEngine) {
		if logger != nil {
			e.logger = logger
		}
	}
}

// NewEngine creates an engine with an empty board and the starting tiles spawned
func NewEngine(rng RandomSource, opts ...Option) (*GameEngine, error) {
	e := NewEngineFromBoard(Board{}, rng, opts...)

	for i := 0; i < StartingTiles; i++ {
		if err := e.spawn(); err != nil {
			return nil, fmt.Errorf("failed to place starting tile: %w", err)
		}
	}

	return e, nil
}

// NewEngineFromBoard creates an engine that continues from the given board
func NewEngineFromBoard(b Board, rng RandomSource, opts ...Option) *GameEngine {
	e := &GameEngine{
		board:  b,
		rng:    rng,
		logger: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Board returns the current board
func (e *GameEngine) Board() Board {
	return e.board
}

// IsGameOver returns whether the board is stalled
func (e *GameEngine) IsGameOver() bool {
	return Stalled(e.board)
}

// Move slides the board in dir. It returns false and leaves the board alone
// when the slide changes nothing; otherwise it spawns one tile and returns true.
func (e *GameEngine) Move(dir Direction) (bool, error) {
	next := Slide(dir, e.board)
	if next == e.board {
		e.logger.Debug("No-op move", zap.Stringer("direction", dir))
		return false, nil
	}

	e.board = next
	if err := e.spawn(); err != nil {
		return true, fmt.Errorf("failed to spawn after %s move: %w", dir, err)
	}

	e.logger.Debug("Move applied",
		zap.Stringer("direction", dir),
		zap.Int("tiles", CountTiles(e.board)),
		zap.Stringers("possible", e.PossibleMoves()))

	return true, nil
}

// CanMove checks whether sliding in dir would change the board
func (e *GameEngine) CanMove(dir Direction) bool {
	return Slide(dir, e.board) != e.board
}

// PossibleMoves returns all directions that would change the board
func (e *GameEngine) PossibleMoves() []Direction {
	var possible []Direction
	for _, dir := range Directions {
		if e.CanMove(dir) {
			possible = append(possible, dir)
		}
	}
	return possible
}

func (e *GameEngine) spawn() error {
	next, pos, value, err := addTile(e.board, e.rng)
	if err != nil {
		return err
	}
	e.board = next
	e.logger.Debug("Tile spawned",
		zap.Int("row", pos.Row),
		zap.Int("col", pos.Col),
		zap.Int("value", value))
	return nil
}
