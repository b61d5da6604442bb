// Package engine provides the core game logic for 2048.
//
// The engine package implements the board mechanics including:
//   - Row collapse: compacting and merging a single row toward the left
//   - Grid transforms (transpose and flip) that reduce every direction to a left slide
//   - Stall detection for the game-over condition
//   - Random tile spawning through an injectable RandomSource
//
// Core Types:
//
// Board is a 4x4 array of tile values with value semantics, so boards can be
// copied and compared with ==. GameEngine holds the current board and applies
// moves, spawning a tile after every move that changes the board.
//
// Usage:
//
//	gameEngine, err := engine.NewEngine(engine.NewRandomSource(0))
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	// Slide tiles up
//	changed, err := gameEngine.Move(engine.North)
//	board := gameEngine.Board()
//
// Game Rules:
//
// Tiles slide as far as possible toward the chosen edge. Two equal tiles that
// meet merge into one tile holding their sum, and a merged tile does not merge
// again in the same move. After a move that changes the board a 2 (90%) or a
// 4 (10%) appears in a random empty cell. The game ends when the board is full
// and no two neighbouring tiles are equal.
package engine
