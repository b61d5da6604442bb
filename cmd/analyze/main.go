// Command analyze prints quick, human-readable facts about 2048 boards given
// on the command line: tile count and value sum, empty cells, whether the
// board is stalled, and the board each slide direction would produce.
//
//	analyze "2,2,0,0/0,4,0,0/0,0,0,0/0,0,0,2"
package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/urfave/cli/v3"
	"github.com/wricardo/slide2048/game/console"
	"github.com/wricardo/slide2048/game/engine"
)

func main() {
	cmd := &cli.Command{
		Name:      "analyze",
		Usage:     "describe 2048 boards and the result of every move",
		ArgsUsage: "BOARD [BOARD...]",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			if cmd.NArg() == 0 {
				return fmt.Errorf("at least one board is required")
			}
			for _, arg := range cmd.Args().Slice() {
				if err := analyzeBoard(cmd.Root().Writer, arg); err != nil {
					return err
				}
			}
			return nil
		},
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "analyze: %v\n", err)
		os.Exit(1)
	}
}

// analyzeBoard parses one board and writes its report to w
func analyzeBoard(w io.Writer, input string) error {
	board, err := engine.ParseBoard(input)
	if err != nil {
		return err
	}

	fmt.Fprintf(w, "\n=== Analyzing %s ===\n", board)
	if err := console.RenderBoard(w, board); err != nil {
		return err
	}

	empty := engine.EmptyTiles(board)
	fmt.Fprintf(w, "Tiles: %d  Empty: %d  Sum: %d\n", engine.CountTiles(board), len(empty), engine.Sum(board))

	if engine.Stalled(board) {
		fmt.Fprintf(w, "Stalled: no move can change this board\n")
		return nil
	}

	gameEngine := engine.NewEngineFromBoard(board, nil)
	moves := gameEngine.PossibleMoves()
	fmt.Fprintf(w, "Possible moves: %d\n", len(moves))

	for _, dir := range moves {
		next := engine.Slide(dir, board)
		merges := engine.CountTiles(board) - engine.CountTiles(next)
		fmt.Fprintf(w, "\n%s (%d merges, %d empty after):\n", dir, merges, len(engine.EmptyTiles(next)))
		if err := console.RenderBoard(w, next); err != nil {
			return err
		}
	}

	return nil
}
