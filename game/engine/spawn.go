package engine

import (
	"errors"
	"math/rand/v2"
	"time"
)

var (
	ErrNoEmptyTile = errors.New("no empty tile to spawn into")
)

// RandomSource supplies the random draws used for spawning.
// *rand.Rand from math/rand/v2 satisfies it.
type RandomSource interface {
	// IntN returns a value in [0, n). It may panic if n <= 0.
	IntN(n int) int
}

// NewRandomSource returns a PCG-backed source. A zero seed is replaced with one
// derived from the clock, so games are only reproducible with an explicit seed.
func NewRandomSource(seed uint64) RandomSource {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// AddTile places a new tile in a uniformly chosen empty cell. The tile is a 2
// nine times out of ten and a 4 otherwise. The input board is not modified.
func AddTile(b Board, src RandomSource) (Board, error) {
	board, _, _, err := addTile(b, src)
	return board, err
}

// addTile is AddTile that also reports where the tile landed and its value
func addTile(b Board, src RandomSource) (Board, Position, int, error) {
	empty := EmptyTiles(b)
	if len(empty) == 0 {
		return b, Position{}, 0, ErrNoEmptyTile
	}

	pos := empty[src.IntN(len(empty))]

	value := SpawnLowValue
	if src.IntN(SpawnDrawRange)+1 == SpawnDrawRange {
		value = SpawnHighValue
	}

	b[pos.Row][pos.Col] = value
	return b, pos, value, nil
}
