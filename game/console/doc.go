// Package console runs 2048 in a terminal.
//
// Game renders the board as a fixed-width ASCII grid, reads one line of input
// per turn and maps its first character to a slide direction (w, a, s, d).
// Unrecognized input and moves that leave the board unchanged simply prompt
// again. The loop ends with "Game over!" once the board is stalled, or with
// ErrInputClosed when input can no longer be read.
package console
