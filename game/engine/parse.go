package engine

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var (
	ErrInvalidBoard = errors.New("invalid board")
)

// ParseBoard reads a board written as four rows separated by '/', each row
// holding four comma-separated tile values, e.g. "2,2,0,0/0,0,0,0/0,0,0,0/0,0,0,4".
// Tiles must be zero or a power of two no smaller than 2.
func ParseBoard(s string) (Board, error) {
	var b Board

	rows := strings.Split(strings.TrimSpace(s), "/")
	if len(rows) != Size {
		return b, fmt.Errorf("%w: expected %d rows, got %d", ErrInvalidBoard, Size, len(rows))
	}

	for r, row := range rows {
		cells := strings.Split(row, ",")
		if len(cells) != Size {
			return b, fmt.Errorf("%w: row %d must have %d cells, got %d", ErrInvalidBoard, r+1, Size, len(cells))
		}

		for c, cell := range cells {
			v, err := strconv.Atoi(strings.TrimSpace(cell))
			if err != nil {
				return b, fmt.Errorf("%w: row %d, col %d: %v", ErrInvalidBoard, r+1, c+1, err)
			}
			if v != 0 && (v < 2 || v&(v-1) != 0) {
				return b, fmt.Errorf("%w: row %d, col %d: %d is not a tile value", ErrInvalidBoard, r+1, c+1, v)
			}
			b[r][c] = v
		}
	}

	return b, nil
}

// String formats the board in the notation ParseBoard accepts
func (b Board) String() string {
	rows := make([]string, Size)
	for r, row := range b {
		cells := make([]string, Size)
		for c, v := range row {
			cells[c] = strconv.Itoa(v)
		}
		rows[r] = strings.Join(cells, ",")
	}
	return strings.Join(rows, "/")
}
