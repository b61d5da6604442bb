package engine

// Slide moves every tile toward the edge named by dir. Each direction is
// reduced to a left slide by bracketing it with self-inverse transforms.
func Slide(dir Direction, b Board) Board {
	switch dir {
	case West:
		return SlideLeft(b)
	case East:
		return Flip(SlideLeft(Flip(b)))
	case North:
		return Transpose(SlideLeft(Transpose(b)))
	case South:
		return Transpose(Flip(SlideLeft(Flip(Transpose(b)))))
	default:
		return b
	}
}

// Stalled reports whether no slide in any direction can change the board.
// That holds when every row and every column is full and has no equal
// neighbours.
func Stalled(b Board) bool {
	for _, row := range b {
		if !stalledRow(row) {
			return false
		}
	}

	for _, col := range Transpose(b) {
		if !stalledRow(col) {
			return false
		}
	}

	return true
}

// EmptyTiles returns the coordinates of every empty cell in row-major order
func EmptyTiles(b Board) []Position {
	var empty []Position
	for r := 0; r < Size; r++ {
		for c := 0; c < Size; c++ {
			if b[r][c] == 0 {
				empty = append(empty, Position{Row: r, Col: c})
			}
		}
	}
	return empty
}

// CountTiles counts the occupied cells on the board
func CountTiles(b Board) int {
	count := 0
	for _, row := range b {
		for _, v := range row {
			if v != 0 {
				count++
			}
		}
	}
	return count
}

// Sum adds up every tile value on the board
func Sum(b Board) int {
	total := 0
	for _, row := range b {
		for _, v := range row {
			total += v
		}
	}
	return total
}
