package engine

// Transpose swaps rows and columns. Applying it twice yields the original board.
func Transpose(b Board) Board {
	var out Board
	for r := 0; r < Size; r++ {
		for c := 0; c < Size; c++ {
			out[c][r] = b[r][c]
		}
	}
	return out
}

// Flip reverses the order of the tiles in every row. It is its own inverse.
func Flip(b Board) Board {
	var out Board
	for r, row := range b {
		for c, v := range row {
			out[r][Size-1-c] = v
		}
	}
	return out
}

// SlideLeft collapses every row toward column 0
func SlideLeft(b Board) Board {
	var out Board
	for r, row := range b {
		out[r] = SlideRowLeft(row)
	}
	return out
}
