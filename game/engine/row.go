package engine

// SlideRowLeft compacts the non-zero tiles of a row to the left, merging each
// equal adjacent pair once. Pairs are resolved left to right so [2,2,2,0]
// becomes [4,2,0,0].
func SlideRowLeft(row Row) Row {
	var out Row
	n := 0
	last := row[0]

	for _, elem := range row[1:] {
		switch {
		case last == 0:
			last = elem
		case elem == 0:
			continue
		case last == elem:
			// A merged tile resets the carry so it cannot merge again
			out[n] = last + elem
			n++
			last = 0
		default:
			out[n] = last
			n++
			last = elem
		}
	}

	if last != 0 {
		out[n] = last
	}

	return out
}

// stalledRow reports whether a row is full and has no equal neighbours
func stalledRow(row Row) bool {
	for _, v := range row {
		if v == 0 {
			return false
		}
	}

	for i := 1; i < Size; i++ {
		if row[i-1] == row[i] {
			return false
		}
	}

	return true
}
