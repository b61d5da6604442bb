package engine

// Direction represents one of the four slide directions
type Direction int

const (
	North Direction = iota
	South
	East
	West
)

const (
	// Size is the fixed width and height of the board
	Size = 4

	// Spawn parameters: a draw in [1, SpawnDrawRange] equal to SpawnDrawRange yields a four
	SpawnDrawRange = 10
	SpawnLowValue  = 2
	SpawnHighValue = 4

	// StartingTiles is the number of tiles placed on a fresh board
	StartingTiles = 2
)

// Directions lists every direction in a stable order
var Directions = []Direction{North, South, East, West}

// String returns the lowercase name of the direction
func (d Direction) String() string {
	switch d {
	case North:
		return "north"
	case South:
		return "south"
	case East:
		return "east"
	case West:
		return "west"
	default:
		return "unknown"
	}
}

// ParseDirection maps an input character to a direction.
// w, s, d and a map to North, South, East and West; anything else is rejected.
func ParseDirection(c rune) (Direction, bool) {
	switch c {
	case 'w':
		return North, true
	case 's':
		return South, true
	case 'd':
		return East, true
	case 'a':
		return West, true
	default:
		return 0, false
	}
}

// Row is a single line of tiles. Zero marks an empty cell.
type Row [Size]int

// Board is the grid of tiles indexed [row][column], row 0 at the top
type Board [Size]Row

// Position identifies a cell on the board
type Position struct {
	Row int `json:"row"`
	Col int `json:"col"`
}
