package entity

// Cell - the content of a single board square.
type Cell int8

const (
	Empty     Cell = 0
	PlayerOne Cell = 1
	PlayerTwo Cell = 2
)

const BoardSize = 8

// Board - a fixed 8x8 grid, row-major. It is a value type: every decoded
// message replaces the previous board wholesale, this package never mutates
// cells one by one.
type Board [BoardSize][BoardSize]Cell

// Move - a single placement on the board, row and column in [0,7].
type Move struct {
	Row int8 `json:"row"`
	Col int8 `json:"col"`
}

// Opponent - the opposing player number. Player numbers are 1 or 2.
func Opponent(player int8) int8 {
	return 3 - player
}

func (that *Board) InBounds(row, col int8) bool {
	return row >= 0 && row < BoardSize && col >= 0 && col < BoardSize
}

func (that *Board) At(row, col int8) Cell {
	return that[row][col]
}

// Count - the number of squares currently holding the given cell value.
func (that *Board) Count(cell Cell) int {
	count := 0
	for row := range that {
		for col := range that[row] {
			if that[row][col] == cell {
				count++
			}
		}
	}

	return count
}
