package reversi

import (
	"github.com/rocketscienceinc/reversi-agent/internal/entity"
)

// Directions - the eight compass directions of a flanking scan.
var Directions = [8][2]int8{
	{-1, -1},
	{-1, 0},
	{-1, 1},
	{0, -1},
	{0, 1},
	{1, -1},
	{1, 0},
	{1, 1},
}

// OpeningCells - the four center squares claimed freely during the opening
// phase, in fixed enumeration order.
var OpeningCells = [4]entity.Move{
	{Row: 3, Col: 3},
	{Row: 3, Col: 4},
	{Row: 4, Col: 3},
	{Row: 4, Col: 4},
}

// OpeningMoves - the center squares still empty on the given board. During
// the first four placements per side occupancy is free, the flanking rule
// does not apply yet.
func OpeningMoves(board entity.Board) []entity.Move {
	moves := make([]entity.Move, 0, len(OpeningCells))

	for _, cell := range OpeningCells {
		if board.At(cell.Row, cell.Col) == entity.Empty {
			moves = append(moves, cell)
		}
	}

	return moves
}

// LegalMoves - every empty square from which at least one direction flanks a
// contiguous run of opponent pieces against one of the player's own. The
// result is in row-major scan order and the board is never mutated.
func LegalMoves(board entity.Board, player int8) []entity.Move {
	moves := make([]entity.Move, 0, 24)

	for row := int8(0); row < entity.BoardSize; row++ {
		for col := int8(0); col < entity.BoardSize; col++ {
			if board.At(row, col) != entity.Empty {
				continue
			}

			if flanksAnyDirection(&board, row, col, player) {
				moves = append(moves, entity.Move{Row: row, Col: col})
			}
		}
	}

	return moves
}

func flanksAnyDirection(board *entity.Board, row, col, player int8) bool {
	for _, direction := range Directions {
		if flanksInDirection(board, row, col, direction[0], direction[1], player) {
			return true
		}
	}

	return false
}

// flanksInDirection - walks outward from (row, col) and succeeds the moment
// a player piece is reached after at least one opponent piece. An empty
// square or the board edge before that breaks the flank.
func flanksInDirection(board *entity.Board, row, col, dRow, dCol, player int8) bool {
	opponent := entity.Opponent(player)
	foundOpponent := false

	for x, y := row+dRow, col+dCol; board.InBounds(x, y); x, y = x+dRow, y+dCol {
		switch board.At(x, y) {
		case entity.Cell(player):
			return foundOpponent
		case entity.Cell(opponent):
			foundOpponent = true
		default:
			return false
		}
	}

	return false
}
