package protocol

import (
	"strconv"
	"strings"
	"testing"

	"github.com/rocketscienceinc/reversi-agent/internal/apperror"
	"github.com/rocketscienceinc/reversi-agent/internal/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// buildMessage - assembles a wire message from header fields and 64 cell
// fields, newline-delimited like the server sends it.
func buildMessage(turn, round, clockOne, clockTwo string, cells []string) string {
	fields := append([]string{turn, round, clockOne, clockTwo}, cells...)
	return strings.Join(fields, "\n") + "\n"
}

func emptyBoardCells() []string {
	cells := make([]string, 64)
	for i := range cells {
		cells[i] = "0"
	}

	return cells
}

func TestDecodeState(t *testing.T) {
	t.Run("Well-formed all-zero message", func(t *testing.T) {
		// Given: turn=1, round=0, both clocks 0.0 and an all-empty board
		raw := buildMessage("1", "0", "0.0", "0.0", emptyBoardCells())

		// When: decoding the message
		state, err := DecodeState(raw)

		// Then: every header field and the whole board decode exactly
		require.NoError(t, err)
		assert.Equal(t, int8(1), state.Turn)
		assert.Equal(t, 0, state.Round)
		assert.InDelta(t, 0.0, state.ClockOne, 0.0001)
		assert.InDelta(t, 0.0, state.ClockTwo, 0.0001)
		assert.Equal(t, entity.Board{}, state.Board)
	})

	t.Run("Board cells are read in row-major order", func(t *testing.T) {
		// Given: a message placing pieces on the four center cells
		cells := emptyBoardCells()
		cells[3*8+3] = "2"
		cells[3*8+4] = "1"
		cells[4*8+3] = "1"
		cells[4*8+4] = "2"
		raw := buildMessage("2", "4", "170.5", "168.25", cells)

		// When: decoding the message
		state, err := DecodeState(raw)

		// Then: pieces land on the matching (row, col) squares
		require.NoError(t, err)
		assert.Equal(t, entity.PlayerTwo, state.Board[3][3])
		assert.Equal(t, entity.PlayerOne, state.Board[3][4])
		assert.Equal(t, entity.PlayerOne, state.Board[4][3])
		assert.Equal(t, entity.PlayerTwo, state.Board[4][4])
		assert.Equal(t, 4, state.Round)
		assert.InDelta(t, 170.5, state.ClockOne, 0.0001)
		assert.InDelta(t, 168.25, state.ClockTwo, 0.0001)
	})

	t.Run("Game over sentinel", func(t *testing.T) {
		// Given: a message whose turn field is the -999 sentinel
		raw := buildMessage("-999", "12", "0.0", "0.0", emptyBoardCells())

		// When: decoding the message
		_, err := DecodeState(raw)

		// Then: decoding reports a clean game over, not garbage
		require.ErrorIs(t, err, apperror.ErrGameOver)
	})

	t.Run("Game over sentinel wins over truncation", func(t *testing.T) {
		// Given: a sentinel message cut off right after the turn field
		raw := "-999\n"

		// When: decoding the message
		_, err := DecodeState(raw)

		// Then: it is still a game over, not a truncated message
		require.ErrorIs(t, err, apperror.ErrGameOver)
	})

	t.Run("Truncated message", func(t *testing.T) {
		// Given: a message with a header but only half a board
		cells := emptyBoardCells()[:32]
		raw := buildMessage("1", "0", "0.0", "0.0", cells)

		// When: decoding the message
		_, err := DecodeState(raw)

		// Then: the strict shape check fails the decode
		require.ErrorIs(t, err, apperror.ErrTruncatedMessage)
	})

	t.Run("Completely malformed input is truncated, not fatal", func(t *testing.T) {
		// Given: arbitrary garbage
		_, err := DecodeState("invalid\nmessage\n")

		// Then: it fails as a truncated message
		require.ErrorIs(t, err, apperror.ErrTruncatedMessage)
	})

	t.Run("Unparsable turn degrades to no turn owner", func(t *testing.T) {
		// Given: a full message whose turn field is not a number
		raw := buildMessage("whose-turn?", "3", "10.0", "20.0", emptyBoardCells())

		// When: decoding the message
		state, err := DecodeState(raw)

		// Then: the decode succeeds with the degraded turn value
		require.NoError(t, err)
		assert.Equal(t, NoTurnOwner, state.Turn)
		assert.Equal(t, 3, state.Round)
	})

	t.Run("Unparsable round and clocks degrade to zero", func(t *testing.T) {
		// Given: a full message with noisy header fields
		raw := buildMessage("1", "not-a-round", "soon", "later", emptyBoardCells())

		// When: decoding the message
		state, err := DecodeState(raw)

		// Then: content leniency keeps the board update alive
		require.NoError(t, err)
		assert.Equal(t, int8(1), state.Turn)
		assert.Equal(t, 0, state.Round)
		assert.InDelta(t, 0.0, state.ClockOne, 0.0001)
		assert.InDelta(t, 0.0, state.ClockTwo, 0.0001)
	})

	t.Run("Unparsable or out-of-range cells degrade to empty", func(t *testing.T) {
		// Given: a full message with a garbage cell and an out-of-range cell
		cells := emptyBoardCells()
		cells[0] = "x"
		cells[1] = "7"
		cells[2] = "-3"
		cells[3] = "2"
		raw := buildMessage("1", "0", "0.0", "0.0", cells)

		// When: decoding the message
		state, err := DecodeState(raw)

		// Then: only the valid cell survives, the rest default to empty
		require.NoError(t, err)
		assert.Equal(t, entity.Empty, state.Board[0][0])
		assert.Equal(t, entity.Empty, state.Board[0][1])
		assert.Equal(t, entity.Empty, state.Board[0][2])
		assert.Equal(t, entity.PlayerTwo, state.Board[0][3])
	})
}

func TestEncodeMove(t *testing.T) {
	t.Run("Two lines, row then column", func(t *testing.T) {
		// Given: a move
		move := entity.Move{Row: 3, Col: 4}

		// Then: the wire encoding is row and column on separate lines
		assert.Equal(t, "3\n4\n", EncodeMove(move))
	})

	t.Run("Round-trips for the whole board", func(t *testing.T) {
		// Given: every (row, col) in [0,7]
		for row := int8(0); row < entity.BoardSize; row++ {
			for col := int8(0); col < entity.BoardSize; col++ {
				move := entity.Move{Row: row, Col: col}

				// When: encoding and reading the two lines back
				lines := strings.Split(EncodeMove(move), "\n")
				require.Len(t, lines, 3) // trailing newline yields an empty tail

				decodedRow, err := strconv.Atoi(lines[0])
				require.NoError(t, err)
				decodedCol, err := strconv.Atoi(lines[1])
				require.NoError(t, err)

				// Then: the move is recovered exactly
				assert.Equal(t, move, entity.Move{Row: int8(decodedRow), Col: int8(decodedCol)})
			}
		}
	})
}

func TestParseGreeting(t *testing.T) {
	t.Run("Player number and game minutes", func(t *testing.T) {
		// Given: the server greeting for player 2 of a 15 minute game
		greeting := ParseGreeting("2 15.0\n")

		// Then: both fields parse
		assert.Equal(t, int8(2), greeting.Player)
		assert.InDelta(t, 15.0, greeting.GameMinutes, 0.0001)
	})

	t.Run("Unparsable player degrades so the cross-check fails", func(t *testing.T) {
		// Given: a greeting with a garbage player field
		greeting := ParseGreeting("someone 15.0")

		// Then: no configured player can match it
		assert.Equal(t, NoTurnOwner, greeting.Player)
	})

	t.Run("Missing fields degrade to zero values", func(t *testing.T) {
		// Given: an empty greeting
		greeting := ParseGreeting("")

		// Then: nothing matches and the duration is zero
		assert.Equal(t, NoTurnOwner, greeting.Player)
		assert.InDelta(t, 0.0, greeting.GameMinutes, 0.0001)
	})
}
