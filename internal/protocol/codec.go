package protocol

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/rocketscienceinc/reversi-agent/internal/apperror"
	"github.com/rocketscienceinc/reversi-agent/internal/entity"
)

// Wire layout of one server broadcast: four header fields followed by the 64
// board cells, all newline-delimited.
const (
	gameOverTurn  = -999
	headerFields  = 4
	messageFields = headerFields + entity.BoardSize*entity.BoardSize
)

// NoTurnOwner - the degraded turn value when the turn field cannot be
// parsed; no player matches it, so the agent simply keeps listening.
const NoTurnOwner int8 = -1

// DecodeState - parses one newline-delimited broadcast into a GameState.
//
// The shape is strict: the game-over sentinel fails with ErrGameOver and
// fewer than 69 fields fail with ErrTruncatedMessage. Field content is
// lenient: an unparsable header field degrades to its zero value and an
// unparsable or out-of-range cell degrades to Empty.
func DecodeState(raw string) (*entity.GameState, error) {
	fields := strings.Split(raw, "\n")

	turn := parseTurn(fields[0])
	if turn == gameOverTurn {
		return nil, apperror.ErrGameOver
	}

	if len(fields) < messageFields {
		return nil, fmt.Errorf("%w: got %d of %d fields", apperror.ErrTruncatedMessage, len(fields), messageFields)
	}

	state := &entity.GameState{
		Turn:     narrowTurn(turn),
		Round:    parseInt(fields[1]),
		ClockOne: parseFloat(fields[2]),
		ClockTwo: parseFloat(fields[3]),
	}

	index := headerFields
	for row := 0; row < entity.BoardSize; row++ {
		for col := 0; col < entity.BoardSize; col++ {
			state.Board[row][col] = parseCell(fields[index])
			index++
		}
	}

	return state, nil
}

// EncodeMove - the outbound move encoding: row, then column, one per line.
func EncodeMove(move entity.Move) string {
	return fmt.Sprintf("%d\n%d\n", move.Row, move.Col)
}

// Greeting - the server's handshake message: the authoritative player
// number for this connection and the total game duration in minutes.
type Greeting struct {
	Player      int8
	GameMinutes float64
}

// ParseGreeting - parses the space-separated "<player> <minutes>" greeting.
// An unparsable player number degrades to NoTurnOwner so that the caller's
// cross-check against the configured player fails loudly.
func ParseGreeting(raw string) *Greeting {
	parts := strings.Fields(raw)

	greeting := &Greeting{Player: NoTurnOwner}

	if len(parts) > 0 {
		greeting.Player = narrowTurn(parseTurn(parts[0]))
	}

	if len(parts) > 1 {
		greeting.GameMinutes = parseFloat(parts[1])
	}

	return greeting
}

func parseTurn(field string) int {
	value, err := strconv.Atoi(strings.TrimSpace(field))
	if err != nil {
		return int(NoTurnOwner)
	}

	return value
}

// narrowTurn - narrows the wire turn value to the int8 carried on
// GameState; anything outside the int8 range means "no active turn owner".
func narrowTurn(turn int) int8 {
	if turn < -128 || turn > 127 {
		return NoTurnOwner
	}

	return int8(turn)
}

func parseInt(field string) int {
	value, err := strconv.Atoi(strings.TrimSpace(field))
	if err != nil {
		return 0
	}

	return value
}

func parseFloat(field string) float64 {
	value, err := strconv.ParseFloat(strings.TrimSpace(field), 64)
	if err != nil {
		return 0.0
	}

	return value
}

func parseCell(field string) entity.Cell {
	value, err := strconv.Atoi(strings.TrimSpace(field))
	if err != nil || value < int(entity.Empty) || value > int(entity.PlayerTwo) {
		return entity.Empty
	}

	return entity.Cell(value)
}
