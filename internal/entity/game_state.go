package entity

// GameState - an immutable snapshot of one server broadcast: whose turn it
// is, the round counter, both game clocks in seconds, and the board.
type GameState struct {
	Turn     int8
	Round    int
	ClockOne float64
	ClockTwo float64
	Board    Board
}

// IsTurnOf - reports whether the server is waiting on the given player.
func (that *GameState) IsTurnOf(player int8) bool {
	return that.Turn == player
}

// TurnRecord - one archived decision: the board the agent saw and the move
// it answered with.
type TurnRecord struct {
	GameID string `json:"game_id"`
	Round  int    `json:"round"`
	Player int8   `json:"player"`
	Move   Move   `json:"move"`
	Board  Board  `json:"board"`
}
