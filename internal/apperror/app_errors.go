package apperror

import "errors"

var (
	ErrGameOver         = errors.New("game is over")
	ErrTruncatedMessage = errors.New("message is too short to contain the board")
	ErrConnectionClosed = errors.New("connection closed by server")
	ErrPlayerMismatch   = errors.New("server assigned a different player number")
)
