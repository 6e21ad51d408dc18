package strategy

import (
	"errors"
	"fmt"

	"github.com/rocketscienceinc/reversi-agent/internal/entity"
)

var ErrUnknownStrategy = errors.New("unknown strategy")

// Strategy - picks one move out of the candidates the agent computed.
// Implementations must return an element of candidates and may assume the
// slice is never empty; the agent guarantees that.
type Strategy interface {
	ChooseMove(candidates []entity.Move) entity.Move
}

// New - resolves a strategy by its configured name.
func New(name string) (Strategy, error) {
	switch name {
	case "random", "":
		return NewRandom(), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownStrategy, name)
	}
}
