package strategy

import (
	"math/rand"

	"github.com/rocketscienceinc/reversi-agent/internal/entity"
)

// randomStrategy - the baseline: a uniformly random pick.
type randomStrategy struct{}

func NewRandom() Strategy {
	return &randomStrategy{}
}

func (that *randomStrategy) ChooseMove(candidates []entity.Move) entity.Move {
	return candidates[rand.Intn(len(candidates))] //nolint: gosec // it's ok
}
