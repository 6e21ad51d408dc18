package agent

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/rocketscienceinc/reversi-agent/internal/apperror"
	"github.com/rocketscienceinc/reversi-agent/internal/entity"
	"github.com/rocketscienceinc/reversi-agent/internal/protocol"
	"github.com/rocketscienceinc/reversi-agent/internal/reversi"
)

// openingTurns - placements per side governed by the free-occupancy
// opening rule before flanking legality takes over.
const openingTurns = 4

const readBufferSize = 1024

type strategy interface {
	ChooseMove(candidates []entity.Move) entity.Move
}

type turnRecorder interface {
	Record(ctx context.Context, record *entity.TurnRecord) error
}

// Agent - the turn driver. It owns the connection-scoped state between
// broadcasts: the opening-phase progress and the last board the server sent.
type Agent struct {
	logger   *slog.Logger
	player   int8
	gameID   string
	strategy strategy
	turns    turnRecorder

	openingDone  bool
	openingCount int
	lastBoard    entity.Board
}

// New - builds an agent for the given player number. A nil recorder
// disables turn archiving.
func New(logger *slog.Logger, player int8, gameID string, chooser strategy, turns turnRecorder) *Agent {
	return &Agent{
		logger:   logger,
		player:   player,
		gameID:   gameID,
		strategy: chooser,
		turns:    turns,
	}
}

// Run - the blocking message loop. It returns nil when the server announces
// game over, ErrConnectionClosed when the peer hangs up, and the underlying
// error on any other read or write failure. A malformed message is logged
// and skipped, never fatal.
func (that *Agent) Run(ctx context.Context, conn io.ReadWriter) error {
	log := that.logger.With("component", "agent", "player", that.player)

	buffer := make([]byte, readBufferSize)

	for {
		if err := ctx.Err(); err != nil {
			log.Info("context canceled, leaving game")
			return nil
		}

		bytesRead, err := conn.Read(buffer)
		if errors.Is(err, io.EOF) || (err == nil && bytesRead == 0) {
			return apperror.ErrConnectionClosed
		}

		if err != nil {
			return fmt.Errorf("failed to read message: %w", err)
		}

		state, err := protocol.DecodeState(string(buffer[:bytesRead]))
		if errors.Is(err, apperror.ErrGameOver) {
			log.Info("game over",
				"my_pieces", that.lastBoard.Count(entity.Cell(that.player)),
				"opponent_pieces", that.lastBoard.Count(entity.Cell(entity.Opponent(that.player))))
			return nil
		}

		if err != nil {
			log.Error("failed to decode message", "error", err)
			continue
		}

		// The freshest board always wins, even on the opponent's turn.
		that.lastBoard = state.Board

		if !state.IsTurnOf(that.player) {
			continue
		}

		move, ok := that.decideMove()
		if !ok {
			log.Info("no legal moves, passing", "round", state.Round)
			continue
		}

		if err = that.sendMove(conn, move); err != nil {
			return err
		}

		log.Debug("move sent", "round", state.Round, "row", move.Row, "col", move.Col)

		that.recordTurn(ctx, log, state, move)
	}
}

// decideMove - applies the opening rule first and falls back to flanking
// legality on the same turn once the center fills up or the opening budget
// runs out. The second value is false when the agent has to pass.
func (that *Agent) decideMove() (entity.Move, bool) {
	if !that.openingDone {
		that.openingCount++

		if that.openingCount <= openingTurns {
			if candidates := reversi.OpeningMoves(that.lastBoard); len(candidates) > 0 {
				return that.strategy.ChooseMove(candidates), true
			}
		} else {
			that.openingDone = true
		}
	}

	candidates := reversi.LegalMoves(that.lastBoard, that.player)
	if len(candidates) == 0 {
		return entity.Move{}, false
	}

	return that.strategy.ChooseMove(candidates), true
}

func (that *Agent) sendMove(conn io.Writer, move entity.Move) error {
	if _, err := io.WriteString(conn, protocol.EncodeMove(move)); err != nil {
		return fmt.Errorf("failed to send move: %w", err)
	}

	return nil
}

// recordTurn - archives the decided turn; archive failures never interrupt
// the game.
func (that *Agent) recordTurn(ctx context.Context, log *slog.Logger, state *entity.GameState, move entity.Move) {
	if that.turns == nil {
		return
	}

	record := &entity.TurnRecord{
		GameID: that.gameID,
		Round:  state.Round,
		Player: that.player,
		Move:   move,
		Board:  state.Board,
	}

	if err := that.turns.Record(ctx, record); err != nil {
		log.Error("failed to record turn", "error", err)
	}
}
