package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"

	"github.com/redis/go-redis/v9"
	"github.com/rocketscienceinc/reversi-agent/internal/entity"
)

var ErrTurnNotFound = errors.New("turn not found")

// TurnRepository - the match archive: one record per turn the agent played.
type TurnRepository interface {
	Record(ctx context.Context, record *entity.TurnRecord) error
	GetByRound(ctx context.Context, gameID string, round int) (*entity.TurnRecord, error)
	ListByGame(ctx context.Context, gameID string) ([]*entity.TurnRecord, error)
}

type dbTurn struct {
	client *redis.Client
}

func NewTurnRepository(client *redis.Client) TurnRepository {
	return &dbTurn{
		client: client,
	}
}

func (that *dbTurn) Record(ctx context.Context, record *entity.TurnRecord) error {
	recordJSON, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("could not marshal turn record: %w", err)
	}

	turnKey := turnKey(record.GameID, record.Round)
	err = that.client.Set(ctx, turnKey, recordJSON, 0).Err()
	if err != nil {
		return fmt.Errorf("failed to set turn record: %w", err)
	}

	return nil
}

func (that *dbTurn) GetByRound(ctx context.Context, gameID string, round int) (*entity.TurnRecord, error) {
	response, err := that.client.Get(ctx, turnKey(gameID, round)).Result()

	if errors.Is(err, redis.Nil) {
		return nil, ErrTurnNotFound
	}

	if err != nil {
		return nil, fmt.Errorf("failed to get turn record: %w", err)
	}

	var record entity.TurnRecord
	if err = json.Unmarshal([]byte(response), &record); err != nil {
		return nil, fmt.Errorf("failed to unmarshal turn record: %w", err)
	}

	return &record, nil
}

func (that *dbTurn) ListByGame(ctx context.Context, gameID string) ([]*entity.TurnRecord, error) {
	keys, err := that.client.Keys(ctx, fmt.Sprintf("turn:%s:*", gameID)).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to list turn keys: %w", err)
	}

	records := make([]*entity.TurnRecord, 0, len(keys))
	for _, key := range keys {
		response, err := that.client.Get(ctx, key).Result()
		if errors.Is(err, redis.Nil) {
			continue
		}

		if err != nil {
			return nil, fmt.Errorf("failed to get turn record: %w", err)
		}

		var record entity.TurnRecord
		if err = json.Unmarshal([]byte(response), &record); err != nil {
			return nil, fmt.Errorf("failed to unmarshal turn record: %w", err)
		}

		records = append(records, &record)
	}

	sort.Slice(records, func(i, j int) bool {
		return records[i].Round < records[j].Round
	})

	return records, nil
}

func turnKey(gameID string, round int) string {
	return fmt.Sprintf("turn:%s:%d", gameID, round)
}
