package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"

	"github.com/redis/go-redis/v9"

	"github.com/rocketscienceinc/gomokun/internal/entity"
)

const totalsKey = "results:totals"

var ErrResultNotFound = errors.New("result not found")

type ResultRepository interface {
	Record(ctx context.Context, result *entity.Result) error
	GetByID(ctx context.Context, id string) (*entity.Result, error)
	Totals(ctx context.Context) (entity.Tally, error)
}

type dbResult struct {
	client *redis.Client
}

func NewResultRepository(client *redis.Client) ResultRepository {
	return &dbResult{
		client: client,
	}
}

// Record - stores the result and counts it in the totals in one transaction.
func (that *dbResult) Record(ctx context.Context, result *entity.Result) error {
	resultJSON, err := json.Marshal(result)
	if err != nil {
		return fmt.Errorf("could not marshal result: %w", err)
	}

	_, err = that.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Set(ctx, resultKey(result.ID), resultJSON, 0)
		pipe.HIncrBy(ctx, totalsKey, result.TallyField(), 1)
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to record result: %w", err)
	}

	return nil
}

func (that *dbResult) GetByID(ctx context.Context, id string) (*entity.Result, error) {
	response, err := that.client.Get(ctx, resultKey(id)).Result()

	if errors.Is(err, redis.Nil) {
		return &entity.Result{}, ErrResultNotFound
	}

	if err != nil {
		return &entity.Result{}, fmt.Errorf("failed to get result by ID: %w", err)
	}

	var existingResult entity.Result
	if err = json.Unmarshal([]byte(response), &existingResult); err != nil {
		return &entity.Result{}, fmt.Errorf("failed to unmarshal result: %w", err)
	}

	return &existingResult, nil
}

func (that *dbResult) Totals(ctx context.Context) (entity.Tally, error) {
	fields, err := that.client.HGetAll(ctx, totalsKey).Result()
	if err != nil {
		return entity.Tally{}, fmt.Errorf("failed to get totals: %w", err)
	}

	var tally entity.Tally
	for field, target := range map[string]*int64{
		entity.TallyPlayer1: &tally.Player1,
		entity.TallyPlayer2: &tally.Player2,
		entity.TallyDraw:    &tally.Draws,
	} {
		raw, ok := fields[field]
		if !ok {
			continue
		}

		if *target, err = strconv.ParseInt(raw, 10, 64); err != nil {
			return entity.Tally{}, fmt.Errorf("failed to parse %s total: %w", field, err)
		}
	}

	return tally, nil
}

func resultKey(id string) string {
	return "result:" + id
}
