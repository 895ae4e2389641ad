package holdRepo

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"glowbook/models"
	"glowbook/utils"

	"github.com/go-redis/redis/v8"
)

// RedisHoldRepo implements HoldRepository on Redis. Each hold is one JSON
// value keyed by hold ID with a TTL matching ExpiresAt, so expiry needs no
// background sweep.
type RedisHoldRepo struct {
	client *redis.Client
}

func NewRedisHoldRepo(client *redis.Client) *RedisHoldRepo {
	return &RedisHoldRepo{client: client}
}

func holdKey(id string) string {
	return utils.HoldKeyPrefix + id
}

func (repo *RedisHoldRepo) Save(ctx context.Context, hold *models.Hold) error {
	data, err := json.Marshal(hold)
	if err != nil {
		return fmt.Errorf("failed to marshal hold: %w", err)
	}
	ttl := time.Until(hold.ExpiresAt)
	if ttl <= 0 {
		ttl = utils.DefaultHoldTTL
	}
	if err := repo.client.Set(ctx, holdKey(hold.ID), data, ttl).Err(); err != nil {
		return fmt.Errorf("failed to save hold: %w", err)
	}
	return nil
}

func (repo *RedisHoldRepo) Get(ctx context.Context, holdID string) (*models.Hold, error) {
	data, err := repo.client.Get(ctx, holdKey(holdID)).Result()
	if err == redis.Nil {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch hold: %w", err)
	}
	var hold models.Hold
	if err := json.Unmarshal([]byte(data), &hold); err != nil {
		return nil, fmt.Errorf("failed to unmarshal hold: %w", err)
	}
	return &hold, nil
}

func (repo *RedisHoldRepo) Delete(ctx context.Context, holdID string) error {
	if err := repo.client.Del(ctx, holdKey(holdID)).Err(); err != nil {
		return fmt.Errorf("failed to delete hold: %w", err)
	}
	return nil
}
