package cart

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
)

const redisSlotKey = "petz:cart"

// RedisSlot persists the cart in a Redis key. The slot has no TTL; the cart
// must survive restarts.
type RedisSlot struct {
	client *redis.Client
}

func NewRedisSlot(client *redis.Client) *RedisSlot {
	return &RedisSlot{client: client}
}

func (r *RedisSlot) Load(ctx context.Context) ([]LineItem, error) {
	data, err := r.client.Get(ctx, redisSlotKey).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrSlotMiss
	}
	if err != nil {
		return nil, fmt.Errorf("redis get failed: %w", err)
	}

	var items []LineItem
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, fmt.Errorf("failed to decode cart slot: %w", err)
	}

	return items, nil
}

func (r *RedisSlot) Save(ctx context.Context, items []LineItem) error {
	if items == nil {
		items = []LineItem{}
	}
	data, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("failed to encode cart slot: %w", err)
	}

	if err := r.client.Set(ctx, redisSlotKey, data, 0).Err(); err != nil {
		return fmt.Errorf("redis set failed: %w", err)
	}

	return nil
}
