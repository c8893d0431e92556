// Package cache persists session carts in redis so a cart survives reloads
// and server restarts.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"threadpress/internal/domain"
)

// CartTTL keeps abandoned carts around for a month before redis expires them.
const CartTTL = 30 * 24 * time.Hour

type RedisPersister struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisPersister(client *redis.Client) *RedisPersister {
	return &RedisPersister{client: client, ttl: CartTTL}
}

// Save replaces the stored cart with the given line collection.
func (r *RedisPersister) Save(ctx context.Context, sessionID string, lines []domain.CartLine) error {
	payload, err := json.Marshal(lines)
	if err != nil {
		return fmt.Errorf("marshal cart: %w", err)
	}
	if err := r.client.Set(ctx, cartKey(sessionID), payload, r.ttl).Err(); err != nil {
		return fmt.Errorf("redis set: %w", err)
	}
	return nil
}

// Load returns the stored line collection. A missing key is an empty cart,
// not an error; a corrupt payload is.
func (r *RedisPersister) Load(ctx context.Context, sessionID string) ([]domain.CartLine, error) {
	data, err := r.client.Get(ctx, cartKey(sessionID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("redis get: %w", err)
	}
	var lines []domain.CartLine
	if err := json.Unmarshal(data, &lines); err != nil {
		return nil, fmt.Errorf("unmarshal cart: %w", err)
	}
	return lines, nil
}

func (r *RedisPersister) Delete(ctx context.Context, sessionID string) error {
	if err := r.client.Del(ctx, cartKey(sessionID)).Err(); err != nil {
		return fmt.Errorf("redis del: %w", err)
	}
	return nil
}

func cartKey(sessionID string) string {
	return fmt.Sprintf("cart:%s", sessionID)
}
