package database

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/Thurzix/Product-Pit-Stop/models"
)

// ErrCacheMiss is returned when no cached cart exists for the user.
var ErrCacheMiss = errors.New("cart not in cache")

// CartCache caches the rendered cart per user. It is read-through and
// best-effort: the cart table stays authoritative, and every mutation
// invalidates the key.
type CartCache interface {
	Get(ctx context.Context, userID uuid.UUID) (*models.CartView, error)
	Set(ctx context.Context, userID uuid.UUID, cart *models.CartView) error
	Delete(ctx context.Context, userID uuid.UUID) error
}

// RedisCartCache implements CartCache on Redis.
type RedisCartCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisCartCache(client *redis.Client, ttl time.Duration) *RedisCartCache {
	return &RedisCartCache{client: client, ttl: ttl}
}

func (c *RedisCartCache) key(userID uuid.UUID) string {
	return fmt.Sprintf("cart:user:%s", userID)
}

func (c *RedisCartCache) Get(ctx context.Context, userID uuid.UUID) (*models.CartView, error) {
	data, err := c.client.Get(ctx, c.key(userID)).Result()
	if err == redis.Nil {
		return nil, ErrCacheMiss
	}
	if err != nil {
		return nil, err
	}

	var cart models.CartView
	if err := json.Unmarshal([]byte(data), &cart); err != nil {
		return nil, err
	}
	return &cart, nil
}

func (c *RedisCartCache) Set(ctx context.Context, userID uuid.UUID, cart *models.CartView) error {
	data, err := json.Marshal(cart)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, c.key(userID), data, c.ttl).Err()
}

func (c *RedisCartCache) Delete(ctx context.Context, userID uuid.UUID) error {
	return c.client.Del(ctx, c.key(userID)).Err()
}
