// Package menucache stores the dish catalog in Redis as one JSON document.
package menucache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"restaurant/internal/core/domain/model/dish"
	"restaurant/internal/core/domain/model/kernel"

	"github.com/redis/go-redis/v9"
)

const (
	// Key is the Redis key holding the cached menu.
	Key = "restaurant:menu"
	// GenerationKey counts invalidations of Key.
	GenerationKey = "restaurant:menu:generation"
)

type dishJSON struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description,omitempty"`
	Price       float64 `json:"price"`
	Category    string  `json:"category"`
}

// RedisCache implements ports.MenuCache on top of a go-redis client.
type RedisCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisCache creates a menu cache whose entries expire after ttl.
// A zero ttl keeps the entry until it is invalidated.
func NewRedisCache(client *redis.Client, ttl time.Duration) *RedisCache {
	return &RedisCache{client: client, ttl: ttl}
}

// Get returns the cached menu. A missing key is a miss, not an error.
func (c *RedisCache) Get(ctx context.Context) ([]*dish.Dish, bool, error) {
	raw, err := c.client.Get(ctx, Key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}

	var items []dishJSON
	if err = json.Unmarshal(raw, &items); err != nil {
		return nil, false, err
	}

	dishes := make([]*dish.Dish, 0, len(items))
	for _, item := range items {
		d, restoreErr := restore(item)
		if restoreErr != nil {
			return nil, false, restoreErr
		}
		dishes = append(dishes, d)
	}

	return dishes, true, nil
}

// Generation returns the number of invalidations so far. A missing counter
// is generation zero.
func (c *RedisCache) Generation(ctx context.Context) (int64, error) {
	return generation(ctx, c.client)
}

// Set writes the menu unless Invalidate ran since generation was read.
// The counter is watched, so an invalidation racing the write aborts it.
func (c *RedisCache) Set(ctx context.Context, gen int64, dishes []*dish.Dish) (bool, error) {
	raw, err := encode(dishes)
	if err != nil {
		return false, err
	}

	stored := false
	err = c.client.Watch(ctx, func(tx *redis.Tx) error {
		current, err := generation(ctx, tx)
		if err != nil {
			return err
		}
		if current != gen {
			return nil
		}

		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, Key, raw, c.ttl)
			return nil
		})
		stored = err == nil
		return err
	}, GenerationKey)
	if errors.Is(err, redis.TxFailedErr) {
		return false, nil
	}
	if err != nil {
		return false, err
	}

	return stored, nil
}

// Invalidate deletes the cached menu and advances the generation in one
// transaction.
func (c *RedisCache) Invalidate(ctx context.Context) error {
	_, err := c.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Incr(ctx, GenerationKey)
		pipe.Del(ctx, Key)
		return nil
	})
	return err
}

type getter interface {
	Get(ctx context.Context, key string) *redis.StringCmd
}

func generation(ctx context.Context, g getter) (int64, error) {
	gen, err := g.Get(ctx, GenerationKey).Int64()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}
	return gen, err
}

func encode(dishes []*dish.Dish) ([]byte, error) {
	items := make([]dishJSON, 0, len(dishes))
	for _, d := range dishes {
		items = append(items, dishJSON{
			ID:          d.ID().Int64(),
			Name:        d.Name(),
			Description: d.Description(),
			Price:       d.Price().Amount(),
			Category:    d.Category(),
		})
	}

	return json.Marshal(items)
}

func restore(item dishJSON) (*dish.Dish, error) {
	id, err := kernel.NewID(item.ID)
	if err != nil {
		return nil, err
	}
	price, err := kernel.NewPrice(item.Price)
	if err != nil {
		return nil, err
	}
	return dish.RestoreDish(id, item.Name, item.Description, price, item.Category)
}
