package cache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/AyatoShirayouki/Online-Shop/models"
	"github.com/redis/go-redis/v9"
)

// ErrCacheMiss is returned when the requested key is not cached.
var ErrCacheMiss = errors.New("cache miss")

const productListKey = "products:all:by-name"

// ProductCache caches the sorted product listing. Only the catalog listing
// endpoint reads it; the cart and discount paths always hit the store.
type ProductCache interface {
	GetAll(ctx context.Context) ([]models.Product, error)
	SetAll(ctx context.Context, products []models.Product) error
}

// RedisProductCache implements ProductCache with a single JSON value and TTL.
type RedisProductCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisProductCache(client *redis.Client, ttl time.Duration) *RedisProductCache {
	return &RedisProductCache{
		client: client,
		ttl:    ttl,
	}
}

func (c *RedisProductCache) GetAll(ctx context.Context) ([]models.Product, error) {
	data, err := c.client.Get(ctx, productListKey).Result()
	if errors.Is(err, redis.Nil) {
		return nil, ErrCacheMiss
	}
	if err != nil {
		return nil, err
	}

	var products []models.Product
	if err := json.Unmarshal([]byte(data), &products); err != nil {
		return nil, err
	}
	return products, nil
}

func (c *RedisProductCache) SetAll(ctx context.Context, products []models.Product) error {
	data, err := json.Marshal(products)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, productListKey, data, c.ttl).Err()
}
