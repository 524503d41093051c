// cache — опциональный кэш ответов листинга поверх Redis.
// Кэш — оптимизация: любые его ошибки сервис логирует и продолжает работу через БД.
package cache

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

//go:generate mockgen -source=cache.go -destination=../../mocks/cache_mock.go -package=mocks

// ListingCache — минимальный контракт кэша листингов.
type ListingCache interface {
	// Get возвращает значение и признак его наличия в кэше.
	Get(ctx context.Context, key string) ([]byte, bool, error)
	// Set сохраняет значение с TTL.
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	// Close закрывает клиент.
	Close() error
}

type redisCache struct {
	rdb    *redis.Client
	prefix string
}

// NewRedisCache создаёт клиент Redis из URL (например, redis://:pass@host:6379/0).
// Если prefix пустой — используется "classifieds:products:".
func NewRedisCache(ctx context.Context, redisURL, prefix string) (ListingCache, error) {
	if prefix == "" {
		prefix = "classifieds:products:"
	}

	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, err
	}

	rdb := redis.NewClient(opt)

	// Fail-fast на старте.
	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, err
	}

	return &redisCache{rdb: rdb, prefix: prefix}, nil
}

func (c *redisCache) key(k string) string { return c.prefix + k }

func (c *redisCache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	b, err := c.rdb.Get(ctx, c.key(key)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, false, nil
		}
		return nil, false, err
	}

	return b, true, nil
}

func (c *redisCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	return c.rdb.Set(ctx, c.key(key), value, ttl).Err()
}

func (c *redisCache) Close() error { return c.rdb.Close() }

// Noop — кэш-заглушка: всегда промах, запись игнорируется.
type Noop struct{}

func (Noop) Get(context.Context, string) ([]byte, bool, error) { return nil, false, nil }

func (Noop) Set(context.Context, string, []byte, time.Duration) error { return nil }

func (Noop) Close() error { return nil }

var _ ListingCache = Noop{}
