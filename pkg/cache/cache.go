// Package cache is a small JSON cache on top of Redis.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

var (
	// ErrCacheMiss возвращается, когда ключа нет в кэше
	ErrCacheMiss = errors.New("cache: key not found")

	// ErrConnection возвращается, когда Redis недоступен при создании клиента
	ErrConnection = errors.New("cache: connection failed")

	// ErrSerialization возвращается при ошибке (де)сериализации значения
	ErrSerialization = errors.New("cache: serialization failed")
)

const pingTimeout = 5 * time.Second

// Cache JSON кэш с общим префиксом ключей
type Cache struct {
	client *redis.Client
	prefix string
}

// New подключается к Redis и проверяет соединение
func New(addr, password string, db int, prefix string) (*Cache, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	ctx, cancel := context.WithTimeout(context.Background(), pingTimeout)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("%w: %s: %v", ErrConnection, addr, err)
	}

	return NewWithClient(client, prefix), nil
}

// NewWithClient создает кэш поверх существующего клиента
func NewWithClient(client *redis.Client, prefix string) *Cache {
	return &Cache{client: client, prefix: prefix}
}

// Get читает значение и декодирует его в dest
func (c *Cache) Get(ctx context.Context, key string, dest interface{}) error {
	data, err := c.client.Get(ctx, c.prefix+key).Bytes()
	if errors.Is(err, redis.Nil) {
		return ErrCacheMiss
	}
	if err != nil {
		return err
	}

	if err := json.Unmarshal(data, dest); err != nil {
		return fmt.Errorf("%w: %v", ErrSerialization, err)
	}
	return nil
}

// Set сохраняет значение в JSON с TTL
func (c *Cache) Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrSerialization, err)
	}
	return c.client.Set(ctx, c.prefix+key, data, ttl).Err()
}

// Delete удаляет ключи
func (c *Cache) Delete(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}
	full := make([]string, len(keys))
	for i, key := range keys {
		full[i] = c.prefix + key
	}
	return c.client.Del(ctx, full...).Err()
}

// Close закрывает соединение
func (c *Cache) Close() error {
	return c.client.Close()
}
