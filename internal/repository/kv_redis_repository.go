package repository

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/redis/go-redis/v9"

	appErrors "github.com/noah-isme/syntaxscout-api/pkg/errors"
)

// RedisKVRepository stores entries in Redis under a namespace prefix with no
// expiry.
type RedisKVRepository struct {
	client *redis.Client
	prefix string
}

// NewRedisKVRepository constructs the repository. An empty prefix defaults to
// "syntaxscout:".
func NewRedisKVRepository(client *redis.Client, prefix string) *RedisKVRepository {
	if prefix == "" {
		prefix = "syntaxscout:"
	}
	return &RedisKVRepository{client: client, prefix: prefix}
}

func (r *RedisKVRepository) Get(ctx context.Context, key string) ([]byte, error) {
	raw, err := r.client.Get(ctx, r.prefix+key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, appErrors.ErrKeyNotFound
		}
		return nil, fmt.Errorf("redis get %s: %w", key, err)
	}
	return raw, nil
}

func (r *RedisKVRepository) Set(ctx context.Context, key string, value []byte) error {
	if err := r.client.Set(ctx, r.prefix+key, value, 0).Err(); err != nil {
		return fmt.Errorf("redis set %s: %w", key, err)
	}
	return nil
}

func (r *RedisKVRepository) Delete(ctx context.Context, key string) error {
	if err := r.client.Del(ctx, r.prefix+key).Err(); err != nil {
		return fmt.Errorf("redis delete %s: %w", key, err)
	}
	return nil
}

// Keys scans the namespace.
func (r *RedisKVRepository) Keys(ctx context.Context) ([]string, error) {
	keys := make([]string, 0)
	iter := r.client.Scan(ctx, 0, r.prefix+"*", 0).Iterator()
	for iter.Next(ctx) {
		keys = append(keys, strings.TrimPrefix(iter.Val(), r.prefix))
	}
	if err := iter.Err(); err != nil {
		return nil, fmt.Errorf("redis scan %s: %w", r.prefix, err)
	}
	sort.Strings(keys)
	return keys, nil
}

// Close releases the Redis connection.
func (r *RedisKVRepository) Close() error {
	return r.client.Close()
}
