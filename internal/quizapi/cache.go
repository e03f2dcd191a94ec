package quizapi

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const previewKeyPrefix = "wikiquiz:preview:"

// PreviewCache stores article titles by URL. Only successful lookups are stored.
type PreviewCache interface {
	GetTitle(ctx context.Context, articleURL string) (string, bool, error)
	SetTitle(ctx context.Context, articleURL, title string) error
}

type noopCache struct{}

func (noopCache) GetTitle(context.Context, string) (string, bool, error) { return "", false, nil }
func (noopCache) SetTitle(context.Context, string, string) error         { return nil }

// RedisPreviewCache keeps preview titles in Redis with a fixed TTL
type RedisPreviewCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisPreviewCache connects to redisURL and verifies the connection.
func NewRedisPreviewCache(redisURL string, ttl time.Duration) (*RedisPreviewCache, error) {
	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse Redis URL: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client := redis.NewClient(opt)
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("failed to ping Redis: %w", err)
	}

	return &RedisPreviewCache{client: client, ttl: ttl}, nil
}

func (r *RedisPreviewCache) GetTitle(ctx context.Context, articleURL string) (string, bool, error) {
	title, err := r.client.Get(ctx, previewKeyPrefix+articleURL).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return title, true, nil
}

func (r *RedisPreviewCache) SetTitle(ctx context.Context, articleURL, title string) error {
	return r.client.Set(ctx, previewKeyPrefix+articleURL, title, r.ttl).Err()
}

func (r *RedisPreviewCache) Close() error {
	return r.client.Close()
}
