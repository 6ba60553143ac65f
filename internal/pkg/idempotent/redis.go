package idempotent

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

var _ Service = (*RedisService)(nil)

type cmd interface {
	Exists(ctx context.Context, keys ...string) *redis.IntCmd
	Set(ctx context.Context, key string, value any, expiration time.Duration) *redis.StatusCmd
}

// RedisService 标记保存在 Redis 里，过期后允许再次处理
type RedisService struct {
	client cmd
	prefix string
	ttl    time.Duration
}

func NewRedisService(client redis.Cmdable, prefix string, ttl time.Duration) *RedisService {
	return &RedisService{client: client, prefix: prefix, ttl: ttl}
}

func (s *RedisService) Exists(ctx context.Context, key string) (bool, error) {
	n, err := s.client.Exists(ctx, s.prefix+key).Result()
	if err != nil {
		return false, fmt.Errorf("幂等标记查询失败: %w", err)
	}
	return n > 0, nil
}

func (s *RedisService) Mark(ctx context.Context, key string) error {
	err := s.client.Set(ctx, s.prefix+key, 1, s.ttl).Err()
	if err != nil {
		return fmt.Errorf("幂等标记写入失败: %w", err)
	}
	return nil
}
