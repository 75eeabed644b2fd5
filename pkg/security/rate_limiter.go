package security

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// RateLimiter 基于 redis 有序集合的滑动窗口限流
type RateLimiter struct {
	redis       redis.UniversalClient
	prefix      string
	windowSize  time.Duration
	maxRequests int64
}

// RateLimitResult 限流结果
type RateLimitResult struct {
	Allowed    bool          `json:"allowed"`
	Remaining  int64         `json:"remaining"`
	RetryAfter time.Duration `json:"retry_after"`
}

func NewRateLimiter(client redis.UniversalClient, prefix string, window time.Duration, max int64) *RateLimiter {
	return &RateLimiter{
		redis:       client,
		prefix:      prefix,
		windowSize:  window,
		maxRequests: max,
	}
}

// Allow 记录一次请求并返回窗口内是否仍未超限
func (rl *RateLimiter) Allow(ctx context.Context, key string) (*RateLimitResult, error) {
	now := time.Now()
	windowStart := now.Add(-rl.windowSize)
	fullKey := rl.prefix + key

	pipe := rl.redis.TxPipeline()
	// 清理过期记录
	pipe.ZRemRangeByScore(ctx, fullKey, "0", fmt.Sprintf("%d", windowStart.UnixNano()))
	pipe.ZAdd(ctx, fullKey, redis.Z{
		Score:  float64(now.UnixNano()),
		Member: uuid.NewString(),
	})
	countCmd := pipe.ZCard(ctx, fullKey)
	oldestCmd := pipe.ZRangeWithScores(ctx, fullKey, 0, 0)
	pipe.Expire(ctx, fullKey, rl.windowSize+time.Minute)

	if _, err := pipe.Exec(ctx); err != nil {
		return nil, err
	}

	count := countCmd.Val()
	result := &RateLimitResult{
		Allowed:   count <= rl.maxRequests,
		Remaining: rl.maxRequests - count,
	}
	if result.Remaining < 0 {
		result.Remaining = 0
	}
	if !result.Allowed {
		result.RetryAfter = rl.windowSize
		if oldest := oldestCmd.Val(); len(oldest) > 0 {
			result.RetryAfter = time.Unix(0, int64(oldest[0].Score)).Add(rl.windowSize).Sub(now)
		}
	}
	return result, nil
}

// Reset 清除 key 的计数
func (rl *RateLimiter) Reset(ctx context.Context, key string) error {
	return rl.redis.Del(ctx, rl.prefix+key).Err()
}
