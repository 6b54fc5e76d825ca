package ratelimit

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

const redisKeyPrefix = "cooldown:"

// RedisLimiter enforces the cooldown in a shared Redis instance so that
// horizontally scaled deployments agree on one window per identity. It fails
// open: a Redis outage must not block lead capture.
type RedisLimiter struct {
	client *redis.Client
	window time.Duration
}

// NewRedisLimiter creates a RedisLimiter. Returns nil for a nil client so the
// caller can fall back to the in-memory limiter.
func NewRedisLimiter(client *redis.Client, window time.Duration) *RedisLimiter {
	if client == nil {
		return nil
	}
	return &RedisLimiter{client: client, window: window}
}

var _ Limiter = (*RedisLimiter)(nil)

// Check sets the cooldown key only if absent (SET NX PX). When the key is
// already held, the remaining TTL becomes the retry-after hint.
func (l *RedisLimiter) Check(ctx context.Context, identity string) Result {
	if l == nil || l.client == nil {
		return Result{Allowed: true}
	}

	key := redisKeyPrefix + Key(identity)
	ctx, cancel := context.WithTimeout(ctx, 250*time.Millisecond)
	defer cancel()

	set, err := l.client.SetNX(ctx, key, time.Now().Unix(), l.window).Result()
	if err != nil {
		return Result{Allowed: true}
	}
	if set {
		return Result{Allowed: true}
	}

	ttl, err := l.client.PTTL(ctx, key).Result()
	if err != nil || ttl <= 0 {
		// Key expired between SETNX and PTTL; treat as allowed next attempt.
		return Result{RetryAfter: 1}
	}
	return Result{RetryAfter: ceilSeconds(ttl)}
}
