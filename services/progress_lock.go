package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"levelup/utils"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// LocalProgressLock serializes profile updates within one process.
type LocalProgressLock struct {
	sem chan struct{}
}

func NewLocalProgressLock() *LocalProgressLock {
	return &LocalProgressLock{sem: make(chan struct{}, 1)}
}

// Acquire blocks until the lock is free or ctx is done.
func (l *LocalProgressLock) Acquire(ctx context.Context) (func(), error) {
	select {
	case l.sem <- struct{}{}:
		return func() { <-l.sem }, nil
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

const progressLockKey = "levelup:progress_lock"

// releaseScript deletes the key only if it still holds our token, so an
// expired holder cannot free a lock someone else has since taken.
var releaseScript = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0
`)

var ErrLockTimeout = errors.New("timed out waiting for progress lock")

// RedisProgressLock serializes profile updates across processes sharing one
// Redis. The key expires after ttl in case a holder dies.
type RedisProgressLock struct {
	client     *redis.Client
	ttl        time.Duration
	retryDelay time.Duration
	maxWait    time.Duration
}

func NewRedisProgressLock(redisURL string, ttl time.Duration) (*RedisProgressLock, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse Redis URL: %w", err)
	}

	client := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &RedisProgressLock{
		client:     client,
		ttl:        ttl,
		retryDelay: 25 * time.Millisecond,
		maxWait:    ttl,
	}, nil
}

func (l *RedisProgressLock) Acquire(ctx context.Context) (func(), error) {
	token := uuid.NewString()
	deadline := time.Now().Add(l.maxWait)

	for {
		ok, err := l.client.SetNX(ctx, progressLockKey, token, l.ttl).Result()
		if err != nil {
			return nil, fmt.Errorf("failed to acquire progress lock: %w", err)
		}
		if ok {
			return func() { l.release(token) }, nil
		}
		if time.Now().After(deadline) {
			return nil, ErrLockTimeout
		}

		select {
		case <-time.After(l.retryDelay):
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
}

func (l *RedisProgressLock) release(token string) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	if err := releaseScript.Run(ctx, l.client, []string{progressLockKey}, token).Err(); err != nil {
		utils.Logger.WithError(err).Warn("Failed to release progress lock")
	}
}

func (l *RedisProgressLock) Close() error {
	return l.client.Close()
}
