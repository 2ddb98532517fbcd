package lock

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-redis/redis/v8"

	"rigforge/pkg/logger"
)

const (
	defaultLockKey      = "rigforge:sweep-lock"
	lockTTL             = 30 * time.Second // lock TTL, prevents deadlock on crash
	lockAcquireTimeout  = 5 * time.Second
	lockExtendInterval  = 10 * time.Second
	maxLockHoldDuration = 2 * time.Minute
)

// DistributedLock coordinates work across replicas
type DistributedLock interface {
	// TryLock attempts to acquire the lock without blocking
	TryLock(ctx context.Context) (bool, error)

	// Unlock releases the lock
	Unlock(ctx context.Context) error

	// IsHeld reports whether this instance holds the lock
	IsHeld() bool
}

// RedisDistributedLock Redis-backed lock implementation
type RedisDistributedLock struct {
	client       *redis.Client
	lockKey      string
	lockValue    string // unique per instance so we never release another holder's lock
	ttl          time.Duration
	isHeld       bool
	acquiredAt   time.Time
	stopRenew    chan struct{}
	renewStopped bool
	mu           sync.Mutex
}

// NewRedisDistributedLock creates a Redis distributed lock. A nil client
// degrades to a no-op lock for single-instance deployments.
func NewRedisDistributedLock(client *redis.Client, lockKey string) *RedisDistributedLock {
	if lockKey == "" {
		lockKey = defaultLockKey
	}
	return &RedisDistributedLock{
		client:    client,
		lockKey:   lockKey,
		lockValue: fmt.Sprintf("%s-%d", lockKey, time.Now().UnixNano()),
		ttl:       lockTTL,
		stopRenew: make(chan struct{}),
	}
}

// TryLock attempts to acquire the lock with SET NX EX
func (l *RedisDistributedLock) TryLock(ctx context.Context) (bool, error) {
	if l.client == nil {
		logger.Warn("redis client is nil, skipping distributed lock (running in single-instance mode)")
		l.mu.Lock()
		l.isHeld = true
		l.mu.Unlock()
		return true, nil
	}

	acquireCtx, cancel := context.WithTimeout(ctx, lockAcquireTimeout)
	defer cancel()

	acquired, err := l.client.SetNX(acquireCtx, l.lockKey, l.lockValue, l.ttl).Result()
	if err != nil {
		return false, fmt.Errorf("failed to acquire lock: %w", err)
	}

	if acquired {
		l.mu.Lock()
		l.isHeld = true
		l.acquiredAt = time.Now()
		// Recreate the channel so TryLock/Unlock cycles work
		l.stopRenew = make(chan struct{})
		l.renewStopped = false
		l.mu.Unlock()

		go l.renewLock(ctx)

		logger.DebugCtx(ctx, "lock %s acquired", l.lockKey)
		return true, nil
	}

	logger.DebugCtx(ctx, "lock %s already held by another instance", l.lockKey)
	return false, nil
}

// Unlock releases the lock
func (l *RedisDistributedLock) Unlock(ctx context.Context) error {
	l.mu.Lock()
	if !l.isHeld {
		l.mu.Unlock()
		return nil
	}

	if l.client == nil {
		l.isHeld = false
		l.mu.Unlock()
		return nil
	}

	if !l.renewStopped {
		l.renewStopped = true
		close(l.stopRenew)
	}
	l.mu.Unlock()

	// Lua script so only our own lock value is deleted
	luaScript := `
		if redis.call("get", KEYS[1]) == ARGV[1] then
			return redis.call("del", KEYS[1])
		else
			return 0
		end
	`

	result, err := l.client.Eval(ctx, luaScript, []string{l.lockKey}, l.lockValue).Result()
	if err != nil {
		return fmt.Errorf("failed to release lock: %w", err)
	}

	l.mu.Lock()
	l.isHeld = false
	l.mu.Unlock()

	if result.(int64) != 1 {
		logger.WarnCtx(ctx, "lock %s was already released or held by another instance", l.lockKey)
	}

	return nil
}

// IsHeld reports whether this instance holds the lock
func (l *RedisDistributedLock) IsHeld() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.isHeld
}

// renewLock extends the lock TTL while work is in progress
func (l *RedisDistributedLock) renewLock(ctx context.Context) {
	ticker := time.NewTicker(lockExtendInterval)
	defer ticker.Stop()

	for {
		select {
		case <-l.stopRenew:
			return
		case <-ctx.Done():
			return
		case <-ticker.C:
			l.mu.Lock()
			holdDuration := time.Since(l.acquiredAt)
			l.mu.Unlock()

			if holdDuration > maxLockHoldDuration {
				logger.WarnCtx(ctx, "lock %s held for %.0f seconds, giving it up", l.lockKey, holdDuration.Seconds())
				l.mu.Lock()
				l.isHeld = false
				l.mu.Unlock()
				return
			}

			// Renew only our own lock value
			luaScript := `
				if redis.call("get", KEYS[1]) == ARGV[1] then
					return redis.call("expire", KEYS[1], ARGV[2])
				else
					return 0
				end
			`

			result, err := l.client.Eval(ctx, luaScript,
				[]string{l.lockKey},
				l.lockValue,
				int(l.ttl.Seconds())).Result()

			if err != nil || result.(int64) == 0 {
				logger.WarnCtx(ctx, "lock %s renewal failed, lock lost: %v", l.lockKey, err)
				l.mu.Lock()
				l.isHeld = false
				l.mu.Unlock()
				return
			}
		}
	}
}
