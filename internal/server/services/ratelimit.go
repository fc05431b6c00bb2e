package services

import (
	"context"
	"fmt"
	"time"

	"github.com/dmitrijs2005/notevault/internal/common"
	"github.com/dmitrijs2005/notevault/internal/dbx"
	"github.com/dmitrijs2005/notevault/internal/server/repositories/repomanager"
	"github.com/redis/go-redis/v9"
)

// Limiter enforces a fixed-window quota per key. A rejected call returns
// common.ErrorRateLimited.
type Limiter interface {
	Enforce(ctx context.Context, key string, limit int, window time.Duration) error
}

// Policy is one action's quota. Identities are normalized by the caller.
type Policy struct {
	Action string
	Limit  int
	Window time.Duration
}

var (
	LinkRequestPolicy = Policy{Action: "login-link-request", Limit: 5, Window: 15 * time.Minute}
	LinkVerifyPolicy  = Policy{Action: "login-link-verify", Limit: 10, Window: 15 * time.Minute}
	TOTPLoginPolicy   = Policy{Action: "totp-login", Limit: 5, Window: 5 * time.Minute}
)

// Key is the bucket key for identity under p.
func (p Policy) Key(identity string) string {
	return p.Action + ":" + identity
}

// Enforce applies p to identity.
func (p Policy) Enforce(ctx context.Context, l Limiter, identity string) error {
	return l.Enforce(ctx, p.Key(identity), p.Limit, p.Window)
}

func checkQuota(limit int, window time.Duration) error {
	if limit <= 0 || window <= 0 {
		return fmt.Errorf("%w: limit and window must be positive", common.ErrorValidation)
	}
	return nil
}

// StoreLimiter keeps buckets in the record store. Each call runs in its own
// transaction with the bucket row locked, so concurrent calls for one key
// are serialized.
type StoreLimiter struct {
	tx          dbx.Transactor
	repomanager repomanager.RepositoryManager
	now         func() time.Time
}

func NewStoreLimiter(tx dbx.Transactor, m repomanager.RepositoryManager) *StoreLimiter {
	return &StoreLimiter{tx: tx, repomanager: m, now: time.Now}
}

func (l *StoreLimiter) Enforce(ctx context.Context, key string, limit int, window time.Duration) error {
	if err := checkQuota(limit, window); err != nil {
		return err
	}

	return l.tx.InTx(ctx, func(ctx context.Context, tx dbx.DBTX) error {
		repo := l.repomanager.RateLimits(tx)

		b, err := repo.Acquire(ctx, key)
		if err != nil {
			return fmt.Errorf("error acquiring bucket: %w", err)
		}

		now := l.now()
		switch {
		case !now.Before(b.ResetAt):
			b.Count = 1
			b.ResetAt = now.Add(window)
		case b.Count >= limit:
			return common.ErrorRateLimited
		default:
			b.Count++
		}

		if err := repo.Save(ctx, b); err != nil {
			return fmt.Errorf("error saving bucket: %w", err)
		}
		return nil
	})
}

// fixedWindowScript returns 1 when the call is admitted and 0 when the
// bucket is full. A full bucket is not incremented.
var fixedWindowScript = redis.NewScript(`
local limit = tonumber(ARGV[1])
local window_ms = tonumber(ARGV[2])

local current = tonumber(redis.call("GET", KEYS[1]) or "0")
if current >= limit then
  return 0
end

current = redis.call("INCR", KEYS[1])
if current == 1 then
  redis.call("PEXPIRE", KEYS[1], window_ms)
end
return 1
`)

// RedisLimiter keeps buckets in Redis. Window expiry is Redis key expiry.
type RedisLimiter struct {
	client redis.UniversalClient
	prefix string
}

func NewRedisLimiter(client redis.UniversalClient, prefix string) *RedisLimiter {
	if prefix == "" {
		prefix = "rl"
	}
	return &RedisLimiter{client: client, prefix: prefix}
}

func (l *RedisLimiter) Enforce(ctx context.Context, key string, limit int, window time.Duration) error {
	if err := checkQuota(limit, window); err != nil {
		return err
	}
	if l.client == nil {
		return fmt.Errorf("redis client is nil")
	}

	windowMS := window.Milliseconds()
	if windowMS <= 0 {
		windowMS = 1
	}

	allowed, err := fixedWindowScript.Run(ctx, l.client, []string{l.prefix + ":" + key}, limit, windowMS).Int64()
	if err != nil {
		return fmt.Errorf("error running rate limit script: %w", err)
	}
	if allowed != 1 {
		return common.ErrorRateLimited
	}
	return nil
}
