package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/kirinyoku/adslot-go/internal/pkg/clock"
	"github.com/redis/go-redis/v9"
)

// Hits of one client live in a sorted set scored by unix millis.
// Rejected hits are not recorded, so hammering a full window does not push the reopening back.
// KEYS[1] = hits of the client
// ARGV    = now_ms, window_ms, limit, hit_id
// returns {admitted 0|1, hits in window, retry_after_ms}
const luaAdmitHit = `
local now, window, limit = tonumber(ARGV[1]), tonumber(ARGV[2]), tonumber(ARGV[3])

redis.call('ZREMRANGEBYSCORE', KEYS[1], '-inf', now - window)
local hits = redis.call('ZCARD', KEYS[1])

if hits >= limit then
  local oldest = redis.call('ZRANGE', KEYS[1], 0, 0, 'WITHSCORES')
  local wait = window
  if oldest[2] then wait = tonumber(oldest[2]) + window - now end
  if wait < 1 then wait = 1 end
  return {0, hits, wait}
end

redis.call('ZADD', KEYS[1], now, ARGV[4])
redis.call('PEXPIRE', KEYS[1], window)
return {1, hits + 1, 0}
`

// SlidingWindowLimiter admits at most limit hits per client within any window-long interval.
type SlidingWindowLimiter struct {
	rdb    *redis.Client
	clock  clock.Clock
	scope  string
	limit  int
	window time.Duration
	script *redis.Script
}

// NewSlidingWindowLimiter builds a limiter for one endpoint family, e.g. "checkout" or "promo".
func NewSlidingWindowLimiter(
	rdb *redis.Client,
	clk clock.Clock,
	scope string,
	limit int,
	window time.Duration,
) *SlidingWindowLimiter {
	if clk == nil {
		clk = clock.NewRealClock()
	}

	return &SlidingWindowLimiter{
		rdb:    rdb,
		clock:  clk,
		scope:  scope,
		limit:  limit,
		window: window,
		script: redis.NewScript(luaAdmitHit),
	}
}

// Allow admits one hit for client and reports the hits now in the window.
// A rejected hit comes with the wait until the oldest hit leaves the window.
func (l *SlidingWindowLimiter) Allow(ctx context.Context, client string) (bool, int64, time.Duration, error) {
	const op = "redis.SlidingWindowLimiter.Allow"

	out, err := l.script.Run(ctx, l.rdb,
		[]string{KeyRateLimit(l.scope, client)},
		l.clock.Now().UnixMilli(), l.window.Milliseconds(), l.limit, uuid.NewString(),
	).Int64Slice()
	if err != nil {
		return false, 0, 0, fmt.Errorf("%s:%w", op, err)
	}
	if len(out) != 3 {
		return false, 0, 0, fmt.Errorf("%s: unexpected script reply %v", op, out)
	}

	return out[0] == 1, out[1], time.Duration(out[2]) * time.Millisecond, nil
}
