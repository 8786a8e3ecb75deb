package middleware

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

// Fixed-window counter shared across instances. Fails open: if Redis is
// unreachable the request is allowed.
const rateLimitScript = `
local hits = redis.call("INCR", KEYS[1])
if hits == 1 then
  redis.call("PEXPIRE", KEYS[1], ARGV[1])
end
if hits > tonumber(ARGV[2]) then
  return 0
end
return 1
`

type RedisLimiter struct {
	client *redis.Client
	script *redis.Script
}

// NewRedisLimiter connects to addr. An empty addr disables the limiter and
// the caller should fall back to the in-memory one.
func NewRedisLimiter(addr string) *RedisLimiter {
	if addr == "" {
		return nil
	}
	return &RedisLimiter{
		client: redis.NewClient(&redis.Options{Addr: addr}),
		script: redis.NewScript(rateLimitScript),
	}
}

func (l *RedisLimiter) Allow(key string, limit int, window time.Duration) bool {
	if l == nil || l.client == nil {
		return true
	}
	if key == "" || limit <= 0 || window <= 0 {
		return true
	}
	ttl := window.Milliseconds()
	if ttl <= 0 {
		ttl = 1
	}
	ctx, cancel := context.WithTimeout(context.Background(), 250*time.Millisecond)
	defer cancel()
	allowed, err := l.script.Run(ctx, l.client, []string{"ratelimit:" + key}, ttl, limit).Int64()
	if err != nil {
		return true
	}
	return allowed == 1
}
