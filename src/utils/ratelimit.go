package utils

import (
	"context"
	"fmt"
	"time"
)

// RedisRateLimiter นับจำนวน request ต่อ key ด้วย Redis (fixed window)
// The counter store guarantees atomic increment-and-check per key: INCR is
// atomic in Redis and the window TTL is attached on the first hit.
type RedisRateLimiter struct {
	Prefix string
}

func NewRedisRateLimiter() *RedisRateLimiter {
	return &RedisRateLimiter{Prefix: "ratelimit"}
}

// Check increments the counter for key within the current window and reports
// whether the caller is over the limit. With no Redis configured it always
// allows the request (development mode, same as the token blacklist).
func (r *RedisRateLimiter) Check(ctx context.Context, key string, limit int, window time.Duration) (bool, error) {
	client := ensureClient()
	if client == nil {
		// ไม่มี Redis ใน dev mode - ไม่จำกัด
		return false, nil
	}

	counterKey := fmt.Sprintf("%s:%s", r.Prefix, key)
	count, err := client.Incr(ctx, counterKey).Result()
	if err != nil {
		return false, fmt.Errorf("failed to increment rate-limit counter: %v", err)
	}
	if count == 1 {
		// หน้าต่างใหม่ - ตั้งเวลาหมดอายุ
		if err := client.Expire(ctx, counterKey, window).Err(); err != nil {
			return false, fmt.Errorf("failed to set rate-limit window: %v", err)
		}
	}

	return count > int64(limit), nil
}
