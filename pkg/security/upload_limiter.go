package security

import (
	"context"
	"fmt"
	"strconv"
	"time"

	goredis "github.com/redis/go-redis/v9"
)

// UploadLimiter caps picture uploads per IP per minute and per user per day
// using Redis sorted-set sliding windows.
type UploadLimiter struct {
	maxPerMinute int
	maxPerDay    int
	client       func() *goredis.Client
}

// Sliding window: drop members older than the window, count, then add.
// KEYS[1] = key; ARGV = limit, window seconds, now (unix nanos). Returns 1 if allowed.
const uploadRateLimitScript = `
local key = KEYS[1]
local limit = tonumber(ARGV[1])
local window = tonumber(ARGV[2])
local now = tonumber(ARGV[3])

redis.call('ZREMRANGEBYSCORE', key, 0, now - window * 1000000000)

if redis.call('ZCARD', key) >= limit then
    return 0
end

redis.call('ZADD', key, now, ARGV[3])
redis.call('EXPIRE', key, window)
return 1
`

// NewUploadLimiter defaults to 10 uploads/min per IP and 50/day per user.
func NewUploadLimiter(perMin, perDay int, client func() *goredis.Client) *UploadLimiter {
	if perMin <= 0 {
		perMin = 10
	}
	if perDay <= 0 {
		perDay = 50
	}
	return &UploadLimiter{maxPerMinute: perMin, maxPerDay: perDay, client: client}
}

// AllowUpload returns whether the upload may proceed and, if not, how many seconds to wait.
// Without Redis every upload is allowed.
func (ul *UploadLimiter) AllowUpload(ctx context.Context, ip string, userID int64) (bool, int, error) {
	var client *goredis.Client
	if ul.client != nil {
		client = ul.client()
	}
	if client == nil {
		return true, 0, nil
	}

	now := time.Now().UnixNano()

	allowed, err := ul.checkLimit(ctx, client, "ratelimit:upload:ip:"+ip, ul.maxPerMinute, 60, now)
	if err != nil {
		return false, 60, fmt.Errorf("upload limit check failed: %w", err)
	}
	if !allowed {
		return false, 60, nil
	}

	if userID > 0 {
		userKey := "ratelimit:upload:user:" + strconv.FormatInt(userID, 10)
		allowed, err = ul.checkLimit(ctx, client, userKey, ul.maxPerDay, 86400, now)
		if err != nil {
			return false, 3600, fmt.Errorf("upload limit check failed: %w", err)
		}
		if !allowed {
			return false, 3600, nil
		}
	}

	return true, 0, nil
}

func (ul *UploadLimiter) checkLimit(ctx context.Context, client *goredis.Client, key string, limit, window int, now int64) (bool, error) {
	result, err := client.Eval(ctx, uploadRateLimitScript, []string{key}, limit, window, now).Result()
	if err != nil {
		return false, err
	}
	allowed, ok := result.(int64)
	if !ok {
		return false, fmt.Errorf("unexpected result type from upload limit script")
	}
	return allowed == 1, nil
}
