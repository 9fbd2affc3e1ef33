package redis

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/go-redis/redis/v8"
	rate "github.com/go-redis/redis_rate/v9"

	"github.com/veridia/identity/internal/logging"
)

type OverLimitError struct {
	RetryAfter time.Duration
}

func (e OverLimitError) Error() string {
	return fmt.Sprintf("over limit; retry after %v", e.RetryAfter)
}

// RateOK checks if the rate per minute is acceptable for the specified key.
func RateOK(r *Redis, key string, limit int) error {
	if r != nil && r.client != nil {
		ctx := context.TODO()
		limiter := rate.NewLimiter(r.client)
		result, err := limiter.Allow(ctx, key, rate.PerMinute(limit))
		if err != nil {
			return err
		}

		logging.Debugf("rate limit key=%q limit=%d allowed=%d remaining=%d retryAfter=%v",
			key, limit, result.Allowed, result.Remaining, result.RetryAfter)

		if result.Allowed <= 0 {
			return OverLimitError{
				RetryAfter: result.RetryAfter,
			}
		}
	}

	return nil
}

func loginKey(key string) string {
	return fmt.Sprintf("rate:login:%s", key)
}

func loginKeyLockout(key string) string {
	return fmt.Sprintf("%s:lockout", loginKey(key))
}

// LoginOK reports whether the key is currently locked out from further
// login attempts.
func LoginOK(r *Redis, key string) error {
	if r != nil && r.client != nil {
		lockout, err := r.client.Get(context.TODO(), loginKeyLockout(key)).Time()
		if err != nil {
			if errors.Is(err, redis.Nil) {
				// err is redis.Nil when the key does not exist, i.e. no previous failures
				return nil
			}

			return err
		}

		retryAfter := time.Until(lockout)

		if retryAfter > 0 {
			return OverLimitError{
				RetryAfter: retryAfter,
			}
		}
	}

	return nil
}

// LoginGood clears the failure count after a successful login.
func LoginGood(r *Redis, key string) {
	if r != nil && r.client != nil {
		ctx := context.TODO()
		_, _ = r.client.Pipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Del(ctx, loginKey(key))
			pipe.Del(ctx, loginKeyLockout(key))
			return nil
		})
	}
}

// LoginBad records a failed login. Once failures reach limit the key is
// locked out with exponential backoff.
func LoginBad(r *Redis, key string, limit int) {
	if r != nil && r.client != nil {
		ctx := context.TODO()
		count := r.client.Incr(ctx, loginKey(key)).Val()

		if count >= int64(limit) {
			retryAfter := time.Duration(math.Pow(1.5, float64(count)) * float64(time.Second))
			lockout := time.Now().Add(retryAfter)

			logging.Debugf("login lockout key=%q limit=%d retryAfter=%v", key, limit, retryAfter)

			r.client.SetArgs(ctx, loginKeyLockout(key), lockout, redis.SetArgs{
				Mode:     "NX",
				ExpireAt: lockout,
			})
		}
	}
}
