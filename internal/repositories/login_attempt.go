package repositories

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// LoginAttemptRepository counts failed login attempts per email in Redis.
// Counters expire after the configured window, so a burst of failures
// only locks an account out temporarily.
type LoginAttemptRepository struct {
	client *redis.Client
	exp    time.Duration // expiration window for attempt counters
	log    *zap.SugaredLogger
}

// NewLoginAttemptRepository creates a repository over an existing Redis client.
func NewLoginAttemptRepository(client *redis.Client, expiration time.Duration, log *zap.SugaredLogger) *LoginAttemptRepository {
	return &LoginAttemptRepository{
		client: client,
		exp:    expiration,
		log:    log,
	}
}

func attemptKey(email string) string {
	return fmt.Sprintf("login_attempts:%s", email)
}

// Increment records one failed attempt and returns the running count.
// The expiration window starts at the first failure.
func (r *LoginAttemptRepository) Increment(ctx context.Context, email string) (int64, error) {
	key := attemptKey(email)

	count, err := r.client.Incr(ctx, key).Result()
	if err != nil {
		r.log.Errorw("failed to increment login attempts", "key", key, "error", err)
		return 0, err
	}

	if count == 1 {
		if err := r.client.Expire(ctx, key, r.exp).Err(); err != nil {
			r.log.Errorw("failed to set login attempt expiration", "key", key, "error", err)
		}
	}

	return count, nil
}

// Count returns the current number of failed attempts; zero when the counter
// is absent or expired.
func (r *LoginAttemptRepository) Count(ctx context.Context, email string) (int64, error) {
	key := attemptKey(email)

	val, err := r.client.Get(ctx, key).Result()
	if err == redis.Nil {
		return 0, nil
	}
	if err != nil {
		r.log.Errorw("failed to read login attempts", "key", key, "error", err)
		return 0, err
	}

	count, err := strconv.ParseInt(val, 10, 64)
	if err != nil {
		r.log.Errorw("malformed login attempt counter", "key", key, "value", val, "error", err)
		return 0, err
	}

	return count, nil
}

// Reset clears the counter after a successful login.
func (r *LoginAttemptRepository) Reset(ctx context.Context, email string) error {
	key := attemptKey(email)

	err := r.client.Del(ctx, key).Err()
	if err != nil {
		r.log.Errorw("failed to reset login attempts", "key", key, "error", err)
	}

	return err
}
