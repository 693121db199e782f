package repositories

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestLoginAttemptRepository(t *testing.T) {
	ctx := context.Background()

	mr := miniredis.RunT(t)

	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	defer rdb.Close()

	window := 15 * time.Minute
	repo := NewLoginAttemptRepository(rdb, window, zap.NewNop().Sugar())

	t.Run("first increment starts the expiration window", func(t *testing.T) {
		email := "alice@example.com"

		count, err := repo.Increment(ctx, email)
		assert.NoError(t, err)
		assert.Equal(t, int64(1), count)
		assert.Equal(t, window, mr.TTL("login_attempts:"+email))

		count, err = repo.Increment(ctx, email)
		assert.NoError(t, err)
		assert.Equal(t, int64(2), count)

		got, err := repo.Count(ctx, email)
		assert.NoError(t, err)
		assert.Equal(t, int64(2), got)
	})

	t.Run("count on absent key is zero", func(t *testing.T) {
		got, err := repo.Count(ctx, "nobody@example.com")
		assert.NoError(t, err)
		assert.Equal(t, int64(0), got)
	})

	t.Run("counter expires after the window", func(t *testing.T) {
		email := "bob@example.com"

		_, err := repo.Increment(ctx, email)
		assert.NoError(t, err)

		mr.FastForward(window + time.Second)

		got, err := repo.Count(ctx, email)
		assert.NoError(t, err)
		assert.Equal(t, int64(0), got)
	})

	t.Run("reset deletes the counter", func(t *testing.T) {
		email := "carol@example.com"

		_, err := repo.Increment(ctx, email)
		assert.NoError(t, err)

		err = repo.Reset(ctx, email)
		assert.NoError(t, err)

		assert.False(t, mr.Exists("login_attempts:"+email))

		got, err := repo.Count(ctx, email)
		assert.NoError(t, err)
		assert.Equal(t, int64(0), got)
	})

	t.Run("malformed counter is an error", func(t *testing.T) {
		email := "mallory@example.com"

		err := mr.Set("login_attempts:"+email, "not-a-number")
		assert.NoError(t, err)

		_, err = repo.Count(ctx, email)
		assert.Error(t, err)
	})
}
