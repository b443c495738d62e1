package repositories

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sbilibin2017/mood-journal/internal/logger"
)

// LoginAttemptRepository counts failed login attempts per email in Redis.
// Each counter lives for the configured window and is evicted by TTL; a
// successful login resets it early.
type LoginAttemptRepository struct {
	client *redis.Client
	window time.Duration // counter lifetime
}

// NewLoginAttemptRepository creates a new repository instance with the attempt window.
func NewLoginAttemptRepository(client *redis.Client, window time.Duration) *LoginAttemptRepository {
	return &LoginAttemptRepository{
		client: client,
		window: window,
	}
}

func attemptKey(email string) string {
	return fmt.Sprintf("login_attempts:%s", email)
}

// Incr records one failed attempt and returns the failure count inside the
// current window.
func (r *LoginAttemptRepository) Incr(ctx context.Context, email string) (int64, error) {
	key := attemptKey(email)

	count, err := r.client.Incr(ctx, key).Result()
	if err != nil {
		logger.Log.Infow(
			"key", key,
			"result", count,
			"error", err,
		)
		return 0, err
	}

	// First failure in the window starts the TTL clock.
	if count == 1 {
		if err := r.client.Expire(ctx, key, r.window).Err(); err != nil {
			logger.Log.Infow(
				"key", key,
				"result", count,
				"error", err,
			)
			return count, err
		}
	}

	logger.Log.Infow(
		"key", key,
		"result", count,
		"error", nil,
	)

	return count, nil
}

// Reset clears the failure counter after a successful login.
func (r *LoginAttemptRepository) Reset(ctx context.Context, email string) error {
	key := attemptKey(email)
	err := r.client.Del(ctx, key).Err()

	logger.Log.Infow(
		"key", key,
		"error", err,
	)

	return err
}
