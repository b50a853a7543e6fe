package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// ResendThrottle limits how often an OTP may be requested for one address,
// backed by Redis. Key format: otp_sent:<email>
type ResendThrottle struct {
	client   *redis.Client
	cooldown time.Duration
}

// NewResendThrottle creates a ResendThrottle wrapping the given Redis client.
// A cooldown of zero (or less) disables throttling.
func NewResendThrottle(client *redis.Client, cooldown time.Duration) *ResendThrottle {
	return &ResendThrottle{client: client, cooldown: cooldown}
}

// Allow reports whether a send to email is permitted right now. The first
// caller inside a window wins and opens the cooldown; SET NX makes the
// check-and-open a single operation.
func (t *ResendThrottle) Allow(ctx context.Context, email string) (bool, error) {
	if t.cooldown <= 0 {
		return true, nil
	}

	ok, err := t.client.SetNX(ctx, t.key(email), "1", t.cooldown).Result()
	if err != nil {
		return false, fmt.Errorf("throttle check: %w", err)
	}
	return ok, nil
}

func (t *ResendThrottle) key(email string) string {
	return fmt.Sprintf("otp_sent:%s", email)
}
