package ports

import (
	"context"
	"time"

	"github.com/wattline/energy-tracker/internal/core/domain"
)

// IdentityRepository defines persistence operations for user identities.
type IdentityRepository interface {
	// UpsertOTP creates the identity for the given email or, when it already
	// exists, overwrites name, OTP and expiry (re-arming any pending code).
	// The stored identity is returned.
	UpsertOTP(ctx context.Context, identity *domain.Identity) (*domain.Identity, error)

	FindByEmail(ctx context.Context, email string) (*domain.Identity, error)

	// ConsumeOTP atomically clears the OTP fields of the identity matching
	// email whose stored code equals otp and whose expiry has not passed at
	// instant now. It returns the identity on success and
	// domain.ErrInvalidOTP when no record matched, so two concurrent
	// verifications of the same code cannot both succeed.
	ConsumeOTP(ctx context.Context, email, otp string, now time.Time) (*domain.Identity, error)
}
