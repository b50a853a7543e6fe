package ports

import "context"

// VerifyResult is returned by VerifyOTP on success.
type VerifyResult struct {
	Token  string
	UserID string
	Name   string
	Email  string
}

// AuthService defines the OTP login use cases.
type AuthService interface {
	// RequestOTP arms a fresh passcode for the (possibly new) identity and
	// dispatches it by email.
	RequestOTP(ctx context.Context, name, email string) error

	// VerifyOTP consumes a pending passcode and issues a session token.
	VerifyOTP(ctx context.Context, email, otp string) (*VerifyResult, error)
}
