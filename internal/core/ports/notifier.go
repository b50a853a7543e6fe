package ports

import "context"

// Notifier dispatches transactional mail. Implementations carry no retry
// contract; a failed send is reported once and left to the caller.
type Notifier interface {
	Send(ctx context.Context, to, subject, body string) error
}

// RequestThrottle limits how often an OTP may be (re)sent to one address.
type RequestThrottle interface {
	// Allow reports whether a send to email is permitted right now and, when
	// it is, opens the cooldown window.
	Allow(ctx context.Context, email string) (bool, error)
}
