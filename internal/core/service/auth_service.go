package service

import (
	"context"
	"crypto/rand"
	"fmt"
	"math/big"
	"net/mail"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/wattline/energy-tracker/internal/api/metrics"
	"github.com/wattline/energy-tracker/internal/core/domain"
	"github.com/wattline/energy-tracker/internal/core/ports"
)

const otpDigits = 4

// AuthService implements the OTP login flow: it arms passcodes, dispatches
// them by mail, and exchanges a verified passcode for a session token.
type AuthService struct {
	repo      ports.IdentityRepository
	notifier  ports.Notifier
	throttle  ports.RequestThrottle
	jwtSecret string
	tokenTTL  time.Duration
	otpTTL    time.Duration
	log       zerolog.Logger
}

func NewAuthService(
	repo ports.IdentityRepository,
	notifier ports.Notifier,
	throttle ports.RequestThrottle,
	jwtSecret string,
	tokenTTL, otpTTL time.Duration,
	log zerolog.Logger,
) *AuthService {
	if tokenTTL <= 0 {
		tokenTTL = 7 * 24 * time.Hour
	}
	if otpTTL <= 0 {
		otpTTL = 10 * time.Minute
	}
	return &AuthService{
		repo:      repo,
		notifier:  notifier,
		throttle:  throttle,
		jwtSecret: jwtSecret,
		tokenTTL:  tokenTTL,
		otpTTL:    otpTTL,
		log:       log,
	}
}

// RequestOTP upserts the identity keyed by normalized email with a freshly
// generated passcode and mails it out. Calling it again while a code is
// pending overwrites the old code. The upsert is deliberately not rolled
// back when the mail dispatch fails.
func (s *AuthService) RequestOTP(ctx context.Context, name, email string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		metrics.OTPRequestsTotal.WithLabelValues("invalid").Inc()
		return fmt.Errorf("%w: name must not be empty", domain.ErrInvalidInput)
	}
	normalized, err := normalizeEmail(email)
	if err != nil {
		metrics.OTPRequestsTotal.WithLabelValues("invalid").Inc()
		return err
	}

	if s.throttle != nil {
		allowed, err := s.throttle.Allow(ctx, normalized)
		if err != nil {
			s.log.Warn().Err(err).Str("email", normalized).Msg("throttle check failed, proceeding")
		} else if !allowed {
			metrics.OTPRequestsTotal.WithLabelValues("throttled").Inc()
			return domain.ErrOTPThrottled
		}
	}

	now := time.Now().UTC()
	code := generateOTP()
	expiresAt := now.Add(s.otpTTL)

	identity := &domain.Identity{
		ID:           uuid.NewString(),
		Name:         name,
		Email:        normalized,
		OTP:          &code,
		OTPExpiresAt: &expiresAt,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if _, err := s.repo.UpsertOTP(ctx, identity); err != nil {
		metrics.OTPRequestsTotal.WithLabelValues("store_error").Inc()
		s.log.Error().Err(err).Str("email", normalized).Msg("failed to upsert identity")
		return fmt.Errorf("request otp: %w", err)
	}

	subject := "Your login code"
	body := fmt.Sprintf("Hi %s,\n\nYour login code is %s. It expires in %d minutes.\n", name, code, int(s.otpTTL.Minutes()))
	if err := s.notifier.Send(ctx, normalized, subject, body); err != nil {
		// The identity (with its armed code) stays; only the dispatch failed.
		metrics.OTPRequestsTotal.WithLabelValues("dispatch_error").Inc()
		s.log.Error().Err(err).Str("email", normalized).Msg("otp dispatch failed")
		return fmt.Errorf("request otp: %w", domain.ErrNotifierFailed)
	}

	metrics.OTPRequestsTotal.WithLabelValues("ok").Inc()
	s.log.Info().Str("email", normalized).Time("expires_at", expiresAt).Msg("otp requested")
	return nil
}

// VerifyOTP checks the candidate code and, on a match, clears it and issues
// a session token. The check-and-clear runs as one conditional update in the
// repository, so a concurrent second verification of the same code loses.
func (s *AuthService) VerifyOTP(ctx context.Context, email, otp string) (*ports.VerifyResult, error) {
	normalized, err := normalizeEmail(email)
	if err != nil {
		return nil, err
	}
	if len(otp) < 3 {
		return nil, fmt.Errorf("%w: otp too short", domain.ErrInvalidInput)
	}

	identity, err := s.repo.FindByEmail(ctx, normalized)
	if err != nil {
		metrics.OTPVerificationsTotal.WithLabelValues("unknown_email").Inc()
		return nil, err
	}

	now := time.Now().UTC()
	if !identity.OTPValidAt(otp, now) {
		metrics.OTPVerificationsTotal.WithLabelValues("invalid").Inc()
		return nil, domain.ErrInvalidOTP
	}

	consumed, err := s.repo.ConsumeOTP(ctx, normalized, otp, now)
	if err != nil {
		// Lost the race against another verification, or the code expired
		// between the read and the conditional clear.
		metrics.OTPVerificationsTotal.WithLabelValues("invalid").Inc()
		return nil, err
	}

	token, err := s.generateToken(consumed)
	if err != nil {
		return nil, fmt.Errorf("verify otp: sign token: %w", err)
	}

	metrics.OTPVerificationsTotal.WithLabelValues("ok").Inc()
	s.log.Info().Str("email", normalized).Str("user_id", consumed.ID).Msg("otp verified")

	return &ports.VerifyResult{
		Token:  token,
		UserID: consumed.ID,
		Name:   consumed.Name,
		Email:  consumed.Email,
	}, nil
}

func (s *AuthService) generateToken(identity *domain.Identity) (string, error) {
	claims := jwt.MapClaims{
		"sub":   identity.ID,
		"email": identity.Email,
		"exp":   time.Now().Add(s.tokenTTL).Unix(),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(s.jwtSecret))
}

// normalizeEmail trims, lowercases and syntax-checks an address. Identities
// are keyed by the normalized form.
func normalizeEmail(email string) (string, error) {
	normalized := strings.ToLower(strings.TrimSpace(email))
	if _, err := mail.ParseAddress(normalized); err != nil {
		return "", fmt.Errorf("%w: malformed email", domain.ErrInvalidInput)
	}
	return normalized, nil
}

// generateOTP returns a uniformly random fixed-length numeric code.
func generateOTP() string {
	max := big.NewInt(1)
	for i := 0; i < otpDigits; i++ {
		max.Mul(max, big.NewInt(10))
	}
	n, err := rand.Int(rand.Reader, max)
	if err != nil {
		// fallback: derive from current nanoseconds
		return fmt.Sprintf("%0*d", otpDigits, time.Now().UnixNano()%max.Int64())
	}
	return fmt.Sprintf("%0*d", otpDigits, n)
}
