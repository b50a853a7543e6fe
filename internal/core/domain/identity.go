package domain

import (
	"errors"
	"time"
)

var ErrInvalidInput = errors.New("invalid input")
var ErrIdentityNotFound = errors.New("identity not found")
var ErrInvalidOTP = errors.New("invalid or expired otp")
var ErrOTPThrottled = errors.New("otp recently requested")
var ErrApplianceNotFound = errors.New("appliance not found")
var ErrForbidden = errors.New("access forbidden")
var ErrNotifierFailed = errors.New("otp dispatch failed")

// Identity models a user known by email. An identity is created the first
// time an OTP is requested for its address; it is never deleted.
//
// OTP and OTPExpiresAt are set and cleared together: both non-nil while a
// passcode is pending, both nil otherwise.
type Identity struct {
	ID           string     `json:"id" bson:"_id,omitempty"`
	Name         string     `json:"name" bson:"name"`
	Email        string     `json:"email" bson:"email"`
	OTP          *string    `json:"-" bson:"otp,omitempty"`
	OTPExpiresAt *time.Time `json:"-" bson:"otp_expires_at,omitempty"`
	CreatedAt    time.Time  `json:"created_at" bson:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at" bson:"updated_at"`
}

// HasPendingOTP reports whether a passcode is currently armed.
func (i *Identity) HasPendingOTP() bool {
	return i.OTP != nil && i.OTPExpiresAt != nil
}

// OTPValidAt reports whether the pending passcode matches candidate and is
// still within its window at instant t. The expiry instant itself is valid.
func (i *Identity) OTPValidAt(candidate string, t time.Time) bool {
	if !i.HasPendingOTP() {
		return false
	}
	if *i.OTP != candidate {
		return false
	}
	return !t.After(*i.OTPExpiresAt)
}
