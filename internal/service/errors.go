package service

import (
	"errors"
)

// Expected business failures are returned as sentinel errors so handlers
// can map them to status codes without string matching. Anything else is
// an infrastructure fault and surfaces as a 500.
var (
	// ErrInvalidCredentials covers both unknown email and wrong password,
	// so responses cannot be used to enumerate accounts.
	ErrInvalidCredentials = errors.New("invalid email or password")

	ErrEmailTaken = errors.New("email already registered")

	ErrUserNotFound = errors.New("user not found")

	// ErrSessionRevoked means the token verified cryptographically but is
	// no longer the one on file for the user (logout or newer login).
	ErrSessionRevoked = errors.New("session has been revoked")

	ErrNotFound = errors.New("not found")

	ErrImageLimitReached = errors.New("plant already has the maximum number of images")

	// ErrCodeNotSent is the single caller-visible failure for the
	// forgot-password request, whether the address was unknown or the
	// delivery failed. The distinction lives only in internal logs.
	ErrCodeNotSent = errors.New("could not send recovery code")

	ErrInvalidCode = errors.New("invalid recovery code")
)
