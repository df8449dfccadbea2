package domain

import "errors"

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserExists         = errors.New("user already exists")
	ErrUserNotFound       = errors.New("user not found")
	ErrUserDisabled       = errors.New("user disabled")
	ErrInvalidRole        = errors.New("invalid role")
	ErrInvalidProvider    = errors.New("invalid provider")

	// ErrOneTimeInvalid covers every redemption failure (unknown value,
	// already used, expired) so callers cannot tell the cases apart.
	ErrOneTimeInvalid = errors.New("invalid or expired")
)
