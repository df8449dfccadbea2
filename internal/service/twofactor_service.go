package service

import (
	"context"
	"time"
)

type TwoFactorService interface {
	// Enable issues fresh secret material for the account. Verification does
	// not consume it; codes from GenerateCode are the proving factor.
	Enable(ctx context.Context, userID int64) (secret string, err error)
	GenerateCode(ctx context.Context, userID int64) (code string, ttl time.Duration, err error)
	// Confirm redeems a code and flips the account's two_factor_enabled flag.
	Confirm(ctx context.Context, userID int64, code string) error
	Verify(ctx context.Context, userID int64, code string) error
	Disable(ctx context.Context, userID int64) error
	Status(ctx context.Context, userID int64) (bool, error)
}
