package domain

import "time"

// PasswordResetToken is a one-row-per-issuance record. The token value is
// globally unique; a row is consumable at most once and only before expiry.
type PasswordResetToken struct {
	ID        int64     `gorm:"primaryKey" db:"id"`
	UserID    int64     `gorm:"index;not null" db:"user_id"`
	Token     string    `gorm:"uniqueIndex:ux_reset_tokens_token;not null" db:"token"`
	ExpiresAt time.Time `gorm:"not null" db:"expires_at"`
	Used      bool      `gorm:"not null;default:false" db:"used"`
	CreatedAt time.Time `gorm:"not null" db:"created_at"`
}

func (PasswordResetToken) TableName() string { return "password_reset_tokens" }

// TwoFactorCode is a one-row-per-issuance record. Codes are six digits and
// not unique, so lookups are always scoped by user.
type TwoFactorCode struct {
	ID        int64     `gorm:"primaryKey" db:"id"`
	UserID    int64     `gorm:"index;not null" db:"user_id"`
	Code      string    `gorm:"not null" db:"code"`
	ExpiresAt time.Time `gorm:"not null" db:"expires_at"`
	Used      bool      `gorm:"not null;default:false" db:"used"`
	CreatedAt time.Time `gorm:"not null" db:"created_at"`
}

func (TwoFactorCode) TableName() string { return "two_factor_codes" }
