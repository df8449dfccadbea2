package store

import (
	"context"
	"time"

	"neoauth/internal/domain"

	"gorm.io/gorm"
)

type ResetTokenStore struct{ db *gorm.DB }

func (s *Store) ResetTokens() *ResetTokenStore { return &ResetTokenStore{db: s.DB} }

func (rs *ResetTokenStore) Create(ctx context.Context, t *domain.PasswordResetToken) error {
	return rs.db.WithContext(ctx).Create(t).Error
}

// Redeem flips used=false to true for the row matching token, but only while
// the row is unexpired. The eligibility check and the flip are a single
// conditional UPDATE, so exactly one of any number of concurrent redeemers
// observes a row change. Returns the owning user id on success.
func (rs *ResetTokenStore) Redeem(ctx context.Context, token string, now time.Time) (int64, error) {
	res := rs.db.WithContext(ctx).Model(&domain.PasswordResetToken{}).
		Where("token = ? AND used = ? AND expires_at > ?", token, false, now).
		Update("used", true)
	if res.Error != nil {
		return 0, res.Error
	}
	if res.RowsAffected == 0 {
		return 0, domain.ErrOneTimeInvalid
	}
	var rec domain.PasswordResetToken
	if err := rs.db.WithContext(ctx).First(&rec, "token = ?", token).Error; err != nil {
		return 0, err
	}
	return rec.UserID, nil
}

func (rs *ResetTokenStore) GetByToken(ctx context.Context, token string) (*domain.PasswordResetToken, error) {
	var rec domain.PasswordResetToken
	if err := rs.db.WithContext(ctx).First(&rec, "token = ?", token).Error; err != nil {
		return nil, err
	}
	return &rec, nil
}
