package store

import (
	"context"
	"time"

	"neoauth/internal/domain"

	"gorm.io/gorm"
)

type TwoFactorCodeStore struct{ db *gorm.DB }

func (s *Store) TwoFactorCodes() *TwoFactorCodeStore { return &TwoFactorCodeStore{db: s.DB} }

func (cs *TwoFactorCodeStore) Create(ctx context.Context, c *domain.TwoFactorCode) error {
	return cs.db.WithContext(ctx).Create(c).Error
}

// Redeem consumes an unused, unexpired code for the given user via a single
// conditional UPDATE. Codes are not unique, so the match is scoped by
// (user_id, code); zero rows affected means wrong, spent or expired, and the
// caller gets the same error for all three.
func (cs *TwoFactorCodeStore) Redeem(ctx context.Context, userID int64, code string, now time.Time) error {
	res := cs.db.WithContext(ctx).Model(&domain.TwoFactorCode{}).
		Where("user_id = ? AND code = ? AND used = ? AND expires_at > ?", userID, code, false, now).
		Update("used", true)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrOneTimeInvalid
	}
	return nil
}
