package impl

import (
	"context"
	"time"

	"neoauth/internal/domain"
	"neoauth/internal/observability/metrics"
	"neoauth/internal/store"
)

type TwoFactorConfig struct {
	CodeTTL time.Duration // defaults to 10 minutes
}

type TwoFactorServiceImpl struct {
	store *store.Store
	cfg   TwoFactorConfig
	now   func() time.Time
}

func NewTwoFactorServiceImpl(st *store.Store, cfg TwoFactorConfig) *TwoFactorServiceImpl {
	if cfg.CodeTTL <= 0 {
		cfg.CodeTTL = 10 * time.Minute
	}
	return &TwoFactorServiceImpl{store: st, cfg: cfg, now: time.Now}
}

func (t *TwoFactorServiceImpl) Enable(ctx context.Context, userID int64) (string, error) {
	if err := t.requireActive(ctx, userID); err != nil {
		return "", err
	}
	secret, err := newURLSafeToken(32)
	if err != nil {
		return "", err
	}
	if err := t.store.Users().SetTwoFactorSecret(ctx, userID, secret); err != nil {
		return "", err
	}
	return secret, nil
}

func (t *TwoFactorServiceImpl) GenerateCode(ctx context.Context, userID int64) (string, time.Duration, error) {
	if err := t.requireActive(ctx, userID); err != nil {
		return "", 0, err
	}
	code, err := newNumericCode(6)
	if err != nil {
		return "", 0, err
	}
	rec := &domain.TwoFactorCode{
		UserID:    userID,
		Code:      code,
		ExpiresAt: t.now().UTC().Add(t.cfg.CodeTTL),
	}
	if err := t.store.TwoFactorCodes().Create(ctx, rec); err != nil {
		return "", 0, err
	}
	return code, t.cfg.CodeTTL, nil
}

func (t *TwoFactorServiceImpl) Confirm(ctx context.Context, userID int64, code string) error {
	if err := t.requireActive(ctx, userID); err != nil {
		return err
	}
	return t.store.WithTx(ctx, func(tx *store.Store) error {
		if err := tx.TwoFactorCodes().Redeem(ctx, userID, code, t.now().UTC()); err != nil {
			metrics.TwoFactorChecksTotal.WithLabelValues("confirm", "failure").Inc()
			return err
		}
		metrics.TwoFactorChecksTotal.WithLabelValues("confirm", "success").Inc()
		return tx.Users().SetTwoFactorEnabled(ctx, userID, true)
	})
}

func (t *TwoFactorServiceImpl) Verify(ctx context.Context, userID int64, code string) error {
	if err := t.requireActive(ctx, userID); err != nil {
		return err
	}
	if err := t.store.TwoFactorCodes().Redeem(ctx, userID, code, t.now().UTC()); err != nil {
		metrics.TwoFactorChecksTotal.WithLabelValues("verify", "failure").Inc()
		return err
	}
	metrics.TwoFactorChecksTotal.WithLabelValues("verify", "success").Inc()
	return nil
}

func (t *TwoFactorServiceImpl) Disable(ctx context.Context, userID int64) error {
	if err := t.requireActive(ctx, userID); err != nil {
		return err
	}
	return t.store.Users().SetTwoFactorEnabled(ctx, userID, false)
}

func (t *TwoFactorServiceImpl) Status(ctx context.Context, userID int64) (bool, error) {
	user, err := t.store.Users().GetByID(ctx, userID)
	if err != nil {
		return false, err
	}
	return user.TwoFactorEnabled, nil
}

func (t *TwoFactorServiceImpl) requireActive(ctx context.Context, userID int64) error {
	user, err := t.store.Users().GetByID(ctx, userID)
	if err != nil {
		return err
	}
	if !user.IsActive {
		return domain.ErrUserDisabled
	}
	return nil
}
