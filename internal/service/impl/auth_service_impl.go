package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"neoauth/internal/domain"
	"neoauth/internal/dto"
	"neoauth/internal/notify"
	"neoauth/internal/observability/metrics"
	"neoauth/internal/service"
	"neoauth/internal/store"
)

type AuthConfig struct {
	ResetTokenTTL time.Duration // defaults to 1 hour
	AppURL        string        // base URL used in notification links
}

type AuthServiceImpl struct {
	store    *store.Store
	password service.PasswordService
	tokens   service.TokenService
	notifier notify.Sender
	cfg      AuthConfig
	now      func() time.Time
}

func NewAuthServiceImpl(st *store.Store, pw service.PasswordService, ts service.TokenService, notifier notify.Sender, cfg AuthConfig) *AuthServiceImpl {
	if cfg.ResetTokenTTL <= 0 {
		cfg.ResetTokenTTL = time.Hour
	}
	return &AuthServiceImpl{
		store:    st,
		password: pw,
		tokens:   ts,
		notifier: notifier,
		cfg:      cfg,
		now:      time.Now,
	}
}

func (a *AuthServiceImpl) Register(ctx context.Context, r dto.RegisterRequest, ip string) (*dto.AuthResponse, error) {
	result := "success"
	defer func() { metrics.AuthRegistrationsTotal.WithLabelValues(result).Inc() }()

	hash, err := a.password.Hash(r.Password)
	if err != nil {
		result = "failure"
		return nil, err
	}

	user := &domain.User{
		Email:        strings.ToLower(strings.TrimSpace(r.Email)),
		PasswordHash: hash,
		FirstName:    r.FirstName,
		LastName:     r.LastName,
		Role:         domain.RoleUser,
		IsActive:     true,
	}
	err = a.store.WithTx(ctx, func(tx *store.Store) error {
		// Duplicate emails surface from the unique index, not from a
		// check-then-insert, so concurrent registrations cannot both win.
		if err := tx.Users().Create(ctx, user); err != nil {
			return err
		}
		return tx.Activity().Append(ctx, user.ID, "register", ip)
	})
	if err != nil {
		result = "failure"
		return nil, err
	}

	token, err := a.tokens.Issue(user.ID, user.Email)
	if err != nil {
		result = "failure"
		return nil, err
	}

	a.dispatch(notify.KindWelcome, user.Email, map[string]string{
		"name":    user.FirstName,
		"app_url": a.cfg.AppURL,
	})

	return &dto.AuthResponse{Token: token, User: profileOf(user, false)}, nil
}

func (a *AuthServiceImpl) Login(ctx context.Context, r dto.LoginRequest, ip string) (*dto.AuthResponse, error) {
	result := "success"
	defer func() { metrics.AuthLoginsTotal.WithLabelValues(result).Inc() }()

	user, err := a.store.Users().GetByEmail(ctx, strings.ToLower(strings.TrimSpace(r.Email)))
	if err != nil {
		result = "failure"
		// Same error as a bad password: don't reveal which part failed.
		return nil, domain.ErrInvalidCredentials
	}
	if !user.IsActive || !a.password.Verify(r.Password, user.PasswordHash) {
		result = "failure"
		return nil, domain.ErrInvalidCredentials
	}

	token, err := a.tokens.Issue(user.ID, user.Email)
	if err != nil {
		result = "failure"
		return nil, err
	}

	if err := a.store.Activity().Append(ctx, user.ID, "login", ip); err != nil {
		slog.Warn("activity log append failed", "user_id", user.ID, "error", err)
	}

	return &dto.AuthResponse{Token: token, User: profileOf(user, false)}, nil
}

func (a *AuthServiceImpl) Profile(ctx context.Context, userID int64) (*dto.UserProfile, error) {
	user, err := a.store.Users().GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	p := profileOf(user, true)
	return &p, nil
}

func (a *AuthServiceImpl) UpdateProfile(ctx context.Context, userID int64, r dto.ProfileUpdateRequest) (*dto.UserProfile, error) {
	current, err := a.store.Users().GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !current.IsActive {
		return nil, domain.ErrUserDisabled
	}
	user, err := a.store.Users().UpdateProfile(ctx, userID, r.FirstName, r.LastName, r.AvatarURL)
	if err != nil {
		return nil, err
	}
	p := profileOf(user, false)
	return &p, nil
}

func (a *AuthServiceImpl) RequestPasswordReset(ctx context.Context, email string) (*dto.ResetRequestResponse, error) {
	user, err := a.store.Users().GetByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		// Success-shaped answer for unknown emails: no account enumeration.
		return &dto.ResetRequestResponse{Message: "If email exists, reset link sent"}, nil
	}

	token, err := newURLSafeToken(32)
	if err != nil {
		return nil, err
	}
	rec := &domain.PasswordResetToken{
		UserID:    user.ID,
		Token:     token,
		ExpiresAt: a.now().UTC().Add(a.cfg.ResetTokenTTL),
	}
	if err := a.store.ResetTokens().Create(ctx, rec); err != nil {
		return nil, err
	}
	metrics.PasswordResetsTotal.WithLabelValues("requested").Inc()

	a.dispatch(notify.KindPasswordReset, user.Email, map[string]string{
		"reset_url":   a.cfg.AppURL + "/reset-password",
		"reset_token": token,
	})

	return &dto.ResetRequestResponse{Message: "Reset link sent", ResetToken: token}, nil
}

func (a *AuthServiceImpl) ResetPassword(ctx context.Context, token, newPassword string) error {
	hash, err := a.password.Hash(newPassword)
	if err != nil {
		return err
	}

	var email string
	err = a.store.WithTx(ctx, func(tx *store.Store) error {
		userID, err := tx.ResetTokens().Redeem(ctx, token, a.now().UTC())
		if err != nil {
			return err
		}
		user, err := tx.Users().GetByID(ctx, userID)
		if err != nil {
			return err
		}
		email = user.Email
		return tx.Users().UpdatePassword(ctx, userID, hash)
	})
	if err != nil {
		metrics.PasswordResetsTotal.WithLabelValues("rejected").Inc()
		return err
	}
	metrics.PasswordResetsTotal.WithLabelValues("completed").Inc()

	a.dispatch(notify.KindPasswordChanged, email, nil)
	return nil
}

// dispatch is fire-and-forget: notification failures are logged and never
// fail the request that triggered them.
func (a *AuthServiceImpl) dispatch(kind notify.Kind, to string, data map[string]string) {
	if a.notifier == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	go func() {
		defer cancel()
		if err := a.notifier.Send(ctx, kind, to, data); err != nil {
			slog.Warn("notification send failed", "kind", string(kind), "to", to, "error", err)
		}
	}()
}

func profileOf(u *domain.User, withCreatedAt bool) dto.UserProfile {
	p := dto.UserProfile{
		ID:        u.ID,
		Email:     u.Email,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		AvatarURL: u.AvatarURL,
	}
	if withCreatedAt {
		created := u.CreatedAt
		p.CreatedAt = &created
	}
	return p
}
