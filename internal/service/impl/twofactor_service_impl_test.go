package impl

import (
	"context"
	"errors"
	"testing"
	"time"

	"neoauth/internal/domain"
	"neoauth/internal/store"
)

func newTestTwoFactorService(t *testing.T) (*TwoFactorServiceImpl, *store.Store, int64) {
	t.Helper()
	st := openTestStore(t)

	user := &domain.User{Email: "tf@example.com", PasswordHash: "x", Role: domain.RoleUser, IsActive: true}
	if err := st.Users().Create(context.Background(), user); err != nil {
		t.Fatalf("seed user: %v", err)
	}

	return NewTwoFactorServiceImpl(st, TwoFactorConfig{}), st, user.ID
}

func TestTwoFactorEnableStoresSecret(t *testing.T) {
	svc, st, userID := newTestTwoFactorService(t)
	ctx := context.Background()

	secret, err := svc.Enable(ctx, userID)
	if err != nil {
		t.Fatalf("enable: %v", err)
	}
	if secret == "" {
		t.Fatal("enable returned an empty secret")
	}

	user, err := st.Users().GetByID(ctx, userID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if user.TwoFactorSecret != secret {
		t.Fatal("secret not persisted on the user")
	}
	if user.TwoFactorEnabled {
		t.Fatal("enable alone must not flip the enabled flag")
	}
}

func TestTwoFactorCodeLifecycle(t *testing.T) {
	svc, _, userID := newTestTwoFactorService(t)
	ctx := context.Background()

	code, ttl, err := svc.GenerateCode(ctx, userID)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if len(code) != 6 {
		t.Fatalf("expected a 6-digit code, got %q", code)
	}
	for _, c := range code {
		if c < '0' || c > '9' {
			t.Fatalf("non-digit in code %q", code)
		}
	}
	if ttl != 10*time.Minute {
		t.Fatalf("expected a 10 minute ttl, got %v", ttl)
	}

	if err := svc.Verify(ctx, userID, code); err != nil {
		t.Fatalf("verify: %v", err)
	}
	// One-time: the same code cannot be redeemed twice.
	if err := svc.Verify(ctx, userID, code); !errors.Is(err, domain.ErrOneTimeInvalid) {
		t.Fatalf("second verify: expected ErrOneTimeInvalid, got %v", err)
	}

	if err := svc.Verify(ctx, userID, "000000"); !errors.Is(err, domain.ErrOneTimeInvalid) {
		t.Fatalf("wrong code: expected ErrOneTimeInvalid, got %v", err)
	}
}

func TestTwoFactorConfirmFlipsFlag(t *testing.T) {
	svc, st, userID := newTestTwoFactorService(t)
	ctx := context.Background()

	if _, err := svc.Enable(ctx, userID); err != nil {
		t.Fatalf("enable: %v", err)
	}
	code, _, err := svc.GenerateCode(ctx, userID)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if err := svc.Confirm(ctx, userID, code); err != nil {
		t.Fatalf("confirm: %v", err)
	}

	enabled, err := svc.Status(ctx, userID)
	if err != nil {
		t.Fatalf("status: %v", err)
	}
	if !enabled {
		t.Fatal("confirm did not enable 2fa")
	}

	if err := svc.Disable(ctx, userID); err != nil {
		t.Fatalf("disable: %v", err)
	}
	user, err := st.Users().GetByID(ctx, userID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if user.TwoFactorEnabled || user.TwoFactorSecret != "" {
		t.Fatalf("disable should clear flag and secret, got enabled=%v secret=%q", user.TwoFactorEnabled, user.TwoFactorSecret)
	}
}

func TestTwoFactorExpiredCode(t *testing.T) {
	svc, _, userID := newTestTwoFactorService(t)
	ctx := context.Background()

	issued := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return issued }
	code, _, err := svc.GenerateCode(ctx, userID)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	svc.now = func() time.Time { return issued.Add(10*time.Minute + time.Second) }
	if err := svc.Verify(ctx, userID, code); !errors.Is(err, domain.ErrOneTimeInvalid) {
		t.Fatalf("expired code: expected ErrOneTimeInvalid, got %v", err)
	}
}

func TestTwoFactorCodesScopedPerUser(t *testing.T) {
	svc, st, userID := newTestTwoFactorService(t)
	ctx := context.Background()

	other := &domain.User{Email: "other@example.com", PasswordHash: "x", Role: domain.RoleUser, IsActive: true}
	if err := st.Users().Create(ctx, other); err != nil {
		t.Fatalf("seed other: %v", err)
	}

	code, _, err := svc.GenerateCode(ctx, userID)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if err := svc.Verify(ctx, other.ID, code); !errors.Is(err, domain.ErrOneTimeInvalid) {
		t.Fatalf("code redeemed by the wrong user, err=%v", err)
	}
	if err := svc.Verify(ctx, userID, code); err != nil {
		t.Fatalf("owner redemption after foreign attempt: %v", err)
	}
}

func TestTwoFactorDisabledAccount(t *testing.T) {
	svc, st, userID := newTestTwoFactorService(t)
	ctx := context.Background()

	if _, err := st.Users().SetActive(ctx, userID, false); err != nil {
		t.Fatalf("deactivate: %v", err)
	}
	if _, err := svc.Enable(ctx, userID); !errors.Is(err, domain.ErrUserDisabled) {
		t.Fatalf("enable on disabled account: expected ErrUserDisabled, got %v", err)
	}
	if _, _, err := svc.GenerateCode(ctx, userID); !errors.Is(err, domain.ErrUserDisabled) {
		t.Fatalf("generate on disabled account: expected ErrUserDisabled, got %v", err)
	}
	if err := svc.Verify(ctx, userID, "123456"); !errors.Is(err, domain.ErrUserDisabled) {
		t.Fatalf("verify on disabled account: expected ErrUserDisabled, got %v", err)
	}
}
