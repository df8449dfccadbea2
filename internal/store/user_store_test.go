package store_test

import (
	"context"
	"errors"
	"testing"

	"neoauth/internal/domain"
)

func TestUserCreateDuplicateEmail(t *testing.T) {
	st := openTestStore(t)
	ctx := context.Background()

	seedUser(t, st, "dup@example.com")

	err := st.Users().Create(ctx, &domain.User{Email: "dup@example.com", PasswordHash: "y"})
	if !errors.Is(err, domain.ErrUserExists) {
		t.Fatalf("expected ErrUserExists, got %v", err)
	}
}

func TestUserGetNotFound(t *testing.T) {
	st := openTestStore(t)
	ctx := context.Background()

	if _, err := st.Users().GetByID(ctx, 12345); !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("GetByID: expected ErrUserNotFound, got %v", err)
	}
	if _, err := st.Users().GetByEmail(ctx, "nobody@example.com"); !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("GetByEmail: expected ErrUserNotFound, got %v", err)
	}
	if _, err := st.Users().GetByOAuth(ctx, "google", "g-1"); !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("GetByOAuth: expected ErrUserNotFound, got %v", err)
	}
}

func TestUserUpdateProfileReturnsFreshRow(t *testing.T) {
	st := openTestStore(t)
	ctx := context.Background()

	u := seedUser(t, st, "p@example.com")

	updated, err := st.Users().UpdateProfile(ctx, u.ID, "First", "Last", "https://cdn.test/x.png")
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.FirstName != "First" || updated.LastName != "Last" || updated.AvatarURL != "https://cdn.test/x.png" {
		t.Fatalf("stale row returned: %+v", updated)
	}

	if _, err := st.Users().UpdateProfile(ctx, 9999, "a", "b", "c"); !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestUserDisableClearsNothingElse(t *testing.T) {
	st := openTestStore(t)
	ctx := context.Background()

	u := seedUser(t, st, "d@example.com")
	if err := st.Users().SetTwoFactorSecret(ctx, u.ID, "secret-material"); err != nil {
		t.Fatalf("set secret: %v", err)
	}

	got, err := st.Users().SetActive(ctx, u.ID, false)
	if err != nil {
		t.Fatalf("set active: %v", err)
	}
	if got.IsActive {
		t.Fatal("user still active")
	}
	if got.TwoFactorSecret != "secret-material" {
		t.Fatal("deactivation must not touch 2fa state")
	}
}

func TestUserTwoFactorDisableClearsSecret(t *testing.T) {
	st := openTestStore(t)
	ctx := context.Background()

	u := seedUser(t, st, "tf@example.com")
	if err := st.Users().SetTwoFactorSecret(ctx, u.ID, "secret-material"); err != nil {
		t.Fatalf("set secret: %v", err)
	}
	if err := st.Users().SetTwoFactorEnabled(ctx, u.ID, true); err != nil {
		t.Fatalf("enable: %v", err)
	}
	if err := st.Users().SetTwoFactorEnabled(ctx, u.ID, false); err != nil {
		t.Fatalf("disable: %v", err)
	}

	got, err := st.Users().GetByID(ctx, u.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.TwoFactorEnabled || got.TwoFactorSecret != "" {
		t.Fatalf("disable should clear secret, got enabled=%v secret=%q", got.TwoFactorEnabled, got.TwoFactorSecret)
	}
}
