package impl

import (
	"context"
	"errors"
	"net/url"
	"strings"
	"testing"
	"time"

	"neoauth/internal/domain"
)

func newTestOAuthService(t *testing.T) *OAuthServiceImpl {
	t.Helper()
	st := openTestStore(t)
	return NewOAuthServiceImpl(OAuthConfig{
		GoogleClientID:     "google-client",
		GoogleClientSecret: "google-secret",
		GitHubClientID:     "github-client",
		GitHubClientSecret: "github-secret",
	}, st, newTestTokenService(time.Now()))
}

func TestOAuthAuthURLGoogle(t *testing.T) {
	svc := newTestOAuthService(t)

	raw, err := svc.AuthURL(ProviderGoogle, "http://app.test/callback")
	if err != nil {
		t.Fatalf("auth url: %v", err)
	}
	u, err := url.Parse(raw)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	q := u.Query()
	if u.Host != "accounts.google.com" {
		t.Fatalf("unexpected host %q", u.Host)
	}
	if q.Get("client_id") != "google-client" {
		t.Fatalf("client_id = %q", q.Get("client_id"))
	}
	if q.Get("redirect_uri") != "http://app.test/callback" {
		t.Fatalf("redirect_uri = %q", q.Get("redirect_uri"))
	}
	if q.Get("state") == "" {
		t.Fatal("missing state parameter")
	}
	if q.Get("access_type") != "offline" {
		t.Fatalf("access_type = %q", q.Get("access_type"))
	}
	if scope := q.Get("scope"); !strings.Contains(scope, "userinfo.email") || !strings.Contains(scope, "userinfo.profile") {
		t.Fatalf("scope = %q", scope)
	}
}

func TestOAuthAuthURLGitHub(t *testing.T) {
	svc := newTestOAuthService(t)

	raw, err := svc.AuthURL(ProviderGitHub, "http://app.test/callback")
	if err != nil {
		t.Fatalf("auth url: %v", err)
	}
	u, err := url.Parse(raw)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if u.Host != "github.com" {
		t.Fatalf("unexpected host %q", u.Host)
	}
	q := u.Query()
	if q.Get("client_id") != "github-client" {
		t.Fatalf("client_id = %q", q.Get("client_id"))
	}
	if q.Get("scope") != "user:email" {
		t.Fatalf("scope = %q", q.Get("scope"))
	}
}

func TestOAuthUnknownProvider(t *testing.T) {
	svc := newTestOAuthService(t)

	if _, err := svc.AuthURL("gitlab", "http://app.test/callback"); !errors.Is(err, domain.ErrInvalidProvider) {
		t.Fatalf("auth url: expected ErrInvalidProvider, got %v", err)
	}
	if _, err := svc.Callback(context.Background(), "gitlab", "code", "http://app.test/callback", ""); !errors.Is(err, domain.ErrInvalidProvider) {
		t.Fatalf("callback: expected ErrInvalidProvider, got %v", err)
	}
}
