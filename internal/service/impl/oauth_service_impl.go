package impl

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"neoauth/internal/domain"
	"neoauth/internal/dto"
	"neoauth/internal/service"
	"neoauth/internal/store"

	"github.com/google/uuid"
	"golang.org/x/oauth2"
	oauthgithub "golang.org/x/oauth2/github"
	oauthgoogle "golang.org/x/oauth2/google"
)

const (
	ProviderGoogle = "google"
	ProviderGitHub = "github"

	googleUserInfoURL = "https://www.googleapis.com/oauth2/v2/userinfo"
	githubUserInfoURL = "https://api.github.com/user"
)

type OAuthConfig struct {
	GoogleClientID     string
	GoogleClientSecret string
	GitHubClientID     string
	GitHubClientSecret string
}

// OAuthServiceImpl federates login with Google and GitHub. A successful
// callback finds or creates the local account keyed by (provider, oauth id)
// and mints a regular session token for it.
type OAuthServiceImpl struct {
	cfg    OAuthConfig
	store  *store.Store
	tokens service.TokenService
}

func NewOAuthServiceImpl(cfg OAuthConfig, st *store.Store, ts service.TokenService) *OAuthServiceImpl {
	return &OAuthServiceImpl{cfg: cfg, store: st, tokens: ts}
}

func (o *OAuthServiceImpl) providerConfig(provider, callbackURL string) (*oauth2.Config, error) {
	switch provider {
	case ProviderGoogle:
		return &oauth2.Config{
			ClientID:     o.cfg.GoogleClientID,
			ClientSecret: o.cfg.GoogleClientSecret,
			RedirectURL:  callbackURL,
			Scopes: []string{
				"https://www.googleapis.com/auth/userinfo.email",
				"https://www.googleapis.com/auth/userinfo.profile",
			},
			Endpoint: oauthgoogle.Endpoint,
		}, nil
	case ProviderGitHub:
		return &oauth2.Config{
			ClientID:     o.cfg.GitHubClientID,
			ClientSecret: o.cfg.GitHubClientSecret,
			RedirectURL:  callbackURL,
			Scopes:       []string{"user:email"},
			Endpoint:     oauthgithub.Endpoint,
		}, nil
	}
	return nil, domain.ErrInvalidProvider
}

func (o *OAuthServiceImpl) AuthURL(provider, callbackURL string) (string, error) {
	cfg, err := o.providerConfig(provider, callbackURL)
	if err != nil {
		return "", err
	}
	state := uuid.NewString()
	if provider == ProviderGoogle {
		return cfg.AuthCodeURL(state, oauth2.AccessTypeOffline), nil
	}
	return cfg.AuthCodeURL(state), nil
}

// providerProfile is the subset of the provider's user record we keep.
type providerProfile struct {
	OAuthID   string
	Email     string
	FirstName string
	LastName  string
	AvatarURL string
}

func (o *OAuthServiceImpl) Callback(ctx context.Context, provider, code, callbackURL, ip string) (*dto.AuthResponse, error) {
	cfg, err := o.providerConfig(provider, callbackURL)
	if err != nil {
		return nil, err
	}
	tok, err := cfg.Exchange(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("%s code exchange: %w", provider, err)
	}

	var profile providerProfile
	switch provider {
	case ProviderGoogle:
		profile, err = fetchGoogleProfile(ctx, cfg.Client(ctx, tok))
	case ProviderGitHub:
		profile, err = fetchGitHubProfile(ctx, cfg.Client(ctx, tok))
	}
	if err != nil {
		return nil, err
	}

	user, err := o.store.Users().GetByOAuth(ctx, provider, profile.OAuthID)
	if err == nil {
		return o.respond(ctx, user, ip)
	}
	if !errors.Is(err, domain.ErrUserNotFound) {
		return nil, err
	}

	user = &domain.User{
		Email:         profile.Email,
		FirstName:     profile.FirstName,
		LastName:      profile.LastName,
		AvatarURL:     profile.AvatarURL,
		Role:          domain.RoleUser,
		IsActive:      true,
		OAuthProvider: provider,
		OAuthID:       profile.OAuthID,
	}
	if err := o.store.Users().Create(ctx, user); err != nil {
		return nil, err
	}
	return o.respond(ctx, user, ip)
}

func (o *OAuthServiceImpl) respond(ctx context.Context, user *domain.User, ip string) (*dto.AuthResponse, error) {
	token, err := o.tokens.Issue(user.ID, user.Email)
	if err != nil {
		return nil, err
	}
	_ = o.store.Activity().Append(ctx, user.ID, "oauth_login", ip)
	return &dto.AuthResponse{Token: token, User: profileOf(user, false)}, nil
}

func fetchGoogleProfile(ctx context.Context, client *http.Client) (providerProfile, error) {
	var raw struct {
		ID         string `json:"id"`
		Email      string `json:"email"`
		GivenName  string `json:"given_name"`
		FamilyName string `json:"family_name"`
		Picture    string `json:"picture"`
	}
	if err := fetchJSON(ctx, client, googleUserInfoURL, &raw); err != nil {
		return providerProfile{}, err
	}
	return providerProfile{
		OAuthID:   raw.ID,
		Email:     raw.Email,
		FirstName: raw.GivenName,
		LastName:  raw.FamilyName,
		AvatarURL: raw.Picture,
	}, nil
}

func fetchGitHubProfile(ctx context.Context, client *http.Client) (providerProfile, error) {
	var raw struct {
		ID        int64  `json:"id"`
		Login     string `json:"login"`
		Name      string `json:"name"`
		Email     string `json:"email"`
		AvatarURL string `json:"avatar_url"`
	}
	if err := fetchJSON(ctx, client, githubUserInfoURL, &raw); err != nil {
		return providerProfile{}, err
	}

	id := fmt.Sprintf("%d", raw.ID)
	email := raw.Email
	if email == "" {
		// GitHub hides the email unless it is public; keep a stable synthetic
		// address so the unique constraint still holds.
		email = fmt.Sprintf("github_%s@oauth.local", id)
	}
	first := raw.Login
	last := ""
	if raw.Name != "" {
		parts := strings.SplitN(raw.Name, " ", 2)
		first = parts[0]
		if len(parts) > 1 {
			last = parts[1]
		}
	}
	return providerProfile{
		OAuthID:   id,
		Email:     email,
		FirstName: first,
		LastName:  last,
		AvatarURL: raw.AvatarURL,
	}, nil
}

func fetchJSON(ctx context.Context, client *http.Client, url string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")
	resp, err := client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("userinfo %s: status %d: %s", url, resp.StatusCode, body)
	}
	return json.NewDecoder(resp.Body).Decode(out)
}
