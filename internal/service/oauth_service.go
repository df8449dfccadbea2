package service

import (
	"context"

	"neoauth/internal/dto"
)

type OAuthService interface {
	AuthURL(provider, callbackURL string) (string, error)
	Callback(ctx context.Context, provider, code, callbackURL, ip string) (*dto.AuthResponse, error)
}
