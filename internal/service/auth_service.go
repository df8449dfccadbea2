package service

import (
	"context"

	"neoauth/internal/dto"
)

type AuthService interface {
	Register(ctx context.Context, r dto.RegisterRequest, ip string) (*dto.AuthResponse, error)
	Login(ctx context.Context, r dto.LoginRequest, ip string) (*dto.AuthResponse, error)
	Profile(ctx context.Context, userID int64) (*dto.UserProfile, error)
	UpdateProfile(ctx context.Context, userID int64, r dto.ProfileUpdateRequest) (*dto.UserProfile, error)
	RequestPasswordReset(ctx context.Context, email string) (*dto.ResetRequestResponse, error)
	ResetPassword(ctx context.Context, token, newPassword string) error
}
