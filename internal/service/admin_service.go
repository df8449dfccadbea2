package service

import (
	"context"

	"neoauth/internal/dto"
)

type AdminService interface {
	ListUsers(ctx context.Context, page int) (*dto.UserListResponse, error)
	UpdateRole(ctx context.Context, userID int64, role string) (*dto.RoleUpdateResponse, error)
	UpdateStatus(ctx context.Context, userID int64, active bool) (*dto.StatusUpdateResponse, error)
	ActivityLog(ctx context.Context, page int) (*dto.ActivityLogResponse, error)
	Stats(ctx context.Context) (*dto.StatsResponse, error)
}
