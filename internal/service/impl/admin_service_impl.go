package impl

import (
	"context"

	"neoauth/internal/domain"
	"neoauth/internal/dto"
	"neoauth/internal/store"
)

const (
	userPageSize     = 20
	activityPageSize = 50
)

type AdminServiceImpl struct {
	store *store.Store
}

func NewAdminServiceImpl(st *store.Store) *AdminServiceImpl {
	return &AdminServiceImpl{store: st}
}

func (s *AdminServiceImpl) ListUsers(ctx context.Context, page int) (*dto.UserListResponse, error) {
	if page < 1 {
		page = 1
	}
	users, err := s.store.Users().List(ctx, (page-1)*userPageSize, userPageSize)
	if err != nil {
		return nil, err
	}
	total, err := s.store.Users().Count(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]dto.AdminUser, 0, len(users))
	for i := range users {
		u := &users[i]
		created := u.CreatedAt
		out = append(out, dto.AdminUser{
			ID:               u.ID,
			Email:            u.Email,
			FirstName:        u.FirstName,
			LastName:         u.LastName,
			Role:             u.Role,
			IsActive:         u.IsActive,
			TwoFactorEnabled: u.TwoFactorEnabled,
			CreatedAt:        &created,
		})
	}
	return &dto.UserListResponse{
		Users: out,
		Total: total,
		Page:  page,
		Pages: pages(total, userPageSize),
	}, nil
}

func (s *AdminServiceImpl) UpdateRole(ctx context.Context, userID int64, role string) (*dto.RoleUpdateResponse, error) {
	if !domain.ValidRole(role) {
		return nil, domain.ErrInvalidRole
	}
	user, err := s.store.Users().UpdateRole(ctx, userID, role)
	if err != nil {
		return nil, err
	}
	return &dto.RoleUpdateResponse{
		Message: "Role updated",
		User:    dto.UserRoleView{ID: user.ID, Email: user.Email, Role: user.Role},
	}, nil
}

func (s *AdminServiceImpl) UpdateStatus(ctx context.Context, userID int64, active bool) (*dto.StatusUpdateResponse, error) {
	user, err := s.store.Users().SetActive(ctx, userID, active)
	if err != nil {
		return nil, err
	}
	return &dto.StatusUpdateResponse{
		Message: "User status updated",
		User:    dto.UserStatusView{ID: user.ID, Email: user.Email, IsActive: user.IsActive},
	}, nil
}

func (s *AdminServiceImpl) ActivityLog(ctx context.Context, page int) (*dto.ActivityLogResponse, error) {
	if page < 1 {
		page = 1
	}
	rows, err := s.store.Activity().List(ctx, (page-1)*activityPageSize, activityPageSize)
	if err != nil {
		return nil, err
	}
	total, err := s.store.Activity().Count(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]dto.ActivityLogEntry, 0, len(rows))
	for _, r := range rows {
		created := r.CreatedAt
		out = append(out, dto.ActivityLogEntry{
			ID:        r.ID,
			UserID:    r.UserID,
			Email:     r.Email,
			Action:    r.Action,
			IPAddress: r.IPAddress,
			CreatedAt: &created,
		})
	}
	return &dto.ActivityLogResponse{
		Logs:  out,
		Total: total,
		Page:  page,
		Pages: pages(total, activityPageSize),
	}, nil
}

func (s *AdminServiceImpl) Stats(ctx context.Context) (*dto.StatsResponse, error) {
	users := s.store.Users()
	total, err := users.Count(ctx)
	if err != nil {
		return nil, err
	}
	admins, err := users.CountByRole(ctx, domain.RoleAdmin)
	if err != nil {
		return nil, err
	}
	twoFactor, err := users.CountTwoFactorEnabled(ctx)
	if err != nil {
		return nil, err
	}
	active, err := users.CountActive(ctx)
	if err != nil {
		return nil, err
	}
	return &dto.StatsResponse{
		TotalUsers:            total,
		AdminCount:            admins,
		TwoFactorEnabledCount: twoFactor,
		ActiveUsers:           active,
	}, nil
}

func pages(total int64, size int64) int64 {
	return (total + size - 1) / size
}
