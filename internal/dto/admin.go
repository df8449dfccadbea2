package dto

import "time"

type AdminUser struct {
	ID               int64      `json:"id"`
	Email            string     `json:"email"`
	FirstName        string     `json:"first_name"`
	LastName         string     `json:"last_name"`
	Role             string     `json:"role"`
	IsActive         bool       `json:"is_active"`
	TwoFactorEnabled bool       `json:"two_factor_enabled"`
	CreatedAt        *time.Time `json:"created_at,omitempty"`
}

type UserListResponse struct {
	Users []AdminUser `json:"users"`
	Total int64       `json:"total"`
	Page  int         `json:"page"`
	Pages int64       `json:"pages"`
}

type RoleUpdateRequest struct {
	UserID int64  `json:"user_id"`
	Role   string `json:"role"`
}

type UserRoleView struct {
	ID    int64  `json:"id"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

type RoleUpdateResponse struct {
	Message string       `json:"message"`
	User    UserRoleView `json:"user"`
}

type StatusUpdateRequest struct {
	UserID   int64 `json:"user_id"`
	IsActive *bool `json:"is_active"`
}

type UserStatusView struct {
	ID       int64  `json:"id"`
	Email    string `json:"email"`
	IsActive bool   `json:"is_active"`
}

type StatusUpdateResponse struct {
	Message string         `json:"message"`
	User    UserStatusView `json:"user"`
}

type ActivityLogEntry struct {
	ID        int64      `json:"id"`
	UserID    int64      `json:"user_id"`
	Email     string     `json:"email"`
	Action    string     `json:"action"`
	IPAddress string     `json:"ip_address"`
	CreatedAt *time.Time `json:"created_at,omitempty"`
}

type ActivityLogResponse struct {
	Logs  []ActivityLogEntry `json:"logs"`
	Total int64              `json:"total"`
	Page  int                `json:"page"`
	Pages int64              `json:"pages"`
}

type StatsResponse struct {
	TotalUsers            int64 `json:"total_users"`
	AdminCount            int64 `json:"admin_count"`
	TwoFactorEnabledCount int64 `json:"two_factor_enabled_count"`
	ActiveUsers           int64 `json:"active_users"`
}
