package domain

import "time"

const (
	RoleUser      = "user"
	RoleAdmin     = "admin"
	RoleModerator = "moderator"
)

// ValidRole reports whether r is one of the assignable roles.
func ValidRole(r string) bool {
	switch r {
	case RoleUser, RoleAdmin, RoleModerator:
		return true
	}
	return false
}

type User struct {
	ID               int64     `gorm:"primaryKey" db:"id" json:"id"`
	Email            string    `gorm:"uniqueIndex:ux_users_email;not null" db:"email" json:"email"`
	PasswordHash     string    `gorm:"not null" db:"password_hash" json:"-"`
	FirstName        string    `db:"first_name" json:"first_name"`
	LastName         string    `db:"last_name" json:"last_name"`
	AvatarURL        string    `db:"avatar_url" json:"avatar_url"`
	Role             string    `gorm:"not null;default:user" db:"role" json:"role"`
	IsActive         bool      `gorm:"not null;default:true" db:"is_active" json:"is_active"`
	TwoFactorEnabled bool      `gorm:"not null;default:false" db:"two_factor_enabled" json:"two_factor_enabled"`
	// TwoFactorSecret is opaque key material handed out when 2FA is enabled.
	// Verification runs against the issued numeric codes, never against this
	// value; it is reserved for a future authenticator-app flow.
	TwoFactorSecret string    `db:"two_factor_secret" json:"-"`
	OAuthProvider   string    `gorm:"column:oauth_provider;index:ix_users_oauth" db:"oauth_provider" json:"-"`
	OAuthID         string    `gorm:"column:oauth_id;index:ix_users_oauth" db:"oauth_id" json:"-"`
	CreatedAt       time.Time `gorm:"not null" db:"created_at" json:"created_at"`
	UpdatedAt       time.Time `gorm:"not null" db:"updated_at" json:"updated_at"`
}

func (User) TableName() string { return "users" }
