package store

import (
	"context"
	"errors"

	"neoauth/internal/domain"

	"gorm.io/gorm"
)

type UserStore struct{ db *gorm.DB }

func (s *Store) Users() *UserStore { return &UserStore{db: s.DB} }

func (u *UserStore) Create(ctx context.Context, usr *domain.User) error {
	if err := u.db.WithContext(ctx).Create(usr).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return domain.ErrUserExists
		}
		return err
	}
	return nil
}

func (u *UserStore) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	var user domain.User
	if err := u.db.WithContext(ctx).First(&user, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (u *UserStore) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	var user domain.User
	if err := u.db.WithContext(ctx).First(&user, "email = ?", email).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (u *UserStore) GetByOAuth(ctx context.Context, provider, oauthID string) (*domain.User, error) {
	var user domain.User
	err := u.db.WithContext(ctx).
		First(&user, "oauth_provider = ? AND oauth_id = ?", provider, oauthID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (u *UserStore) UpdateProfile(ctx context.Context, id int64, firstName, lastName, avatarURL string) (*domain.User, error) {
	res := u.db.WithContext(ctx).Model(&domain.User{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"first_name": firstName,
			"last_name":  lastName,
			"avatar_url": avatarURL,
		})
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, domain.ErrUserNotFound
	}
	return u.GetByID(ctx, id)
}

func (u *UserStore) UpdatePassword(ctx context.Context, id int64, passwordHash string) error {
	res := u.db.WithContext(ctx).Model(&domain.User{}).
		Where("id = ?", id).
		Update("password_hash", passwordHash)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrUserNotFound
	}
	return nil
}

func (u *UserStore) UpdateRole(ctx context.Context, id int64, role string) (*domain.User, error) {
	res := u.db.WithContext(ctx).Model(&domain.User{}).
		Where("id = ?", id).
		Update("role", role)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, domain.ErrUserNotFound
	}
	return u.GetByID(ctx, id)
}

func (u *UserStore) SetActive(ctx context.Context, id int64, active bool) (*domain.User, error) {
	res := u.db.WithContext(ctx).Model(&domain.User{}).
		Where("id = ?", id).
		Update("is_active", active)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, domain.ErrUserNotFound
	}
	return u.GetByID(ctx, id)
}

func (u *UserStore) SetTwoFactorSecret(ctx context.Context, id int64, secret string) error {
	res := u.db.WithContext(ctx).Model(&domain.User{}).
		Where("id = ?", id).
		Update("two_factor_secret", secret)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrUserNotFound
	}
	return nil
}

func (u *UserStore) SetTwoFactorEnabled(ctx context.Context, id int64, enabled bool) error {
	updates := map[string]any{"two_factor_enabled": enabled}
	if !enabled {
		updates["two_factor_secret"] = ""
	}
	res := u.db.WithContext(ctx).Model(&domain.User{}).
		Where("id = ?", id).
		Updates(updates)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrUserNotFound
	}
	return nil
}

func (u *UserStore) List(ctx context.Context, offset, limit int) ([]domain.User, error) {
	var users []domain.User
	err := u.db.WithContext(ctx).
		Order("created_at DESC").
		Limit(limit).Offset(offset).
		Find(&users).Error
	return users, err
}

func (u *UserStore) Count(ctx context.Context) (int64, error) {
	var n int64
	err := u.db.WithContext(ctx).Model(&domain.User{}).Count(&n).Error
	return n, err
}

func (u *UserStore) CountByRole(ctx context.Context, role string) (int64, error) {
	var n int64
	err := u.db.WithContext(ctx).Model(&domain.User{}).
		Where("role = ?", role).Count(&n).Error
	return n, err
}

func (u *UserStore) CountActive(ctx context.Context) (int64, error) {
	var n int64
	err := u.db.WithContext(ctx).Model(&domain.User{}).
		Where("is_active = ?", true).Count(&n).Error
	return n, err
}

func (u *UserStore) CountTwoFactorEnabled(ctx context.Context) (int64, error) {
	var n int64
	err := u.db.WithContext(ctx).Model(&domain.User{}).
		Where("two_factor_enabled = ?", true).Count(&n).Error
	return n, err
}
