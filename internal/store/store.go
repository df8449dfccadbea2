package store

import (
	"context"

	"neoauth/internal/domain"

	"gorm.io/gorm"
)

type Store struct {
	DB *gorm.DB
}

func New(db *gorm.DB) *Store { return &Store{DB: db} }

func (s *Store) WithTx(ctx context.Context, fn func(tx *Store) error) error {
	return s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&Store{DB: tx})
	})
}

// Migrate creates the schema. The email unique index is what makes concurrent
// duplicate registrations safe; it is not optional.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&domain.User{},
		&domain.PasswordResetToken{},
		&domain.TwoFactorCode{},
		&domain.ActivityEntry{},
	)
}
