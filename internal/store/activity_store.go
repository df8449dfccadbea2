package store

import (
	"context"
	"time"

	"neoauth/internal/domain"

	"gorm.io/gorm"
)

type ActivityStore struct{ db *gorm.DB }

func (s *Store) Activity() *ActivityStore { return &ActivityStore{db: s.DB} }

// ActivityRecord is an activity row joined with the owning user's email.
type ActivityRecord struct {
	ID        int64
	UserID    int64
	Email     string
	Action    string
	IPAddress string
	CreatedAt time.Time
}

func (as *ActivityStore) Append(ctx context.Context, userID int64, action, ip string) error {
	return as.db.WithContext(ctx).Create(&domain.ActivityEntry{
		UserID:    userID,
		Action:    action,
		IPAddress: ip,
	}).Error
}

func (as *ActivityStore) List(ctx context.Context, offset, limit int) ([]ActivityRecord, error) {
	var rows []ActivityRecord
	err := as.db.WithContext(ctx).
		Table("user_activity_log").
		Select("user_activity_log.id, user_activity_log.user_id, users.email, user_activity_log.action, user_activity_log.ip_address, user_activity_log.created_at").
		Joins("LEFT JOIN users ON users.id = user_activity_log.user_id").
		Order("user_activity_log.created_at DESC").
		Limit(limit).Offset(offset).
		Scan(&rows).Error
	return rows, err
}

func (as *ActivityStore) Count(ctx context.Context) (int64, error) {
	var n int64
	err := as.db.WithContext(ctx).Model(&domain.ActivityEntry{}).Count(&n).Error
	return n, err
}
