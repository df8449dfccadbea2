package domain

import "time"

type ActivityEntry struct {
	ID        int64     `gorm:"primaryKey" db:"id"`
	UserID    int64     `gorm:"index" db:"user_id"`
	Action    string    `gorm:"not null" db:"action"`
	IPAddress string    `db:"ip_address"`
	CreatedAt time.Time `gorm:"not null" db:"created_at"`
}

func (ActivityEntry) TableName() string { return "user_activity_log" }
