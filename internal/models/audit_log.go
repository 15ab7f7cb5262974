package models

import "time"

type AuditLog struct {
	ID        uint `gorm:"primaryKey"`
	CreatedAt time.Time

	UserID uint
	User   User

	Entity   string `gorm:"size:50;not null"` // "claim", "user", "role"
	EntityID uint
	Action   string `gorm:"size:50;not null"` // "submit", "approve", "reject", "delete"
	Details  string `gorm:"type:text"`
}
