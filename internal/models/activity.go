package models

import (
	"time"
)

// ActivityLog is an append-only audit entry. No update or delete is exposed
// anywhere in the codebase; rows survive deletion of the referenced user.
type ActivityLog struct {
	ID         uint      `json:"id" gorm:"primaryKey"`
	UserID     uint      `json:"user_id" gorm:"not null;index"`
	Action     string    `json:"action" gorm:"type:varchar(100);not null"` // register, login, create_symptom, etc.
	Path       string    `json:"path" gorm:"type:varchar(255)"`
	Method     string    `json:"method" gorm:"type:varchar(10)"`
	IPAddress  string    `json:"ip_address" gorm:"type:varchar(45)"`
	UserAgent  string    `json:"user_agent" gorm:"type:varchar(500)"`
	RequestID  string    `json:"request_id" gorm:"type:varchar(64)"`
	StatusCode int       `json:"status_code"`
	CreatedAt  time.Time `json:"created_at" gorm:"index"`
}
