package models

import (
	"time"
)

// Symptom is an observation owned by exactly one user. A user cannot log the
// identical description twice; the composite unique index enforces that even
// under concurrent submits.
type Symptom struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	UserID      uint      `json:"user_id" gorm:"not null;index;uniqueIndex:idx_user_description"`
	Label       string    `json:"label" gorm:"type:varchar(100);not null"`
	Description string    `json:"description" gorm:"type:varchar(255);not null;uniqueIndex:idx_user_description"`
	CreatedAt   time.Time `json:"created_at"`
	User        User      `json:"user,omitempty" gorm:"foreignKey:UserID"`
}
