package services

import (
	"errors"

	"symtrack/internal/models"

	"gorm.io/gorm"
)

type ActivityService struct {
	db *gorm.DB
}

func NewActivityService(db *gorm.DB) *ActivityService {
	return &ActivityService{db: db}
}

// Record appends an audit entry. Callers treat failures as best-effort; an
// error here must never roll back or fail the operation being audited.
func (s *ActivityService) Record(entry *models.ActivityLog) error {
	return s.db.Create(entry).Error
}

// GetLogsForUser returns the audit trail attributed to a user, newest first
func (s *ActivityService) GetLogsForUser(userID uint) ([]models.ActivityLog, error) {
	var user models.User
	if err := s.db.First(&user, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	var logs []models.ActivityLog
	if err := s.db.Where("user_id = ?", userID).Order("created_at DESC").Find(&logs).Error; err != nil {
		return nil, err
	}
	return logs, nil
}
