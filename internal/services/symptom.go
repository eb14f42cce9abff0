package services

import (
	"errors"

	"symtrack/internal/models"

	"gorm.io/gorm"
)

type SymptomService struct {
	db *gorm.DB
}

func NewSymptomService(db *gorm.DB) *SymptomService {
	return &SymptomService{db: db}
}

// CreateSymptom records a new symptom for an existing user. The (user,
// description) pair must be unique; a concurrent double-submit loses at the
// database constraint and is reported as ErrSymptomExists.
func (s *SymptomService) CreateSymptom(userID uint, label, description string) (*models.Symptom, error) {
	var user models.User
	if err := s.db.First(&user, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	var existing models.Symptom
	if err := s.db.Where("user_id = ? AND description = ?", userID, description).First(&existing).Error; err == nil {
		return nil, ErrSymptomExists
	}

	symptom := &models.Symptom{
		UserID:      userID,
		Label:       label,
		Description: description,
	}
	if err := s.db.Create(symptom).Error; err != nil {
		if isDuplicateErr(err) {
			return nil, ErrSymptomExists
		}
		return nil, err
	}

	return symptom, nil
}

// GetSymptoms returns all symptoms logged by a user
func (s *SymptomService) GetSymptoms(userID uint) ([]models.Symptom, error) {
	var user models.User
	if err := s.db.First(&user, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	var symptoms []models.Symptom
	if err := s.db.Where("user_id = ?", userID).Order("created_at").Find(&symptoms).Error; err != nil {
		return nil, err
	}
	return symptoms, nil
}

// GetSymptom resolves a symptom scoped to its owner
func (s *SymptomService) GetSymptom(userID, symptomID uint) (*models.Symptom, error) {
	var symptom models.Symptom
	if err := s.db.Where("id = ? AND user_id = ?", symptomID, userID).First(&symptom).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSymptomNotFound
		}
		return nil, err
	}
	return &symptom, nil
}

// UpdateSymptomData carries a partial patch for a symptom
type UpdateSymptomData struct {
	Label       *string
	Description *string
}

// UpdateSymptom patches label and/or description of a symptom owned by the
// given user. The creation timestamp is never touched.
func (s *SymptomService) UpdateSymptom(userID, symptomID uint, data *UpdateSymptomData) (*models.Symptom, error) {
	symptom, err := s.GetSymptom(userID, symptomID)
	if err != nil {
		return nil, err
	}

	if data.Description != nil && *data.Description != symptom.Description {
		var existing models.Symptom
		if err := s.db.Where("user_id = ? AND description = ? AND id != ?", userID, *data.Description, symptomID).First(&existing).Error; err == nil {
			return nil, ErrSymptomExists
		}
		symptom.Description = *data.Description
	}
	if data.Label != nil {
		symptom.Label = *data.Label
	}

	updates := map[string]interface{}{
		"label":       symptom.Label,
		"description": symptom.Description,
	}
	if err := s.db.Model(symptom).Updates(updates).Error; err != nil {
		if isDuplicateErr(err) {
			return nil, ErrSymptomExists
		}
		return nil, err
	}

	return symptom, nil
}

// DeleteSymptom removes a symptom owned by the given user
func (s *SymptomService) DeleteSymptom(userID, symptomID uint) error {
	symptom, err := s.GetSymptom(userID, symptomID)
	if err != nil {
		return err
	}
	return s.db.Delete(symptom).Error
}
