package services

import (
	"errors"

	"symtrack/internal/config"
	"symtrack/internal/models"

	"gorm.io/gorm"
)

type UserService struct {
	db          *gorm.DB
	authService *AuthService
}

func NewUserService(db *gorm.DB, cfg *config.Config) *UserService {
	return &UserService{
		db:          db,
		authService: NewAuthService(db, cfg),
	}
}

// UpdateUserData carries a partial patch. Nil fields keep their prior value;
// an explicit null in the request body is not distinguished from absence.
type UpdateUserData struct {
	Username *string
	Password *string
	Age      *int
	Gender   *string
	Location *string
}

// GetUsers returns all users
func (s *UserService) GetUsers() ([]models.User, error) {
	var users []models.User
	if err := s.db.Find(&users).Error; err != nil {
		return nil, err
	}

	// Clear password hashes
	for i := range users {
		users[i].PasswordHash = ""
	}

	return users, nil
}

// GetUser returns a specific user by ID
func (s *UserService) GetUser(id uint) (*models.User, error) {
	var user models.User
	if err := s.db.First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	user.PasswordHash = ""
	return &user, nil
}

// UpdateUser applies a partial patch to a user. Username changes are
// re-checked for uniqueness and rejected with ErrUserExists when taken.
func (s *UserService) UpdateUser(id uint, data *UpdateUserData) (*models.User, error) {
	var user models.User
	if err := s.db.First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	if data.Username != nil && *data.Username != user.Username {
		var existingUser models.User
		if err := s.db.Where("username = ? AND id != ?", *data.Username, id).First(&existingUser).Error; err == nil {
			return nil, ErrUserExists
		}
		user.Username = *data.Username
	}
	if data.Password != nil {
		hashedPassword, err := s.authService.HashPassword(*data.Password)
		if err != nil {
			return nil, err
		}
		user.PasswordHash = hashedPassword
	}
	if data.Age != nil {
		user.Age = data.Age
	}
	if data.Gender != nil {
		user.Gender = *data.Gender
	}
	if data.Location != nil {
		user.Location = *data.Location
	}

	if err := s.db.Save(&user).Error; err != nil {
		if isDuplicateErr(err) {
			return nil, ErrUserExists
		}
		return nil, err
	}

	user.PasswordHash = ""
	return &user, nil
}

// DeleteUser deletes a user together with their symptoms and sessions in one
// transaction. Activity logs are retained as the historical audit trail.
func (s *UserService) DeleteUser(id uint) error {
	var user models.User
	if err := s.db.First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrUserNotFound
		}
		return err
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("user_id = ?", id).Delete(&models.Symptom{}).Error; err != nil {
			return err
		}
		if err := tx.Where("user_id = ?", id).Delete(&models.Session{}).Error; err != nil {
			return err
		}
		return tx.Delete(&user).Error
	})
}
