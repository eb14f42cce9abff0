package services

import (
	"fmt"
	"math/rand"
	"time"

	"symtrack/internal/config"
	"symtrack/internal/models"

	"gorm.io/gorm"
)

type SeedService struct {
	db          *gorm.DB
	authService *AuthService
}

func NewSeedService(db *gorm.DB, cfg *config.Config) *SeedService {
	return &SeedService{
		db:          db,
		authService: NewAuthService(db, cfg),
	}
}

// seedCatalog is the pool of symptom observations synthetic users draw from.
var seedCatalog = []struct {
	Label       string
	Description string
}{
	{"fever", "Temperature above 38C since this morning"},
	{"cough", "Persistent dry cough, worse at night"},
	{"nausea", "Queasy after meals, no vomiting"},
	{"headache", "Dull frontal headache for two days"},
	{"fatigue", "Exhausted even after a full night of sleep"},
	{"sore throat", "Scratchy throat, painful to swallow"},
	{"dizziness", "Lightheaded when standing up quickly"},
	{"chills", "Shivering episodes in the evening"},
	{"muscle ache", "Generalized soreness in arms and legs"},
	{"loss of appetite", "No interest in food since yesterday"},
}

// SeedResult reports how many synthetic records were inserted
type SeedResult struct {
	UsersCreated    int `json:"users_created"`
	SymptomsCreated int `json:"symptoms_created"`
}

// Seed inserts count synthetic users, each with two to four distinct
// symptoms from the catalog, inside a single transaction. Usernames carry a
// timestamp so repeated seeding never collides with earlier runs.
func (s *SeedService) Seed(count int) (*SeedResult, error) {
	if count <= 0 {
		count = 10
	}

	hashedPassword, err := s.authService.HashPassword("seeded-password")
	if err != nil {
		return nil, err
	}

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	base := time.Now().Unix()

	result := &SeedResult{}
	err = s.db.Transaction(func(tx *gorm.DB) error {
		for i := 0; i < count; i++ {
			age := 18 + rng.Intn(60)
			user := &models.User{
				Username:     fmt.Sprintf("seed_%d_%d", base, i),
				PasswordHash: hashedPassword,
				Age:          &age,
				Gender:       []string{"male", "female", "other"}[rng.Intn(3)],
				Location:     []string{"north", "south", "east", "west"}[rng.Intn(4)],
				Role:         "user",
			}
			if err := tx.Create(user).Error; err != nil {
				return err
			}
			result.UsersCreated++

			for _, idx := range rng.Perm(len(seedCatalog))[:2+rng.Intn(3)] {
				entry := seedCatalog[idx]
				symptom := &models.Symptom{
					UserID:      user.ID,
					Label:       entry.Label,
					Description: entry.Description,
				}
				if err := tx.Create(symptom).Error; err != nil {
					return err
				}
				result.SymptomsCreated++
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}
