package services

import (
	"fmt"
	"os"
	"testing"
	"time"

	"symtrack/internal/config"
	"symtrack/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	testDBPath := fmt.Sprintf("%s/symtrack_svc_test_%d.db", os.TempDir(), time.Now().UnixNano())

	cfg := &config.Config{
		Database: config.DatabaseConfig{
			Type:   "sqlite",
			SQLite: config.SQLiteConfig{Path: testDBPath},
		},
	}
	db, err := models.Open(cfg)
	require.NoError(t, err)

	t.Cleanup(func() {
		sqlDB, err := db.DB()
		if err == nil {
			sqlDB.Close()
		}
		os.Remove(testDBPath)
	})
	return db
}

func seedUserWithLabels(t *testing.T, db *gorm.DB, username string, labels ...string) {
	user := &models.User{Username: username, PasswordHash: "x"}
	require.NoError(t, db.Create(user).Error)
	for i, label := range labels {
		require.NoError(t, db.Create(&models.Symptom{
			UserID:      user.ID,
			Label:       label,
			Description: fmt.Sprintf("%s obs %d", username, i),
		}).Error)
	}
}

func TestMostCommonPatternsTieBreak(t *testing.T) {
	db := newTestDB(t)
	svc := NewPatternService(db)

	// Two tuples with equal frequency resolve by lexicographic tuple order
	seedUserWithLabels(t, db, "u1", "nausea", "fever")
	seedUserWithLabels(t, db, "u2", "cough", "chills")

	patterns, err := svc.MostCommonPatterns(5)
	require.NoError(t, err)
	require.Len(t, patterns, 2)

	assert.Equal(t, []string{"chills", "cough"}, patterns[0].Symptoms)
	assert.Equal(t, []string{"fever", "nausea"}, patterns[1].Symptoms)
	assert.Equal(t, 1, patterns[0].Count)
	assert.Equal(t, 1, patterns[1].Count)
}

func TestMostCommonPatternsLimit(t *testing.T) {
	db := newTestDB(t)
	svc := NewPatternService(db)

	// Seven distinct tuples, only five survive the cut
	for i := 0; i < 7; i++ {
		seedUserWithLabels(t, db, fmt.Sprintf("u%d", i),
			fmt.Sprintf("label_%d_a", i), fmt.Sprintf("label_%d_b", i))
	}

	patterns, err := svc.MostCommonPatterns(5)
	require.NoError(t, err)
	assert.Len(t, patterns, 5)
}

func TestMostCommonPatternsCanonicalOrder(t *testing.T) {
	db := newTestDB(t)
	svc := NewPatternService(db)

	// Insertion order must not matter: both users produce the same tuple
	seedUserWithLabels(t, db, "u1", "fever", "cough", "nausea")
	seedUserWithLabels(t, db, "u2", "nausea", "fever", "cough")

	patterns, err := svc.MostCommonPatterns(5)
	require.NoError(t, err)
	require.Len(t, patterns, 1)
	assert.Equal(t, []string{"cough", "fever", "nausea"}, patterns[0].Symptoms)
	assert.Equal(t, 2, patterns[0].Count)
}

func TestMostCommonPatternsControlCharLabels(t *testing.T) {
	db := newTestDB(t)
	svc := NewPatternService(db)

	// A label containing a control character must not be confused with a
	// tuple of several plain labels
	seedUserWithLabels(t, db, "u1", "a\x1fb", "c")
	seedUserWithLabels(t, db, "u2", "a", "b", "c")

	patterns, err := svc.MostCommonPatterns(5)
	require.NoError(t, err)
	require.Len(t, patterns, 2)

	assert.Equal(t, []string{"a", "b", "c"}, patterns[0].Symptoms)
	assert.Equal(t, 1, patterns[0].Count)
	assert.Equal(t, []string{"a\x1fb", "c"}, patterns[1].Symptoms)
	assert.Equal(t, 1, patterns[1].Count)
}
