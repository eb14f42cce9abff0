package routes

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"symtrack/internal/config"
	"symtrack/internal/models"
	"symtrack/internal/services"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// setupTestDB initializes a fresh sqlite database for one test
func setupTestDB(t *testing.T) (*gorm.DB, *config.Config) {
	tmpDir := os.TempDir()
	testDBPath := fmt.Sprintf("%s/symtrack_test_%d.db", tmpDir, time.Now().UnixNano())

	cfg := &config.Config{
		Database: config.DatabaseConfig{
			Type: "sqlite",
			SQLite: config.SQLiteConfig{
				Path: testDBPath,
			},
		},
		JWT: config.JWTConfig{
			Secret:    "test-secret-key-for-testing-only",
			ExpiresIn: "1h",
			Issuer:    "symtrack-test",
		},
		Security: config.SecurityConfig{
			BcryptCost: 4,
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

	return db, cfg
}

// createTestUser creates a user through the auth service
func createTestUser(t *testing.T, authService *services.AuthService, username, password, role string) *models.User {
	user, err := authService.CreateUser(&models.User{
		Username: username,
		Role:     role,
	}, password)
	require.NoError(t, err)
	return user
}

// createTestToken issues a JWT and backing session for a user
func createTestToken(t *testing.T, cfg *config.Config, authService *services.AuthService, user *models.User) string {
	expiresIn, _ := time.ParseDuration(cfg.JWT.ExpiresIn)
	if expiresIn == 0 {
		expiresIn = time.Hour
	}
	now := time.Now()
	expiresAt := now.Add(expiresIn)

	// jti keeps repeated tokens for the same user unique
	claims := jwt.MapClaims{
		"user_id":  user.ID,
		"username": user.Username,
		"role":     user.Role,
		"exp":      expiresAt.Unix(),
		"iat":      now.Unix(),
		"iss":      cfg.JWT.Issuer,
		"jti":      fmt.Sprintf("%d-%d", user.ID, now.UnixNano()),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(cfg.JWT.Secret))
	require.NoError(t, err)

	err = authService.CreateSession(user.ID, tokenString, expiresAt)
	require.NoError(t, err)

	return tokenString
}

// setupTestRouter creates a test router with routes
func setupTestRouter(db *gorm.DB, cfg *config.Config) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	SetupRoutes(r, db, cfg, nil)
	return r
}

// doRequest performs a JSON request against the router
func doRequest(router *gin.Engine, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	var reader *bytes.Buffer
	if body != nil {
		jsonData, _ := json.Marshal(body)
		reader = bytes.NewBuffer(jsonData)
	} else {
		reader = bytes.NewBuffer(nil)
	}

	req, _ := http.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}
