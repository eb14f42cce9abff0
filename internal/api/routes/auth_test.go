package routes

import (
	"encoding/json"
	"net/http"
	"testing"

	"symtrack/internal/models"
	"symtrack/internal/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuthRoutes(t *testing.T) {
	db, cfg := setupTestDB(t)
	authService := services.NewAuthService(db, cfg)
	router := setupTestRouter(db, cfg)

	t.Run("POST /api/auth/register - Success", func(t *testing.T) {
		w := doRequest(router, "POST", "/api/auth/register", "", map[string]interface{}{
			"username": "alice",
			"password": "secret123",
			"age":      30,
			"gender":   "female",
			"location": "north",
		})

		assert.Equal(t, http.StatusCreated, w.Code)
		var response map[string]interface{}
		err := json.Unmarshal(w.Body.Bytes(), &response)
		require.NoError(t, err)
		assert.NotEmpty(t, response["token"])
		user := response["user"].(map[string]interface{})
		assert.Equal(t, "alice", user["username"])
		assert.NotContains(t, user, "password_hash")
	})

	t.Run("POST /api/auth/register - Conflict on duplicate username", func(t *testing.T) {
		w := doRequest(router, "POST", "/api/auth/register", "", map[string]interface{}{
			"username": "alice",
			"password": "another123",
		})

		assert.Equal(t, http.StatusConflict, w.Code)
		var response map[string]interface{}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.Contains(t, response, "message")
	})

	t.Run("POST /api/auth/register - Bad Request (missing password)", func(t *testing.T) {
		w := doRequest(router, "POST", "/api/auth/register", "", map[string]interface{}{
			"username": "bob",
		})

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("POST /api/auth/register - Bad Request (invalid gender)", func(t *testing.T) {
		w := doRequest(router, "POST", "/api/auth/register", "", map[string]interface{}{
			"username": "bob",
			"password": "secret123",
			"gender":   "not-a-gender",
		})

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("POST /api/auth/login - Success", func(t *testing.T) {
		w := doRequest(router, "POST", "/api/auth/login", "", map[string]interface{}{
			"username": "alice",
			"password": "secret123",
		})

		assert.Equal(t, http.StatusOK, w.Code)
		var response map[string]interface{}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.NotEmpty(t, response["token"])
	})

	t.Run("POST /api/auth/login - Unauthorized (wrong password)", func(t *testing.T) {
		w := doRequest(router, "POST", "/api/auth/login", "", map[string]interface{}{
			"username": "alice",
			"password": "wrongpass",
		})

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("POST /api/auth/login - Unauthorized (unknown user)", func(t *testing.T) {
		w := doRequest(router, "POST", "/api/auth/login", "", map[string]interface{}{
			"username": "nobody",
			"password": "whatever123",
		})

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("POST /api/auth/login - Bad Request (missing fields)", func(t *testing.T) {
		w := doRequest(router, "POST", "/api/auth/login", "", map[string]interface{}{
			"username": "alice",
		})

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("GET /api/auth/me - Success", func(t *testing.T) {
		user := createTestUser(t, authService, "me_user", "secret123", "user")
		token := createTestToken(t, cfg, authService, user)

		w := doRequest(router, "GET", "/api/auth/me", token, nil)

		assert.Equal(t, http.StatusOK, w.Code)
		var response models.User
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.Equal(t, user.ID, response.ID)
	})

	t.Run("GET /api/auth/me - Unauthorized without token", func(t *testing.T) {
		w := doRequest(router, "GET", "/api/auth/me", "", nil)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("GET /api/auth/me - Unauthorized with expired credential", func(t *testing.T) {
		user := createTestUser(t, authService, "expired_user", "secret123", "user")

		// Issue a credential whose validity window is already over
		expiredCfg := *cfg
		expiredCfg.JWT.ExpiresIn = "-1h"
		token := createTestToken(t, &expiredCfg, authService, user)

		w := doRequest(router, "GET", "/api/auth/me", token, nil)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("GET /api/auth/me - Unauthorized with malformed token", func(t *testing.T) {
		w := doRequest(router, "GET", "/api/auth/me", "not-a-real-token", nil)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("POST /api/auth/logout - Invalidates session", func(t *testing.T) {
		user := createTestUser(t, authService, "logout_user", "secret123", "user")
		token := createTestToken(t, cfg, authService, user)

		w := doRequest(router, "POST", "/api/auth/logout", token, nil)
		assert.Equal(t, http.StatusOK, w.Code)

		// Token is no longer accepted
		w = doRequest(router, "GET", "/api/auth/me", token, nil)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("Registration writes an audit row for the new account", func(t *testing.T) {
		w := doRequest(router, "POST", "/api/auth/register", "", map[string]interface{}{
			"username": "audited",
			"password": "secret123",
		})
		require.Equal(t, http.StatusCreated, w.Code)

		var user models.User
		require.NoError(t, db.Where("username = ?", "audited").First(&user).Error)

		var count int64
		db.Model(&models.ActivityLog{}).
			Where("user_id = ? AND action = ?", user.ID, "register").Count(&count)
		assert.Equal(t, int64(1), count)
	})

	t.Run("Failed login writes no audit row", func(t *testing.T) {
		var before int64
		db.Model(&models.ActivityLog{}).Where("action = ?", "login").Count(&before)

		w := doRequest(router, "POST", "/api/auth/login", "", map[string]interface{}{
			"username": "audited",
			"password": "wrongpass",
		})
		require.Equal(t, http.StatusUnauthorized, w.Code)

		var after int64
		db.Model(&models.ActivityLog{}).Where("action = ?", "login").Count(&after)
		assert.Equal(t, before, after)
	})
}
