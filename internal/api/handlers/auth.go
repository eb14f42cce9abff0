package handlers

import (
	"errors"
	"time"

	"symtrack/internal/config"
	"symtrack/internal/metrics"
	"symtrack/internal/models"
	"symtrack/internal/services"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

type AuthHandler struct {
	authService *services.AuthService
	cfg         *config.Config
}

func NewAuthHandler(authService *services.AuthService, cfg *config.Config) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		cfg:         cfg,
	}
}

type RegisterRequest struct {
	Username string `json:"username" binding:"required,min=3"`
	Password string `json:"password" binding:"required,min=6"`
	Age      *int   `json:"age" binding:"omitempty,gte=0,lte=130"`
	Gender   string `json:"gender" binding:"omitempty,gender"`
	Location string `json:"location"`
}

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type TokenResponse struct {
	Token string       `json:"token"`
	User  *models.User `json:"user"`
}

// Register creates a new account and signs the caller in immediately
func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		metrics.IncRegister("bad_request")
		c.JSON(400, gin.H{"message": "Invalid request", "details": err.Error()})
		return
	}

	user, err := h.authService.CreateUser(&models.User{
		Username: req.Username,
		Age:      req.Age,
		Gender:   req.Gender,
		Location: req.Location,
		Role:     "user",
	}, req.Password)
	if err != nil {
		if errors.Is(err, services.ErrUserExists) {
			metrics.IncRegister("conflict")
			c.JSON(409, gin.H{"message": "Username already taken"})
			return
		}
		metrics.IncRegister("internal_error")
		_ = c.Error(err)
		c.JSON(500, gin.H{"message": "Failed to create user"})
		return
	}

	token, expiresAt, err := h.generateToken(user)
	if err != nil {
		_ = c.Error(err)
		c.JSON(500, gin.H{"message": "Failed to generate token"})
		return
	}

	if err := h.authService.CreateSession(user.ID, token, expiresAt); err != nil {
		_ = c.Error(err)
		c.JSON(500, gin.H{"message": "Failed to create session"})
		return
	}

	metrics.IncRegister("success")
	c.Set("user_id", user.ID) // the audit trail attributes this request to the new account

	c.JSON(201, TokenResponse{
		Token: token,
		User:  user,
	})
}

// Login handles user login
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		metrics.IncLogin("bad_request")
		c.JSON(400, gin.H{"message": "Invalid request", "details": err.Error()})
		return
	}

	user, err := h.authService.Authenticate(req.Username, req.Password)
	if err != nil {
		metrics.IncLogin("unauthorized")
		c.JSON(401, gin.H{"message": "Invalid credentials"})
		return
	}

	token, expiresAt, err := h.generateToken(user)
	if err != nil {
		_ = c.Error(err)
		c.JSON(500, gin.H{"message": "Failed to generate token"})
		return
	}

	if err := h.authService.CreateSession(user.ID, token, expiresAt); err != nil {
		_ = c.Error(err)
		c.JSON(500, gin.H{"message": "Failed to create session"})
		return
	}

	metrics.IncLogin("success")
	c.Set("user_id", user.ID)

	user.PasswordHash = ""
	c.JSON(200, TokenResponse{
		Token: token,
		User:  user,
	})
}

// Logout handles user logout
func (h *AuthHandler) Logout(c *gin.Context) {
	session, exists := c.Get("session")
	if !exists {
		c.JSON(401, gin.H{"message": "Not authenticated"})
		return
	}

	sess := session.(*models.Session)
	if err := h.authService.DeleteSession(sess.Token); err != nil {
		_ = c.Error(err)
		c.JSON(500, gin.H{"message": "Failed to logout"})
		return
	}

	c.JSON(200, gin.H{"message": "Logged out successfully"})
}

// GetMe returns current user information
func (h *AuthHandler) GetMe(c *gin.Context) {
	user, exists := c.Get("user")
	if !exists {
		c.JSON(401, gin.H{"message": "Not authenticated"})
		return
	}

	u := user.(*models.User)
	// Don't include password hash in response
	u.PasswordHash = ""
	c.JSON(200, u)
}

// generateToken generates a JWT token for the user
func (h *AuthHandler) generateToken(user *models.User) (string, time.Time, error) {
	// Parse expires_in duration
	expiresIn, err := time.ParseDuration(h.cfg.JWT.ExpiresIn)
	if err != nil {
		expiresIn = time.Hour // Default validity window
	}

	expiresAt := time.Now().Add(expiresIn)

	claims := jwt.MapClaims{
		"user_id":  user.ID,
		"username": user.Username,
		"role":     user.Role,
		"exp":      expiresAt.Unix(),
		"iat":      time.Now().Unix(),
		"iss":      h.cfg.JWT.Issuer,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(h.cfg.JWT.Secret))
	if err != nil {
		return "", time.Time{}, err
	}

	return tokenString, expiresAt, nil
}
