package handlers

import (
	"errors"
	"strconv"

	"symtrack/internal/api/middleware"
	"symtrack/internal/services"

	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	userService *services.UserService
}

func NewUserHandler(userService *services.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

type UpdateUserRequest struct {
	Username *string `json:"username" binding:"omitempty,min=3"`
	Password *string `json:"password" binding:"omitempty,min=6"`
	Age      *int    `json:"age" binding:"omitempty,gte=0,lte=130"`
	Gender   *string `json:"gender" binding:"omitempty,gender"`
	Location *string `json:"location"`
}

// parseIDParam reads a numeric path parameter
func parseIDParam(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil {
		c.JSON(400, gin.H{"message": "Invalid " + name})
		return 0, false
	}
	return uint(id), true
}

// requireSelfOrAdmin verifies the credential identity matches the targeted
// user, with an admin override. Plain sequential guard; the caller returns
// immediately on false.
func requireSelfOrAdmin(c *gin.Context, id uint) bool {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(401, gin.H{"message": "Not authenticated"})
		return false
	}
	if user.ID != id && user.Role != "admin" {
		c.JSON(403, gin.H{"message": "Forbidden"})
		return false
	}
	return true
}

// GetUsers returns all users
func (h *UserHandler) GetUsers(c *gin.Context) {
	users, err := h.userService.GetUsers()
	if err != nil {
		_ = c.Error(err)
		c.JSON(500, gin.H{"message": "Failed to get users"})
		return
	}

	c.JSON(200, gin.H{"users": users})
}

// GetUser returns a specific user
func (h *UserHandler) GetUser(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	user, err := h.userService.GetUser(id)
	if err != nil {
		if errors.Is(err, services.ErrUserNotFound) {
			c.JSON(404, gin.H{"message": "User not found"})
			return
		}
		_ = c.Error(err)
		c.JSON(500, gin.H{"message": "Failed to get user"})
		return
	}

	c.JSON(200, user)
}

// UpdateUser applies a partial patch; fields omitted from the body are left
// unchanged.
func (h *UserHandler) UpdateUser(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	if !requireSelfOrAdmin(c, id) {
		return
	}

	var req UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"message": "Invalid request", "details": err.Error()})
		return
	}

	user, err := h.userService.UpdateUser(id, &services.UpdateUserData{
		Username: req.Username,
		Password: req.Password,
		Age:      req.Age,
		Gender:   req.Gender,
		Location: req.Location,
	})
	if err != nil {
		switch {
		case errors.Is(err, services.ErrUserNotFound):
			c.JSON(404, gin.H{"message": "User not found"})
		case errors.Is(err, services.ErrUserExists):
			c.JSON(409, gin.H{"message": "Username already taken"})
		default:
			_ = c.Error(err)
			c.JSON(500, gin.H{"message": "Failed to update user"})
		}
		return
	}

	c.JSON(200, user)
}

// DeleteUser deletes a user and cascades to their symptoms
func (h *UserHandler) DeleteUser(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	if !requireSelfOrAdmin(c, id) {
		return
	}

	if err := h.userService.DeleteUser(id); err != nil {
		if errors.Is(err, services.ErrUserNotFound) {
			c.JSON(404, gin.H{"message": "User not found"})
			return
		}
		_ = c.Error(err)
		c.JSON(500, gin.H{"message": "Failed to delete user"})
		return
	}

	c.JSON(200, gin.H{"message": "User deleted successfully"})
}
