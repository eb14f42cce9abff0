package handlers

import (
	"symtrack/internal/services"

	"github.com/gin-gonic/gin"
)

type AdminHandler struct {
	seedService *services.SeedService
}

func NewAdminHandler(seedService *services.SeedService) *AdminHandler {
	return &AdminHandler{seedService: seedService}
}

type SeedRequest struct {
	Users int `json:"users" binding:"omitempty,gte=1,lte=1000"`
}

// Seed inserts synthetic users and symptoms for demos and load exploration
func (h *AdminHandler) Seed(c *gin.Context) {
	var req SeedRequest
	if err := c.ShouldBindJSON(&req); err != nil && c.Request.ContentLength > 0 {
		c.JSON(400, gin.H{"message": "Invalid request", "details": err.Error()})
		return
	}

	result, err := h.seedService.Seed(req.Users)
	if err != nil {
		_ = c.Error(err)
		c.JSON(500, gin.H{"message": "Failed to seed data"})
		return
	}

	c.JSON(201, result)
}
