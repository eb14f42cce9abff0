package handlers

import (
	"errors"

	"symtrack/internal/services"

	"github.com/gin-gonic/gin"
)

type SymptomHandler struct {
	symptomService *services.SymptomService
}

func NewSymptomHandler(symptomService *services.SymptomService) *SymptomHandler {
	return &SymptomHandler{symptomService: symptomService}
}

type CreateSymptomRequest struct {
	Label       string `json:"label" binding:"required,max=100"`
	Description string `json:"description" binding:"required,max=255"`
}

type UpdateSymptomRequest struct {
	Label       *string `json:"label" binding:"omitempty,max=100"`
	Description *string `json:"description" binding:"omitempty,max=255"`
}

// CreateSymptom logs a new symptom for the targeted user
func (h *SymptomHandler) CreateSymptom(c *gin.Context) {
	userID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	if !requireSelfOrAdmin(c, userID) {
		return
	}

	var req CreateSymptomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"message": "Invalid request", "details": err.Error()})
		return
	}

	symptom, err := h.symptomService.CreateSymptom(userID, req.Label, req.Description)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrUserNotFound):
			c.JSON(404, gin.H{"message": "User not found"})
		case errors.Is(err, services.ErrSymptomExists):
			c.JSON(409, gin.H{"message": "Symptom already recorded for this user"})
		default:
			_ = c.Error(err)
			c.JSON(500, gin.H{"message": "Failed to create symptom"})
		}
		return
	}

	c.JSON(201, symptom)
}

// GetSymptoms returns all symptoms logged by a user. Any authenticated
// caller may read; mutation stays owner-scoped.
func (h *SymptomHandler) GetSymptoms(c *gin.Context) {
	userID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	symptoms, err := h.symptomService.GetSymptoms(userID)
	if err != nil {
		if errors.Is(err, services.ErrUserNotFound) {
			c.JSON(404, gin.H{"message": "User not found"})
			return
		}
		_ = c.Error(err)
		c.JSON(500, gin.H{"message": "Failed to get symptoms"})
		return
	}

	c.JSON(200, gin.H{"symptoms": symptoms})
}

// UpdateSymptom patches a symptom owned by the targeted user
func (h *SymptomHandler) UpdateSymptom(c *gin.Context) {
	userID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	symptomID, ok := parseIDParam(c, "sid")
	if !ok {
		return
	}
	if !requireSelfOrAdmin(c, userID) {
		return
	}

	var req UpdateSymptomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"message": "Invalid request", "details": err.Error()})
		return
	}

	symptom, err := h.symptomService.UpdateSymptom(userID, symptomID, &services.UpdateSymptomData{
		Label:       req.Label,
		Description: req.Description,
	})
	if err != nil {
		switch {
		case errors.Is(err, services.ErrSymptomNotFound):
			c.JSON(404, gin.H{"message": "Symptom not found"})
		case errors.Is(err, services.ErrSymptomExists):
			c.JSON(409, gin.H{"message": "Symptom already recorded for this user"})
		default:
			_ = c.Error(err)
			c.JSON(500, gin.H{"message": "Failed to update symptom"})
		}
		return
	}

	c.JSON(200, symptom)
}

// DeleteSymptom removes a symptom owned by the targeted user
func (h *SymptomHandler) DeleteSymptom(c *gin.Context) {
	userID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	symptomID, ok := parseIDParam(c, "sid")
	if !ok {
		return
	}
	if !requireSelfOrAdmin(c, userID) {
		return
	}

	if err := h.symptomService.DeleteSymptom(userID, symptomID); err != nil {
		if errors.Is(err, services.ErrSymptomNotFound) {
			c.JSON(404, gin.H{"message": "Symptom not found"})
			return
		}
		_ = c.Error(err)
		c.JSON(500, gin.H{"message": "Failed to delete symptom"})
		return
	}

	c.JSON(200, gin.H{"message": "Symptom deleted successfully"})
}
