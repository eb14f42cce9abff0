package handlers

import (
	"errors"

	"symtrack/internal/services"

	"github.com/gin-gonic/gin"
)

type ActivityHandler struct {
	activityService *services.ActivityService
}

func NewActivityHandler(activityService *services.ActivityService) *ActivityHandler {
	return &ActivityHandler{activityService: activityService}
}

// GetActivityLogs returns the audit trail for a user. Reads are restricted
// to the owner (or an admin); an audit trail is as sensitive as the actions
// it records.
func (h *ActivityHandler) GetActivityLogs(c *gin.Context) {
	userID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	if !requireSelfOrAdmin(c, userID) {
		return
	}

	logs, err := h.activityService.GetLogsForUser(userID)
	if err != nil {
		if errors.Is(err, services.ErrUserNotFound) {
			c.JSON(404, gin.H{"message": "User not found"})
			return
		}
		_ = c.Error(err)
		c.JSON(500, gin.H{"message": "Failed to get activity logs"})
		return
	}

	c.JSON(200, gin.H{"activity_logs": logs})
}
