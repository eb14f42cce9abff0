package middleware

import (
	"log"
	"time"

	"symtrack/internal/metrics"
	"symtrack/internal/models"
	"symtrack/internal/services"

	"github.com/gin-gonic/gin"
)

// Audit appends one activity log row after the handler runs, success or
// failure, attributed to the authenticated actor. When no actor is present
// (e.g. a failed login) nothing is written. A failed audit write is logged
// and counted but never surfaces to the caller.
func Audit(activityService *services.ActivityService, action string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		userID, exists := c.Get("user_id")
		if !exists {
			return
		}

		entry := &models.ActivityLog{
			UserID:     userID.(uint),
			Action:     action,
			Path:       c.Request.URL.Path,
			Method:     c.Request.Method,
			IPAddress:  c.ClientIP(),
			UserAgent:  c.GetHeader("User-Agent"),
			RequestID:  c.GetString("request_id"),
			StatusCode: c.Writer.Status(),
			CreatedAt:  time.Now().UTC(),
		}
		if err := activityService.Record(entry); err != nil {
			metrics.IncAuditFailure()
			log.Printf("audit write dropped for %s %s: %v", c.Request.Method, c.Request.URL.Path, err)
		}
	}
}
