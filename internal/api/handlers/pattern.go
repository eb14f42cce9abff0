package handlers

import (
	"symtrack/internal/metrics"
	"symtrack/internal/services"

	"github.com/gin-gonic/gin"
)

// topPatterns caps the number of returned co-occurrence sets.
const topPatterns = 5

type PatternHandler struct {
	patternService *services.PatternService
}

func NewPatternHandler(patternService *services.PatternService) *PatternHandler {
	return &PatternHandler{patternService: patternService}
}

// GetPatterns returns the most common symptom co-occurrence sets across the
// whole population. An empty population yields an empty list.
func (h *PatternHandler) GetPatterns(c *gin.Context) {
	metrics.IncPatternScan()

	patterns, err := h.patternService.MostCommonPatterns(topPatterns)
	if err != nil {
		_ = c.Error(err)
		c.JSON(500, gin.H{"message": "Failed to aggregate patterns"})
		return
	}

	c.JSON(200, gin.H{"most_common_patterns": patterns})
}
