package middleware

import (
	"log"

	"github.com/gin-gonic/gin"
)

// ErrorHandler logs every error handlers attach to the context and, when a
// handler bailed out without writing a response, sends a generic 500 so
// internal details never reach the caller.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 {
			return
		}
		for _, e := range c.Errors {
			log.Printf("request error: %s %s: %v", c.Request.Method, c.Request.URL.Path, e.Err)
		}
		if !c.Writer.Written() {
			c.JSON(500, gin.H{"message": "Internal server error"})
		}
	}
}
