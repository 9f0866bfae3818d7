package middleware

import (
	"log"
	"net/http"
	"runtime/debug"

	"github.com/narrniar/simple-status-task/internal/dto"

	"github.com/gin-gonic/gin"
)

// RecoveryWithLog turns panics into the uniform 500 envelope. The panic
// value is logged server-side only.
func RecoveryWithLog() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				log.Printf("panic recovered: %v\n%s", err, debug.Stack())
				c.AbortWithStatusJSON(http.StatusInternalServerError, dto.NewErrorResponse(
					http.StatusInternalServerError, "Internal server error occurred", c.Request.URL.Path))
			}
		}()
		c.Next()
	}
}
