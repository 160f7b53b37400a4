package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
)

// SimulatedLatency delays every request by a fixed duration so frontend work
// against a local backend sees realistic network pacing. Disabled when the
// duration is zero.
func SimulatedLatency(delay time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		if delay > 0 {
			time.Sleep(delay)
		}
		c.Next()
	}
}
