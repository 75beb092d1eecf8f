package api

import (
	"log"
	"time"

	"github.com/gin-gonic/gin"
)

// requestLogger logs end-to-end request duration and response size for
// basic observability.
func requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		log.Printf(
			"method=%s path=%s status=%d bytes=%d dur=%dms",
			c.Request.Method,
			c.Request.URL.RequestURI(),
			c.Writer.Status(),
			c.Writer.Size(),
			time.Since(start).Milliseconds(),
		)
	}
}
