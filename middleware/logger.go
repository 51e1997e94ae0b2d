package middleware

import (
	"time"

	"treehouse-hotel/services/logger"

	"github.com/gin-gonic/gin"
)

// RequestLogger ghi mỗi request một dòng: method, path, ip, status, latency
func RequestLogger(log logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		status := c.Writer.Status()
		line := "%s %s %s %d %s rid=%s"
		args := []interface{}{
			c.Request.Method,
			c.Request.URL.Path,
			c.ClientIP(),
			status,
			time.Since(start).String(),
			c.GetString("requestId"),
		}
		if status >= 500 {
			log.Error(line, args...)
			return
		}
		log.Info(line, args...)
	}
}
