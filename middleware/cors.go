package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// ReflectRequestedHeaders cho preflight hợp lệ trả lại đúng các header client xin
// trong Access-Control-Allow-Headers. Phải đặt trước cors.New.
func ReflectRequestedHeaders() gin.HandlerFunc {
	return func(c *gin.Context) {
		requested := c.GetHeader("Access-Control-Request-Headers")
		if c.Request.Method != http.MethodOptions || requested == "" {
			c.Next()
			return
		}
		c.Writer = &preflightWriter{ResponseWriter: c.Writer, requested: requested}
		c.Next()
	}
}

type preflightWriter struct {
	gin.ResponseWriter
	requested string
}

func (w *preflightWriter) WriteHeaderNow() {
	// chỉ khi cors đã chấp nhận origin
	if !w.Written() && w.Header().Get("Access-Control-Allow-Origin") != "" {
		w.Header().Set("Access-Control-Allow-Headers", w.requested)
	}
	w.ResponseWriter.WriteHeaderNow()
}
