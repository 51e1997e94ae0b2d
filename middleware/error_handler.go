package middleware

import (
	"treehouse-hotel/errors"
	"treehouse-hotel/response"
	"treehouse-hotel/services/logger"

	"github.com/gin-gonic/gin"
)

// ErrorHandler chuyển lỗi cuối cùng trong c.Errors thành status + thông báo text
func ErrorHandler(log logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}

		err := c.Errors.Last().Err
		appErr := errors.GetAppError(err)
		if appErr == nil {
			log.Error("%s %s: %v", c.Request.Method, c.Request.URL.Path, err)
			response.ServerError(c)
			return
		}

		switch appErr.Code {
		case errors.ErrCodeNotFound:
			response.NotFound(c, appErr.Message)
		case errors.ErrCodeInvalidRequest, errors.ErrCodeInvalidFormat:
			response.BadRequest(c, appErr.Message)
		case errors.ErrCodeLockBusy:
			response.Conflict(c, appErr.Message)
		default:
			log.Error("%s %s: %v", c.Request.Method, c.Request.URL.Path, appErr)
			response.ServerError(c)
		}
	}
}
