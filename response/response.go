package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Lỗi và thông báo trả về dạng text/plain, dữ liệu trả về dạng JSON.

// Success trả về JSON với status 200
func Success(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, data)
}

// Created trả về JSON với status 201
func Created(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, data)
}

// Message trả về thông báo thành công dạng text
func Message(c *gin.Context, message string) {
	c.String(http.StatusOK, message)
}

// NoContent trả về 204
func NoContent(c *gin.Context) {
	c.Status(http.StatusNoContent)
}

// Error trả về lỗi dạng text với status tuỳ ý
func Error(c *gin.Context, status int, message string) {
	c.String(status, message)
}

// NotFound trả về 404
func NotFound(c *gin.Context, message string) {
	Error(c, http.StatusNotFound, message)
}

// BadRequest trả về 400
func BadRequest(c *gin.Context, message string) {
	Error(c, http.StatusBadRequest, message)
}

// Conflict trả về 409
func Conflict(c *gin.Context, message string) {
	Error(c, http.StatusConflict, message)
}

// ServerError trả về 500
func ServerError(c *gin.Context) {
	Error(c, http.StatusInternalServerError, "Internal server error")
}
