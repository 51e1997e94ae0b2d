package middleware

import (
	stderrors "errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"treehouse-hotel/errors"
	"treehouse-hotel/services/logger"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func serve(handler gin.HandlerFunc) *httptest.ResponseRecorder {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(RequestID(), ErrorHandler(logger.NewLogger(io.Discard, logger.ErrorLevel)))
	r.GET("/", handler)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	return w
}

func TestErrorHandlerMapsCodes(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
		body   string
	}{
		{"not found", errors.NotFound("Room not found", nil), http.StatusNotFound, "Room not found"},
		{"invalid request", errors.InvalidRequest("bad dates", nil), http.StatusBadRequest, "bad dates"},
		{"invalid format", errors.NewAppError(errors.ErrCodeInvalidFormat, "Invalid roomId: x", nil), http.StatusBadRequest, "Invalid roomId: x"},
		{"lock busy", errors.NewAppError(errors.ErrCodeLockBusy, "busy", nil), http.StatusConflict, "busy"},
		{"database", errors.Database("Failed to load", stderrors.New("conn reset")), http.StatusInternalServerError, "Internal server error"},
		{"plain error", stderrors.New("boom"), http.StatusInternalServerError, "Internal server error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := serve(func(c *gin.Context) { c.Error(tt.err) })
			assert.Equal(t, tt.status, w.Code)
			assert.Equal(t, tt.body, w.Body.String())
		})
	}
}

func TestErrorHandlerKeepsWrittenResponse(t *testing.T) {
	w := serve(func(c *gin.Context) {
		c.String(http.StatusAccepted, "done")
		c.Error(stderrors.New("late"))
	})

	assert.Equal(t, http.StatusAccepted, w.Code)
	assert.Equal(t, "done", w.Body.String())
}

func TestRequestIDHeader(t *testing.T) {
	w := serve(func(c *gin.Context) { c.String(http.StatusOK, c.GetString("requestId")) })

	id := w.Header().Get(RequestIDHeader)
	assert.NotEmpty(t, id)
	assert.Equal(t, id, w.Body.String())
}
