package errors

import (
	"errors"
	"fmt"
)

// ErrorCode định nghĩa mã lỗi
type ErrorCode string

const (
	// Lookup errors
	ErrCodeNotFound ErrorCode = "NOT_FOUND"

	// Request errors
	ErrCodeInvalidRequest ErrorCode = "INVALID_REQUEST"
	ErrCodeInvalidFormat  ErrorCode = "INVALID_FORMAT"

	// Database errors
	ErrCodeDBError     ErrorCode = "DB_ERROR"
	ErrCodeDBDuplicate ErrorCode = "DB_DUPLICATE"

	// Infrastructure errors
	ErrCodeLockBusy ErrorCode = "LOCK_BUSY"
)

// AppError định nghĩa lỗi của ứng dụng
type AppError struct {
	Code    ErrorCode
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// NewAppError tạo một AppError mới
func NewAppError(code ErrorCode, message string, err error) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// NotFound tạo lỗi NOT_FOUND
func NotFound(message string, err error) *AppError {
	return NewAppError(ErrCodeNotFound, message, err)
}

// InvalidRequest tạo lỗi INVALID_REQUEST
func InvalidRequest(message string, err error) *AppError {
	return NewAppError(ErrCodeInvalidRequest, message, err)
}

// Database bọc lỗi từ tầng lưu trữ
func Database(message string, err error) *AppError {
	return NewAppError(ErrCodeDBError, message, err)
}

// IsAppError kiểm tra xem error có phải là AppError không
func IsAppError(err error) bool {
	var appErr *AppError
	return errors.As(err, &appErr)
}

// GetAppError lấy AppError từ error
func GetAppError(err error) *AppError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	return nil
}

// HasCode kiểm tra mã lỗi của err
func HasCode(err error, code ErrorCode) bool {
	appErr := GetAppError(err)
	return appErr != nil && appErr.Code == code
}

// IsNotFound là lối tắt cho HasCode(err, ErrCodeNotFound)
func IsNotFound(err error) bool {
	return HasCode(err, ErrCodeNotFound)
}

// IsInvalidRequest là lối tắt cho HasCode(err, ErrCodeInvalidRequest)
func IsInvalidRequest(err error) bool {
	return HasCode(err, ErrCodeInvalidRequest) || HasCode(err, ErrCodeInvalidFormat)
}

var (
	// Room errors
	ErrRoomNotFound     = errors.New("room not found")
	ErrRoomNotAvailable = errors.New("room not available")

	// Booking errors
	ErrBookingNotFound  = errors.New("booking not found")
	ErrInvalidDateRange = errors.New("check-in date must come before check-out date")
	ErrCodeExhausted    = errors.New("could not allocate a unique confirmation code")

	// Validation errors
	ErrInvalidInput    = errors.New("invalid input")
	ErrMissingRequired = errors.New("missing required field")
	ErrInvalidFormat   = errors.New("invalid format")
)
