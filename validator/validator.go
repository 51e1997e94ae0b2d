package validator

import (
	stderrors "errors"
	"fmt"
	"reflect"
	"strings"
	"time"

	"treehouse-hotel/constants"
	"treehouse-hotel/dto"
	"treehouse-hotel/errors"

	playground "github.com/go-playground/validator/v10"
)

var validate = newValidate()

func newValidate() *playground.Validate {
	v := playground.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		for _, key := range []string{"json", "form"} {
			name := strings.SplitN(fld.Tag.Get(key), ",", 2)[0]
			if name != "" && name != "-" {
				return name
			}
		}
		return ""
	})
	return v
}

// ValidateBookingRequest validate payload đặt phòng và trả về khoảng ngày đã parse
func ValidateBookingRequest(req *dto.BookingRequest) (time.Time, time.Time, error) {
	if req == nil {
		return time.Time{}, time.Time{}, errors.InvalidRequest("Booking request is required", errors.ErrMissingRequired)
	}
	req.Normalize()
	req.GuestFullName = strings.TrimSpace(req.GuestFullName)
	req.GuestEmail = strings.TrimSpace(req.GuestEmail)

	if err := validateStruct(req); err != nil {
		return time.Time{}, time.Time{}, err
	}
	return ParseDateRange(req.CheckInDate, req.CheckOutDate)
}

// ValidateRoomRequest validate thông tin room mới
func ValidateRoomRequest(req *dto.RoomRequest) error {
	if req == nil {
		return errors.InvalidRequest("Room request is required", errors.ErrMissingRequired)
	}
	req.RoomType = strings.TrimSpace(req.RoomType)
	return validateStruct(req)
}

// ValidateUpdateRoomRequest validate thông tin cập nhật room
func ValidateUpdateRoomRequest(req *dto.UpdateRoomRequest) error {
	if req == nil {
		return errors.InvalidRequest("Room request is required", errors.ErrMissingRequired)
	}
	if req.RoomType != nil {
		trimmed := strings.TrimSpace(*req.RoomType)
		req.RoomType = &trimmed
	}
	return validateStruct(req)
}

// ValidateAvailableRoomsQuery validate query tìm phòng trống
func ValidateAvailableRoomsQuery(q *dto.AvailableRoomsQuery) (time.Time, time.Time, error) {
	if err := validateStruct(q); err != nil {
		return time.Time{}, time.Time{}, err
	}
	return ParseDateRange(q.CheckInDate, q.CheckOutDate)
}

// ParseDateRange parse ngày nhận/trả phòng dạng YYYY-MM-DD, yêu cầu checkIn < checkOut
func ParseDateRange(checkInStr, checkOutStr string) (time.Time, time.Time, error) {
	checkIn, err := time.Parse(constants.DateLayout, strings.TrimSpace(checkInStr))
	if err != nil {
		return time.Time{}, time.Time{}, errors.NewAppError(errors.ErrCodeInvalidFormat,
			"Invalid check-in date, expected YYYY-MM-DD", err)
	}
	checkOut, err := time.Parse(constants.DateLayout, strings.TrimSpace(checkOutStr))
	if err != nil {
		return time.Time{}, time.Time{}, errors.NewAppError(errors.ErrCodeInvalidFormat,
			"Invalid check-out date, expected YYYY-MM-DD", err)
	}
	if !checkIn.Before(checkOut) {
		return time.Time{}, time.Time{}, errors.InvalidRequest(
			"Check-in date must come before check-out date", errors.ErrInvalidDateRange)
	}
	return checkIn, checkOut, nil
}

func validateStruct(s interface{}) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}
	var fieldErrs playground.ValidationErrors
	if stderrors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
		return errors.InvalidRequest(describe(fieldErrs[0]), err)
	}
	return errors.InvalidRequest("Invalid request", err)
}

func describe(fe playground.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", fe.Field())
	case "email":
		return fmt.Sprintf("%s must be a valid email address", fe.Field())
	case "min", "gte":
		return fmt.Sprintf("%s must be at least %s", fe.Field(), fe.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s characters", fe.Field(), fe.Param())
	default:
		return fmt.Sprintf("%s is invalid", fe.Field())
	}
}
