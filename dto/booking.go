package dto

import (
	"fmt"
	"strconv"
	"strings"

	"treehouse-hotel/errors"
)

// BookingRequest là payload tạo lượt đặt phòng.
// guestName, numberOfAdults, numberOfChildren là tên trường cũ của frontend.
type BookingRequest struct {
	CheckInDate   string `json:"checkInDate" validate:"required" example:"2024-06-01"`
	CheckOutDate  string `json:"checkOutDate" validate:"required" example:"2024-06-05"`
	GuestFullName string `json:"guestFullName" validate:"required,max=255"`
	GuestEmail    string `json:"guestEmail" validate:"omitempty,email,max=255"`
	NumOfAdults   int    `json:"numOfAdults" validate:"min=1"`
	NumOfChildren int    `json:"numOfChildren" validate:"min=0"`

	GuestName        string `json:"guestName,omitempty" validate:"-" swaggerignore:"true"`
	NumberOfAdults   LenientInt `json:"numberOfAdults" validate:"-" swaggerignore:"true"`
	NumberOfChildren LenientInt `json:"numberOfChildren" validate:"-" swaggerignore:"true"`
}

// Normalize gộp các trường cũ vào trường chuẩn
func (r *BookingRequest) Normalize() {
	if r.GuestFullName == "" {
		r.GuestFullName = r.GuestName
	}
	if r.NumOfAdults == 0 && r.NumberOfAdults.Set {
		r.NumOfAdults = r.NumberOfAdults.Value
	}
	if r.NumOfChildren == 0 && r.NumberOfChildren.Set {
		r.NumOfChildren = r.NumberOfChildren.Value
	}
}

// LenientInt nhận cả số lẫn chuỗi số ("2") vì form cũ gửi giá trị của input.
// null hoặc chuỗi rỗng được coi như không gửi.
type LenientInt struct {
	Value int
	Set   bool
}

// NewLenientInt tạo LenientInt đã có giá trị
func NewLenientInt(v int) LenientInt {
	return LenientInt{Value: v, Set: true}
}

func (n *LenientInt) UnmarshalJSON(data []byte) error {
	raw := strings.TrimSpace(string(data))
	if raw == "null" {
		*n = LenientInt{}
		return nil
	}
	if unquoted, err := strconv.Unquote(raw); err == nil {
		raw = strings.TrimSpace(unquoted)
	}
	if raw == "" {
		*n = LenientInt{}
		return nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return fmt.Errorf("%w: %s is not a whole number", errors.ErrInvalidInput, data)
	}
	*n = NewLenientInt(v)
	return nil
}

func (n LenientInt) MarshalJSON() ([]byte, error) {
	if !n.Set {
		return []byte("null"), nil
	}
	return []byte(strconv.Itoa(n.Value)), nil
}

// BookingResponse là DTO trả về cho một lượt đặt phòng
type BookingResponse struct {
	ID                      uint         `json:"id"`
	CheckInDate             string       `json:"checkInDate"`
	CheckOutDate            string       `json:"checkOutDate"`
	GuestName               string       `json:"guestName"`
	GuestEmail              string       `json:"guestEmail"`
	NumOfAdults             int          `json:"numOfAdults"`
	NumOfChildren           int          `json:"numOfChildren"`
	TotalNumOfGuest         int          `json:"totalNumOfGuest"`
	BookingConfirmationCode string       `json:"bookingConfirmationCode"`
	Room                    RoomResponse `json:"room"`
}

// BookingEvent được phát qua websocket khi có thay đổi
type BookingEvent struct {
	Type                    string `json:"type"`
	BookingID               uint   `json:"bookingId"`
	RoomID                  uint   `json:"roomId"`
	BookingConfirmationCode string `json:"bookingConfirmationCode,omitempty"`
	CheckInDate             string `json:"checkInDate,omitempty"`
	CheckOutDate            string `json:"checkOutDate,omitempty"`
}
