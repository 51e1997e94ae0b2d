package builders

import (
	"time"

	"treehouse-hotel/models"

	"gorm.io/datatypes"
)

// BookedRoomBuilder giúp tạo lượt đặt phòng theo từng bước
type BookedRoomBuilder struct {
	booking *models.BookedRoom
}

// NewBookedRoomBuilder tạo instance mới của BookedRoomBuilder
func NewBookedRoomBuilder() *BookedRoomBuilder {
	return &BookedRoomBuilder{
		booking: &models.BookedRoom{},
	}
}

// WithRoom gắn room cho lượt đặt
func (b *BookedRoomBuilder) WithRoom(room *models.Room) *BookedRoomBuilder {
	b.booking.Room = room
	if room != nil {
		b.booking.RoomID = room.ID
	}
	return b
}

// WithStay thêm ngày nhận và trả phòng
func (b *BookedRoomBuilder) WithStay(checkIn, checkOut time.Time) *BookedRoomBuilder {
	b.booking.CheckInDate = datatypes.Date(models.Day(checkIn))
	b.booking.CheckOutDate = datatypes.Date(models.Day(checkOut))
	return b
}

// WithGuest thêm thông tin khách
func (b *BookedRoomBuilder) WithGuest(fullName, email string) *BookedRoomBuilder {
	b.booking.GuestFullName = fullName
	b.booking.GuestEmail = email
	return b
}

// WithGuestCount thêm số người lớn và trẻ em
func (b *BookedRoomBuilder) WithGuestCount(adults, children int) *BookedRoomBuilder {
	b.booking.NumOfAdults = adults
	b.booking.NumOfChildren = children
	b.booking.TotalNumOfGuest = adults + children
	return b
}

// WithConfirmationCode thêm mã xác nhận
func (b *BookedRoomBuilder) WithConfirmationCode(code string) *BookedRoomBuilder {
	b.booking.BookingConfirmationCode = code
	return b
}

// Build tạo lượt đặt hoàn chỉnh
func (b *BookedRoomBuilder) Build() *models.BookedRoom {
	return b.booking
}
