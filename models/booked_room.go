package models

import (
	"strings"
	"time"

	"github.com/fiam/gounidecode/unidecode"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// BookedRoom là một lượt đặt phòng đã được lưu
type BookedRoom struct {
	BookingID               uint           `json:"bookingId" gorm:"column:booking_id;primaryKey"`
	CheckInDate             datatypes.Date `json:"checkInDate" gorm:"not null"`
	CheckOutDate            datatypes.Date `json:"checkOutDate" gorm:"not null"`
	GuestFullName           string         `json:"guestFullName" gorm:"size:255;not null"`
	GuestEmail              string         `json:"guestEmail" gorm:"size:255"`
	GuestNameKey            string         `json:"-" gorm:"size:255;index"`
	NumOfAdults             int            `json:"numOfAdults"`
	NumOfChildren           int            `json:"numOfChildren"`
	TotalNumOfGuest         int            `json:"totalNumOfGuest"`
	BookingConfirmationCode string         `json:"bookingConfirmationCode" gorm:"size:32;not null;uniqueIndex"`
	RoomID                  uint           `json:"roomId" gorm:"not null;index"`
	Room                    *Room          `json:"room,omitempty" gorm:"foreignKey:RoomID"`
	CreatedAt               time.Time      `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt               time.Time      `gorm:"autoUpdateTime" json:"updatedAt"`
}

// BeforeSave giữ các trường dẫn xuất luôn đúng trên mọi đường ghi
func (b *BookedRoom) BeforeSave(tx *gorm.DB) error {
	b.TotalNumOfGuest = b.NumOfAdults + b.NumOfChildren
	b.GuestNameKey = FoldGuestName(b.GuestFullName)
	return nil
}

// CheckIn trả về ngày nhận phòng (UTC, 00:00)
func (b *BookedRoom) CheckIn() time.Time {
	return Day(time.Time(b.CheckInDate))
}

// CheckOut trả về ngày trả phòng (UTC, 00:00)
func (b *BookedRoom) CheckOut() time.Time {
	return Day(time.Time(b.CheckOutDate))
}

// Overlaps kiểm tra khoảng [checkIn, checkOut) có giao với lượt đặt này không.
// Ngày trả phòng của lượt này có thể là ngày nhận phòng của lượt khác.
func (b *BookedRoom) Overlaps(checkIn, checkOut time.Time) bool {
	return Day(checkIn).Before(b.CheckOut()) && b.CheckIn().Before(Day(checkOut))
}

// Day cắt t về đầu ngày theo UTC, giữ nguyên ngày/tháng/năm
func Day(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// FoldGuestName chuyển tên khách về ASCII chữ thường để tìm kiếm
func FoldGuestName(name string) string {
	return strings.Join(strings.Fields(strings.ToLower(unidecode.Unidecode(name))), " ")
}
