package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"gorm.io/datatypes"
)

func date(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

func booking(checkIn, checkOut string) *BookedRoom {
	return &BookedRoom{
		CheckInDate:  datatypes.Date(date(checkIn)),
		CheckOutDate: datatypes.Date(date(checkOut)),
	}
}

func TestBookedRoomOverlaps(t *testing.T) {
	existing := booking("2024-06-01", "2024-06-05")

	tests := []struct {
		name     string
		checkIn  string
		checkOut string
		want     bool
	}{
		{"starts inside", "2024-06-03", "2024-06-07", true},
		{"ends inside", "2024-05-28", "2024-06-02", true},
		{"same range", "2024-06-01", "2024-06-05", true},
		{"contains existing", "2024-05-30", "2024-06-10", true},
		{"inside existing", "2024-06-02", "2024-06-03", true},
		{"same check-in", "2024-06-01", "2024-06-02", true},
		{"back to back after", "2024-06-05", "2024-06-08", false},
		{"back to back before", "2024-05-28", "2024-06-01", false},
		{"entirely before", "2024-05-01", "2024-05-03", false},
		{"entirely after", "2024-07-01", "2024-07-03", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, existing.Overlaps(date(tt.checkIn), date(tt.checkOut)))
		})
	}
}

func TestBookedRoomOverlapsIgnoresTimeOfDay(t *testing.T) {
	existing := booking("2024-06-01", "2024-06-05")
	lateCheckIn := time.Date(2024, 6, 5, 23, 30, 0, 0, time.UTC)

	assert.False(t, existing.Overlaps(lateCheckIn, date("2024-06-07")))
}

func TestBeforeSaveDerivesFields(t *testing.T) {
	b := &BookedRoom{GuestFullName: "  Nguyễn  Văn An ", NumOfAdults: 2, NumOfChildren: 3}

	assert.NoError(t, b.BeforeSave(nil))
	assert.Equal(t, 5, b.TotalNumOfGuest)
	assert.Equal(t, "nguyen van an", b.GuestNameKey)
}

func TestFoldGuestName(t *testing.T) {
	assert.Equal(t, "jose alvarez", FoldGuestName("José  ÁLVAREZ"))
	assert.Equal(t, "", FoldGuestName("   "))
}

func TestDayTruncatesToUTCMidnight(t *testing.T) {
	in := time.Date(2024, 6, 1, 17, 45, 12, 0, time.FixedZone("ICT", 7*3600))

	got := Day(in)

	assert.Equal(t, time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC), got)
}

func TestRoomValidatePrice(t *testing.T) {
	assert.NoError(t, (&Room{RoomPrice: 0}).ValidatePrice())
	assert.Error(t, (&Room{RoomPrice: -1}).ValidatePrice())
}
