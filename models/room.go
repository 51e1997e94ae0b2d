package models

import (
	"fmt"
	"time"
)

type Room struct {
	ID        uint         `json:"id" gorm:"primaryKey"`
	RoomType  string       `json:"roomType" gorm:"size:100;not null;index"`
	RoomPrice float64      `json:"roomPrice" gorm:"type:decimal(10,2);not null"`
	CreatedAt time.Time    `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time    `gorm:"autoUpdateTime" json:"updatedAt"`
	Bookings  []BookedRoom `json:"-" gorm:"foreignKey:RoomID;constraint:OnDelete:CASCADE"`
}

func (r *Room) ValidatePrice() error {
	if r.RoomPrice < 0 {
		return fmt.Errorf("invalid room price: %.2f, must not be negative", r.RoomPrice)
	}
	return nil
}
