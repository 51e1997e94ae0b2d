package notification

import (
	"fmt"

	"treehouse-hotel/constants"
	"treehouse-hotel/dto"
	"treehouse-hotel/models"

	"github.com/goccy/go-json"
	"github.com/olahol/melody"
)

type Service interface {
	Publish(event dto.BookingEvent) error
}

// MelodyService phát sự kiện tới mọi kết nối websocket đang mở
type MelodyService struct {
	m *melody.Melody
}

func NewMelodyService(m *melody.Melody) *MelodyService {
	return &MelodyService{m: m}
}

func (s *MelodyService) Publish(event dto.BookingEvent) error {
	if s.m == nil {
		return fmt.Errorf("melody instance is nil")
	}
	payload, err := json.Marshal(event)
	if err != nil {
		return err
	}
	return s.m.Broadcast(payload)
}

// Nop bỏ qua sự kiện
type Nop struct{}

func (Nop) Publish(dto.BookingEvent) error { return nil }

// EventBuilder dựng BookingEvent từ một lượt đặt
type EventBuilder struct {
	eventType string
	booking   *models.BookedRoom
}

func NewEventBuilder(eventType string, booking *models.BookedRoom) *EventBuilder {
	return &EventBuilder{
		eventType: eventType,
		booking:   booking,
	}
}

func (b *EventBuilder) Build() dto.BookingEvent {
	return dto.BookingEvent{
		Type:                    b.eventType,
		BookingID:               b.booking.BookingID,
		RoomID:                  b.booking.RoomID,
		BookingConfirmationCode: b.booking.BookingConfirmationCode,
		CheckInDate:             b.booking.CheckIn().Format(constants.DateLayout),
		CheckOutDate:            b.booking.CheckOut().Format(constants.DateLayout),
	}
}
