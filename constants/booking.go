package constants

import "time"

// DateLayout là định dạng ngày dùng trong request/response
const DateLayout = "2006-01-02"

// Booking
const (
	ConfirmationCodeLength   = 10
	ConfirmationCodeAttempts = 5
	BookedSuccessMessage     = "Room booked successfully, Your confirmation code is :"
)

// Cache
const (
	BookingCodeCachePrefix = "booking:code:"
	DefaultCacheTTL        = 10 * time.Minute
)

// Room lock
const (
	RoomLockPrefix  = "lock:room:"
	RoomLockTTL     = 10 * time.Second
	RoomLockRetry   = 50 * time.Millisecond
	RoomLockTimeout = 5 * time.Second
)

// Websocket events
const (
	EventBookingCreated   = "booking.created"
	EventBookingCancelled = "booking.cancelled"
)

// Search
const MaxGuestNameDistance = 2
