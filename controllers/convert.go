package controllers

import (
	"context"
	"strconv"

	"treehouse-hotel/constants"
	"treehouse-hotel/dto"
	"treehouse-hotel/errors"
	"treehouse-hotel/models"
	"treehouse-hotel/services"

	"github.com/gin-gonic/gin"
)

func convertToRoomResponse(room models.Room) dto.RoomResponse {
	return dto.RoomResponse{
		ID:        room.ID,
		RoomType:  room.RoomType,
		RoomPrice: room.RoomPrice,
	}
}

func convertToRoomResponses(rooms []models.Room) []dto.RoomResponse {
	out := make([]dto.RoomResponse, 0, len(rooms))
	for _, room := range rooms {
		out = append(out, convertToRoomResponse(room))
	}
	return out
}

// convertToBookingResponse dựng BookingResponse; room được nạp lại qua RoomService nếu chưa preload
func convertToBookingResponse(ctx context.Context, rooms services.RoomServiceInterface, booking models.BookedRoom) (dto.BookingResponse, error) {
	room := booking.Room
	if room == nil {
		found, ok, err := rooms.GetRoomByID(ctx, booking.RoomID)
		if err != nil {
			return dto.BookingResponse{}, err
		}
		if !ok {
			return dto.BookingResponse{}, errors.NotFound("Room not found", errors.ErrRoomNotFound)
		}
		room = found
	}

	return dto.BookingResponse{
		ID:                      booking.BookingID,
		CheckInDate:             booking.CheckIn().Format(constants.DateLayout),
		CheckOutDate:            booking.CheckOut().Format(constants.DateLayout),
		GuestName:               booking.GuestFullName,
		GuestEmail:              booking.GuestEmail,
		NumOfAdults:             booking.NumOfAdults,
		NumOfChildren:           booking.NumOfChildren,
		TotalNumOfGuest:         booking.TotalNumOfGuest,
		BookingConfirmationCode: booking.BookingConfirmationCode,
		Room:                    convertToRoomResponse(*room),
	}, nil
}

func convertToBookingResponses(ctx context.Context, rooms services.RoomServiceInterface, bookings []models.BookedRoom) ([]dto.BookingResponse, error) {
	out := make([]dto.BookingResponse, 0, len(bookings))
	for _, booking := range bookings {
		resp, err := convertToBookingResponse(ctx, rooms, booking)
		if err != nil {
			return nil, err
		}
		out = append(out, resp)
	}
	return out, nil
}

// parseIDParam đọc path param kiểu số nguyên dương
func parseIDParam(c *gin.Context, name string) (uint, error) {
	raw := c.Param(name)
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		return 0, errors.NewAppError(errors.ErrCodeInvalidFormat, "Invalid "+name+": "+raw, errors.ErrInvalidFormat)
	}
	return uint(id), nil
}
