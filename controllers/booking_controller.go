package controllers

import (
	stderrors "errors"
	"net/http"

	"treehouse-hotel/constants"
	"treehouse-hotel/dto"
	"treehouse-hotel/errors"
	"treehouse-hotel/response"
	"treehouse-hotel/services"

	"github.com/gin-gonic/gin"
)

type BookingController struct {
	bookings services.BookingServiceInterface
	rooms    services.RoomServiceInterface
}

func NewBookingController(bookings services.BookingServiceInterface, rooms services.RoomServiceInterface) *BookingController {
	return &BookingController{bookings: bookings, rooms: rooms}
}

// GetAllBookings godoc
// @Summary  List all bookings
// @Tags     bookings
// @Produce  json
// @Success  200 {array} dto.BookingResponse
// @Router   /bookings/all-bookings [get]
func (ctrl *BookingController) GetAllBookings(c *gin.Context) {
	bookings, err := ctrl.bookings.GetAllBookings(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	out, err := convertToBookingResponses(c.Request.Context(), ctrl.rooms, bookings)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, out)
}

// GetBookingByConfirmationCode godoc
// @Summary  Find a booking by confirmation code
// @Tags     bookings
// @Produce  json
// @Param    confirmationCode path string true "confirmation code"
// @Success  200 {object} dto.BookingResponse
// @Failure  404 {string} string
// @Router   /bookings/confirmation/{confirmationCode} [get]
func (ctrl *BookingController) GetBookingByConfirmationCode(c *gin.Context) {
	booking, err := ctrl.bookings.FindByBookingConfirmationCode(c.Request.Context(), c.Param("confirmationCode"))
	if err != nil {
		c.Error(err)
		return
	}
	out, err := convertToBookingResponse(c.Request.Context(), ctrl.rooms, *booking)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, out)
}

// SaveBooking godoc
// @Summary  Book a room
// @Tags     bookings
// @Accept   json
// @Produce  plain
// @Param    roomId  path int                true "room id"
// @Param    booking body dto.BookingRequest true "booking"
// @Success  200 {string} string
// @Failure  400 {string} string
// @Failure  404 {string} string
// @Router   /bookings/room/{roomId}/booking [get]
func (ctrl *BookingController) SaveBooking(c *gin.Context) {
	roomID, err := parseIDParam(c, "roomId")
	if err != nil {
		c.Error(err)
		return
	}

	var req dto.BookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		if stderrors.Is(err, errors.ErrInvalidInput) {
			c.Error(errors.InvalidRequest("Guest counts must be whole numbers", err))
			return
		}
		c.Error(errors.InvalidRequest("Invalid booking request", err))
		return
	}

	code, err := ctrl.bookings.SaveBooking(c.Request.Context(), roomID, &req)
	if err != nil {
		c.Error(err)
		return
	}
	response.Message(c, constants.BookedSuccessMessage+code)
}

// CancelBooking godoc
// @Summary  Cancel a booking
// @Tags     bookings
// @Param    bookingId path int true "booking id"
// @Success  200
// @Router   /bookings/booking/{bookingId}/delete [delete]
func (ctrl *BookingController) CancelBooking(c *gin.Context) {
	bookingID, err := parseIDParam(c, "bookingId")
	if err != nil {
		c.Error(err)
		return
	}
	if err := ctrl.bookings.CancelBooking(c.Request.Context(), bookingID); err != nil {
		c.Error(err)
		return
	}
	c.Status(http.StatusOK)
}

// GetBookingsByRoomID godoc
// @Summary  List bookings of a room
// @Tags     bookings
// @Produce  json
// @Param    roomId path int true "room id"
// @Success  200 {array} dto.BookingResponse
// @Router   /bookings/room/{roomId}/bookings [get]
func (ctrl *BookingController) GetBookingsByRoomID(c *gin.Context) {
	roomID, err := parseIDParam(c, "roomId")
	if err != nil {
		c.Error(err)
		return
	}
	bookings, err := ctrl.bookings.GetAllBookingsByRoomID(c.Request.Context(), roomID)
	if err != nil {
		c.Error(err)
		return
	}
	out, err := convertToBookingResponses(c.Request.Context(), ctrl.rooms, bookings)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, out)
}

// SearchBookings godoc
// @Summary  Search bookings by guest name
// @Tags     bookings
// @Produce  json
// @Param    guestName query string true "guest name"
// @Success  200 {array} dto.BookingResponse
// @Router   /bookings/search [get]
func (ctrl *BookingController) SearchBookings(c *gin.Context) {
	bookings, err := ctrl.bookings.SearchByGuestName(c.Request.Context(), c.Query("guestName"))
	if err != nil {
		c.Error(err)
		return
	}
	out, err := convertToBookingResponses(c.Request.Context(), ctrl.rooms, bookings)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, out)
}
