package routes

import (
	"net/http"

	"treehouse-hotel/controllers"
	_ "treehouse-hotel/docs"
	"treehouse-hotel/middleware"
	"treehouse-hotel/services/logger"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func SetupRoutes(router *gin.Engine, bookingController *controllers.BookingController, roomController *controllers.RoomController, log logger.Logger) {
	router.Use(
		middleware.RequestID(),
		middleware.RequestLogger(log),
		middleware.ErrorHandler(log),
	)

	router.GET("/ping", func(c *gin.Context) {
		c.String(http.StatusOK, "pong")
	})
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	bookings := router.Group("/bookings")
	{
		bookings.GET("/all-bookings", bookingController.GetAllBookings)
		bookings.GET("/confirmation/:confirmationCode", bookingController.GetBookingByConfirmationCode)
		// frontend cũ gửi GET kèm body
		bookings.GET("/room/:roomId/booking", bookingController.SaveBooking)
		bookings.POST("/room/:roomId/booking", bookingController.SaveBooking)
		bookings.GET("/room/:roomId/bookings", bookingController.GetBookingsByRoomID)
		bookings.GET("/search", bookingController.SearchBookings)
		bookings.DELETE("/booking/:bookingId/delete", bookingController.CancelBooking)
	}

	rooms := router.Group("/rooms")
	{
		rooms.POST("/add/new-room", roomController.AddNewRoom)
		rooms.GET("/room/types", roomController.GetRoomTypes)
		rooms.GET("/all-rooms", roomController.GetAllRooms)
		rooms.GET("/room/:roomId", roomController.GetRoomByID)
		rooms.PUT("/update/:roomId", roomController.UpdateRoom)
		rooms.DELETE("/delete/room/:roomId", roomController.DeleteRoom)
		rooms.GET("/available-rooms", roomController.GetAvailableRooms)
	}
}
