package controllers

import (
	"treehouse-hotel/dto"
	"treehouse-hotel/errors"
	"treehouse-hotel/response"
	"treehouse-hotel/services"
	"treehouse-hotel/validator"

	"github.com/gin-gonic/gin"
)

type RoomController struct {
	rooms services.RoomServiceInterface
}

func NewRoomController(rooms services.RoomServiceInterface) *RoomController {
	return &RoomController{rooms: rooms}
}

// AddNewRoom nhận JSON hoặc form roomType, roomPrice
func (ctrl *RoomController) AddNewRoom(c *gin.Context) {
	var req dto.RoomRequest
	if err := c.ShouldBind(&req); err != nil {
		c.Error(errors.InvalidRequest("Invalid room request", err))
		return
	}
	room, err := ctrl.rooms.AddNewRoom(c.Request.Context(), &req)
	if err != nil {
		c.Error(err)
		return
	}
	response.Created(c, convertToRoomResponse(*room))
}

func (ctrl *RoomController) GetRoomTypes(c *gin.Context) {
	types, err := ctrl.rooms.GetAllRoomTypes(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, types)
}

func (ctrl *RoomController) GetAllRooms(c *gin.Context) {
	rooms, err := ctrl.rooms.GetAllRooms(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, convertToRoomResponses(rooms))
}

func (ctrl *RoomController) GetRoomByID(c *gin.Context) {
	roomID, err := parseIDParam(c, "roomId")
	if err != nil {
		c.Error(err)
		return
	}
	room, found, err := ctrl.rooms.GetRoomByID(c.Request.Context(), roomID)
	if err != nil {
		c.Error(err)
		return
	}
	if !found {
		c.Error(errors.NotFound("Room not found", errors.ErrRoomNotFound))
		return
	}
	response.Success(c, convertToRoomResponse(*room))
}

func (ctrl *RoomController) UpdateRoom(c *gin.Context) {
	roomID, err := parseIDParam(c, "roomId")
	if err != nil {
		c.Error(err)
		return
	}
	var req dto.UpdateRoomRequest
	if err := c.ShouldBind(&req); err != nil {
		c.Error(errors.InvalidRequest("Invalid room request", err))
		return
	}
	room, err := ctrl.rooms.UpdateRoom(c.Request.Context(), roomID, &req)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, convertToRoomResponse(*room))
}

func (ctrl *RoomController) DeleteRoom(c *gin.Context) {
	roomID, err := parseIDParam(c, "roomId")
	if err != nil {
		c.Error(err)
		return
	}
	if err := ctrl.rooms.DeleteRoom(c.Request.Context(), roomID); err != nil {
		c.Error(err)
		return
	}
	response.NoContent(c)
}

// GetAvailableRooms lọc phòng trống theo khoảng ngày và loại phòng
func (ctrl *RoomController) GetAvailableRooms(c *gin.Context) {
	var q dto.AvailableRoomsQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		c.Error(errors.InvalidRequest("Invalid query", err))
		return
	}
	checkIn, checkOut, err := validator.ValidateAvailableRoomsQuery(&q)
	if err != nil {
		c.Error(err)
		return
	}
	rooms, err := ctrl.rooms.GetAvailableRooms(c.Request.Context(), checkIn, checkOut, q.RoomType)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, convertToRoomResponses(rooms))
}
