package dto

// RoomResponse là DTO gọn của room, nhúng trong BookingResponse
type RoomResponse struct {
	ID        uint    `json:"id"`
	RoomType  string  `json:"roomType"`
	RoomPrice float64 `json:"roomPrice"`
}

// RoomRequest là DTO cho request tạo room
type RoomRequest struct {
	RoomType  string   `json:"roomType" form:"roomType" validate:"required,max=100"`
	RoomPrice *float64 `json:"roomPrice" form:"roomPrice" validate:"required,gte=0"`
}

// UpdateRoomRequest là DTO cho request cập nhật room; trường rỗng giữ nguyên
type UpdateRoomRequest struct {
	RoomType  *string  `json:"roomType" form:"roomType" validate:"omitempty,min=1,max=100"`
	RoomPrice *float64 `json:"roomPrice" form:"roomPrice" validate:"omitempty,gte=0"`
}

// AvailableRoomsQuery là query tìm phòng trống
type AvailableRoomsQuery struct {
	CheckInDate  string `form:"checkInDate" validate:"required"`
	CheckOutDate string `form:"checkOutDate" validate:"required"`
	RoomType     string `form:"roomType"`
}
