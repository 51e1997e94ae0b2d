package services

import (
	"context"
	stderrors "errors"
	"time"

	"treehouse-hotel/dto"
	"treehouse-hotel/errors"
	"treehouse-hotel/models"
	"treehouse-hotel/repository"
	"treehouse-hotel/services/logger"
	"treehouse-hotel/validator"
)

type RoomServiceInterface interface {
	// GetRoomByID trả về (nil, false, nil) khi room không tồn tại
	GetRoomByID(ctx context.Context, id uint) (*models.Room, bool, error)
	AddNewRoom(ctx context.Context, req *dto.RoomRequest) (*models.Room, error)
	GetAllRooms(ctx context.Context) ([]models.Room, error)
	GetAllRoomTypes(ctx context.Context) ([]string, error)
	UpdateRoom(ctx context.Context, id uint, req *dto.UpdateRoomRequest) (*models.Room, error)
	DeleteRoom(ctx context.Context, id uint) error
	GetAvailableRooms(ctx context.Context, checkIn, checkOut time.Time, roomType string) ([]models.Room, error)
}

type RoomService struct {
	rooms  repository.RoomRepository
	cache  BookingCache
	logger logger.Logger
}

type RoomServiceOptions struct {
	Rooms  repository.RoomRepository
	Cache  BookingCache
	Logger logger.Logger
}

func NewRoomService(opts RoomServiceOptions) *RoomService {
	s := &RoomService{
		rooms:  opts.Rooms,
		cache:  opts.Cache,
		logger: opts.Logger,
	}
	if s.cache == nil {
		s.cache = NopBookingCache{}
	}
	if s.logger == nil {
		s.logger = logger.Nop{}
	}
	return s
}

func (s *RoomService) GetRoomByID(ctx context.Context, id uint) (*models.Room, bool, error) {
	room, err := s.rooms.FindByID(ctx, id)
	if stderrors.Is(err, errors.ErrRoomNotFound) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, errors.Database("Failed to load room", err)
	}
	return room, true, nil
}

func (s *RoomService) AddNewRoom(ctx context.Context, req *dto.RoomRequest) (*models.Room, error) {
	if err := validator.ValidateRoomRequest(req); err != nil {
		return nil, err
	}
	room := &models.Room{RoomType: req.RoomType, RoomPrice: *req.RoomPrice}
	if err := s.rooms.Create(ctx, room); err != nil {
		return nil, errors.Database("Failed to add room", err)
	}
	s.logger.Info("room %d added (%s, %.2f)", room.ID, room.RoomType, room.RoomPrice)
	return room, nil
}

func (s *RoomService) GetAllRooms(ctx context.Context) ([]models.Room, error) {
	rooms, err := s.rooms.FindAll(ctx)
	if err != nil {
		return nil, errors.Database("Failed to load rooms", err)
	}
	return rooms, nil
}

func (s *RoomService) GetAllRoomTypes(ctx context.Context) ([]string, error) {
	types, err := s.rooms.FindDistinctTypes(ctx)
	if err != nil {
		return nil, errors.Database("Failed to load room types", err)
	}
	return types, nil
}

func (s *RoomService) UpdateRoom(ctx context.Context, id uint, req *dto.UpdateRoomRequest) (*models.Room, error) {
	if err := validator.ValidateUpdateRoomRequest(req); err != nil {
		return nil, err
	}
	room, found, err := s.GetRoomByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, errors.NotFound("Room not found", errors.ErrRoomNotFound)
	}
	if req.RoomType != nil {
		room.RoomType = *req.RoomType
	}
	if req.RoomPrice != nil {
		room.RoomPrice = *req.RoomPrice
	}
	if err := room.ValidatePrice(); err != nil {
		return nil, errors.InvalidRequest(err.Error(), err)
	}
	if err := s.rooms.Save(ctx, room); err != nil {
		return nil, errors.Database("Failed to update room", err)
	}
	return room, nil
}

func (s *RoomService) DeleteRoom(ctx context.Context, id uint) error {
	codes, found, err := s.rooms.Delete(ctx, id)
	if err != nil {
		return errors.Database("Failed to delete room", err)
	}
	if !found {
		return errors.NotFound("Room not found", errors.ErrRoomNotFound)
	}
	if err := s.cache.Delete(ctx, codes...); err != nil {
		s.logger.Warn("room %d deleted but cache eviction failed: %v", id, err)
	}
	s.logger.Info("room %d deleted with %d booking(s)", id, len(codes))
	return nil
}

func (s *RoomService) GetAvailableRooms(ctx context.Context, checkIn, checkOut time.Time, roomType string) ([]models.Room, error) {
	rooms, err := s.rooms.FindWithBookings(ctx, roomType)
	if err != nil {
		return nil, errors.Database("Failed to load rooms", err)
	}
	available := make([]models.Room, 0, len(rooms))
	for _, room := range rooms {
		if roomIsAvailable(room.Bookings, checkIn, checkOut) {
			room.Bookings = nil
			available = append(available, room)
		}
	}
	return available, nil
}

// roomIsAvailable kiểm tra [checkIn, checkOut) không giao với lượt đặt nào
func roomIsAvailable(existing []models.BookedRoom, checkIn, checkOut time.Time) bool {
	for i := range existing {
		if existing[i].Overlaps(checkIn, checkOut) {
			return false
		}
	}
	return true
}
