package repository

import (
	"context"
	"errors"

	apperrors "treehouse-hotel/errors"
	"treehouse-hotel/models"

	"gorm.io/gorm"
)

// RoomRepository là hợp đồng truy cập dữ liệu room
type RoomRepository interface {
	FindByID(ctx context.Context, id uint) (*models.Room, error)
	FindAll(ctx context.Context) ([]models.Room, error)
	FindWithBookings(ctx context.Context, roomType string) ([]models.Room, error)
	FindDistinctTypes(ctx context.Context) ([]string, error)
	Create(ctx context.Context, room *models.Room) error
	Save(ctx context.Context, room *models.Room) error
	// Delete xoá room cùng các lượt đặt của nó, trả về mã xác nhận của các lượt đã xoá.
	// found = false nếu room không tồn tại.
	Delete(ctx context.Context, id uint) (codes []string, found bool, err error)
}

type gormRoomRepository struct {
	db *gorm.DB
}

// NewRoomRepository tạo RoomRepository dùng GORM
func NewRoomRepository(db *gorm.DB) RoomRepository {
	return &gormRoomRepository{db: db}
}

func (r *gormRoomRepository) FindByID(ctx context.Context, id uint) (*models.Room, error) {
	var room models.Room
	err := r.db.WithContext(ctx).First(&room, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperrors.ErrRoomNotFound
	}
	if err != nil {
		return nil, err
	}
	return &room, nil
}

func (r *gormRoomRepository) FindAll(ctx context.Context) ([]models.Room, error) {
	var rooms []models.Room
	if err := r.db.WithContext(ctx).Order("id").Find(&rooms).Error; err != nil {
		return nil, err
	}
	return rooms, nil
}

func (r *gormRoomRepository) FindWithBookings(ctx context.Context, roomType string) ([]models.Room, error) {
	var rooms []models.Room
	tx := r.db.WithContext(ctx).Preload("Bookings").Order("id")
	if roomType != "" {
		tx = tx.Where("room_type = ?", roomType)
	}
	if err := tx.Find(&rooms).Error; err != nil {
		return nil, err
	}
	return rooms, nil
}

func (r *gormRoomRepository) FindDistinctTypes(ctx context.Context) ([]string, error) {
	var types []string
	err := r.db.WithContext(ctx).Model(&models.Room{}).
		Distinct("room_type").
		Order("room_type").
		Pluck("room_type", &types).Error
	if err != nil {
		return nil, err
	}
	return types, nil
}

func (r *gormRoomRepository) Create(ctx context.Context, room *models.Room) error {
	return translate(r.db.WithContext(ctx).Create(room).Error)
}

func (r *gormRoomRepository) Save(ctx context.Context, room *models.Room) error {
	return translate(r.db.WithContext(ctx).Save(room).Error)
}

func (r *gormRoomRepository) Delete(ctx context.Context, id uint) ([]string, bool, error) {
	var (
		codes []string
		found bool
	)
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.BookedRoom{}).
			Where("room_id = ?", id).
			Pluck("booking_confirmation_code", &codes).Error; err != nil {
			return err
		}
		if err := tx.Where("room_id = ?", id).Delete(&models.BookedRoom{}).Error; err != nil {
			return err
		}
		res := tx.Delete(&models.Room{}, id)
		if res.Error != nil {
			return res.Error
		}
		found = res.RowsAffected > 0
		return nil
	})
	if err != nil {
		return nil, false, err
	}
	return codes, found, nil
}
