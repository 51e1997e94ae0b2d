package repository

import (
	"context"
	"errors"
	"time"

	apperrors "treehouse-hotel/errors"
	"treehouse-hotel/models"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// BookingRepository là hợp đồng truy cập dữ liệu lượt đặt phòng
type BookingRepository interface {
	FindAll(ctx context.Context) ([]models.BookedRoom, error)
	FindByID(ctx context.Context, bookingID uint) (*models.BookedRoom, error)
	FindByConfirmationCode(ctx context.Context, code string) (*models.BookedRoom, error)
	FindByRoomID(ctx context.Context, roomID uint) ([]models.BookedRoom, error)
	FindByCheckInDate(ctx context.Context, day time.Time) ([]models.BookedRoom, error)
	ExistsByConfirmationCode(ctx context.Context, code string) (bool, error)
	Create(ctx context.Context, booking *models.BookedRoom) error
	// DeleteByID trả về bản ghi đã xoá, hoặc nil nếu không tồn tại
	DeleteByID(ctx context.Context, bookingID uint) (*models.BookedRoom, error)
	Transaction(ctx context.Context, fn func(repo BookingRepository) error) error
}

type gormBookingRepository struct {
	db *gorm.DB
}

// NewBookingRepository tạo BookingRepository dùng GORM
func NewBookingRepository(db *gorm.DB) BookingRepository {
	return &gormBookingRepository{db: db}
}

func (r *gormBookingRepository) withRoom(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).Preload("Room")
}

func (r *gormBookingRepository) FindAll(ctx context.Context) ([]models.BookedRoom, error) {
	var bookings []models.BookedRoom
	if err := r.withRoom(ctx).Order("booking_id").Find(&bookings).Error; err != nil {
		return nil, err
	}
	return bookings, nil
}

func (r *gormBookingRepository) FindByID(ctx context.Context, bookingID uint) (*models.BookedRoom, error) {
	var booking models.BookedRoom
	err := r.withRoom(ctx).First(&booking, "booking_id = ?", bookingID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperrors.ErrBookingNotFound
	}
	if err != nil {
		return nil, err
	}
	return &booking, nil
}

func (r *gormBookingRepository) FindByConfirmationCode(ctx context.Context, code string) (*models.BookedRoom, error) {
	var booking models.BookedRoom
	err := r.withRoom(ctx).Where("booking_confirmation_code = ?", code).First(&booking).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperrors.ErrBookingNotFound
	}
	if err != nil {
		return nil, err
	}
	return &booking, nil
}

func (r *gormBookingRepository) FindByRoomID(ctx context.Context, roomID uint) ([]models.BookedRoom, error) {
	var bookings []models.BookedRoom
	if err := r.withRoom(ctx).Where("room_id = ?", roomID).Order("booking_id").Find(&bookings).Error; err != nil {
		return nil, err
	}
	return bookings, nil
}

func (r *gormBookingRepository) FindByCheckInDate(ctx context.Context, day time.Time) ([]models.BookedRoom, error) {
	var bookings []models.BookedRoom
	err := r.withRoom(ctx).
		Where("check_in_date = ?", datatypes.Date(models.Day(day))).
		Order("booking_id").
		Find(&bookings).Error
	if err != nil {
		return nil, err
	}
	return bookings, nil
}

func (r *gormBookingRepository) ExistsByConfirmationCode(ctx context.Context, code string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.BookedRoom{}).
		Where("booking_confirmation_code = ?", code).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *gormBookingRepository) Create(ctx context.Context, booking *models.BookedRoom) error {
	return translate(r.db.WithContext(ctx).Omit("Room").Create(booking).Error)
}

func (r *gormBookingRepository) DeleteByID(ctx context.Context, bookingID uint) (*models.BookedRoom, error) {
	var deleted *models.BookedRoom
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var booking models.BookedRoom
		err := tx.Preload("Room").First(&booking, "booking_id = ?", bookingID).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		if err != nil {
			return err
		}
		if err := tx.Delete(&models.BookedRoom{}, "booking_id = ?", bookingID).Error; err != nil {
			return err
		}
		deleted = &booking
		return nil
	})
	if err != nil {
		return nil, err
	}
	return deleted, nil
}

func (r *gormBookingRepository) Transaction(ctx context.Context, fn func(repo BookingRepository) error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&gormBookingRepository{db: tx})
	})
}
