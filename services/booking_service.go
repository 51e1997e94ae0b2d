package services

import (
	"context"
	stderrors "errors"
	"strings"
	"time"

	"treehouse-hotel/builders"
	"treehouse-hotel/constants"
	"treehouse-hotel/dto"
	"treehouse-hotel/errors"
	"treehouse-hotel/models"
	"treehouse-hotel/repository"
	"treehouse-hotel/services/logger"
	"treehouse-hotel/services/notification"
	"treehouse-hotel/validator"

	"github.com/texttheater/golang-levenshtein/levenshtein"
)

type BookingServiceInterface interface {
	SaveBooking(ctx context.Context, roomID uint, req *dto.BookingRequest) (string, error)
	CancelBooking(ctx context.Context, bookingID uint) error
	FindByBookingConfirmationCode(ctx context.Context, code string) (*models.BookedRoom, error)
	GetAllBookings(ctx context.Context) ([]models.BookedRoom, error)
	GetAllBookingsByRoomID(ctx context.Context, roomID uint) ([]models.BookedRoom, error)
	SearchByGuestName(ctx context.Context, guestName string) ([]models.BookedRoom, error)
	ArrivalsOn(ctx context.Context, day time.Time) ([]models.BookedRoom, error)
}

type BookingService struct {
	bookings repository.BookingRepository
	rooms    RoomServiceInterface
	locker   RoomLocker
	cache    BookingCache
	notifier notification.Service
	codes    CodeGenerator
	logger   logger.Logger
}

type BookingServiceOptions struct {
	Bookings repository.BookingRepository
	Rooms    RoomServiceInterface
	Locker   RoomLocker
	Cache    BookingCache
	Notifier notification.Service
	Codes    CodeGenerator
	Logger   logger.Logger
}

func NewBookingService(opts BookingServiceOptions) *BookingService {
	s := &BookingService{
		bookings: opts.Bookings,
		rooms:    opts.Rooms,
		locker:   opts.Locker,
		cache:    opts.Cache,
		notifier: opts.Notifier,
		codes:    opts.Codes,
		logger:   opts.Logger,
	}
	if s.locker == nil {
		s.locker = NewLocalRoomLocker()
	}
	if s.cache == nil {
		s.cache = NopBookingCache{}
	}
	if s.notifier == nil {
		s.notifier = notification.Nop{}
	}
	if s.codes == nil {
		s.codes = NumericCode(constants.ConfirmationCodeLength)
	}
	if s.logger == nil {
		s.logger = logger.Nop{}
	}
	return s
}

// errCodeTaken báo mã vừa sinh đã có người dùng, cần sinh lại
var errCodeTaken = stderrors.New("confirmation code already in use")

// SaveBooking kiểm tra trùng lịch rồi lưu lượt đặt, trả về mã xác nhận
func (s *BookingService) SaveBooking(ctx context.Context, roomID uint, req *dto.BookingRequest) (string, error) {
	checkIn, checkOut, err := validator.ValidateBookingRequest(req)
	if err != nil {
		return "", err
	}

	room, found, err := s.rooms.GetRoomByID(ctx, roomID)
	if err != nil {
		return "", err
	}
	if !found {
		return "", errors.NotFound("Room not found", errors.ErrRoomNotFound)
	}

	unlock, err := s.locker.Lock(ctx, roomID)
	if err != nil {
		return "", errors.NewAppError(errors.ErrCodeLockBusy, "Room is being booked by another request, please retry", err)
	}
	defer unlock()

	booking := builders.NewBookedRoomBuilder().
		WithRoom(room).
		WithStay(checkIn, checkOut).
		WithGuest(req.GuestFullName, req.GuestEmail).
		WithGuestCount(req.NumOfAdults, req.NumOfChildren).
		Build()

	for attempt := 0; attempt < constants.ConfirmationCodeAttempts; attempt++ {
		err = s.bookings.Transaction(ctx, func(repo repository.BookingRepository) error {
			existing, err := repo.FindByRoomID(ctx, roomID)
			if err != nil {
				return errors.Database("Failed to load bookings for room", err)
			}
			if !roomIsAvailable(existing, checkIn, checkOut) {
				return errors.InvalidRequest("Sorry, This room is not available for the selected dates;", errors.ErrRoomNotAvailable)
			}
			return s.insert(ctx, repo, booking)
		})
		if stderrors.Is(err, errCodeTaken) || stderrors.Is(err, repository.ErrDuplicateKey) {
			s.logger.Debug("confirmation code collision on room %d, attempt %d", roomID, attempt+1)
			booking.BookingID = 0
			continue
		}
		break
	}
	if stderrors.Is(err, errCodeTaken) || stderrors.Is(err, repository.ErrDuplicateKey) {
		return "", errors.NewAppError(errors.ErrCodeDBDuplicate, "Failed to allocate a confirmation code", errors.ErrCodeExhausted)
	}
	if err != nil {
		if !errors.IsAppError(err) {
			err = errors.Database("Failed to save booking", err)
		}
		return "", err
	}

	s.logger.Info("booking %d saved for room %d (%s)", booking.BookingID, roomID, booking.BookingConfirmationCode)
	s.publish(constants.EventBookingCreated, booking)
	return booking.BookingConfirmationCode, nil
}

func (s *BookingService) insert(ctx context.Context, repo repository.BookingRepository, booking *models.BookedRoom) error {
	code, err := s.codes()
	if err != nil {
		return err
	}
	taken, err := repo.ExistsByConfirmationCode(ctx, code)
	if err != nil {
		return errors.Database("Failed to check confirmation code", err)
	}
	if taken {
		return errCodeTaken
	}
	booking.BookingConfirmationCode = code
	return repo.Create(ctx, booking)
}

// CancelBooking xoá lượt đặt; id không tồn tại được coi là thành công
func (s *BookingService) CancelBooking(ctx context.Context, bookingID uint) error {
	deleted, err := s.bookings.DeleteByID(ctx, bookingID)
	if err != nil {
		return errors.Database("Failed to cancel booking", err)
	}
	if deleted == nil {
		s.logger.Info("cancel booking %d: not found, nothing to do", bookingID)
		return nil
	}
	if err := s.cache.Delete(ctx, deleted.BookingConfirmationCode); err != nil {
		s.logger.Warn("booking %d cancelled but cache eviction failed: %v", bookingID, err)
	}
	s.logger.Info("booking %d cancelled (%s)", bookingID, deleted.BookingConfirmationCode)
	s.publish(constants.EventBookingCancelled, deleted)
	return nil
}

func (s *BookingService) FindByBookingConfirmationCode(ctx context.Context, code string) (*models.BookedRoom, error) {
	code = strings.TrimSpace(code)

	cached, found, err := s.cache.Get(ctx, code)
	if err != nil {
		s.logger.Warn("booking cache read failed for %s: %v", code, err)
	} else if found {
		return cached, nil
	}

	booking, err := s.bookings.FindByConfirmationCode(ctx, code)
	if stderrors.Is(err, errors.ErrBookingNotFound) {
		return nil, errors.NotFound("No booking found with booking code :"+code, err)
	}
	if err != nil {
		return nil, errors.Database("Failed to load booking", err)
	}

	// room có thể bị sửa sau đó nên không lưu kèm vào cache
	entry := *booking
	entry.Room = nil
	if err := s.cache.Set(ctx, &entry); err != nil {
		s.logger.Warn("booking cache write failed for %s: %v", code, err)
	}
	return booking, nil
}

func (s *BookingService) GetAllBookings(ctx context.Context) ([]models.BookedRoom, error) {
	bookings, err := s.bookings.FindAll(ctx)
	if err != nil {
		return nil, errors.Database("Failed to load bookings", err)
	}
	return bookings, nil
}

func (s *BookingService) GetAllBookingsByRoomID(ctx context.Context, roomID uint) ([]models.BookedRoom, error) {
	bookings, err := s.bookings.FindByRoomID(ctx, roomID)
	if err != nil {
		return nil, errors.Database("Failed to load bookings for room", err)
	}
	return bookings, nil
}

// SearchByGuestName tìm theo tên khách, không phân biệt dấu/hoa thường, chấp nhận sai chính tả nhẹ
func (s *BookingService) SearchByGuestName(ctx context.Context, guestName string) ([]models.BookedRoom, error) {
	query := models.FoldGuestName(guestName)
	if query == "" {
		return nil, errors.InvalidRequest("guestName is required", errors.ErrMissingRequired)
	}
	all, err := s.GetAllBookings(ctx)
	if err != nil {
		return nil, err
	}
	matched := make([]models.BookedRoom, 0)
	for _, b := range all {
		if guestNameMatches(b.GuestNameKey, query) {
			matched = append(matched, b)
		}
	}
	return matched, nil
}

// ArrivalsOn trả về các lượt đặt nhận phòng vào ngày day
func (s *BookingService) ArrivalsOn(ctx context.Context, day time.Time) ([]models.BookedRoom, error) {
	bookings, err := s.bookings.FindByCheckInDate(ctx, day)
	if err != nil {
		return nil, errors.Database("Failed to load arrivals", err)
	}
	return bookings, nil
}

func (s *BookingService) publish(eventType string, booking *models.BookedRoom) {
	event := notification.NewEventBuilder(eventType, booking).Build()
	if err := s.notifier.Publish(event); err != nil {
		s.logger.Warn("publish %s for booking %d failed: %v", eventType, booking.BookingID, err)
	}
}

func guestNameMatches(key, query string) bool {
	if strings.Contains(key, query) {
		return true
	}
	// truy vấn quá ngắn thì chỉ so khớp chuỗi con
	if len([]rune(query)) <= constants.MaxGuestNameDistance*2 {
		return false
	}
	candidates := append([]string{key}, strings.Fields(key)...)
	for _, candidate := range candidates {
		if distance(candidate, query) <= constants.MaxGuestNameDistance {
			return true
		}
	}
	return false
}

func distance(a, b string) int {
	return levenshtein.DistanceForStrings([]rune(a), []rune(b), levenshtein.DefaultOptions)
}
