package jobs

import (
	"context"
	"time"

	"treehouse-hotel/constants"
	"treehouse-hotel/models"
	"treehouse-hotel/services/logger"

	"github.com/robfig/cron/v3"
)

// ArrivalsSource cung cấp danh sách khách nhận phòng theo ngày
type ArrivalsSource interface {
	ArrivalsOn(ctx context.Context, day time.Time) ([]models.BookedRoom, error)
}

// InitCronJobs khởi tạo các cron jobs
func InitCronJobs(c *cron.Cron, spec string, src ArrivalsSource, log logger.Logger) error {
	_, err := c.AddFunc(spec, func() {
		if _, err := RunArrivalsDigest(context.Background(), src, log, time.Now()); err != nil {
			log.Error("arrivals digest failed: %v", err)
		}
	})
	if err != nil {
		return err
	}

	c.Start()
	log.Info("cron jobs initialized (arrivals digest: %q)", spec)
	return nil
}

// RunArrivalsDigest ghi log các lượt nhận phòng trong ngày của now, trả về số lượt
func RunArrivalsDigest(ctx context.Context, src ArrivalsSource, log logger.Logger, now time.Time) (int, error) {
	day := models.Day(now)
	arrivals, err := src.ArrivalsOn(ctx, day)
	if err != nil {
		return 0, err
	}

	guests := 0
	for _, b := range arrivals {
		guests += b.TotalNumOfGuest
		log.Info("arrival %s: room %d, %s, %d guest(s), until %s",
			b.BookingConfirmationCode, b.RoomID, b.GuestFullName, b.TotalNumOfGuest,
			b.CheckOut().Format(constants.DateLayout))
	}
	log.Info("%d arrival(s), %d guest(s) on %s", len(arrivals), guests, day.Format(constants.DateLayout))
	return len(arrivals), nil
}
