package services

import (
	"context"
	"time"

	"treehouse-hotel/constants"
	"treehouse-hotel/models"

	"github.com/goccy/go-json"
	"github.com/redis/go-redis/v9"
)

// GetFromRedis đọc key và parse JSON vào target; found = false nếu key không tồn tại
func GetFromRedis(ctx context.Context, rdb *redis.Client, key string, target interface{}) (bool, error) {
	cachedData, err := rdb.Get(ctx, key).Bytes()
	if err == redis.Nil {
		return false, nil
	}
	if err != nil {
		return false, err
	}

	if err := json.Unmarshal(cachedData, target); err != nil {
		return false, err
	}
	return true, nil
}

// SetToRedis lưu value dạng JSON với thời gian sống ttl
func SetToRedis(ctx context.Context, rdb *redis.Client, key string, value interface{}, ttl time.Duration) error {
	dataJSON, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return rdb.Set(ctx, key, dataJSON, ttl).Err()
}

// DeleteFromRedis xoá key
func DeleteFromRedis(ctx context.Context, rdb *redis.Client, key string) error {
	return rdb.Del(ctx, key).Err()
}

// BookingCache lưu tạm kết quả tra cứu theo mã xác nhận
type BookingCache interface {
	Get(ctx context.Context, code string) (*models.BookedRoom, bool, error)
	Set(ctx context.Context, booking *models.BookedRoom) error
	Delete(ctx context.Context, codes ...string) error
}

// RedisBookingCache implement BookingCache trên Redis
type RedisBookingCache struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewRedisBookingCache(rdb *redis.Client, ttl time.Duration) *RedisBookingCache {
	if ttl <= 0 {
		ttl = constants.DefaultCacheTTL
	}
	return &RedisBookingCache{rdb: rdb, ttl: ttl}
}

func bookingCacheKey(code string) string {
	return constants.BookingCodeCachePrefix + code
}

func (c *RedisBookingCache) Get(ctx context.Context, code string) (*models.BookedRoom, bool, error) {
	var booking models.BookedRoom
	found, err := GetFromRedis(ctx, c.rdb, bookingCacheKey(code), &booking)
	if err != nil || !found {
		return nil, false, err
	}
	return &booking, true, nil
}

func (c *RedisBookingCache) Set(ctx context.Context, booking *models.BookedRoom) error {
	return SetToRedis(ctx, c.rdb, bookingCacheKey(booking.BookingConfirmationCode), booking, c.ttl)
}

func (c *RedisBookingCache) Delete(ctx context.Context, codes ...string) error {
	if len(codes) == 0 {
		return nil
	}
	keys := make([]string, 0, len(codes))
	for _, code := range codes {
		keys = append(keys, bookingCacheKey(code))
	}
	return c.rdb.Del(ctx, keys...).Err()
}

// NopBookingCache dùng khi không cấu hình Redis
type NopBookingCache struct{}

func (NopBookingCache) Get(context.Context, string) (*models.BookedRoom, bool, error) {
	return nil, false, nil
}

func (NopBookingCache) Set(context.Context, *models.BookedRoom) error { return nil }

func (NopBookingCache) Delete(context.Context, ...string) error { return nil }
