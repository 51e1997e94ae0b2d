package services

import (
	"context"
	"errors"
	"strconv"
	"sync"
	"time"

	"treehouse-hotel/constants"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// ErrLockTimeout được trả về khi không giành được khoá room trong thời gian chờ
var ErrLockTimeout = errors.New("timed out waiting for room lock")

// RoomLocker tuần tự hoá việc kiểm tra trùng lịch + ghi lượt đặt trên cùng một room
type RoomLocker interface {
	Lock(ctx context.Context, roomID uint) (unlock func(), err error)
}

// LocalRoomLocker khoá trong tiến trình, mỗi room một slot.
// Slot bị xoá khi không còn ai giữ hoặc chờ.
type LocalRoomLocker struct {
	mu    sync.Mutex
	slots map[uint]*roomSlot
}

type roomSlot struct {
	ch   chan struct{}
	refs int
}

func NewLocalRoomLocker() *LocalRoomLocker {
	return &LocalRoomLocker{slots: make(map[uint]*roomSlot)}
}

func (l *LocalRoomLocker) acquire(roomID uint) *roomSlot {
	l.mu.Lock()
	defer l.mu.Unlock()
	slot, ok := l.slots[roomID]
	if !ok {
		slot = &roomSlot{ch: make(chan struct{}, 1)}
		l.slots[roomID] = slot
	}
	slot.refs++
	return slot
}

func (l *LocalRoomLocker) release(roomID uint, slot *roomSlot) {
	l.mu.Lock()
	defer l.mu.Unlock()
	slot.refs--
	if slot.refs == 0 {
		delete(l.slots, roomID)
	}
}

func (l *LocalRoomLocker) Lock(ctx context.Context, roomID uint) (func(), error) {
	slot := l.acquire(roomID)
	select {
	case slot.ch <- struct{}{}:
		var once sync.Once
		return func() {
			once.Do(func() {
				<-slot.ch
				l.release(roomID, slot)
			})
		}, nil
	case <-ctx.Done():
		l.release(roomID, slot)
		return nil, ctx.Err()
	}
}

// chỉ xoá key khi token còn là của mình
var releaseScript = redis.NewScript(`
if redis.call("get", KEYS[1]) == ARGV[1] then
	return redis.call("del", KEYS[1])
end
return 0
`)

// RedisRoomLocker khoá dùng chung giữa các instance qua SET NX PX
type RedisRoomLocker struct {
	rdb     *redis.Client
	ttl     time.Duration
	retry   time.Duration
	timeout time.Duration
}

func NewRedisRoomLocker(rdb *redis.Client) *RedisRoomLocker {
	return &RedisRoomLocker{
		rdb:     rdb,
		ttl:     constants.RoomLockTTL,
		retry:   constants.RoomLockRetry,
		timeout: constants.RoomLockTimeout,
	}
}

func (l *RedisRoomLocker) Lock(ctx context.Context, roomID uint) (func(), error) {
	key := constants.RoomLockPrefix + strconv.FormatUint(uint64(roomID), 10)
	token := uuid.NewString()

	ctx, cancel := context.WithTimeout(ctx, l.timeout)
	defer cancel()

	ticker := time.NewTicker(l.retry)
	defer ticker.Stop()
	for {
		ok, err := l.rdb.SetNX(ctx, key, token, l.ttl).Result()
		if err != nil && !errors.Is(err, context.DeadlineExceeded) {
			return nil, err
		}
		if ok {
			var once sync.Once
			return func() {
				once.Do(func() {
					releaseScript.Run(context.Background(), l.rdb, []string{key}, token)
				})
			}, nil
		}
		select {
		case <-ctx.Done():
			return nil, ErrLockTimeout
		case <-ticker.C:
		}
	}
}
