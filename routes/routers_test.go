package routes

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"sync"
	"testing"

	"treehouse-hotel/config"
	"treehouse-hotel/constants"
	"treehouse-hotel/controllers"
	"treehouse-hotel/dto"
	"treehouse-hotel/models"
	"treehouse-hotel/repository"
	"treehouse-hotel/services"
	"treehouse-hotel/services/logger"
	"treehouse-hotel/testutil"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mapCache struct {
	mu    sync.Mutex
	items map[string]models.BookedRoom
}

func (c *mapCache) Get(_ context.Context, code string) (*models.BookedRoom, bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	b, ok := c.items[code]
	if !ok {
		return nil, false, nil
	}
	return &b, true, nil
}

func (c *mapCache) Set(_ context.Context, b *models.BookedRoom) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items[b.BookingConfirmationCode] = *b
	return nil
}

func (c *mapCache) Delete(_ context.Context, codes ...string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, code := range codes {
		delete(c.items, code)
	}
	return nil
}

func newTestRouter(t *testing.T) *gin.Engine {
	return newTestRouterWithCache(t, services.NopBookingCache{})
}

func newTestRouterWithCache(t *testing.T, cache services.BookingCache) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db := testutil.NewTestDB(t)
	roomService := services.NewRoomService(services.RoomServiceOptions{
		Rooms: repository.NewRoomRepository(db),
		Cache: cache,
	})
	bookingService := services.NewBookingService(services.BookingServiceOptions{
		Bookings: repository.NewBookingRepository(db),
		Rooms:    roomService,
		Cache:    cache,
	})

	router := config.NewRouter(config.Config{CorsOrigin: "http://localhost:5173"})
	SetupRoutes(router,
		controllers.NewBookingController(bookingService, roomService),
		controllers.NewRoomController(roomService),
		logger.NewLogger(io.Discard, logger.ErrorLevel),
	)
	return router
}

func do(router *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func addRoom(t *testing.T, router *gin.Engine, roomType string, price float64) dto.RoomResponse {
	t.Helper()
	body, _ := json.Marshal(map[string]interface{}{"roomType": roomType, "roomPrice": price})
	w := do(router, http.MethodPost, "/rooms/add/new-room", string(body))
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var room dto.RoomResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &room))
	return room
}

func bookingBody(checkIn, checkOut string) string {
	return `{"checkInDate":"` + checkIn + `","checkOutDate":"` + checkOut +
		`","guestFullName":"Alice Smith","guestEmail":"alice@example.com","numOfAdults":2,"numOfChildren":1}`
}

func book(t *testing.T, router *gin.Engine, roomID uint, checkIn, checkOut string) string {
	t.Helper()
	w := do(router, http.MethodGet, bookingPath(roomID), bookingBody(checkIn, checkOut))
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	require.True(t, strings.HasPrefix(w.Body.String(), constants.BookedSuccessMessage))
	return strings.TrimPrefix(w.Body.String(), constants.BookedSuccessMessage)
}

func bookingPath(roomID uint) string {
	return "/bookings/room/" + uintToString(roomID) + "/booking"
}

func uintToString(v uint) string {
	return strconv.FormatUint(uint64(v), 10)
}

func TestPing(t *testing.T) {
	w := do(newTestRouter(t), http.MethodGet, "/ping", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "pong", w.Body.String())
}

func TestSaveAndLookupBooking(t *testing.T) {
	router := newTestRouter(t)
	room := addRoom(t, router, "Double", 150)

	code := book(t, router, room.ID, "2024-06-01", "2024-06-05")
	assert.Len(t, code, constants.ConfirmationCodeLength)

	w := do(router, http.MethodGet, "/bookings/confirmation/"+code, "")
	require.Equal(t, http.StatusOK, w.Code)

	var got dto.BookingResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, "Alice Smith", got.GuestName)
	assert.Equal(t, "2024-06-01", got.CheckInDate)
	assert.Equal(t, "2024-06-05", got.CheckOutDate)
	assert.Equal(t, 3, got.TotalNumOfGuest)
	assert.Equal(t, code, got.BookingConfirmationCode)
	assert.Equal(t, room.ID, got.Room.ID)
	assert.Equal(t, "Double", got.Room.RoomType)
}

func TestSaveBookingAcceptsPost(t *testing.T) {
	router := newTestRouter(t)
	room := addRoom(t, router, "Double", 150)

	w := do(router, http.MethodPost, bookingPath(room.ID), bookingBody("2024-06-01", "2024-06-02"))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), constants.BookedSuccessMessage)
}

func TestSaveBookingErrors(t *testing.T) {
	router := newTestRouter(t)
	room := addRoom(t, router, "Double", 150)
	book(t, router, room.ID, "2024-06-01", "2024-06-05")

	tests := []struct {
		name   string
		path   string
		body   string
		status int
		text   string
	}{
		{"overlap", bookingPath(room.ID), bookingBody("2024-06-03", "2024-06-07"), http.StatusBadRequest, "Sorry, This room is not available for the selected dates;"},
		{"reversed dates", bookingPath(room.ID), bookingBody("2024-06-10", "2024-06-08"), http.StatusBadRequest, "Check-in date must come before check-out date"},
		{"unknown room", bookingPath(room.ID + 99), bookingBody("2024-06-10", "2024-06-12"), http.StatusNotFound, "Room not found"},
		{"malformed json", bookingPath(room.ID), `{"checkInDate":`, http.StatusBadRequest, "Invalid booking request"},
		{"bad room id", "/bookings/room/abc/booking", bookingBody("2024-06-10", "2024-06-12"), http.StatusBadRequest, "Invalid roomId: abc"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := do(router, http.MethodGet, tt.path, tt.body)
			assert.Equal(t, tt.status, w.Code)
			assert.Equal(t, tt.text, w.Body.String())
		})
	}

	code := book(t, router, room.ID, "2024-06-05", "2024-06-08")
	assert.NotEmpty(t, code)
}

func TestConfirmationNotFound(t *testing.T) {
	w := do(newTestRouter(t), http.MethodGet, "/bookings/confirmation/0000000000", "")

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "No booking found with booking code :0000000000", w.Body.String())
}

func TestCancelBooking(t *testing.T) {
	router := newTestRouter(t)
	room := addRoom(t, router, "Single", 80)
	code := book(t, router, room.ID, "2024-06-01", "2024-06-02")

	w := do(router, http.MethodGet, "/bookings/all-bookings", "")
	require.Equal(t, http.StatusOK, w.Code)
	var all []dto.BookingResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &all))
	require.Len(t, all, 1)

	w = do(router, http.MethodDelete, "/bookings/booking/"+uintToString(all[0].ID)+"/delete", "")
	assert.Equal(t, http.StatusOK, w.Code)

	w = do(router, http.MethodGet, "/bookings/confirmation/"+code, "")
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = do(router, http.MethodDelete, "/bookings/booking/999/delete", "")
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestBookingsByRoomAndSearch(t *testing.T) {
	router := newTestRouter(t)
	room := addRoom(t, router, "Single", 80)
	book(t, router, room.ID, "2024-06-01", "2024-06-02")

	w := do(router, http.MethodGet, "/bookings/room/"+uintToString(room.ID)+"/bookings", "")
	require.Equal(t, http.StatusOK, w.Code)
	var byRoom []dto.BookingResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &byRoom))
	assert.Len(t, byRoom, 1)

	w = do(router, http.MethodGet, "/bookings/search?guestName=smith", "")
	require.Equal(t, http.StatusOK, w.Code)
	var found []dto.BookingResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &found))
	assert.Len(t, found, 1)

	w = do(router, http.MethodGet, "/bookings/search", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestRoomEndpoints(t *testing.T) {
	router := newTestRouter(t)
	double := addRoom(t, router, "Double", 150)
	addRoom(t, router, "Single", 80)
	book(t, router, double.ID, "2024-06-01", "2024-06-05")

	w := do(router, http.MethodGet, "/rooms/room/types", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `["Double","Single"]`, w.Body.String())

	w = do(router, http.MethodGet, "/rooms/all-rooms", "")
	require.Equal(t, http.StatusOK, w.Code)
	var rooms []dto.RoomResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &rooms))
	assert.Len(t, rooms, 2)

	w = do(router, http.MethodGet, "/rooms/available-rooms?checkInDate=2024-06-02&checkOutDate=2024-06-04", "")
	require.Equal(t, http.StatusOK, w.Code)
	var available []dto.RoomResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &available))
	require.Len(t, available, 1)
	assert.Equal(t, "Single", available[0].RoomType)

	w = do(router, http.MethodGet, "/rooms/available-rooms?checkInDate=2024-06-02", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = do(router, http.MethodPut, "/rooms/update/"+uintToString(double.ID), `{"roomPrice":199.99}`)
	require.Equal(t, http.StatusOK, w.Code)
	var updated dto.RoomResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &updated))
	assert.Equal(t, 199.99, updated.RoomPrice)

	w = do(router, http.MethodDelete, "/rooms/delete/room/"+uintToString(double.ID), "")
	assert.Equal(t, http.StatusNoContent, w.Code)

	w = do(router, http.MethodGet, "/rooms/room/"+uintToString(double.ID), "")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Room not found", w.Body.String())
}

func TestAddRoomRejectsMissingPrice(t *testing.T) {
	w := do(newTestRouter(t), http.MethodPost, "/rooms/add/new-room", `{"roomType":"Suite"}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "roomPrice is required", w.Body.String())
}

func TestCORSPreflight(t *testing.T) {
	router := newTestRouter(t)
	req := httptest.NewRequest(http.MethodOptions, "/bookings/all-bookings", nil)
	req.Header.Set("Origin", "http://localhost:5173")
	req.Header.Set("Access-Control-Request-Method", http.MethodGet)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "http://localhost:5173", w.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "true", w.Header().Get("Access-Control-Allow-Credentials"))
}

func TestCORSPreflightEchoesRequestedHeaders(t *testing.T) {
	router := newTestRouter(t)
	req := httptest.NewRequest(http.MethodOptions, "/bookings/room/1/booking", nil)
	req.Header.Set("Origin", "http://localhost:5173")
	req.Header.Set("Access-Control-Request-Method", http.MethodGet)
	req.Header.Set("Access-Control-Request-Headers", "content-type,x-trace-token")
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "content-type,x-trace-token", w.Header().Get("Access-Control-Allow-Headers"))
}

func TestCORSRejectsOtherOrigin(t *testing.T) {
	router := newTestRouter(t)
	req := httptest.NewRequest(http.MethodOptions, "/bookings/all-bookings", nil)
	req.Header.Set("Origin", "http://evil.example")
	req.Header.Set("Access-Control-Request-Method", http.MethodGet)
	req.Header.Set("Access-Control-Request-Headers", "x-trace-token")
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Empty(t, w.Header().Get("Access-Control-Allow-Headers"))
	assert.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))
}

func TestSaveBookingAcceptsLegacyFormPayload(t *testing.T) {
	router := newTestRouter(t)
	room := addRoom(t, router, "Single", 80)

	body := `{"guestName":"Alice Smith","guestEmail":"alice@example.com","checkInDate":"2024-06-01",` +
		`"checkOutDate":"2024-06-03","numberOfAdults":"2","numberOfChildren":"1"}`
	w := do(router, http.MethodGet, bookingPath(room.ID), body)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	code := strings.TrimPrefix(w.Body.String(), constants.BookedSuccessMessage)

	w = do(router, http.MethodGet, "/bookings/confirmation/"+code, "")
	require.Equal(t, http.StatusOK, w.Code)
	var got dto.BookingResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, "Alice Smith", got.GuestName)
	assert.Equal(t, 2, got.NumOfAdults)
	assert.Equal(t, 1, got.NumOfChildren)
	assert.Equal(t, 3, got.TotalNumOfGuest)

	// ô trẻ em bỏ trống
	body = `{"guestName":"Bob","guestEmail":"bob@example.com","checkInDate":"2024-06-03",` +
		`"checkOutDate":"2024-06-04","numberOfAdults":"1","numberOfChildren":""}`
	w = do(router, http.MethodGet, bookingPath(room.ID), body)
	assert.Equal(t, http.StatusOK, w.Code, w.Body.String())
}

func TestSaveBookingRejectsNonNumericGuestCount(t *testing.T) {
	router := newTestRouter(t)
	room := addRoom(t, router, "Single", 80)

	body := `{"guestName":"Alice","checkInDate":"2024-06-01","checkOutDate":"2024-06-03",` +
		`"numberOfAdults":"two","numberOfChildren":"0"}`
	w := do(router, http.MethodGet, bookingPath(room.ID), body)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Guest counts must be whole numbers", w.Body.String())
}

func TestConfirmationLookupReflectsRoomUpdate(t *testing.T) {
	router := newTestRouterWithCache(t, &mapCache{items: make(map[string]models.BookedRoom)})
	room := addRoom(t, router, "Single", 80)
	code := book(t, router, room.ID, "2024-06-01", "2024-06-03")

	w := do(router, http.MethodGet, "/bookings/confirmation/"+code, "")
	require.Equal(t, http.StatusOK, w.Code)

	w = do(router, http.MethodPut, "/rooms/update/"+uintToString(room.ID), `{"roomType":"Deluxe","roomPrice":250}`)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w = do(router, http.MethodGet, "/bookings/confirmation/"+code, "")
	require.Equal(t, http.StatusOK, w.Code)
	var got dto.BookingResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, code, got.BookingConfirmationCode)
	assert.Equal(t, "Deluxe", got.Room.RoomType)
	assert.Equal(t, 250.0, got.Room.RoomPrice)
}
