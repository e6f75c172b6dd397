package update_room

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/samueljai120/boom-booking-service/internal/api/middleware"
	"github.com/samueljai120/boom-booking-service/internal/domain"
	"github.com/samueljai120/boom-booking-service/internal/service/rooms"
	"github.com/samueljai120/boom-booking-service/internal/service/rooms/models"
)

type fakeRoomService struct {
	rooms map[int64]*models.RoomResponse
}

func (f *fakeRoomService) SetActive(_ context.Context, _ int64, id int64, isActive bool) error {
	room, ok := f.rooms[id]
	if !ok {
		return rooms.ErrRoomNotFound
	}
	room.IsActive = isActive
	return nil
}

func (f *fakeRoomService) GetByID(_ context.Context, _ int64, id int64) (*models.RoomResponse, error) {
	room, ok := f.rooms[id]
	if !ok {
		return nil, rooms.ErrRoomNotFound
	}
	return room, nil
}

type fakeResolver struct {
	tenant *domain.Tenant
}

func (f *fakeResolver) Resolve(context.Context, string) (*domain.Tenant, error) {
	return f.tenant, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func newTestRouter(svc RoomService) http.Handler {
	h := NewHandler(svc, nopLogger{})
	resolver := &fakeResolver{tenant: &domain.Tenant{ID: 7, Subdomain: "boom", Status: domain.TenantActive}}

	r := mux.NewRouter()
	api := r.PathPrefix("/api/v1").Subrouter()
	api.Use(middleware.TenantMiddleware(resolver, nopLogger{}))
	api.HandleFunc("/rooms/{roomId}", h.Handle).Methods(http.MethodPatch)
	return r
}

func doPatch(t *testing.T, router http.Handler, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPatch, path, strings.NewReader(body))
	req.Header.Set(middleware.TenantHeader, "boom")
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestHandler_DeactivateRoom(t *testing.T) {
	svc := &fakeRoomService{rooms: map[int64]*models.RoomResponse{
		3: {ID: 3, Name: "Karaoke A", Capacity: 6, HourlyRate: 25, IsActive: true},
	}}
	router := newTestRouter(svc)

	rec := doPatch(t, router, "/api/v1/rooms/3", `{"isActive": false}`)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"isActive":false`)
	assert.False(t, svc.rooms[3].IsActive)

	// Повторное включение той же комнаты
	rec = doPatch(t, router, "/api/v1/rooms/3", `{"isActive": true}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, svc.rooms[3].IsActive)
}

func TestHandler_Validation(t *testing.T) {
	svc := &fakeRoomService{rooms: map[int64]*models.RoomResponse{
		3: {ID: 3, Name: "Karaoke A", IsActive: true},
	}}
	router := newTestRouter(svc)

	tests := []struct {
		name       string
		path       string
		body       string
		wantStatus int
	}{
		{"unknown room", "/api/v1/rooms/99", `{"isActive": false}`, http.StatusNotFound},
		{"bad room id", "/api/v1/rooms/abc", `{"isActive": false}`, http.StatusBadRequest},
		{"missing isActive", "/api/v1/rooms/3", `{}`, http.StatusBadRequest},
		{"malformed body", "/api/v1/rooms/3", `{"isActive":`, http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := doPatch(t, router, tt.path, tt.body)
			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}

	// Ни один невалидный запрос не должен менять состояние
	assert.True(t, svc.rooms[3].IsActive)
}
