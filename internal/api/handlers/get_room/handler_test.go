package get_room

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"

	"github.com/samueljai120/boom-booking-service/internal/api/middleware"
	"github.com/samueljai120/boom-booking-service/internal/domain"
	"github.com/samueljai120/boom-booking-service/internal/service/rooms"
	"github.com/samueljai120/boom-booking-service/internal/service/rooms/models"
)

type fakeRoomService struct {
	rooms map[int64]*models.RoomResponse
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

func TestHandler_GetRoom(t *testing.T) {
	svc := &fakeRoomService{rooms: map[int64]*models.RoomResponse{
		3: {ID: 3, Name: "Karaoke A", Capacity: 6, HourlyRate: 25, IsActive: true},
	}}
	h := NewHandler(svc, nopLogger{})
	resolver := &fakeResolver{tenant: &domain.Tenant{ID: 7, Subdomain: "boom", Status: domain.TenantActive}}

	r := mux.NewRouter()
	api := r.PathPrefix("/api/v1").Subrouter()
	api.Use(middleware.TenantMiddleware(resolver, nopLogger{}))
	api.HandleFunc("/rooms/{roomId}", h.Handle).Methods(http.MethodGet)

	tests := []struct {
		name       string
		path       string
		wantStatus int
		wantBody   string
	}{
		{"existing room", "/api/v1/rooms/3", http.StatusOK, `"name":"Karaoke A"`},
		{"unknown room", "/api/v1/rooms/99", http.StatusNotFound, ""},
		{"bad room id", "/api/v1/rooms/abc", http.StatusBadRequest, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			req.Header.Set(middleware.TenantHeader, "boom")
			rec := httptest.NewRecorder()

			r.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantBody != "" {
				assert.Contains(t, rec.Body.String(), tt.wantBody)
			}
		})
	}
}
