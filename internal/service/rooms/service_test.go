package rooms

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/samueljai120/boom-booking-service/internal/domain"
	roomRepo "github.com/samueljai120/boom-booking-service/internal/infra/storage/room"
	"github.com/samueljai120/boom-booking-service/internal/service/rooms/models"
)

type fakeRoomRepo struct {
	rooms  []*domain.Room
	nextID int64
}

func (f *fakeRoomRepo) Create(_ context.Context, room *domain.Room) (*domain.Room, error) {
	for _, existing := range f.rooms {
		if existing.TenantID == room.TenantID && existing.Name == room.Name {
			return nil, roomRepo.ErrRoomNameTaken
		}
	}
	f.nextID++
	room.ID = f.nextID
	f.rooms = append(f.rooms, room)
	return room, nil
}

func (f *fakeRoomRepo) GetByID(_ context.Context, tenantID, id int64) (*domain.Room, error) {
	for _, room := range f.rooms {
		if room.TenantID == tenantID && room.ID == id {
			return room, nil
		}
	}
	return nil, roomRepo.ErrRoomNotFound
}

func (f *fakeRoomRepo) ListByTenant(_ context.Context, tenantID int64, onlyActive bool) ([]*domain.Room, error) {
	var out []*domain.Room
	for _, room := range f.rooms {
		if room.TenantID != tenantID {
			continue
		}
		if onlyActive && !room.IsActive {
			continue
		}
		out = append(out, room)
	}
	return out, nil
}

func (f *fakeRoomRepo) SetActive(_ context.Context, tenantID, id int64, isActive bool) error {
	for _, room := range f.rooms {
		if room.TenantID == tenantID && room.ID == id {
			room.IsActive = isActive
			return nil
		}
	}
	return roomRepo.ErrRoomNotFound
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func TestService_TenantIsolation(t *testing.T) {
	repo := &fakeRoomRepo{}
	svc := NewService(repo, nopLogger{})
	ctx := context.Background()

	created, err := svc.Create(ctx, &models.CreateRoomRequest{
		TenantID:   1,
		Name:       "Room A",
		Capacity:   8,
		HourlyRate: 25,
	})
	require.NoError(t, err)

	// Another tenant must not see or reach the room by ID
	_, err = svc.GetByID(ctx, 2, created.ID)
	assert.ErrorIs(t, err, ErrRoomNotFound)

	list, err := svc.List(ctx, 2, false)
	require.NoError(t, err)
	assert.Empty(t, list.Rooms)

	err = svc.SetActive(ctx, 2, created.ID, false)
	assert.ErrorIs(t, err, ErrRoomNotFound)

	// The owner still can
	got, err := svc.GetByID(ctx, 1, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Room A", got.Name)
}

func TestService_Create_Validation(t *testing.T) {
	tests := []struct {
		name string
		req  models.CreateRoomRequest
	}{
		{"empty name", models.CreateRoomRequest{TenantID: 1, Name: "  ", Capacity: 4, HourlyRate: 10}},
		{"zero capacity", models.CreateRoomRequest{TenantID: 1, Name: "Room", Capacity: 0, HourlyRate: 10}},
		{"capacity above limit", models.CreateRoomRequest{TenantID: 1, Name: "Room", Capacity: domain.MaxRoomCapacity + 1, HourlyRate: 10}},
		{"negative rate", models.CreateRoomRequest{TenantID: 1, Name: "Room", Capacity: 4, HourlyRate: -1}},
	}

	svc := NewService(&fakeRoomRepo{}, nopLogger{})

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Create(context.Background(), &tt.req)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func TestService_Create_DuplicateName(t *testing.T) {
	svc := NewService(&fakeRoomRepo{}, nopLogger{})
	ctx := context.Background()

	req := models.CreateRoomRequest{TenantID: 1, Name: "Karaoke 1", Capacity: 6, HourlyRate: 30}
	_, err := svc.Create(ctx, &req)
	require.NoError(t, err)

	_, err = svc.Create(ctx, &req)
	assert.ErrorIs(t, err, ErrRoomNameTaken)

	// Same name under another tenant is fine
	other := models.CreateRoomRequest{TenantID: 2, Name: "Karaoke 1", Capacity: 6, HourlyRate: 30}
	_, err = svc.Create(ctx, &other)
	assert.NoError(t, err)
}
