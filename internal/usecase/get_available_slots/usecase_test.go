package get_available_slots

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/samueljai120/boom-booking-service/internal/domain"
	hoursRepo "github.com/samueljai120/boom-booking-service/internal/infra/storage/hours"
	roomRepo "github.com/samueljai120/boom-booking-service/internal/infra/storage/room"
	"github.com/samueljai120/boom-booking-service/pkg/types"
)

type fakeRoomRepo struct {
	rooms map[int64]*domain.Room
}

func (f *fakeRoomRepo) GetByID(_ context.Context, tenantID, id int64) (*domain.Room, error) {
	room, ok := f.rooms[id]
	if !ok || room.TenantID != tenantID {
		return nil, roomRepo.ErrRoomNotFound
	}
	return room, nil
}

type fakeHoursRepo struct {
	rules map[time.Weekday]*domain.BusinessHoursRule
}

func (f *fakeHoursRepo) GetByWeekday(_ context.Context, _ int64, weekday time.Weekday) (*domain.BusinessHoursRule, error) {
	rule, ok := f.rules[weekday]
	if !ok {
		return nil, hoursRepo.ErrRuleNotFound
	}
	return rule, nil
}

type fakeBookingRepo struct {
	bookings []*domain.Booking
}

func (f *fakeBookingRepo) GetForRoomInWindow(_ context.Context, tenantID, roomID int64, from, to time.Time) ([]*domain.Booking, error) {
	var out []*domain.Booking
	for _, b := range f.bookings {
		if b.TenantID == tenantID && b.RoomID == roomID && b.IsActive() && b.Overlaps(from, to) {
			out = append(out, b)
		}
	}
	return out, nil
}

type fixedTimeProvider struct {
	now time.Time
}

func (p fixedTimeProvider) Now() time.Time { return p.now }

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func ts(t *testing.T, s string) types.TimeString {
	t.Helper()
	v, err := types.NewTimeStringFromString(s)
	require.NoError(t, err)
	return v
}

func newUseCase(t *testing.T, rules map[time.Weekday]*domain.BusinessHoursRule, bookings []*domain.Booking) *UseCase {
	t.Helper()
	uc := NewUseCase(
		&fakeRoomRepo{rooms: map[int64]*domain.Room{
			1: {ID: 1, TenantID: 10, Name: "Room A", Capacity: 8, HourlyRate: 25, IsActive: true},
			2: {ID: 2, TenantID: 10, Name: "Room B", Capacity: 4, HourlyRate: 20, IsActive: false},
		}},
		&fakeHoursRepo{rules: rules},
		&fakeBookingRepo{bookings: bookings},
		60,
		nopLogger{},
	)
	uc.timeProvider = fixedTimeProvider{now: time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)}
	return uc
}

func fridayRule(t *testing.T, open, close string) map[time.Weekday]*domain.BusinessHoursRule {
	t.Helper()
	return map[time.Weekday]*domain.BusinessHoursRule{
		time.Friday: {
			TenantID:  10,
			Weekday:   time.Friday,
			OpenTime:  ts(t, open),
			CloseTime: ts(t, close),
		},
	}
}

func TestUseCase_Execute(t *testing.T) {
	friday := time.Date(2026, 3, 13, 0, 0, 0, 0, time.UTC)

	booking := &domain.Booking{
		ID:        1,
		TenantID:  10,
		RoomID:    1,
		StartTime: time.Date(2026, 3, 13, 18, 0, 0, 0, time.UTC),
		EndTime:   time.Date(2026, 3, 13, 20, 0, 0, 0, time.UTC),
		Status:    domain.StatusConfirmed,
	}

	uc := newUseCase(t, fridayRule(t, "17:00", "22:00"), []*domain.Booking{booking})

	resp, err := uc.Execute(context.Background(), &Request{TenantID: 10, RoomID: 1, Date: friday})
	require.NoError(t, err)
	require.Len(t, resp.Slots, 5)

	assert.True(t, resp.Slots[0].Available)  // 17:00-18:00
	assert.False(t, resp.Slots[1].Available) // 18:00-19:00
	assert.False(t, resp.Slots[2].Available) // 19:00-20:00
	assert.True(t, resp.Slots[3].Available)  // 20:00-21:00
	assert.True(t, resp.Slots[4].Available)  // 21:00-22:00
}

func TestUseCase_Execute_NoRuleMeansClosed(t *testing.T) {
	monday := time.Date(2026, 3, 9, 0, 0, 0, 0, time.UTC)
	uc := newUseCase(t, fridayRule(t, "17:00", "22:00"), nil)

	resp, err := uc.Execute(context.Background(), &Request{TenantID: 10, RoomID: 1, Date: monday})
	require.NoError(t, err)
	assert.Empty(t, resp.Slots)
}

func TestUseCase_Execute_ClosedRule(t *testing.T) {
	friday := time.Date(2026, 3, 13, 0, 0, 0, 0, time.UTC)
	rules := map[time.Weekday]*domain.BusinessHoursRule{
		time.Friday: {TenantID: 10, Weekday: time.Friday, IsClosed: true},
	}
	uc := newUseCase(t, rules, nil)

	resp, err := uc.Execute(context.Background(), &Request{TenantID: 10, RoomID: 1, Date: friday})
	require.NoError(t, err)
	assert.Empty(t, resp.Slots)
}

func TestUseCase_Execute_RoomErrors(t *testing.T) {
	friday := time.Date(2026, 3, 13, 0, 0, 0, 0, time.UTC)
	uc := newUseCase(t, fridayRule(t, "17:00", "22:00"), nil)

	_, err := uc.Execute(context.Background(), &Request{TenantID: 10, RoomID: 99, Date: friday})
	assert.ErrorIs(t, err, ErrRoomNotFound)

	// Комната другого тенанта недоступна
	_, err = uc.Execute(context.Background(), &Request{TenantID: 11, RoomID: 1, Date: friday})
	assert.ErrorIs(t, err, ErrRoomNotFound)

	// Выключенная комната не выдаёт слоты
	_, err = uc.Execute(context.Background(), &Request{TenantID: 10, RoomID: 2, Date: friday})
	assert.ErrorIs(t, err, ErrRoomNotBookable)
}

func TestUseCase_Execute_PastDate(t *testing.T) {
	uc := newUseCase(t, fridayRule(t, "17:00", "22:00"), nil)

	past := time.Date(2026, 2, 27, 0, 0, 0, 0, time.UTC)
	_, err := uc.Execute(context.Background(), &Request{TenantID: 10, RoomID: 1, Date: past})
	assert.ErrorIs(t, err, ErrInvalidDate)
}

func TestUseCase_Execute_Validation(t *testing.T) {
	uc := newUseCase(t, nil, nil)
	friday := time.Date(2026, 3, 13, 0, 0, 0, 0, time.UTC)

	_, err := uc.Execute(context.Background(), &Request{TenantID: 0, RoomID: 1, Date: friday})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = uc.Execute(context.Background(), &Request{TenantID: 10, RoomID: 1})
	assert.ErrorIs(t, err, ErrInvalidDate)

	_, err = uc.Execute(context.Background(), &Request{TenantID: 10, RoomID: 1, Date: friday, SlotSizeMinutes: 2})
	assert.ErrorIs(t, err, ErrInvalidInput)
}
