package create_booking

import (
	"context"
	"strings"
	"sync"
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
	mu       sync.Mutex
	bookings []*domain.Booking
	nextID   int64
}

func (f *fakeBookingRepo) Create(_ context.Context, booking *domain.Booking) (*domain.Booking, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.nextID++
	booking.ID = f.nextID
	booking.CreatedAt = time.Now()
	booking.UpdatedAt = booking.CreatedAt
	f.bookings = append(f.bookings, booking)
	return booking, nil
}

func (f *fakeBookingRepo) GetForRoomInWindow(_ context.Context, tenantID, roomID int64, from, to time.Time) ([]*domain.Booking, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []*domain.Booking
	for _, b := range f.bookings {
		if b.TenantID == tenantID && b.RoomID == roomID && b.IsActive() && b.Overlaps(from, to) {
			out = append(out, b)
		}
	}
	return out, nil
}

// fakeTxManager сериализует транзакции мьютексом, как это делает FOR UPDATE в БД
type fakeTxManager struct {
	mu sync.Mutex
}

func (f *fakeTxManager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return f.DoSerializable(ctx, fn)
}

func (f *fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	return fn(ctx)
}

func (f *fakeTxManager) DoReadOnly(ctx context.Context, fn func(ctx context.Context) error) error {
	return f.DoSerializable(ctx, fn)
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

// Комната 1 активна (25/час), комната 2 выключена.
// Пятница открыта 17:00-22:00, суббота 20:00-02:00 через полночь.
func newUseCase(t *testing.T, repo *fakeBookingRepo) *UseCase {
	t.Helper()
	uc := NewUseCase(
		&fakeRoomRepo{rooms: map[int64]*domain.Room{
			1: {ID: 1, TenantID: 10, Name: "Room A", Capacity: 8, HourlyRate: 25, IsActive: true},
			2: {ID: 2, TenantID: 10, Name: "Room B", Capacity: 4, HourlyRate: 20, IsActive: false},
		}},
		&fakeHoursRepo{rules: map[time.Weekday]*domain.BusinessHoursRule{
			time.Friday: {
				TenantID: 10, Weekday: time.Friday,
				OpenTime: ts(t, "17:00"), CloseTime: ts(t, "22:00"),
			},
			time.Saturday: {
				TenantID: 10, Weekday: time.Saturday,
				OpenTime: ts(t, "20:00"), CloseTime: ts(t, "02:00"),
			},
		}},
		repo,
		&fakeTxManager{},
		nopLogger{},
	)
	uc.timeProvider = fixedTimeProvider{now: time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)}
	return uc
}

func request(start, end time.Time) *Request {
	return &Request{
		TenantID:      10,
		RoomID:        1,
		CustomerName:  "Alice",
		CustomerEmail: "alice@example.com",
		StartTime:     start,
		EndTime:       end,
	}
}

func TestUseCase_Execute(t *testing.T) {
	uc := newUseCase(t, &fakeBookingRepo{})

	start := time.Date(2026, 3, 13, 18, 0, 0, 0, time.UTC) // пятница
	end := time.Date(2026, 3, 13, 20, 0, 0, 0, time.UTC)

	resp, err := uc.Execute(context.Background(), request(start, end))
	require.NoError(t, err)

	assert.Equal(t, string(domain.StatusConfirmed), resp.Status)
	assert.Equal(t, 50.0, resp.TotalPrice) // 2 часа по 25
	assert.True(t, strings.HasPrefix(resp.Reference, "BK-"))
	assert.Len(t, resp.Reference, 11)
}

func TestUseCase_Execute_Conflicts(t *testing.T) {
	uc := newUseCase(t, &fakeBookingRepo{})
	ctx := context.Background()

	day := time.Date(2026, 3, 13, 0, 0, 0, 0, time.UTC)
	at := func(h int) time.Time { return day.Add(time.Duration(h) * time.Hour) }

	_, err := uc.Execute(ctx, request(at(18), at(20)))
	require.NoError(t, err)

	// [19, 21) пересекает [18, 20)
	_, err = uc.Execute(ctx, request(at(19), at(21)))
	assert.ErrorIs(t, err, ErrSlotConflict)

	// [20, 21) стыкуется в границе, конфликта нет
	_, err = uc.Execute(ctx, request(at(20), at(21)))
	assert.NoError(t, err)
}

func TestUseCase_Execute_CancelledBookingDoesNotConflict(t *testing.T) {
	repo := &fakeBookingRepo{}
	uc := newUseCase(t, repo)
	ctx := context.Background()

	start := time.Date(2026, 3, 13, 18, 0, 0, 0, time.UTC)
	end := time.Date(2026, 3, 13, 20, 0, 0, 0, time.UTC)

	first, err := uc.Execute(ctx, request(start, end))
	require.NoError(t, err)

	repo.mu.Lock()
	for _, b := range repo.bookings {
		if b.ID == first.ID {
			b.Status = domain.StatusCancelled
		}
	}
	repo.mu.Unlock()

	_, err = uc.Execute(ctx, request(start, end))
	assert.NoError(t, err)
}

func TestUseCase_Execute_SpanningMidnight(t *testing.T) {
	uc := newUseCase(t, &fakeBookingRepo{})
	ctx := context.Background()

	// Суббота 20:00-02:00: интервал [23:00 сб, 01:00 вс) внутри окна
	start := time.Date(2026, 3, 14, 23, 0, 0, 0, time.UTC)
	end := time.Date(2026, 3, 15, 1, 0, 0, 0, time.UTC)

	resp, err := uc.Execute(ctx, request(start, end))
	require.NoError(t, err)
	assert.Equal(t, 50.0, resp.TotalPrice)

	// [01:00, 03:00) вылезает за закрытие в 02:00
	start = time.Date(2026, 3, 15, 1, 0, 0, 0, time.UTC)
	end = time.Date(2026, 3, 15, 3, 0, 0, 0, time.UTC)
	_, err = uc.Execute(ctx, request(start, end))
	assert.ErrorIs(t, err, ErrOutsideBusinessHours)
}

func TestUseCase_Execute_NextDaySlotBookable(t *testing.T) {
	uc := newUseCase(t, &fakeBookingRepo{})
	ctx := context.Background()

	// Сетка доступности субботы (20:00-02:00) отдаёт слоты 00:00 и 01:00 с
	// пометкой IsNextDay; их начало приходится на воскресенье, правило для
	// которого отсутствует. Бронирование должно пройти по хвосту субботнего
	// правила
	start := time.Date(2026, 3, 15, 1, 0, 0, 0, time.UTC) // воскресенье
	end := time.Date(2026, 3, 15, 2, 0, 0, 0, time.UTC)

	resp, err := uc.Execute(ctx, request(start, end))
	require.NoError(t, err)
	assert.Equal(t, 25.0, resp.TotalPrice) // 1 час по 25

	// Занятый хвостовой слот конфликтует как обычный
	_, err = uc.Execute(ctx, request(start, end))
	assert.ErrorIs(t, err, ErrSlotConflict)

	// Хвост действует только после полуночи: вечер воскресенья закрыт
	start = time.Date(2026, 3, 15, 21, 0, 0, 0, time.UTC)
	end = time.Date(2026, 3, 15, 22, 0, 0, 0, time.UTC)
	_, err = uc.Execute(ctx, request(start, end))
	assert.ErrorIs(t, err, ErrOutsideBusinessHours)

	// Предыдущий день без окна через полночь хвоста не даёт:
	// пятница закрывается в 22:00, ночь на субботу до 20:00 закрыта
	start = time.Date(2026, 3, 14, 3, 0, 0, 0, time.UTC)
	end = time.Date(2026, 3, 14, 4, 0, 0, 0, time.UTC)
	_, err = uc.Execute(ctx, request(start, end))
	assert.ErrorIs(t, err, ErrOutsideBusinessHours)
}

func TestUseCase_Execute_OutsideBusinessHours(t *testing.T) {
	uc := newUseCase(t, &fakeBookingRepo{})
	ctx := context.Background()

	// Пятница открыта с 17:00
	start := time.Date(2026, 3, 13, 10, 0, 0, 0, time.UTC)
	end := time.Date(2026, 3, 13, 11, 0, 0, 0, time.UTC)
	_, err := uc.Execute(ctx, request(start, end))
	assert.ErrorIs(t, err, ErrOutsideBusinessHours)

	// Понедельник без правила закрыт
	start = time.Date(2026, 3, 9, 18, 0, 0, 0, time.UTC)
	end = time.Date(2026, 3, 9, 19, 0, 0, 0, time.UTC)
	_, err = uc.Execute(ctx, request(start, end))
	assert.ErrorIs(t, err, ErrOutsideBusinessHours)
}

func TestUseCase_Execute_RoomErrors(t *testing.T) {
	uc := newUseCase(t, &fakeBookingRepo{})
	ctx := context.Background()

	start := time.Date(2026, 3, 13, 18, 0, 0, 0, time.UTC)
	end := time.Date(2026, 3, 13, 19, 0, 0, 0, time.UTC)

	req := request(start, end)
	req.RoomID = 99
	_, err := uc.Execute(ctx, req)
	assert.ErrorIs(t, err, ErrRoomNotFound)

	// Комната другого тенанта невидима
	req = request(start, end)
	req.TenantID = 11
	_, err = uc.Execute(ctx, req)
	assert.ErrorIs(t, err, ErrRoomNotFound)

	req = request(start, end)
	req.RoomID = 2
	_, err = uc.Execute(ctx, req)
	assert.ErrorIs(t, err, ErrRoomNotBookable)
}

func TestUseCase_Execute_InvalidRequests(t *testing.T) {
	uc := newUseCase(t, &fakeBookingRepo{})
	ctx := context.Background()

	start := time.Date(2026, 3, 13, 18, 0, 0, 0, time.UTC)
	end := time.Date(2026, 3, 13, 19, 0, 0, 0, time.UTC)

	// Конец не позже начала
	_, err := uc.Execute(ctx, request(end, start))
	assert.ErrorIs(t, err, ErrInvalidInterval)

	_, err = uc.Execute(ctx, request(start, start))
	assert.ErrorIs(t, err, ErrInvalidInterval)

	// Прошлое время
	past := time.Date(2026, 2, 27, 18, 0, 0, 0, time.UTC)
	_, err = uc.Execute(ctx, request(past, past.Add(time.Hour)))
	assert.ErrorIs(t, err, ErrBookingInPast)

	// Пустое имя клиента
	req := request(start, end)
	req.CustomerName = "  "
	_, err = uc.Execute(ctx, req)
	assert.ErrorIs(t, err, ErrInvalidInput)

	// Email без @
	req = request(start, end)
	req.CustomerEmail = "alice.example.com"
	_, err = uc.Execute(ctx, req)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestUseCase_Execute_ConcurrentCreates(t *testing.T) {
	repo := &fakeBookingRepo{}
	uc := newUseCase(t, repo)

	start := time.Date(2026, 3, 13, 18, 0, 0, 0, time.UTC)
	end := time.Date(2026, 3, 13, 20, 0, 0, 0, time.UTC)

	const attempts = 8
	errs := make([]error, attempts)

	var wg sync.WaitGroup
	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = uc.Execute(context.Background(), request(start, end))
		}(i)
	}
	wg.Wait()

	var successes, conflicts int
	for _, err := range errs {
		switch {
		case err == nil:
			successes++
		case assert.ErrorIs(t, err, ErrSlotConflict):
			conflicts++
		}
	}

	assert.Equal(t, 1, successes)
	assert.Equal(t, attempts-1, conflicts)
	assert.Len(t, repo.bookings, 1)
}
