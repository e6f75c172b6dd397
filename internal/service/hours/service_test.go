package hours

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/samueljai120/boom-booking-service/internal/domain"
	"github.com/samueljai120/boom-booking-service/internal/service/hours/models"
)

type fakeHoursRepo struct {
	schedules map[int64]domain.WeekSchedule
}

func newFakeHoursRepo() *fakeHoursRepo {
	return &fakeHoursRepo{schedules: make(map[int64]domain.WeekSchedule)}
}

func (f *fakeHoursRepo) GetWeek(_ context.Context, tenantID int64) (domain.WeekSchedule, error) {
	return f.schedules[tenantID], nil
}

func (f *fakeHoursRepo) GetByWeekday(_ context.Context, tenantID int64, weekday time.Weekday) (*domain.BusinessHoursRule, error) {
	schedule := f.schedules[tenantID]
	rule := schedule.RuleFor(weekday)
	return &rule, nil
}

func (f *fakeHoursRepo) Upsert(_ context.Context, tenantID int64, rules []domain.BusinessHoursRule) error {
	schedule := f.schedules[tenantID]
	for _, rule := range rules {
		schedule.Set(rule)
	}
	f.schedules[tenantID] = schedule
	return nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func TestService_UpdateWeek(t *testing.T) {
	svc := NewService(newFakeHoursRepo(), nopLogger{})
	ctx := context.Background()

	resp, err := svc.UpdateWeek(ctx, &models.UpdateWeekRequest{
		TenantID: 1,
		Rules: []models.RuleRequest{
			{Weekday: 1, OpenTime: "09:00", CloseTime: "17:00"},
			{Weekday: 5, OpenTime: "20:00", CloseTime: "02:00"},
			{Weekday: 0, IsClosed: true},
		},
	})
	require.NoError(t, err)
	require.Len(t, resp.Rules, 7)

	monday := resp.Rules[1]
	assert.Equal(t, "09:00", monday.OpenTime)
	assert.Equal(t, "17:00", monday.CloseTime)
	assert.False(t, monday.SpansMidnight)

	friday := resp.Rules[5]
	assert.Equal(t, "20:00", friday.OpenTime)
	assert.Equal(t, "02:00", friday.CloseTime)
	assert.True(t, friday.SpansMidnight)

	// Days without a rule come back closed
	assert.True(t, resp.Rules[0].IsClosed)
	assert.True(t, resp.Rules[3].IsClosed)
}

func TestService_UpdateWeek_Validation(t *testing.T) {
	tests := []struct {
		name    string
		rules   []models.RuleRequest
		wantErr error
	}{
		{
			"no rules",
			nil,
			ErrInvalidInput,
		},
		{
			"duplicate weekday",
			[]models.RuleRequest{
				{Weekday: 1, OpenTime: "09:00", CloseTime: "17:00"},
				{Weekday: 1, OpenTime: "10:00", CloseTime: "18:00"},
			},
			ErrDuplicateWeekday,
		},
		{
			"weekday out of range",
			[]models.RuleRequest{{Weekday: 7, OpenTime: "09:00", CloseTime: "17:00"}},
			ErrInvalidInput,
		},
		{
			"malformed open time",
			[]models.RuleRequest{{Weekday: 1, OpenTime: "9am", CloseTime: "17:00"}},
			ErrInvalidInput,
		},
		{
			"missing close time",
			[]models.RuleRequest{{Weekday: 1, OpenTime: "09:00"}},
			ErrInvalidInput,
		},
	}

	svc := NewService(newFakeHoursRepo(), nopLogger{})

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.UpdateWeek(context.Background(), &models.UpdateWeekRequest{TenantID: 1, Rules: tt.rules})
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
