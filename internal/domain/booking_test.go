package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func at(day time.Time, hour, minute int) time.Time {
	return day.Add(time.Duration(hour)*time.Hour + time.Duration(minute)*time.Minute)
}

func TestBooking_Overlaps(t *testing.T) {
	day := time.Date(2026, 5, 8, 0, 0, 0, 0, time.UTC)
	b := &Booking{StartTime: at(day, 18, 0), EndTime: at(day, 20, 0), Status: StatusConfirmed}

	tests := []struct {
		name  string
		start time.Time
		end   time.Time
		want  bool
	}{
		{"identical interval", at(day, 18, 0), at(day, 20, 0), true},
		{"partial overlap at end", at(day, 19, 0), at(day, 21, 0), true},
		{"partial overlap at start", at(day, 17, 0), at(day, 19, 0), true},
		{"candidate contains booking", at(day, 17, 0), at(day, 21, 0), true},
		{"booking contains candidate", at(day, 18, 30), at(day, 19, 30), true},
		{"adjacent after: end meets start", at(day, 16, 0), at(day, 18, 0), false},
		{"adjacent before: start meets end", at(day, 20, 0), at(day, 21, 0), false},
		{"fully before", at(day, 10, 0), at(day, 11, 0), false},
		{"fully after", at(day, 21, 0), at(day, 22, 0), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, b.Overlaps(tt.start, tt.end))
		})
	}
}

func TestHasConflict(t *testing.T) {
	day := time.Date(2026, 5, 8, 0, 0, 0, 0, time.UTC)
	existing := []*Booking{
		{TenantID: 1, RoomID: 10, StartTime: at(day, 18, 0), EndTime: at(day, 20, 0), Status: StatusConfirmed},
		{TenantID: 1, RoomID: 10, StartTime: at(day, 12, 0), EndTime: at(day, 14, 0), Status: StatusCancelled},
		{TenantID: 2, RoomID: 10, StartTime: at(day, 9, 0), EndTime: at(day, 11, 0), Status: StatusConfirmed},
		{TenantID: 1, RoomID: 11, StartTime: at(day, 9, 0), EndTime: at(day, 11, 0), Status: StatusConfirmed},
	}

	// Overlaps the confirmed booking
	assert.True(t, HasConflict(1, 10, at(day, 19, 0), at(day, 21, 0), existing))

	// Back-to-back with the confirmed booking: no conflict
	assert.False(t, HasConflict(1, 10, at(day, 20, 0), at(day, 21, 0), existing))

	// Overlaps only a cancelled booking: no conflict
	assert.False(t, HasConflict(1, 10, at(day, 12, 30), at(day, 13, 30), existing))

	// Same room id but another tenant's booking does not count
	assert.False(t, HasConflict(1, 10, at(day, 9, 0), at(day, 11, 0), existing))

	// Another room of the same tenant does not count
	assert.False(t, HasConflict(1, 10, at(day, 9, 30), at(day, 10, 30), existing))
}

func TestBooking_IsActive(t *testing.T) {
	now := time.Now()
	assert.True(t, (&Booking{Status: StatusConfirmed}).IsActive())
	assert.True(t, (&Booking{Status: StatusCompleted}).IsActive())
	assert.True(t, (&Booking{Status: StatusNoShow}).IsActive())
	assert.False(t, (&Booking{Status: StatusCancelled}).IsActive())
	assert.False(t, (&Booking{Status: StatusConfirmed, DeletedAt: &now}).IsActive())
}

func TestBooking_CanBeCancelled(t *testing.T) {
	assert.True(t, (&Booking{Status: StatusConfirmed}).CanBeCancelled())
	assert.False(t, (&Booking{Status: StatusCancelled}).CanBeCancelled())
	assert.False(t, (&Booking{Status: StatusCompleted}).CanBeCancelled())
	assert.False(t, (&Booking{Status: StatusNoShow}).CanBeCancelled())
}
