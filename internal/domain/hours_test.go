package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/samueljai120/boom-booking-service/pkg/types"
)

func rule(open, close string, closed bool) BusinessHoursRule {
	return BusinessHoursRule{
		OpenTime:  types.TimeString(open),
		CloseTime: types.TimeString(close),
		IsClosed:  closed,
	}
}

func TestBusinessHoursRule_SpansMidnight(t *testing.T) {
	tests := []struct {
		name string
		rule BusinessHoursRule
		want bool
	}{
		{"regular hours", rule("09:00", "18:00", false), false},
		{"closes after midnight", rule("20:00", "02:00", false), true},
		{"closed flag wins", rule("20:00", "02:00", true), false},
		{"degenerate open==close", rule("10:00", "10:00", false), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.rule.SpansMidnight())
		})
	}
}

func TestBusinessHoursRule_ContainsInterval(t *testing.T) {
	tests := []struct {
		name     string
		rule     BusinessHoursRule
		startMin int
		endMin   int
		want     bool
	}{
		{"closed rule rejects everything", rule("09:00", "18:00", true), 10 * 60, 11 * 60, false},
		{"inside regular hours", rule("09:00", "18:00", false), 10 * 60, 12 * 60, true},
		{"exactly the full window", rule("09:00", "18:00", false), 9 * 60, 18 * 60, true},
		{"starts before opening", rule("09:00", "18:00", false), 8 * 60, 10 * 60, false},
		{"ends after closing", rule("09:00", "18:00", false), 17 * 60, 19 * 60, false},
		{"empty interval", rule("09:00", "18:00", false), 10 * 60, 10 * 60, false},
		{"inverted interval", rule("09:00", "18:00", false), 12 * 60, 10 * 60, false},
		{"degenerate open==close", rule("10:00", "10:00", false), 10 * 60, 11 * 60, false},

		// Spanning rule 20:00-02:00: open window is [20:00, 26:00)
		{"spanning evening interval", rule("20:00", "02:00", false), 23 * 60, 25 * 60, true},
		{"spanning interval over midnight", rule("20:00", "02:00", false), 21 * 60, 25 * 60, true},
		{"spanning full window", rule("20:00", "02:00", false), 20 * 60, 26 * 60, true},
		{"spanning daytime rejected", rule("20:00", "02:00", false), 10 * 60, 11 * 60, false},
		{"spanning early morning tail", rule("20:00", "02:00", false), 0, 2 * 60, true},
		{"spanning tail past close", rule("20:00", "02:00", false), 1 * 60, 3 * 60, false},
		{"spanning gap between close and open", rule("20:00", "02:00", false), 5 * 60, 6 * 60, false},
		{"spanning end past next-day close", rule("20:00", "02:00", false), 22 * 60, 27 * 60, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.rule.ContainsInterval(tt.startMin, tt.endMin))
		})
	}
}

func TestBusinessHoursRule_IsWithinHours(t *testing.T) {
	r := rule("20:00", "02:00", false)
	day := time.Date(2026, 5, 8, 0, 0, 0, 0, time.UTC)

	// [23:00, 01:00 next day) lies inside the 20:00-02:00 window
	assert.True(t, r.IsWithinHours(day.Add(23*time.Hour), day.Add(25*time.Hour)))

	// [10:00, 11:00) does not
	assert.False(t, r.IsWithinHours(day.Add(10*time.Hour), day.Add(11*time.Hour)))

	// An interval longer than the whole window cannot fit
	assert.False(t, r.IsWithinHours(day.Add(20*time.Hour), day.Add(47*time.Hour)))
}

func TestBusinessHoursRule_IsWithinHoursNextDay(t *testing.T) {
	r := rule("20:00", "02:00", false)
	sunday := time.Date(2026, 5, 10, 0, 0, 0, 0, time.UTC) // Saturday rule's tail

	// [01:00, 02:00) on the day AFTER the rule's weekday fits the tail
	assert.True(t, r.IsWithinHoursNextDay(sunday.Add(1*time.Hour), sunday.Add(2*time.Hour)))

	// The tail ends at close: [01:00, 03:00) does not fit
	assert.False(t, r.IsWithinHoursNextDay(sunday.Add(1*time.Hour), sunday.Add(3*time.Hour)))

	// Only the after-midnight tail qualifies, not the rule's own evening
	assert.False(t, r.IsWithinHoursNextDay(sunday.Add(21*time.Hour), sunday.Add(22*time.Hour)))

	// A non-spanning rule has no tail
	nonSpanning := rule("09:00", "18:00", false)
	assert.False(t, nonSpanning.IsWithinHoursNextDay(sunday.Add(10*time.Hour), sunday.Add(11*time.Hour)))
}

func TestWeekSchedule_RuleFor(t *testing.T) {
	var ws WeekSchedule
	ws.Set(BusinessHoursRule{Weekday: time.Friday, OpenTime: "18:00", CloseTime: "23:00"})

	friday := ws.RuleFor(time.Friday)
	assert.False(t, friday.IsClosed)
	assert.Equal(t, time.Friday, friday.Weekday)

	// A weekday without a stored rule counts as closed
	monday := ws.RuleFor(time.Monday)
	assert.True(t, monday.IsClosed)
	assert.Equal(t, time.Monday, monday.Weekday)
}
