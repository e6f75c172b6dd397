package domain

import (
	"time"

	"github.com/samueljai120/boom-booking-service/pkg/types"
)

// BusinessHoursRule defines the open window of a tenant for one weekday.
// When CloseTime is earlier than OpenTime the rule spans midnight: the venue
// opens on day D at OpenTime and closes on day D+1 at CloseTime. Internally a
// spanning rule is treated as the half-open minute range [open, close+1440),
// which makes containment and slot generation plain range checks.
type BusinessHoursRule struct {
	ID        int64
	TenantID  int64
	Weekday   time.Weekday
	OpenTime  types.TimeString
	CloseTime types.TimeString
	IsClosed  bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

// SpansMidnight returns true if the rule's close time falls on the next day
func (r *BusinessHoursRule) SpansMidnight() bool {
	if r.IsClosed {
		return false
	}
	return r.CloseTime.IsBefore(r.OpenTime)
}

// Window returns the open window as half-open minutes [open, closeAbs) where
// closeAbs exceeds 1440 for a midnight-spanning rule. A closed rule or a
// degenerate rule (open == close) yields an empty window.
func (r *BusinessHoursRule) Window() (openMin, closeAbs int, err error) {
	if r.IsClosed {
		return 0, 0, nil
	}
	openMin, err = r.OpenTime.Minutes()
	if err != nil {
		return 0, 0, err
	}
	closeMin, err := r.CloseTime.Minutes()
	if err != nil {
		return 0, 0, err
	}
	if closeMin == openMin {
		return openMin, openMin, nil
	}
	if closeMin < openMin {
		closeMin += 24 * 60
	}
	return openMin, closeMin, nil
}

// ContainsInterval reports whether the half-open interval [startMin, endMin)
// lies entirely inside the rule's open window. Minutes are relative to
// midnight of the booking's start day; endMin may exceed 1440 when the
// interval itself crosses midnight.
func (r *BusinessHoursRule) ContainsInterval(startMin, endMin int) bool {
	if r.IsClosed || endMin <= startMin {
		return false
	}

	openMin, closeAbs, err := r.Window()
	if err != nil || openMin == closeAbs {
		return false
	}

	if closeAbs <= 24*60 {
		// Non-spanning rule: single range on one day's clock
		return startMin >= openMin && endMin <= closeAbs
	}

	// Spanning rule: the window is [open, 1440) on day D plus [0, close) on
	// day D+1. A start in the evening branch may run up to close on the next
	// day; a start in the early-morning branch must end by close that morning.
	closeMin := closeAbs - 24*60
	if startMin >= openMin {
		return endMin <= closeAbs
	}
	if startMin < closeMin {
		return endMin <= closeMin
	}
	return false
}

// IsWithinHours reports whether the booking interval [start, end) lies inside
// the rule's open window. Both endpoints are full instants; minutes are
// computed relative to midnight of start's calendar day so that an end past
// midnight compares against close+24h rather than wrapping ambiguously.
func (r *BusinessHoursRule) IsWithinHours(start, end time.Time) bool {
	midnight := time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, start.Location())
	startMin := int(start.Sub(midnight) / time.Minute)
	endMin := int(end.Sub(midnight) / time.Minute)
	return r.ContainsInterval(startMin, endMin)
}

// IsWithinHoursNextDay reports whether [start, end) lies inside the
// after-midnight tail of a midnight-spanning rule. The rule belongs to the
// calendar day BEFORE start; minutes are anchored to that day's midnight, so
// only intervals starting past midnight (startMin >= 1440) qualify. A Saturday
// rule {20:00, 02:00} accepts [Sunday 01:00, Sunday 02:00) through this path.
func (r *BusinessHoursRule) IsWithinHoursNextDay(start, end time.Time) bool {
	if !r.SpansMidnight() {
		return false
	}
	midnight := time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, start.Location()).AddDate(0, 0, -1)
	startMin := int(start.Sub(midnight) / time.Minute)
	endMin := int(end.Sub(midnight) / time.Minute)
	if startMin < 24*60 {
		return false
	}
	return r.ContainsInterval(startMin, endMin)
}

// WeekSchedule holds at most one rule per weekday, indexed by time.Weekday
// (Sunday = 0). A zero entry counts as closed.
type WeekSchedule [7]BusinessHoursRule

// RuleFor returns the rule for the given weekday
func (ws *WeekSchedule) RuleFor(weekday time.Weekday) BusinessHoursRule {
	rule := ws[int(weekday)]
	if rule.OpenTime.IsZero() && rule.CloseTime.IsZero() {
		rule.IsClosed = true
	}
	rule.Weekday = weekday
	return rule
}

// Set stores a rule under its weekday
func (ws *WeekSchedule) Set(rule BusinessHoursRule) {
	ws[int(rule.Weekday)] = rule
}
