package domain

import (
	"errors"
	"math"
	"time"
)

// ErrInvalidInterval is returned when a price is requested for an interval
// whose end does not lie strictly after its start. Upstream validation should
// reject such intervals before pricing; this is a defensive check.
var ErrInvalidInterval = errors.New("domain: booking interval end must be after start")

// ComputePrice computes the total charge for occupying a room at the given
// hourly rate over [start, end). Fractional hours are charged proportionally;
// the result is rounded half-up to two decimal places.
func ComputePrice(hourlyRate float64, start, end time.Time) (float64, error) {
	if !end.After(start) {
		return 0, ErrInvalidInterval
	}
	hours := end.Sub(start).Hours()
	return math.Round(hours*hourlyRate*100) / 100, nil
}
