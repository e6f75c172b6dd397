package domain

import "github.com/samueljai120/boom-booking-service/pkg/types"

// Slot represents a candidate booking start time of fixed duration derived
// from a tenant's business hours. IsNextDay marks slots whose wall-clock time
// has rolled past midnight relative to the queried date (possible only for
// midnight-spanning rules).
type Slot struct {
	StartTime types.TimeString
	EndTime   types.TimeString
	IsNextDay bool
}
