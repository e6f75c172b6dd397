package domain

// Default configuration values
const (
	DefaultSlotSizeMinutes = 15
)

// Business validation constants
const (
	MinSlotSizeMinutes = 5
	MaxSlotSizeMinutes = 480 // 8 hours

	MinRoomCapacity = 1
	MaxRoomCapacity = 500

	MaxRoomNameLength     = 100
	MaxCustomerNameLength = 200
	MaxNotesLength        = 500

	// MaxSlotsPerDay is a hard cap on slot generation. Reaching it is a safety
	// stop against malformed rules, not an error.
	MaxSlotsPerDay = 200
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// InactiveStatuses are statuses that release a booking's interval.
// Used when counting conflicts for availability.
var InactiveStatuses = []BookingStatus{
	StatusCancelled,
}

// ActiveStatuses are statuses that hold a booking's interval
var ActiveStatuses = []BookingStatus{
	StatusConfirmed,
	StatusCompleted,
	StatusNoShow,
}
