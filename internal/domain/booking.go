package domain

import "time"

// BookingStatus represents the status of a booking
type BookingStatus string

const (
	StatusConfirmed BookingStatus = "confirmed"
	StatusCancelled BookingStatus = "cancelled"
	StatusCompleted BookingStatus = "completed"
	StatusNoShow    BookingStatus = "no_show"
)

// Booking represents a reserved time interval in a room.
// Start and End are full instants with half-open semantics: a booking ending
// exactly when another starts does not overlap it. TotalPrice is denormalized
// at creation time and never recomputed, even if the room's rate changes.
type Booking struct {
	ID        int64
	Reference string
	TenantID  int64
	RoomID    int64

	CustomerName  string
	CustomerEmail string
	CustomerPhone *string

	StartTime time.Time
	EndTime   time.Time
	Status    BookingStatus

	TotalPrice float64
	Notes      *string

	CancellationReason *string
	CancelledAt        *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt *time.Time
}

// IsActive returns true if the booking holds its interval.
// Completed and no-show bookings still occupied their interval; only a
// cancelled booking releases it.
func (b *Booking) IsActive() bool {
	return b.Status != StatusCancelled && b.DeletedAt == nil
}

// CanBeCancelled returns true if the booking can still be cancelled
func (b *Booking) CanBeCancelled() bool {
	return b.Status == StatusConfirmed
}

// Overlaps reports whether the booking's interval intersects [start, end)
// under half-open semantics: [a,b) and [c,d) overlap iff a < d and c < b.
func (b *Booking) Overlaps(start, end time.Time) bool {
	return b.StartTime.Before(end) && start.Before(b.EndTime)
}

// HasConflict reports whether the candidate interval [start, end) overlaps any
// active booking of the given room. Bookings of other tenants or rooms and
// cancelled bookings never conflict. Returns true on the first hit.
func HasConflict(tenantID, roomID int64, start, end time.Time, existing []*Booking) bool {
	for _, b := range existing {
		if b.TenantID != tenantID || b.RoomID != roomID {
			continue
		}
		if !b.IsActive() {
			continue
		}
		if b.Overlaps(start, end) {
			return true
		}
	}
	return false
}

// TenantBookingsFilter filters booking queries for one tenant.
// TenantID is mandatory; everything else narrows the result.
type TenantBookingsFilter struct {
	TenantID        int64
	RoomID          *int64
	StartsBefore    *time.Time
	EndsAfter       *time.Time
	Status          *BookingStatus
	IncludeInactive bool
}
