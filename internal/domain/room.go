package domain

import "time"

// Room represents a bookable room belonging to a tenant.
// Room names are unique within a tenant; all lookups are tenant-scoped.
type Room struct {
	ID         int64
	TenantID   int64
	Name       string
	Capacity   int
	HourlyRate float64
	IsActive   bool
	CreatedAt  time.Time
	UpdatedAt  time.Time
	DeletedAt  *time.Time
}

// IsBookable returns true if the room can accept new bookings
func (r *Room) IsBookable() bool {
	return r.IsActive && r.DeletedAt == nil
}
