package domain

import "time"

// PlanTier represents the subscription plan of a tenant
type PlanTier string

const (
	PlanFree     PlanTier = "free"
	PlanStandard PlanTier = "standard"
	PlanPro      PlanTier = "pro"
)

// TenantStatus represents the lifecycle status of a tenant
type TenantStatus string

const (
	TenantActive    TenantStatus = "active"
	TenantInactive  TenantStatus = "inactive"
	TenantSuspended TenantStatus = "suspended"
)

// Tenant represents a venue account, the unit of data isolation.
// Every room, business-hours rule and booking belongs to exactly one tenant.
type Tenant struct {
	ID        int64
	Name      string
	Subdomain string
	Plan      PlanTier
	Status    TenantStatus
	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt *time.Time
}

// IsActive returns true if the tenant may serve booking traffic
func (t *Tenant) IsActive() bool {
	return t.Status == TenantActive && t.DeletedAt == nil
}

// IsSuspended returns true if the tenant is suspended (e.g. for non-payment)
func (t *Tenant) IsSuspended() bool {
	return t.Status == TenantSuspended
}
