package domain

import "time"

// AuditFields holds standard audit information for domain entities.
type AuditFields struct {
	CreatedAt     time.Time `json:"createdAt"`
	CreatedBy     string    `json:"createdBy"` // EmployeeID reference
	LastUpdatedAt time.Time `json:"lastUpdatedAt"`
	LastUpdatedBy string    `json:"lastUpdatedBy"` // EmployeeID reference
}

// Actor is the authenticated caller of a core operation. Identity and role are
// supplied by the transport layer; the core never derives them from ambient
// request state.
type Actor struct {
	EmployeeID string
	Role       Role
}
