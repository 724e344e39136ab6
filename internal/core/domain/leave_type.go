package domain

// LeaveType is a catalog entry: a category of leave with an annual entitlement cap.
type LeaveType struct {
	LeaveTypeID string `json:"leaveTypeID"` // Primary key (UUID)
	Name        string `json:"name"`        // Unique, case-insensitive
	MaxPerYear  int    `json:"maxPerYear"`  // Annual entitlement, days
	AuditFields
}
