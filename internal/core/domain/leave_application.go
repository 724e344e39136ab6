package domain

import "time"

// LeaveStatus indicates where a leave application sits in its lifecycle.
// PENDING is the only non-terminal status; no transition ever leaves a
// terminal status.
type LeaveStatus string

const (
	StatusPending   LeaveStatus = "PENDING"
	StatusApproved  LeaveStatus = "APPROVED"
	StatusRejected  LeaveStatus = "REJECTED"
	StatusCancelled LeaveStatus = "CANCELLED"
)

// Terminal reports whether s permits no further transitions.
func (s LeaveStatus) Terminal() bool {
	return s == StatusApproved || s == StatusRejected || s == StatusCancelled
}

// LeaveApplication is one request for time off. Dates are inclusive on both
// ends; TotalDays is derived as the calendar span including both endpoints.
type LeaveApplication struct {
	LeaveID         string      `json:"leaveID"` // Primary key (UUID)
	EmployeeID      string      `json:"employeeID"`
	LeaveTypeID     string      `json:"leaveTypeID"`
	StartDate       time.Time   `json:"startDate"`
	EndDate         time.Time   `json:"endDate"`
	TotalDays       int         `json:"totalDays"`
	Reason          string      `json:"reason"`
	Status          LeaveStatus `json:"status"`
	ReviewerComment *string     `json:"reviewerComment,omitempty"`
	AppliedOn       time.Time   `json:"appliedOn"`
	ActionDate      *time.Time  `json:"actionDate,omitempty"`
	AuditFields
}

// DaysBetween returns the inclusive day count of [start, end]. Both arguments
// are expected to be date-only (midnight UTC).
func DaysBetween(start, end time.Time) int {
	return int(end.Sub(start).Hours()/24) + 1
}
