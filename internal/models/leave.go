package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// LeaveStatus mirrors domain.LeaveStatus at the database layer.
type LeaveStatus string

const (
	StatusPending   LeaveStatus = "PENDING"
	StatusApproved  LeaveStatus = "APPROVED"
	StatusRejected  LeaveStatus = "REJECTED"
	StatusCancelled LeaveStatus = "CANCELLED"
)

// LeaveType represents a row of the leave_types table.
type LeaveType struct {
	LeaveTypeID string `db:"leave_type_id"`
	Name        string `db:"name"`
	MaxPerYear  int    `db:"max_per_year"`
	AuditFields
}

// LeaveBalance represents a row of the leave_balances table.
// (employee_id, leave_type_id) carries a unique constraint.
type LeaveBalance struct {
	BalanceID     string          `db:"balance_id"`
	EmployeeID    string          `db:"employee_id"`
	LeaveTypeID   string          `db:"leave_type_id"`
	TotalAssigned decimal.Decimal `db:"total_assigned"`
	Used          decimal.Decimal `db:"used"`
	Remaining     decimal.Decimal `db:"remaining"`
	AuditFields
}

// LeaveApplication represents a row of the leave_applications table.
type LeaveApplication struct {
	LeaveID         string      `db:"leave_id"`
	EmployeeID      string      `db:"employee_id"`
	LeaveTypeID     string      `db:"leave_type_id"`
	StartDate       time.Time   `db:"start_date"`
	EndDate         time.Time   `db:"end_date"`
	TotalDays       int         `db:"total_days"`
	Reason          string      `db:"reason"`
	Status          LeaveStatus `db:"status"`
	ReviewerComment *string     `db:"reviewer_comment"` // Nullable
	AppliedOn       time.Time   `db:"applied_on"`
	ActionDate      *time.Time  `db:"action_date"` // Nullable
	AuditFields
}

// NotificationKind mirrors domain.NotificationKind at the database layer.
type NotificationKind string

// Notification represents a row of the notifications table.
type Notification struct {
	NotificationID string           `db:"notification_id"`
	EmployeeID     string           `db:"employee_id"`
	Kind           NotificationKind `db:"kind"`
	Message        string           `db:"message"`
	CreatedOn      time.Time        `db:"created_on"`
	IsRead         bool             `db:"is_read"`
}
