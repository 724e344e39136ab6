package repositories

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/hrkit/leave_management_app/internal/core/domain"
)

// LeaveApplicationReader defines read operations for leave application data.
type LeaveApplicationReader interface {
	// FindApplicationByID retrieves a specific application by its identifier.
	FindApplicationByID(ctx context.Context, leaveID string) (*domain.LeaveApplication, error)

	// ListApplicationsByEmployee retrieves an employee's applications, newest first.
	ListApplicationsByEmployee(ctx context.Context, employeeID string, limit, offset int) ([]domain.LeaveApplication, error)

	// ListPendingByEmployeeIDs retrieves pending applications filed by any of the
	// given employees, oldest first. Used for a reviewer's work queue.
	ListPendingByEmployeeIDs(ctx context.Context, employeeIDs []string, limit, offset int) ([]domain.LeaveApplication, error)

	// HasOverlappingApplication reports whether the employee has a PENDING or
	// APPROVED application whose inclusive date range intersects [start, end].
	// excludeLeaveID, when non-nil, is ignored in the search.
	HasOverlappingApplication(ctx context.Context, employeeID string, start, end time.Time, excludeLeaveID *string) (bool, error)

	// CountApplicationsByLeaveType reports how many applications reference a
	// leave type. Used to block catalog deletion while references exist.
	CountApplicationsByLeaveType(ctx context.Context, leaveTypeID string) (int, error)
}

// DecisionParams carries everything an approve/reject transaction needs.
type DecisionParams struct {
	LeaveID         string
	ReviewerID      string
	ReviewerComment *string
	ActionDate      time.Time

	// Approve path only: the days to debit and the entitlement cap used to
	// lazily create the balance row if it is missing.
	DebitDays  decimal.Decimal
	MaxPerYear int

	// Notification to the applicant, persisted in the same transaction.
	Notification domain.Notification
}

// LeaveApplicationWriter defines write operations for leave application data.
// The multi-row operations are atomic: either every mutation commits or none does.
type LeaveApplicationWriter interface {
	// SaveSubmission persists a new application together with its reviewer
	// notifications in a single transaction.
	SaveSubmission(ctx context.Context, application domain.LeaveApplication, notifications []domain.Notification) error

	// ApproveApplication re-reads the application row under a lock, verifies it
	// is still PENDING, debits the balance ledger, marks the application
	// APPROVED and records the applicant notification, all in one transaction.
	// Returns the updated application.
	ApproveApplication(ctx context.Context, params DecisionParams) (*domain.LeaveApplication, error)

	// RejectApplication is ApproveApplication without the ledger mutation.
	RejectApplication(ctx context.Context, params DecisionParams) (*domain.LeaveApplication, error)

	// CancelApplication transitions a PENDING application to CANCELLED on
	// behalf of its owner, clearing the reviewer comment and action date.
	CancelApplication(ctx context.Context, leaveID, ownerEmployeeID string, updatedAt time.Time) (*domain.LeaveApplication, error)
}

// LeaveApplicationRepositoryFacade combines all application repository interfaces.
type LeaveApplicationRepositoryFacade interface {
	LeaveApplicationReader
	LeaveApplicationWriter
}

// LeaveApplicationRepositoryWithTx extends the facade with transaction capabilities.
type LeaveApplicationRepositoryWithTx interface {
	LeaveApplicationRepositoryFacade
	TransactionManager
}
