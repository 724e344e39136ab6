package repositories

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/hrkit/leave_management_app/internal/core/domain"
)

// LeaveBalanceReader defines read operations for the balance ledger.
type LeaveBalanceReader interface {
	// FindBalance retrieves the ledger row for one (employee, leave type) pair.
	FindBalance(ctx context.Context, employeeID, leaveTypeID string) (*domain.LeaveBalance, error)

	// ListBalancesByEmployee retrieves every ledger row for an employee.
	ListBalancesByEmployee(ctx context.Context, employeeID string) ([]domain.LeaveBalance, error)
}

// AdjustmentResult summarizes an entitlement adjustment run.
type AdjustmentResult struct {
	Updated int // Rows whose TotalAssigned was re-set
	Clamped int // Rows whose Used exceeded the new cap and was truncated
}

// LeaveBalanceWriter defines write operations for the balance ledger.
type LeaveBalanceWriter interface {
	// EnsureBalance idempotently creates the ledger row with
	// TotalAssigned = Remaining = maxPerYear and Used = 0.
	EnsureBalance(ctx context.Context, employeeID, leaveTypeID string, maxPerYear int, createdBy string, now time.Time) error

	// AdjustEntitlement re-sets TotalAssigned to newMax for every holder of the
	// leave type, shifting Remaining by (newMax - oldMax) clamped at zero and
	// truncating Used down to newMax where it exceeds the new cap.
	AdjustEntitlement(ctx context.Context, leaveTypeID string, oldMax, newMax int, updatedBy string, now time.Time) (AdjustmentResult, error)
}

// LeaveBalanceTxOperations are the ledger mutations other repositories compose
// into their own transactions (the approval unit locks and debits through these).
type LeaveBalanceTxOperations interface {
	// EnsureBalanceInTx is EnsureBalance running on an existing transaction.
	EnsureBalanceInTx(ctx context.Context, tx pgx.Tx, employeeID, leaveTypeID string, maxPerYear int, createdBy string, now time.Time) error

	// FindBalanceForUpdate reads the ledger row under a row-level lock.
	FindBalanceForUpdate(ctx context.Context, tx pgx.Tx, employeeID, leaveTypeID string) (*domain.LeaveBalance, error)

	// DebitInTx applies Used += days; Remaining = TotalAssigned - Used to a row
	// previously locked with FindBalanceForUpdate.
	DebitInTx(ctx context.Context, tx pgx.Tx, balanceID string, days decimal.Decimal, updatedBy string, now time.Time) error
}

// LeaveBalanceRepositoryFacade combines all balance repository interfaces.
type LeaveBalanceRepositoryFacade interface {
	LeaveBalanceReader
	LeaveBalanceWriter
	LeaveBalanceTxOperations
}
