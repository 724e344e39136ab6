package services

import (
	"context"

	"github.com/hrkit/leave_management_app/internal/core/domain"
	portsrepo "github.com/hrkit/leave_management_app/internal/core/ports/repositories"
)

// BalanceReaderSvc defines read access to the balance ledger.
type BalanceReaderSvc interface {
	// ListBalances retrieves an employee's ledger rows. Non-admin actors may
	// only read their own; managers additionally their direct reports'.
	ListBalances(ctx context.Context, actor domain.Actor, employeeID string) ([]domain.LeaveBalance, error)
}

// BalanceProvisionerSvc defines the lazy/bulk creation paths of ledger rows.
type BalanceProvisionerSvc interface {
	// EnsureBalance idempotently creates the ledger row for one
	// (employee, leave type) pair. Never called for ADMIN employees.
	EnsureBalance(ctx context.Context, employeeID, leaveTypeID, createdBy string) error

	// ProvisionForEmployee creates ledger rows for every catalog entry when a
	// non-admin employee account is created.
	ProvisionForEmployee(ctx context.Context, employee domain.Employee, createdBy string) error

	// ProvisionForLeaveType creates ledger rows for every active non-admin
	// employee when a catalog entry is created.
	ProvisionForLeaveType(ctx context.Context, leaveType domain.LeaveType, createdBy string) error

	// AdjustEntitlement propagates a MaxPerYear change across all holders,
	// clamping Remaining at zero and truncating over-cap Used.
	AdjustEntitlement(ctx context.Context, leaveTypeID string, oldMax, newMax int, updatedBy string) (portsrepo.AdjustmentResult, error)
}

// BalanceSvcFacade combines all balance ledger service interfaces.
type BalanceSvcFacade interface {
	BalanceReaderSvc
	BalanceProvisionerSvc
}
