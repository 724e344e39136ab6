package repositories

import (
	"context"

	"github.com/jackc/pgx/v5"
)

// TransactionManager defines methods for transaction management
type TransactionManager interface {
	// Begin starts a new database transaction
	Begin(ctx context.Context) (pgx.Tx, error)

	// Commit commits a transaction
	Commit(ctx context.Context, tx pgx.Tx) error

	// Rollback rolls back a transaction
	Rollback(ctx context.Context, tx pgx.Tx) error
}

// RepositoryProvider bundles every repository implementation for injection
// into the service layer.
type RepositoryProvider struct {
	EmployeeRepo     EmployeeRepositoryFacade
	DepartmentRepo   DepartmentRepository
	LeaveTypeRepo    LeaveTypeRepositoryFacade
	BalanceRepo      LeaveBalanceRepositoryFacade
	ApplicationRepo  LeaveApplicationRepositoryWithTx
	NotificationRepo NotificationRepositoryFacade
}
