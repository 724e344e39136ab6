package pgsql

import (
	"github.com/jackc/pgx/v5/pgxpool"

	portsrepo "github.com/hrkit/leave_management_app/internal/core/ports/repositories"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	employeeRepo := newPgxEmployeeRepository(dbPool)
	departmentRepo := newPgxDepartmentRepository(dbPool)
	leaveTypeRepo := newPgxLeaveTypeRepository(dbPool)
	balanceRepo := newPgxLeaveBalanceRepository(dbPool)
	notificationRepo := newPgxNotificationRepository(dbPool)
	applicationRepo := newPgxLeaveApplicationRepository(dbPool, balanceRepo, notificationRepo)

	return portsrepo.RepositoryProvider{
		EmployeeRepo:     employeeRepo,
		DepartmentRepo:   departmentRepo,
		LeaveTypeRepo:    leaveTypeRepo,
		BalanceRepo:      balanceRepo,
		ApplicationRepo:  applicationRepo,
		NotificationRepo: notificationRepo,
	}
}
