package services

import (
	portsrepo "github.com/hrkit/leave_management_app/internal/core/ports/repositories"
	portssvc "github.com/hrkit/leave_management_app/internal/core/ports/services"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	// Balance service first since the catalog and employee services provision
	// ledger rows through it.
	container.Balance = NewBalanceService(repos.BalanceRepo, repos.EmployeeRepo, repos.LeaveTypeRepo)

	container.Leave = NewLeaveService(repos.ApplicationRepo, repos.BalanceRepo, repos.EmployeeRepo, repos.LeaveTypeRepo)
	container.Employee = NewEmployeeService(repos.EmployeeRepo, repos.DepartmentRepo, container.Balance)
	container.LeaveType = NewLeaveTypeService(repos.LeaveTypeRepo, repos.ApplicationRepo, container.Balance)
	container.Department = NewDepartmentService(repos.DepartmentRepo)
	container.Notification = NewNotificationService(repos.NotificationRepo)

	return container
}
