package services

import (
	"context"

	"github.com/hrkit/leave_management_app/internal/core/domain"
	"github.com/hrkit/leave_management_app/internal/dto"
)

// EmployeeSvcFacade defines employee account management. All write operations
// require an ADMIN actor.
type EmployeeSvcFacade interface {
	CreateEmployee(ctx context.Context, actor domain.Actor, req dto.CreateEmployeeRequest) (*domain.Employee, error)
	UpdateEmployee(ctx context.Context, actor domain.Actor, employeeID string, req dto.UpdateEmployeeRequest) (*domain.Employee, error)

	// SetEmployeeActive toggles an account. The last active admin and the
	// actor's own account are protected.
	SetEmployeeActive(ctx context.Context, actor domain.Actor, employeeID string, active bool) error

	// DeleteEmployee hard-deletes a non-admin employee and cascades to their
	// balances, applications and notifications; direct reports are detached.
	DeleteEmployee(ctx context.Context, actor domain.Actor, employeeID string) error

	GetEmployee(ctx context.Context, actor domain.Actor, employeeID string) (*domain.Employee, error)
	ListEmployees(ctx context.Context, actor domain.Actor, limit, offset int) ([]domain.Employee, error)

	// ListTeam retrieves the actor's active direct reports.
	ListTeam(ctx context.Context, actor domain.Actor) ([]domain.Employee, error)
}

// DepartmentSvcFacade defines the minimum department management the employee
// invariants require. All writes need an ADMIN actor.
type DepartmentSvcFacade interface {
	CreateDepartment(ctx context.Context, actor domain.Actor, req dto.CreateDepartmentRequest) (*domain.Department, error)
	DeleteDepartment(ctx context.Context, actor domain.Actor, departmentID string) error
	ListDepartments(ctx context.Context, actor domain.Actor) ([]domain.Department, error)
}
