package repositories

import (
	"context"
	"time"

	"github.com/hrkit/leave_management_app/internal/core/domain"
)

// EmployeeReader defines read operations for employee data.
type EmployeeReader interface {
	FindEmployeeByID(ctx context.Context, employeeID string) (*domain.Employee, error)
	FindEmployeeByEmail(ctx context.Context, email string) (*domain.Employee, error)
	FindEmployees(ctx context.Context, limit, offset int) ([]domain.Employee, error)

	// FindEmployeesByManager retrieves the active direct reports of a manager.
	FindEmployeesByManager(ctx context.Context, managerID string) ([]domain.Employee, error)

	// FindActiveAdmins retrieves every active ADMIN employee.
	FindActiveAdmins(ctx context.Context) ([]domain.Employee, error)

	// FindActiveManagers retrieves every active MANAGER employee.
	FindActiveManagers(ctx context.Context) ([]domain.Employee, error)

	// FindActiveNonAdmins retrieves every active employee holding a leave
	// entitlement, i.e. everyone except ADMINs.
	FindActiveNonAdmins(ctx context.Context) ([]domain.Employee, error)

	// CountActiveAdmins counts active ADMIN employees, excluding one ID when
	// non-empty. Used to protect the last active admin.
	CountActiveAdmins(ctx context.Context, excludeEmployeeID string) (int, error)
}

// EmployeeWriter defines write operations for employee data.
type EmployeeWriter interface {
	SaveEmployee(ctx context.Context, employee domain.Employee) error

	// SetEmployeeActive toggles the is_active flag.
	SetEmployeeActive(ctx context.Context, employeeID string, active bool, updatedBy string, updatedAt time.Time) error

	// DeleteEmployeeCascade removes the employee together with their balances,
	// applications and notifications, and detaches any direct reports, in a
	// single transaction.
	DeleteEmployeeCascade(ctx context.Context, employeeID string) error
}

// EmployeeRepositoryFacade combines all employee repository interfaces.
type EmployeeRepositoryFacade interface {
	EmployeeReader
	EmployeeWriter
}

// DepartmentRepository defines operations for department data.
type DepartmentRepository interface {
	SaveDepartment(ctx context.Context, department domain.Department) error
	FindDepartmentByID(ctx context.Context, departmentID string) (*domain.Department, error)

	// FindDepartmentByName does a case-insensitive lookup.
	FindDepartmentByName(ctx context.Context, name string) (*domain.Department, error)
	FindDepartments(ctx context.Context) ([]domain.Department, error)

	// DeleteDepartment removes the department and detaches its members in a
	// single transaction.
	DeleteDepartment(ctx context.Context, departmentID string) error
}
