package domain

import "time"

// Role classifies an employee within the approval hierarchy.
type Role string

const (
	RoleEmployee Role = "EMPLOYEE"
	RoleManager  Role = "MANAGER"
	RoleAdmin    Role = "ADMIN"
)

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	switch r {
	case RoleEmployee, RoleManager, RoleAdmin:
		return true
	}
	return false
}

// Employee represents a member of the organization.
//
// Structural invariants, enforced on every create/update:
//   - EMPLOYEE has a department and an active MANAGER in that same department
//   - MANAGER has a department but no manager
//   - ADMIN has neither
type Employee struct {
	EmployeeID   string    `json:"employeeID"` // Primary key (UUID)
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	Role         Role      `json:"role"`
	ManagerID    *string   `json:"managerID,omitempty"`
	DepartmentID *string   `json:"departmentID,omitempty"`
	JoinedAt     time.Time `json:"joinedAt"`
	IsActive     bool      `json:"isActive"`
	AuditFields
}

// Department groups employees and their managers.
type Department struct {
	DepartmentID string `json:"departmentID"` // Primary key (UUID)
	Name         string `json:"name"`         // Unique, case-insensitive
	AuditFields
}
