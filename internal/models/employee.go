package models

import "time"

// Role mirrors domain.Role at the database layer.
type Role string

const (
	RoleEmployee Role = "EMPLOYEE"
	RoleManager  Role = "MANAGER"
	RoleAdmin    Role = "ADMIN"
)

// Employee represents a row of the employees table.
type Employee struct {
	EmployeeID   string    `db:"employee_id"`
	Name         string    `db:"name"`
	Email        string    `db:"email"`
	Role         Role      `db:"role"`
	ManagerID    *string   `db:"manager_id"`    // Nullable
	DepartmentID *string   `db:"department_id"` // Nullable
	JoinedAt     time.Time `db:"joined_at"`
	IsActive     bool      `db:"is_active"`
	AuditFields
}

// Department represents a row of the departments table.
type Department struct {
	DepartmentID string `db:"department_id"`
	Name         string `db:"name"`
	AuditFields
}
