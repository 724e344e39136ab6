package dto

import (
	"time"

	"github.com/hrkit/leave_management_app/internal/core/domain"
)

// CreateEmployeeRequest is the payload for creating an employee account.
// ManagerID and DepartmentID obligations depend on the role; the service
// enforces them.
type CreateEmployeeRequest struct {
	Name         string  `json:"name" binding:"required,max=120"`
	Email        string  `json:"email" binding:"required,email"`
	Role         string  `json:"role" binding:"required,oneof=EMPLOYEE MANAGER ADMIN"`
	ManagerID    *string `json:"managerID,omitempty" binding:"omitempty,uuid"`
	DepartmentID *string `json:"departmentID,omitempty" binding:"omitempty,uuid"`
}

// UpdateEmployeeRequest is the payload for editing an employee account.
type UpdateEmployeeRequest struct {
	Name         *string `json:"name,omitempty" binding:"omitempty,max=120"`
	Email        *string `json:"email,omitempty" binding:"omitempty,email"`
	Role         *string `json:"role,omitempty" binding:"omitempty,oneof=EMPLOYEE MANAGER ADMIN"`
	ManagerID    *string `json:"managerID,omitempty" binding:"omitempty,uuid"`
	DepartmentID *string `json:"departmentID,omitempty" binding:"omitempty,uuid"`
}

// SetActiveRequest is the payload for activating/deactivating an account.
type SetActiveRequest struct {
	Active *bool `json:"active" binding:"required"`
}

// EmployeeResponse defines the data returned for one employee.
type EmployeeResponse struct {
	EmployeeID   string    `json:"employeeID"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	Role         string    `json:"role"`
	ManagerID    *string   `json:"managerID,omitempty"`
	DepartmentID *string   `json:"departmentID,omitempty"`
	JoinedAt     time.Time `json:"joinedAt"`
	IsActive     bool      `json:"isActive"`
}

// ToEmployeeResponse converts a domain.Employee to its response DTO.
func ToEmployeeResponse(e *domain.Employee) EmployeeResponse {
	return EmployeeResponse{
		EmployeeID:   e.EmployeeID,
		Name:         e.Name,
		Email:        e.Email,
		Role:         string(e.Role),
		ManagerID:    e.ManagerID,
		DepartmentID: e.DepartmentID,
		JoinedAt:     e.JoinedAt,
		IsActive:     e.IsActive,
	}
}

// ToEmployeeResponses converts a slice of employees.
func ToEmployeeResponses(es []domain.Employee) []EmployeeResponse {
	responses := make([]EmployeeResponse, len(es))
	for i := range es {
		responses[i] = ToEmployeeResponse(&es[i])
	}
	return responses
}

// CreateDepartmentRequest is the payload for creating a department.
type CreateDepartmentRequest struct {
	Name string `json:"name" binding:"required,max=100"`
}

// DepartmentResponse defines the data returned for one department.
type DepartmentResponse struct {
	DepartmentID string `json:"departmentID"`
	Name         string `json:"name"`
}

// ToDepartmentResponse converts a domain.Department to its response DTO.
func ToDepartmentResponse(d *domain.Department) DepartmentResponse {
	return DepartmentResponse{DepartmentID: d.DepartmentID, Name: d.Name}
}

// ToDepartmentResponses converts a slice of departments.
func ToDepartmentResponses(ds []domain.Department) []DepartmentResponse {
	responses := make([]DepartmentResponse, len(ds))
	for i := range ds {
		responses[i] = ToDepartmentResponse(&ds[i])
	}
	return responses
}
