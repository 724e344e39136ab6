package mapping

import (
	"github.com/hrkit/leave_management_app/internal/core/domain"
	"github.com/hrkit/leave_management_app/internal/models"
)

// ToModelEmployee converts a domain.Employee to its database model.
func ToModelEmployee(d domain.Employee) models.Employee {
	return models.Employee{
		EmployeeID:   d.EmployeeID,
		Name:         d.Name,
		Email:        d.Email,
		Role:         models.Role(d.Role),
		ManagerID:    d.ManagerID,
		DepartmentID: d.DepartmentID,
		JoinedAt:     d.JoinedAt,
		IsActive:     d.IsActive,
		AuditFields:  ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainEmployee converts a models.Employee to its domain representation.
func ToDomainEmployee(m models.Employee) domain.Employee {
	return domain.Employee{
		EmployeeID:   m.EmployeeID,
		Name:         m.Name,
		Email:        m.Email,
		Role:         domain.Role(m.Role),
		ManagerID:    m.ManagerID,
		DepartmentID: m.DepartmentID,
		JoinedAt:     m.JoinedAt,
		IsActive:     m.IsActive,
		AuditFields:  ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainEmployeeSlice converts a slice of employee models.
func ToDomainEmployeeSlice(ms []models.Employee) []domain.Employee {
	ds := make([]domain.Employee, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainEmployee(m)
	}
	return ds
}

// ToModelDepartment converts a domain.Department to its database model.
func ToModelDepartment(d domain.Department) models.Department {
	return models.Department{
		DepartmentID: d.DepartmentID,
		Name:         d.Name,
		AuditFields:  ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainDepartment converts a models.Department to its domain representation.
func ToDomainDepartment(m models.Department) domain.Department {
	return domain.Department{
		DepartmentID: m.DepartmentID,
		Name:         m.Name,
		AuditFields:  ToDomainAuditFields(m.AuditFields),
	}
}

func ToDomainDepartmentSlice(ms []models.Department) []domain.Department {
	ds := make([]domain.Department, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainDepartment(m)
	}
	return ds
}
