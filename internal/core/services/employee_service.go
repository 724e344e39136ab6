package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/hrkit/leave_management_app/internal/apperrors"
	"github.com/hrkit/leave_management_app/internal/core/domain"
	portsrepo "github.com/hrkit/leave_management_app/internal/core/ports/repositories"
	portssvc "github.com/hrkit/leave_management_app/internal/core/ports/services"
	"github.com/hrkit/leave_management_app/internal/dto"
)

// employeeService owns employee account management and the structural role
// invariants of the reporting hierarchy.
type employeeService struct {
	BaseService
	employeeRepo   portsrepo.EmployeeRepositoryFacade
	departmentRepo portsrepo.DepartmentRepository
	balanceSvc     portssvc.BalanceProvisionerSvc
}

// NewEmployeeService creates a new EmployeeService.
func NewEmployeeService(
	employeeRepo portsrepo.EmployeeRepositoryFacade,
	departmentRepo portsrepo.DepartmentRepository,
	balanceSvc portssvc.BalanceProvisionerSvc,
) portssvc.EmployeeSvcFacade {
	return &employeeService{
		employeeRepo:   employeeRepo,
		departmentRepo: departmentRepo,
		balanceSvc:     balanceSvc,
	}
}

// Ensure employeeService implements the portssvc.EmployeeSvcFacade interface
var _ portssvc.EmployeeSvcFacade = (*employeeService)(nil)

func requireAdmin(actor domain.Actor) error {
	if actor.Role != domain.RoleAdmin {
		return fmt.Errorf("%w: admin role required", apperrors.ErrForbidden)
	}
	return nil
}

// validateHierarchy enforces the structural invariants of a role:
//   - EMPLOYEE: department set, manager set, manager is an active MANAGER in
//     the same department
//   - MANAGER: department set, no manager
//   - ADMIN: neither
func (s *employeeService) validateHierarchy(ctx context.Context, employee *domain.Employee) error {
	switch employee.Role {
	case domain.RoleAdmin:
		if employee.ManagerID != nil || employee.DepartmentID != nil {
			return fmt.Errorf("%w: admins carry no manager or department", apperrors.ErrValidation)
		}
		return nil

	case domain.RoleManager:
		if employee.ManagerID != nil {
			return fmt.Errorf("%w: managers report to no one", apperrors.ErrValidation)
		}
		if employee.DepartmentID == nil {
			return fmt.Errorf("%w: managers require a department", apperrors.ErrValidation)
		}

	case domain.RoleEmployee:
		if employee.DepartmentID == nil {
			return fmt.Errorf("%w: employees require a department", apperrors.ErrValidation)
		}
		if employee.ManagerID == nil {
			return fmt.Errorf("%w: employees require a manager", apperrors.ErrValidation)
		}
		manager, err := s.employeeRepo.FindEmployeeByID(ctx, *employee.ManagerID)
		if err != nil {
			if errors.Is(err, apperrors.ErrNotFound) {
				return fmt.Errorf("%w: manager does not exist", apperrors.ErrValidation)
			}
			return err
		}
		if manager.Role != domain.RoleManager || !manager.IsActive {
			return fmt.Errorf("%w: manager must be an active MANAGER", apperrors.ErrValidation)
		}
		if manager.DepartmentID == nil || employee.DepartmentID == nil || *manager.DepartmentID != *employee.DepartmentID {
			return fmt.Errorf("%w: manager must belong to the same department", apperrors.ErrValidation)
		}

	default:
		return fmt.Errorf("%w: unknown role %q", apperrors.ErrValidation, employee.Role)
	}

	if employee.DepartmentID != nil {
		if _, err := s.departmentRepo.FindDepartmentByID(ctx, *employee.DepartmentID); err != nil {
			if errors.Is(err, apperrors.ErrNotFound) {
				return fmt.Errorf("%w: department does not exist", apperrors.ErrValidation)
			}
			return err
		}
	}
	return nil
}

func (s *employeeService) CreateEmployee(ctx context.Context, actor domain.Actor, req dto.CreateEmployeeRequest) (*domain.Employee, error) {
	if err := requireAdmin(actor); err != nil {
		return nil, err
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))
	if existing, err := s.employeeRepo.FindEmployeeByEmail(ctx, email); err != nil && !errors.Is(err, apperrors.ErrNotFound) {
		return nil, err
	} else if existing != nil {
		return nil, fmt.Errorf("%w: email %s", apperrors.ErrDuplicate, email)
	}

	now := time.Now()
	employee := domain.Employee{
		EmployeeID:   uuid.NewString(),
		Name:         strings.TrimSpace(req.Name),
		Email:        email,
		Role:         domain.Role(req.Role),
		ManagerID:    req.ManagerID,
		DepartmentID: req.DepartmentID,
		JoinedAt:     now,
		IsActive:     true,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     actor.EmployeeID,
			LastUpdatedAt: now,
			LastUpdatedBy: actor.EmployeeID,
		},
	}

	if err := s.validateHierarchy(ctx, &employee); err != nil {
		return nil, err
	}
	if err := s.employeeRepo.SaveEmployee(ctx, employee); err != nil {
		s.LogError(ctx, err, "failed to create employee")
		return nil, err
	}
	if err := s.balanceSvc.ProvisionForEmployee(ctx, employee, actor.EmployeeID); err != nil {
		return nil, err
	}

	s.LogInfo(ctx, "employee created",
		slog.String("employee_id", employee.EmployeeID),
		slog.String("role", string(employee.Role)))
	return &employee, nil
}

func (s *employeeService) UpdateEmployee(ctx context.Context, actor domain.Actor, employeeID string, req dto.UpdateEmployeeRequest) (*domain.Employee, error) {
	if err := requireAdmin(actor); err != nil {
		return nil, err
	}

	employee, err := s.employeeRepo.FindEmployeeByID(ctx, employeeID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		employee.Name = strings.TrimSpace(*req.Name)
	}
	if req.Email != nil {
		email := strings.ToLower(strings.TrimSpace(*req.Email))
		if email != employee.Email {
			if existing, err := s.employeeRepo.FindEmployeeByEmail(ctx, email); err != nil && !errors.Is(err, apperrors.ErrNotFound) {
				return nil, err
			} else if existing != nil {
				return nil, fmt.Errorf("%w: email %s", apperrors.ErrDuplicate, email)
			}
			employee.Email = email
		}
	}
	if req.Role != nil {
		employee.Role = domain.Role(*req.Role)
	}
	if req.ManagerID != nil {
		employee.ManagerID = req.ManagerID
	}
	if req.DepartmentID != nil {
		employee.DepartmentID = req.DepartmentID
	}

	// Role changes reset the links the new role forbids.
	if employee.Role == domain.RoleManager {
		employee.ManagerID = nil
	}
	if employee.Role == domain.RoleAdmin {
		employee.ManagerID = nil
		employee.DepartmentID = nil
	}

	if err := s.validateHierarchy(ctx, employee); err != nil {
		return nil, err
	}

	employee.LastUpdatedAt = time.Now()
	employee.LastUpdatedBy = actor.EmployeeID
	if err := s.employeeRepo.SaveEmployee(ctx, *employee); err != nil {
		s.LogError(ctx, err, "failed to update employee", slog.String("employee_id", employeeID))
		return nil, err
	}

	// A role change onto the entitlement track may still need ledger rows.
	if err := s.balanceSvc.ProvisionForEmployee(ctx, *employee, actor.EmployeeID); err != nil {
		return nil, err
	}
	return employee, nil
}

func (s *employeeService) SetEmployeeActive(ctx context.Context, actor domain.Actor, employeeID string, active bool) error {
	if err := requireAdmin(actor); err != nil {
		return err
	}
	if !active && employeeID == actor.EmployeeID {
		return fmt.Errorf("%w: cannot deactivate your own account", apperrors.ErrForbidden)
	}

	target, err := s.employeeRepo.FindEmployeeByID(ctx, employeeID)
	if err != nil {
		return err
	}
	if !active && target.Role == domain.RoleAdmin {
		remaining, err := s.employeeRepo.CountActiveAdmins(ctx, employeeID)
		if err != nil {
			return err
		}
		if remaining == 0 {
			return fmt.Errorf("%w: cannot deactivate the last active admin", apperrors.ErrForbidden)
		}
	}

	if err := s.employeeRepo.SetEmployeeActive(ctx, employeeID, active, actor.EmployeeID, time.Now()); err != nil {
		s.LogError(ctx, err, "failed to toggle employee", slog.String("employee_id", employeeID))
		return err
	}

	s.LogInfo(ctx, "employee active flag changed",
		slog.String("employee_id", employeeID),
		slog.Bool("active", active))
	return nil
}

func (s *employeeService) DeleteEmployee(ctx context.Context, actor domain.Actor, employeeID string) error {
	if err := requireAdmin(actor); err != nil {
		return err
	}

	target, err := s.employeeRepo.FindEmployeeByID(ctx, employeeID)
	if err != nil {
		return err
	}
	if target.Role == domain.RoleAdmin {
		return fmt.Errorf("%w: admin accounts cannot be deleted", apperrors.ErrForbidden)
	}

	if err := s.employeeRepo.DeleteEmployeeCascade(ctx, employeeID); err != nil {
		s.LogError(ctx, err, "failed to delete employee", slog.String("employee_id", employeeID))
		return err
	}

	s.LogInfo(ctx, "employee deleted", slog.String("employee_id", employeeID))
	return nil
}

func (s *employeeService) GetEmployee(ctx context.Context, actor domain.Actor, employeeID string) (*domain.Employee, error) {
	employee, err := s.employeeRepo.FindEmployeeByID(ctx, employeeID)
	if err != nil {
		return nil, err
	}

	if employeeID == actor.EmployeeID || actor.Role == domain.RoleAdmin {
		return employee, nil
	}
	if actor.Role == domain.RoleManager && employee.ManagerID != nil && *employee.ManagerID == actor.EmployeeID {
		return employee, nil
	}
	return nil, apperrors.ErrNotFound
}

func (s *employeeService) ListEmployees(ctx context.Context, actor domain.Actor, limit, offset int) ([]domain.Employee, error) {
	if err := requireAdmin(actor); err != nil {
		return nil, err
	}
	return s.employeeRepo.FindEmployees(ctx, limit, offset)
}

func (s *employeeService) ListTeam(ctx context.Context, actor domain.Actor) ([]domain.Employee, error) {
	if actor.Role != domain.RoleManager {
		return nil, fmt.Errorf("%w: only managers have a team", apperrors.ErrForbidden)
	}
	return s.employeeRepo.FindEmployeesByManager(ctx, actor.EmployeeID)
}
