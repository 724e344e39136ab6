package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/hrkit/leave_management_app/internal/apperrors"
	"github.com/hrkit/leave_management_app/internal/core/domain"
	portsrepo "github.com/hrkit/leave_management_app/internal/core/ports/repositories"
	portssvc "github.com/hrkit/leave_management_app/internal/core/ports/services"
)

// balanceService owns reads over the entitlement ledger and the provisioning
// paths that keep one row alive per (employee, leave type) pair.
type balanceService struct {
	BaseService
	balanceRepo   portsrepo.LeaveBalanceRepositoryFacade
	employeeRepo  portsrepo.EmployeeReader
	leaveTypeRepo portsrepo.LeaveTypeReader
}

// NewBalanceService creates a new BalanceService.
func NewBalanceService(
	balanceRepo portsrepo.LeaveBalanceRepositoryFacade,
	employeeRepo portsrepo.EmployeeReader,
	leaveTypeRepo portsrepo.LeaveTypeReader,
) portssvc.BalanceSvcFacade {
	return &balanceService{
		balanceRepo:   balanceRepo,
		employeeRepo:  employeeRepo,
		leaveTypeRepo: leaveTypeRepo,
	}
}

// Ensure balanceService implements the portssvc.BalanceSvcFacade interface
var _ portssvc.BalanceSvcFacade = (*balanceService)(nil)

func (s *balanceService) ListBalances(ctx context.Context, actor domain.Actor, employeeID string) ([]domain.LeaveBalance, error) {
	if employeeID != actor.EmployeeID && actor.Role != domain.RoleAdmin {
		if actor.Role != domain.RoleManager {
			return nil, fmt.Errorf("%w: cannot read another employee's balances", apperrors.ErrForbidden)
		}
		target, err := s.employeeRepo.FindEmployeeByID(ctx, employeeID)
		if err != nil {
			return nil, err
		}
		if target.ManagerID == nil || *target.ManagerID != actor.EmployeeID {
			return nil, fmt.Errorf("%w: cannot read another employee's balances", apperrors.ErrForbidden)
		}
	}
	return s.balanceRepo.ListBalancesByEmployee(ctx, employeeID)
}

func (s *balanceService) EnsureBalance(ctx context.Context, employeeID, leaveTypeID, createdBy string) error {
	leaveType, err := s.leaveTypeRepo.FindLeaveTypeByID(ctx, leaveTypeID)
	if err != nil {
		return err
	}
	return s.balanceRepo.EnsureBalance(ctx, employeeID, leaveTypeID, leaveType.MaxPerYear, createdBy, time.Now())
}

func (s *balanceService) ProvisionForEmployee(ctx context.Context, employee domain.Employee, createdBy string) error {
	if employee.Role == domain.RoleAdmin {
		return nil
	}

	leaveTypes, err := s.leaveTypeRepo.FindLeaveTypes(ctx)
	if err != nil {
		s.LogError(ctx, err, "failed to list leave types for provisioning")
		return err
	}

	now := time.Now()
	for _, lt := range leaveTypes {
		if err := s.balanceRepo.EnsureBalance(ctx, employee.EmployeeID, lt.LeaveTypeID, lt.MaxPerYear, createdBy, now); err != nil {
			s.LogError(ctx, err, "failed to provision balance",
				slog.String("employee_id", employee.EmployeeID),
				slog.String("leave_type_id", lt.LeaveTypeID))
			return err
		}
	}
	return nil
}

func (s *balanceService) ProvisionForLeaveType(ctx context.Context, leaveType domain.LeaveType, createdBy string) error {
	holders, err := s.employeeRepo.FindActiveNonAdmins(ctx)
	if err != nil {
		s.LogError(ctx, err, "failed to list entitlement holders for provisioning")
		return err
	}

	now := time.Now()
	for _, holder := range holders {
		if err := s.balanceRepo.EnsureBalance(ctx, holder.EmployeeID, leaveType.LeaveTypeID, leaveType.MaxPerYear, createdBy, now); err != nil {
			s.LogError(ctx, err, "failed to provision balance",
				slog.String("employee_id", holder.EmployeeID),
				slog.String("leave_type_id", leaveType.LeaveTypeID))
			return err
		}
	}
	return nil
}

func (s *balanceService) AdjustEntitlement(ctx context.Context, leaveTypeID string, oldMax, newMax int, updatedBy string) (portsrepo.AdjustmentResult, error) {
	result, err := s.balanceRepo.AdjustEntitlement(ctx, leaveTypeID, oldMax, newMax, updatedBy, time.Now())
	if err != nil {
		s.LogError(ctx, err, "entitlement adjustment failed", slog.String("leave_type_id", leaveTypeID))
		return result, err
	}

	s.LogInfo(ctx, "entitlement adjusted",
		slog.String("leave_type_id", leaveTypeID),
		slog.Int("old_max", oldMax),
		slog.Int("new_max", newMax),
		slog.Int("updated", result.Updated),
		slog.Int("clamped", result.Clamped))
	return result, nil
}
