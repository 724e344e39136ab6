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

// leaveTypeService owns the catalog. Cap changes propagate to the ledger
// through the balance service.
type leaveTypeService struct {
	BaseService
	leaveTypeRepo   portsrepo.LeaveTypeRepositoryFacade
	applicationRepo portsrepo.LeaveApplicationReader
	balanceSvc      portssvc.BalanceProvisionerSvc
}

// NewLeaveTypeService creates a new LeaveTypeService.
func NewLeaveTypeService(
	leaveTypeRepo portsrepo.LeaveTypeRepositoryFacade,
	applicationRepo portsrepo.LeaveApplicationReader,
	balanceSvc portssvc.BalanceProvisionerSvc,
) portssvc.LeaveTypeSvcFacade {
	return &leaveTypeService{
		leaveTypeRepo:   leaveTypeRepo,
		applicationRepo: applicationRepo,
		balanceSvc:      balanceSvc,
	}
}

// Ensure leaveTypeService implements the portssvc.LeaveTypeSvcFacade interface
var _ portssvc.LeaveTypeSvcFacade = (*leaveTypeService)(nil)

func (s *leaveTypeService) CreateLeaveType(ctx context.Context, actor domain.Actor, req dto.CreateLeaveTypeRequest) (*domain.LeaveType, error) {
	if err := requireAdmin(actor); err != nil {
		return nil, err
	}

	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, fmt.Errorf("%w: leave type name is required", apperrors.ErrValidation)
	}
	if existing, err := s.leaveTypeRepo.FindLeaveTypeByName(ctx, name); err != nil && !errors.Is(err, apperrors.ErrNotFound) {
		return nil, err
	} else if existing != nil {
		return nil, fmt.Errorf("%w: leave type name %q", apperrors.ErrDuplicate, name)
	}

	now := time.Now()
	leaveType := domain.LeaveType{
		LeaveTypeID: uuid.NewString(),
		Name:        name,
		MaxPerYear:  *req.MaxPerYear,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     actor.EmployeeID,
			LastUpdatedAt: now,
			LastUpdatedBy: actor.EmployeeID,
		},
	}
	if err := s.leaveTypeRepo.SaveLeaveType(ctx, leaveType); err != nil {
		s.LogError(ctx, err, "failed to create leave type")
		return nil, err
	}
	if err := s.balanceSvc.ProvisionForLeaveType(ctx, leaveType, actor.EmployeeID); err != nil {
		return nil, err
	}

	s.LogInfo(ctx, "leave type created",
		slog.String("leave_type_id", leaveType.LeaveTypeID),
		slog.Int("max_per_year", leaveType.MaxPerYear))
	return &leaveType, nil
}

func (s *leaveTypeService) UpdateLeaveType(ctx context.Context, actor domain.Actor, leaveTypeID string, req dto.UpdateLeaveTypeRequest) (*domain.LeaveType, error) {
	if err := requireAdmin(actor); err != nil {
		return nil, err
	}

	leaveType, err := s.leaveTypeRepo.FindLeaveTypeByID(ctx, leaveTypeID)
	if err != nil {
		return nil, err
	}
	oldMax := leaveType.MaxPerYear

	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name == "" {
			return nil, fmt.Errorf("%w: leave type name is required", apperrors.ErrValidation)
		}
		if !strings.EqualFold(name, leaveType.Name) {
			if existing, err := s.leaveTypeRepo.FindLeaveTypeByName(ctx, name); err != nil && !errors.Is(err, apperrors.ErrNotFound) {
				return nil, err
			} else if existing != nil {
				return nil, fmt.Errorf("%w: leave type name %q", apperrors.ErrDuplicate, name)
			}
		}
		leaveType.Name = name
	}
	if req.MaxPerYear != nil {
		leaveType.MaxPerYear = *req.MaxPerYear
	}

	leaveType.LastUpdatedAt = time.Now()
	leaveType.LastUpdatedBy = actor.EmployeeID
	if err := s.leaveTypeRepo.SaveLeaveType(ctx, *leaveType); err != nil {
		s.LogError(ctx, err, "failed to update leave type", slog.String("leave_type_id", leaveTypeID))
		return nil, err
	}

	if leaveType.MaxPerYear != oldMax {
		if _, err := s.balanceSvc.AdjustEntitlement(ctx, leaveTypeID, oldMax, leaveType.MaxPerYear, actor.EmployeeID); err != nil {
			return nil, err
		}
	}
	return leaveType, nil
}

func (s *leaveTypeService) DeleteLeaveType(ctx context.Context, actor domain.Actor, leaveTypeID string) error {
	if err := requireAdmin(actor); err != nil {
		return err
	}

	if _, err := s.leaveTypeRepo.FindLeaveTypeByID(ctx, leaveTypeID); err != nil {
		return err
	}
	references, err := s.applicationRepo.CountApplicationsByLeaveType(ctx, leaveTypeID)
	if err != nil {
		return err
	}
	if references > 0 {
		return fmt.Errorf("%w: %d application(s) reference this leave type", apperrors.ErrConflict, references)
	}

	if err := s.leaveTypeRepo.DeleteLeaveType(ctx, leaveTypeID); err != nil {
		s.LogError(ctx, err, "failed to delete leave type", slog.String("leave_type_id", leaveTypeID))
		return err
	}

	s.LogInfo(ctx, "leave type deleted", slog.String("leave_type_id", leaveTypeID))
	return nil
}

func (s *leaveTypeService) GetLeaveType(ctx context.Context, leaveTypeID string) (*domain.LeaveType, error) {
	return s.leaveTypeRepo.FindLeaveTypeByID(ctx, leaveTypeID)
}

func (s *leaveTypeService) ListLeaveTypes(ctx context.Context) ([]domain.LeaveType, error) {
	return s.leaveTypeRepo.FindLeaveTypes(ctx)
}
