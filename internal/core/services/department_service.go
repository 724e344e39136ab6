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

type departmentService struct {
	BaseService
	departmentRepo portsrepo.DepartmentRepository
}

// NewDepartmentService creates a new DepartmentService.
func NewDepartmentService(departmentRepo portsrepo.DepartmentRepository) portssvc.DepartmentSvcFacade {
	return &departmentService{departmentRepo: departmentRepo}
}

// Ensure departmentService implements the portssvc.DepartmentSvcFacade interface
var _ portssvc.DepartmentSvcFacade = (*departmentService)(nil)

func (s *departmentService) CreateDepartment(ctx context.Context, actor domain.Actor, req dto.CreateDepartmentRequest) (*domain.Department, error) {
	if err := requireAdmin(actor); err != nil {
		return nil, err
	}

	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, fmt.Errorf("%w: department name is required", apperrors.ErrValidation)
	}
	if existing, err := s.departmentRepo.FindDepartmentByName(ctx, name); err != nil && !errors.Is(err, apperrors.ErrNotFound) {
		return nil, err
	} else if existing != nil {
		return nil, fmt.Errorf("%w: department name %q", apperrors.ErrDuplicate, name)
	}

	now := time.Now()
	department := domain.Department{
		DepartmentID: uuid.NewString(),
		Name:         name,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     actor.EmployeeID,
			LastUpdatedAt: now,
			LastUpdatedBy: actor.EmployeeID,
		},
	}
	if err := s.departmentRepo.SaveDepartment(ctx, department); err != nil {
		s.LogError(ctx, err, "failed to create department")
		return nil, err
	}

	s.LogInfo(ctx, "department created", slog.String("department_id", department.DepartmentID))
	return &department, nil
}

func (s *departmentService) DeleteDepartment(ctx context.Context, actor domain.Actor, departmentID string) error {
	if err := requireAdmin(actor); err != nil {
		return err
	}
	if err := s.departmentRepo.DeleteDepartment(ctx, departmentID); err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "failed to delete department", slog.String("department_id", departmentID))
		}
		return err
	}

	s.LogInfo(ctx, "department deleted", slog.String("department_id", departmentID))
	return nil
}

func (s *departmentService) ListDepartments(ctx context.Context, actor domain.Actor) ([]domain.Department, error) {
	return s.departmentRepo.FindDepartments(ctx)
}
