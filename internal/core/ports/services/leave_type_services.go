package services

import (
	"context"

	"github.com/hrkit/leave_management_app/internal/core/domain"
	"github.com/hrkit/leave_management_app/internal/dto"
)

// LeaveTypeSvcFacade defines leave type catalog management. Writes require an
// ADMIN actor; reads are open to any authenticated employee.
type LeaveTypeSvcFacade interface {
	// CreateLeaveType adds a catalog entry and provisions balance rows for
	// every active non-admin employee.
	CreateLeaveType(ctx context.Context, actor domain.Actor, req dto.CreateLeaveTypeRequest) (*domain.LeaveType, error)

	// UpdateLeaveType renames and/or re-caps an entry. A MaxPerYear change
	// triggers an entitlement adjustment across all holders.
	UpdateLeaveType(ctx context.Context, actor domain.Actor, leaveTypeID string, req dto.UpdateLeaveTypeRequest) (*domain.LeaveType, error)

	// DeleteLeaveType removes an entry and its balances; blocked while any
	// application references the type.
	DeleteLeaveType(ctx context.Context, actor domain.Actor, leaveTypeID string) error

	GetLeaveType(ctx context.Context, leaveTypeID string) (*domain.LeaveType, error)
	ListLeaveTypes(ctx context.Context) ([]domain.LeaveType, error)
}
