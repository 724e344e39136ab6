package repositories

import (
	"context"

	"github.com/hrkit/leave_management_app/internal/core/domain"
)

// LeaveTypeReader defines read operations for the leave type catalog.
type LeaveTypeReader interface {
	FindLeaveTypeByID(ctx context.Context, leaveTypeID string) (*domain.LeaveType, error)

	// FindLeaveTypeByName does a case-insensitive lookup.
	FindLeaveTypeByName(ctx context.Context, name string) (*domain.LeaveType, error)
	FindLeaveTypes(ctx context.Context) ([]domain.LeaveType, error)
}

// LeaveTypeWriter defines write operations for the leave type catalog.
type LeaveTypeWriter interface {
	SaveLeaveType(ctx context.Context, leaveType domain.LeaveType) error

	// DeleteLeaveType removes the catalog entry and its balance rows in a
	// single transaction. Callers must first verify no application references it.
	DeleteLeaveType(ctx context.Context, leaveTypeID string) error
}

// LeaveTypeRepositoryFacade combines all leave type repository interfaces.
type LeaveTypeRepositoryFacade interface {
	LeaveTypeReader
	LeaveTypeWriter
}
