package services

import (
	"context"
	"time"

	"github.com/hrkit/leave_management_app/internal/core/domain"
	"github.com/hrkit/leave_management_app/internal/dto"
)

// LeaveReaderSvc defines the read accessors over leave applications.
type LeaveReaderSvc interface {
	// GetApplication retrieves one application if it is within the actor's
	// scope (owner, reviewing manager, or admin).
	GetApplication(ctx context.Context, actor domain.Actor, leaveID string) (*domain.LeaveApplication, error)

	// ListMyApplications retrieves the actor's own applications, newest first.
	ListMyApplications(ctx context.Context, actor domain.Actor, limit, offset int) ([]domain.LeaveApplication, error)

	// ListPendingForReviewer retrieves the pending applications the actor may
	// decide on: direct reports for a manager, manager-filed requests for an admin.
	ListPendingForReviewer(ctx context.Context, actor domain.Actor, limit, offset int) ([]domain.LeaveApplication, error)

	// CheckConflict reports whether [start, end] overlaps one of the actor's
	// PENDING or APPROVED applications.
	CheckConflict(ctx context.Context, actor domain.Actor, start, end time.Time) (bool, error)
}

// LeaveWriterSvc defines the lifecycle operations of a leave application.
type LeaveWriterSvc interface {
	// Submit validates and files a new application for the actor, leaving it
	// PENDING and notifying the reviewer(s). The remaining-balance check at
	// submission is advisory only; nothing is reserved.
	Submit(ctx context.Context, actor domain.Actor, req dto.SubmitLeaveRequest) (*domain.LeaveApplication, error)

	// Approve transitions a PENDING application to APPROVED, debiting the
	// balance ledger and notifying the applicant atomically.
	Approve(ctx context.Context, actor domain.Actor, leaveID, comment string) (*domain.LeaveApplication, error)

	// Reject transitions a PENDING application to REJECTED and notifies the
	// applicant. The ledger is untouched.
	Reject(ctx context.Context, actor domain.Actor, leaveID, comment string) (*domain.LeaveApplication, error)

	// Cancel lets the owning employee withdraw a PENDING application.
	Cancel(ctx context.Context, actor domain.Actor, leaveID string) (*domain.LeaveApplication, error)
}

// LeaveSvcFacade combines all leave application service interfaces.
type LeaveSvcFacade interface {
	LeaveReaderSvc
	LeaveWriterSvc
}
