package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/hrkit/leave_management_app/internal/apperrors"
	"github.com/hrkit/leave_management_app/internal/core/domain"
	portsrepo "github.com/hrkit/leave_management_app/internal/core/ports/repositories"
	portssvc "github.com/hrkit/leave_management_app/internal/core/ports/services"
	"github.com/hrkit/leave_management_app/internal/dto"
)

const (
	minReasonLen = 10
	maxReasonLen = 500
)

// leaveService owns the application lifecycle: submission, the reviewer
// decisions and owner cancellation.
type leaveService struct {
	BaseService
	applicationRepo portsrepo.LeaveApplicationRepositoryFacade
	balanceRepo     portsrepo.LeaveBalanceRepositoryFacade
	employeeRepo    portsrepo.EmployeeReader
	leaveTypeRepo   portsrepo.LeaveTypeReader
}

// NewLeaveService creates a new LeaveService.
func NewLeaveService(
	applicationRepo portsrepo.LeaveApplicationRepositoryFacade,
	balanceRepo portsrepo.LeaveBalanceRepositoryFacade,
	employeeRepo portsrepo.EmployeeReader,
	leaveTypeRepo portsrepo.LeaveTypeReader,
) portssvc.LeaveSvcFacade {
	return &leaveService{
		applicationRepo: applicationRepo,
		balanceRepo:     balanceRepo,
		employeeRepo:    employeeRepo,
		leaveTypeRepo:   leaveTypeRepo,
	}
}

// Ensure leaveService implements the portssvc.LeaveSvcFacade interface
var _ portssvc.LeaveSvcFacade = (*leaveService)(nil)

func parseDate(value, field string) (time.Time, error) {
	t, err := time.ParseInLocation(dto.DateLayout, value, time.UTC)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %s must be formatted as %s", apperrors.ErrValidation, field, dto.DateLayout)
	}
	return t, nil
}

func (s *leaveService) Submit(ctx context.Context, actor domain.Actor, req dto.SubmitLeaveRequest) (*domain.LeaveApplication, error) {
	if actor.Role == domain.RoleAdmin {
		return nil, fmt.Errorf("%w: admins hold no leave entitlement", apperrors.ErrForbidden)
	}

	start, err := parseDate(req.StartDate, "startDate")
	if err != nil {
		return nil, err
	}
	end, err := parseDate(req.EndDate, "endDate")
	if err != nil {
		return nil, err
	}
	if end.Before(start) {
		return nil, fmt.Errorf("%w: endDate must not precede startDate", apperrors.ErrValidation)
	}

	reason := strings.TrimSpace(req.Reason)
	if len(reason) < minReasonLen || len(reason) > maxReasonLen {
		return nil, fmt.Errorf("%w: reason must be between %d and %d characters", apperrors.ErrValidation, minReasonLen, maxReasonLen)
	}

	leaveType, err := s.leaveTypeRepo.FindLeaveTypeByID(ctx, req.LeaveTypeID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: unknown leave type", apperrors.ErrValidation)
		}
		s.LogError(ctx, err, "failed to load leave type for submission", slog.String("leave_type_id", req.LeaveTypeID))
		return nil, err
	}

	applicant, err := s.employeeRepo.FindEmployeeByID(ctx, actor.EmployeeID)
	if err != nil {
		s.LogError(ctx, err, "failed to load applicant", slog.String("employee_id", actor.EmployeeID))
		return nil, err
	}
	if !applicant.IsActive {
		return nil, fmt.Errorf("%w: inactive accounts cannot file applications", apperrors.ErrForbidden)
	}

	now := time.Now()
	totalDays := domain.DaysBetween(start, end)

	// Advisory check only; nothing is reserved until approval.
	if err := s.balanceRepo.EnsureBalance(ctx, applicant.EmployeeID, leaveType.LeaveTypeID, leaveType.MaxPerYear, applicant.EmployeeID, now); err != nil {
		s.LogError(ctx, err, "failed to ensure balance before submission")
		return nil, err
	}
	balance, err := s.balanceRepo.FindBalance(ctx, applicant.EmployeeID, leaveType.LeaveTypeID)
	if err != nil {
		s.LogError(ctx, err, "failed to read balance before submission")
		return nil, err
	}
	requested := decimal.NewFromInt(int64(totalDays))
	if requested.GreaterThan(balance.Remaining) {
		return nil, apperrors.NewInsufficientBalance(requested.String(), balance.Remaining.String())
	}

	overlaps, err := s.applicationRepo.HasOverlappingApplication(ctx, applicant.EmployeeID, start, end, nil)
	if err != nil {
		s.LogError(ctx, err, "failed to check date overlap")
		return nil, err
	}
	if overlaps {
		return nil, fmt.Errorf("%w: an application already covers part of %s to %s",
			apperrors.ErrConflict, req.StartDate, req.EndDate)
	}

	application := domain.LeaveApplication{
		LeaveID:     uuid.NewString(),
		EmployeeID:  applicant.EmployeeID,
		LeaveTypeID: leaveType.LeaveTypeID,
		StartDate:   start,
		EndDate:     end,
		TotalDays:   totalDays,
		Reason:      reason,
		Status:      domain.StatusPending,
		AppliedOn:   now,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     applicant.EmployeeID,
			LastUpdatedAt: now,
			LastUpdatedBy: applicant.EmployeeID,
		},
	}

	notifications, err := s.reviewerNotifications(ctx, applicant, application)
	if err != nil {
		return nil, err
	}

	if err := s.applicationRepo.SaveSubmission(ctx, application, notifications); err != nil {
		s.LogError(ctx, err, "failed to save submission", slog.String("leave_id", application.LeaveID))
		return nil, err
	}

	s.LogInfo(ctx, "leave application submitted",
		slog.String("leave_id", application.LeaveID),
		slog.String("employee_id", applicant.EmployeeID),
		slog.Int("total_days", totalDays))
	return &application, nil
}

// reviewerNotifications builds the review alerts a submission fans out:
// the direct manager for an employee, every active admin for a manager.
func (s *leaveService) reviewerNotifications(ctx context.Context, applicant *domain.Employee, application domain.LeaveApplication) ([]domain.Notification, error) {
	message := fmt.Sprintf("%s applied for leave from %s to %s (%d day(s))",
		applicant.Name,
		application.StartDate.Format(dto.DateLayout),
		application.EndDate.Format(dto.DateLayout),
		application.TotalDays)

	var recipients []string
	switch applicant.Role {
	case domain.RoleManager:
		admins, err := s.employeeRepo.FindActiveAdmins(ctx)
		if err != nil {
			s.LogError(ctx, err, "failed to list admins for notification fan-out")
			return nil, err
		}
		for _, admin := range admins {
			recipients = append(recipients, admin.EmployeeID)
		}
	default:
		if applicant.ManagerID != nil {
			recipients = append(recipients, *applicant.ManagerID)
		}
	}

	notifications := make([]domain.Notification, 0, len(recipients))
	for _, recipient := range recipients {
		notifications = append(notifications, domain.Notification{
			NotificationID: uuid.NewString(),
			EmployeeID:     recipient,
			Kind:           domain.NotificationApplied,
			Message:        message,
			CreatedOn:      application.AppliedOn,
		})
	}
	return notifications, nil
}

func (s *leaveService) Approve(ctx context.Context, actor domain.Actor, leaveID, comment string) (*domain.LeaveApplication, error) {
	return s.decide(ctx, actor, leaveID, comment, true)
}

func (s *leaveService) Reject(ctx context.Context, actor domain.Actor, leaveID, comment string) (*domain.LeaveApplication, error) {
	return s.decide(ctx, actor, leaveID, comment, false)
}

func (s *leaveService) decide(ctx context.Context, actor domain.Actor, leaveID, comment string, approve bool) (*domain.LeaveApplication, error) {
	application, err := s.applicationRepo.FindApplicationByID(ctx, leaveID)
	if err != nil {
		return nil, err
	}

	applicant, err := s.employeeRepo.FindEmployeeByID(ctx, application.EmployeeID)
	if err != nil {
		s.LogError(ctx, err, "failed to load applicant for decision", slog.String("leave_id", leaveID))
		return nil, err
	}
	if err := s.authorizeReviewer(actor, applicant); err != nil {
		if application.EmployeeID == actor.EmployeeID {
			return nil, err
		}
		// Out-of-scope reviewers must not learn the row exists, let alone
		// its status.
		return nil, apperrors.ErrNotFound
	}

	if application.Status != domain.StatusPending {
		return nil, apperrors.NewInvalidTransition(string(application.Status))
	}

	params := portsrepo.DecisionParams{
		LeaveID:    leaveID,
		ReviewerID: actor.EmployeeID,
		ActionDate: time.Now(),
	}
	comment = strings.TrimSpace(comment)
	if comment != "" {
		params.ReviewerComment = &comment
	}

	kind := domain.NotificationRejected
	verb := "rejected"
	if approve {
		kind = domain.NotificationApproved
		verb = "approved"

		leaveType, err := s.leaveTypeRepo.FindLeaveTypeByID(ctx, application.LeaveTypeID)
		if err != nil {
			s.LogError(ctx, err, "failed to load leave type for approval", slog.String("leave_id", leaveID))
			return nil, err
		}
		params.DebitDays = decimal.NewFromInt(int64(application.TotalDays))
		params.MaxPerYear = leaveType.MaxPerYear
	}

	params.Notification = domain.Notification{
		NotificationID: uuid.NewString(),
		EmployeeID:     application.EmployeeID,
		Kind:           kind,
		Message: fmt.Sprintf("Your leave from %s to %s was %s",
			application.StartDate.Format(dto.DateLayout),
			application.EndDate.Format(dto.DateLayout),
			verb),
		CreatedOn: params.ActionDate,
	}

	var updated *domain.LeaveApplication
	if approve {
		updated, err = s.applicationRepo.ApproveApplication(ctx, params)
	} else {
		updated, err = s.applicationRepo.RejectApplication(ctx, params)
	}
	if err != nil {
		if !errors.Is(err, apperrors.ErrInvalidTransition) && !errors.Is(err, apperrors.ErrInsufficientBalance) {
			s.LogError(ctx, err, "decision transaction failed", slog.String("leave_id", leaveID))
		}
		return nil, err
	}

	s.LogInfo(ctx, "leave application decided",
		slog.String("leave_id", leaveID),
		slog.String("reviewer_id", actor.EmployeeID),
		slog.String("status", string(updated.Status)))
	return updated, nil
}

// authorizeReviewer enforces the review chain: a manager decides on their own
// direct reports, an admin on anyone below them in the hierarchy.
func (s *leaveService) authorizeReviewer(actor domain.Actor, applicant *domain.Employee) error {
	switch actor.Role {
	case domain.RoleAdmin:
		return nil
	case domain.RoleManager:
		if applicant.ManagerID != nil && *applicant.ManagerID == actor.EmployeeID {
			return nil
		}
	}
	return fmt.Errorf("%w: not a reviewer for this application", apperrors.ErrForbidden)
}

func (s *leaveService) Cancel(ctx context.Context, actor domain.Actor, leaveID string) (*domain.LeaveApplication, error) {
	updated, err := s.applicationRepo.CancelApplication(ctx, leaveID, actor.EmployeeID, time.Now())
	if err != nil {
		if !errors.Is(err, apperrors.ErrInvalidTransition) && !errors.Is(err, apperrors.ErrForbidden) && !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "cancellation failed", slog.String("leave_id", leaveID))
		}
		return nil, err
	}

	s.LogInfo(ctx, "leave application cancelled", slog.String("leave_id", leaveID))
	return updated, nil
}

func (s *leaveService) GetApplication(ctx context.Context, actor domain.Actor, leaveID string) (*domain.LeaveApplication, error) {
	application, err := s.applicationRepo.FindApplicationByID(ctx, leaveID)
	if err != nil {
		return nil, err
	}

	if application.EmployeeID == actor.EmployeeID || actor.Role == domain.RoleAdmin {
		return application, nil
	}
	if actor.Role == domain.RoleManager {
		applicant, err := s.employeeRepo.FindEmployeeByID(ctx, application.EmployeeID)
		if err != nil {
			return nil, err
		}
		if applicant.ManagerID != nil && *applicant.ManagerID == actor.EmployeeID {
			return application, nil
		}
	}
	// Out-of-scope reads are indistinguishable from missing rows.
	return nil, apperrors.ErrNotFound
}

func (s *leaveService) ListMyApplications(ctx context.Context, actor domain.Actor, limit, offset int) ([]domain.LeaveApplication, error) {
	return s.applicationRepo.ListApplicationsByEmployee(ctx, actor.EmployeeID, limit, offset)
}

func (s *leaveService) ListPendingForReviewer(ctx context.Context, actor domain.Actor, limit, offset int) ([]domain.LeaveApplication, error) {
	var reviewees []domain.Employee
	var err error

	switch actor.Role {
	case domain.RoleManager:
		reviewees, err = s.employeeRepo.FindEmployeesByManager(ctx, actor.EmployeeID)
	case domain.RoleAdmin:
		reviewees, err = s.employeeRepo.FindActiveManagers(ctx)
	default:
		return nil, fmt.Errorf("%w: no review queue for this role", apperrors.ErrForbidden)
	}
	if err != nil {
		s.LogError(ctx, err, "failed to resolve review queue members")
		return nil, err
	}

	ids := make([]string, len(reviewees))
	for i, e := range reviewees {
		ids[i] = e.EmployeeID
	}
	return s.applicationRepo.ListPendingByEmployeeIDs(ctx, ids, limit, offset)
}

func (s *leaveService) CheckConflict(ctx context.Context, actor domain.Actor, start, end time.Time) (bool, error) {
	if end.Before(start) {
		return false, fmt.Errorf("%w: endDate must not precede startDate", apperrors.ErrValidation)
	}
	return s.applicationRepo.HasOverlappingApplication(ctx, actor.EmployeeID, start, end, nil)
}
