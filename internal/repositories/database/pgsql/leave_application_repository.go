package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/hrkit/leave_management_app/internal/apperrors"
	"github.com/hrkit/leave_management_app/internal/core/domain"
	portsrepo "github.com/hrkit/leave_management_app/internal/core/ports/repositories"
	"github.com/hrkit/leave_management_app/internal/models"
	"github.com/hrkit/leave_management_app/internal/utils/mapping"
)

const leaveApplicationColumns = `leave_id, employee_id, leave_type_id, start_date, end_date, total_days,
	reason, status, reviewer_comment, applied_on, action_date,
	created_at, created_by, last_updated_at, last_updated_by`

// PgxLeaveApplicationRepository owns the application rows and orchestrates the
// decision transactions, composing the ledger and notification repositories
// into a single atomic unit.
type PgxLeaveApplicationRepository struct {
	BaseRepository
	balanceRepo      portsrepo.LeaveBalanceTxOperations
	notificationRepo portsrepo.NotificationWriter
}

func newPgxLeaveApplicationRepository(
	pool *pgxpool.Pool,
	balanceRepo portsrepo.LeaveBalanceTxOperations,
	notificationRepo portsrepo.NotificationWriter,
) portsrepo.LeaveApplicationRepositoryWithTx {
	return &PgxLeaveApplicationRepository{
		BaseRepository:   BaseRepository{Pool: pool},
		balanceRepo:      balanceRepo,
		notificationRepo: notificationRepo,
	}
}

// Ensure PgxLeaveApplicationRepository implements portsrepo.LeaveApplicationRepositoryWithTx
var _ portsrepo.LeaveApplicationRepositoryWithTx = (*PgxLeaveApplicationRepository)(nil)

func scanLeaveApplication(row pgx.Row) (models.LeaveApplication, error) {
	var m models.LeaveApplication
	err := row.Scan(
		&m.LeaveID,
		&m.EmployeeID,
		&m.LeaveTypeID,
		&m.StartDate,
		&m.EndDate,
		&m.TotalDays,
		&m.Reason,
		&m.Status,
		&m.ReviewerComment,
		&m.AppliedOn,
		&m.ActionDate,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}

func (r *PgxLeaveApplicationRepository) FindApplicationByID(ctx context.Context, leaveID string) (*domain.LeaveApplication, error) {
	query := `SELECT ` + leaveApplicationColumns + ` FROM leave_applications WHERE leave_id = $1;`
	m, err := scanLeaveApplication(r.Pool.QueryRow(ctx, query, leaveID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find application by ID %s: %w", leaveID, err)
	}
	d := mapping.ToDomainLeaveApplication(m)
	return &d, nil
}

func (r *PgxLeaveApplicationRepository) ListApplicationsByEmployee(ctx context.Context, employeeID string, limit, offset int) ([]domain.LeaveApplication, error) {
	if limit <= 0 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}

	query := `
        SELECT ` + leaveApplicationColumns + `
        FROM leave_applications
        WHERE employee_id = $1
        ORDER BY applied_on DESC
        LIMIT $2 OFFSET $3;
    `
	return r.queryApplications(ctx, query, employeeID, limit, offset)
}

func (r *PgxLeaveApplicationRepository) ListPendingByEmployeeIDs(ctx context.Context, employeeIDs []string, limit, offset int) ([]domain.LeaveApplication, error) {
	if len(employeeIDs) == 0 {
		return []domain.LeaveApplication{}, nil
	}
	if limit <= 0 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}

	query := `
        SELECT ` + leaveApplicationColumns + `
        FROM leave_applications
        WHERE employee_id = ANY($1) AND status = $2
        ORDER BY applied_on ASC
        LIMIT $3 OFFSET $4;
    `
	return r.queryApplications(ctx, query, employeeIDs, models.StatusPending, limit, offset)
}

func (r *PgxLeaveApplicationRepository) HasOverlappingApplication(ctx context.Context, employeeID string, start, end time.Time, excludeLeaveID *string) (bool, error) {
	query := `
        SELECT EXISTS (
            SELECT 1
            FROM leave_applications
            WHERE employee_id = $1
              AND status NOT IN ($2, $3)
              AND start_date <= $4
              AND end_date >= $5
              AND ($6::uuid IS NULL OR leave_id <> $6)
        );
    `
	var exists bool
	err := r.Pool.QueryRow(ctx, query,
		employeeID, models.StatusRejected, models.StatusCancelled, end, start, excludeLeaveID,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check overlapping applications: %w", err)
	}
	return exists, nil
}

func (r *PgxLeaveApplicationRepository) CountApplicationsByLeaveType(ctx context.Context, leaveTypeID string) (int, error) {
	query := `SELECT COUNT(1) FROM leave_applications WHERE leave_type_id = $1;`
	var count int
	if err := r.Pool.QueryRow(ctx, query, leaveTypeID).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count applications by leave type: %w", err)
	}
	return count, nil
}

// SaveSubmission persists the application and the reviewer notifications
// atomically so a submission is never visible without its review alerts.
func (r *PgxLeaveApplicationRepository) SaveSubmission(ctx context.Context, application domain.LeaveApplication, notifications []domain.Notification) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	m := mapping.ToModelLeaveApplication(application)
	query := `
        INSERT INTO leave_applications (` + leaveApplicationColumns + `)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15);
    `
	_, err = tx.Exec(ctx, query,
		m.LeaveID,
		m.EmployeeID,
		m.LeaveTypeID,
		m.StartDate,
		m.EndDate,
		m.TotalDays,
		m.Reason,
		m.Status,
		m.ReviewerComment,
		m.AppliedOn,
		m.ActionDate,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("%w: failed to insert application: %v", apperrors.ErrPersistence, err)
	}

	for _, n := range notifications {
		if err := r.notificationRepo.SaveNotificationInTx(ctx, tx, n); err != nil {
			return err
		}
	}

	return r.Commit(ctx, tx)
}

func (r *PgxLeaveApplicationRepository) ApproveApplication(ctx context.Context, params portsrepo.DecisionParams) (*domain.LeaveApplication, error) {
	return r.decideApplication(ctx, params, true)
}

func (r *PgxLeaveApplicationRepository) RejectApplication(ctx context.Context, params portsrepo.DecisionParams) (*domain.LeaveApplication, error) {
	return r.decideApplication(ctx, params, false)
}

// decideApplication is the shared decision transaction. The application row is
// re-read under a lock so at most one transition leaves PENDING no matter how
// many reviewers race; the approve path additionally locks and debits the
// ledger row before the status flips.
func (r *PgxLeaveApplicationRepository) decideApplication(ctx context.Context, params portsrepo.DecisionParams, approve bool) (*domain.LeaveApplication, error) {
	tx, err := r.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer r.Rollback(ctx, tx)

	current, err := r.lockApplication(ctx, tx, params.LeaveID)
	if err != nil {
		return nil, err
	}
	if current.Status != models.StatusPending {
		return nil, apperrors.NewInvalidTransition(string(current.Status))
	}

	newStatus := models.StatusRejected
	if approve {
		newStatus = models.StatusApproved

		err = r.balanceRepo.EnsureBalanceInTx(ctx, tx,
			current.EmployeeID, current.LeaveTypeID, params.MaxPerYear, params.ReviewerID, params.ActionDate)
		if err != nil {
			return nil, err
		}

		balance, err := r.balanceRepo.FindBalanceForUpdate(ctx, tx, current.EmployeeID, current.LeaveTypeID)
		if err != nil {
			return nil, err
		}
		if params.DebitDays.GreaterThan(balance.Remaining) {
			return nil, apperrors.NewInsufficientBalance(params.DebitDays.String(), balance.Remaining.String())
		}
		if err := r.balanceRepo.DebitInTx(ctx, tx, balance.BalanceID, params.DebitDays, params.ReviewerID, params.ActionDate); err != nil {
			return nil, err
		}
	}

	updateQuery := `
        UPDATE leave_applications
        SET status = $1, reviewer_comment = $2, action_date = $3, last_updated_at = $3, last_updated_by = $4
        WHERE leave_id = $5;
    `
	_, err = tx.Exec(ctx, updateQuery,
		newStatus, params.ReviewerComment, params.ActionDate, params.ReviewerID, params.LeaveID)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to update application status: %v", apperrors.ErrPersistence, err)
	}

	if err := r.notificationRepo.SaveNotificationInTx(ctx, tx, params.Notification); err != nil {
		return nil, err
	}

	if err := r.Commit(ctx, tx); err != nil {
		return nil, err
	}

	current.Status = newStatus
	current.ReviewerComment = params.ReviewerComment
	actionDate := params.ActionDate
	current.ActionDate = &actionDate
	current.LastUpdatedAt = params.ActionDate
	current.LastUpdatedBy = params.ReviewerID
	d := mapping.ToDomainLeaveApplication(*current)
	return &d, nil
}

// CancelApplication is owner initiated: the lock and status re-check follow
// the decision path, but the reviewer comment and action date are cleared.
func (r *PgxLeaveApplicationRepository) CancelApplication(ctx context.Context, leaveID, ownerEmployeeID string, updatedAt time.Time) (*domain.LeaveApplication, error) {
	tx, err := r.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer r.Rollback(ctx, tx)

	current, err := r.lockApplication(ctx, tx, leaveID)
	if err != nil {
		return nil, err
	}
	if current.EmployeeID != ownerEmployeeID {
		return nil, fmt.Errorf("%w: only the applicant may cancel", apperrors.ErrForbidden)
	}
	if current.Status != models.StatusPending {
		return nil, apperrors.NewInvalidTransition(string(current.Status))
	}

	updateQuery := `
        UPDATE leave_applications
        SET status = $1, reviewer_comment = NULL, action_date = NULL, last_updated_at = $2, last_updated_by = $3
        WHERE leave_id = $4;
    `
	_, err = tx.Exec(ctx, updateQuery, models.StatusCancelled, updatedAt, ownerEmployeeID, leaveID)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to cancel application: %v", apperrors.ErrPersistence, err)
	}

	if err := r.Commit(ctx, tx); err != nil {
		return nil, err
	}

	current.Status = models.StatusCancelled
	current.ReviewerComment = nil
	current.ActionDate = nil
	current.LastUpdatedAt = updatedAt
	current.LastUpdatedBy = ownerEmployeeID
	d := mapping.ToDomainLeaveApplication(*current)
	return &d, nil
}

func (r *PgxLeaveApplicationRepository) lockApplication(ctx context.Context, tx pgx.Tx, leaveID string) (*models.LeaveApplication, error) {
	query := `SELECT ` + leaveApplicationColumns + ` FROM leave_applications WHERE leave_id = $1 FOR UPDATE;`
	m, err := scanLeaveApplication(tx.QueryRow(ctx, query, leaveID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to lock application row: %w", err)
	}
	return &m, nil
}

func (r *PgxLeaveApplicationRepository) queryApplications(ctx context.Context, query string, args ...any) ([]domain.LeaveApplication, error) {
	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query applications: %w", err)
	}
	defer rows.Close()

	ms := []models.LeaveApplication{}
	for rows.Next() {
		m, err := scanLeaveApplication(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan application row: %w", err)
		}
		ms = append(ms, m)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating application rows: %w", rows.Err())
	}
	return mapping.ToDomainLeaveApplicationSlice(ms), nil
}
