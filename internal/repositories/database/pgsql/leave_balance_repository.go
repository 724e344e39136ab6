package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/hrkit/leave_management_app/internal/apperrors"
	"github.com/hrkit/leave_management_app/internal/core/domain"
	portsrepo "github.com/hrkit/leave_management_app/internal/core/ports/repositories"
	"github.com/hrkit/leave_management_app/internal/models"
	"github.com/hrkit/leave_management_app/internal/utils/mapping"
)

const leaveBalanceColumns = `balance_id, employee_id, leave_type_id, total_assigned, used, remaining,
	created_at, created_by, last_updated_at, last_updated_by`

type PgxLeaveBalanceRepository struct {
	BaseRepository
}

func newPgxLeaveBalanceRepository(pool *pgxpool.Pool) portsrepo.LeaveBalanceRepositoryFacade {
	return &PgxLeaveBalanceRepository{BaseRepository: BaseRepository{Pool: pool}}
}

// Ensure PgxLeaveBalanceRepository implements portsrepo.LeaveBalanceRepositoryFacade
var _ portsrepo.LeaveBalanceRepositoryFacade = (*PgxLeaveBalanceRepository)(nil)

func scanLeaveBalance(row pgx.Row) (models.LeaveBalance, error) {
	var m models.LeaveBalance
	err := row.Scan(
		&m.BalanceID,
		&m.EmployeeID,
		&m.LeaveTypeID,
		&m.TotalAssigned,
		&m.Used,
		&m.Remaining,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}

func (r *PgxLeaveBalanceRepository) FindBalance(ctx context.Context, employeeID, leaveTypeID string) (*domain.LeaveBalance, error) {
	query := `SELECT ` + leaveBalanceColumns + ` FROM leave_balances WHERE employee_id = $1 AND leave_type_id = $2;`
	m, err := scanLeaveBalance(r.Pool.QueryRow(ctx, query, employeeID, leaveTypeID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find balance: %w", err)
	}
	d := mapping.ToDomainLeaveBalance(m)
	return &d, nil
}

func (r *PgxLeaveBalanceRepository) ListBalancesByEmployee(ctx context.Context, employeeID string) ([]domain.LeaveBalance, error) {
	query := `
        SELECT ` + leaveBalanceColumns + `
        FROM leave_balances
        WHERE employee_id = $1
        ORDER BY leave_type_id;
    `
	rows, err := r.Pool.Query(ctx, query, employeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to query balances for employee %s: %w", employeeID, err)
	}
	defer rows.Close()

	ms := []models.LeaveBalance{}
	for rows.Next() {
		m, err := scanLeaveBalance(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan balance row: %w", err)
		}
		ms = append(ms, m)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating balance rows: %w", rows.Err())
	}
	return mapping.ToDomainLeaveBalanceSlice(ms), nil
}

const ensureBalanceQuery = `
    INSERT INTO leave_balances (balance_id, employee_id, leave_type_id, total_assigned, used, remaining,
        created_at, created_by, last_updated_at, last_updated_by)
    VALUES ($1, $2, $3, $4, 0, $4, $5, $6, $5, $6)
    ON CONFLICT (employee_id, leave_type_id) DO NOTHING;
`

func (r *PgxLeaveBalanceRepository) EnsureBalance(ctx context.Context, employeeID, leaveTypeID string, maxPerYear int, createdBy string, now time.Time) error {
	_, err := r.Pool.Exec(ctx, ensureBalanceQuery,
		uuid.NewString(), employeeID, leaveTypeID, maxPerYear, now, createdBy)
	if err != nil {
		return fmt.Errorf("failed to ensure balance: %w", err)
	}
	return nil
}

func (r *PgxLeaveBalanceRepository) EnsureBalanceInTx(ctx context.Context, tx pgx.Tx, employeeID, leaveTypeID string, maxPerYear int, createdBy string, now time.Time) error {
	_, err := tx.Exec(ctx, ensureBalanceQuery,
		uuid.NewString(), employeeID, leaveTypeID, maxPerYear, now, createdBy)
	if err != nil {
		return fmt.Errorf("failed to ensure balance in transaction: %w", err)
	}
	return nil
}

// FindBalanceForUpdate takes a row-level lock so concurrent debits against the
// same ledger row serialize.
func (r *PgxLeaveBalanceRepository) FindBalanceForUpdate(ctx context.Context, tx pgx.Tx, employeeID, leaveTypeID string) (*domain.LeaveBalance, error) {
	query := `
        SELECT ` + leaveBalanceColumns + `
        FROM leave_balances
        WHERE employee_id = $1 AND leave_type_id = $2
        FOR UPDATE;
    `
	m, err := scanLeaveBalance(tx.QueryRow(ctx, query, employeeID, leaveTypeID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to lock balance row: %w", err)
	}
	d := mapping.ToDomainLeaveBalance(m)
	return &d, nil
}

func (r *PgxLeaveBalanceRepository) DebitInTx(ctx context.Context, tx pgx.Tx, balanceID string, days decimal.Decimal, updatedBy string, now time.Time) error {
	query := `
        UPDATE leave_balances
        SET used = used + $1,
            remaining = total_assigned - (used + $1),
            last_updated_at = $2,
            last_updated_by = $3
        WHERE balance_id = $4;
    `
	tag, err := tx.Exec(ctx, query, days, now, updatedBy, balanceID)
	if err != nil {
		return fmt.Errorf("failed to debit balance %s: %w", balanceID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// AdjustEntitlement re-caps every ledger row of one leave type in a single
// transaction. Used is never allowed to exceed the new cap and Remaining
// never drops below zero.
func (r *PgxLeaveBalanceRepository) AdjustEntitlement(ctx context.Context, leaveTypeID string, oldMax, newMax int, updatedBy string, now time.Time) (portsrepo.AdjustmentResult, error) {
	var result portsrepo.AdjustmentResult

	tx, err := r.Begin(ctx)
	if err != nil {
		return result, err
	}
	defer r.Rollback(ctx, tx)

	countQuery := `SELECT COUNT(1) FROM leave_balances WHERE leave_type_id = $1 AND used > $2::numeric;`
	if err := tx.QueryRow(ctx, countQuery, leaveTypeID, newMax).Scan(&result.Clamped); err != nil {
		return result, fmt.Errorf("%w: failed to count clamped balances: %v", apperrors.ErrPersistence, err)
	}

	updateQuery := `
        UPDATE leave_balances
        SET total_assigned = $2::numeric,
            used = LEAST(used, $2::numeric),
            remaining = CASE
                WHEN used > $2::numeric THEN 0
                ELSE GREATEST(remaining + ($2::numeric - $3::numeric), 0)
            END,
            last_updated_at = $4,
            last_updated_by = $5
        WHERE leave_type_id = $1;
    `
	tag, err := tx.Exec(ctx, updateQuery, leaveTypeID, newMax, oldMax, now, updatedBy)
	if err != nil {
		return result, fmt.Errorf("%w: failed to adjust entitlements: %v", apperrors.ErrPersistence, err)
	}
	result.Updated = int(tag.RowsAffected())

	if err := r.Commit(ctx, tx); err != nil {
		return portsrepo.AdjustmentResult{}, err
	}
	return result, nil
}
