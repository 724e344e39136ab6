package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/hrkit/leave_management_app/internal/apperrors"
	"github.com/hrkit/leave_management_app/internal/core/domain"
	portsrepo "github.com/hrkit/leave_management_app/internal/core/ports/repositories"
	"github.com/hrkit/leave_management_app/internal/models"
	"github.com/hrkit/leave_management_app/internal/utils/mapping"
)

const leaveTypeColumns = `leave_type_id, name, max_per_year, created_at, created_by, last_updated_at, last_updated_by`

type PgxLeaveTypeRepository struct {
	BaseRepository
}

func newPgxLeaveTypeRepository(pool *pgxpool.Pool) portsrepo.LeaveTypeRepositoryFacade {
	return &PgxLeaveTypeRepository{BaseRepository: BaseRepository{Pool: pool}}
}

// Ensure PgxLeaveTypeRepository implements portsrepo.LeaveTypeRepositoryFacade
var _ portsrepo.LeaveTypeRepositoryFacade = (*PgxLeaveTypeRepository)(nil)

func scanLeaveType(row pgx.Row) (models.LeaveType, error) {
	var m models.LeaveType
	err := row.Scan(
		&m.LeaveTypeID,
		&m.Name,
		&m.MaxPerYear,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}

func (r *PgxLeaveTypeRepository) SaveLeaveType(ctx context.Context, leaveType domain.LeaveType) error {
	m := mapping.ToModelLeaveType(leaveType)
	query := `
        INSERT INTO leave_types (` + leaveTypeColumns + `)
        VALUES ($1, $2, $3, $4, $5, $6, $7)
        ON CONFLICT (leave_type_id) DO UPDATE SET
            name = EXCLUDED.name,
            max_per_year = EXCLUDED.max_per_year,
            last_updated_at = EXCLUDED.last_updated_at,
            last_updated_by = EXCLUDED.last_updated_by;
    `
	_, err := r.Pool.Exec(ctx, query,
		m.LeaveTypeID,
		m.Name,
		m.MaxPerYear,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: leave type name %q", apperrors.ErrDuplicate, leaveType.Name)
		}
		return fmt.Errorf("failed to save leave type: %w", err)
	}
	return nil
}

func (r *PgxLeaveTypeRepository) FindLeaveTypeByID(ctx context.Context, leaveTypeID string) (*domain.LeaveType, error) {
	query := `SELECT ` + leaveTypeColumns + ` FROM leave_types WHERE leave_type_id = $1;`
	m, err := scanLeaveType(r.Pool.QueryRow(ctx, query, leaveTypeID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find leave type by ID %s: %w", leaveTypeID, err)
	}
	d := mapping.ToDomainLeaveType(m)
	return &d, nil
}

func (r *PgxLeaveTypeRepository) FindLeaveTypeByName(ctx context.Context, name string) (*domain.LeaveType, error) {
	query := `SELECT ` + leaveTypeColumns + ` FROM leave_types WHERE lower(name) = lower($1);`
	m, err := scanLeaveType(r.Pool.QueryRow(ctx, query, name))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find leave type by name: %w", err)
	}
	d := mapping.ToDomainLeaveType(m)
	return &d, nil
}

func (r *PgxLeaveTypeRepository) FindLeaveTypes(ctx context.Context) ([]domain.LeaveType, error) {
	query := `SELECT ` + leaveTypeColumns + ` FROM leave_types ORDER BY name;`
	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query leave types: %w", err)
	}
	defer rows.Close()

	ms := []models.LeaveType{}
	for rows.Next() {
		m, err := scanLeaveType(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan leave type row: %w", err)
		}
		ms = append(ms, m)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating leave type rows: %w", rows.Err())
	}
	return mapping.ToDomainLeaveTypeSlice(ms), nil
}

// DeleteLeaveType removes the catalog entry together with its balance rows.
// The caller verifies no application references the type before this runs.
func (r *PgxLeaveTypeRepository) DeleteLeaveType(ctx context.Context, leaveTypeID string) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	if _, err := tx.Exec(ctx, `DELETE FROM leave_balances WHERE leave_type_id = $1;`, leaveTypeID); err != nil {
		return fmt.Errorf("%w: failed to delete balances for leave type: %v", apperrors.ErrPersistence, err)
	}

	tag, err := tx.Exec(ctx, `DELETE FROM leave_types WHERE leave_type_id = $1;`, leaveTypeID)
	if err != nil {
		return fmt.Errorf("%w: failed to delete leave type: %v", apperrors.ErrPersistence, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}

	return r.Commit(ctx, tx)
}
