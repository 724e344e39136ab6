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

const departmentColumns = `department_id, name, created_at, created_by, last_updated_at, last_updated_by`

type PgxDepartmentRepository struct {
	BaseRepository
}

func newPgxDepartmentRepository(pool *pgxpool.Pool) portsrepo.DepartmentRepository {
	return &PgxDepartmentRepository{BaseRepository: BaseRepository{Pool: pool}}
}

// Ensure PgxDepartmentRepository implements portsrepo.DepartmentRepository
var _ portsrepo.DepartmentRepository = (*PgxDepartmentRepository)(nil)

func scanDepartment(row pgx.Row) (models.Department, error) {
	var m models.Department
	err := row.Scan(
		&m.DepartmentID,
		&m.Name,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}

func (r *PgxDepartmentRepository) SaveDepartment(ctx context.Context, department domain.Department) error {
	m := mapping.ToModelDepartment(department)
	query := `
        INSERT INTO departments (` + departmentColumns + `)
        VALUES ($1, $2, $3, $4, $5, $6)
        ON CONFLICT (department_id) DO UPDATE SET
            name = EXCLUDED.name,
            last_updated_at = EXCLUDED.last_updated_at,
            last_updated_by = EXCLUDED.last_updated_by;
    `
	_, err := r.Pool.Exec(ctx, query,
		m.DepartmentID,
		m.Name,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: department name %q", apperrors.ErrDuplicate, department.Name)
		}
		return fmt.Errorf("failed to save department: %w", err)
	}
	return nil
}

func (r *PgxDepartmentRepository) FindDepartmentByID(ctx context.Context, departmentID string) (*domain.Department, error) {
	query := `SELECT ` + departmentColumns + ` FROM departments WHERE department_id = $1;`
	m, err := scanDepartment(r.Pool.QueryRow(ctx, query, departmentID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find department by ID %s: %w", departmentID, err)
	}
	d := mapping.ToDomainDepartment(m)
	return &d, nil
}

func (r *PgxDepartmentRepository) FindDepartmentByName(ctx context.Context, name string) (*domain.Department, error) {
	query := `SELECT ` + departmentColumns + ` FROM departments WHERE lower(name) = lower($1);`
	m, err := scanDepartment(r.Pool.QueryRow(ctx, query, name))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find department by name: %w", err)
	}
	d := mapping.ToDomainDepartment(m)
	return &d, nil
}

func (r *PgxDepartmentRepository) FindDepartments(ctx context.Context) ([]domain.Department, error) {
	query := `SELECT ` + departmentColumns + ` FROM departments ORDER BY name;`
	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query departments: %w", err)
	}
	defer rows.Close()

	ms := []models.Department{}
	for rows.Next() {
		m, err := scanDepartment(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan department row: %w", err)
		}
		ms = append(ms, m)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating department rows: %w", rows.Err())
	}
	return mapping.ToDomainDepartmentSlice(ms), nil
}

// DeleteDepartment detaches every member before removing the department so
// employee rows never reference a missing department.
func (r *PgxDepartmentRepository) DeleteDepartment(ctx context.Context, departmentID string) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	if _, err := tx.Exec(ctx, `UPDATE employees SET department_id = NULL WHERE department_id = $1;`, departmentID); err != nil {
		return fmt.Errorf("%w: failed to detach department members: %v", apperrors.ErrPersistence, err)
	}

	tag, err := tx.Exec(ctx, `DELETE FROM departments WHERE department_id = $1;`, departmentID)
	if err != nil {
		return fmt.Errorf("%w: failed to delete department: %v", apperrors.ErrPersistence, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}

	return r.Commit(ctx, tx)
}
