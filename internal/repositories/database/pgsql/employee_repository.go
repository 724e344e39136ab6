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

const employeeColumns = `employee_id, name, email, role, manager_id, department_id, joined_at, is_active,
	created_at, created_by, last_updated_at, last_updated_by`

type PgxEmployeeRepository struct {
	BaseRepository
}

func newPgxEmployeeRepository(pool *pgxpool.Pool) portsrepo.EmployeeRepositoryFacade {
	return &PgxEmployeeRepository{BaseRepository: BaseRepository{Pool: pool}}
}

// Ensure PgxEmployeeRepository implements portsrepo.EmployeeRepositoryFacade
var _ portsrepo.EmployeeRepositoryFacade = (*PgxEmployeeRepository)(nil)

func scanEmployee(row pgx.Row) (models.Employee, error) {
	var m models.Employee
	err := row.Scan(
		&m.EmployeeID,
		&m.Name,
		&m.Email,
		&m.Role,
		&m.ManagerID,
		&m.DepartmentID,
		&m.JoinedAt,
		&m.IsActive,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}

func (r *PgxEmployeeRepository) SaveEmployee(ctx context.Context, employee domain.Employee) error {
	m := mapping.ToModelEmployee(employee)
	query := `
        INSERT INTO employees (` + employeeColumns + `)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
        ON CONFLICT (employee_id) DO UPDATE SET
            name = EXCLUDED.name,
            email = EXCLUDED.email,
            role = EXCLUDED.role,
            manager_id = EXCLUDED.manager_id,
            department_id = EXCLUDED.department_id,
            is_active = EXCLUDED.is_active,
            last_updated_at = EXCLUDED.last_updated_at,
            last_updated_by = EXCLUDED.last_updated_by;
    `
	_, err := r.Pool.Exec(ctx, query,
		m.EmployeeID,
		m.Name,
		m.Email,
		m.Role,
		m.ManagerID,
		m.DepartmentID,
		m.JoinedAt,
		m.IsActive,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: email %s", apperrors.ErrDuplicate, employee.Email)
		}
		return fmt.Errorf("failed to save employee: %w", err)
	}
	return nil
}

func (r *PgxEmployeeRepository) FindEmployeeByID(ctx context.Context, employeeID string) (*domain.Employee, error) {
	query := `SELECT ` + employeeColumns + ` FROM employees WHERE employee_id = $1;`
	m, err := scanEmployee(r.Pool.QueryRow(ctx, query, employeeID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find employee by ID %s: %w", employeeID, err)
	}
	d := mapping.ToDomainEmployee(m)
	return &d, nil
}

func (r *PgxEmployeeRepository) FindEmployeeByEmail(ctx context.Context, email string) (*domain.Employee, error) {
	query := `SELECT ` + employeeColumns + ` FROM employees WHERE lower(email) = lower($1);`
	m, err := scanEmployee(r.Pool.QueryRow(ctx, query, email))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find employee by email: %w", err)
	}
	d := mapping.ToDomainEmployee(m)
	return &d, nil
}

func (r *PgxEmployeeRepository) FindEmployees(ctx context.Context, limit, offset int) ([]domain.Employee, error) {
	if limit <= 0 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}

	query := `
        SELECT ` + employeeColumns + `
        FROM employees
        ORDER BY name
        LIMIT $1 OFFSET $2;
    `
	return r.queryEmployees(ctx, query, limit, offset)
}

func (r *PgxEmployeeRepository) FindEmployeesByManager(ctx context.Context, managerID string) ([]domain.Employee, error) {
	query := `
        SELECT ` + employeeColumns + `
        FROM employees
        WHERE manager_id = $1 AND is_active
        ORDER BY name;
    `
	return r.queryEmployees(ctx, query, managerID)
}

func (r *PgxEmployeeRepository) FindActiveAdmins(ctx context.Context) ([]domain.Employee, error) {
	query := `
        SELECT ` + employeeColumns + `
        FROM employees
        WHERE role = $1 AND is_active
        ORDER BY name;
    `
	return r.queryEmployees(ctx, query, models.RoleAdmin)
}

func (r *PgxEmployeeRepository) FindActiveManagers(ctx context.Context) ([]domain.Employee, error) {
	query := `
        SELECT ` + employeeColumns + `
        FROM employees
        WHERE role = $1 AND is_active
        ORDER BY name;
    `
	return r.queryEmployees(ctx, query, models.RoleManager)
}

func (r *PgxEmployeeRepository) FindActiveNonAdmins(ctx context.Context) ([]domain.Employee, error) {
	query := `
        SELECT ` + employeeColumns + `
        FROM employees
        WHERE role <> $1 AND is_active
        ORDER BY name;
    `
	return r.queryEmployees(ctx, query, models.RoleAdmin)
}

func (r *PgxEmployeeRepository) CountActiveAdmins(ctx context.Context, excludeEmployeeID string) (int, error) {
	query := `SELECT COUNT(1) FROM employees WHERE role = $1 AND is_active AND employee_id <> $2;`
	var count int
	if err := r.Pool.QueryRow(ctx, query, models.RoleAdmin, excludeEmployeeID).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count active admins: %w", err)
	}
	return count, nil
}

func (r *PgxEmployeeRepository) SetEmployeeActive(ctx context.Context, employeeID string, active bool, updatedBy string, updatedAt time.Time) error {
	query := `
        UPDATE employees
        SET is_active = $1, last_updated_at = $2, last_updated_by = $3
        WHERE employee_id = $4;
    `
	tag, err := r.Pool.Exec(ctx, query, active, updatedAt, updatedBy, employeeID)
	if err != nil {
		return fmt.Errorf("failed to set employee active flag: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// DeleteEmployeeCascade removes the employee, their ledger rows, applications
// and notifications in one transaction, and detaches direct reports. The
// original system destroys applications only through this path.
func (r *PgxEmployeeRepository) DeleteEmployeeCascade(ctx context.Context, employeeID string) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	statements := []string{
		`DELETE FROM leave_balances WHERE employee_id = $1;`,
		`DELETE FROM leave_applications WHERE employee_id = $1;`,
		`DELETE FROM notifications WHERE employee_id = $1;`,
		`UPDATE employees SET manager_id = NULL WHERE manager_id = $1;`,
	}
	for _, stmt := range statements {
		if _, err := tx.Exec(ctx, stmt, employeeID); err != nil {
			return fmt.Errorf("%w: failed to cascade employee delete: %v", apperrors.ErrPersistence, err)
		}
	}

	tag, err := tx.Exec(ctx, `DELETE FROM employees WHERE employee_id = $1;`, employeeID)
	if err != nil {
		return fmt.Errorf("%w: failed to delete employee: %v", apperrors.ErrPersistence, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}

	return r.Commit(ctx, tx)
}

func (r *PgxEmployeeRepository) queryEmployees(ctx context.Context, query string, args ...any) ([]domain.Employee, error) {
	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query employees: %w", err)
	}
	defer rows.Close()

	ms := []models.Employee{}
	for rows.Next() {
		m, err := scanEmployee(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan employee row: %w", err)
		}
		ms = append(ms, m)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating employee rows: %w", rows.Err())
	}
	return mapping.ToDomainEmployeeSlice(ms), nil
}
