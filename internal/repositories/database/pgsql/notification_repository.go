package pgsql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/hrkit/leave_management_app/internal/apperrors"
	"github.com/hrkit/leave_management_app/internal/core/domain"
	portsrepo "github.com/hrkit/leave_management_app/internal/core/ports/repositories"
	"github.com/hrkit/leave_management_app/internal/models"
	"github.com/hrkit/leave_management_app/internal/utils/mapping"
)

const notificationColumns = `notification_id, employee_id, kind, message, created_on, is_read`

type PgxNotificationRepository struct {
	BaseRepository
}

func newPgxNotificationRepository(pool *pgxpool.Pool) portsrepo.NotificationRepositoryFacade {
	return &PgxNotificationRepository{BaseRepository: BaseRepository{Pool: pool}}
}

// Ensure PgxNotificationRepository implements portsrepo.NotificationRepositoryFacade
var _ portsrepo.NotificationRepositoryFacade = (*PgxNotificationRepository)(nil)

func (r *PgxNotificationRepository) SaveNotificationInTx(ctx context.Context, tx pgx.Tx, notification domain.Notification) error {
	m := mapping.ToModelNotification(notification)
	query := `
        INSERT INTO notifications (` + notificationColumns + `)
        VALUES ($1, $2, $3, $4, $5, $6);
    `
	_, err := tx.Exec(ctx, query,
		m.NotificationID,
		m.EmployeeID,
		m.Kind,
		m.Message,
		m.CreatedOn,
		m.IsRead,
	)
	if err != nil {
		return fmt.Errorf("%w: failed to insert notification: %v", apperrors.ErrPersistence, err)
	}
	return nil
}

func (r *PgxNotificationRepository) ListNotificationsByRecipient(ctx context.Context, employeeID string, limit, offset int) ([]domain.Notification, error) {
	if limit <= 0 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}

	query := `
        SELECT ` + notificationColumns + `
        FROM notifications
        WHERE employee_id = $1
        ORDER BY created_on DESC
        LIMIT $2 OFFSET $3;
    `
	rows, err := r.Pool.Query(ctx, query, employeeID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to query notifications: %w", err)
	}
	defer rows.Close()

	ms := []models.Notification{}
	for rows.Next() {
		var m models.Notification
		err := rows.Scan(&m.NotificationID, &m.EmployeeID, &m.Kind, &m.Message, &m.CreatedOn, &m.IsRead)
		if err != nil {
			return nil, fmt.Errorf("failed to scan notification row: %w", err)
		}
		ms = append(ms, m)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating notification rows: %w", rows.Err())
	}
	return mapping.ToDomainNotificationSlice(ms), nil
}

func (r *PgxNotificationRepository) CountUnread(ctx context.Context, employeeID string) (int, error) {
	query := `SELECT COUNT(1) FROM notifications WHERE employee_id = $1 AND NOT is_read;`
	var count int
	if err := r.Pool.QueryRow(ctx, query, employeeID).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count unread notifications: %w", err)
	}
	return count, nil
}

func (r *PgxNotificationRepository) MarkRead(ctx context.Context, notificationID, employeeID string) error {
	query := `UPDATE notifications SET is_read = TRUE WHERE notification_id = $1 AND employee_id = $2;`
	tag, err := r.Pool.Exec(ctx, query, notificationID, employeeID)
	if err != nil {
		return fmt.Errorf("failed to mark notification read: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxNotificationRepository) MarkAllRead(ctx context.Context, employeeID string) (int, error) {
	query := `UPDATE notifications SET is_read = TRUE WHERE employee_id = $1 AND NOT is_read;`
	tag, err := r.Pool.Exec(ctx, query, employeeID)
	if err != nil {
		return 0, fmt.Errorf("failed to mark notifications read: %w", err)
	}
	return int(tag.RowsAffected()), nil
}
