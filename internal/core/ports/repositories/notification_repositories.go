package repositories

import (
	"context"

	"github.com/jackc/pgx/v5"

	"github.com/hrkit/leave_management_app/internal/core/domain"
)

// NotificationReader defines read operations for notification records.
type NotificationReader interface {
	// ListNotificationsByRecipient retrieves a recipient's notifications, newest first.
	ListNotificationsByRecipient(ctx context.Context, employeeID string, limit, offset int) ([]domain.Notification, error)

	// CountUnread counts the recipient's unread notifications.
	CountUnread(ctx context.Context, employeeID string) (int, error)
}

// NotificationWriter defines write operations for notification records.
type NotificationWriter interface {
	// SaveNotificationInTx persists one notification on an existing transaction;
	// the core always writes notifications as part of a larger atomic unit.
	SaveNotificationInTx(ctx context.Context, tx pgx.Tx, notification domain.Notification) error

	// MarkRead marks a single notification read, scoped to its recipient.
	MarkRead(ctx context.Context, notificationID, employeeID string) error

	// MarkAllRead marks every unread notification of a recipient read and
	// returns how many were affected.
	MarkAllRead(ctx context.Context, employeeID string) (int, error)
}

// NotificationRepositoryFacade combines all notification repository interfaces.
type NotificationRepositoryFacade interface {
	NotificationReader
	NotificationWriter
}
