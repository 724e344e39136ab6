package services

import (
	"context"

	"github.com/hrkit/leave_management_app/internal/core/domain"
)

// NotificationSvcFacade exposes the notification records the core emits.
// Delivery to external channels is out of scope.
type NotificationSvcFacade interface {
	ListMyNotifications(ctx context.Context, actor domain.Actor, limit, offset int) ([]domain.Notification, error)
	UnreadCount(ctx context.Context, actor domain.Actor) (int, error)
	MarkRead(ctx context.Context, actor domain.Actor, notificationID string) error
	MarkAllRead(ctx context.Context, actor domain.Actor) (int, error)
}
