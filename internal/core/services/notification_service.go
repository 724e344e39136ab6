package services

import (
	"context"

	"github.com/hrkit/leave_management_app/internal/core/domain"
	portsrepo "github.com/hrkit/leave_management_app/internal/core/ports/repositories"
	portssvc "github.com/hrkit/leave_management_app/internal/core/ports/services"
)

type notificationService struct {
	BaseService
	notificationRepo portsrepo.NotificationRepositoryFacade
}

// NewNotificationService creates a new NotificationService.
func NewNotificationService(notificationRepo portsrepo.NotificationRepositoryFacade) portssvc.NotificationSvcFacade {
	return &notificationService{notificationRepo: notificationRepo}
}

// Ensure notificationService implements the portssvc.NotificationSvcFacade interface
var _ portssvc.NotificationSvcFacade = (*notificationService)(nil)

func (s *notificationService) ListMyNotifications(ctx context.Context, actor domain.Actor, limit, offset int) ([]domain.Notification, error) {
	return s.notificationRepo.ListNotificationsByRecipient(ctx, actor.EmployeeID, limit, offset)
}

func (s *notificationService) UnreadCount(ctx context.Context, actor domain.Actor) (int, error) {
	return s.notificationRepo.CountUnread(ctx, actor.EmployeeID)
}

func (s *notificationService) MarkRead(ctx context.Context, actor domain.Actor, notificationID string) error {
	return s.notificationRepo.MarkRead(ctx, notificationID, actor.EmployeeID)
}

func (s *notificationService) MarkAllRead(ctx context.Context, actor domain.Actor) (int, error) {
	return s.notificationRepo.MarkAllRead(ctx, actor.EmployeeID)
}
