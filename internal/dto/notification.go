package dto

import (
	"time"

	"github.com/hrkit/leave_management_app/internal/core/domain"
)

// NotificationResponse defines the data returned for one notification record.
type NotificationResponse struct {
	NotificationID string    `json:"notificationID"`
	Kind           string    `json:"kind"`
	Message        string    `json:"message"`
	CreatedOn      time.Time `json:"createdOn"`
	IsRead         bool      `json:"isRead"`
}

// ToNotificationResponse converts a domain.Notification to its response DTO.
func ToNotificationResponse(n *domain.Notification) NotificationResponse {
	return NotificationResponse{
		NotificationID: n.NotificationID,
		Kind:           string(n.Kind),
		Message:        n.Message,
		CreatedOn:      n.CreatedOn,
		IsRead:         n.IsRead,
	}
}

// ToNotificationResponses converts a slice of notification records.
func ToNotificationResponses(ns []domain.Notification) []NotificationResponse {
	responses := make([]NotificationResponse, len(ns))
	for i := range ns {
		responses[i] = ToNotificationResponse(&ns[i])
	}
	return responses
}
