package domain

import "time"

// NotificationKind tags what state transition produced a notification, so the
// delivery collaborator can render per kind.
type NotificationKind string

const (
	NotificationApplied  NotificationKind = "APPLIED"
	NotificationApproved NotificationKind = "APPROVED"
	NotificationRejected NotificationKind = "REJECTED"
)

// Notification is an in-app record emitted by the core as a side effect of a
// state transition. Delivery (email, push) is an external collaborator's
// responsibility.
type Notification struct {
	NotificationID string           `json:"notificationID"` // Primary key (UUID)
	EmployeeID     string           `json:"employeeID"`     // Recipient
	Kind           NotificationKind `json:"kind"`
	Message        string           `json:"message"`
	CreatedOn      time.Time        `json:"createdOn"`
	IsRead         bool             `json:"isRead"`
}
