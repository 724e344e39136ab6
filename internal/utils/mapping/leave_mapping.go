package mapping

import (
	"github.com/hrkit/leave_management_app/internal/core/domain"
	"github.com/hrkit/leave_management_app/internal/models"
)

// ToModelLeaveType converts a domain.LeaveType to its database model.
func ToModelLeaveType(d domain.LeaveType) models.LeaveType {
	return models.LeaveType{
		LeaveTypeID: d.LeaveTypeID,
		Name:        d.Name,
		MaxPerYear:  d.MaxPerYear,
		AuditFields: ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainLeaveType converts a models.LeaveType to its domain representation.
func ToDomainLeaveType(m models.LeaveType) domain.LeaveType {
	return domain.LeaveType{
		LeaveTypeID: m.LeaveTypeID,
		Name:        m.Name,
		MaxPerYear:  m.MaxPerYear,
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}

func ToDomainLeaveTypeSlice(ms []models.LeaveType) []domain.LeaveType {
	ds := make([]domain.LeaveType, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainLeaveType(m)
	}
	return ds
}

// ToModelLeaveBalance converts a domain.LeaveBalance to its database model.
func ToModelLeaveBalance(d domain.LeaveBalance) models.LeaveBalance {
	return models.LeaveBalance{
		BalanceID:     d.BalanceID,
		EmployeeID:    d.EmployeeID,
		LeaveTypeID:   d.LeaveTypeID,
		TotalAssigned: d.TotalAssigned,
		Used:          d.Used,
		Remaining:     d.Remaining,
		AuditFields:   ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainLeaveBalance converts a models.LeaveBalance to its domain representation.
func ToDomainLeaveBalance(m models.LeaveBalance) domain.LeaveBalance {
	return domain.LeaveBalance{
		BalanceID:     m.BalanceID,
		EmployeeID:    m.EmployeeID,
		LeaveTypeID:   m.LeaveTypeID,
		TotalAssigned: m.TotalAssigned,
		Used:          m.Used,
		Remaining:     m.Remaining,
		AuditFields:   ToDomainAuditFields(m.AuditFields),
	}
}

func ToDomainLeaveBalanceSlice(ms []models.LeaveBalance) []domain.LeaveBalance {
	ds := make([]domain.LeaveBalance, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainLeaveBalance(m)
	}
	return ds
}

// ToModelLeaveApplication converts a domain.LeaveApplication to its database model.
func ToModelLeaveApplication(d domain.LeaveApplication) models.LeaveApplication {
	return models.LeaveApplication{
		LeaveID:         d.LeaveID,
		EmployeeID:      d.EmployeeID,
		LeaveTypeID:     d.LeaveTypeID,
		StartDate:       d.StartDate,
		EndDate:         d.EndDate,
		TotalDays:       d.TotalDays,
		Reason:          d.Reason,
		Status:          models.LeaveStatus(d.Status),
		ReviewerComment: d.ReviewerComment,
		AppliedOn:       d.AppliedOn,
		ActionDate:      d.ActionDate,
		AuditFields:     ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainLeaveApplication converts a models.LeaveApplication to its domain representation.
func ToDomainLeaveApplication(m models.LeaveApplication) domain.LeaveApplication {
	return domain.LeaveApplication{
		LeaveID:         m.LeaveID,
		EmployeeID:      m.EmployeeID,
		LeaveTypeID:     m.LeaveTypeID,
		StartDate:       m.StartDate,
		EndDate:         m.EndDate,
		TotalDays:       m.TotalDays,
		Reason:          m.Reason,
		Status:          domain.LeaveStatus(m.Status),
		ReviewerComment: m.ReviewerComment,
		AppliedOn:       m.AppliedOn,
		ActionDate:      m.ActionDate,
		AuditFields:     ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainLeaveApplicationSlice converts a slice of application models.
func ToDomainLeaveApplicationSlice(ms []models.LeaveApplication) []domain.LeaveApplication {
	ds := make([]domain.LeaveApplication, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainLeaveApplication(m)
	}
	return ds
}

// ToModelNotification converts a domain.Notification to its database model.
func ToModelNotification(d domain.Notification) models.Notification {
	return models.Notification{
		NotificationID: d.NotificationID,
		EmployeeID:     d.EmployeeID,
		Kind:           models.NotificationKind(d.Kind),
		Message:        d.Message,
		CreatedOn:      d.CreatedOn,
		IsRead:         d.IsRead,
	}
}

// ToDomainNotification converts a models.Notification to its domain representation.
func ToDomainNotification(m models.Notification) domain.Notification {
	return domain.Notification{
		NotificationID: m.NotificationID,
		EmployeeID:     m.EmployeeID,
		Kind:           domain.NotificationKind(m.Kind),
		Message:        m.Message,
		CreatedOn:      m.CreatedOn,
		IsRead:         m.IsRead,
	}
}

func ToDomainNotificationSlice(ms []models.Notification) []domain.Notification {
	ds := make([]domain.Notification, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainNotification(m)
	}
	return ds
}
