package dto

import (
	"time"

	"github.com/hrkit/leave_management_app/internal/core/domain"
)

// DateLayout is the wire format for date-only fields.
const DateLayout = "2006-01-02"

// SubmitLeaveRequest is the payload for filing a new leave application.
// Dates are inclusive, formatted as DateLayout.
type SubmitLeaveRequest struct {
	LeaveTypeID string `json:"leaveTypeID" binding:"required,uuid"`
	StartDate   string `json:"startDate" binding:"required"`
	EndDate     string `json:"endDate" binding:"required"`
	Reason      string `json:"reason" binding:"required,min=10,max=500"`
}

// DecisionRequest is the payload for approving or rejecting an application.
type DecisionRequest struct {
	Comment string `json:"comment" binding:"max=500"`
}

// ConflictCheckRequest is the payload for a standalone overlap check.
type ConflictCheckRequest struct {
	StartDate string `json:"startDate" binding:"required"`
	EndDate   string `json:"endDate" binding:"required"`
}

// LeaveApplicationResponse defines the data returned for one application.
type LeaveApplicationResponse struct {
	LeaveID         string     `json:"leaveID"`
	EmployeeID      string     `json:"employeeID"`
	LeaveTypeID     string     `json:"leaveTypeID"`
	StartDate       string     `json:"startDate"`
	EndDate         string     `json:"endDate"`
	TotalDays       int        `json:"totalDays"`
	Reason          string     `json:"reason"`
	Status          string     `json:"status"`
	ReviewerComment *string    `json:"reviewerComment,omitempty"`
	AppliedOn       time.Time  `json:"appliedOn"`
	ActionDate      *time.Time `json:"actionDate,omitempty"`
}

// ToLeaveApplicationResponse converts a domain.LeaveApplication to its response DTO.
func ToLeaveApplicationResponse(a *domain.LeaveApplication) LeaveApplicationResponse {
	return LeaveApplicationResponse{
		LeaveID:         a.LeaveID,
		EmployeeID:      a.EmployeeID,
		LeaveTypeID:     a.LeaveTypeID,
		StartDate:       a.StartDate.Format(DateLayout),
		EndDate:         a.EndDate.Format(DateLayout),
		TotalDays:       a.TotalDays,
		Reason:          a.Reason,
		Status:          string(a.Status),
		ReviewerComment: a.ReviewerComment,
		AppliedOn:       a.AppliedOn,
		ActionDate:      a.ActionDate,
	}
}

// ToLeaveApplicationResponses converts a slice of applications.
func ToLeaveApplicationResponses(as []domain.LeaveApplication) []LeaveApplicationResponse {
	responses := make([]LeaveApplicationResponse, len(as))
	for i := range as {
		responses[i] = ToLeaveApplicationResponse(&as[i])
	}
	return responses
}
