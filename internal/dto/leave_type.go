package dto

import "github.com/hrkit/leave_management_app/internal/core/domain"

// CreateLeaveTypeRequest is the payload for adding a catalog entry.
type CreateLeaveTypeRequest struct {
	Name       string `json:"name" binding:"required,max=50"`
	MaxPerYear *int   `json:"maxPerYear" binding:"required,min=0"`
}

// UpdateLeaveTypeRequest is the payload for editing a catalog entry.
type UpdateLeaveTypeRequest struct {
	Name       *string `json:"name,omitempty" binding:"omitempty,max=50"`
	MaxPerYear *int    `json:"maxPerYear,omitempty" binding:"omitempty,min=0"`
}

// LeaveTypeResponse defines the data returned for one catalog entry.
type LeaveTypeResponse struct {
	LeaveTypeID string `json:"leaveTypeID"`
	Name        string `json:"name"`
	MaxPerYear  int    `json:"maxPerYear"`
}

// ToLeaveTypeResponse converts a domain.LeaveType to its response DTO.
func ToLeaveTypeResponse(t *domain.LeaveType) LeaveTypeResponse {
	return LeaveTypeResponse{
		LeaveTypeID: t.LeaveTypeID,
		Name:        t.Name,
		MaxPerYear:  t.MaxPerYear,
	}
}

// ToLeaveTypeResponses converts a slice of catalog entries.
func ToLeaveTypeResponses(ts []domain.LeaveType) []LeaveTypeResponse {
	responses := make([]LeaveTypeResponse, len(ts))
	for i := range ts {
		responses[i] = ToLeaveTypeResponse(&ts[i])
	}
	return responses
}
