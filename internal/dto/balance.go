package dto

import (
	"github.com/shopspring/decimal"

	"github.com/hrkit/leave_management_app/internal/core/domain"
)

// BalanceResponse defines the data returned for one ledger row.
type BalanceResponse struct {
	LeaveTypeID   string          `json:"leaveTypeID"`
	TotalAssigned decimal.Decimal `json:"totalAssigned"`
	Used          decimal.Decimal `json:"used"`
	Remaining     decimal.Decimal `json:"remaining"`
}

// ToBalanceResponse converts a domain.LeaveBalance to its response DTO.
func ToBalanceResponse(b *domain.LeaveBalance) BalanceResponse {
	return BalanceResponse{
		LeaveTypeID:   b.LeaveTypeID,
		TotalAssigned: b.TotalAssigned,
		Used:          b.Used,
		Remaining:     b.Remaining,
	}
}

// ToBalanceResponses converts a slice of ledger rows.
func ToBalanceResponses(bs []domain.LeaveBalance) []BalanceResponse {
	responses := make([]BalanceResponse, len(bs))
	for i := range bs {
		responses[i] = ToBalanceResponse(&bs[i])
	}
	return responses
}
