package domain

import "github.com/shopspring/decimal"

// LeaveBalance is the entitlement ledger row for one (employee, leave type)
// pair. Remaining == TotalAssigned - Used holds after every mutation; Debit is
// the only path that reduces Remaining and runs exactly once per application,
// at approval time. Balances are never created for ADMIN employees.
type LeaveBalance struct {
	BalanceID     string          `json:"balanceID"` // Primary key (UUID)
	EmployeeID    string          `json:"employeeID"`
	LeaveTypeID   string          `json:"leaveTypeID"`
	TotalAssigned decimal.Decimal `json:"totalAssigned"`
	Used          decimal.Decimal `json:"used"`
	Remaining     decimal.Decimal `json:"remaining"`
	AuditFields
}
