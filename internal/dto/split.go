package dto

import (
	"github.com/shopspring/decimal"
)

// SplitShareInput is one caller-declared allocation: the caller has already
// decided the split strategy (equal, exact, percentage) and sends the
// resulting per-user amounts.
type SplitShareInput struct {
	UserID string          `json:"userID" binding:"required"`
	Amount decimal.Decimal `json:"amount"`
}

// SaveSplitRequest replaces the full split of an expense. TotalAmount must
// match the stored expense total; it is echoed by the caller so a stale
// client editing an outdated amount is rejected instead of silently
// producing shares that no longer sum to the expense.
type SaveSplitRequest struct {
	TotalAmount decimal.Decimal   `json:"totalAmount" binding:"required"`
	Shares      []SplitShareInput `json:"shares" binding:"required,min=1,dive"`
}
