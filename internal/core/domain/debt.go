package domain

import "github.com/shopspring/decimal"

// DebtStatus indicates whether a debt is still outstanding.
type DebtStatus string

const (
	DebtUnsettled DebtStatus = "UNSETTLED"
	DebtSettled   DebtStatus = "SETTLED"
)

// Debt is a directional claim that FromUserID owes ToUserID a specific
// amount, originating from exactly one expense. Amount is always positive
// and FromUserID never equals ToUserID; zero debts are simply not created.
//
// Status moves UNSETTLED -> SETTLED. The reverse transition only happens
// through an explicit recomputation (a share status toggle or a full split
// replacement), never as a side effect of unrelated operations.
type Debt struct {
	DebtID     string          `json:"debtID"` // Primary Key (UUID)
	ExpenseID  string          `json:"expenseID"`
	FromUserID string          `json:"fromUserID"` // debtor
	ToUserID   string          `json:"toUserID"`   // creditor
	Amount     decimal.Decimal `json:"amount"`
	Status     DebtStatus      `json:"status"`
	AuditFields
}

// DebtRequest is the instruction to create a debt, emitted by the split
// calculator before IDs and audit fields are assigned.
type DebtRequest struct {
	FromUserID string
	ToUserID   string
	Amount     decimal.Decimal
}
