package domain

import "github.com/shopspring/decimal"

// Expense is a single spend within a group, paid by one user and divided
// among participants via Shares.
//
// IsPayment marks the expense as a repayment between two members rather
// than a shared cost. Payments still move money from payer to payee and
// are included in balance aggregation identically to cost expenses; the
// flag only drives debt netting and presentation.
type Expense struct {
	ExpenseID   string          `json:"expenseID"` // Primary Key (UUID)
	GroupID     string          `json:"groupID"`
	Description string          `json:"description"`
	Category    string          `json:"category,omitempty"`
	Amount      decimal.Decimal `json:"amount"` // Total amount, always positive
	PaidBy      string          `json:"paidBy"` // UserID of the payer
	IsPayment   bool            `json:"isPayment"`
	AuditFields
}
