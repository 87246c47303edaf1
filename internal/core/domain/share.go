package domain

import "github.com/shopspring/decimal"

// ShareStatus indicates whether a participant has paid their share.
type ShareStatus string

const (
	ShareUnpaid ShareStatus = "UNPAID"
	SharePaid   ShareStatus = "PAID"
)

// Share is one user's allocated portion of an expense's total.
//
// Amount uses NullDecimal because rows written before share amounts were
// stored only carry a percentage; readers fall back to
// amount = expense.total * percentage / 100 for those.
type Share struct {
	ShareID    string              `json:"shareID"` // Primary Key (UUID)
	ExpenseID  string              `json:"expenseID"`
	UserID     string              `json:"userID"`
	Amount     decimal.NullDecimal `json:"amount"`
	Percentage decimal.Decimal     `json:"percentage"` // amount / total * 100, 2dp half-up
	Status     ShareStatus         `json:"status"`
	AuditFields
}
