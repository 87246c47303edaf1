package models

import "github.com/shopspring/decimal"

// DebtStatus indicates whether a debt is still outstanding.
type DebtStatus string

const (
	DebtUnsettled DebtStatus = "UNSETTLED"
	DebtSettled   DebtStatus = "SETTLED"
)

// Debt represents a debt row.
type Debt struct {
	DebtID     string          `db:"debt_id"`
	ExpenseID  string          `db:"expense_id"`
	FromUserID string          `db:"from_user_id"`
	ToUserID   string          `db:"to_user_id"`
	Amount     decimal.Decimal `db:"amount"`
	Status     DebtStatus      `db:"status"`
	AuditFields
}
