package models

import "github.com/shopspring/decimal"

// Expense represents an expense row.
type Expense struct {
	ExpenseID   string          `db:"expense_id"`
	GroupID     string          `db:"group_id"`
	Description string          `db:"description"`
	Category    string          `db:"category"`
	Amount      decimal.Decimal `db:"amount"`
	PaidBy      string          `db:"paid_by"`
	IsPayment   bool            `db:"is_payment"`
	AuditFields
}
