package models

import "github.com/shopspring/decimal"

// ShareStatus indicates whether a participant has paid their share.
type ShareStatus string

const (
	ShareUnpaid ShareStatus = "UNPAID"
	SharePaid   ShareStatus = "PAID"
)

// Share represents one row of an expense split.
// share_amount is nullable: rows written before amounts were persisted
// only carry share_percentage.
type Share struct {
	ShareID    string              `db:"share_id"`
	ExpenseID  string              `db:"expense_id"`
	UserID     string              `db:"user_id"`
	Amount     decimal.NullDecimal `db:"share_amount"`
	Percentage decimal.Decimal     `db:"share_percentage"`
	Status     ShareStatus         `db:"status"`
	AuditFields
}
