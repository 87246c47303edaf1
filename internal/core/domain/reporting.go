package domain

import "github.com/shopspring/decimal"

// Balance is one member's net position within a group: totalPaid minus
// totalOwed across the group's full expense history. Negative means the
// member owes money, positive means they are owed. Across a closed group
// the balances sum to zero.
type Balance struct {
	UserID    string          `json:"userID"`
	UserName  string          `json:"userName"`
	NetAmount decimal.Decimal `json:"netAmount"`
}
