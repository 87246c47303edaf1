package dto

import (
	"github.com/fairsplit/fairsplit/internal/core/domain"
	"github.com/shopspring/decimal"
)

// BalanceRecord is one member's net position within a group.
// Negative means the member owes money, positive means they are owed.
type BalanceRecord struct {
	UserID    string          `json:"userId"`
	UserName  string          `json:"userName"`
	NetAmount decimal.Decimal `json:"netAmount"`
}

// ToBalanceRecords converts domain balances to response DTOs.
func ToBalanceRecords(balances []domain.Balance) []BalanceRecord {
	out := make([]BalanceRecord, len(balances))
	for i, b := range balances {
		out[i] = BalanceRecord{UserID: b.UserID, UserName: b.UserName, NetAmount: b.NetAmount}
	}
	return out
}
