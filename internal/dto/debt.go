package dto

import (
	"github.com/fairsplit/fairsplit/internal/core/domain"
	"github.com/shopspring/decimal"
)

// DebtRecord is the public shape of a debt.
type DebtRecord struct {
	DebtID     string            `json:"id"`
	ExpenseID  string            `json:"expenseID"`
	FromUserID string            `json:"fromUserID"`
	ToUserID   string            `json:"toUserID"`
	Amount     decimal.Decimal   `json:"amount"`
	Status     domain.DebtStatus `json:"status"`
}

// ToDebtRecord converts a domain.Debt to its response DTO.
func ToDebtRecord(d *domain.Debt) DebtRecord {
	return DebtRecord{
		DebtID:     d.DebtID,
		ExpenseID:  d.ExpenseID,
		FromUserID: d.FromUserID,
		ToUserID:   d.ToUserID,
		Amount:     d.Amount,
		Status:     d.Status,
	}
}

// ToDebtRecords converts a slice of domain.Debt to response DTOs.
func ToDebtRecords(debts []domain.Debt) []DebtRecord {
	out := make([]DebtRecord, len(debts))
	for i := range debts {
		out[i] = ToDebtRecord(&debts[i])
	}
	return out
}
