package dto

import (
	"github.com/fairsplit/fairsplit/internal/core/domain"
	"github.com/shopspring/decimal"
)

// UpdateShareStatusRequest toggles a share between PAID and UNPAID.
type UpdateShareStatusRequest struct {
	Status domain.ShareStatus `json:"status" binding:"required,oneof=PAID UNPAID"`
}

// ShareRecord is the public shape of a share.
type ShareRecord struct {
	ShareID    string             `json:"id"`
	ExpenseID  string             `json:"expenseID"`
	UserID     string             `json:"userID"`
	Percentage decimal.Decimal    `json:"percentage"`
	Amount     decimal.Decimal    `json:"amount"`
	Status     domain.ShareStatus `json:"status"`
}

// ToShareRecord converts a domain.Share to its response DTO. Legacy rows
// without a stored amount report zero; the balance report recomputes the
// real figure from the percentage.
func ToShareRecord(s *domain.Share) ShareRecord {
	amount := decimal.Zero
	if s.Amount.Valid {
		amount = s.Amount.Decimal
	}
	return ShareRecord{
		ShareID:    s.ShareID,
		ExpenseID:  s.ExpenseID,
		UserID:     s.UserID,
		Percentage: s.Percentage,
		Amount:     amount,
		Status:     s.Status,
	}
}

// ToShareRecords converts a slice of domain.Share to response DTOs.
func ToShareRecords(shares []domain.Share) []ShareRecord {
	out := make([]ShareRecord, len(shares))
	for i := range shares {
		out[i] = ToShareRecord(&shares[i])
	}
	return out
}
