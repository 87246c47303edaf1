package services

import (
	"fmt"

	"github.com/fairsplit/fairsplit/internal/apperrors"
	"github.com/fairsplit/fairsplit/internal/core/domain"
	"github.com/fairsplit/fairsplit/internal/dto"
	"github.com/shopspring/decimal"
)

// splitTolerance is the smallest currency unit. Declared share amounts may
// differ from the expense total by at most this much.
var splitTolerance = decimal.New(1, -2) // 0.01

var oneHundred = decimal.NewFromInt(100)

// ComputedSplit is the output of the share calculator: normalized shares
// plus the debt requests they imply. Shares carry amounts and percentages
// but no IDs or audit fields yet; the caller assigns those.
type ComputedSplit struct {
	Shares []domain.Share
	Debts  []domain.DebtRequest
}

// ComputeSplit validates and normalizes caller-declared allocations for an
// expense. The caller has already decided the split strategy; this only
// checks consistency and derives percentages.
//
// Each percentage is amount / total * 100 rounded half-up to two decimals.
// A zero total is a degenerate but legal case: every percentage is zero and
// no division happens. For every share whose user is not the payer a debt
// request share.user -> payer is emitted; zero-amount shares produce no
// debt, and the payer never owes themselves.
func ComputeSplit(total decimal.Decimal, payerID string, entries []dto.SplitShareInput) (*ComputedSplit, error) {
	if total.IsNegative() {
		return nil, fmt.Errorf("%w: expense total must not be negative, got %s", apperrors.ErrInvalidSplit, total)
	}
	if len(entries) == 0 {
		return nil, fmt.Errorf("%w: at least one share is required", apperrors.ErrInvalidSplit)
	}

	sum := decimal.Zero
	seen := make(map[string]struct{}, len(entries))
	for _, e := range entries {
		if e.UserID == "" {
			return nil, fmt.Errorf("%w: share is missing a user", apperrors.ErrInvalidSplit)
		}
		if _, dup := seen[e.UserID]; dup {
			return nil, fmt.Errorf("%w: user %s appears in more than one share", apperrors.ErrInvalidSplit, e.UserID)
		}
		seen[e.UserID] = struct{}{}
		if e.Amount.IsNegative() {
			return nil, fmt.Errorf("%w: share amount for user %s must not be negative", apperrors.ErrInvalidSplit, e.UserID)
		}
		sum = sum.Add(e.Amount)
	}

	if sum.Sub(total).Abs().GreaterThan(splitTolerance) {
		return nil, fmt.Errorf("%w: shares sum to %s but the expense total is %s", apperrors.ErrInvalidSplit, sum, total)
	}

	out := &ComputedSplit{Shares: make([]domain.Share, 0, len(entries))}
	for _, e := range entries {
		percentage := decimal.Zero
		if !total.IsZero() {
			percentage = e.Amount.Mul(oneHundred).DivRound(total, 2)
		}

		out.Shares = append(out.Shares, domain.Share{
			UserID:     e.UserID,
			Amount:     decimal.NullDecimal{Decimal: e.Amount, Valid: true},
			Percentage: percentage,
			Status:     domain.ShareUnpaid,
		})

		if e.UserID != payerID && e.Amount.IsPositive() {
			out.Debts = append(out.Debts, domain.DebtRequest{
				FromUserID: e.UserID,
				ToUserID:   payerID,
				Amount:     e.Amount,
			})
		}
	}

	return out, nil
}
