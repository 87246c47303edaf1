package services

import (
	"context"

	"github.com/fairsplit/fairsplit/internal/core/domain"
)

// DebtSvcFacade exposes debt ledger reads and explicit settlement toggles.
type DebtSvcFacade interface {
	// ListDebtsForUser retrieves every debt where the user is debtor or
	// creditor, for personal reporting.
	ListDebtsForUser(ctx context.Context, userID string) ([]domain.Debt, error)

	// SettleDebt marks a single debt as settled. Only the creditor may
	// confirm they have been paid.
	SettleDebt(ctx context.Context, debtID string, actorUserID string) (*domain.Debt, error)
}

// SettlementSvc nets a payment expense against outstanding debts.
// It is an internal collaborator of the expense service.
type SettlementSvc interface {
	// ApplyPaymentNetting runs FIFO exact-match netting for a payment
	// expense against the shares just saved for it. It is best-effort:
	// every failure is logged and swallowed so the enclosing split save
	// is never aborted. Re-running it for an already-netted payment is a
	// no-op.
	ApplyPaymentNetting(ctx context.Context, expense domain.Expense, shares []domain.Share)

	// IsPayment reports whether the expense should be treated as a
	// repayment rather than a shared cost.
	IsPayment(expense domain.Expense) bool
}
