package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/fairsplit/fairsplit/internal/apperrors"
	"github.com/fairsplit/fairsplit/internal/core/domain"
	portsrepo "github.com/fairsplit/fairsplit/internal/core/ports/repositories"
	portssvc "github.com/fairsplit/fairsplit/internal/core/ports/services"
	"github.com/fairsplit/fairsplit/internal/middleware"
	"github.com/shopspring/decimal"
)

// settleKeywords drive the legacy payment-classification fallback. Keyword
// matching is easily defeated and language specific, so it is off unless
// explicitly enabled; the IsPayment flag on the expense is the real signal.
var settleKeywords = []string{"payment", "settle", "repay", "paid back", "pay back"}

// settlementService nets payment expenses against outstanding debts.
type settlementService struct {
	debtRepo        portsrepo.DebtRepositoryFacade
	keywordFallback bool
}

// NewSettlementService creates a new SettlementSvc.
func NewSettlementService(debtRepo portsrepo.DebtRepositoryFacade, keywordFallback bool) portssvc.SettlementSvc {
	return &settlementService{
		debtRepo:        debtRepo,
		keywordFallback: keywordFallback,
	}
}

var _ portssvc.SettlementSvc = (*settlementService)(nil)

// IsPayment reports whether the expense is a repayment rather than a shared
// cost. The explicit flag always wins; the keyword heuristic only runs when
// enabled in config.
func (s *settlementService) IsPayment(expense domain.Expense) bool {
	if expense.IsPayment {
		return true
	}
	if !s.keywordFallback {
		return false
	}
	text := strings.ToLower(expense.Description + " " + expense.Category)
	for _, kw := range settleKeywords {
		if strings.Contains(text, kw) {
			return true
		}
	}
	return false
}

// ApplyPaymentNetting marks previously outstanding debts between the payer
// and each payee as SETTLED when the payment matches them exactly, and
// collapses the reverse debts the split calculator just created for the
// payment expense.
//
// The whole procedure is a best-effort side step of the split save: any
// error, mismatch, or panic inside it is logged and swallowed. The share
// and debt rows written before it stay valid either way.
func (s *settlementService) ApplyPaymentNetting(ctx context.Context, expense domain.Expense, shares []domain.Share) {
	logger := middleware.GetLoggerFromCtx(ctx).With(slog.String("expense_id", expense.ExpenseID))

	defer func() {
		if r := recover(); r != nil {
			logger.Error("Settlement matcher panicked; payment recorded without netting", slog.Any("panic", r))
		}
	}()

	if !s.IsPayment(expense) {
		return
	}

	now := time.Now().UTC()
	for _, share := range shares {
		if share.UserID == expense.PaidBy {
			continue
		}
		if !share.Amount.Valid || !share.Amount.Decimal.IsPositive() {
			continue
		}

		err := s.netAgainstPayee(ctx, expense, share.UserID, share.Amount.Decimal, now)
		switch {
		case err == nil:
			logger.Info("Payment netted against outstanding debts",
				slog.String("payee_id", share.UserID),
				slog.String("amount", share.Amount.Decimal.String()),
			)
		case errors.Is(err, apperrors.ErrSettlementMismatch):
			// Silent from the caller's perspective: the payment stays
			// recorded as ordinary share/debt data.
			logger.Info("Settlement skipped", slog.String("payee_id", share.UserID), slog.String("reason", err.Error()))
		default:
			logger.Warn("Settlement failed; payment recorded without netting",
				slog.String("payee_id", share.UserID),
				slog.String("error", err.Error()),
			)
		}
	}
}

// netAgainstPayee walks the payer's unsettled debts to one payee oldest
// first, consuming whole debts until the accumulated total reaches the
// payment amount. The walk commits only on an exact match; a partial match
// leaves every debt untouched.
func (s *settlementService) netAgainstPayee(ctx context.Context, expense domain.Expense, payeeID string, amount decimal.Decimal, now time.Time) error {
	oldDebts, err := s.debtRepo.FindUnsettledBetween(ctx, expense.PaidBy, payeeID, expense.GroupID)
	if err != nil {
		return fmt.Errorf("failed to load unsettled debts: %w", err)
	}

	// The reverse debts this payment expense just created: payee owes payer
	// for having received the payment share. They must be neutralized too,
	// since a payment is not new debt.
	newDebts, err := s.debtRepo.FindByExpenseAndDebtor(ctx, expense.ExpenseID, payeeID)
	if err != nil {
		return fmt.Errorf("failed to load reverse debts: %w", err)
	}

	settledTotal := decimal.Zero
	debtIDs := make([]string, 0, len(oldDebts)+len(newDebts))
	for _, d := range oldDebts {
		if settledTotal.GreaterThanOrEqual(amount) {
			break
		}
		settledTotal = settledTotal.Add(d.Amount)
		debtIDs = append(debtIDs, d.DebtID)
	}

	if !settledTotal.Equal(amount) {
		return fmt.Errorf("%w: oldest debts sum to %s, payment is %s", apperrors.ErrSettlementMismatch, settledTotal, amount)
	}

	for _, d := range newDebts {
		debtIDs = append(debtIDs, d.DebtID)
	}

	if err := s.debtRepo.MarkDebtsSettled(ctx, debtIDs, expense.LastUpdatedBy, now); err != nil {
		return fmt.Errorf("failed to mark debts settled: %w", err)
	}
	return nil
}
