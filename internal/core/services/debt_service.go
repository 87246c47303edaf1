package services

import (
	"context"
	"fmt"
	"time"

	"github.com/fairsplit/fairsplit/internal/apperrors"
	"github.com/fairsplit/fairsplit/internal/core/domain"
	portsrepo "github.com/fairsplit/fairsplit/internal/core/ports/repositories"
	portssvc "github.com/fairsplit/fairsplit/internal/core/ports/services"
)

// debtService exposes the debt ledger for personal reporting and explicit
// settlement toggles.
type debtService struct {
	debtRepo portsrepo.DebtRepositoryFacade
}

// NewDebtService creates a new DebtSvcFacade.
func NewDebtService(debtRepo portsrepo.DebtRepositoryFacade) portssvc.DebtSvcFacade {
	return &debtService{debtRepo: debtRepo}
}

var _ portssvc.DebtSvcFacade = (*debtService)(nil)

// ListDebtsForUser returns every debt where the user is debtor or creditor.
func (s *debtService) ListDebtsForUser(ctx context.Context, userID string) ([]domain.Debt, error) {
	debts, err := s.debtRepo.FindAllForUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list debts for user %s: %w", userID, err)
	}
	return debts, nil
}

// SettleDebt marks a single debt as SETTLED. Only the creditor may confirm
// they have been paid. Settling an already-settled debt is a no-op.
func (s *debtService) SettleDebt(ctx context.Context, debtID string, actorUserID string) (*domain.Debt, error) {
	debt, err := s.debtRepo.FindDebtByID(ctx, debtID)
	if err != nil {
		return nil, err
	}
	if debt.ToUserID != actorUserID {
		return nil, fmt.Errorf("%w: only the creditor can settle a debt", apperrors.ErrForbidden)
	}
	if debt.Status == domain.DebtSettled {
		return debt, nil
	}

	now := time.Now().UTC()
	if err := s.debtRepo.UpdateDebtStatus(ctx, debtID, domain.DebtSettled, actorUserID, now); err != nil {
		return nil, fmt.Errorf("failed to settle debt %s: %w", debtID, err)
	}
	debt.Status = domain.DebtSettled
	debt.LastUpdatedAt = now
	debt.LastUpdatedBy = actorUserID
	return debt, nil
}
