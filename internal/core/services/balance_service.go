package services

import (
	"context"
	"fmt"
	"log/slog"
	"sort"

	"github.com/fairsplit/fairsplit/internal/core/domain"
	portsrepo "github.com/fairsplit/fairsplit/internal/core/ports/repositories"
	portssvc "github.com/fairsplit/fairsplit/internal/core/ports/services"
	"github.com/fairsplit/fairsplit/internal/middleware"
	"github.com/shopspring/decimal"
)

// balanceService computes per-member net balances for a group.
type balanceService struct {
	expenseRepo portsrepo.ExpenseReader
	shareRepo   portsrepo.ShareReader
	userRepo    portsrepo.UserReader
	groupSvc    portssvc.GroupAuthorizerSvc
	cache       portsrepo.BalanceCache // optional, may be nil
}

// NewBalanceService creates a new BalanceSvcFacade.
func NewBalanceService(
	expenseRepo portsrepo.ExpenseReader,
	shareRepo portsrepo.ShareReader,
	userRepo portsrepo.UserReader,
	groupSvc portssvc.GroupAuthorizerSvc,
	cache portsrepo.BalanceCache,
) portssvc.BalanceSvcFacade {
	return &balanceService{
		expenseRepo: expenseRepo,
		shareRepo:   shareRepo,
		userRepo:    userRepo,
		groupSvc:    groupSvc,
		cache:       cache,
	}
}

var _ portssvc.BalanceSvcFacade = (*balanceService)(nil)

// GetGroupBalances replays the group's full expense and share history and
// reports netBalance = totalPaid - totalOwed for every member who appears
// in at least one share. There is no incremental state: each call
// recomputes from scratch, which also makes concurrent edits to different
// expenses safe. Payment expenses are included identically to cost
// expenses; only their presentation differs, not the arithmetic.
func (s *balanceService) GetGroupBalances(ctx context.Context, groupID string, userID string) ([]domain.Balance, error) {
	if err := s.groupSvc.AuthorizeMember(ctx, groupID, userID); err != nil {
		return nil, err
	}

	if s.cache != nil {
		if balances, ok := s.cache.GetGroupBalances(ctx, groupID); ok {
			return balances, nil
		}
	}

	expenses, err := s.expenseRepo.ListExpensesByGroup(ctx, groupID)
	if err != nil {
		return nil, fmt.Errorf("failed to list expenses for group %s: %w", groupID, err)
	}
	shares, err := s.shareRepo.ListSharesByGroup(ctx, groupID)
	if err != nil {
		return nil, fmt.Errorf("failed to list shares for group %s: %w", groupID, err)
	}

	totals := make(map[string]decimal.Decimal, len(expenses)) // expenseID -> total
	paid := make(map[string]decimal.Decimal)
	for _, e := range expenses {
		totals[e.ExpenseID] = e.Amount
		paid[e.PaidBy] = paid[e.PaidBy].Add(e.Amount)
	}

	owed := make(map[string]decimal.Decimal)
	memberIDs := make([]string, 0)
	for _, sh := range shares {
		if _, known := owed[sh.UserID]; !known {
			memberIDs = append(memberIDs, sh.UserID)
		}
		owed[sh.UserID] = owed[sh.UserID].Add(shareAmount(sh, totals[sh.ExpenseID]))
	}

	users, err := s.userRepo.FindUsersByIDs(ctx, memberIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve member names for group %s: %w", groupID, err)
	}

	balances := make([]domain.Balance, 0, len(memberIDs))
	for _, id := range memberIDs {
		name := "Unknown User"
		if u, ok := users[id]; ok {
			name = u.Name
		}
		balances = append(balances, domain.Balance{
			UserID:    id,
			UserName:  name,
			NetAmount: paid[id].Sub(owed[id]),
		})
	}
	sort.Slice(balances, func(i, j int) bool { return balances[i].UserID < balances[j].UserID })

	if s.cache != nil {
		s.cache.SetGroupBalances(ctx, groupID, balances)
	}
	middleware.GetLoggerFromCtx(ctx).Debug("Computed group balances",
		slog.String("group_id", groupID),
		slog.Int("members", len(balances)),
	)
	return balances, nil
}

// shareAmount returns the stored share amount, falling back to
// total * percentage / 100 (half-up, 2dp) for legacy rows that only carry
// a percentage.
func shareAmount(sh domain.Share, expenseTotal decimal.Decimal) decimal.Decimal {
	if sh.Amount.Valid {
		return sh.Amount.Decimal
	}
	return expenseTotal.Mul(sh.Percentage).Div(oneHundred).Round(2)
}
