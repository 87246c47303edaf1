package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/fairsplit/fairsplit/internal/apperrors"
	"github.com/fairsplit/fairsplit/internal/core/domain"
	portsrepo "github.com/fairsplit/fairsplit/internal/core/ports/repositories"
	portssvc "github.com/fairsplit/fairsplit/internal/core/ports/services"
	"github.com/fairsplit/fairsplit/internal/dto"
	"github.com/fairsplit/fairsplit/internal/middleware"
	"github.com/google/uuid"
)

// expenseService orchestrates the expense lifecycle: CRUD, the split-save
// use case that seeds the debt ledger, and share status toggles.
type expenseService struct {
	expenseRepo portsrepo.ExpenseRepositoryWithTx
	shareRepo   portsrepo.ShareRepositoryWithTx
	userRepo    portsrepo.UserReader
	groupRepo   portsrepo.GroupReader
	groupSvc    portssvc.GroupAuthorizerSvc
	settlement  portssvc.SettlementSvc
	notifier    portssvc.NotifierSvc
	cache       portsrepo.BalanceCache // optional, may be nil
}

// NewExpenseService creates a new ExpenseSvcFacade.
func NewExpenseService(
	expenseRepo portsrepo.ExpenseRepositoryWithTx,
	shareRepo portsrepo.ShareRepositoryWithTx,
	userRepo portsrepo.UserReader,
	groupRepo portsrepo.GroupReader,
	groupSvc portssvc.GroupAuthorizerSvc,
	settlement portssvc.SettlementSvc,
	notifier portssvc.NotifierSvc,
	cache portsrepo.BalanceCache,
) portssvc.ExpenseSvcFacade {
	return &expenseService{
		expenseRepo: expenseRepo,
		shareRepo:   shareRepo,
		userRepo:    userRepo,
		groupRepo:   groupRepo,
		groupSvc:    groupSvc,
		settlement:  settlement,
		notifier:    notifier,
		cache:       cache,
	}
}

var _ portssvc.ExpenseSvcFacade = (*expenseService)(nil)

// CreateExpense records a new expense in a group. Shares and debts are
// created separately through SaveSplit.
func (s *expenseService) CreateExpense(ctx context.Context, groupID string, req dto.CreateExpenseRequest, creatorUserID string) (*domain.Expense, error) {
	if err := s.groupSvc.AuthorizeMember(ctx, groupID, creatorUserID); err != nil {
		return nil, err
	}
	if !req.Amount.IsPositive() {
		return nil, fmt.Errorf("%w: expense amount must be positive, got %s", apperrors.ErrValidation, req.Amount)
	}
	if err := s.groupSvc.AuthorizeMember(ctx, groupID, req.PaidBy); err != nil {
		return nil, fmt.Errorf("payer must be a group member: %w", err)
	}

	now := time.Now().UTC()
	expense := domain.Expense{
		ExpenseID:   uuid.NewString(),
		GroupID:     groupID,
		Description: req.Description,
		Category:    req.Category,
		Amount:      req.Amount,
		PaidBy:      req.PaidBy,
		IsPayment:   req.IsPayment,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if err := s.expenseRepo.SaveExpense(ctx, expense); err != nil {
		return nil, fmt.Errorf("failed to save expense: %w", err)
	}
	s.invalidateBalances(ctx, groupID)
	return &expense, nil
}

// GetExpenseByID retrieves an expense, provided the caller belongs to its
// group.
func (s *expenseService) GetExpenseByID(ctx context.Context, expenseID string, userID string) (*domain.Expense, error) {
	expense, err := s.expenseRepo.FindExpenseByID(ctx, expenseID)
	if err != nil {
		return nil, err
	}
	if err := s.groupSvc.AuthorizeMember(ctx, expense.GroupID, userID); err != nil {
		return nil, err
	}
	return expense, nil
}

// ListGroupExpenses retrieves all expenses of a group, oldest first.
func (s *expenseService) ListGroupExpenses(ctx context.Context, groupID string, userID string) ([]domain.Expense, error) {
	if err := s.groupSvc.AuthorizeMember(ctx, groupID, userID); err != nil {
		return nil, err
	}
	return s.expenseRepo.ListExpensesByGroup(ctx, groupID)
}

// UpdateExpense applies field changes. Changing the amount invalidates the
// stored split, so it is discarded; the caller is expected to save a fresh
// one, which recreates shares and debts from scratch.
func (s *expenseService) UpdateExpense(ctx context.Context, expenseID string, req dto.UpdateExpenseRequest, updaterUserID string) (*domain.Expense, error) {
	expense, err := s.expenseRepo.FindExpenseByID(ctx, expenseID)
	if err != nil {
		return nil, err
	}
	if err := s.groupSvc.AuthorizeMember(ctx, expense.GroupID, updaterUserID); err != nil {
		return nil, err
	}

	amountChanged := false
	if req.Description != nil {
		expense.Description = *req.Description
	}
	if req.Category != nil {
		expense.Category = *req.Category
	}
	if req.IsPayment != nil {
		expense.IsPayment = *req.IsPayment
	}
	if req.Amount != nil && !req.Amount.Equal(expense.Amount) {
		if !req.Amount.IsPositive() {
			return nil, fmt.Errorf("%w: expense amount must be positive, got %s", apperrors.ErrValidation, *req.Amount)
		}
		expense.Amount = *req.Amount
		amountChanged = true
	}
	expense.LastUpdatedAt = time.Now().UTC()
	expense.LastUpdatedBy = updaterUserID

	if err := s.expenseRepo.UpdateExpense(ctx, *expense); err != nil {
		return nil, fmt.Errorf("failed to update expense %s: %w", expenseID, err)
	}

	if amountChanged {
		if err := s.shareRepo.ReplaceSplit(ctx, expenseID, nil, nil); err != nil {
			return nil, fmt.Errorf("failed to discard stale split for expense %s: %w", expenseID, err)
		}
		middleware.GetLoggerFromCtx(ctx).Info("Discarded stale split after amount change",
			slog.String("expense_id", expenseID))
	}
	s.invalidateBalances(ctx, expense.GroupID)
	return expense, nil
}

// DeleteExpense removes the expense along with all of its shares and debts
// in one transaction, leaving no orphaned ledger rows.
func (s *expenseService) DeleteExpense(ctx context.Context, expenseID string, deleterUserID string) error {
	expense, err := s.expenseRepo.FindExpenseByID(ctx, expenseID)
	if err != nil {
		return err
	}
	if err := s.groupSvc.AuthorizeMember(ctx, expense.GroupID, deleterUserID); err != nil {
		return err
	}

	if err := s.expenseRepo.DeleteExpenseWithSplit(ctx, expenseID); err != nil {
		return fmt.Errorf("failed to delete expense %s: %w", expenseID, err)
	}
	s.invalidateBalances(ctx, expense.GroupID)
	return nil
}

// SaveSplit replaces the full split of an expense. The old shares and debts
// are discarded and the new ones inserted in a single transaction, so a
// half-applied split can never be observed. Debtors are then notified and,
// for payment expenses, outstanding debts are netted best-effort.
func (s *expenseService) SaveSplit(ctx context.Context, expenseID string, req dto.SaveSplitRequest, actorUserID string) ([]domain.Share, error) {
	logger := middleware.GetLoggerFromCtx(ctx).With(slog.String("expense_id", expenseID))

	expense, err := s.expenseRepo.FindExpenseByID(ctx, expenseID)
	if err != nil {
		return nil, err
	}
	if err := s.groupSvc.AuthorizeMember(ctx, expense.GroupID, actorUserID); err != nil {
		return nil, err
	}
	if !req.TotalAmount.Equal(expense.Amount) {
		return nil, fmt.Errorf("%w: split total %s does not match expense total %s",
			apperrors.ErrValidation, req.TotalAmount, expense.Amount)
	}

	// Every participant must resolve before anything is written.
	participantIDs := make([]string, len(req.Shares))
	for i, in := range req.Shares {
		participantIDs[i] = in.UserID
	}
	users, err := s.userRepo.FindUsersByIDs(ctx, participantIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve split participants: %w", err)
	}
	for _, id := range participantIDs {
		if _, ok := users[id]; !ok {
			return nil, fmt.Errorf("%w: user %s", apperrors.ErrNotFound, id)
		}
	}

	computed, err := ComputeSplit(expense.Amount, expense.PaidBy, req.Shares)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	audit := domain.AuditFields{
		CreatedAt:     now,
		CreatedBy:     actorUserID,
		LastUpdatedAt: now,
		LastUpdatedBy: actorUserID,
	}

	shares := computed.Shares
	for i := range shares {
		shares[i].ShareID = uuid.NewString()
		shares[i].ExpenseID = expenseID
		shares[i].AuditFields = audit
	}

	debts := make([]domain.Debt, len(computed.Debts))
	for i, dr := range computed.Debts {
		debts[i] = domain.Debt{
			DebtID:      uuid.NewString(),
			ExpenseID:   expenseID,
			FromUserID:  dr.FromUserID,
			ToUserID:    dr.ToUserID,
			Amount:      dr.Amount,
			Status:      domain.DebtUnsettled,
			AuditFields: audit,
		}
	}

	if err := s.shareRepo.ReplaceSplit(ctx, expenseID, shares, debts); err != nil {
		return nil, fmt.Errorf("failed to replace split for expense %s: %w", expenseID, err)
	}
	logger.Info("Split saved",
		slog.Int("shares", len(shares)),
		slog.Int("debts", len(debts)),
	)

	groupName := ""
	if group, gerr := s.groupRepo.FindGroupByID(ctx, expense.GroupID); gerr == nil {
		groupName = group.Name
	}
	for _, d := range debts {
		s.notifier.NotifyDebtCreated(ctx, d, groupName)
	}

	// Payment netting runs after the split commit and must never undo it.
	expense.LastUpdatedBy = actorUserID
	s.settlement.ApplyPaymentNetting(ctx, *expense, shares)

	s.invalidateBalances(ctx, expense.GroupID)
	return shares, nil
}

// GetSharesByExpense retrieves the shares of one expense.
func (s *expenseService) GetSharesByExpense(ctx context.Context, expenseID string, userID string) ([]domain.Share, error) {
	expense, err := s.expenseRepo.FindExpenseByID(ctx, expenseID)
	if err != nil {
		return nil, err
	}
	if err := s.groupSvc.AuthorizeMember(ctx, expense.GroupID, userID); err != nil {
		return nil, err
	}
	return s.shareRepo.FindSharesByExpense(ctx, expenseID)
}

// GetSharesByUser retrieves all shares attributed to a user.
func (s *expenseService) GetSharesByUser(ctx context.Context, userID string) ([]domain.Share, error) {
	return s.shareRepo.FindSharesByUser(ctx, userID)
}

// UpdateShareStatus toggles a share PAID/UNPAID. The repository flips the
// matching debts of (expense, user) in the same transaction, keeping share
// and debt status logically mirrored.
func (s *expenseService) UpdateShareStatus(ctx context.Context, shareID string, status domain.ShareStatus, actorUserID string) (*domain.Share, error) {
	share, err := s.shareRepo.FindShareByID(ctx, shareID)
	if err != nil {
		return nil, err
	}
	expense, err := s.expenseRepo.FindExpenseByID(ctx, share.ExpenseID)
	if err != nil {
		return nil, err
	}
	if err := s.groupSvc.AuthorizeMember(ctx, expense.GroupID, actorUserID); err != nil {
		return nil, err
	}

	updated, err := s.shareRepo.UpdateShareStatus(ctx, shareID, status, actorUserID)
	if err != nil {
		return nil, fmt.Errorf("failed to update share %s status: %w", shareID, err)
	}
	s.invalidateBalances(ctx, expense.GroupID)
	return updated, nil
}

func (s *expenseService) invalidateBalances(ctx context.Context, groupID string) {
	if s.cache != nil {
		s.cache.InvalidateGroup(ctx, groupID)
	}
}
