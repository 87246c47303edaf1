package services

import (
	"context"

	"github.com/fairsplit/fairsplit/internal/core/domain"
	"github.com/fairsplit/fairsplit/internal/dto"
)

// ExpenseSvcFacade exposes expense lifecycle operations, including the
// split-save use case that drives the debt ledger.
type ExpenseSvcFacade interface {
	// CreateExpense records a new expense in a group. Shares and debts are
	// created separately by SaveSplit.
	CreateExpense(ctx context.Context, groupID string, req dto.CreateExpenseRequest, creatorUserID string) (*domain.Expense, error)

	// GetExpenseByID retrieves an expense.
	GetExpenseByID(ctx context.Context, expenseID string, userID string) (*domain.Expense, error)

	// ListGroupExpenses retrieves all expenses of a group, oldest first.
	ListGroupExpenses(ctx context.Context, groupID string, userID string) ([]domain.Expense, error)

	// UpdateExpense applies field changes. Changing the amount discards the
	// existing split; the caller is expected to save a fresh one.
	UpdateExpense(ctx context.Context, expenseID string, req dto.UpdateExpenseRequest, updaterUserID string) (*domain.Expense, error)

	// DeleteExpense removes the expense together with all of its shares and
	// debts.
	DeleteExpense(ctx context.Context, expenseID string, deleterUserID string) error

	// SaveSplit replaces the expense's full split: validates and normalizes
	// the declared allocations, rewrites shares and debts atomically,
	// notifies debtors, and runs payment netting for payment expenses.
	SaveSplit(ctx context.Context, expenseID string, req dto.SaveSplitRequest, actorUserID string) ([]domain.Share, error)

	// GetSharesByExpense retrieves the shares of one expense.
	GetSharesByExpense(ctx context.Context, expenseID string, userID string) ([]domain.Share, error)

	// GetSharesByUser retrieves all shares attributed to a user.
	GetSharesByUser(ctx context.Context, userID string) ([]domain.Share, error)

	// UpdateShareStatus toggles a share PAID/UNPAID, keeping the matching
	// debt status in sync.
	UpdateShareStatus(ctx context.Context, shareID string, status domain.ShareStatus, actorUserID string) (*domain.Share, error)
}
