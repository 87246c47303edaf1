package repositories

import (
	"context"
	"time"

	"github.com/fairsplit/fairsplit/internal/core/domain"
)

// DebtReader defines read operations for the debt ledger
type DebtReader interface {
	// FindDebtByID retrieves a debt by its unique identifier.
	FindDebtByID(ctx context.Context, debtID string) (*domain.Debt, error)

	// FindUnsettledBetween retrieves the unsettled debts owed by fromUserID
	// to toUserID within a group, ordered by the creation time of the
	// originating expense, ascending. The oldest-first order is load-bearing:
	// FIFO settlement consumes the head of this list.
	FindUnsettledBetween(ctx context.Context, fromUserID, toUserID, groupID string) ([]domain.Debt, error)

	// FindByExpenseAndDebtor retrieves the debts a user owes on one expense
	// (normally a single row).
	FindByExpenseAndDebtor(ctx context.Context, expenseID, userID string) ([]domain.Debt, error)

	// FindAllForUser retrieves every debt where the user is debtor or creditor.
	FindAllForUser(ctx context.Context, userID string) ([]domain.Debt, error)
}

// DebtWriter defines write operations for the debt ledger
type DebtWriter interface {
	// CreateDebts appends new debt rows.
	CreateDebts(ctx context.Context, debts []domain.Debt) error

	// DeleteDebtsForExpense removes all debts tied to an expense. Callers
	// invoke this before recomputing a split and when deleting an expense.
	DeleteDebtsForExpense(ctx context.Context, expenseID string) error

	// MarkDebtsSettled flips the given debts to SETTLED in one statement.
	// Already-settled rows are untouched, which keeps the operation idempotent.
	MarkDebtsSettled(ctx context.Context, debtIDs []string, updatedBy string, updatedAt time.Time) error

	// UpdateDebtStatus sets a single debt's status explicitly.
	UpdateDebtStatus(ctx context.Context, debtID string, status domain.DebtStatus, updatedBy string, updatedAt time.Time) error
}

// DebtRepositoryFacade combines all debt repository interfaces.
type DebtRepositoryFacade interface {
	DebtReader
	DebtWriter
}
