package repositories

import (
	"context"

	"github.com/fairsplit/fairsplit/internal/core/domain"
)

// ExpenseReader defines read operations for expense data
type ExpenseReader interface {
	// FindExpenseByID retrieves an expense by its unique identifier.
	FindExpenseByID(ctx context.Context, expenseID string) (*domain.Expense, error)

	// ListExpensesByGroup retrieves all expenses of a group, oldest first.
	ListExpensesByGroup(ctx context.Context, groupID string) ([]domain.Expense, error)
}

// ExpenseWriter defines write operations for expense data
type ExpenseWriter interface {
	// SaveExpense inserts a new expense row.
	SaveExpense(ctx context.Context, expense domain.Expense) error

	// UpdateExpense updates the mutable fields of an expense.
	UpdateExpense(ctx context.Context, expense domain.Expense) error

	// DeleteExpenseWithSplit removes the expense together with all of its
	// shares and debts in a single transaction. The two-step contract is
	// explicit here: no reliance on storage-level cascades.
	DeleteExpenseWithSplit(ctx context.Context, expenseID string) error
}

// ExpenseRepositoryFacade combines all expense repository interfaces.
type ExpenseRepositoryFacade interface {
	ExpenseReader
	ExpenseWriter
}

// ExpenseRepositoryWithTx extends ExpenseRepositoryFacade with transaction capabilities
type ExpenseRepositoryWithTx interface {
	ExpenseRepositoryFacade
	TransactionManager
}
