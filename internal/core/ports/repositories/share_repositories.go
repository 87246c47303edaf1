package repositories

import (
	"context"

	"github.com/fairsplit/fairsplit/internal/core/domain"
)

// ShareReader defines read operations for share data
type ShareReader interface {
	// FindShareByID retrieves a share by its unique identifier.
	FindShareByID(ctx context.Context, shareID string) (*domain.Share, error)

	// FindSharesByExpense retrieves all shares of one expense.
	FindSharesByExpense(ctx context.Context, expenseID string) ([]domain.Share, error)

	// FindSharesByUser retrieves all shares attributed to a user.
	FindSharesByUser(ctx context.Context, userID string) ([]domain.Share, error)

	// ListSharesByGroup retrieves every share of every expense in a group,
	// for balance aggregation.
	ListSharesByGroup(ctx context.Context, groupID string) ([]domain.Share, error)
}

// ShareWriter defines write operations for share data
type ShareWriter interface {
	// ReplaceSplit atomically discards all existing shares and debts of the
	// expense and inserts the given replacements. Recomputation of a split
	// is always this full replacement, never an incremental update.
	ReplaceSplit(ctx context.Context, expenseID string, shares []domain.Share, debts []domain.Debt) error

	// UpdateShareStatus sets a share PAID or UNPAID and flips the matching
	// debts of (expense, user) in the same transaction so the two stay in sync.
	UpdateShareStatus(ctx context.Context, shareID string, status domain.ShareStatus, updatedBy string) (*domain.Share, error)
}

// ShareRepositoryFacade combines all share repository interfaces.
type ShareRepositoryFacade interface {
	ShareReader
	ShareWriter
}

// ShareRepositoryWithTx extends ShareRepositoryFacade with transaction capabilities
type ShareRepositoryWithTx interface {
	ShareRepositoryFacade
	TransactionManager
}
