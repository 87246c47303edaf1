package repositories

import (
	"context"

	"github.com/fairsplit/fairsplit/internal/core/domain"
)

// BalanceCache is an optional read-through cache for group balance reports.
// It is a pure optimization: a miss or a cache failure always falls back to
// a full replay, so implementations may drop entries at any time.
type BalanceCache interface {
	// GetGroupBalances returns the cached balances and true on a hit.
	GetGroupBalances(ctx context.Context, groupID string) ([]domain.Balance, bool)

	// SetGroupBalances stores the balances for a group.
	SetGroupBalances(ctx context.Context, groupID string, balances []domain.Balance)

	// InvalidateGroup drops the cached balances of a group. Called after
	// any expense or split mutation in that group.
	InvalidateGroup(ctx context.Context, groupID string)
}
