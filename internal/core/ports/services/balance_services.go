package services

import (
	"context"

	"github.com/fairsplit/fairsplit/internal/core/domain"
)

// BalanceSvcFacade exposes group balance aggregation.
type BalanceSvcFacade interface {
	// GetGroupBalances reports each member's net balance (paid minus owed)
	// for the group, recomputed from the full expense history.
	GetGroupBalances(ctx context.Context, groupID string, userID string) ([]domain.Balance, error)
}

// NotifierSvc is a fire-and-forget notification sink. Implementations must
// never propagate delivery failures to callers.
type NotifierSvc interface {
	// NotifyDebtCreated informs a user that a new debt has been recorded
	// against them.
	NotifyDebtCreated(ctx context.Context, debt domain.Debt, groupName string)

	// ListNotifications retrieves a user's notifications, newest first.
	ListNotifications(ctx context.Context, userID string, limit, offset int) ([]domain.Notification, error)

	// MarkNotificationRead marks one of the user's notifications as read.
	MarkNotificationRead(ctx context.Context, notificationID string, userID string) error
}
