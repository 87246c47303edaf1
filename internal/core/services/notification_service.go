package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/fairsplit/fairsplit/internal/core/domain"
	portsrepo "github.com/fairsplit/fairsplit/internal/core/ports/repositories"
	portssvc "github.com/fairsplit/fairsplit/internal/core/ports/services"
	"github.com/fairsplit/fairsplit/internal/middleware"
	"github.com/google/uuid"
)

// notificationService persists notifications for users. Delivery is
// fire-and-forget: a failed write is logged and dropped, never propagated.
type notificationService struct {
	notificationRepo portsrepo.NotificationRepositoryFacade
}

// NewNotificationService creates a new NotifierSvc.
func NewNotificationService(notificationRepo portsrepo.NotificationRepositoryFacade) portssvc.NotifierSvc {
	return &notificationService{notificationRepo: notificationRepo}
}

var _ portssvc.NotifierSvc = (*notificationService)(nil)

// NotifyDebtCreated informs the debtor that a new debt was recorded against
// them. Failure to notify never fails the operation that created the debt.
func (s *notificationService) NotifyDebtCreated(ctx context.Context, debt domain.Debt, groupName string) {
	message := fmt.Sprintf("You owe %s from a new expense", debt.Amount.StringFixed(2))
	if groupName != "" {
		message = fmt.Sprintf("%s in %s", message, groupName)
	}

	n := domain.Notification{
		NotificationID: uuid.NewString(),
		UserID:         debt.FromUserID,
		Title:          "New expense share",
		Message:        message,
		Type:           domain.NotifyExpenseAdded,
		RefID:          debt.ExpenseID,
		CreatedAt:      time.Now().UTC(),
	}

	if err := s.notificationRepo.SaveNotification(ctx, n); err != nil {
		middleware.GetLoggerFromCtx(ctx).Warn("Failed to store debt notification",
			slog.String("user_id", debt.FromUserID),
			slog.String("expense_id", debt.ExpenseID),
			slog.String("error", err.Error()),
		)
	}
}

// ListNotifications returns a user's notifications, newest first.
func (s *notificationService) ListNotifications(ctx context.Context, userID string, limit, offset int) ([]domain.Notification, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}
	return s.notificationRepo.ListForUser(ctx, userID, limit, offset)
}

// MarkNotificationRead marks one of the user's notifications as read.
func (s *notificationService) MarkNotificationRead(ctx context.Context, notificationID string, userID string) error {
	return s.notificationRepo.MarkRead(ctx, notificationID, userID)
}
