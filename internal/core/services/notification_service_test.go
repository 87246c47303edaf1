package services_test

import (
	"context"
	"testing"

	"github.com/fairsplit/fairsplit/internal/core/domain"
	"github.com/fairsplit/fairsplit/internal/core/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestNotifyDebtCreated(t *testing.T) {
	ctx := context.Background()
	mockRepo := new(MockNotificationRepository)
	svc := services.NewNotificationService(mockRepo)
	debt := domain.Debt{
		DebtID:     "d1",
		ExpenseID:  "e1",
		FromUserID: "bob",
		ToUserID:   "alice",
		Amount:     dec("120"),
	}

	mockRepo.On("SaveNotification", ctx, mock.MatchedBy(func(n domain.Notification) bool {
		return n.UserID == "bob" &&
			n.RefID == "e1" &&
			n.Type == domain.NotifyExpenseAdded &&
			n.Message == "You owe 120.00 from a new expense in Road Trip"
	})).Return(nil).Once()

	svc.NotifyDebtCreated(ctx, debt, "Road Trip")

	mockRepo.AssertExpectations(t)
}

func TestNotifyDebtCreatedSwallowsSaveError(t *testing.T) {
	ctx := context.Background()
	mockRepo := new(MockNotificationRepository)
	svc := services.NewNotificationService(mockRepo)

	mockRepo.On("SaveNotification", ctx, mock.Anything).Return(assert.AnError).Once()

	assert.NotPanics(t, func() {
		svc.NotifyDebtCreated(ctx, domain.Debt{FromUserID: "bob", Amount: dec("10")}, "")
	})
}

func TestListNotificationsClampsPaging(t *testing.T) {
	ctx := context.Background()
	mockRepo := new(MockNotificationRepository)
	svc := services.NewNotificationService(mockRepo)

	mockRepo.On("ListForUser", ctx, "bob", 20, 0).Return([]domain.Notification{}, nil).Twice()

	_, err := svc.ListNotifications(ctx, "bob", -5, -1)
	assert.NoError(t, err)
	_, err = svc.ListNotifications(ctx, "bob", 500, 0)
	assert.NoError(t, err)
	mockRepo.AssertExpectations(t)
}
