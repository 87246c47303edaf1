package domain

import "time"

// NotificationType classifies notifications sent to users.
type NotificationType string

const (
	NotifyExpenseAdded NotificationType = "EXPENSE_ADDED"
	NotifyDebtSettled  NotificationType = "DEBT_SETTLED"
)

// Notification is a fire-and-forget message persisted for a user, e.g.
// when a new debt is recorded against them. Failure to deliver one never
// fails the operation that produced it.
type Notification struct {
	NotificationID string           `json:"notificationID"` // Primary Key (UUID)
	UserID         string           `json:"userID"`
	Title          string           `json:"title"`
	Message        string           `json:"message"`
	Type           NotificationType `json:"type"`
	RefID          string           `json:"refID,omitempty"` // related entity, usually an expense ID
	Read           bool             `json:"read"`
	CreatedAt      time.Time        `json:"createdAt"`
}
