package models

import "time"

// NotificationType classifies notifications sent to users.
type NotificationType string

// Notification represents a notification row.
type Notification struct {
	NotificationID string           `db:"notification_id"`
	UserID         string           `db:"user_id"`
	Title          string           `db:"title"`
	Message        string           `db:"message"`
	Type           NotificationType `db:"type"`
	RefID          string           `db:"ref_id"`
	Read           bool             `db:"read"`
	CreatedAt      time.Time        `db:"created_at"`
}
