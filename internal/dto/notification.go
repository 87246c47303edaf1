package dto

import (
	"time"

	"github.com/fairsplit/fairsplit/internal/core/domain"
)

// NotificationResponse is the public shape of a notification.
type NotificationResponse struct {
	NotificationID string                  `json:"notificationID"`
	Title          string                  `json:"title"`
	Message        string                  `json:"message"`
	Type           domain.NotificationType `json:"type"`
	RefID          string                  `json:"refID,omitempty"`
	Read           bool                    `json:"read"`
	CreatedAt      time.Time               `json:"createdAt"`
}

// ToNotificationResponses converts domain notifications to response DTOs.
func ToNotificationResponses(ns []domain.Notification) []NotificationResponse {
	out := make([]NotificationResponse, len(ns))
	for i, n := range ns {
		out[i] = NotificationResponse{
			NotificationID: n.NotificationID,
			Title:          n.Title,
			Message:        n.Message,
			Type:           n.Type,
			RefID:          n.RefID,
			Read:           n.Read,
			CreatedAt:      n.CreatedAt,
		}
	}
	return out
}
