package domain

import "time"

// NotificationType identifies the domain event behind a notification.
type NotificationType string

const (
	NotificationContact      NotificationType = "contact"
	NotificationRegistration NotificationType = "registration"
	NotificationOrder        NotificationType = "order"
	NotificationComment      NotificationType = "comment"
	NotificationGeneral      NotificationType = "general"
)

// Notification is a transient record shown in the admin panel.
type Notification struct {
	Type    NotificationType `json:"type"`
	Title   string           `json:"title"`
	Message string           `json:"message"`
	Link    string           `json:"link,omitempty"`
}

// NotificationEntry is a notification as held by the shared hub.
type NotificationEntry struct {
	ID string `json:"id"`
	Notification
	CreatedAt time.Time `json:"created_at"`
	Read      bool      `json:"read"`
}
