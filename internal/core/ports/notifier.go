package ports

import (
	"context"

	"github.com/culturahub/portal/internal/core/domain"
)

// NotificationDispatcher receives notifications built by the Notifier.
type NotificationDispatcher interface {
	Dispatch(n domain.Notification) domain.NotificationEntry
}

// NotificationCenter is the shared context read by the admin panel.
type NotificationCenter interface {
	NotificationDispatcher
	List() []domain.NotificationEntry
	Unread() int
	MarkRead(id string) bool
	MarkAllRead()
	Clear()
	Subscribe(ctx context.Context) <-chan domain.NotificationEntry
}
