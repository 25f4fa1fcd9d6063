package service

import (
	"fmt"
	"net/url"

	"github.com/culturahub/portal/internal/core/domain"
	"github.com/culturahub/portal/internal/core/ports"
)

// Admin surfaces the notifications deep-link to.
const (
	LinkContact       = "/admin/contact"
	LinkRegistrations = "/admin/registrations"
	LinkOrders        = "/admin/store/orders"
	LinkCommunity     = "/admin/community"
)

// Notifier translates domain events into notifications and hands them to
// the shared dispatcher. It holds no state of its own.
type Notifier struct {
	dispatch ports.NotificationDispatcher
}

func NewNotifier(dispatch ports.NotificationDispatcher) *Notifier {
	return &Notifier{dispatch: dispatch}
}

// ContactMessage reports a message sent through the contact form.
func (n *Notifier) ContactMessage(name, subject string) domain.NotificationEntry {
	msg := fmt.Sprintf("%s sent a message", name)
	if subject != "" {
		msg = fmt.Sprintf("%s sent a message: %q", name, subject)
	}
	return n.dispatch.Dispatch(domain.Notification{
		Type:    domain.NotificationContact,
		Title:   "New contact message",
		Message: msg,
		Link:    LinkContact,
	})
}

// EventRegistration reports a sign-up for an event or workshop.
func (n *Notifier) EventRegistration(name, event string) domain.NotificationEntry {
	return n.dispatch.Dispatch(domain.Notification{
		Type:    domain.NotificationRegistration,
		Title:   "New event registration",
		Message: fmt.Sprintf("%s registered for %s", name, event),
		Link:    LinkRegistrations,
	})
}

// StoreOrder reports an order placed in the store. The order number is
// escaped as a single path segment of the link.
func (n *Notifier) StoreOrder(orderNumber, customer string, total float64) domain.NotificationEntry {
	return n.dispatch.Dispatch(domain.Notification{
		Type:    domain.NotificationOrder,
		Title:   fmt.Sprintf("New order #%s", orderNumber),
		Message: fmt.Sprintf("%s placed an order for $%.2f", customer, total),
		Link:    LinkOrders + "/" + url.PathEscape(orderNumber),
	})
}

// CommunityComment reports a comment left in the community section.
func (n *Notifier) CommunityComment(author, topic string) domain.NotificationEntry {
	return n.dispatch.Dispatch(domain.Notification{
		Type:    domain.NotificationComment,
		Title:   "New community comment",
		Message: fmt.Sprintf("%s commented on %q", author, topic),
		Link:    LinkCommunity,
	})
}

// General dispatches a free-form notification.
func (n *Notifier) General(title, message, link string) domain.NotificationEntry {
	return n.dispatch.Dispatch(domain.Notification{
		Type:    domain.NotificationGeneral,
		Title:   title,
		Message: message,
		Link:    link,
	})
}
