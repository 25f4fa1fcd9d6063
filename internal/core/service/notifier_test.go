package service

import (
	"testing"

	"github.com/culturahub/portal/internal/core/domain"
)

func TestNotifier_Templates(t *testing.T) {
	d := &recordingDispatcher{}
	n := NewNotifier(d)

	n.ContactMessage("Lucía", "Workshop dates")
	n.EventRegistration("Tomás", "Printmaking workshop")
	n.StoreOrder("1042", "Ana", 57.5)
	n.CommunityComment("Leo", "Open studio night")
	n.General("Backup finished", "All content exported", "")
	n.StoreOrder("../../settings?x=1", "Eve", 1)

	want := []domain.Notification{
		{Type: domain.NotificationContact, Title: "New contact message", Message: `Lucía sent a message: "Workshop dates"`, Link: "/admin/contact"},
		{Type: domain.NotificationRegistration, Title: "New event registration", Message: "Tomás registered for Printmaking workshop", Link: "/admin/registrations"},
		{Type: domain.NotificationOrder, Title: "New order #1042", Message: "Ana placed an order for $57.50", Link: "/admin/store/orders/1042"},
		{Type: domain.NotificationComment, Title: "New community comment", Message: `Leo commented on "Open studio night"`, Link: "/admin/community"},
		{Type: domain.NotificationGeneral, Title: "Backup finished", Message: "All content exported"},
		{Type: domain.NotificationOrder, Title: "New order #../../settings?x=1", Message: "Eve placed an order for $1.00", Link: "/admin/store/orders/..%2F..%2Fsettings%3Fx=1"},
	}

	if len(d.got) != len(want) {
		t.Fatalf("expected %d notifications, got %d", len(want), len(d.got))
	}
	for i := range want {
		if d.got[i] != want[i] {
			t.Fatalf("notification %d: expected %+v, got %+v", i, want[i], d.got[i])
		}
	}
}

func TestNotifier_ContactWithoutSubject(t *testing.T) {
	d := &recordingDispatcher{}
	entry := NewNotifier(d).ContactMessage("Lucía", "")

	if d.got[0].Message != "Lucía sent a message" {
		t.Fatalf("unexpected message %q", d.got[0].Message)
	}
	if entry.ID == "" {
		t.Fatalf("expected dispatcher entry to be returned")
	}
}
