package notify

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/culturahub/portal/internal/core/domain"
)

func general(title string) domain.Notification {
	return domain.Notification{Type: domain.NotificationGeneral, Title: title}
}

func TestHub_DispatchKeepsNewestFirst(t *testing.T) {
	h := NewHub(10, zerolog.Nop())

	first := h.Dispatch(general("one"))
	second := h.Dispatch(general("two"))

	if first.ID == "" || first.ID == second.ID {
		t.Fatalf("expected distinct ids, got %q and %q", first.ID, second.ID)
	}
	list := h.List()
	if len(list) != 2 || list[0].Title != "two" || list[1].Title != "one" {
		t.Fatalf("unexpected order: %+v", list)
	}
	if list[0].CreatedAt.IsZero() {
		t.Fatalf("expected timestamp")
	}
}

func TestHub_CapacityTrimsOldest(t *testing.T) {
	h := NewHub(2, zerolog.Nop())
	h.Dispatch(general("a"))
	h.Dispatch(general("b"))
	h.Dispatch(general("c"))

	list := h.List()
	if len(list) != 2 || list[0].Title != "c" || list[1].Title != "b" {
		t.Fatalf("unexpected entries: %+v", list)
	}
}

func TestHub_DefaultCapacity(t *testing.T) {
	h := NewHub(0, zerolog.Nop())
	for i := 0; i < defaultCapacity+5; i++ {
		h.Dispatch(general("x"))
	}
	if n := len(h.List()); n != defaultCapacity {
		t.Fatalf("expected %d entries, got %d", defaultCapacity, n)
	}
}

func TestHub_ReadTracking(t *testing.T) {
	h := NewHub(10, zerolog.Nop())
	a := h.Dispatch(general("a"))
	h.Dispatch(general("b"))

	if h.Unread() != 2 {
		t.Fatalf("expected 2 unread, got %d", h.Unread())
	}
	if !h.MarkRead(a.ID) {
		t.Fatalf("expected MarkRead to find entry")
	}
	if h.MarkRead("missing") {
		t.Fatalf("expected MarkRead to report unknown id")
	}
	if h.Unread() != 1 {
		t.Fatalf("expected 1 unread, got %d", h.Unread())
	}

	h.MarkAllRead()
	if h.Unread() != 0 {
		t.Fatalf("expected 0 unread, got %d", h.Unread())
	}

	h.Clear()
	if len(h.List()) != 0 {
		t.Fatalf("expected empty hub after Clear")
	}
}

func TestHub_ListIsACopy(t *testing.T) {
	h := NewHub(10, zerolog.Nop())
	h.Dispatch(general("a"))

	list := h.List()
	list[0].Read = true

	if h.Unread() != 1 {
		t.Fatalf("mutating the returned slice must not affect the hub")
	}
}

func TestHub_SubscribeReceivesAndClosesOnCancel(t *testing.T) {
	h := NewHub(10, zerolog.Nop())
	ctx, cancel := context.WithCancel(context.Background())
	ch := h.Subscribe(ctx)

	sent := h.Dispatch(general("live"))

	select {
	case got := <-ch:
		if got.ID != sent.ID {
			t.Fatalf("expected %s, got %s", sent.ID, got.ID)
		}
	case <-time.After(time.Second):
		t.Fatalf("subscriber did not receive notification")
	}

	cancel()
	select {
	case _, ok := <-ch:
		if ok {
			t.Fatalf("expected channel closed after cancel")
		}
	case <-time.After(time.Second):
		t.Fatalf("channel not closed after cancel")
	}
}

func TestHub_SlowSubscriberDoesNotBlock(t *testing.T) {
	h := NewHub(100, zerolog.Nop())
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	ch := h.Subscribe(ctx)

	done := make(chan struct{})
	go func() {
		for i := 0; i < subscriberBuffer*3; i++ {
			h.Dispatch(general("burst"))
		}
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatalf("Dispatch blocked on a full subscriber")
	}
	if n := len(ch); n != subscriberBuffer {
		t.Fatalf("expected buffer full with %d entries, got %d", subscriberBuffer, n)
	}
}
