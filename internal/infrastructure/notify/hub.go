package notify

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/culturahub/portal/internal/core/domain"
	"github.com/culturahub/portal/internal/core/ports"
	"github.com/culturahub/portal/internal/metrics"
)

const (
	defaultCapacity  = 50
	subscriberBuffer = 16
)

// Hub is the shared notification context of the admin panel. It keeps the
// most recent entries in memory, newest first, and fans every new entry out
// to live subscribers. Nothing is persisted.
type Hub struct {
	mu       sync.Mutex
	entries  []domain.NotificationEntry
	capacity int
	subs     map[int]chan domain.NotificationEntry
	nextSub  int
	now      func() time.Time
	log      zerolog.Logger
}

var _ ports.NotificationCenter = (*Hub)(nil)

// NewHub creates a Hub retaining up to capacity entries.
// If capacity <= 0, defaultCapacity is used.
func NewHub(capacity int, log zerolog.Logger) *Hub {
	if capacity <= 0 {
		capacity = defaultCapacity
	}
	return &Hub{
		capacity: capacity,
		subs:     make(map[int]chan domain.NotificationEntry),
		now:      time.Now,
		log:      log.With().Str("component", "notify").Logger(),
	}
}

// Dispatch stores n and delivers it to subscribers. Delivery never blocks:
// a subscriber whose buffer is full misses the entry.
func (h *Hub) Dispatch(n domain.Notification) domain.NotificationEntry {
	entry := domain.NotificationEntry{
		ID:           uuid.NewString(),
		Notification: n,
		CreatedAt:    h.now().UTC(),
	}

	h.mu.Lock()
	h.entries = append([]domain.NotificationEntry{entry}, h.entries...)
	if len(h.entries) > h.capacity {
		h.entries = h.entries[:h.capacity]
	}
	for id, ch := range h.subs {
		select {
		case ch <- entry:
		default:
			metrics.NotificationsDroppedTotal.Inc()
			h.log.Warn().Int("subscriber", id).Str("notification_id", entry.ID).Msg("subscriber buffer full, notification dropped")
		}
	}
	h.mu.Unlock()

	metrics.NotificationsDispatchedTotal.WithLabelValues(string(n.Type)).Inc()
	h.log.Debug().Str("notification_id", entry.ID).Str("type", string(n.Type)).Msg("notification dispatched")
	return entry
}

// List returns a copy of the retained entries, newest first.
func (h *Hub) List() []domain.NotificationEntry {
	h.mu.Lock()
	defer h.mu.Unlock()
	return append([]domain.NotificationEntry{}, h.entries...)
}

// Unread counts entries not yet marked read.
func (h *Hub) Unread() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	n := 0
	for _, e := range h.entries {
		if !e.Read {
			n++
		}
	}
	return n
}

// MarkRead flags one entry. It reports false for unknown ids.
func (h *Hub) MarkRead(id string) bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	for i := range h.entries {
		if h.entries[i].ID == id {
			h.entries[i].Read = true
			return true
		}
	}
	return false
}

func (h *Hub) MarkAllRead() {
	h.mu.Lock()
	for i := range h.entries {
		h.entries[i].Read = true
	}
	h.mu.Unlock()
}

func (h *Hub) Clear() {
	h.mu.Lock()
	h.entries = nil
	h.mu.Unlock()
}

// Subscribe returns a channel receiving every entry dispatched from now on.
// The channel is closed once ctx is done.
func (h *Hub) Subscribe(ctx context.Context) <-chan domain.NotificationEntry {
	ch := make(chan domain.NotificationEntry, subscriberBuffer)

	h.mu.Lock()
	id := h.nextSub
	h.nextSub++
	h.subs[id] = ch
	h.mu.Unlock()

	go func() {
		<-ctx.Done()
		h.mu.Lock()
		delete(h.subs, id)
		close(ch)
		h.mu.Unlock()
	}()

	return ch
}
