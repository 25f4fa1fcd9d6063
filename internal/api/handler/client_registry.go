package handler

import (
	"context"
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/culturahub/portal/internal/core/ports"
)

// ClientCookie ties a browser to its portal client.
const ClientCookie = "portal_client"

const clientContextKey = "portal.client"

// Client is one caller's share of the portal: its own session manager, the
// navigator that manager drives and the content resources reading its token.
type Client struct {
	ID        string
	Session   ports.SessionService
	Navigator *RouteNavigator
	Artists   ports.ArtistResource
	Products  ports.ProductResource

	// Close releases the resources; may be nil.
	Close func()
}

// ClientSource returns the client serving the current request.
type ClientSource func(c echo.Context) *Client

// ClientFactory builds the client for a new caller id.
type ClientFactory func(ctx context.Context, id string) *Client

type clientEntry struct {
	once     sync.Once
	client   *Client
	lastSeen time.Time
}

// ClientRegistry keeps one Client per ClientCookie value. A request without
// a valid cookie gets a fresh client and a new cookie, so no caller ever
// reads or ends another caller's session. Clients idle for longer than the
// configured timeout are closed and dropped; a returning caller is rebuilt
// from its persisted token slot.
type ClientRegistry struct {
	newClient ClientFactory
	idle      time.Duration
	now       func() time.Time

	mu        sync.Mutex
	clients   map[string]*clientEntry
	lastSweep time.Time
}

// NewClientRegistry returns a registry building clients with newClient. A
// non-positive idle keeps clients forever.
func NewClientRegistry(newClient ClientFactory, idle time.Duration) *ClientRegistry {
	return &ClientRegistry{
		newClient: newClient,
		idle:      idle,
		now:       time.Now,
		clients:   make(map[string]*clientEntry),
	}
}

// Resolve returns the caller's client, creating it on first sight. It is a
// ClientSource and must run before the handler writes its response.
func (r *ClientRegistry) Resolve(c echo.Context) *Client {
	if client, ok := c.Get(clientContextKey).(*Client); ok {
		return client
	}

	id := clientID(c)
	if id == "" {
		id = uuid.NewString()
		c.SetCookie(&http.Cookie{
			Name:     ClientCookie,
			Value:    id,
			Path:     "/",
			HttpOnly: true,
			SameSite: http.SameSiteLaxMode,
		})
	}

	client := r.lookup(c.Request().Context(), id)
	c.Set(clientContextKey, client)
	return client
}

// Len reports how many clients are live.
func (r *ClientRegistry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.clients)
}

// Close releases every client.
func (r *ClientRegistry) Close() {
	r.mu.Lock()
	entries := r.clients
	r.clients = make(map[string]*clientEntry)
	r.mu.Unlock()

	for _, entry := range entries {
		closeEntry(entry)
	}
}

func (r *ClientRegistry) lookup(ctx context.Context, id string) *Client {
	r.mu.Lock()
	now := r.now()
	evicted := r.sweepLocked(now)
	entry, ok := r.clients[id]
	if !ok {
		entry = &clientEntry{}
		r.clients[id] = entry
	}
	entry.lastSeen = now
	r.mu.Unlock()

	for _, e := range evicted {
		closeEntry(e)
	}

	entry.once.Do(func() { entry.client = r.newClient(ctx, id) })
	return entry.client
}

// sweepLocked drops idle clients at most once per idle period.
func (r *ClientRegistry) sweepLocked(now time.Time) []*clientEntry {
	if r.idle <= 0 || now.Sub(r.lastSweep) < r.idle {
		return nil
	}
	r.lastSweep = now

	var evicted []*clientEntry
	for id, entry := range r.clients {
		if now.Sub(entry.lastSeen) >= r.idle {
			evicted = append(evicted, entry)
			delete(r.clients, id)
		}
	}
	return evicted
}

func closeEntry(entry *clientEntry) {
	// Wait for a build still in progress before closing what it produced.
	entry.once.Do(func() {})
	if entry.client != nil && entry.client.Close != nil {
		entry.client.Close()
	}
}

// clientID returns the cookie value when it is a canonical UUID.
func clientID(c echo.Context) string {
	cookie, err := c.Cookie(ClientCookie)
	if err != nil {
		return ""
	}
	parsed, err := uuid.Parse(cookie.Value)
	if err != nil || parsed.String() != cookie.Value {
		return ""
	}
	return cookie.Value
}
