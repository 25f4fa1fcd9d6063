package handler

import (
	"sync"

	"github.com/culturahub/portal/internal/core/ports"
)

const defaultRedirect = "/"

// RouteNavigator records where the session manager last asked to go. The
// logout handler turns that target into a redirect.
type RouteNavigator struct {
	mu   sync.Mutex
	last string
}

var _ ports.Navigator = (*RouteNavigator)(nil)

func NewRouteNavigator() *RouteNavigator {
	return &RouteNavigator{}
}

func (n *RouteNavigator) Navigate(path string) {
	n.mu.Lock()
	n.last = path
	n.mu.Unlock()
}

// Target returns the last requested path, or "/" if none was requested.
func (n *RouteNavigator) Target() string {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.last == "" {
		return defaultRedirect
	}
	return n.last
}
