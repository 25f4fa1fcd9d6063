package service

import (
	"errors"
	"fmt"
	"sync"

	"github.com/rs/zerolog"

	"github.com/culturahub/portal/internal/core/domain"
	"github.com/culturahub/portal/internal/core/ports"
	"github.com/culturahub/portal/internal/metrics"
)

// collection is the {data, loading, error} triple shared by resource hooks.
// Once closed, late results are dropped instead of mutating state.
type collection[T any] struct {
	name         string
	resetOnError bool
	log          zerolog.Logger

	mu     sync.Mutex
	state  ports.ResourceState[T]
	closed bool
}

func newCollection[T any](name string, resetOnError bool, log zerolog.Logger) *collection[T] {
	return &collection[T]{
		name:         name,
		resetOnError: resetOnError,
		log:          log.With().Str("component", "resource").Str("resource", name).Logger(),
		state:        ports.ResourceState[T]{Data: []T{}},
	}
}

// begin marks a fetch in flight. It reports false after close.
func (c *collection[T]) begin() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return false
	}
	c.state.Loading = true
	return true
}

// settle records the outcome of a fetch; the last writer wins.
func (c *collection[T]) settle(data []T, err error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		metrics.ResourceFetchesTotal.WithLabelValues(c.name, "discarded").Inc()
		return
	}

	c.state.Loading = false
	if err != nil {
		metrics.ResourceFetchesTotal.WithLabelValues(c.name, "error").Inc()
		c.log.Warn().Err(err).Msg("fetch failed")
		c.state.Error = fmt.Sprintf("Error loading %s: %s", c.name, describe(err))
		if c.resetOnError {
			c.state.Data = []T{}
		}
		return
	}

	metrics.ResourceFetchesTotal.WithLabelValues(c.name, "ok").Inc()
	c.state.Error = ""
	c.state.Data = data
}

func (c *collection[T]) snapshot() ports.ResourceState[T] {
	c.mu.Lock()
	defer c.mu.Unlock()
	s := c.state
	s.Data = append([]T{}, c.state.Data...)
	return s
}

func (c *collection[T]) close() {
	c.mu.Lock()
	c.closed = true
	c.mu.Unlock()
}

// describe turns the error taxonomy into text fit for the page tree.
func describe(err error) string {
	var (
		ne *domain.NetworkError
		he *domain.HTTPError
		pe *domain.ParseError
	)
	switch {
	case errors.As(err, &ne):
		return "the content service could not be reached"
	case errors.As(err, &he):
		if he.Message != "" {
			return fmt.Sprintf("the content service answered %d (%s)", he.StatusCode, he.Message)
		}
		return fmt.Sprintf("the content service answered %d", he.StatusCode)
	case errors.As(err, &pe):
		return "the content service returned an unexpected response"
	}
	return err.Error()
}
