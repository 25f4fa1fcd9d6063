package domain

// SessionStatus is the observable state of the session manager.
type SessionStatus string

const (
	StatusLoading         SessionStatus = "loading"
	StatusAuthenticated   SessionStatus = "authenticated"
	StatusUnauthenticated SessionStatus = "unauthenticated"
)

// SessionState is a tagged union: only the authenticated variant carries a user.
type SessionState interface {
	Status() SessionStatus
}

// StateLoading is the initial state, held until the identity check settles.
type StateLoading struct{}

// StateAuthenticated holds the user confirmed by the backend.
type StateAuthenticated struct {
	User *User
}

// StateUnauthenticated is reached when no valid token is held.
type StateUnauthenticated struct{}

func (StateLoading) Status() SessionStatus         { return StatusLoading }
func (StateAuthenticated) Status() SessionStatus   { return StatusAuthenticated }
func (StateUnauthenticated) Status() SessionStatus { return StatusUnauthenticated }

// SessionSnapshot is the serialisable view of a SessionState.
type SessionSnapshot struct {
	Status SessionStatus `json:"status"`
	User   *User         `json:"user,omitempty"`
}

// Snapshot flattens a state into its JSON form.
func Snapshot(s SessionState) SessionSnapshot {
	if a, ok := s.(StateAuthenticated); ok {
		return SessionSnapshot{Status: StatusAuthenticated, User: a.User}
	}
	return SessionSnapshot{Status: s.Status()}
}
