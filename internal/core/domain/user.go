package domain

// Role is the closed set of roles the backend assigns to a user.
type Role string

const (
	RoleAdmin  Role = "admin"
	RoleArtist Role = "artist"
	RoleUser   Role = "user"
)

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleArtist, RoleUser:
		return true
	}
	return false
}

// User is the authenticated actor returned by the backend. It is never
// persisted client-side; only the session token is.
type User struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
	Role  Role   `json:"role"`
}

// LoginResult is the payload returned by a successful auth/login call.
type LoginResult struct {
	Token string `json:"token"`
	User  *User  `json:"user"`
}
