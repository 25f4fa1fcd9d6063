package domain

import "time"

// Artist is a member of the organization's artist roster. ShowInPublic gates
// visibility on the public pages; the privileged showAll view ignores it.
type Artist struct {
	ID           string     `json:"id"`
	Name         string     `json:"name"`
	ArtisticName string     `json:"artisticName,omitempty"`
	Area         string     `json:"area"`
	Description  string     `json:"description"`
	Email        string     `json:"email"`
	Phone        string     `json:"phone"`
	Image        string     `json:"image,omitempty"`
	Role         string     `json:"role,omitempty"`
	ShowInPublic *bool      `json:"showInPublic,omitempty"`
	CreatedAt    *time.Time `json:"createdAt,omitempty"`
	UpdatedAt    *time.Time `json:"updatedAt,omitempty"`
}

// Public reports whether the artist may be listed on public pages.
// Artists without an explicit flag are public.
func (a Artist) Public() bool {
	return a.ShowInPublic == nil || *a.ShowInPublic
}
