// Package mockapi is a development stand-in for the content service. It
// serves the endpoints the portal consumes from a seeded in-memory catalog.
package mockapi

import (
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/culturahub/portal/internal/core/domain"
)

//go:embed seed.json
var defaultSeed []byte

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserNotFound       = errors.New("user not found")
)

// account is a seeded user with its password hash.
type account struct {
	user         domain.User
	passwordHash string
}

type seedUser struct {
	ID       string      `json:"id"`
	Email    string      `json:"email"`
	Name     string      `json:"name"`
	Role     domain.Role `json:"role"`
	Password string      `json:"password"`
}

type seedFile struct {
	Users    []seedUser       `json:"users"`
	Artists  []domain.Artist  `json:"artists"`
	Products []domain.Product `json:"products"`
}

// Catalog is the read-only data set behind the mock API.
type Catalog struct {
	accounts map[string]account // keyed by lower-cased email
	byID     map[string]string  // user id -> email key
	artists  []domain.Artist
	products []domain.Product
}

// DefaultCatalog loads the embedded seed.
func DefaultCatalog() (*Catalog, error) {
	return LoadCatalog(defaultSeed, bcrypt.DefaultCost)
}

// LoadCatalog parses a seed document and hashes the seeded passwords at cost.
func LoadCatalog(raw []byte, cost int) (*Catalog, error) {
	var seed seedFile
	if err := json.Unmarshal(raw, &seed); err != nil {
		return nil, fmt.Errorf("parse seed: %w", err)
	}

	c := &Catalog{
		accounts: make(map[string]account, len(seed.Users)),
		byID:     make(map[string]string, len(seed.Users)),
		artists:  seed.Artists,
		products: seed.Products,
	}
	for _, u := range seed.Users {
		if !u.Role.Valid() {
			return nil, fmt.Errorf("seed user %s: unknown role %q", u.Email, u.Role)
		}
		hash, err := bcrypt.GenerateFromPassword([]byte(u.Password), cost)
		if err != nil {
			return nil, fmt.Errorf("hash password for %s: %w", u.Email, err)
		}
		key := strings.ToLower(u.Email)
		c.accounts[key] = account{
			user:         domain.User{ID: u.ID, Email: u.Email, Name: u.Name, Role: u.Role},
			passwordHash: string(hash),
		}
		c.byID[u.ID] = key
	}
	return c, nil
}

func (c *Catalog) findByEmail(email string) (account, error) {
	a, ok := c.accounts[strings.ToLower(strings.TrimSpace(email))]
	if !ok {
		return account{}, ErrUserNotFound
	}
	return a, nil
}

// UserByID returns the seeded user with the given id.
func (c *Catalog) UserByID(id string) (*domain.User, error) {
	key, ok := c.byID[id]
	if !ok {
		return nil, ErrUserNotFound
	}
	u := c.accounts[key].user
	return &u, nil
}

// Artists returns the public roster, or every artist when all is set.
func (c *Catalog) Artists(all bool) []domain.Artist {
	out := make([]domain.Artist, 0, len(c.artists))
	for _, a := range c.artists {
		if all || a.Public() {
			out = append(out, a)
		}
	}
	return out
}

// Products returns the active products, filtered by category when given.
func (c *Catalog) Products(category domain.ProductCategory) []domain.Product {
	out := make([]domain.Product, 0, len(c.products))
	for _, p := range c.products {
		if !p.IsActive {
			continue
		}
		if category != "" && p.Category != category {
			continue
		}
		out = append(out, p)
	}
	return out
}

// SearchProducts matches active products whose name or description contains
// query, ignoring case.
func (c *Catalog) SearchProducts(query string) []domain.Product {
	q := strings.ToLower(strings.TrimSpace(query))
	out := make([]domain.Product, 0)
	for _, p := range c.products {
		if !p.IsActive {
			continue
		}
		if strings.Contains(strings.ToLower(p.Name), q) || strings.Contains(strings.ToLower(p.Description), q) {
			out = append(out, p)
		}
	}
	return out
}
