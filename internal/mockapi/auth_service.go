package mockapi

import (
	"context"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/culturahub/portal/internal/core/domain"
)

// AuthService checks seeded credentials and issues tokens.
type AuthService struct {
	catalog   *Catalog
	jwtSecret string
	tokenTTL  time.Duration
	now       func() time.Time
}

func NewAuthService(catalog *Catalog, jwtSecret string, tokenTTL time.Duration) *AuthService {
	if tokenTTL <= 0 {
		tokenTTL = 24 * time.Hour
	}
	return &AuthService{catalog: catalog, jwtSecret: jwtSecret, tokenTTL: tokenTTL, now: time.Now}
}

// Login returns a signed token for valid credentials. Unknown emails and
// wrong passwords are both ErrInvalidCredentials.
func (s *AuthService) Login(_ context.Context, email, password string) (string, *domain.User, error) {
	if email == "" || password == "" {
		return "", nil, ErrInvalidCredentials
	}

	acc, err := s.catalog.findByEmail(email)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			return "", nil, ErrInvalidCredentials
		}
		return "", nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(acc.passwordHash), []byte(password)) != nil {
		return "", nil, ErrInvalidCredentials
	}

	token, err := s.generateToken(&acc.user)
	if err != nil {
		return "", nil, err
	}

	user := acc.user
	return token, &user, nil
}

func (s *AuthService) generateToken(user *domain.User) (string, error) {
	claims := jwt.MapClaims{
		"sub":   user.ID,
		"email": user.Email,
		"name":  user.Name,
		"role":  string(user.Role),
		"exp":   s.now().Add(s.tokenTTL).Unix(),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(s.jwtSecret))
}
