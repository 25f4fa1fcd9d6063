package mockapi

import (
	"errors"
	"net/http"
	"net/url"

	"github.com/labstack/echo/v4"

	"github.com/culturahub/portal/internal/core/domain"
)

// Handler serves the content endpoints.
type Handler struct {
	catalog *Catalog
	auth    *AuthService
	listAll echo.HandlerFunc
}

// NewHandler builds the handler. The privileged artist listing is wrapped
// in Auth and admin-only RBAC.
func NewHandler(catalog *Catalog, auth *AuthService, jwtSecret string) *Handler {
	h := &Handler{catalog: catalog, auth: auth}
	h.listAll = Auth(jwtSecret)(RBAC(domain.RoleAdmin)(h.allArtists))
	return h
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	Token string       `json:"token"`
	User  *domain.User `json:"user"`
}

type meResponse struct {
	User *domain.User `json:"user"`
}

type artistsResponse struct {
	Artists []domain.Artist `json:"artists"`
}

type productsResponse struct {
	Products []domain.Product `json:"products"`
}

type categoryQuery struct {
	Category string `query:"category" validate:"omitempty,oneof=book magazine ticket merchandise"`
}

// Login authenticates a seeded user and returns a JWT.
func (h *Handler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid payload"})
	}

	token, user, err := h.auth.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, ErrInvalidCredentials) {
			return c.JSON(http.StatusUnauthorized, map[string]string{"error": "invalid credentials"})
		}
		return err
	}

	return c.JSON(http.StatusOK, loginResponse{Token: token, User: user})
}

// Me returns the user identified by the bearer token. Mounted behind Auth.
func (h *Handler) Me(c echo.Context) error {
	id, _ := c.Get(ctxUserID).(string)
	user, err := h.catalog.UserByID(id)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, map[string]string{"error": "unknown user"})
	}
	return c.JSON(http.StatusOK, meResponse{User: user})
}

// Artists lists public artists; showAll=true switches to the admin listing.
func (h *Handler) Artists(c echo.Context) error {
	if c.QueryParam("showAll") == "true" {
		return h.listAll(c)
	}
	return c.JSON(http.StatusOK, artistsResponse{Artists: h.catalog.Artists(false)})
}

func (h *Handler) allArtists(c echo.Context) error {
	return c.JSON(http.StatusOK, artistsResponse{Artists: h.catalog.Artists(true)})
}

// Products lists active products, optionally by category.
func (h *Handler) Products(c echo.Context) error {
	var q categoryQuery
	if err := (&echo.DefaultBinder{}).BindQueryParams(c, &q); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid query parameters"})
	}
	if err := c.Validate(&q); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, productsResponse{Products: h.catalog.Products(domain.ProductCategory(q.Category))})
}

// SearchProducts matches products by name or description.
func (h *Handler) SearchProducts(c echo.Context) error {
	query := c.Param("query")
	if unescaped, err := url.PathUnescape(query); err == nil {
		query = unescaped
	}
	return c.JSON(http.StatusOK, productsResponse{Products: h.catalog.SearchProducts(query)})
}
