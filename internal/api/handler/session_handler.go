package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/culturahub/portal/internal/core/domain"
)

// SessionHandler exposes the caller's session manager.
type SessionHandler struct {
	clients ClientSource
}

func NewSessionHandler(clients ClientSource) *SessionHandler {
	return &SessionHandler{clients: clients}
}

type loginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type loginResponse struct {
	Token string       `json:"token"`
	User  *domain.User `json:"user"`
}

// Get returns the current session state.
//
// @Summary      Current session
// @Tags         session
// @Produce      json
// @Success      200  {object}  domain.SessionSnapshot
// @Router       /session [get]
func (h *SessionHandler) Get(c echo.Context) error {
	return c.JSON(http.StatusOK, domain.Snapshot(h.clients(c).Session.State()))
}

// Login exchanges credentials for a session.
//
// @Summary      Login
// @Tags         session
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Login credentials"
// @Success      200   {object}  loginResponse
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Failure      502   {object}  map[string]string
// @Router       /session/login [post]
func (h *SessionHandler) Login(c echo.Context) error {
	client := h.clients(c)

	var req loginRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	result, err := client.Session.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, loginResponse{Token: result.Token, User: result.User})
}

// Logout ends the caller's session and redirects to wherever its session
// manager navigated.
//
// @Summary      Logout
// @Tags         session
// @Success      303
// @Router       /session/logout [post]
func (h *SessionHandler) Logout(c echo.Context) error {
	client := h.clients(c)
	client.Session.Logout(c.Request().Context())
	return c.Redirect(http.StatusSeeOther, client.Navigator.Target())
}
