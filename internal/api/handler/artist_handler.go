package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

type ArtistHandler struct {
	clients ClientSource
}

func NewArtistHandler(clients ClientSource) *ArtistHandler {
	return &ArtistHandler{clients: clients}
}

type artistQuery struct {
	ShowAll bool `query:"showAll"`
	Refresh bool `query:"refresh"`
}

// List returns the artists resource state. The collection is refetched when
// showAll differs from the previous request or refresh is set.
//
// @Summary      List artists
// @Tags         artists
// @Produce      json
// @Param        showAll  query     bool  false  "Include artists hidden from the public site"
// @Param        refresh  query     bool  false  "Force a refetch"
// @Success      200      {object}  ports.ResourceState[domain.Artist]
// @Failure      400      {object}  map[string]string
// @Router       /artists [get]
func (h *ArtistHandler) List(c echo.Context) error {
	artists := h.clients(c).Artists

	var q artistQuery
	if err := (&echo.DefaultBinder{}).BindQueryParams(c, &q); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid query parameters")
	}

	ctx := c.Request().Context()
	if q.Refresh {
		artists.Activate(ctx, q.ShowAll)
	} else {
		artists.SetShowAll(ctx, q.ShowAll)
	}

	return c.JSON(http.StatusOK, artists.State())
}
