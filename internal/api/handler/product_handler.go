package handler

import (
	"net/http"
	"net/url"

	"github.com/labstack/echo/v4"

	"github.com/culturahub/portal/internal/core/domain"
)

type ProductHandler struct {
	clients ClientSource
}

func NewProductHandler(clients ClientSource) *ProductHandler {
	return &ProductHandler{clients: clients}
}

type productQuery struct {
	Category string `query:"category" validate:"omitempty,oneof=book magazine ticket merchandise"`
}

// List fetches products, optionally filtered by category.
//
// @Summary      List products
// @Tags         products
// @Produce      json
// @Param        category  query     string  false  "Product category"  Enums(book, magazine, ticket, merchandise)
// @Success      200       {object}  ports.ResourceState[domain.Product]
// @Failure      400       {object}  map[string]string
// @Router       /products [get]
func (h *ProductHandler) List(c echo.Context) error {
	products := h.clients(c).Products

	var q productQuery
	if err := (&echo.DefaultBinder{}).BindQueryParams(c, &q); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid query parameters")
	}
	if err := c.Validate(&q); err != nil {
		return err
	}

	products.Fetch(c.Request().Context(), domain.ProductCategory(q.Category))
	return c.JSON(http.StatusOK, products.State())
}

// Search replaces the collection with products matching the query.
//
// @Summary      Search products
// @Tags         products
// @Produce      json
// @Param        query  path      string  true  "Search text"
// @Success      200    {object}  ports.ResourceState[domain.Product]
// @Router       /products/search/{query} [get]
func (h *ProductHandler) Search(c echo.Context) error {
	products := h.clients(c).Products

	query := c.Param("query")
	if unescaped, err := url.PathUnescape(query); err == nil {
		query = unescaped
	}

	products.Search(c.Request().Context(), query)
	return c.JSON(http.StatusOK, products.State())
}
