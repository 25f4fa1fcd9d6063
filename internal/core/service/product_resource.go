package service

import (
	"context"
	"net/url"
	"strings"

	"github.com/rs/zerolog"

	"github.com/culturahub/portal/internal/core/domain"
	"github.com/culturahub/portal/internal/core/ports"
)

const (
	endpointProducts       = "products"
	endpointProductsSearch = "products/search/"
)

// ProductResource owns the products collection. Fetch and Search share one
// loading/error pair; whichever settles last is what the page sees.
type ProductResource struct {
	api  ports.APIClient
	coll *collection[domain.Product]
}

var _ ports.ProductResource = (*ProductResource)(nil)

func NewProductResource(api ports.APIClient, log zerolog.Logger) *ProductResource {
	return &ProductResource{
		api:  api,
		coll: newCollection[domain.Product]("products", false, log),
	}
}

// Fetch lists products, filtered by category when one is given.
func (r *ProductResource) Fetch(ctx context.Context, category domain.ProductCategory) {
	endpoint := endpointProducts
	if category != "" {
		endpoint += "?category=" + url.QueryEscape(string(category))
	}
	r.load(ctx, endpoint)
}

// Search replaces the collection with the products matching query. A blank
// query does not hit the search endpoint: it behaves like Fetch(ctx, "") and
// loads the plain products listing.
func (r *ProductResource) Search(ctx context.Context, query string) {
	query = strings.TrimSpace(query)
	if query == "" {
		r.Fetch(ctx, "")
		return
	}
	r.load(ctx, endpointProductsSearch+url.PathEscape(query))
}

func (r *ProductResource) State() ports.ResourceState[domain.Product] {
	return r.coll.snapshot()
}

// Close detaches the resource; fetches still in flight are discarded.
func (r *ProductResource) Close() {
	r.coll.close()
}

func (r *ProductResource) load(ctx context.Context, endpoint string) {
	if !r.coll.begin() {
		return
	}

	resp, err := r.api.Call(ctx, endpoint, nil)
	var products []domain.Product
	if err == nil {
		products, err = decodeCollectionResponse[domain.Product](resp, "products")
	}
	r.coll.settle(products, err)
}
