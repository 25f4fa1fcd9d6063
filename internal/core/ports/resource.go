package ports

import (
	"context"

	"github.com/culturahub/portal/internal/core/domain"
)

// ResourceState is what a resource hook exposes to the page tree.
type ResourceState[T any] struct {
	Data    []T    `json:"data"`
	Loading bool   `json:"loading"`
	Error   string `json:"error,omitempty"`
}

// ArtistResource owns the artists collection.
type ArtistResource interface {
	Activate(ctx context.Context, showAll bool)
	SetShowAll(ctx context.Context, showAll bool)
	Refresh(ctx context.Context)
	State() ResourceState[domain.Artist]
}

// ProductResource owns the products collection.
type ProductResource interface {
	Fetch(ctx context.Context, category domain.ProductCategory)
	Search(ctx context.Context, query string)
	State() ResourceState[domain.Product]
}
