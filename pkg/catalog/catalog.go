// Package catalog implements the client side of the product catalog: an API
// client for the REST backend, a conjunctive product filter and a view that
// keeps the full product set together with a derived filtered projection.
package catalog

import (
	"context"
	"errors"

	"katalog/internal/models"
)

// Service is the backend surface the catalog talks to. Client implements it
// against the REST API; Mock implements it in memory for demos and tests.
type Service interface {
	List(ctx context.Context) ([]models.Product, error)
	Mine(ctx context.Context) ([]models.Product, error)
	Get(ctx context.Context, id string) (*models.Product, error)
	Create(ctx context.Context, product models.Product) (*models.Product, error)
	Update(ctx context.Context, id string, product models.Product) (*models.Product, error)
	Delete(ctx context.Context, id string) error
}

// Errors mapped from backend responses.
var (
	// ErrUnauthorized means the session token is missing, invalid or expired.
	ErrUnauthorized = errors.New("authentication required")
	// ErrForbidden means the caller does not own the target product.
	ErrForbidden = errors.New("not the product owner")
	// ErrNotFound means no product matches the given ID.
	ErrNotFound = errors.New("product not found")
)
