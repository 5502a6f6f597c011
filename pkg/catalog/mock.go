package catalog

import (
	"context"
	"errors"
	"time"

	"katalog/internal/models"
	"katalog/internal/repositories"
)

// Mock is an in-memory Service with artificial latency, standing in for the
// backend in demos and offline development. Storage and ownership rules are
// delegated to the same in-memory repository the backend tests use; all
// mutations are attributed to a single fixed user.
type Mock struct {
	repo   *repositories.MockProductRepository
	delay  time.Duration
	userID string
}

// NewMock creates a mock service whose operations each take delay to
// complete. Mutations are attributed to userID.
func NewMock(userID string, delay time.Duration) *Mock {
	return &Mock{
		repo:   repositories.NewMockProductRepository(),
		delay:  delay,
		userID: userID,
	}
}

// Seed inserts products directly, bypassing latency and ownership rules.
// Zero IDs and timestamps are filled in by the repository.
func (m *Mock) Seed(products []models.Product) {
	for i := range products {
		_ = m.repo.Create(&products[i])
	}
}

// wait simulates network latency, honoring context cancellation.
func (m *Mock) wait(ctx context.Context) error {
	if m.delay == 0 {
		return ctx.Err()
	}
	select {
	case <-time.After(m.delay):
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// mapErr translates repository sentinels into the package's errors.
func mapErr(err error) error {
	switch {
	case errors.Is(err, repositories.ErrProductNotFound):
		return ErrNotFound
	case errors.Is(err, repositories.ErrNotOwner):
		return ErrForbidden
	}
	return err
}

// List returns all products, newest first.
func (m *Mock) List(ctx context.Context) ([]models.Product, error) {
	if err := m.wait(ctx); err != nil {
		return nil, err
	}
	return m.repo.GetAll()
}

// Mine returns the fixed user's products, newest first.
func (m *Mock) Mine(ctx context.Context) ([]models.Product, error) {
	if err := m.wait(ctx); err != nil {
		return nil, err
	}
	return m.repo.GetByOwner(m.userID)
}

// Get returns a product by its ID.
func (m *Mock) Get(ctx context.Context, id string) (*models.Product, error) {
	if err := m.wait(ctx); err != nil {
		return nil, err
	}
	p, err := m.repo.GetByID(id)
	if err != nil {
		return nil, mapErr(err)
	}
	return p, nil
}

// Create adds a product owned by the fixed user.
func (m *Mock) Create(ctx context.Context, product models.Product) (*models.Product, error) {
	if err := m.wait(ctx); err != nil {
		return nil, err
	}
	product.ID = ""
	product.CreatedBy = m.userID
	if err := m.repo.Create(&product); err != nil {
		return nil, err
	}
	return &product, nil
}

// Update replaces the non-identity fields of a product the fixed user owns.
func (m *Mock) Update(ctx context.Context, id string, product models.Product) (*models.Product, error) {
	if err := m.wait(ctx); err != nil {
		return nil, err
	}
	updated, err := m.repo.UpdateOwned(id, m.userID, &product)
	if err != nil {
		return nil, mapErr(err)
	}
	return updated, nil
}

// Delete removes a product the fixed user owns.
func (m *Mock) Delete(ctx context.Context, id string) error {
	if err := m.wait(ctx); err != nil {
		return err
	}
	if err := m.repo.DeleteOwned(id, m.userID); err != nil {
		return mapErr(err)
	}
	return nil
}
