package repositories

import (
	"katalog/internal/models"
)

// ProductRepository defines the interface for product data access.
// List results are ordered by creation time, newest first. UpdateOwned and
// DeleteOwned enforce ownership inside a single conditional write: they
// return ErrProductNotFound when the ID does not exist and ErrNotOwner when
// it exists but belongs to a different user.
type ProductRepository interface {
	GetAll() ([]models.Product, error)
	GetByOwner(ownerID string) ([]models.Product, error)
	GetByID(id string) (*models.Product, error)
	Create(product *models.Product) error
	UpdateOwned(id, ownerID string, product *models.Product) (*models.Product, error)
	DeleteOwned(id, ownerID string) error
}
