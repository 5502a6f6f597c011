package repositories

import (
	"sort"
	"sync"
	"time"

	"katalog/internal/models"

	"github.com/google/uuid"
)

// MockProductRepository is an in-memory implementation of ProductRepository.
// It backs unit tests and the offline demo mode.
type MockProductRepository struct {
	products map[string]models.Product
	mu       sync.RWMutex
}

// NewMockProductRepository creates a new instance of MockProductRepository.
func NewMockProductRepository() *MockProductRepository {
	return &MockProductRepository{
		products: make(map[string]models.Product),
	}
}

// GetAll returns all products, newest first.
func (r *MockProductRepository) GetAll() ([]models.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	productList := make([]models.Product, 0, len(r.products))
	for _, p := range r.products {
		productList = append(productList, p)
	}
	sortNewestFirst(productList)
	return productList, nil
}

// GetByOwner returns the products created by the given user, newest first.
func (r *MockProductRepository) GetByOwner(ownerID string) ([]models.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var productList []models.Product
	for _, p := range r.products {
		if p.CreatedBy == ownerID {
			productList = append(productList, p)
		}
	}
	sortNewestFirst(productList)
	return productList, nil
}

// GetByID returns a product by its ID.
func (r *MockProductRepository) GetByID(id string) (*models.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	product, ok := r.products[id]
	if !ok {
		return nil, ErrProductNotFound
	}
	return &product, nil
}

// Create adds a new product, assigning an ID and timestamps when unset.
func (r *MockProductRepository) Create(product *models.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if product.ID == "" {
		product.ID = uuid.New().String()
	}
	if product.CreatedAt.IsZero() {
		now := time.Now()
		product.CreatedAt = now
		product.UpdatedAt = now
	}
	r.products[product.ID] = *product
	return nil
}

// UpdateOwned replaces the non-identity fields of a product owned by the
// given user and refreshes UpdatedAt.
func (r *MockProductRepository) UpdateOwned(id, ownerID string, product *models.Product) (*models.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	existing, ok := r.products[id]
	if !ok {
		return nil, ErrProductNotFound
	}
	if existing.CreatedBy != ownerID {
		return nil, ErrNotOwner
	}

	existing.Name = product.Name
	existing.Description = product.Description
	existing.Price = product.Price
	existing.Category = product.Category
	existing.ImageURL = product.ImageURL
	existing.Rating = product.Rating
	existing.InStock = product.InStock
	existing.UpdatedAt = time.Now()

	r.products[id] = existing
	return &existing, nil
}

// DeleteOwned removes a product owned by the given user.
func (r *MockProductRepository) DeleteOwned(id, ownerID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	existing, ok := r.products[id]
	if !ok {
		return ErrProductNotFound
	}
	if existing.CreatedBy != ownerID {
		return ErrNotOwner
	}
	delete(r.products, id)
	return nil
}

func sortNewestFirst(products []models.Product) {
	sort.Slice(products, func(i, j int) bool {
		return products[i].CreatedAt.After(products[j].CreatedAt)
	})
}
