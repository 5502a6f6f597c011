package repositories

import (
	"fmt"

	"katalog/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GORMProductRepository is a GORM implementation of ProductRepository.
type GORMProductRepository struct {
	db *gorm.DB
}

// NewGORMProductRepository creates a new instance of GORMProductRepository.
func NewGORMProductRepository(db *gorm.DB) *GORMProductRepository {
	return &GORMProductRepository{
		db: db,
	}
}

// GetAll retrieves all products, newest first.
func (r *GORMProductRepository) GetAll() ([]models.Product, error) {
	var products []models.Product
	if err := r.db.Order("created_at DESC").Find(&products).Error; err != nil {
		return nil, fmt.Errorf("failed to get all products: %w", err)
	}
	return products, nil
}

// GetByOwner retrieves the products created by the given user, newest first.
func (r *GORMProductRepository) GetByOwner(ownerID string) ([]models.Product, error) {
	var products []models.Product
	if err := r.db.Where("created_by = ?", ownerID).Order("created_at DESC").Find(&products).Error; err != nil {
		return nil, fmt.Errorf("failed to get products for user %s: %w", ownerID, err)
	}
	return products, nil
}

// GetByID retrieves a single product by its ID from the database.
// A malformed ID simply matches nothing and reports ErrProductNotFound.
func (r *GORMProductRepository) GetByID(id string) (*models.Product, error) {
	var product models.Product
	if err := r.db.First(&product, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, ErrProductNotFound
		}
		return nil, fmt.Errorf("failed to get product by ID %s: %w", id, err)
	}
	return &product, nil
}

// Create creates a new product in the database.
func (r *GORMProductRepository) Create(product *models.Product) error {
	if product.ID == "" {
		product.ID = uuid.New().String()
	}
	if err := r.db.Create(product).Error; err != nil {
		return fmt.Errorf("failed to create product: %w", err)
	}
	return nil
}

// UpdateOwned replaces the non-identity fields of a product with a single
// conditional write keyed on both ID and owner, so the ownership check and
// the mutation cannot race. ID, CreatedBy and CreatedAt are never written;
// GORM refreshes UpdatedAt.
func (r *GORMProductRepository) UpdateOwned(id, ownerID string, product *models.Product) (*models.Product, error) {
	res := r.db.Model(&models.Product{}).
		Where("id = ? AND created_by = ?", id, ownerID).
		Updates(map[string]interface{}{
			"name":        product.Name,
			"description": product.Description,
			"price":       product.Price,
			"category":    product.Category,
			"image_url":   product.ImageURL,
			"rating":      product.Rating,
			"in_stock":    product.InStock,
		})
	if res.Error != nil {
		return nil, fmt.Errorf("failed to update product %s: %w", id, res.Error)
	}
	if res.RowsAffected == 0 {
		return nil, r.classifyMiss(id)
	}
	return r.GetByID(id)
}

// DeleteOwned deletes a product with a single conditional write keyed on
// both ID and owner.
func (r *GORMProductRepository) DeleteOwned(id, ownerID string) error {
	res := r.db.Where("id = ? AND created_by = ?", id, ownerID).Delete(&models.Product{})
	if res.Error != nil {
		return fmt.Errorf("failed to delete product %s: %w", id, res.Error)
	}
	if res.RowsAffected == 0 {
		return r.classifyMiss(id)
	}
	return nil
}

// classifyMiss decides whether a zero-row conditional write means the
// product is absent or owned by someone else. This read only picks the
// error to report; it no longer guards the mutation.
func (r *GORMProductRepository) classifyMiss(id string) error {
	var count int64
	if err := r.db.Model(&models.Product{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return fmt.Errorf("failed to check product %s: %w", id, err)
	}
	if count == 0 {
		return ErrProductNotFound
	}
	return ErrNotOwner
}
