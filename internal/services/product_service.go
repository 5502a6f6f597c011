package services

import (
	"log"

	"katalog/internal/models"
	"katalog/internal/repositories"
	"katalog/pkg/rabbitmq"
)

// ProductService handles business logic related to products. Mutations
// publish lifecycle events to RabbitMQ; publishing is best-effort and never
// fails the request.
type ProductService struct {
	repo     repositories.ProductRepository
	mqClient *rabbitmq.Client
}

// NewProductService creates a new ProductService. mqClient may be nil, in
// which case no events are published.
func NewProductService(repo repositories.ProductRepository, mqClient *rabbitmq.Client) *ProductService {
	return &ProductService{
		repo:     repo,
		mqClient: mqClient,
	}
}

// GetAllProducts retrieves all products, newest first.
func (s *ProductService) GetAllProducts() ([]models.Product, error) {
	return s.repo.GetAll()
}

// GetProductsByOwner retrieves the caller's own products, newest first.
func (s *ProductService) GetProductsByOwner(ownerID string) ([]models.Product, error) {
	return s.repo.GetByOwner(ownerID)
}

// GetProductByID retrieves a single product by its ID.
func (s *ProductService) GetProductByID(id string) (*models.Product, error) {
	return s.repo.GetByID(id)
}

// CreateProduct creates a new product owned by ownerID.
func (s *ProductService) CreateProduct(product *models.Product, ownerID string) error {
	product.ID = "" // the store assigns IDs
	product.CreatedBy = ownerID
	if err := s.repo.Create(product); err != nil {
		return err
	}
	s.publishEvent("product.created", product)
	return nil
}

// UpdateProduct replaces the non-identity fields of a product if, and only
// if, it is owned by ownerID. Returns the updated record.
func (s *ProductService) UpdateProduct(id, ownerID string, product *models.Product) (*models.Product, error) {
	updated, err := s.repo.UpdateOwned(id, ownerID, product)
	if err != nil {
		return nil, err
	}
	s.publishEvent("product.updated", updated)
	return updated, nil
}

// DeleteProduct removes a product if, and only if, it is owned by ownerID.
func (s *ProductService) DeleteProduct(id, ownerID string) error {
	if err := s.repo.DeleteOwned(id, ownerID); err != nil {
		return err
	}
	s.publishEvent("product.deleted", &models.Product{ID: id, CreatedBy: ownerID})
	return nil
}

func (s *ProductService) publishEvent(action string, product *models.Product) {
	if s.mqClient == nil {
		return
	}
	event := map[string]interface{}{
		"action":     action,
		"product_id": product.ID,
		"name":       product.Name,
		"created_by": product.CreatedBy,
	}
	if err := s.mqClient.PublishProductEvent(event); err != nil {
		log.Printf("Failed to publish %s event for product %s: %v", action, product.ID, err)
	}
}
