package handlers

import (
	"errors"
	"log"

	"katalog/internal/models"
	"katalog/internal/repositories"
	"katalog/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// ProductHandler handles HTTP requests for products. All routes it registers
// assume the auth middleware has already placed the caller's user ID in the
// request context.
type ProductHandler struct {
	service  *services.ProductService
	validate *validator.Validate
}

// NewProductHandler creates a new ProductHandler.
func NewProductHandler(service *services.ProductService) *ProductHandler {
	return &ProductHandler{
		service:  service,
		validate: validator.New(),
	}
}

// RegisterRoutes registers the product routes with the Fiber app.
// "/user/me" must be registered before "/:id" so it is not captured as an ID.
func (h *ProductHandler) RegisterRoutes(router fiber.Router) {
	productRoutes := router.Group("/products")
	productRoutes.Get("/", h.HandleListProducts)
	productRoutes.Get("/user/me", h.HandleListMine)
	productRoutes.Get("/:id", h.HandleGetProduct)
	productRoutes.Post("/", h.HandleCreateProduct)
	productRoutes.Put("/:id", h.HandleUpdateProduct)
	productRoutes.Delete("/:id", h.HandleDeleteProduct)
}

// HandleListProducts returns all products, newest first.
func (h *ProductHandler) HandleListProducts(c *fiber.Ctx) error {
	products, err := h.service.GetAllProducts()
	if err != nil {
		log.Printf("Error getting all products: %v", err)
		return serverError(c)
	}
	return c.JSON(fiber.Map{
		"products": products,
	})
}

// HandleListMine returns the caller's own products, newest first.
func (h *ProductHandler) HandleListMine(c *fiber.Ctx) error {
	userID := callerID(c)
	products, err := h.service.GetProductsByOwner(userID)
	if err != nil {
		log.Printf("Error getting products for user %s: %v", userID, err)
		return serverError(c)
	}
	return c.JSON(fiber.Map{
		"products": products,
	})
}

// HandleGetProduct returns a single product by its ID.
func (h *ProductHandler) HandleGetProduct(c *fiber.Ctx) error {
	productID := c.Params("id")
	product, err := h.service.GetProductByID(productID)
	if err != nil {
		if errors.Is(err, repositories.ErrProductNotFound) {
			return notFound(c)
		}
		log.Printf("Error getting product %s: %v", productID, err)
		return serverError(c)
	}
	return c.JSON(fiber.Map{
		"product": product,
	})
}

// HandleCreateProduct creates a product owned by the caller.
func (h *ProductHandler) HandleCreateProduct(c *fiber.Ctx) error {
	var product models.Product
	if err := c.BodyParser(&product); err != nil {
		log.Printf("Error parsing create product request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
		})
	}

	// Identity fields come from the server, not the request.
	product.ID = ""
	product.CreatedBy = ""

	if err := h.validate.Struct(product); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Validation failed",
			"errors":  validationErrorMap(err),
		})
	}

	if err := h.service.CreateProduct(&product, callerID(c)); err != nil {
		log.Printf("Error creating product: %v", err)
		return serverError(c)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Product created successfully",
		"product": product,
	})
}

// HandleUpdateProduct replaces the non-identity fields of a product the
// caller owns.
func (h *ProductHandler) HandleUpdateProduct(c *fiber.Ctx) error {
	productID := c.Params("id")

	var product models.Product
	if err := c.BodyParser(&product); err != nil {
		log.Printf("Error parsing update product request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
		})
	}

	product.ID = ""
	product.CreatedBy = ""

	if err := h.validate.Struct(product); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Validation failed",
			"errors":  validationErrorMap(err),
		})
	}

	updated, err := h.service.UpdateProduct(productID, callerID(c), &product)
	if err != nil {
		switch {
		case errors.Is(err, repositories.ErrProductNotFound):
			return notFound(c)
		case errors.Is(err, repositories.ErrNotOwner):
			return forbidden(c)
		}
		log.Printf("Error updating product %s: %v", productID, err)
		return serverError(c)
	}

	return c.JSON(fiber.Map{
		"message": "Product updated successfully",
		"product": updated,
	})
}

// HandleDeleteProduct removes a product the caller owns.
func (h *ProductHandler) HandleDeleteProduct(c *fiber.Ctx) error {
	productID := c.Params("id")

	if err := h.service.DeleteProduct(productID, callerID(c)); err != nil {
		switch {
		case errors.Is(err, repositories.ErrProductNotFound):
			return notFound(c)
		case errors.Is(err, repositories.ErrNotOwner):
			return forbidden(c)
		}
		log.Printf("Error deleting product %s: %v", productID, err)
		return serverError(c)
	}

	return c.JSON(fiber.Map{
		"message": "Product deleted successfully",
	})
}

// callerID returns the authenticated user's ID placed in the context by the
// auth middleware.
func callerID(c *fiber.Ctx) string {
	userID, _ := c.Locals("user_id").(string)
	return userID
}

func notFound(c *fiber.Ctx) error {
	return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
		"message": "Product not found",
	})
}

func forbidden(c *fiber.Ctx) error {
	return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
		"message": "Not authorized to modify this product",
	})
}

func serverError(c *fiber.Ctx) error {
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"message": "Server error",
	})
}
