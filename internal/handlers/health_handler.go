package handlers

import "github.com/gofiber/fiber/v2"

// HandleHealth reports service liveness. No authentication required.
func HandleHealth(c *fiber.Ctx) error {
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"status":  "healthy",
		"message": "Product catalog API is running",
	})
}
