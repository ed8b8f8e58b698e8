package handlers

import (
	"github.com/gofiber/fiber/v3"
)

// HealthHandler reports service liveness.
type HealthHandler struct{}

// NewHealthHandler creates a new health handler.
func NewHealthHandler() *HealthHandler {
	return &HealthHandler{}
}

// Check handles GET /healthz.
func (h *HealthHandler) Check(c fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "ok"})
}
