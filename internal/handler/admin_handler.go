package handler

import (
	"github.com/gofiber/fiber/v2"

	"lide-archiv/internal/config"
	"lide-archiv/internal/middleware"
	"lide-archiv/internal/service/seed"
)

type AdminHandler struct {
	seedService seed.Service
	cfg         *config.Config
}

func NewAdminHandler(seedService seed.Service, cfg *config.Config) *AdminHandler {
	return &AdminHandler{
		seedService: seedService,
		cfg:         cfg,
	}
}

// Seed reloads the sample dataset. Destructive, so it only answers in
// the development environment.
func (h *AdminHandler) Seed(c *fiber.Ctx) error {
	if !h.cfg.IsDevelopment() {
		return middleware.Forbidden("Seeding is only available in development")
	}

	if err := h.seedService.Reseed(c.Context()); err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"message": "Sample data loaded"})
}
