package handlers

import (
	"lpo-tracker/internal/config"
	"lpo-tracker/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// SeedHandler populates the database with demo data
type SeedHandler struct {
	db *gorm.DB
}

// NewSeedHandler creates a new seed handler
func NewSeedHandler(db *gorm.DB) *SeedHandler {
	return &SeedHandler{db: db}
}

// Seed handles demo data seeding
// @Summary Seed demo data
// @Description Populate demo users, products, suppliers and a sample workflow
// @Tags Seed
// @Produce json
// @Success 201 {object} response.Response
// @Failure 500 {object} response.Response
// @Router /seed [post]
func (h *SeedHandler) Seed(c *fiber.Ctx) error {
	if err := config.SeedDemoData(h.db); err != nil {
		return response.InternalServerError(c, "Failed to seed demo data")
	}

	return response.Created(c, "Demo data seeded successfully", nil)
}
