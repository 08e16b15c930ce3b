package handlers

import (
	"errors"
	"strconv"

	"lpo-tracker/internal/core/services"
	"lpo-tracker/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// LPOHandler handles local purchase order endpoints
type LPOHandler struct {
	lpoService *services.LPOService
}

// NewLPOHandler creates a new LPO handler
func NewLPOHandler(lpoService *services.LPOService) *LPOHandler {
	return &LPOHandler{lpoService: lpoService}
}

// CreateLPORequest represents LPO creation request body
type CreateLPORequest struct {
	RequisitionID uint    `json:"requisition_id"`
	SupplierID    uint    `json:"supplier_id"`
	Status        string  `json:"status"`
	TotalValue    float64 `json:"total_value"`
}

// UpdateLPORequest represents a delivery status change request body
type UpdateLPORequest struct {
	Status string `json:"status"`
}

// Create handles LPO creation
// @Summary Create LPO
// @Description Raise a local purchase order against an approved requisition
// @Tags LPOs
// @Accept json
// @Produce json
// @Param body body CreateLPORequest true "LPO data"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 409 {object} response.Response
// @Router /lpos [post]
func (h *LPOHandler) Create(c *fiber.Ctx) error {
	var req CreateLPORequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	input := &services.CreateLPOInput{
		RequisitionID: req.RequisitionID,
		SupplierID:    req.SupplierID,
		Status:        req.Status,
		TotalValue:    req.TotalValue,
	}

	id, err := h.lpoService.Create(c.Context(), input)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrRequisitionNotApproved):
			return response.Conflict(c, "Requisition must be approved to create LPO")
		case errors.Is(err, services.ErrInvalidStatusValue):
			return response.BadRequest(c, "Invalid status value")
		case errors.Is(err, services.ErrNegativeTotalValue):
			return response.BadRequest(c, "Total value must not be negative")
		default:
			return response.InternalServerError(c, "Failed to create LPO")
		}
	}

	return response.Created(c, "LPO created successfully", fiber.Map{
		"id": id,
	})
}

// List handles listing LPOs
// @Summary List LPOs
// @Description List LPOs visible to the caller. Admins see all, other users only LPOs raised against their own requisitions.
// @Tags LPOs
// @Produce json
// @Security BearerAuth
// @Param sort query string false "Sort order (date_asc, date_desc, status_asc, status_desc)"
// @Success 200 {object} response.Response
// @Failure 401 {object} response.Response
// @Router /lpos [get]
func (h *LPOHandler) List(c *fiber.Ctx) error {
	userID, ok := c.Locals("userID").(uint)
	if !ok {
		return response.Unauthorized(c, "Unauthorized")
	}
	role, _ := c.Locals("role").(string)

	lpos, err := h.lpoService.List(c.Context(), userID, role == "admin", c.Query("sort"))
	if err != nil {
		return response.InternalServerError(c, "Failed to list LPOs")
	}

	return response.Success(c, "LPOs retrieved successfully", lpos)
}

// Get handles fetching a single LPO
// @Summary Get LPO
// @Description Get a single LPO by ID
// @Tags LPOs
// @Produce json
// @Param id path int true "LPO ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /lpos/{id} [get]
func (h *LPOHandler) Get(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return response.BadRequest(c, "Invalid LPO ID")
	}

	lpo, err := h.lpoService.GetByID(c.Context(), uint(id))
	if err != nil {
		switch {
		case errors.Is(err, services.ErrLPONotFound):
			return response.NotFound(c, "LPO not found")
		default:
			return response.InternalServerError(c, "Failed to get LPO")
		}
	}

	return response.Success(c, "LPO retrieved successfully", lpo)
}

// UpdateStatus handles delivery status updates
// @Summary Update LPO status
// @Description Set an LPO's delivery status
// @Tags LPOs
// @Accept json
// @Produce json
// @Param id path int true "LPO ID"
// @Param body body UpdateLPORequest true "New status"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /lpos/{id} [put]
func (h *LPOHandler) UpdateStatus(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return response.BadRequest(c, "Invalid LPO ID")
	}

	var req UpdateLPORequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	lpo, err := h.lpoService.UpdateStatus(c.Context(), uint(id), &services.UpdateLPOStatusInput{
		Status: req.Status,
	})
	if err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidStatusValue):
			return response.BadRequest(c, "Invalid status value")
		case errors.Is(err, services.ErrLPONotFound):
			return response.NotFound(c, "LPO not found")
		default:
			return response.InternalServerError(c, "Failed to update LPO")
		}
	}

	return response.Success(c, "LPO updated successfully", lpo)
}
