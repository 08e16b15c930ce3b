package handlers

import (
	"errors"
	"strconv"

	"lpo-tracker/internal/core/services"
	"lpo-tracker/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// RequisitionHandler handles requisition endpoints
type RequisitionHandler struct {
	requisitionService *services.RequisitionService
}

// NewRequisitionHandler creates a new requisition handler
func NewRequisitionHandler(requisitionService *services.RequisitionService) *RequisitionHandler {
	return &RequisitionHandler{requisitionService: requisitionService}
}

// CreateRequisitionRequest represents requisition creation request body.
// Duplicate product ids are allowed; each occurrence requests one unit.
type CreateRequisitionRequest struct {
	ProductIDs []uint `json:"product_ids"`
	Status     string `json:"status"`
	Notes      string `json:"notes"`
}

// UpdateRequisitionRequest represents a status change request body
type UpdateRequisitionRequest struct {
	Status string `json:"status"`
}

// Create handles requisition creation
// @Summary Create requisition
// @Description Raise a purchase requisition for the authenticated user
// @Tags Requisitions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body CreateRequisitionRequest true "Requisition data"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 401 {object} response.Response
// @Router /requisitions [post]
func (h *RequisitionHandler) Create(c *fiber.Ctx) error {
	userID, ok := c.Locals("userID").(uint)
	if !ok {
		return response.Unauthorized(c, "Unauthorized")
	}

	var req CreateRequisitionRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	input := &services.CreateRequisitionInput{
		ProductIDs: req.ProductIDs,
		Status:     req.Status,
		Notes:      req.Notes,
	}

	id, err := h.requisitionService.Create(c.Context(), userID, input)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidStatusValue):
			return response.BadRequest(c, "Invalid status value")
		default:
			return response.InternalServerError(c, "Failed to create requisition")
		}
	}

	return response.Created(c, "Requisition created successfully", fiber.Map{
		"id": id,
	})
}

// List handles listing requisitions
// @Summary List requisitions
// @Description List requisitions visible to the caller, newest first. Admins see all, other users only their own.
// @Tags Requisitions
// @Produce json
// @Security BearerAuth
// @Param status query string false "Filter by status (pending, approved, rejected)"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 401 {object} response.Response
// @Router /requisitions [get]
func (h *RequisitionHandler) List(c *fiber.Ctx) error {
	userID, ok := c.Locals("userID").(uint)
	if !ok {
		return response.Unauthorized(c, "Unauthorized")
	}
	role, _ := c.Locals("role").(string)

	reqs, err := h.requisitionService.List(c.Context(), userID, role == "admin", c.Query("status"))
	if err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidStatusValue):
			return response.BadRequest(c, "Invalid status filter")
		default:
			return response.InternalServerError(c, "Failed to list requisitions")
		}
	}

	return response.Success(c, "Requisitions retrieved successfully", reqs)
}

// UpdateStatus handles requisition approval decisions
// @Summary Update requisition status
// @Description Set a requisition's status (admin only)
// @Tags Requisitions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Requisition ID"
// @Param body body UpdateRequisitionRequest true "New status"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 403 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /requisitions/{id} [put]
func (h *RequisitionHandler) UpdateStatus(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return response.BadRequest(c, "Invalid requisition ID")
	}

	var req UpdateRequisitionRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	result, err := h.requisitionService.UpdateStatus(c.Context(), uint(id), &services.UpdateRequisitionStatusInput{
		Status: req.Status,
	})
	if err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidStatusValue):
			return response.BadRequest(c, "Invalid status value")
		case errors.Is(err, services.ErrRequisitionNotFound):
			return response.NotFound(c, "Requisition not found")
		default:
			return response.InternalServerError(c, "Failed to update requisition")
		}
	}

	return response.Success(c, "Requisition updated successfully", result)
}

// Recall handles requisition recall
// @Summary Recall requisition
// @Description Delete a requisition that is still pending
// @Tags Requisitions
// @Produce json
// @Security BearerAuth
// @Param id path int true "Requisition ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Failure 409 {object} response.Response
// @Router /requisitions/{id} [delete]
func (h *RequisitionHandler) Recall(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return response.BadRequest(c, "Invalid requisition ID")
	}

	if err := h.requisitionService.Recall(c.Context(), uint(id)); err != nil {
		switch {
		case errors.Is(err, services.ErrRequisitionNotFound):
			return response.NotFound(c, "Requisition not found")
		case errors.Is(err, services.ErrRequisitionNotPending):
			return response.Conflict(c, "Only pending requisitions can be recalled")
		default:
			return response.InternalServerError(c, "Failed to recall requisition")
		}
	}

	return response.Success(c, "Requisition recalled successfully", nil)
}
