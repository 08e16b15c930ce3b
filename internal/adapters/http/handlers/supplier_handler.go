package handlers

import (
	"errors"
	"strconv"

	"lpo-tracker/internal/core/services"
	"lpo-tracker/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// SupplierHandler handles supplier endpoints
type SupplierHandler struct {
	catalogService *services.CatalogService
}

// NewSupplierHandler creates a new supplier handler
func NewSupplierHandler(catalogService *services.CatalogService) *SupplierHandler {
	return &SupplierHandler{catalogService: catalogService}
}

// CreateSupplierRequest represents supplier creation request body
type CreateSupplierRequest struct {
	Name         string `json:"name"`
	ContactName  string `json:"contact_name"`
	ContactEmail string `json:"contact_email"`
	ContactPhone string `json:"contact_phone"`
	Address      string `json:"address"`
}

// UpdateSupplierRequest represents a partial supplier update
type UpdateSupplierRequest struct {
	Name         *string `json:"name"`
	ContactName  *string `json:"contact_name"`
	ContactEmail *string `json:"contact_email"`
	ContactPhone *string `json:"contact_phone"`
	Address      *string `json:"address"`
}

// Create handles supplier registration
// @Summary Create supplier
// @Description Register a supplier
// @Tags Suppliers
// @Accept json
// @Produce json
// @Param body body CreateSupplierRequest true "Supplier data"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Router /suppliers [post]
func (h *SupplierHandler) Create(c *fiber.Ctx) error {
	var req CreateSupplierRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	supplier, err := h.catalogService.CreateSupplier(c.Context(), &services.CreateSupplierInput{
		Name:         req.Name,
		ContactName:  req.ContactName,
		ContactEmail: req.ContactEmail,
		ContactPhone: req.ContactPhone,
		Address:      req.Address,
	})
	if err != nil {
		return supplierErrorResponse(c, err, "Failed to create supplier")
	}

	return response.Created(c, "Supplier created successfully", supplier)
}

// List handles listing suppliers
// @Summary List suppliers
// @Description List all registered suppliers
// @Tags Suppliers
// @Produce json
// @Success 200 {object} response.Response
// @Router /suppliers [get]
func (h *SupplierHandler) List(c *fiber.Ctx) error {
	suppliers, err := h.catalogService.ListSuppliers(c.Context())
	if err != nil {
		return response.InternalServerError(c, "Failed to list suppliers")
	}

	return response.Success(c, "Suppliers retrieved successfully", suppliers)
}

// Update handles partial supplier updates
// @Summary Update supplier
// @Description Update a supplier's details
// @Tags Suppliers
// @Accept json
// @Produce json
// @Param id path int true "Supplier ID"
// @Param body body UpdateSupplierRequest true "Fields to update"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /suppliers/{id} [put]
func (h *SupplierHandler) Update(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return response.BadRequest(c, "Invalid supplier ID")
	}

	var req UpdateSupplierRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	supplier, err := h.catalogService.UpdateSupplier(c.Context(), uint(id), &services.UpdateSupplierInput{
		Name:         req.Name,
		ContactName:  req.ContactName,
		ContactEmail: req.ContactEmail,
		ContactPhone: req.ContactPhone,
		Address:      req.Address,
	})
	if err != nil {
		return supplierErrorResponse(c, err, "Failed to update supplier")
	}

	return response.Success(c, "Supplier updated successfully", supplier)
}

// Delete handles supplier removal
// @Summary Delete supplier
// @Description Remove a supplier
// @Tags Suppliers
// @Produce json
// @Param id path int true "Supplier ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /suppliers/{id} [delete]
func (h *SupplierHandler) Delete(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return response.BadRequest(c, "Invalid supplier ID")
	}

	if err := h.catalogService.DeleteSupplier(c.Context(), uint(id)); err != nil {
		switch {
		case errors.Is(err, services.ErrSupplierNotFound):
			return response.NotFound(c, "Supplier not found")
		default:
			return response.InternalServerError(c, "Failed to delete supplier")
		}
	}

	return response.Success(c, "Supplier deleted successfully", nil)
}

func supplierErrorResponse(c *fiber.Ctx, err error, fallback string) error {
	switch {
	case errors.Is(err, services.ErrSupplierNotFound):
		return response.NotFound(c, "Supplier not found")
	case errors.Is(err, services.ErrSupplierNameTooShort):
		return response.BadRequest(c, "Supplier name must be at least 2 characters")
	case errors.Is(err, services.ErrInvalidContactEmail):
		return response.BadRequest(c, "Invalid contact email")
	case errors.Is(err, services.ErrInvalidContactPhone):
		return response.BadRequest(c, "Contact phone must be at least 10 digits")
	default:
		return response.InternalServerError(c, fallback)
	}
}
