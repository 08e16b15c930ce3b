package handlers

import (
	"errors"
	"strconv"

	"lpo-tracker/internal/core/services"
	"lpo-tracker/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// ProductHandler handles product catalog endpoints
type ProductHandler struct {
	catalogService *services.CatalogService
}

// NewProductHandler creates a new product handler
func NewProductHandler(catalogService *services.CatalogService) *ProductHandler {
	return &ProductHandler{catalogService: catalogService}
}

// CreateProductRequest represents product creation request body
type CreateProductRequest struct {
	Name        string   `json:"name"`
	Price       *float64 `json:"price"`
	Description string   `json:"description"`
}

// UpdateProductRequest represents a partial product update
type UpdateProductRequest struct {
	Name        *string  `json:"name"`
	Price       *float64 `json:"price"`
	Description *string  `json:"description"`
}

// Create handles product creation
// @Summary Create product
// @Description Add a product to the catalog
// @Tags Products
// @Accept json
// @Produce json
// @Param body body CreateProductRequest true "Product data"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Router /products [post]
func (h *ProductHandler) Create(c *fiber.Ctx) error {
	var req CreateProductRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	product, err := h.catalogService.CreateProduct(c.Context(), &services.CreateProductInput{
		Name:        req.Name,
		Price:       req.Price,
		Description: req.Description,
	})
	if err != nil {
		switch {
		case errors.Is(err, services.ErrProductFieldsMissing):
			return response.BadRequest(c, "Product name and price are required")
		case errors.Is(err, services.ErrNegativePrice):
			return response.BadRequest(c, "Price must not be negative")
		default:
			return response.InternalServerError(c, "Failed to create product")
		}
	}

	return response.Created(c, "Product created successfully", product)
}

// List handles listing products
// @Summary List products
// @Description List the full product catalog
// @Tags Products
// @Produce json
// @Success 200 {object} response.Response
// @Router /products [get]
func (h *ProductHandler) List(c *fiber.Ctx) error {
	products, err := h.catalogService.ListProducts(c.Context())
	if err != nil {
		return response.InternalServerError(c, "Failed to list products")
	}

	return response.Success(c, "Products retrieved successfully", products)
}

// Update handles partial product updates
// @Summary Update product
// @Description Update a product's name, price or description
// @Tags Products
// @Accept json
// @Produce json
// @Param id path int true "Product ID"
// @Param body body UpdateProductRequest true "Fields to update"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /products/{id} [put]
func (h *ProductHandler) Update(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return response.BadRequest(c, "Invalid product ID")
	}

	var req UpdateProductRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	product, err := h.catalogService.UpdateProduct(c.Context(), uint(id), &services.UpdateProductInput{
		Name:        req.Name,
		Price:       req.Price,
		Description: req.Description,
	})
	if err != nil {
		switch {
		case errors.Is(err, services.ErrProductNotFound):
			return response.NotFound(c, "Product not found")
		case errors.Is(err, services.ErrNegativePrice):
			return response.BadRequest(c, "Price must not be negative")
		default:
			return response.InternalServerError(c, "Failed to update product")
		}
	}

	return response.Success(c, "Product updated successfully", product)
}

// Delete handles product deletion
// @Summary Delete product
// @Description Remove a product unless requisitions or LPOs still reference it
// @Tags Products
// @Produce json
// @Param id path int true "Product ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Failure 409 {object} response.Response
// @Router /products/{id} [delete]
func (h *ProductHandler) Delete(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return response.BadRequest(c, "Invalid product ID")
	}

	if err := h.catalogService.DeleteProduct(c.Context(), uint(id)); err != nil {
		switch {
		case errors.Is(err, services.ErrProductNotFound):
			return response.NotFound(c, "Product not found")
		case errors.Is(err, services.ErrProductReferenced):
			return response.Conflict(c, "Product is referenced by requisitions or LPOs")
		default:
			return response.InternalServerError(c, "Failed to delete product")
		}
	}

	return response.Success(c, "Product deleted successfully", nil)
}
