package services

import (
	"context"
	"errors"
	"log"

	"lpo-tracker/internal/adapters/persistence/models"
	"lpo-tracker/internal/adapters/persistence/repositories"

	"gorm.io/gorm"
)

// Catalog errors
var (
	ErrProductNotFound      = errors.New("product not found")
	ErrProductFieldsMissing = errors.New("product name and price are required")
	ErrNegativePrice        = errors.New("price must not be negative")
	ErrProductReferenced    = errors.New("product is referenced by requisitions or LPOs")

	ErrSupplierNotFound     = errors.New("supplier not found")
	ErrSupplierNameTooShort = errors.New("supplier name must be at least 2 characters")
	ErrInvalidContactEmail  = errors.New("invalid contact email")
	ErrInvalidContactPhone  = errors.New("contact phone must be at least 10 digits")
)

// CatalogService handles product and supplier management
type CatalogService struct {
	productRepo  *repositories.ProductRepository
	supplierRepo *repositories.SupplierRepository
}

// NewCatalogService creates a new catalog service
func NewCatalogService(productRepo *repositories.ProductRepository, supplierRepo *repositories.SupplierRepository) *CatalogService {
	return &CatalogService{
		productRepo:  productRepo,
		supplierRepo: supplierRepo,
	}
}

// CreateProductInput represents product creation input
type CreateProductInput struct {
	Name        string   `json:"name"`
	Price       *float64 `json:"price"`
	Description string   `json:"description"`
}

// UpdateProductInput represents a partial product update
type UpdateProductInput struct {
	Name        *string  `json:"name"`
	Price       *float64 `json:"price"`
	Description *string  `json:"description"`
}

// CreateProduct adds a product to the catalog
func (s *CatalogService) CreateProduct(ctx context.Context, input *CreateProductInput) (*models.Product, error) {
	if input.Name == "" || input.Price == nil {
		return nil, ErrProductFieldsMissing
	}
	if *input.Price < 0 {
		return nil, ErrNegativePrice
	}

	product := &models.Product{
		Name:        input.Name,
		Price:       *input.Price,
		Description: input.Description,
	}

	if err := s.productRepo.Create(ctx, product); err != nil {
		return nil, err
	}

	log.Printf("✅ Product created: %s", product.Name)
	return product, nil
}

// ListProducts returns the full catalog
func (s *CatalogService) ListProducts(ctx context.Context) ([]*models.Product, error) {
	return s.productRepo.List(ctx)
}

// GetProduct returns a single product
func (s *CatalogService) GetProduct(ctx context.Context, id uint) (*models.Product, error) {
	product, err := s.productRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, err
	}
	return product, nil
}

// UpdateProduct applies a partial update to a product
func (s *CatalogService) UpdateProduct(ctx context.Context, id uint, input *UpdateProductInput) (*models.Product, error) {
	product, err := s.productRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, err
	}

	if input.Name != nil {
		product.Name = *input.Name
	}
	if input.Price != nil {
		if *input.Price < 0 {
			return nil, ErrNegativePrice
		}
		product.Price = *input.Price
	}
	if input.Description != nil {
		product.Description = *input.Description
	}

	if err := s.productRepo.Update(ctx, product); err != nil {
		return nil, err
	}
	return product, nil
}

// DeleteProduct removes a product unless any requisition or LPO line
// item still references it.
func (s *CatalogService) DeleteProduct(ctx context.Context, id uint) error {
	if _, err := s.productRepo.GetByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrProductNotFound
		}
		return err
	}

	refs, err := s.productRepo.ReferenceCount(ctx, id)
	if err != nil {
		return err
	}
	if refs > 0 {
		return ErrProductReferenced
	}

	if err := s.productRepo.Delete(ctx, id); err != nil {
		return err
	}

	log.Printf("✅ Product deleted: %d", id)
	return nil
}

// CreateSupplierInput represents supplier creation input
type CreateSupplierInput struct {
	Name         string `json:"name"`
	ContactName  string `json:"contact_name"`
	ContactEmail string `json:"contact_email"`
	ContactPhone string `json:"contact_phone"`
	Address      string `json:"address"`
}

// UpdateSupplierInput represents a partial supplier update
type UpdateSupplierInput struct {
	Name         *string `json:"name"`
	ContactName  *string `json:"contact_name"`
	ContactEmail *string `json:"contact_email"`
	ContactPhone *string `json:"contact_phone"`
	Address      *string `json:"address"`
}

// CreateSupplier registers a supplier
func (s *CatalogService) CreateSupplier(ctx context.Context, input *CreateSupplierInput) (*models.Supplier, error) {
	if len(input.Name) < 2 {
		return nil, ErrSupplierNameTooShort
	}
	if input.ContactEmail != "" && !isValidEmail(input.ContactEmail) {
		return nil, ErrInvalidContactEmail
	}
	if input.ContactPhone != "" && len(input.ContactPhone) < 10 {
		return nil, ErrInvalidContactPhone
	}

	supplier := &models.Supplier{
		Name:         input.Name,
		ContactName:  input.ContactName,
		ContactEmail: input.ContactEmail,
		ContactPhone: input.ContactPhone,
		Address:      input.Address,
	}

	if err := s.supplierRepo.Create(ctx, supplier); err != nil {
		return nil, err
	}

	log.Printf("✅ Supplier created: %s", supplier.Name)
	return supplier, nil
}

// ListSuppliers returns all suppliers
func (s *CatalogService) ListSuppliers(ctx context.Context) ([]*models.Supplier, error) {
	return s.supplierRepo.List(ctx)
}

// GetSupplier returns a single supplier
func (s *CatalogService) GetSupplier(ctx context.Context, id uint) (*models.Supplier, error) {
	supplier, err := s.supplierRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSupplierNotFound
		}
		return nil, err
	}
	return supplier, nil
}

// UpdateSupplier applies a partial update to a supplier
func (s *CatalogService) UpdateSupplier(ctx context.Context, id uint, input *UpdateSupplierInput) (*models.Supplier, error) {
	supplier, err := s.supplierRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSupplierNotFound
		}
		return nil, err
	}

	if input.Name != nil {
		if len(*input.Name) < 2 {
			return nil, ErrSupplierNameTooShort
		}
		supplier.Name = *input.Name
	}
	if input.ContactName != nil {
		supplier.ContactName = *input.ContactName
	}
	if input.ContactEmail != nil {
		if *input.ContactEmail != "" && !isValidEmail(*input.ContactEmail) {
			return nil, ErrInvalidContactEmail
		}
		supplier.ContactEmail = *input.ContactEmail
	}
	if input.ContactPhone != nil {
		if *input.ContactPhone != "" && len(*input.ContactPhone) < 10 {
			return nil, ErrInvalidContactPhone
		}
		supplier.ContactPhone = *input.ContactPhone
	}
	if input.Address != nil {
		supplier.Address = *input.Address
	}

	if err := s.supplierRepo.Update(ctx, supplier); err != nil {
		return nil, err
	}
	return supplier, nil
}

// DeleteSupplier removes a supplier
func (s *CatalogService) DeleteSupplier(ctx context.Context, id uint) error {
	if _, err := s.supplierRepo.GetByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrSupplierNotFound
		}
		return err
	}

	if err := s.supplierRepo.Delete(ctx, id); err != nil {
		return err
	}

	log.Printf("✅ Supplier deleted: %d", id)
	return nil
}
