package repositories

import (
	"context"

	"lpo-tracker/internal/adapters/persistence/models"

	"gorm.io/gorm"
)

// ProductRepository handles product data access
type ProductRepository struct {
	db *gorm.DB
}

// NewProductRepository creates a new product repository
func NewProductRepository(db *gorm.DB) *ProductRepository {
	return &ProductRepository{db: db}
}

// Create creates a new product
func (r *ProductRepository) Create(ctx context.Context, product *models.Product) error {
	return r.db.WithContext(ctx).Create(product).Error
}

// GetByID gets a product by ID
func (r *ProductRepository) GetByID(ctx context.Context, id uint) (*models.Product, error) {
	var product models.Product
	err := r.db.WithContext(ctx).First(&product, id).Error
	if err != nil {
		return nil, err
	}
	return &product, nil
}

// List lists all products
func (r *ProductRepository) List(ctx context.Context) ([]*models.Product, error) {
	var products []*models.Product
	err := r.db.WithContext(ctx).Order("id ASC").Find(&products).Error
	return products, err
}

// Update updates a product
func (r *ProductRepository) Update(ctx context.Context, product *models.Product) error {
	return r.db.WithContext(ctx).Save(product).Error
}

// Delete deletes a product
func (r *ProductRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&models.Product{}, id).Error
}

// ReferenceCount counts line items (requisition and LPO) that reference
// the product. A non-zero count blocks deletion.
func (r *ProductRepository) ReferenceCount(ctx context.Context, productID uint) (int64, error) {
	var reqItems int64
	if err := r.db.WithContext(ctx).
		Model(&models.RequisitionItem{}).
		Where("product_id = ?", productID).
		Count(&reqItems).Error; err != nil {
		return 0, err
	}

	var lpoItems int64
	if err := r.db.WithContext(ctx).
		Model(&models.LPOItem{}).
		Where("product_id = ?", productID).
		Count(&lpoItems).Error; err != nil {
		return 0, err
	}

	return reqItems + lpoItems, nil
}
