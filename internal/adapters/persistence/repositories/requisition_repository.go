package repositories

import (
	"context"

	"lpo-tracker/internal/adapters/persistence/models"
	"lpo-tracker/internal/core/domain"

	"gorm.io/gorm"
)

// RequisitionRepository handles requisition data access
type RequisitionRepository struct {
	db *gorm.DB
}

// NewRequisitionRepository creates a new requisition repository
func NewRequisitionRepository(db *gorm.DB) *RequisitionRepository {
	return &RequisitionRepository{db: db}
}

// CreateWithItems persists a requisition header and its aggregated line
// items as a single unit. Either everything commits or nothing does.
func (r *RequisitionRepository) CreateWithItems(ctx context.Context, req *models.Requisition, items []models.RequisitionItem) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(req).Error; err != nil {
			return err
		}
		for i := range items {
			items[i].RequisitionID = req.ID
			if err := tx.Create(&items[i]).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

// GetByID gets a requisition by ID
func (r *RequisitionRepository) GetByID(ctx context.Context, id uint) (*models.Requisition, error) {
	var req models.Requisition
	err := r.db.WithContext(ctx).First(&req, id).Error
	if err != nil {
		return nil, err
	}
	return &req, nil
}

// GetDetailed gets a requisition with its owner and line items expanded
// with current product data.
func (r *RequisitionRepository) GetDetailed(ctx context.Context, id uint) (*models.Requisition, error) {
	var req models.Requisition
	err := r.db.WithContext(ctx).
		Preload("User").
		Preload("Items.Product").
		First(&req, id).Error
	if err != nil {
		return nil, err
	}
	return &req, nil
}

// List lists requisitions ordered most recent first. A non-nil userID
// restricts the result to that owner; a non-nil status filters by status.
func (r *RequisitionRepository) List(ctx context.Context, userID *uint, status *domain.RequisitionStatus) ([]*models.Requisition, error) {
	query := r.db.WithContext(ctx).
		Preload("User").
		Preload("Items.Product")

	if userID != nil {
		query = query.Where("user_id = ?", *userID)
	}
	if status != nil {
		query = query.Where("status = ?", *status)
	}

	var reqs []*models.Requisition
	err := query.Order("created_at DESC").Find(&reqs).Error
	return reqs, err
}

// Update updates a requisition
func (r *RequisitionRepository) Update(ctx context.Context, req *models.Requisition) error {
	return r.db.WithContext(ctx).Save(req).Error
}

// CountPending counts requisitions still awaiting a decision
func (r *RequisitionRepository) CountPending(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Requisition{}).
		Where("status = ?", domain.RequisitionPending).
		Count(&count).Error
	return count, err
}

// DeleteWithItems removes the line items first and then the header,
// as one logical unit.
func (r *RequisitionRepository) DeleteWithItems(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("requisition_id = ?", id).Delete(&models.RequisitionItem{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Requisition{}, id).Error
	})
}
