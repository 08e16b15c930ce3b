package repositories

import (
	"context"

	"lpo-tracker/internal/adapters/persistence/models"

	"gorm.io/gorm"
)

// LPOSortKey values accepted by List. Anything else falls back to
// insertion order.
const (
	LPOSortDateAsc    = "date_asc"
	LPOSortDateDesc   = "date_desc"
	LPOSortStatusAsc  = "status_asc"
	LPOSortStatusDesc = "status_desc"
)

// LPORepository handles LPO data access
type LPORepository struct {
	db *gorm.DB
}

// NewLPORepository creates a new LPO repository
func NewLPORepository(db *gorm.DB) *LPORepository {
	return &LPORepository{db: db}
}

// Create creates a new LPO
func (r *LPORepository) Create(ctx context.Context, lpo *models.LPO) error {
	return r.db.WithContext(ctx).Create(lpo).Error
}

// GetByID gets an LPO by ID
func (r *LPORepository) GetByID(ctx context.Context, id uint) (*models.LPO, error) {
	var lpo models.LPO
	err := r.db.WithContext(ctx).First(&lpo, id).Error
	if err != nil {
		return nil, err
	}
	return &lpo, nil
}

// List lists LPOs. A non-nil ownerID restricts the result to LPOs whose
// underlying requisition belongs to that user (join on ownership).
func (r *LPORepository) List(ctx context.Context, ownerID *uint, sort string) ([]*models.LPO, error) {
	query := r.db.WithContext(ctx).Model(&models.LPO{}).
		Joins("JOIN requisitions ON lpos.requisition_id = requisitions.id")

	if ownerID != nil {
		query = query.Where("requisitions.user_id = ?", *ownerID)
	}

	switch sort {
	case LPOSortDateAsc:
		query = query.Order("lpos.created_at ASC")
	case LPOSortDateDesc:
		query = query.Order("lpos.created_at DESC")
	case LPOSortStatusAsc:
		query = query.Order("lpos.status ASC")
	case LPOSortStatusDesc:
		query = query.Order("lpos.status DESC")
	}
	// unknown sort keys are ignored: primary-key order

	var lpos []*models.LPO
	err := query.Find(&lpos).Error
	return lpos, err
}

// Update updates an LPO
func (r *LPORepository) Update(ctx context.Context, lpo *models.LPO) error {
	return r.db.WithContext(ctx).Save(lpo).Error
}

// CountPendingDelivery counts LPOs that have not been delivered yet.
func (r *LPORepository) CountPendingDelivery(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.LPO{}).
		Where("status <> ?", "delivered").
		Count(&count).Error
	return count, err
}
