package services

import (
	"context"
	"errors"
	"log"

	"lpo-tracker/internal/adapters/persistence/models"
	"lpo-tracker/internal/adapters/persistence/repositories"
	"lpo-tracker/internal/core/domain"

	"gorm.io/gorm"
)

// LPO errors
var (
	ErrLPONotFound            = errors.New("lpo not found")
	ErrRequisitionNotApproved = errors.New("requisition must be approved to create LPO")
	ErrNegativeTotalValue     = errors.New("total_value must not be negative")
)

// LPOService handles local purchase order business logic
type LPOService struct {
	lpoRepo         *repositories.LPORepository
	requisitionRepo *repositories.RequisitionRepository
}

// NewLPOService creates a new LPO service
func NewLPOService(lpoRepo *repositories.LPORepository, requisitionRepo *repositories.RequisitionRepository) *LPOService {
	return &LPOService{
		lpoRepo:         lpoRepo,
		requisitionRepo: requisitionRepo,
	}
}

// CreateLPOInput represents LPO creation input
type CreateLPOInput struct {
	RequisitionID uint    `json:"requisition_id"`
	SupplierID    uint    `json:"supplier_id"`
	Status        string  `json:"status"`
	TotalValue    float64 `json:"total_value"`
}

// UpdateLPOStatusInput represents a delivery status change
type UpdateLPOStatusInput struct {
	Status string `json:"status"`
}

// Create raises an LPO against an approved requisition
func (s *LPOService) Create(ctx context.Context, input *CreateLPOInput) (uint, error) {
	req, err := s.requisitionRepo.GetByID(ctx, input.RequisitionID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, ErrRequisitionNotApproved
		}
		return 0, err
	}
	if req.Status != domain.RequisitionApproved {
		return 0, ErrRequisitionNotApproved
	}

	status, err := domain.ParseLPOStatus(input.Status)
	if err != nil {
		return 0, ErrInvalidStatusValue
	}

	if input.TotalValue < 0 {
		return 0, ErrNegativeTotalValue
	}

	lpo := &models.LPO{
		RequisitionID: input.RequisitionID,
		SupplierID:    input.SupplierID,
		Status:        status,
		TotalValue:    input.TotalValue,
	}

	if err := s.lpoRepo.Create(ctx, lpo); err != nil {
		return 0, err
	}

	log.Printf("✅ LPO created: %d (requisition %d)", lpo.ID, input.RequisitionID)
	return lpo.ID, nil
}

// GetByID returns a single LPO
func (s *LPOService) GetByID(ctx context.Context, id uint) (*models.LPOResponse, error) {
	lpo, err := s.lpoRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrLPONotFound
		}
		return nil, err
	}
	return lpo.ToResponse(), nil
}

// List returns LPOs. Non-admin callers only see LPOs raised against
// their own requisitions. Unknown sort values fall back to id order.
func (s *LPOService) List(ctx context.Context, callerID uint, isAdmin bool, sort string) ([]*models.LPOResponse, error) {
	var ownerID *uint
	if !isAdmin {
		ownerID = &callerID
	}

	lpos, err := s.lpoRepo.List(ctx, ownerID, sort)
	if err != nil {
		return nil, err
	}

	responses := make([]*models.LPOResponse, 0, len(lpos))
	for _, l := range lpos {
		responses = append(responses, l.ToResponse())
	}
	return responses, nil
}

// UpdateStatus overwrites the LPO delivery status. An absent status
// leaves the current value untouched; the empty-means-pending default
// applies at creation only.
func (s *LPOService) UpdateStatus(ctx context.Context, id uint, input *UpdateLPOStatusInput) (*models.LPOResponse, error) {
	lpo, err := s.lpoRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrLPONotFound
		}
		return nil, err
	}

	if input.Status != "" {
		status, err := domain.ParseLPOStatus(input.Status)
		if err != nil {
			return nil, ErrInvalidStatusValue
		}
		lpo.Status = status
	}

	if err := s.lpoRepo.Update(ctx, lpo); err != nil {
		return nil, err
	}

	log.Printf("✅ LPO %d status set to %s", id, lpo.Status)
	return lpo.ToResponse(), nil
}
