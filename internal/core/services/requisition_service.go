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

// Requisition errors
var (
	ErrRequisitionNotFound   = errors.New("requisition not found")
	ErrInvalidStatusValue    = errors.New("invalid status value")
	ErrRequisitionNotPending = errors.New("only pending requisitions can be recalled")
)

// RequisitionService handles requisition business logic
type RequisitionService struct {
	requisitionRepo *repositories.RequisitionRepository
}

// NewRequisitionService creates a new requisition service
func NewRequisitionService(requisitionRepo *repositories.RequisitionRepository) *RequisitionService {
	return &RequisitionService{requisitionRepo: requisitionRepo}
}

// CreateRequisitionInput represents requisition creation input.
// ProductIDs may contain duplicates; each occurrence counts one unit.
type CreateRequisitionInput struct {
	ProductIDs []uint `json:"product_ids"`
	Status     string `json:"status"`
	Notes      string `json:"notes"`
}

// UpdateRequisitionStatusInput represents a status change
type UpdateRequisitionStatusInput struct {
	Status string `json:"status"`
}

// Create records a requisition for the given owner. Repeated product ids
// collapse into a single line item whose quantity is the occurrence count.
func (s *RequisitionService) Create(ctx context.Context, ownerID uint, input *CreateRequisitionInput) (uint, error) {
	status, err := domain.ParseRequisitionStatus(input.Status)
	if err != nil {
		return 0, ErrInvalidStatusValue
	}

	req := &models.Requisition{
		UserID: ownerID,
		Status: status,
		Notes:  input.Notes,
	}

	items := aggregateItems(input.ProductIDs)

	if err := s.requisitionRepo.CreateWithItems(ctx, req, items); err != nil {
		return 0, err
	}

	log.Printf("✅ Requisition created: %d (user %d, %d lines)", req.ID, ownerID, len(items))
	return req.ID, nil
}

// List returns requisitions expanded with owner name and live product
// data. Non-admin callers only see their own.
func (s *RequisitionService) List(ctx context.Context, callerID uint, isAdmin bool, statusFilter string) ([]*models.RequisitionResponse, error) {
	var status *domain.RequisitionStatus
	if statusFilter != "" {
		parsed, err := domain.ParseRequisitionStatus(statusFilter)
		if err != nil {
			return nil, ErrInvalidStatusValue
		}
		status = &parsed
	}

	var ownerID *uint
	if !isAdmin {
		ownerID = &callerID
	}

	reqs, err := s.requisitionRepo.List(ctx, ownerID, status)
	if err != nil {
		return nil, err
	}

	responses := make([]*models.RequisitionResponse, 0, len(reqs))
	for _, r := range reqs {
		responses = append(responses, r.ToResponse())
	}
	return responses, nil
}

// UpdateStatus overwrites the requisition status and returns the
// re-expanded requisition. An absent status leaves the current value
// untouched; the empty-means-pending default applies at creation only.
func (s *RequisitionService) UpdateStatus(ctx context.Context, id uint, input *UpdateRequisitionStatusInput) (*models.RequisitionResponse, error) {
	req, err := s.requisitionRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRequisitionNotFound
		}
		return nil, err
	}

	if input.Status != "" {
		status, err := domain.ParseRequisitionStatus(input.Status)
		if err != nil {
			return nil, ErrInvalidStatusValue
		}
		req.Status = status
	}

	if err := s.requisitionRepo.Update(ctx, req); err != nil {
		return nil, err
	}

	detailed, err := s.requisitionRepo.GetDetailed(ctx, id)
	if err != nil {
		return nil, err
	}

	log.Printf("✅ Requisition %d status set to %s", id, req.Status)
	return detailed.ToResponse(), nil
}

// Recall deletes a requisition and its line items. Only pending
// requisitions can be recalled.
func (s *RequisitionService) Recall(ctx context.Context, id uint) error {
	req, err := s.requisitionRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrRequisitionNotFound
		}
		return err
	}

	if req.Status != domain.RequisitionPending {
		return ErrRequisitionNotPending
	}

	if err := s.requisitionRepo.DeleteWithItems(ctx, id); err != nil {
		return err
	}

	log.Printf("✅ Requisition recalled: %d", id)
	return nil
}

// aggregateItems groups duplicate product ids into quantity counts,
// keeping line order by first appearance.
func aggregateItems(productIDs []uint) []models.RequisitionItem {
	counts := make(map[uint]int, len(productIDs))
	order := make([]uint, 0, len(productIDs))

	for _, id := range productIDs {
		if _, seen := counts[id]; !seen {
			order = append(order, id)
		}
		counts[id]++
	}

	items := make([]models.RequisitionItem, 0, len(order))
	for _, id := range order {
		items = append(items, models.RequisitionItem{
			ProductID: id,
			Quantity:  counts[id],
		})
	}
	return items
}
