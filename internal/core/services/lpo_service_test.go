package services

import (
	"context"
	"testing"

	"lpo-tracker/internal/adapters/persistence/models"
	"lpo-tracker/internal/adapters/persistence/repositories"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLPOCreateRequiresApprovedRequisition(t *testing.T) {
	db := setupTestDB(t)
	reqSvc := newRequisitionService(db)
	lpoSvc := newLPOService(db)
	user := seedUser(t, db, "Alice", "alice@example.com", "user")
	supplier := seedSupplier(t, db, "Acme Supplies")

	pending, err := reqSvc.Create(context.Background(), user.ID, &CreateRequisitionInput{})
	require.NoError(t, err)

	_, err = lpoSvc.Create(context.Background(), &CreateLPOInput{
		RequisitionID: pending,
		SupplierID:    supplier.ID,
	})
	assert.ErrorIs(t, err, ErrRequisitionNotApproved)

	_, err = reqSvc.UpdateStatus(context.Background(), pending, &UpdateRequisitionStatusInput{Status: "rejected"})
	require.NoError(t, err)

	_, err = lpoSvc.Create(context.Background(), &CreateLPOInput{
		RequisitionID: pending,
		SupplierID:    supplier.ID,
	})
	assert.ErrorIs(t, err, ErrRequisitionNotApproved)

	_, err = reqSvc.UpdateStatus(context.Background(), pending, &UpdateRequisitionStatusInput{Status: "approved"})
	require.NoError(t, err)

	id, err := lpoSvc.Create(context.Background(), &CreateLPOInput{
		RequisitionID: pending,
		SupplierID:    supplier.ID,
		TotalValue:    120.50,
	})
	require.NoError(t, err)
	assert.NotZero(t, id)
}

func TestLPOCreateUnknownRequisition(t *testing.T) {
	db := setupTestDB(t)
	lpoSvc := newLPOService(db)

	_, err := lpoSvc.Create(context.Background(), &CreateLPOInput{RequisitionID: 999})
	assert.ErrorIs(t, err, ErrRequisitionNotApproved)
}

func TestLPOCreateRejectsBadInput(t *testing.T) {
	db := setupTestDB(t)
	reqSvc := newRequisitionService(db)
	lpoSvc := newLPOService(db)
	user := seedUser(t, db, "Alice", "alice@example.com", "user")
	supplier := seedSupplier(t, db, "Acme Supplies")

	reqID, err := reqSvc.Create(context.Background(), user.ID, &CreateRequisitionInput{})
	require.NoError(t, err)
	_, err = reqSvc.UpdateStatus(context.Background(), reqID, &UpdateRequisitionStatusInput{Status: "approved"})
	require.NoError(t, err)

	_, err = lpoSvc.Create(context.Background(), &CreateLPOInput{
		RequisitionID: reqID,
		SupplierID:    supplier.ID,
		Status:        "en_route",
	})
	assert.ErrorIs(t, err, ErrInvalidStatusValue)

	_, err = lpoSvc.Create(context.Background(), &CreateLPOInput{
		RequisitionID: reqID,
		SupplierID:    supplier.ID,
		TotalValue:    -5,
	})
	assert.ErrorIs(t, err, ErrNegativeTotalValue)
}

func TestLPOListOwnershipAndSort(t *testing.T) {
	db := setupTestDB(t)
	reqSvc := newRequisitionService(db)
	lpoSvc := newLPOService(db)
	alice := seedUser(t, db, "Alice", "alice@example.com", "user")
	bob := seedUser(t, db, "Bob", "bob@example.com", "user")
	supplier := seedSupplier(t, db, "Acme Supplies")

	raise := func(owner uint, status string) uint {
		reqID, err := reqSvc.Create(context.Background(), owner, &CreateRequisitionInput{})
		require.NoError(t, err)
		_, err = reqSvc.UpdateStatus(context.Background(), reqID, &UpdateRequisitionStatusInput{Status: "approved"})
		require.NoError(t, err)

		id, err := lpoSvc.Create(context.Background(), &CreateLPOInput{
			RequisitionID: reqID,
			SupplierID:    supplier.ID,
			Status:        status,
		})
		require.NoError(t, err)
		return id
	}

	aliceLPO := raise(alice.ID, "pending")
	raise(bob.ID, "delivered")

	own, err := lpoSvc.List(context.Background(), alice.ID, false, "")
	require.NoError(t, err)
	require.Len(t, own, 1)
	assert.Equal(t, aliceLPO, own[0].ID)

	all, err := lpoSvc.List(context.Background(), alice.ID, true, "")
	require.NoError(t, err)
	assert.Len(t, all, 2)

	byStatus, err := lpoSvc.List(context.Background(), alice.ID, true, repositories.LPOSortStatusAsc)
	require.NoError(t, err)
	require.Len(t, byStatus, 2)
	assert.Equal(t, "delivered", byStatus[0].Status)
	assert.Equal(t, "pending", byStatus[1].Status)

	byStatusDesc, err := lpoSvc.List(context.Background(), alice.ID, true, repositories.LPOSortStatusDesc)
	require.NoError(t, err)
	require.Len(t, byStatusDesc, 2)
	assert.Equal(t, "pending", byStatusDesc[0].Status)

	// Unknown sort values fall back to primary key order
	fallback, err := lpoSvc.List(context.Background(), alice.ID, true, "price_asc")
	require.NoError(t, err)
	require.Len(t, fallback, 2)
	assert.Equal(t, aliceLPO, fallback[0].ID)
}

func TestLPOUpdateStatus(t *testing.T) {
	db := setupTestDB(t)
	reqSvc := newRequisitionService(db)
	lpoSvc := newLPOService(db)
	user := seedUser(t, db, "Alice", "alice@example.com", "user")
	supplier := seedSupplier(t, db, "Acme Supplies")

	reqID, err := reqSvc.Create(context.Background(), user.ID, &CreateRequisitionInput{})
	require.NoError(t, err)
	_, err = reqSvc.UpdateStatus(context.Background(), reqID, &UpdateRequisitionStatusInput{Status: "approved"})
	require.NoError(t, err)

	id, err := lpoSvc.Create(context.Background(), &CreateLPOInput{
		RequisitionID: reqID,
		SupplierID:    supplier.ID,
	})
	require.NoError(t, err)

	updated, err := lpoSvc.UpdateStatus(context.Background(), id, &UpdateLPOStatusInput{Status: "delivered"})
	require.NoError(t, err)
	assert.Equal(t, "delivered", updated.Status)

	var stored models.LPO
	require.NoError(t, db.First(&stored, id).Error)
	assert.Equal(t, "delivered", stored.Status.String())

	_, err = lpoSvc.UpdateStatus(context.Background(), id, &UpdateLPOStatusInput{Status: "lost"})
	assert.ErrorIs(t, err, ErrInvalidStatusValue)

	_, err = lpoSvc.UpdateStatus(context.Background(), 999, &UpdateLPOStatusInput{Status: "delivered"})
	assert.ErrorIs(t, err, ErrLPONotFound)
}

func TestLPOUpdateStatusEmptyLeavesStatusUnchanged(t *testing.T) {
	db := setupTestDB(t)
	reqSvc := newRequisitionService(db)
	lpoSvc := newLPOService(db)
	user := seedUser(t, db, "Alice", "alice@example.com", "user")
	supplier := seedSupplier(t, db, "Acme Supplies")

	reqID, err := reqSvc.Create(context.Background(), user.ID, &CreateRequisitionInput{})
	require.NoError(t, err)
	_, err = reqSvc.UpdateStatus(context.Background(), reqID, &UpdateRequisitionStatusInput{Status: "approved"})
	require.NoError(t, err)

	id, err := lpoSvc.Create(context.Background(), &CreateLPOInput{
		RequisitionID: reqID,
		SupplierID:    supplier.ID,
	})
	require.NoError(t, err)

	_, err = lpoSvc.UpdateStatus(context.Background(), id, &UpdateLPOStatusInput{Status: "delivered"})
	require.NoError(t, err)

	// A body without a status must not reset the delivery state
	updated, err := lpoSvc.UpdateStatus(context.Background(), id, &UpdateLPOStatusInput{})
	require.NoError(t, err)
	assert.Equal(t, "delivered", updated.Status)

	var stored models.LPO
	require.NoError(t, db.First(&stored, id).Error)
	assert.Equal(t, "delivered", stored.Status.String())
}
