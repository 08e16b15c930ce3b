package services

import (
	"context"
	"testing"

	"lpo-tracker/internal/adapters/persistence/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func floatPtr(f float64) *float64 { return &f }
func strPtr(s string) *string     { return &s }

func TestProductCreateValidation(t *testing.T) {
	db := setupTestDB(t)
	svc := newCatalogService(db)

	_, err := svc.CreateProduct(context.Background(), &CreateProductInput{Name: "Pen"})
	assert.ErrorIs(t, err, ErrProductFieldsMissing)

	_, err = svc.CreateProduct(context.Background(), &CreateProductInput{Price: floatPtr(1)})
	assert.ErrorIs(t, err, ErrProductFieldsMissing)

	_, err = svc.CreateProduct(context.Background(), &CreateProductInput{Name: "Pen", Price: floatPtr(-1)})
	assert.ErrorIs(t, err, ErrNegativePrice)

	product, err := svc.CreateProduct(context.Background(), &CreateProductInput{
		Name:        "Pen",
		Price:       floatPtr(1.50),
		Description: "Blue ballpoint",
	})
	require.NoError(t, err)
	assert.NotZero(t, product.ID)
}

func TestProductDeleteBlockedWhileReferenced(t *testing.T) {
	db := setupTestDB(t)
	svc := newCatalogService(db)
	reqSvc := newRequisitionService(db)
	user := seedUser(t, db, "Alice", "alice@example.com", "user")
	pen := seedProduct(t, db, "Pen", 1.50)

	reqID, err := reqSvc.Create(context.Background(), user.ID, &CreateRequisitionInput{
		ProductIDs: []uint{pen.ID},
	})
	require.NoError(t, err)

	err = svc.DeleteProduct(context.Background(), pen.ID)
	assert.ErrorIs(t, err, ErrProductReferenced)

	// Clearing the requisition releases the product
	require.NoError(t, reqSvc.Recall(context.Background(), reqID))
	require.NoError(t, svc.DeleteProduct(context.Background(), pen.ID))
}

func TestProductDeleteBlockedByLPOSnapshot(t *testing.T) {
	db := setupTestDB(t)
	svc := newCatalogService(db)
	pen := seedProduct(t, db, "Pen", 1.50)

	require.NoError(t, db.Create(&models.LPO{RequisitionID: 1, SupplierID: 1}).Error)
	require.NoError(t, db.Create(&models.LPOItem{LPOID: 1, ProductID: pen.ID, Quantity: 3, Price: 1.50}).Error)

	err := svc.DeleteProduct(context.Background(), pen.ID)
	assert.ErrorIs(t, err, ErrProductReferenced)
}

func TestProductDeleteUnknownID(t *testing.T) {
	db := setupTestDB(t)
	svc := newCatalogService(db)

	err := svc.DeleteProduct(context.Background(), 404)
	assert.ErrorIs(t, err, ErrProductNotFound)
}

func TestProductPartialUpdate(t *testing.T) {
	db := setupTestDB(t)
	svc := newCatalogService(db)
	pen := seedProduct(t, db, "Pen", 1.50)

	updated, err := svc.UpdateProduct(context.Background(), pen.ID, &UpdateProductInput{
		Price: floatPtr(2.00),
	})
	require.NoError(t, err)
	assert.Equal(t, "Pen", updated.Name)
	assert.Equal(t, 2.00, updated.Price)

	_, err = svc.UpdateProduct(context.Background(), pen.ID, &UpdateProductInput{
		Price: floatPtr(-2),
	})
	assert.ErrorIs(t, err, ErrNegativePrice)
}

func TestSupplierCreateValidation(t *testing.T) {
	db := setupTestDB(t)
	svc := newCatalogService(db)

	_, err := svc.CreateSupplier(context.Background(), &CreateSupplierInput{Name: "A"})
	assert.ErrorIs(t, err, ErrSupplierNameTooShort)

	_, err = svc.CreateSupplier(context.Background(), &CreateSupplierInput{
		Name:         "Acme Supplies",
		ContactEmail: "not-an-email",
	})
	assert.ErrorIs(t, err, ErrInvalidContactEmail)

	_, err = svc.CreateSupplier(context.Background(), &CreateSupplierInput{
		Name:         "Acme Supplies",
		ContactPhone: "12345",
	})
	assert.ErrorIs(t, err, ErrInvalidContactPhone)

	supplier, err := svc.CreateSupplier(context.Background(), &CreateSupplierInput{
		Name:         "Acme Supplies",
		ContactName:  "Jo Vendor",
		ContactEmail: "sales@acme.example",
		ContactPhone: "0712345678",
		Address:      "12 Industrial Way",
	})
	require.NoError(t, err)
	assert.NotZero(t, supplier.ID)
}

func TestSupplierUpdateAndDelete(t *testing.T) {
	db := setupTestDB(t)
	svc := newCatalogService(db)
	supplier := seedSupplier(t, db, "Acme Supplies")

	updated, err := svc.UpdateSupplier(context.Background(), supplier.ID, &UpdateSupplierInput{
		ContactName: strPtr("New Contact"),
	})
	require.NoError(t, err)
	assert.Equal(t, "Acme Supplies", updated.Name)
	assert.Equal(t, "New Contact", updated.ContactName)

	_, err = svc.UpdateSupplier(context.Background(), supplier.ID, &UpdateSupplierInput{
		Name: strPtr("X"),
	})
	assert.ErrorIs(t, err, ErrSupplierNameTooShort)

	require.NoError(t, svc.DeleteSupplier(context.Background(), supplier.ID))

	err = svc.DeleteSupplier(context.Background(), supplier.ID)
	assert.ErrorIs(t, err, ErrSupplierNotFound)
}
