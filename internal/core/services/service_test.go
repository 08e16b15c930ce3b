package services

import (
	"testing"

	"lpo-tracker/internal/adapters/persistence/models"
	"lpo-tracker/internal/adapters/persistence/repositories"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// setupTestDB opens an isolated in-memory database with the full schema
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, models.AutoMigrate(db))
	return db
}

func seedUser(t *testing.T, db *gorm.DB, name, email, role string) *models.User {
	t.Helper()

	user := &models.User{
		Name:     name,
		Email:    email,
		Password: "hashed-password",
		Role:     role,
	}
	require.NoError(t, db.Create(user).Error)
	return user
}

func seedProduct(t *testing.T, db *gorm.DB, name string, price float64) *models.Product {
	t.Helper()

	product := &models.Product{Name: name, Price: price}
	require.NoError(t, db.Create(product).Error)
	return product
}

func seedSupplier(t *testing.T, db *gorm.DB, name string) *models.Supplier {
	t.Helper()

	supplier := &models.Supplier{Name: name}
	require.NoError(t, db.Create(supplier).Error)
	return supplier
}

func newRequisitionService(db *gorm.DB) *RequisitionService {
	return NewRequisitionService(repositories.NewRequisitionRepository(db))
}

func newLPOService(db *gorm.DB) *LPOService {
	return NewLPOService(
		repositories.NewLPORepository(db),
		repositories.NewRequisitionRepository(db),
	)
}

func newCatalogService(db *gorm.DB) *CatalogService {
	return NewCatalogService(
		repositories.NewProductRepository(db),
		repositories.NewSupplierRepository(db),
	)
}
