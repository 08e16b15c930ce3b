package config

import (
	"log"

	"lpo-tracker/internal/adapters/persistence/models"
	"lpo-tracker/internal/core/domain"
	"lpo-tracker/internal/pkg/password"

	"gorm.io/gorm"
)

// Seeder handles database seeding
type Seeder struct {
	db *gorm.DB
}

// NewSeeder creates a new seeder instance
func NewSeeder(db *gorm.DB) *Seeder {
	return &Seeder{db: db}
}

// Run executes the startup seeders
func (s *Seeder) Run() error {
	log.Println("🌱 Running database seeders...")

	if err := s.seedAdminUser(); err != nil {
		log.Printf("⚠️ Admin seeder skipped: %v", err)
	}

	log.Println("✅ Database seeding completed")
	return nil
}

// seedAdminUser seeds the default admin user.
// This is for development/testing only; in production, create the
// admin through a secure process.
func (s *Seeder) seedAdminUser() error {
	var count int64
	s.db.Model(&models.User{}).Where("role = ?", "admin").Count(&count)
	if count > 0 {
		return nil // Admin already exists
	}

	hashed, err := password.Hash("admin123456")
	if err != nil {
		return err
	}

	admin := &models.User{
		Name:     "System Admin",
		Email:    "admin@lpotracker.local",
		Password: hashed,
		Role:     "admin",
	}

	if err := s.db.Create(admin).Error; err != nil {
		return err
	}

	log.Printf("✅ Admin user created: %s", admin.Email)
	return nil
}

// SeedDemoData populates the database with demo records: a handful of
// users, products and suppliers, one pending requisition per user with
// two line items, the first requisition approved, and one LPO carrying
// price-snapshot line items. Everything commits as a single transaction.
func SeedDemoData(db *gorm.DB) error {
	return db.Transaction(func(tx *gorm.DB) error {
		hashed, err := password.Hash("password123")
		if err != nil {
			return err
		}

		users := []*models.User{
			{Name: "Alice Wanjiru", Email: "alice@lpotracker.local", Password: hashed, Role: "user"},
			{Name: "Brian Otieno", Email: "brian@lpotracker.local", Password: hashed, Role: "user"},
			{Name: "Carol Mwangi", Email: "carol@lpotracker.local", Password: hashed, Role: "user"},
		}
		for _, u := range users {
			if err := tx.Create(u).Error; err != nil {
				return err
			}
		}

		products := []*models.Product{
			{Name: "Printer paper", Price: 450.00, Description: "A4 ream, 500 sheets"},
			{Name: "Toner cartridge", Price: 6200.00, Description: "Black, high yield"},
			{Name: "Stapler", Price: 350.50, Description: "Heavy duty desktop stapler"},
			{Name: "Whiteboard marker", Price: 85.00, Description: "Assorted colours, pack of 4"},
			{Name: "Desk lamp", Price: 1499.99, Description: "LED, adjustable arm"},
		}
		for _, p := range products {
			if err := tx.Create(p).Error; err != nil {
				return err
			}
		}

		suppliers := []*models.Supplier{
			{
				Name:         "Savanna Office Supplies",
				ContactName:  "Daniel Kip",
				ContactEmail: "sales@savannaoffice.co.ke",
				ContactPhone: "0722000001",
				Address:      "Mombasa Road, Nairobi",
			},
			{
				Name:         "Uptown Stationers",
				ContactName:  "Grace Njeri",
				ContactEmail: "orders@uptownstationers.com",
				ContactPhone: "0733000002",
				Address:      "Kimathi Street, Nairobi",
			},
		}
		for _, sup := range suppliers {
			if err := tx.Create(sup).Error; err != nil {
				return err
			}
		}

		var requisitions []*models.Requisition
		for i, u := range users {
			req := &models.Requisition{
				UserID: u.ID,
				Status: domain.RequisitionPending,
				Notes:  "Quarterly restock request",
			}
			if err := tx.Create(req).Error; err != nil {
				return err
			}
			requisitions = append(requisitions, req)

			for j, p := range products[:2] {
				item := &models.RequisitionItem{
					RequisitionID: req.ID,
					ProductID:     p.ID,
					Quantity:      i + j + 1,
				}
				if err := tx.Create(item).Error; err != nil {
					return err
				}
			}
		}

		// Approve the first requisition so an LPO can hang off it
		approved := requisitions[0]
		approved.Status = domain.RequisitionApproved
		if err := tx.Save(approved).Error; err != nil {
			return err
		}

		lpo := &models.LPO{
			RequisitionID: approved.ID,
			SupplierID:    suppliers[0].ID,
			Status:        domain.LPOPending,
		}
		if err := tx.Create(lpo).Error; err != nil {
			return err
		}

		for _, p := range products[:2] {
			item := &models.LPOItem{
				LPOID:     lpo.ID,
				ProductID: p.ID,
				Quantity:  2,
				Price:     p.Price, // snapshot at order time
			}
			if err := tx.Create(item).Error; err != nil {
				return err
			}
		}

		log.Println("✅ Demo data seeded successfully")
		return nil
	})
}
