package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"lpo-tracker/internal/adapters/http/middleware"
	"lpo-tracker/internal/adapters/http/routes"
	"lpo-tracker/internal/adapters/persistence/models"
	"lpo-tracker/internal/adapters/persistence/repositories"
	"lpo-tracker/internal/config"
	"lpo-tracker/internal/core/services"

	"github.com/gofiber/fiber/v2"

	_ "lpo-tracker/docs" // Swagger docs
)

// @title LPO Tracker API
// @version 1.0
// @description Procurement tracking API: requisitions, approvals and local purchase orders
// @termsOfService http://swagger.io/terms/

// @contact.name API Support
// @contact.email support@lpotracker.local

// @license.name Apache 2.0
// @license.url http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080
// @BasePath /
// @schemes http https

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("❌ Failed to load configuration: %v", err)
	}

	// Connect to database
	db, err := config.ConnectDatabase(cfg)
	if err != nil {
		log.Fatalf("❌ Failed to connect to database: %v", err)
	}
	defer config.CloseDatabase()

	// Auto migrate (creates tables if not exist)
	if err := models.AutoMigrate(db); err != nil {
		log.Fatalf("❌ Failed to auto migrate: %v", err)
	}
	log.Println("✅ Database migration completed")

	// Bootstrap admin account
	if err := config.NewSeeder(db).Run(); err != nil {
		log.Printf("⚠️ Warning: Failed to seed admin user: %v", err)
	}

	// Daily procurement digest (08:30)
	digestService := services.NewDigestService(
		repositories.NewRequisitionRepository(db),
		repositories.NewLPORepository(db),
		repositories.NewRefreshTokenRepository(db),
	)
	if err := digestService.Start(); err != nil {
		log.Printf("⚠️ Warning: Failed to start digest scheduler: %v", err)
	}
	defer digestService.Stop()

	// Create Fiber app
	app := fiber.New(fiber.Config{
		AppName:      "LPO Tracker API v1.0",
		ErrorHandler: middleware.CustomErrorHandler,
	})

	// Setup middlewares
	middleware.Setup(app, cfg)

	// Setup routes (pass db and cfg for dependency injection)
	routes.Setup(app, db, cfg)

	// Graceful shutdown
	go gracefulShutdown(app)

	// Start server
	log.Printf("🚀 Server starting on port %s [MODE: %s]", cfg.Port, cfg.AppMode)
	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Fatalf("❌ Failed to start server: %v", err)
	}
}

// gracefulShutdown handles graceful shutdown
func gracefulShutdown(app *fiber.App) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("🛑 Shutting down server...")
	if err := app.Shutdown(); err != nil {
		log.Printf("❌ Error during shutdown: %v", err)
	}
	log.Println("✅ Server stopped gracefully")
}
