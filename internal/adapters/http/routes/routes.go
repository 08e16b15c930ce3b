package routes

import (
	"lpo-tracker/internal/adapters/http/handlers"
	"lpo-tracker/internal/adapters/http/middleware"
	"lpo-tracker/internal/adapters/persistence/repositories"
	"lpo-tracker/internal/config"
	"lpo-tracker/internal/core/services"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
	"gorm.io/gorm"
)

// Setup configures all routes for the application
func Setup(app *fiber.App, db *gorm.DB, cfg *config.Config) {
	// Initialize repositories
	userRepo := repositories.NewUserRepository(db)
	refreshTokenRepo := repositories.NewRefreshTokenRepository(db)
	requisitionRepo := repositories.NewRequisitionRepository(db)
	lpoRepo := repositories.NewLPORepository(db)
	productRepo := repositories.NewProductRepository(db)
	supplierRepo := repositories.NewSupplierRepository(db)

	// Initialize services
	authService := services.NewAuthService(userRepo, refreshTokenRepo, cfg)
	userService := services.NewUserService(userRepo)
	requisitionService := services.NewRequisitionService(requisitionRepo)
	lpoService := services.NewLPOService(lpoRepo, requisitionRepo)
	catalogService := services.NewCatalogService(productRepo, supplierRepo)

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler()
	authHandler := handlers.NewAuthHandler(authService, cfg)
	userHandler := handlers.NewUserHandler(userService)
	requisitionHandler := handlers.NewRequisitionHandler(requisitionService)
	lpoHandler := handlers.NewLPOHandler(lpoService)
	productHandler := handlers.NewProductHandler(catalogService)
	supplierHandler := handlers.NewSupplierHandler(catalogService)
	seedHandler := handlers.NewSeedHandler(db)

	// Health check & root routes
	app.Get("/", healthHandler.Root)
	app.Get("/health", healthHandler.HealthCheck)

	// Swagger documentation
	app.Get("/swagger/*", swagger.HandlerDefault)

	// Auth routes
	app.Post("/login", middleware.AuthRateLimiter(), authHandler.Login)
	app.Post("/refresh", authHandler.RefreshToken)
	app.Post("/logout", authHandler.Logout)
	app.Post("/logout-all", middleware.AuthMiddleware(cfg), authHandler.LogoutAll)
	app.Get("/me", middleware.AuthMiddleware(cfg), authHandler.Me)

	// User administration (admin only)
	users := app.Group("/users", middleware.AuthMiddleware(cfg), middleware.AdminOnly())
	users.Post("/", userHandler.Create)
	users.Get("/", userHandler.List)
	users.Put("/:id", userHandler.Update)
	users.Put("/:id/password", userHandler.ResetPassword)

	// Requisition workflow. Status decisions are admin only, the rest
	// just requires a valid token.
	requisitions := app.Group("/requisitions", middleware.AuthMiddleware(cfg))
	requisitions.Post("/", requisitionHandler.Create)
	requisitions.Get("/", requisitionHandler.List)
	requisitions.Put("/:id", middleware.AdminOnly(), requisitionHandler.UpdateStatus)
	requisitions.Delete("/:id", requisitionHandler.Recall)

	// LPO workflow. Only the list view is authenticated; the remaining
	// endpoints are open for supplier-facing integrations.
	app.Get("/lpos", middleware.AuthMiddleware(cfg), lpoHandler.List)
	app.Post("/lpos", lpoHandler.Create)
	app.Get("/lpos/:id", lpoHandler.Get)
	app.Put("/lpos/:id", lpoHandler.UpdateStatus)

	// Product catalog (open)
	app.Get("/products", productHandler.List)
	app.Post("/products", productHandler.Create)
	app.Put("/products/:id", productHandler.Update)
	app.Delete("/products/:id", productHandler.Delete)

	// Suppliers (open)
	app.Get("/suppliers", supplierHandler.List)
	app.Post("/suppliers", supplierHandler.Create)
	app.Put("/suppliers/:id", supplierHandler.Update)
	app.Delete("/suppliers/:id", supplierHandler.Delete)

	// Demo data
	app.Post("/seed", seedHandler.Seed)
}
