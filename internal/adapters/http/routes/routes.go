package routes

import (
	"activotrack/internal/adapters/http/handlers"
	"activotrack/internal/adapters/http/middleware"
	"activotrack/internal/adapters/identity"
	"activotrack/internal/adapters/persistence/repositories"
	"activotrack/internal/config"
	"activotrack/internal/core/services"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
	"gorm.io/gorm"
)

// Setup configures all routes for the application
func Setup(app *fiber.App, db *gorm.DB, cfg *config.Config) {
	// Identity adapter
	provider := identity.NewProvider(db, cfg)

	// Repositories
	profileRepo := repositories.NewProfileRepository(db)
	assetRepo := repositories.NewAssetRepository(db)
	loanRepo := repositories.NewLoanRepository(db)
	ticketRepo := repositories.NewTicketRepository(db)
	faqRepo := repositories.NewFAQRepository(db)
	lookupRepo := repositories.NewLookupRepository(db)

	// Services
	authService := services.NewAuthService(provider, profileRepo)
	assetService := services.NewAssetService(assetRepo, loanRepo, lookupRepo)
	loanService := services.NewLoanService(db, loanRepo, assetRepo, profileRepo)
	ticketService := services.NewTicketService(ticketRepo, assetRepo, profileRepo)
	userService := services.NewUserService(provider, profileRepo, lookupRepo)
	dashboardService := services.NewDashboardService(assetRepo, loanRepo, ticketRepo)

	// Handlers
	healthHandler := handlers.NewHealthHandler(db)
	authHandler := handlers.NewAuthHandler(authService)
	assetHandler := handlers.NewAssetHandler(assetService)
	loanHandler := handlers.NewLoanHandler(loanService)
	ticketHandler := handlers.NewTicketHandler(ticketService)
	userHandler := handlers.NewUserHandler(userService)
	faqHandler := handlers.NewFAQHandler(faqRepo)
	lookupHandler := handlers.NewLookupHandler(lookupRepo, profileRepo)
	dashboardHandler := handlers.NewDashboardHandler(dashboardService)

	// Health check & root routes
	app.Get("/", healthHandler.Root)
	app.Get("/health", healthHandler.HealthCheck)

	// Swagger documentation
	app.Get("/swagger/*", swagger.HandlerDefault)

	// API v1 group
	apiV1 := app.Group("/api/v1")

	// Token issuance is the only unauthenticated API route
	apiV1.Post("/auth/token", middleware.AuthRateLimiter(), authHandler.Token)

	// Every other route requires a valid bearer token
	apiV1.Use(middleware.AuthMiddleware(provider))

	setupAuthRoutes(apiV1.Group("/auth"), authHandler)
	setupAssetRoutes(apiV1.Group("/assets"), assetHandler)
	setupLoanRoutes(apiV1.Group("/prestamos"), loanHandler)
	setupTicketRoutes(apiV1.Group("/tickets"), ticketHandler)
	setupUserRoutes(apiV1.Group("/users"), userHandler)
	setupFAQRoutes(apiV1.Group("/faqs"), faqHandler)
	setupLookupRoutes(apiV1, lookupHandler)
	setupDashboardRoutes(apiV1.Group("/dashboard"), dashboardHandler)
}

// setupAuthRoutes configures session routes (token issuance is wired separately)
func setupAuthRoutes(router fiber.Router, handler *handlers.AuthHandler) {
	router.Post("/login", handler.Login)
	router.Get("/me", handler.Me)
	router.Get("/validate", handler.Validate)
}

// setupAssetRoutes configures asset routes
func setupAssetRoutes(router fiber.Router, handler *handlers.AssetHandler) {
	router.Get("/", handler.List)
	router.Get("/:id", handler.Get)
	router.Post("/", handler.Create)
	router.Patch("/:id", handler.Update)
}

// setupLoanRoutes configures loan routes
func setupLoanRoutes(router fiber.Router, handler *handlers.LoanHandler) {
	router.Get("/", handler.List)
	router.Get("/:id", handler.Get)
	router.Post("/", handler.Create)
	router.Patch("/:id", handler.Update)
}

// setupTicketRoutes configures ticket routes
func setupTicketRoutes(router fiber.Router, handler *handlers.TicketHandler) {
	router.Get("/", handler.List)
	router.Get("/:id", handler.Get)
	router.Post("/", handler.Create)
	router.Patch("/:id", handler.Update)
}

// setupUserRoutes configures user management routes
func setupUserRoutes(router fiber.Router, handler *handlers.UserHandler) {
	router.Get("/", handler.List)
	router.Get("/:id", handler.Get)
	router.Post("/", handler.Create)
	router.Put("/:id", handler.Update)
	router.Delete("/:id", handler.Delete)
}

// setupFAQRoutes configures FAQ routes
func setupFAQRoutes(router fiber.Router, handler *handlers.FAQHandler) {
	router.Get("/", handler.List)
	router.Post("/", handler.Create)
	router.Put("/:id", handler.Update)
	router.Delete("/:id", handler.Delete)
}

// setupLookupRoutes configures the lookup table routes
func setupLookupRoutes(router fiber.Router, handler *handlers.LookupHandler) {
	router.Get("/roles", handler.Roles)
	router.Get("/asset-status", handler.AssetStatuses)
	router.Get("/asset-types", handler.AssetTypes)
	router.Get("/profiles", handler.Profiles)
}

// setupDashboardRoutes configures dashboard routes
func setupDashboardRoutes(router fiber.Router, handler *handlers.DashboardHandler) {
	router.Get("/stats", handler.Stats)
	router.Get("/asset-status", handler.AssetStatusChart)
	router.Get("/asset-types", handler.AssetTypeChart)
	router.Get("/recent-activity", handler.RecentActivity)
}
