// Package v1 provides HTTP API version 1.
package v1

import (
	"time"

	"github.com/gin-gonic/gin"

	"accountease/internal/domain/audit"
	"accountease/internal/domain/auth"
	"accountease/internal/domain/catalogs/bankaccount"
	"accountease/internal/domain/catalogs/category"
	"accountease/internal/domain/catalogs/supplier"
	"accountease/internal/domain/inventory"
	"accountease/internal/domain/records"
	"accountease/internal/domain/reports"
	"accountease/internal/infrastructure/http/v1/handlers"
	"accountease/internal/infrastructure/http/v1/middleware"
	"accountease/internal/infrastructure/storage/postgres"
	"accountease/internal/infrastructure/storage/postgres/catalog_repo"
	"accountease/internal/infrastructure/storage/postgres/inventory_repo"
	"accountease/internal/infrastructure/storage/postgres/record_repo"
	"accountease/internal/infrastructure/storage/postgres/report_repo"
	"accountease/pkg/logger"
)

// RouterConfig holds router configuration.
type RouterConfig struct {
	// Pool is the database connection pool (for health checks)
	Pool *postgres.Pool

	// TxManager provides queriers to all repositories
	TxManager *postgres.TxManager

	// Logger for request logging
	Logger *logger.Logger

	// JWTValidator for token validation
	JWTValidator middleware.JWTValidator

	// AuthService for authentication endpoints
	AuthService *auth.Service

	// Auditor records change history and serves it back over the audit
	// routes; nil disables both
	Auditor audit.Log

	// ReportCacheTTL bounds report staleness; zero disables the cache
	ReportCacheTTL time.Duration
}

// NewRouter creates and configures the Gin router.
func NewRouter(cfg RouterConfig) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	router := gin.New()

	// Global middleware (order matters!)
	router.Use(middleware.Recovery())
	router.Use(middleware.Trace())
	router.Use(middleware.Logger(cfg.Logger))
	router.Use(middleware.ErrorHandler())

	// Health endpoints (no auth required)
	healthHandler := handlers.NewHealthHandler(cfg.Pool)
	health := router.Group("/health")
	{
		health.GET("/live", healthHandler.Live)
		health.GET("/ready", healthHandler.Ready)
		health.GET("/info", healthHandler.Info)
	}

	// API v1
	apiV1 := router.Group("/api/v1")
	{
		registerAuthRoutes(apiV1, cfg)

		protected := apiV1.Group("")
		protected.Use(middleware.Auth(cfg.JWTValidator))

		registerRecordRoutes(protected, cfg)
		registerInventoryRoutes(protected, cfg)
		registerCatalogRoutes(protected, cfg)
		registerReportRoutes(protected, cfg)
		registerAuditRoutes(protected, cfg)
	}

	return router
}

// registerAuthRoutes registers authentication endpoints.
func registerAuthRoutes(rg *gin.RouterGroup, cfg RouterConfig) {
	if cfg.AuthService == nil {
		return
	}

	baseHandler := handlers.NewBaseHandler()
	authHandler := handlers.NewAuthHandler(baseHandler, cfg.AuthService)

	public := rg.Group("/auth")
	public.POST("/register", authHandler.Register)
	public.POST("/login", authHandler.Login)

	protectedAuth := rg.Group("/auth")
	protectedAuth.Use(middleware.Auth(cfg.JWTValidator))
	protectedAuth.GET("/me", authHandler.Me)
}

// registerRecordRoutes registers sale, expense and purchase endpoints.
func registerRecordRoutes(rg *gin.RouterGroup, cfg RouterConfig) {
	baseHandler := handlers.NewBaseHandler()

	txRepo := record_repo.NewTransactionRepo(cfg.TxManager)
	purchaseRepo := record_repo.NewPurchaseRepo(cfg.TxManager)
	service := records.NewService(txRepo, purchaseRepo, cfg.Auditor)

	mountTransactions := func(group *gin.RouterGroup, typ records.TransactionType) {
		handler := handlers.NewTransactionHandler(baseHandler, service, typ)
		group.POST("", handler.Create)
		group.GET("", handler.List)
		group.GET("/:id", handler.Get)
		group.PUT("/:id", handler.Update)
		group.DELETE("/:id", handler.Delete)
	}
	mountTransactions(rg.Group("/sales"), records.TypeSale)
	mountTransactions(rg.Group("/expenses"), records.TypeExpense)

	purchaseHandler := handlers.NewPurchaseHandler(baseHandler, service)
	purchases := rg.Group("/purchases")
	purchases.POST("", purchaseHandler.Create)
	purchases.GET("", purchaseHandler.List)
	purchases.PUT("/:id", purchaseHandler.Update)
	purchases.DELETE("/:id", purchaseHandler.Delete)
}

// registerInventoryRoutes registers stock item and movement endpoints.
func registerInventoryRoutes(rg *gin.RouterGroup, cfg RouterConfig) {
	baseHandler := handlers.NewBaseHandler()

	itemRepo := inventory_repo.NewItemRepo(cfg.TxManager)
	movementRepo := inventory_repo.NewMovementRepo(cfg.TxManager)
	service := inventory.NewService(itemRepo, movementRepo, cfg.Auditor, cfg.TxManager)
	handler := handlers.NewInventoryHandler(baseHandler, service)

	group := rg.Group("/inventory")
	group.POST("", handler.CreateItem)
	group.GET("", handler.ListItems)
	group.GET("/movements", handler.ListMovements)
	group.GET("/:id", handler.GetItem)
	group.PUT("/:id", handler.UpdateItem)
	group.DELETE("/:id", handler.DeleteItem)
	group.POST("/:id/movements", handler.RecordMovement)
	group.GET("/:id/movements", handler.ListMovements)
	group.POST("/:id/reconcile", handler.Reconcile)
}

// registerCatalogRoutes registers bank account, category and supplier
// endpoints.
func registerCatalogRoutes(rg *gin.RouterGroup, cfg RouterConfig) {
	baseHandler := handlers.NewBaseHandler()

	// --- BANK ACCOUNTS ---
	{
		repo := catalog_repo.NewBankAccountRepo(cfg.TxManager)
		service := bankaccount.NewService(repo)
		handler := handlers.NewBankAccountHandler(baseHandler, service)

		group := rg.Group("/bank-accounts")
		group.POST("", handler.Create)
		group.GET("", handler.List)
		group.GET("/:id", handler.Get)
		group.PUT("/:id", handler.Update)
		group.DELETE("/:id", handler.Delete)
	}

	// --- CATEGORIES (one table, three catalogs) ---
	{
		repo := catalog_repo.NewCategoryRepo(cfg.TxManager)
		service := category.NewService(repo)

		mount := func(path string, kind category.Kind) {
			handler := handlers.NewCategoryHandler(baseHandler, service, kind)
			group := rg.Group(path)
			group.POST("", handler.Create)
			group.GET("", handler.List)
			group.PUT("/:id", handler.Update)
			group.DELETE("/:id", handler.Delete)
		}
		mount("/categories/expense", category.KindExpense)
		mount("/categories/supplier", category.KindSupplier)
		mount("/categories/inventory", category.KindInventory)
	}

	// --- SUPPLIERS ---
	{
		repo := catalog_repo.NewSupplierRepo(cfg.TxManager)
		service := supplier.NewService(repo)
		handler := handlers.NewSupplierHandler(baseHandler, service)

		group := rg.Group("/suppliers")
		group.POST("", handler.Create)
		group.GET("", handler.List)
		group.PUT("/:id", handler.Update)
		group.DELETE("/:id", handler.Delete)
	}
}

// registerAuditRoutes registers change history endpoints.
func registerAuditRoutes(rg *gin.RouterGroup, cfg RouterConfig) {
	if cfg.Auditor == nil {
		return
	}

	handler := handlers.NewAuditHandler(handlers.NewBaseHandler(), cfg.Auditor)
	rg.GET("/audit/:entityType/:id", handler.History)
}

// registerReportRoutes registers report endpoints.
func registerReportRoutes(rg *gin.RouterGroup, cfg RouterConfig) {
	baseHandler := handlers.NewBaseHandler()

	source := report_repo.NewSource(
		record_repo.NewTransactionRepo(cfg.TxManager),
		record_repo.NewPurchaseRepo(cfg.TxManager),
		inventory_repo.NewItemRepo(cfg.TxManager),
	)
	service := reports.NewService(source, reports.NewBroadcaster(), cfg.ReportCacheTTL)
	filters := reports.NewFilterState()
	handler := handlers.NewReportsHandler(baseHandler, service, filters)

	group := rg.Group("/reports")
	group.GET("/filter", handler.GetFilter)
	group.PUT("/filter", handler.SetFilter)
	group.POST("/generate", handler.GenerateBatch)
	group.GET("/:type", handler.Generate)
}
