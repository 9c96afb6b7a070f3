// Package v1 provides HTTP API version 1.
package v1

import (
	"github.com/gin-gonic/gin"

	"procompare/internal/domain/catalogs/department"
	"procompare/internal/domain/catalogs/prodtype"
	"procompare/internal/domain/catalogs/reqgroup"
	"procompare/internal/domain/catalogs/supplier"
	"procompare/internal/domain/comparison"
	"procompare/internal/domain/requisition"
	"procompare/internal/infrastructure/http/v1/handlers"
	"procompare/internal/infrastructure/http/v1/middleware"
	"procompare/internal/infrastructure/storage/postgres"
	"procompare/pkg/logger"
)

// RouterConfig holds the wired services the router exposes.
type RouterConfig struct {
	// Pool is the database pool (for health checks)
	Pool *postgres.Pool

	// Logger for request logging
	Logger *logger.Logger

	// JWTValidator for token validation
	JWTValidator middleware.JWTValidator

	// Catalog services
	Departments  *department.Service
	ProductTypes *prodtype.Service
	Suppliers    *supplier.Service
	Groups       *reqgroup.Service

	// Requisitions provides the duplicate check
	Requisitions *requisition.Service

	// Search is the comparison & search engine
	Search *comparison.Service
}

// crudHandler is the route surface every catalog handler exposes.
type crudHandler interface {
	List(c *gin.Context)
	Get(c *gin.Context)
	GetByCode(c *gin.Context)
	Create(c *gin.Context)
	Update(c *gin.Context)
	Delete(c *gin.Context)
}

// registerCatalogCRUD wires the standard catalog routes onto a group.
func registerCatalogCRUD(rg *gin.RouterGroup, h crudHandler) {
	rg.GET("", h.List)
	rg.GET("/:id", h.Get)
	rg.GET("/by-code/:code", h.GetByCode)
	rg.POST("", h.Create)
	rg.PUT("/:id", h.Update)
	rg.DELETE("/:id", h.Delete)
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

	// API v1 (protected)
	api := router.Group("/api/v1")
	api.Use(middleware.Auth(cfg.JWTValidator))
	{
		registerCatalogRoutes(api, cfg)
		registerRequisitionRoutes(api, cfg)
	}

	return router
}

// registerCatalogRoutes registers reference catalog endpoints.
func registerCatalogRoutes(rg *gin.RouterGroup, cfg RouterConfig) {
	catalogs := rg.Group("/catalog")

	// --- DEPARTMENTS ---
	{
		handler := handlers.NewDepartmentHandler(cfg.Departments)
		registerCatalogCRUD(catalogs.Group("/departments"), handler)
	}

	// --- PRODUCT CLASSIFICATIONS ---
	{
		handler := handlers.NewProductTypeHandler(cfg.ProductTypes)
		group := catalogs.Group("/product-types")
		registerCatalogCRUD(group, handler)
		group.GET("/:id/children", handler.Children)
	}

	// --- SUPPLIERS ---
	{
		handler := handlers.NewSupplierHandler(cfg.Suppliers)
		group := catalogs.Group("/suppliers")
		group.GET("/offers", handler.Offers)
		registerCatalogCRUD(group, handler)
	}

	// --- REQUISITION GROUPS ---
	{
		handler := handlers.NewGroupHandler(cfg.Groups)
		registerCatalogCRUD(catalogs.Group("/groups"), handler)
	}
}

// registerRequisitionRoutes registers search and duplicate-check endpoints.
func registerRequisitionRoutes(rg *gin.RouterGroup, cfg RouterConfig) {
	handler := handlers.NewSearchHandler(cfg.Search, cfg.Requisitions)

	requisitions := rg.Group("/requisitions")
	{
		requisitions.GET("/search", handler.Search)
		requisitions.GET("/check-duplicate", handler.CheckDuplicate)
	}
}
