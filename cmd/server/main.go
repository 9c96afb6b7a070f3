// Package main is the entry point for the procompare API server.
package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"procompare/internal/domain/auth"
	"procompare/internal/domain/catalogs/department"
	"procompare/internal/domain/catalogs/prodtype"
	"procompare/internal/domain/catalogs/reqgroup"
	"procompare/internal/domain/catalogs/supplier"
	"procompare/internal/domain/comparison"
	"procompare/internal/domain/requisition"
	"procompare/internal/infrastructure/cache"
	v1 "procompare/internal/infrastructure/http/v1"
	"procompare/internal/infrastructure/storage/postgres"
	"procompare/internal/infrastructure/storage/postgres/catalog_repo"
	"procompare/internal/infrastructure/storage/postgres/requisition_repo"
	"procompare/pkg/config"
	"procompare/pkg/logger"
	"procompare/pkg/numerator"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Printf("failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.New(logger.Config{
		Level:       cfg.Log.Level,
		Development: cfg.App.Env == "development",
	})
	if err != nil {
		fmt.Printf("failed to initialize logger: %v\n", err)
		os.Exit(1)
	}

	ctx := context.Background()
	log.Infow("starting procompare server", "env", cfg.App.Env)

	// --- Database ---
	poolCfg := postgres.DefaultPoolConfig(cfg.DB.ConnectionString())
	if cfg.DB.MaxConns > 0 {
		poolCfg.MaxConns = cfg.DB.MaxConns
	}
	if cfg.DB.MinConns > 0 {
		poolCfg.MinConns = cfg.DB.MinConns
	}

	pool, err := postgres.NewPool(ctx, poolCfg)
	if err != nil {
		log.Fatalw("failed to connect to database", "error", err)
	}
	defer pool.Close()
	log.Info("database connection established")

	txManager := postgres.NewTxManager(pool)

	auditService, err := postgres.NewAuditService(txManager)
	if err != nil {
		log.Fatalw("failed to initialize audit service", "error", err)
	}

	numeratorService := numerator.New(pool.Pool)

	// --- Repositories ---
	departmentRepo := catalog_repo.NewDepartmentRepo(txManager, auditService)
	productTypeRepo := catalog_repo.NewProductTypeRepo(txManager, auditService)
	supplierRepo := catalog_repo.NewSupplierRepo(txManager, auditService)
	offerRepo := catalog_repo.NewOfferRepo(txManager)
	groupRepo := catalog_repo.NewReqGroupRepo(txManager, auditService)
	monthlyRepo := requisition_repo.NewMonthlyRepo(txManager)
	summaryRepo := requisition_repo.NewSummaryRepo(txManager)

	// --- Catalog services ---
	departmentService := department.NewService(departmentRepo, txManager, numeratorService)
	productTypeService := prodtype.NewService(productTypeRepo, txManager, numeratorService)
	supplierService := supplier.NewService(supplierRepo, offerRepo, txManager, numeratorService)
	groupService := reqgroup.NewService(groupRepo, txManager, numeratorService)

	// --- Requisition & comparison services ---
	requisitionService := requisition.NewService(monthlyRepo, summaryRepo)

	nameCacheTTL := time.Duration(cfg.Search.NameCacheTTLSeconds) * time.Second
	searchService := comparison.NewService(comparison.ServiceConfig{
		Groups:    groupService,
		Monthly:   monthlyRepo,
		Summary:   summaryRepo,
		Offers:    supplierService,
		TypeNames: cache.NewTypeNameResolver(productTypeService, nameCacheTTL),
		DeptNames: cache.NewDeptNameResolver(departmentService, nameCacheTTL),
		Search:    cfg.Search,
		Logger:    log,
	})

	// --- JWT ---
	jwtConfig := auth.DefaultJWTConfig(cfg.JWT.Secret)
	if cfg.JWT.Issuer != "" {
		jwtConfig.Issuer = cfg.JWT.Issuer
	}
	jwtService := auth.NewJWTService(jwtConfig)

	// --- Router ---
	router := v1.NewRouter(v1.RouterConfig{
		Pool:         pool,
		Logger:       log,
		JWTValidator: jwtService,
		Departments:  departmentService,
		ProductTypes: productTypeService,
		Suppliers:    supplierService,
		Groups:       groupService,
		Requisitions: requisitionService,
		Search:       searchService,
	})

	// --- HTTP Server ---
	server := &http.Server{
		Addr:         cfg.HTTP.Addr(),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Infow("server starting", "addr", cfg.HTTP.Addr())
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalw("server failed", "error", err)
		}
	}()

	// --- Graceful shutdown ---
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down server...")

	// Give outstanding requests 30 seconds to complete
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatalw("server forced to shutdown", "error", err)
	}

	log.Info("server stopped")
}
