package main

import (
	"context"
	"database/sql"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib" // database/sql driver for migrations
	"go.uber.org/zap"

	"github.com/agencydesk/backoffice/pkg/audit"
	"github.com/agencydesk/backoffice/pkg/auth"
	"github.com/agencydesk/backoffice/pkg/config"
	"github.com/agencydesk/backoffice/pkg/database"
	"github.com/agencydesk/backoffice/pkg/handlers"
	"github.com/agencydesk/backoffice/pkg/logging"
	"github.com/agencydesk/backoffice/pkg/middleware"
	"github.com/agencydesk/backoffice/pkg/notify"
	"github.com/agencydesk/backoffice/pkg/repositories"
	"github.com/agencydesk/backoffice/pkg/services"
)

// Version is set at build time via ldflags
var Version = "dev"

func main() {
	cfg, err := config.Load(Version)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger, err := buildLogger(cfg.Env)
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	logger.Info("Configuration loaded",
		zap.String("environment", cfg.Env),
		zap.Bool("auth_verification", cfg.Auth.EnableVerification),
		zap.Bool("seed_taxonomy", cfg.UseSeedTaxonomy),
		zap.String("database", logging.SanitizeConnectionString(cfg.Database.URL())),
	)

	ctx := context.Background()
	db, err := database.NewConnection(ctx, &database.Config{
		URL:            cfg.Database.URL(),
		MaxConnections: cfg.Database.MaxConnections,
	})
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.String("error", logging.SanitizeError(err)))
	}
	defer db.Close()

	if err := runMigrations(cfg, logger); err != nil {
		logger.Fatal("Failed to run migrations", zap.String("error", logging.SanitizeError(err)))
	}

	jwksClient, err := auth.NewJWKSClient(&auth.JWKSConfig{
		EnableVerification: cfg.Auth.EnableVerification,
		JWKSEndpoints:      cfg.Auth.JWKSEndpoints,
	})
	if err != nil {
		logger.Fatal("Failed to create JWKS client", zap.Error(err))
	}
	authMiddleware := auth.NewMiddleware(jwksClient, cfg.Auth.EnableVerification, logger)

	projectRepo := repositories.NewProjectRepository(db)
	clientRepo := repositories.NewClientRepository(db)
	companyRepo := repositories.NewCompanyRepository(db)
	invoiceRepo := repositories.NewInvoiceRepository(db)

	var taxonomyRepo repositories.TaxonomyRepository
	if cfg.UseSeedTaxonomy {
		taxonomyRepo = repositories.NewSeedTaxonomyRepository()
	} else {
		taxonomyRepo = repositories.NewTaxonomyRepository(db)
	}

	auditor := audit.NewAuditor(logger)
	projectService := services.NewProjectService(projectRepo, clientRepo, taxonomyRepo, auditor, logger)
	clientService := services.NewClientService(clientRepo, companyRepo, logger)
	invoiceService := services.NewInvoiceService(invoiceRepo, notify.NewLogNotifier(logger), auditor, logger)

	mux := http.NewServeMux()
	handlers.NewHealthHandler(cfg, logger).RegisterRoutes(mux)
	handlers.NewProjectsHandler(projectService, logger).RegisterRoutes(mux, authMiddleware)
	handlers.NewClientsHandler(clientService, logger).RegisterRoutes(mux, authMiddleware)
	handlers.NewInvoicesHandler(invoiceService, logger).RegisterRoutes(mux, authMiddleware)
	handlers.NewTaxonomyHandler(taxonomyRepo, logger).RegisterRoutes(mux, authMiddleware)

	server := &http.Server{
		Addr:              cfg.BindAddr + ":" + cfg.Port,
		Handler:           middleware.RequestLogger(logger)(mux),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.Info("Starting agencydesk",
			zap.String("addr", server.Addr),
			zap.String("version", cfg.Version))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("Server failed", zap.Error(err))
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("Shutdown incomplete", zap.Error(err))
	}
	logger.Info("Server stopped")
}

func buildLogger(env string) (*zap.Logger, error) {
	if env == "local" || env == "development" {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}

// runMigrations opens a database/sql connection for golang-migrate and
// applies pending migrations.
func runMigrations(cfg *config.Config, logger *zap.Logger) error {
	sqlDB, err := sql.Open("pgx", cfg.Database.URL())
	if err != nil {
		return err
	}
	defer sqlDB.Close()
	return database.RunMigrations(sqlDB, cfg.MigrationsPath, logger)
}
