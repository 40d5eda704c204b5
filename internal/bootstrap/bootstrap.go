package bootstrap

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"

	appControllers "github.com/campushq/studentportal/internal/app/controllers"
	appMigrations "github.com/campushq/studentportal/internal/app/migrations"
	appRepos "github.com/campushq/studentportal/internal/app/repositories"
	appRoutes "github.com/campushq/studentportal/internal/app/routes"
	appServices "github.com/campushq/studentportal/internal/app/services"
	"github.com/campushq/studentportal/internal/config"
	"github.com/campushq/studentportal/internal/db"
	appMiddleware "github.com/campushq/studentportal/internal/middleware"
	pkgAuth "github.com/campushq/studentportal/internal/pkg/auth"
	"github.com/campushq/studentportal/internal/pkg/filestorage"
	"github.com/campushq/studentportal/internal/pkg/helpers"
	"github.com/campushq/studentportal/internal/pkg/logger"
	"github.com/campushq/studentportal/internal/seed"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	Repos    *appRepos.Repositories
	Services *appServices.Services

	AuthController      *appControllers.AuthController
	PortalController    *appControllers.PortalController
	ProfileController   *appControllers.ProfileController
	DashboardController *appControllers.DashboardController

	AuthMiddleware *appMiddleware.AuthMiddleware
	JWTService     *pkgAuth.JWTService
	FileStorage    *filestorage.LocalStorage
}

// LoadConfigAndSetupLogger loads configuration and initializes the logger.
func LoadConfigAndSetupLogger() (*config.Config, error) {
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = filepath.Join("configs", "config.yaml")
	}
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to load configuration")
		return nil, err
	}

	logger.Configure(logger.Config{
		Level:  logger.LogLevel(strings.ToLower(cfg.Logging.Level)),
		Pretty: strings.ToLower(cfg.Logging.Format) == "text",
	})
	logger.Info().Str("logLevel", cfg.Logging.Level).Str("logFormat", cfg.Logging.Format).Msg("Logger configured")
	return cfg, nil
}

// SetupDatabase establishes the database connection, runs migrations and
// seeds the fixed portal rows.
func SetupDatabase(cfg *config.Config) (*pgxpool.Pool, error) {
	database, err := db.NewPostgresDB(cfg)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to connect to database")
		return nil, err
	}
	dbPool := database.Pool

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := dbPool.Ping(ctx); err != nil {
		dbPool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}
	logger.Info().Msg("Database connection established")

	migrator := appMigrations.NewMigrator(dbPool)
	migrationsDir := "migrations"
	if _, err := os.Stat(migrationsDir); os.IsNotExist(err) {
		dbPool.Close()
		return nil, fmt.Errorf("migrations directory not found at %s: %w", migrationsDir, err)
	}
	if err := migrator.MigrateFromDirectory(migrationsDir); err != nil {
		dbPool.Close()
		return nil, fmt.Errorf("database migrations failed: %w", err)
	}
	logger.Info().Msg("Database migrations applied")

	// The portal cannot route without its page rows, so a seeding failure
	// here is fatal.
	if err := seed.CreateDefaultData(context.Background(), dbPool); err != nil {
		dbPool.Close()
		return nil, fmt.Errorf("default data seeding failed: %w", err)
	}

	if cfg.Seed.SampleData {
		if err := seed.LoadSampleData(context.Background(), dbPool); err != nil {
			logger.Error().Err(err).Msg("Sample data loading failed, continuing without it")
		}
	}

	return dbPool, nil
}

// BuildDependencies initializes repositories, services, controllers and
// middleware.
func BuildDependencies(cfg *config.Config, dbPool *pgxpool.Pool) (*Dependencies, error) {
	deps := &Dependencies{}

	deps.Repos = appRepos.NewRepositories(dbPool)

	var err error
	uploadsURL := strings.TrimRight(cfg.Server.BaseURL, "/") + "/uploads"
	deps.FileStorage, err = filestorage.NewLocalStorage(cfg.Server.StoragePath, uploadsURL)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize file storage: %w", err)
	}

	deps.JWTService = pkgAuth.NewJWTService(pkgAuth.JWTConfig{
		SecretKey:      cfg.JWT.Secret,
		AccessTokenExp: helpers.ParseDuration(cfg.JWT.AccessTokenExpiration, 12*time.Hour),
		TokenIssuer:    cfg.JWT.Issuer,
	})

	deps.Services = appServices.NewServices(deps.Repos, deps.JWTService, deps.FileStorage)

	deps.AuthMiddleware = appMiddleware.NewAuthMiddleware(deps.JWTService)

	deps.AuthController = appControllers.NewAuthController(deps.Services.Auth)
	deps.PortalController = appControllers.NewPortalController(deps.Services.Portal)
	deps.ProfileController = appControllers.NewProfileController(deps.Services.Profile)
	deps.DashboardController = appControllers.NewDashboardController(deps.Services.Dashboard)

	return deps, nil
}

// SetupRouter configures the Gin engine with middleware and routes.
func SetupRouter(cfg *config.Config, deps *Dependencies) *gin.Engine {
	if strings.ToLower(cfg.Server.Mode) == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(appMiddleware.RequestLogger(), gin.Recovery())

	appRoutes.SetupRouter(router,
		deps.AuthController,
		deps.PortalController,
		deps.ProfileController,
		deps.DashboardController,
		deps.AuthMiddleware,
	)

	return router
}
