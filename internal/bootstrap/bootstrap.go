package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	appControllers "github.com/rosnMagar/RateMyClass/internal/app/controllers"
	appMigrations "github.com/rosnMagar/RateMyClass/internal/app/migrations"
	appRepos "github.com/rosnMagar/RateMyClass/internal/app/repositories"
	appRoutes "github.com/rosnMagar/RateMyClass/internal/app/routes"
	appServices "github.com/rosnMagar/RateMyClass/internal/app/services"
	"github.com/rosnMagar/RateMyClass/internal/config"
	"github.com/rosnMagar/RateMyClass/internal/db"
	appMiddleware "github.com/rosnMagar/RateMyClass/internal/middleware"
	pkgAuth "github.com/rosnMagar/RateMyClass/internal/pkg/auth"
	"github.com/rosnMagar/RateMyClass/internal/pkg/helpers"
	"github.com/rosnMagar/RateMyClass/internal/pkg/logger"
	"github.com/rosnMagar/RateMyClass/internal/seed"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	AuthService      *appServices.AuthService
	SchoolService    *appServices.SchoolService
	CourseService    *appServices.CourseService
	RatingService    *appServices.RatingService
	AuthController   *appControllers.AuthController
	SchoolController *appControllers.SchoolController
	CourseController *appControllers.CourseController
	RatingController *appControllers.RatingController
	AuthMiddleware   *appMiddleware.AuthMiddleware
	Repos            *appRepos.Repositories
	JWTService       *pkgAuth.JWTService
	Logger           zerolog.Logger
}

// LoadConfigAndSetupLogger loads configuration and initializes the logger.
func LoadConfigAndSetupLogger() (*config.Config, zerolog.Logger, error) {
	configPath := filepath.Join("configs", "config.yaml")
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to load configuration")
		return nil, zerolog.Logger{}, err
	}

	logLevel := strings.ToLower(cfg.Logging.Level)
	prettyLog := strings.ToLower(cfg.Logging.Format) == "text"

	logger.Configure(logger.Config{
		Level:  logLevel,
		Pretty: prettyLog,
	})

	lgr := log.Logger
	lgr.Info().Str("logLevel", logLevel).Str("logFormat", cfg.Logging.Format).Msg("Logger configured")
	return cfg, lgr, nil
}

// SetupDatabase establishes the database connection, runs migrations and
// seeds default data.
func SetupDatabase(cfg *config.Config, lgr zerolog.Logger) (*db.PostgresDB, error) {
	lgr.Info().Msg("Establishing database connection...")
	database, err := db.NewPostgresDB(cfg)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to connect to database")
		return nil, err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := database.Pool.Ping(ctx); err != nil {
		lgr.Error().Err(err).Msg("Failed to ping database")
		database.Close()
		return nil, err
	}
	lgr.Info().Msg("Database connection successfully established.")

	lgr.Info().Msg("Running database migrations...")
	migrator := appMigrations.NewMigrator(database.Pool)

	migrationsDir := "migrations"
	if _, err := os.Stat(migrationsDir); os.IsNotExist(err) {
		lgr.Error().Str("path", migrationsDir).Msg("Migrations directory not found")
		return nil, fmt.Errorf("migrations directory not found at %s: %w", migrationsDir, err)
	}

	if err := migrator.MigrateFromDirectory(context.Background(), migrationsDir); err != nil {
		lgr.Error().Err(err).Msg("Database migration error")
		return nil, fmt.Errorf("database migrations failed: %w", err)
	}

	lgr.Info().Msg("Database migrations successfully applied.")

	if err := seed.CreateDefaultData(context.Background(), database.Pool, cfg, lgr); err != nil {
		// Seeding problems shouldn't prevent startup
		lgr.Error().Err(err).Msg("Failed to create default data, proceeding anyway...")
	}

	return database, nil
}

// BuildDependencies initializes application repositories, services, and controllers.
func BuildDependencies(cfg *config.Config, database *db.PostgresDB, lgr zerolog.Logger) (*Dependencies, error) {
	deps := &Dependencies{Logger: lgr}

	deps.Repos = appRepos.NewRepositories(database.Pool)

	deps.JWTService = pkgAuth.NewJWTService(pkgAuth.JWTConfig{
		SecretKey:      cfg.JWT.Secret,
		AccessTokenExp: helpers.ParseDuration(cfg.JWT.AccessTokenExpiration, 24*time.Hour),
		TokenIssuer:    cfg.JWT.Issuer,
	})

	deps.AuthService = appServices.NewAuthService(deps.Repos.UserRepository, deps.JWTService, lgr)
	deps.SchoolService = appServices.NewSchoolService(deps.Repos.SchoolRepository, deps.Repos.CourseRepository)
	deps.CourseService = appServices.NewCourseService(
		database,
		deps.Repos.CourseRepository,
		deps.Repos.SchoolRepository,
		deps.Repos.RatingRepository,
	)
	deps.RatingService = appServices.NewRatingService(deps.Repos.RatingRepository, deps.Repos.CourseRepository)

	deps.AuthMiddleware = appMiddleware.NewAuthMiddleware(deps.JWTService)

	deps.AuthController = appControllers.NewAuthController(deps.AuthService)
	deps.SchoolController = appControllers.NewSchoolController(deps.SchoolService)
	deps.CourseController = appControllers.NewCourseController(deps.CourseService)
	deps.RatingController = appControllers.NewRatingController(deps.RatingService)

	return deps, nil
}

// SetupRouter configures the Gin engine with middleware and routes.
func SetupRouter(cfg *config.Config, deps *Dependencies, lgr zerolog.Logger) *gin.Engine {
	if strings.ToLower(cfg.Server.Mode) == "production" {
		gin.SetMode(gin.ReleaseMode)
		lgr.Info().Msg("Setting Gin mode to release")
	} else {
		gin.SetMode(gin.DebugMode)
		lgr.Info().Msg("Setting Gin mode to debug")
	}

	router := gin.Default()

	appRoutes.SetupRouter(router,
		deps.AuthController,
		deps.SchoolController,
		deps.CourseController,
		deps.RatingController,
		deps.AuthMiddleware,
	)

	// Test endpoint
	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong", "status": "success"})
	})

	return router
}
