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
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	appControllers "github.com/C4bbage64/Student-Info-Manager-Application/internal/app/controllers"
	appEvents "github.com/C4bbage64/Student-Info-Manager-Application/internal/app/events"
	appFacade "github.com/C4bbage64/Student-Info-Manager-Application/internal/app/facade"
	appMigrations "github.com/C4bbage64/Student-Info-Manager-Application/internal/app/migrations"
	appRepos "github.com/C4bbage64/Student-Info-Manager-Application/internal/app/repositories"
	appRoutes "github.com/C4bbage64/Student-Info-Manager-Application/internal/app/routes"
	appServices "github.com/C4bbage64/Student-Info-Manager-Application/internal/app/services"
	"github.com/C4bbage64/Student-Info-Manager-Application/internal/config"
	"github.com/C4bbage64/Student-Info-Manager-Application/internal/db"
	appMiddleware "github.com/C4bbage64/Student-Info-Manager-Application/internal/middleware"
	"github.com/C4bbage64/Student-Info-Manager-Application/internal/pkg/logger"
	"github.com/C4bbage64/Student-Info-Manager-Application/internal/seed"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	StudentService       appServices.StudentService
	AttendanceService    appServices.AttendanceService
	PaymentService       appServices.PaymentService
	Management           *appFacade.StudentManagement
	Bus                  *appEvents.Bus
	StudentController    *appControllers.StudentController
	AttendanceController *appControllers.AttendanceController
	PaymentController    *appControllers.PaymentController
	Repos                *appRepos.Repositories
	Logger               zerolog.Logger
}

// LoadConfigAndSetupLogger loads configuration and initializes the logger.
func LoadConfigAndSetupLogger() (*config.Config, zerolog.Logger, error) {
	configPath := filepath.Join("configs", "config.yaml")
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to load configuration")
		return nil, zerolog.Logger{}, err
	}

	logLevel := logger.LogLevel(strings.ToLower(cfg.Logging.Level))
	prettyLog := strings.ToLower(cfg.Logging.Format) == "text"

	logger.Configure(logger.Config{
		Level:  logLevel,
		Pretty: prettyLog,
	})

	lgr := log.Logger
	lgr.Info().Str("logLevel", string(logLevel)).Str("logFormat", cfg.Logging.Format).Msg("Logger configured")
	return cfg, lgr, nil
}

// SetupDatabase establishes the database connection and runs migrations.
func SetupDatabase(cfg *config.Config, lgr zerolog.Logger) (*pgxpool.Pool, error) {
	lgr.Info().Msg("Establishing database connection...")
	database, err := db.NewPostgresDB(cfg)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to connect to database")
		return nil, err
	}
	dbPool := database.Pool

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := dbPool.Ping(ctx); err != nil {
		lgr.Error().Err(err).Msg("Failed to ping database")
		dbPool.Close()
		return nil, err
	}
	lgr.Info().Msg("Database connection successfully established.")

	lgr.Info().Msg("Running database migrations...")
	migrator := appMigrations.NewMigrator(dbPool)

	migrationsDir := "migrations"
	if _, err := os.Stat(migrationsDir); os.IsNotExist(err) {
		lgr.Error().Str("path", migrationsDir).Msg("Migrations directory not found")
		return nil, fmt.Errorf("migrations directory not found at %s: %w", migrationsDir, err)
	}

	if err := migrator.MigrateFromDirectory(migrationsDir); err != nil {
		lgr.Error().Err(err).Msg("Database migration error")
		return nil, fmt.Errorf("database migrations failed: %w", err)
	}

	lgr.Info().Msg("Database migrations successfully applied.")

	// Demo data is opt-in
	if cfg.Seed.Demo {
		if err := seed.CreateDefaultData(context.Background(), dbPool, lgr); err != nil {
			lgr.Error().Err(err).Msg("Failed to seed demo data, proceeding anyway...")
		}
	}

	return dbPool, nil
}

// BuildDependencies initializes application repositories, services, facade and controllers.
func BuildDependencies(cfg *config.Config, dbPool *pgxpool.Pool, lgr zerolog.Logger) (*Dependencies, error) {
	deps := &Dependencies{Logger: lgr}

	deps.Repos = appRepos.NewRepositories(dbPool)

	deps.StudentService = appServices.NewStudentService(deps.Repos.StudentRepository, lgr)
	deps.AttendanceService = appServices.NewAttendanceService(deps.Repos.AttendanceRepository, deps.Repos.StudentRepository)
	deps.PaymentService = appServices.NewPaymentService(deps.Repos.PaymentRepository, deps.Repos.StudentRepository)

	deps.Bus = appEvents.NewBus(lgr)

	deps.Management = appFacade.New(
		deps.StudentService,
		deps.AttendanceService,
		deps.PaymentService,
		deps.Bus,
		cfg.Fees.TotalAmount,
		lgr,
	)

	deps.StudentController = appControllers.NewStudentController(deps.Management)
	deps.AttendanceController = appControllers.NewAttendanceController(deps.Management)
	deps.PaymentController = appControllers.NewPaymentController(deps.Management)

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

	router := gin.New()
	router.Use(appMiddleware.RequestLogger(lgr))
	router.Use(gin.Recovery())

	appRoutes.SetupRouter(router,
		deps.StudentController,
		deps.AttendanceController,
		deps.PaymentController,
	)

	// Test endpoint
	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong", "status": "success"})
	})

	return router
}
