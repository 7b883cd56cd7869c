// Package bootstrap wires the application together: configuration, logger,
// database, repositories, services, controllers and the router.
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
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	appAuth "github.com/omarhn/registra/internal/app/auth"
	appControllers "github.com/omarhn/registra/internal/app/controllers"
	appMigrations "github.com/omarhn/registra/internal/app/migrations"
	appRepos "github.com/omarhn/registra/internal/app/repositories"
	appRoutes "github.com/omarhn/registra/internal/app/routes"
	appServices "github.com/omarhn/registra/internal/app/services"
	"github.com/omarhn/registra/internal/config"
	"github.com/omarhn/registra/internal/db"
	appModels "github.com/omarhn/registra/internal/app/models"
	appMiddleware "github.com/omarhn/registra/internal/middleware"
	pkgAuth "github.com/omarhn/registra/internal/pkg/auth"
	"github.com/omarhn/registra/internal/pkg/credentials"
	"github.com/omarhn/registra/internal/pkg/helpers"
	"github.com/omarhn/registra/internal/pkg/logger"
	"github.com/omarhn/registra/internal/seed"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	Repos                *appRepos.Repositories
	JWTService           *pkgAuth.JWTService
	Policy               *appAuth.Policy
	AuthService          *appServices.AuthService
	StudentService       *appServices.StudentService
	StaffService         *appServices.StaffService
	SubjectService       *appServices.SubjectService
	DepartmentService    *appServices.DepartmentService
	AuthController       *appControllers.AuthController
	StudentController    *appControllers.StudentController
	StaffController      *appControllers.StaffController
	SubjectController    *appControllers.SubjectController
	DepartmentController *appControllers.DepartmentController
	AuthMiddleware       *appMiddleware.AuthMiddleware
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

// SetupDatabase establishes the database connection, runs migrations and
// seeds the default data.
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

	if err := seed.CreateDefaultData(context.Background(), dbPool, cfg, lgr); err != nil {
		lgr.Error().Err(err).Msg("Failed to create default data, proceeding anyway...")
	}

	return dbPool, nil
}

// BuildDependencies initializes application repositories, services, and controllers.
func BuildDependencies(cfg *config.Config, dbPool *pgxpool.Pool, lgr zerolog.Logger) (*Dependencies, error) {
	deps := &Dependencies{Logger: lgr}

	deps.Repos = appRepos.NewRepositories(dbPool)

	codec := credentials.NewCodec(cfg.Records.CredentialIterations)

	deps.JWTService = pkgAuth.NewJWTService(pkgAuth.JWTConfig{
		SecretKey:      cfg.JWT.Secret,
		AccessTokenExp: helpers.ParseDuration(cfg.JWT.AccessTokenExpiration, 1*time.Hour),
		TokenIssuer:    cfg.JWT.Issuer,
	})

	// Only the configured administrative sub-roles manage records; the wider
	// staff_roles list is the registration enumeration.
	adminRoles := make([]appModels.StaffRole, 0, len(cfg.Records.AdminRoles))
	for _, r := range cfg.Records.AdminRoles {
		adminRoles = append(adminRoles, appModels.StaffRole(r))
	}
	deps.Policy = appAuth.NewPolicy(adminRoles...)

	deps.AuthService = appServices.NewAuthService(
		deps.Repos.StudentRepository,
		deps.Repos.StaffRepository,
		codec,
		deps.JWTService,
		lgr,
	)
	deps.StudentService = appServices.NewStudentService(deps.Repos.StudentRepository, codec, cfg)
	deps.StaffService = appServices.NewStaffService(deps.Repos.StaffRepository, codec, cfg)
	deps.SubjectService = appServices.NewSubjectService(deps.Repos.SubjectRepository)
	deps.DepartmentService = appServices.NewDepartmentService(deps.Repos.DepartmentRepository)

	deps.AuthMiddleware = appMiddleware.NewAuthMiddleware(deps.JWTService, deps.Policy)

	deps.AuthController = appControllers.NewAuthController(deps.AuthService)
	deps.StudentController = appControllers.NewStudentController(deps.StudentService, cfg)
	deps.StaffController = appControllers.NewStaffController(deps.StaffService, cfg)
	deps.SubjectController = appControllers.NewSubjectController(deps.SubjectService)
	deps.DepartmentController = appControllers.NewDepartmentController(deps.DepartmentService)

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
	router.Use(gin.Recovery())
	router.Use(appMiddleware.RequestLogger())

	appRoutes.SetupRouter(router,
		deps.AuthController,
		deps.StudentController,
		deps.StaffController,
		deps.SubjectController,
		deps.DepartmentController,
		deps.AuthMiddleware,
	)

	return router
}
