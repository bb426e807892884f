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

	appControllers "github.com/campusdb/registrar/internal/app/controllers"
	appMigrations "github.com/campusdb/registrar/internal/app/migrations"
	appRepos "github.com/campusdb/registrar/internal/app/repositories"
	appRoutes "github.com/campusdb/registrar/internal/app/routes"
	appServices "github.com/campusdb/registrar/internal/app/services"
	"github.com/campusdb/registrar/internal/config"
	"github.com/campusdb/registrar/internal/db"
	"github.com/campusdb/registrar/internal/middleware"
	"github.com/campusdb/registrar/internal/pkg/logger"
	"github.com/campusdb/registrar/internal/seed"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	DepartmentService     appServices.DepartmentService
	InstructorService     appServices.InstructorService
	StudentService        appServices.StudentService
	CourseService         appServices.CourseService
	EnrollmentService     appServices.EnrollmentService
	GradeService          appServices.GradeService
	DepartmentHeadService appServices.DepartmentHeadService

	DepartmentController     *appControllers.DepartmentController
	InstructorController     *appControllers.InstructorController
	StudentController        *appControllers.StudentController
	CourseController         *appControllers.CourseController
	EnrollmentController     *appControllers.EnrollmentController
	GradeController          *appControllers.GradeController
	DepartmentHeadController *appControllers.DepartmentHeadController

	Repos  *appRepos.Repositories
	Logger zerolog.Logger
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

	// Seed reference data after migrations. Failure is logged, not fatal.
	if err := seed.CreateDefaultData(context.Background(), dbPool, lgr); err != nil {
		lgr.Error().Err(err).Msg("Failed to create default data, proceeding anyway...")
	}

	return dbPool, nil
}

// BuildDependencies initializes application repositories, services, and controllers.
func BuildDependencies(cfg *config.Config, dbPool *pgxpool.Pool, lgr zerolog.Logger) (*Dependencies, error) {
	deps := &Dependencies{Logger: lgr}

	deps.Repos = appRepos.NewRepositories(dbPool)

	deps.DepartmentService = appServices.NewDepartmentService(deps.Repos.DepartmentRepository)
	deps.InstructorService = appServices.NewInstructorService(deps.Repos.InstructorRepository)
	deps.StudentService = appServices.NewStudentService(deps.Repos.StudentRepository, deps.Repos.GradeRepository)
	deps.CourseService = appServices.NewCourseService(deps.Repos.CourseRepository)
	deps.EnrollmentService = appServices.NewEnrollmentService(deps.Repos.EnrollmentRepository)
	deps.GradeService = appServices.NewGradeService(deps.Repos.GradeRepository)
	deps.DepartmentHeadService = appServices.NewDepartmentHeadService(deps.Repos.DepartmentHeadRepository)

	deps.DepartmentController = appControllers.NewDepartmentController(deps.DepartmentService)
	deps.InstructorController = appControllers.NewInstructorController(deps.InstructorService)
	deps.StudentController = appControllers.NewStudentController(deps.StudentService)
	deps.CourseController = appControllers.NewCourseController(deps.CourseService)
	deps.EnrollmentController = appControllers.NewEnrollmentController(deps.EnrollmentService)
	deps.GradeController = appControllers.NewGradeController(deps.GradeService)
	deps.DepartmentHeadController = appControllers.NewDepartmentHeadController(deps.DepartmentHeadService)

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
	router.Use(middleware.RequestID())
	router.Use(middleware.RequestLogger())
	router.Use(middleware.CORS())

	appRoutes.SetupRouter(router,
		deps.DepartmentController,
		deps.InstructorController,
		deps.StudentController,
		deps.CourseController,
		deps.EnrollmentController,
		deps.GradeController,
		deps.DepartmentHeadController,
	)

	return router
}
