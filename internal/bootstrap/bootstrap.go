package bootstrap

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	appControllers "github.com/yigit/courseboard/internal/app/controllers"
	appMigrations "github.com/yigit/courseboard/internal/app/migrations"
	appRepos "github.com/yigit/courseboard/internal/app/repositories"
	appRoutes "github.com/yigit/courseboard/internal/app/routes"
	"github.com/yigit/courseboard/internal/config"
	"github.com/yigit/courseboard/internal/db"
	appMiddleware "github.com/yigit/courseboard/internal/middleware"
	"github.com/yigit/courseboard/internal/pkg/filestorage"
	"github.com/yigit/courseboard/internal/pkg/logger"
	"github.com/yigit/courseboard/internal/pkg/validation"
	"github.com/yigit/courseboard/internal/seed"
	sqlMigrations "github.com/yigit/courseboard/migrations"
)

var (
	_ appControllers.CourseStore     = (*appRepos.CourseRepository)(nil)
	_ appControllers.ProfessorStore  = (*appRepos.ProfessorRepository)(nil)
	_ appControllers.ReviewStore     = (*appRepos.ReviewRepository)(nil)
	_ appControllers.ThreadStore     = (*appRepos.ThreadRepository)(nil)
	_ appControllers.DepartmentStore = (*appRepos.DepartmentRepository)(nil)
	_ appControllers.Pinger          = (*db.PostgresDB)(nil)
	_ seed.DepartmentSeeder          = (*appRepos.DepartmentRepository)(nil)
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	Repos       *appRepos.Repositories
	Documents   filestorage.DocumentStore
	Controllers *appRoutes.Controllers
	Logger      zerolog.Logger
}

// LoadConfigAndSetupLogger loads configuration and initializes the logger.
func LoadConfigAndSetupLogger(configPath string) (*config.Config, zerolog.Logger, error) {
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to load configuration")
		return nil, zerolog.Logger{}, err
	}

	logLevel := logger.ParseLevel(cfg.Logging.Level)
	prettyLog := strings.ToLower(cfg.Logging.Format) == "text"

	logger.Configure(logger.Config{
		Level:  logLevel,
		Pretty: prettyLog,
	})

	lgr := logger.For("bootstrap")
	lgr.Info().Str("logLevel", string(logLevel)).Str("logFormat", cfg.Logging.Format).Msg("Logger configured")
	return cfg, lgr, nil
}

// SetupDatabase establishes the database connection, applies the embedded
// migrations and seeds the default departments.
func SetupDatabase(ctx context.Context, cfg *config.Config, lgr zerolog.Logger) (*db.PostgresDB, error) {
	lgr.Info().Str("host", cfg.Database.Host).Str("dbname", cfg.Database.DBName).Msg("Establishing database connection...")
	database, err := db.NewPostgresDB(ctx, cfg.Database)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to connect to database")
		return nil, err
	}
	lgr.Info().Msg("Database connection successfully established.")

	lgr.Info().Msg("Running database migrations...")
	if err := appMigrations.NewMigrator(database.Pool).Migrate(ctx, sqlMigrations.Files); err != nil {
		lgr.Error().Err(err).Msg("Database migration error")
		database.Close()
		return nil, fmt.Errorf("database migrations failed: %w", err)
	}
	lgr.Info().Msg("Database migrations successfully applied.")

	if cfg.Database.SeedDepartments {
		departments := appRepos.NewDepartmentRepository(database.Pool)
		if err := seed.CreateDefaultData(ctx, departments, lgr); err != nil {
			lgr.Error().Err(err).Msg("Failed to create default data, proceeding anyway...")
		}
	}

	return database, nil
}

// BuildDependencies initializes repositories, the document store and the
// controllers.
func BuildDependencies(ctx context.Context, cfg *config.Config, database *db.PostgresDB, lgr zerolog.Logger) (*Dependencies, error) {
	deps := &Dependencies{Logger: lgr}

	deps.Repos = appRepos.NewRepositories(database.Pool)

	documents, err := filestorage.New(ctx, cfg.Storage)
	if err != nil {
		lgr.Error().Err(err).Str("driver", cfg.Storage.Driver).Msg("Failed to initialize document storage")
		return nil, fmt.Errorf("failed to initialize document storage: %w", err)
	}
	deps.Documents = documents
	lgr.Info().Str("driver", cfg.Storage.Driver).Msg("Document storage initialized")

	deps.Controllers = appRoutes.NewControllers(
		deps.Repos.CourseRepository,
		deps.Repos.ProfessorRepository,
		deps.Repos.ReviewRepository,
		deps.Repos.ThreadRepository,
		deps.Repos.DepartmentRepository,
		deps.Documents,
		database,
	)

	return deps, nil
}

// SetupRouter configures the Gin engine with middleware and routes.
func SetupRouter(cfg *config.Config, controllers *appRoutes.Controllers, lgr zerolog.Logger) (*gin.Engine, error) {
	if strings.ToLower(cfg.Server.Mode) == "production" {
		gin.SetMode(gin.ReleaseMode)
		lgr.Info().Msg("Setting Gin mode to release")
	} else {
		gin.SetMode(gin.DebugMode)
		lgr.Info().Msg("Setting Gin mode to debug")
	}

	if err := validation.RegisterGinValidators(); err != nil {
		return nil, fmt.Errorf("failed to register validators: %w", err)
	}

	router := gin.New()
	router.Use(
		appMiddleware.Recovery(),
		appMiddleware.RequestLogger(),
		appMiddleware.Metrics(),
		cors.New(corsConfig(cfg.Server.AllowedOrigins)),
		gzip.Gzip(gzip.DefaultCompression, gzip.WithExcludedPaths([]string{"/metrics", "/api/v1/trace-documents"})),
		appMiddleware.Timeout(cfg.Database.AcquireTimeoutDuration()),
	)

	appRoutes.SetupSwagger(router)
	appRoutes.SetupRouter(router, controllers)

	return router, nil
}

func corsConfig(origins []string) cors.Config {
	c := cors.Config{
		AllowMethods:  []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept", "X-Request-ID"},
		ExposeHeaders: []string{"Content-Length", "Content-Disposition", "X-Request-ID"},
		MaxAge:        12 * time.Hour,
	}
	for _, origin := range origins {
		if origin == "*" {
			c.AllowAllOrigins = true
			return c
		}
	}
	c.AllowOrigins = origins
	return c
}
