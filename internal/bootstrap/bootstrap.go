package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	appControllers "github.com/yigit/hrmslite/internal/app/controllers"
	appMigrations "github.com/yigit/hrmslite/internal/app/migrations"
	appRepos "github.com/yigit/hrmslite/internal/app/repositories"
	appRoutes "github.com/yigit/hrmslite/internal/app/routes"
	appServices "github.com/yigit/hrmslite/internal/app/services"
	"github.com/yigit/hrmslite/internal/config"
	"github.com/yigit/hrmslite/internal/db"
	appMiddleware "github.com/yigit/hrmslite/internal/middleware"
	"github.com/yigit/hrmslite/internal/pkg/logger"
	"github.com/yigit/hrmslite/internal/pkg/metrics"
	"github.com/yigit/hrmslite/internal/pkg/validation"
)

const startupTimeout = 30 * time.Second

// Dependencies holds all the application dependencies
type Dependencies struct {
	Repos                *appRepos.Repositories
	Services             *appServices.Services
	EmployeeController   *appControllers.EmployeeController
	AttendanceController *appControllers.AttendanceController
	HealthController     *appControllers.HealthController
	Metrics              *metrics.Metrics // nil when metrics are disabled
	MetricsHandler       http.Handler     // nil when metrics are disabled
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

	lgr := logger.Configure(logger.Config{
		Level:   logLevel,
		Pretty:  prettyLog,
		Service: cfg.ProjectName,
	})

	lgr.Info().
		Str("env", cfg.Env).
		Str("logLevel", string(logLevel)).
		Str("logFormat", cfg.Logging.Format).
		Strs("corsOrigins", cfg.CORS.AllowedOrigins).
		Msg("Configuration loaded")
	return cfg, lgr, nil
}

// SetupDatabase creates the database when allowed and missing, establishes the
// connection pool and applies the schema migrations.
func SetupDatabase(cfg *config.Config, lgr zerolog.Logger) (*db.PostgresDB, error) {
	ctx, cancel := context.WithTimeout(context.Background(), startupTimeout)
	defer cancel()

	if cfg.Database.EnsureExists {
		created, err := db.EnsureDatabase(ctx, cfg.Database.URL)
		switch {
		case err != nil:
			// The database may still exist and be reachable; the pool below decides.
			lgr.Warn().Err(err).Str("database", cfg.DatabaseName()).Msg("Could not ensure database exists")
		case created:
			lgr.Info().Str("database", cfg.DatabaseName()).Msg("Database created")
		}
	}

	lgr.Info().Msg("Establishing database connection...")
	database, err := db.NewPostgresDB(cfg)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to connect to database")
		return nil, err
	}
	lgr.Info().Msg("Database connection successfully established.")

	lgr.Info().Msg("Running database migrations...")
	applied, err := appMigrations.NewMigrator(database.Pool, lgr).Migrate(ctx, appMigrations.Files())
	if err != nil {
		lgr.Error().Err(err).Msg("Database migration error")
		database.Close()
		return nil, fmt.Errorf("database migrations failed: %w", err)
	}
	lgr.Info().Int("applied", applied).Msg("Database migrations successfully applied.")

	return database, nil
}

// BuildDependencies initializes application repositories, services, and controllers.
func BuildDependencies(cfg *config.Config, database *db.PostgresDB, lgr zerolog.Logger) *Dependencies {
	deps := &Dependencies{Logger: lgr}

	if cfg.Metrics.Enabled {
		reg := prometheus.NewRegistry()
		reg.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		)
		deps.Metrics = metrics.NewMetrics(reg)
		deps.MetricsHandler = promhttp.HandlerFor(reg, promhttp.HandlerOpts{})
	}

	deps.Repos = appRepos.NewRepositories(database.Pool, deps.Metrics)
	deps.Services = appServices.NewServices(deps.Repos, deps.Metrics)

	deps.EmployeeController = appControllers.NewEmployeeController(deps.Services.EmployeeService)
	deps.AttendanceController = appControllers.NewAttendanceController(deps.Services.AttendanceService)
	deps.HealthController = appControllers.NewHealthController(database.Pool)

	return deps
}

// SetupRouter configures the Gin engine with middleware and routes.
func SetupRouter(cfg *config.Config, deps *Dependencies, lgr zerolog.Logger) (*gin.Engine, error) {
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
		lgr.Info().Msg("Setting Gin mode to release")
	} else {
		gin.SetMode(gin.DebugMode)
		lgr.Info().Msg("Setting Gin mode to debug")
	}

	if err := validation.RegisterGinRules(); err != nil {
		return nil, fmt.Errorf("failed to register validation rules: %w", err)
	}

	router := gin.New()
	router.Use(
		gin.Recovery(),
		appMiddleware.RequestLogger(deps.Metrics),
		appMiddleware.CORS(cfg.CORS.AllowedOrigins),
	)

	appRoutes.SetupRouter(router,
		deps.EmployeeController,
		deps.AttendanceController,
		deps.HealthController,
		deps.MetricsHandler,
	)

	return router, nil
}
