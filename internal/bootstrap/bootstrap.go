package bootstrap

import (
	"context"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	appControllers "github.com/yigit/facultyroster/internal/app/controllers"
	appLoader "github.com/yigit/facultyroster/internal/app/loader"
	appRepos "github.com/yigit/facultyroster/internal/app/repositories"
	appRoutes "github.com/yigit/facultyroster/internal/app/routes"
	appServices "github.com/yigit/facultyroster/internal/app/services"
	"github.com/yigit/facultyroster/internal/config"
	appMiddleware "github.com/yigit/facultyroster/internal/middleware"
	"github.com/yigit/facultyroster/internal/pkg/logger"
	"github.com/yigit/facultyroster/internal/seed"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	RosterService        appServices.RosterService // Interface type
	InstructorController *appControllers.InstructorController
	DepartmentController *appControllers.DepartmentController
	DegreeController     *appControllers.DegreeController
	RosterController     *appControllers.RosterController
	Repos                *appRepos.Repositories
	Logger               zerolog.Logger
}

// LoadConfigAndSetupLogger loads configuration and initializes the logger.
// CONFIG_PATH overrides the default configuration file location.
func LoadConfigAndSetupLogger() (*config.Config, zerolog.Logger, error) {
	configPath := config.GetEnv("CONFIG_PATH", config.DefaultConfigPath)
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		logger.Error().Err(err).Str("path", configPath).Msg("Failed to load configuration")
		return nil, zerolog.Logger{}, err
	}

	lgr := logger.Configure(logger.ConfigFrom(cfg.Logging.Level, cfg.Logging.Format))
	lgr.Info().
		Str("config", configPath).
		Str("logLevel", strings.ToLower(cfg.Logging.Level)).
		Str("logFormat", cfg.Logging.Format).
		Msg("Logger configured")
	return cfg, lgr, nil
}

// BuildDependencies initializes application repositories, services, and controllers.
func BuildDependencies(cfg *config.Config, lgr zerolog.Logger) *Dependencies {
	deps := &Dependencies{Logger: lgr}

	deps.Repos = appRepos.NewRepositories()

	rosterLoader := appLoader.FileLoader{
		Path: cfg.Roster.Path,
		Options: appLoader.CSVOptions{
			Comma:      cfg.CommaRune(),
			Comment:    cfg.CommentRune(),
			LazyQuotes: cfg.Roster.LazyQuotes,
		},
	}
	deps.RosterService = appServices.NewRosterService(
		rosterLoader,
		deps.Repos.InstructorRepository,
		lgr.With().Str("component", "roster").Logger(),
	)

	deps.InstructorController = appControllers.NewInstructorController(deps.RosterService)
	deps.DepartmentController = appControllers.NewDepartmentController(deps.RosterService)
	deps.DegreeController = appControllers.NewDegreeController(deps.RosterService)
	deps.RosterController = appControllers.NewRosterController(deps.RosterService)

	return deps
}

// LoadInitialRoster imports the roster at startup when the configuration asks for it.
func LoadInitialRoster(ctx context.Context, cfg *config.Config, deps *Dependencies) error {
	if !cfg.Roster.LoadOnStartup {
		deps.Logger.Info().Msg("Roster import on startup disabled; use POST /api/v1/roster/reload")
		return nil
	}
	return seed.LoadRoster(ctx, deps.RosterService, deps.Logger)
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
	router.Use(gin.Recovery(), appMiddleware.RequestLogger(lgr))

	appRoutes.SetupRouter(router,
		deps.InstructorController,
		deps.DepartmentController,
		deps.DegreeController,
		deps.RosterController,
	)

	return router
}
