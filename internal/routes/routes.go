package routes

import (
	"fmt"
	"log/slog"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"

	"github.com/testrunner-pro/accounts/internal/account"
	"github.com/testrunner-pro/accounts/internal/auth"
	"github.com/testrunner-pro/accounts/internal/config"
	"github.com/testrunner-pro/accounts/internal/middleware"
	"github.com/testrunner-pro/accounts/internal/password"
	"github.com/testrunner-pro/accounts/internal/token"
)

// Deps aggregates shared dependencies required to wire routes.
type Deps struct {
	Cfg    config.Config
	DB     *pgxpool.Pool
	Cache  *redis.Client
	Logger *slog.Logger
}

// Setup configures middlewares and all application routes.
func Setup(app *fiber.App, d Deps) error {
	// The in-memory store is a development convenience only.
	if d.DB == nil && !d.Cfg.IsDev() {
		return fmt.Errorf("database is required when APP_ENV=%s", d.Cfg.AppEnv)
	}

	app.Use(recover.New())
	app.Use(middleware.RequestID())
	app.Use(middleware.Audit(d.Logger))

	RegisterHealthRoutes(app, d)

	var repo account.Repository
	if d.DB != nil {
		repo = account.NewPostgresRepository(d.DB)
	} else {
		repo = account.NewMemoryRepository()
	}

	tokens := token.NewService([]byte(d.Cfg.JWTSecret), d.Cfg.TokenTTL)
	hasher := password.NewHasher(d.Cfg.BcryptCost)
	authSvc := auth.NewService(repo, hasher, tokens)
	authHandler := auth.NewHandler(authSvc, d.Logger)

	cache := account.NewProfileCache(d.Cache, d.Cfg.ProfileCacheTTL)
	profileHandler := account.NewHandler(repo, cache, d.Logger)

	api := app.Group("/api")
	RegisterAuthRoutes(api, authHandler)
	RegisterUserRoutes(api, profileHandler, middleware.SessionGate(tokens))

	return nil
}
