package api

import (
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"

	"github.com/dwirez99/majunkita/internal/api/handler"
	"github.com/dwirez99/majunkita/internal/api/middleware"
	"github.com/dwirez99/majunkita/internal/core/ports"
	"github.com/dwirez99/majunkita/internal/core/service"
	"github.com/dwirez99/majunkita/internal/infrastructure/db/postgres"
)

// NewRouter builds and returns the Echo instance with all routes registered.
// jwtSecret is the identity provider's token-signing secret.
func NewRouter(pool *pgxpool.Pool, provider ports.IdentityProvider, jwtSecret string, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(middleware.CORS())
	e.Use(echoprometheus.NewMiddleware("majunkita"))

	// --- Dependencies ---
	profiles := postgres.NewProfileRepository(pool)
	userService := service.NewUserAdminService(provider, profiles, log)
	userHandler := handler.NewUserHandler(userService)
	auth := middleware.Auth(jwtSecret)

	// --- Administrative user routes ---
	e.POST("/create-user", userHandler.Create, auth)
	e.POST("/update-user", userHandler.Update, auth)
	e.POST("/delete-user", userHandler.Delete, auth)

	// --- Observability (no auth required) ---
	e.GET("/metrics", echoprometheus.NewHandler())

	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(pool)

	e.GET("/health", healthHandler.Liveness)           // liveness  – is the process alive?
	e.GET("/health/ready", readinessHandler.Readiness) // readiness – are dependencies up?

	return e
}
