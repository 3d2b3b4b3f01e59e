package api

import (
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/pravoline/legal-site-api/internal/api/handler"
	"github.com/pravoline/legal-site-api/internal/api/middleware"
	"github.com/pravoline/legal-site-api/internal/core/domain"
	"github.com/pravoline/legal-site-api/internal/core/ports"
	"github.com/pravoline/legal-site-api/internal/infrastructure/http/handlers"
)

// Deps carries everything the router needs. Services and repositories
// come in as ports so tests can substitute in-memory fakes; Mongo and
// Redis are only used by the readiness probe and may be nil.
type Deps struct {
	Logger     zerolog.Logger
	SessionTTL time.Duration

	Auth  ports.AuthService
	Users ports.UserService
	Leads ports.LeadService

	Services   ports.CatalogRepository[domain.Service]
	Advantages ports.CatalogRepository[domain.Advantage]
	Team       ports.CatalogRepository[domain.TeamMember]
	Reviews    ports.CatalogRepository[domain.Review]
	Settings   ports.SettingsRepository

	Files      ports.FileStore
	UploadsDir string

	Mongo *mongo.Database
	Redis *redis.Client
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(deps Deps) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(deps.Logger)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("legalsite"))

	// --- Guards ---
	session := middleware.Session(deps.Auth)
	adminOnly := middleware.RequireRole(domain.RoleAdmin)
	csrf := middleware.CSRF()
	// CSRF runs first on every mutation so forged cross-site requests are
	// rejected before auth or datastore work happens.
	adminMutation := []echo.MiddlewareFunc{csrf, session, adminOnly}

	// --- Session lifecycle ---
	authHandler := handler.NewAuthHandler(deps.Auth, deps.SessionTTL)
	e.POST("/login", authHandler.Login)
	e.DELETE("/login", authHandler.Logout)
	e.GET("/me", authHandler.Me, session)
	e.GET("/csrf", authHandler.CSRFToken)

	// --- Leads (public capture, staff review) ---
	leadHandler := handler.NewLeadHandler(deps.Leads)
	e.POST("/request", leadHandler.Create, csrf)
	e.GET("/request", leadHandler.List, session)
	e.DELETE("/request", leadHandler.Delete, csrf, session)

	// --- Credential management ---
	userHandler := handler.NewUserHandler(deps.Users)
	e.GET("/user", userHandler.List, session)
	e.POST("/user", userHandler.Create, adminMutation...)
	e.PUT("/user", userHandler.Update, adminMutation...)
	e.PATCH("/user", userHandler.Update, adminMutation...)
	e.DELETE("/user", userHandler.Delete, adminMutation...)

	// --- Site content ---
	contentHandler := handler.NewContentHandler(deps.Services, deps.Advantages, deps.Team, deps.Reviews)
	contentHandler.Register(e, adminMutation...)

	settingsHandler := handler.NewSettingsHandler(deps.Settings)
	e.GET("/settings", settingsHandler.Get)
	e.POST("/settings", settingsHandler.Put, adminMutation...)

	// --- Uploads ---
	if deps.Files != nil {
		uploadHandler := handler.NewUploadHandler(deps.Files)
		e.POST("/upload", uploadHandler.Upload, adminMutation...)
	}
	if deps.UploadsDir != "" {
		e.Static("/uploads", deps.UploadsDir)
	}

	// --- Probes and metrics ---
	healthHandler := handlers.NewHealthHandler()
	e.GET("/health", healthHandler.Liveness)
	if deps.Mongo != nil {
		healthDepsHandler := handlers.NewHealthDependenciesHandler(deps.Mongo, deps.Redis)
		e.GET("/health/ready", healthDepsHandler.Readiness)
	}
	e.GET("/metrics", echoprometheus.NewHandler())

	return e
}
