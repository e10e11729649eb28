package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/bloglist/bloglist-api/internal/api/handler"
	"github.com/bloglist/bloglist-api/internal/api/middleware"
	"github.com/bloglist/bloglist-api/internal/core/service"
	"github.com/bloglist/bloglist-api/internal/infrastructure/http/handlers"
	"github.com/bloglist/bloglist-api/internal/pkg/config"
	"github.com/bloglist/bloglist-api/pkg/logger"

	mongodb "github.com/bloglist/bloglist-api/internal/infrastructure/db/mongo"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(client *mongo.Client, db *mongo.Database, cfg *config.Config) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(logger.Get())

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("bloglist"))

	// --- Dependencies ---
	userRepo := mongodb.NewUserRepository(db)
	blogRepo := mongodb.NewBlogRepository(db)
	tx := mongodb.NewTxManager(client)

	tokenService := service.NewTokenService(cfg.JWTSecret, cfg.TokenTTL)
	userService := service.NewUserService(userRepo, blogRepo, tokenService, logger.Get())
	blogService := service.NewBlogService(blogRepo, userRepo, tx, logger.Get())

	userHandler := handler.NewUserHandler(userService)
	blogHandler := handler.NewBlogHandler(blogService)
	auth := middleware.Auth(tokenService)

	// --- Blog routes ---
	e.GET("/api/blogs", blogHandler.List)
	e.GET("/api/blogs/stats", blogHandler.Stats)
	e.GET("/api/blogs/:id", blogHandler.Get)
	e.POST("/api/blogs", blogHandler.Create, auth)
	e.DELETE("/api/blogs/:id", blogHandler.Delete, auth)
	if cfg.PublicBlogEdit {
		// Open-edit policy: anyone may update any blog.
		e.PUT("/api/blogs/:id", blogHandler.Update)
	} else {
		e.PUT("/api/blogs/:id", blogHandler.Update, auth)
	}

	// --- User routes ---
	e.GET("/api/users", userHandler.List)
	e.GET("/api/users/:id", userHandler.Get)
	e.POST("/api/users", userHandler.Register)
	e.POST("/api/login", userHandler.Login)

	// --- Health probes and metrics (no auth required) ---
	healthHandler := handlers.NewHealthHandler()
	healthDepsHandler := handlers.NewHealthDependenciesHandler(db)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?
	e.GET("/metrics", echoprometheus.NewHandler())

	return e
}
