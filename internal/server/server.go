package server

import (
	"fmt"
	"io/fs"
	"log/slog"
	"net/http"
	"strings"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/cors"
	"github.com/gofiber/fiber/v3/middleware/limiter"
	"github.com/gofiber/fiber/v3/middleware/recover"
	"github.com/gofiber/fiber/v3/middleware/requestid"
	"github.com/gofiber/fiber/v3/middleware/static"
	"github.com/gofiber/template/html/v3"
	"github.com/google/uuid"

	"searchportal"
	"searchportal/internal/config"
	"searchportal/internal/middleware"
)

// Server wraps the Fiber app and configuration.
type Server struct {
	App *fiber.App
	Cfg *config.Config
}

// New creates a new server with middleware configured.
func New(cfg *config.Config) (*Server, error) {
	views, err := fs.Sub(searchportal.Views, "views")
	if err != nil {
		return nil, fmt.Errorf("failed to load views: %w", err)
	}
	assets, err := fs.Sub(searchportal.Static, "static")
	if err != nil {
		return nil, fmt.Errorf("failed to load static assets: %w", err)
	}

	// Setup template engine
	engine := html.NewFileSystem(http.FS(views), ".html")

	// Initialize Fiber
	app := fiber.New(fiber.Config{
		Views:        engine,
		ViewsLayout:  "layouts/main",
		ErrorHandler: errorHandler(cfg),
	})

	// Global middleware
	app.Use(recover.New())
	app.Use(requestid.New(requestid.Config{
		Generator: uuid.NewString,
	}))
	app.Use(middleware.RequestLogger(slog.Default(), "/api"))

	// CORS middleware
	corsOrigins := cfg.BaseURL
	if cfg.CORSOrigins != "" {
		corsOrigins = cfg.CORSOrigins
	}
	app.Use(cors.New(cors.Config{
		AllowOrigins: strings.Split(corsOrigins, ","),
		AllowMethods: []string{"GET", "POST", "OPTIONS"},
		AllowHeaders: []string{"Origin", "Content-Type", "Accept", "X-Request-ID"},
		MaxAge:       86400,
	}))

	// Rate limiting middleware, off unless RATE_LIMIT_MAX is set
	if cfg.IsRateLimited() {
		limiterCfg := limiter.Config{
			Max:        cfg.RateLimitMax,
			Expiration: cfg.RateLimitWindow,
			KeyGenerator: func(c fiber.Ctx) string {
				return c.IP()
			},
			LimitReached: func(c fiber.Ctx) error {
				return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{
					"status": "error",
					"error":  "Rate limit exceeded. Please try again later.",
				})
			},
		}
		if cfg.RedisURL != "" {
			storage, err := newRedisStorage(cfg.RedisURL)
			if err != nil {
				return nil, err
			}
			limiterCfg.Storage = storage
		}
		app.Use(limiter.New(limiterCfg))
	}

	// Static files
	app.Get("/static*", static.New("", static.Config{
		FS: assets,
	}))

	return &Server{
		App: app,
		Cfg: cfg,
	}, nil
}

// errorHandler answers /api paths with JSON and everything else with the
// error page.
func errorHandler(cfg *config.Config) fiber.ErrorHandler {
	return func(c fiber.Ctx, err error) error {
		code := fiber.StatusInternalServerError
		message := "Internal Server Error"

		if e, ok := err.(*fiber.Error); ok {
			code = e.Code
			message = e.Message
		} else {
			slog.Error("unhandled error", "method", c.Method(), "path", c.Path(), "error", err)
		}

		if strings.HasPrefix(c.Path(), "/api") {
			return c.Status(code).JSON(fiber.Map{
				"status": "error",
				"error":  message,
			})
		}

		return c.Status(code).Render("error", fiber.Map{
			"Title":       "Error",
			"Code":        code,
			"Message":     message,
			"SiteTitle":   cfg.SiteTitle,
			"SiteTagline": cfg.SiteTagline,
			"SiteFooter":  cfg.SiteFooter,
		})
	}
}

// Start starts the server on the configured address.
func (s *Server) Start() error {
	return s.App.Listen(s.Cfg.ServerAddr, fiber.ListenConfig{
		DisableStartupMessage: !s.Cfg.IsDev(),
	})
}

// Shutdown gracefully shuts down the server.
func (s *Server) Shutdown() error {
	return s.App.Shutdown()
}
