package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/rs/zerolog"

	"investwise-api/internal/models"
	"investwise-api/internal/services"
)

const Version = "1.0.0"

// AppOptions carries the HTTP-level settings of the server.
type AppOptions struct {
	CORSOrigins  string
	RateLimitMax int
}

// NewApp builds the fiber application with middleware and routes.
func NewApp(advisory *services.AdvisoryService, opts AppOptions, log zerolog.Logger) *fiber.App {
	app := fiber.New(fiber.Config{
		StrictRouting: true,
		CaseSensitive: true,
		ServerHeader:  "InvestWise-API",
		AppName:       "InvestWise v" + Version,
		ReadTimeout:   10 * time.Second,
		WriteTimeout:  10 * time.Second,
		BodyLimit:     1 * 1024 * 1024,
		ErrorHandler:  NewErrorHandler(log),
	})

	app.Use(recover.New())
	app.Use(requestid.New())
	app.Use(RequestLogger(log))
	app.Use(compress.New(compress.Config{
		Level: compress.LevelBestSpeed,
	}))
	app.Use(cors.New(cors.Config{
		AllowOrigins: opts.CORSOrigins,
		AllowMethods: "GET,POST,OPTIONS",
		AllowHeaders: "Origin,Content-Type,Accept,Authorization",
		MaxAge:       3600,
	}))
	if opts.RateLimitMax > 0 {
		app.Use(limiter.New(limiter.Config{
			Max:        opts.RateLimitMax,
			Expiration: 1 * time.Minute,
			LimitReached: func(c *fiber.Ctx) error {
				return c.Status(fiber.StatusTooManyRequests).JSON(models.ErrorResponse{
					Error: "Rate limit exceeded. Please try again later.",
					Code:  fiber.StatusTooManyRequests,
				})
			},
		}))
	}

	advisoryHandler := NewAdvisoryHandler(advisory)
	healthHandler := NewHealthHandler(advisory)

	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"message": "InvestWise AI - Your Personal Financial Advisory Platform",
			"version": Version,
			"status":  "running",
		})
	})

	api := app.Group("/api")
	api.Get("/health", healthHandler.Health)
	api.Get("/health/ready", healthHandler.Ready)

	api.Post("/user-profile", advisoryHandler.CreateProfile)
	api.Post("/risk-assessment", advisoryHandler.AssessRisk)
	api.Post("/investment-recommendations", advisoryHandler.Recommend)
	api.Get("/user/:user_id/dashboard", advisoryHandler.Dashboard)

	api.Get("/funds", advisoryHandler.Funds)
	api.Get("/quotes", advisoryHandler.Quotes)
	api.Get("/market-insights", advisoryHandler.MarketInsights)

	return app
}
