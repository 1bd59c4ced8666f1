package handlers

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
)

// Pinger reports whether a dependency is reachable.
type Pinger interface {
	Ready(ctx context.Context) error
}

type HealthHandler struct {
	startTime time.Time
	deps      Pinger
}

func NewHealthHandler(deps Pinger) *HealthHandler {
	return &HealthHandler{
		startTime: time.Now(),
		deps:      deps,
	}
}

// Health handles GET /api/health
func (h *HealthHandler) Health(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status":    "healthy",
		"service":   "investwise-api",
		"version":   Version,
		"uptime":    time.Since(h.startTime).String(),
		"timestamp": time.Now(),
	})
}

// Ready handles GET /api/health/ready
func (h *HealthHandler) Ready(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 3*time.Second)
	defer cancel()

	if err := h.deps.Ready(ctx); err != nil {
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
			"status": "unavailable",
			"checks": fiber.Map{
				"api":   "ok",
				"store": err.Error(),
			},
		})
	}
	return c.JSON(fiber.Map{
		"status": "ready",
		"checks": fiber.Map{
			"api":   "ok",
			"store": "ok",
		},
	})
}
