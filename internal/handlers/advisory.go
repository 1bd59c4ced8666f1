package handlers

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"

	"investwise-api/internal/models"
	"investwise-api/internal/services"
)

type AdvisoryHandler struct {
	advisory *services.AdvisoryService
}

func NewAdvisoryHandler(advisory *services.AdvisoryService) *AdvisoryHandler {
	return &AdvisoryHandler{
		advisory: advisory,
	}
}

// CreateProfile handles POST /api/user-profile
func (h *AdvisoryHandler) CreateProfile(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 10*time.Second)
	defer cancel()

	var profile models.UserProfile
	if err := c.BodyParser(&profile); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse{
			Error:   "Invalid request body",
			Message: err.Error(),
			Code:    fiber.StatusBadRequest,
		})
	}

	resp, err := h.advisory.CreateProfile(ctx, profile)
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// AssessRisk handles POST /api/risk-assessment?user_id=
func (h *AdvisoryHandler) AssessRisk(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 10*time.Second)
	defer cancel()

	assessment, err := h.advisory.AssessRisk(ctx, c.Query("user_id"))
	if err != nil {
		return err
	}
	return c.JSON(assessment)
}

// Recommend handles POST /api/investment-recommendations?user_id=
func (h *AdvisoryHandler) Recommend(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 10*time.Second)
	defer cancel()

	rec, err := h.advisory.Recommend(ctx, c.Query("user_id"))
	if err != nil {
		return err
	}
	return c.JSON(rec)
}

// Dashboard handles GET /api/user/:user_id/dashboard
func (h *AdvisoryHandler) Dashboard(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 10*time.Second)
	defer cancel()

	dashboard, err := h.advisory.Dashboard(ctx, c.Params("user_id"))
	if err != nil {
		return err
	}
	return c.JSON(dashboard)
}

// Funds handles GET /api/funds
func (h *AdvisoryHandler) Funds(c *fiber.Ctx) error {
	return c.JSON(h.advisory.Funds())
}

// Quotes handles GET /api/quotes
func (h *AdvisoryHandler) Quotes(c *fiber.Ctx) error {
	return c.JSON(services.Quotes())
}

// MarketInsights handles GET /api/market-insights
func (h *AdvisoryHandler) MarketInsights(c *fiber.Ctx) error {
	return c.JSON(services.MarketInsights())
}
