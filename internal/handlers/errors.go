package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"investwise-api/internal/models"
)

// NewErrorHandler maps service errors to JSON responses: missing records
// become 404, rejected input 400 and everything else 500.
func NewErrorHandler(log zerolog.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		code := fiber.StatusInternalServerError
		title := "Request failed"

		var fe *fiber.Error
		var verr *models.ValidationError
		switch {
		case errors.Is(err, models.ErrNotFound):
			code, title = fiber.StatusNotFound, "Not found"
		case errors.As(err, &verr):
			code, title = fiber.StatusBadRequest, "Invalid input"
		case errors.As(err, &fe):
			code = fe.Code
		}

		if code >= fiber.StatusInternalServerError {
			log.Error().Err(err).
				Str("path", c.Path()).
				Str("request_id", requestID(c)).
				Msg("Request failed")
		}

		return c.Status(code).JSON(models.ErrorResponse{
			Error:   title,
			Message: err.Error(),
			Code:    code,
		})
	}
}
