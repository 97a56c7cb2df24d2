package server

import (
	"errors"
	"net/http"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/nehal404/portfolio-chatbot-backend/pkg/llm"
)

// Upstream error codes that mean the configured model is gone.
const (
	codeModelDecommissioned = "model_decommissioned"
	codeModelNotFound       = "model_not_found"
)

// upstreamFailure translates a completion error into the caller-facing
// status and envelope. The upstream credential and raw provider errors
// never leak; detail is echoed only outside production, except for 400s
// where the provider's complaint is the actionable part.
func (s *Server) upstreamFailure(c *fiber.Ctx, err error) error {
	s.logger.Error("completion failed", zap.Error(err), zap.String("request_id", reqID(c)))

	var ue *llm.UpstreamError
	if errors.As(err, &ue) {
		if ue.Code == codeModelDecommissioned || ue.Code == codeModelNotFound {
			return c.Status(fiber.StatusInternalServerError).JSON(ErrorEnvelope{Error: "Model no longer available"})
		}

		switch ue.StatusCode {
		case http.StatusUnauthorized:
			return c.Status(fiber.StatusInternalServerError).JSON(ErrorEnvelope{Error: "Authentication failed"})
		case http.StatusTooManyRequests:
			return c.Status(fiber.StatusTooManyRequests).JSON(ErrorEnvelope{Error: "Rate limit exceeded. Please try again later."})
		case http.StatusServiceUnavailable:
			return c.Status(fiber.StatusServiceUnavailable).JSON(ErrorEnvelope{Error: "Service temporarily unavailable"})
		case http.StatusBadRequest:
			return c.Status(fiber.StatusBadRequest).JSON(ErrorEnvelope{
				Error:   "Invalid request",
				Details: ue.Message,
			})
		}
	}

	envelope := ErrorEnvelope{Error: "Internal server error"}
	if !s.config.Production() {
		envelope.Details = err.Error()
	}
	return c.Status(fiber.StatusInternalServerError).JSON(envelope)
}
