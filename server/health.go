package server

import (
	"time"

	"github.com/gofiber/fiber/v2"
)

// HealthResponse is the GET /api/health payload.
type HealthResponse struct {
	Status    string         `json:"status"`
	Timestamp string         `json:"timestamp"`
	Services  HealthServices `json:"services"`
	Version   string         `json:"version"`
}

// HealthServices reports per-dependency availability signals.
type HealthServices struct {
	GroqAPI string `json:"groq_api"`
	Backend string `json:"backend"`
}

// handleHealth serves GET /api/health. It never contacts the upstream
// provider; it only reports whether the credential is configured.
func (s *Server) handleHealth(c *fiber.Ctx) error {
	if c.Method() != fiber.MethodGet {
		return c.Status(fiber.StatusMethodNotAllowed).JSON(ErrorEnvelope{Error: "Method not allowed"})
	}

	upstream := "configured"
	if s.config.APIKey == "" {
		upstream = "missing_key"
	}

	return c.JSON(HealthResponse{
		Status:    "healthy",
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Services: HealthServices{
			GroqAPI: upstream,
			Backend: "operational",
		},
		Version: s.config.Version,
	})
}
