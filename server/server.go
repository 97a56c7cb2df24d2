// Package server implements the portfolio chatbot HTTP API: a stateless
// adapter that forwards assembled conversations to an OpenAI-compatible
// completion provider and relays the reply, whole or streamed.
package server

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/nehal404/portfolio-chatbot-backend/pkg/llm"
	"github.com/nehal404/portfolio-chatbot-backend/pkg/prompt"
)

// Completer issues chat completions against the upstream provider.
// Both dispatch modes share it, so tests can substitute a stub.
type Completer interface {
	Complete(ctx context.Context, req llm.ChatRequest) (*llm.ChatResponse, error)
	Stream(ctx context.Context, req llm.ChatRequest) (<-chan llm.Fragment, error)
}

// Server is the chatbot HTTP server. It holds no per-request state;
// everything here is read-only after New.
type Server struct {
	config    Config
	builder   prompt.Builder
	completer Completer
	logger    *zap.Logger
	app       *fiber.App
}

// New creates a Server from config.
func New(config Config, logger *zap.Logger) (*Server, error) {
	config.applyDefaults()

	persona, err := config.loadPersona()
	if err != nil {
		return nil, err
	}

	s := &Server{
		config: config,
		builder: prompt.Builder{
			Persona:      persona,
			HistoryLimit: config.HistoryLimit,
		},
		completer: llm.NewClient(config.UpstreamURL, config.APIKey, logger),
		logger:    logger,
	}
	s.app = s.buildApp()

	return s, nil
}

// buildApp wires the fiber app: CORS and request-id middleware on every
// route, the two API endpoints, and the debug surface when enabled.
func (s *Server) buildApp() *fiber.App {
	app := fiber.New(fiber.Config{
		DisableStartupMessage: true,
		StreamRequestBody:     true,
	})

	app.Use(requestID())
	app.Use(cors())

	app.All("/api/chat", s.handleChat)
	app.All("/api/health", s.handleHealth)

	if s.config.Debug {
		s.mountDebug(app)
	}

	return app
}

// Run starts the server and blocks until it stops.
func (s *Server) Run() error {
	s.logger.Info("starting chatbot server",
		zap.String("listen", s.config.ListenAddr),
		zap.String("upstream", s.config.UpstreamURL),
		zap.String("model", s.config.Model),
		zap.Bool("stream_by_default", s.config.StreamByDefault),
	)

	return s.app.Listen(s.config.ListenAddr)
}

// Shutdown drains in-flight requests and stops the server.
func (s *Server) Shutdown() error {
	return s.app.ShutdownWithTimeout(5 * time.Second)
}
