package server

import (
	"bufio"
	"context"
	"encoding/json"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	"github.com/nehal404/portfolio-chatbot-backend/pkg/llm"
	"github.com/nehal404/portfolio-chatbot-backend/pkg/prompt"
)

// fallbackReply is returned when the upstream reports success but
// carries no generated text.
const fallbackReply = "Sorry, I could not generate a response."

// ChatRequest is the inbound request body. It accepts both contracts:
// the single-message form (message + optional chatHistory) and the
// full-thread form (messages). Stream, when set, overrides the server's
// default dispatch mode.
type ChatRequest struct {
	Message     string        `json:"message"`
	ChatHistory []llm.Message `json:"chatHistory"`
	Messages    []llm.Message `json:"messages"`
	Stream      *bool         `json:"stream"`
}

// ChatReply is the blocking-mode success payload.
type ChatReply struct {
	Response  string `json:"response"`
	Timestamp string `json:"timestamp"`
}

// ErrorEnvelope is the error payload for every failure on the API.
type ErrorEnvelope struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

// handleChat serves POST /api/chat. OPTIONS preflights never reach it;
// the CORS middleware answers those.
func (s *Server) handleChat(c *fiber.Ctx) error {
	if c.Method() != fiber.MethodPost {
		return c.Status(fiber.StatusMethodNotAllowed).JSON(ErrorEnvelope{Error: "Method not allowed"})
	}

	body := c.Body()
	if len(body) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorEnvelope{Error: "Request body is empty"})
	}

	var req ChatRequest
	if err := json.Unmarshal(body, &req); err != nil {
		s.logger.Debug("failed to parse request", zap.Error(err), zap.String("request_id", reqID(c)))
		return c.Status(fiber.StatusBadRequest).JSON(ErrorEnvelope{Error: "Invalid JSON body"})
	}

	messages, envelope := s.assemble(req)
	if envelope != nil {
		return c.Status(fiber.StatusBadRequest).JSON(*envelope)
	}

	// Fail fast when the credential is missing rather than making a
	// guaranteed-to-fail upstream call.
	if s.config.APIKey == "" {
		s.logger.Error("upstream credential is not configured", zap.String("request_id", reqID(c)))
		return c.Status(fiber.StatusInternalServerError).JSON(ErrorEnvelope{Error: "Service configuration error"})
	}

	upstreamReq := llm.ChatRequest{
		Model:       s.config.Model,
		Messages:    messages,
		Temperature: s.config.Temperature,
		MaxTokens:   s.config.MaxTokens,
		TopP:        s.config.TopP,
	}

	streaming := s.config.StreamByDefault
	if req.Stream != nil {
		streaming = *req.Stream
	}

	if streaming {
		return s.streamCompletion(c, upstreamReq)
	}
	return s.blockingCompletion(c, upstreamReq)
}

// assemble validates the request and builds the upstream message list.
// A non-nil envelope means a 400.
func (s *Server) assemble(req ChatRequest) ([]llm.Message, *ErrorEnvelope) {
	if len(req.Messages) > 0 {
		messages := s.builder.FromThread(req.Messages)
		if !prompt.HasUserTurn(messages) {
			return nil, &ErrorEnvelope{Error: "At least one user message is required"}
		}
		return messages, nil
	}

	if strings.TrimSpace(req.Message) == "" {
		return nil, &ErrorEnvelope{Error: "Message is required"}
	}
	return s.builder.FromMessage(req.ChatHistory, req.Message), nil
}

// blockingCompletion awaits the full completion and returns it as JSON.
func (s *Server) blockingCompletion(c *fiber.Ctx, req llm.ChatRequest) error {
	startTime := time.Now()

	resp, err := s.completer.Complete(c.Context(), req)
	if err != nil {
		return s.upstreamFailure(c, err)
	}

	text := resp.FirstContent()
	if text == "" {
		text = fallbackReply
	}

	s.logger.Info("completion served",
		zap.String("request_id", reqID(c)),
		zap.String("model", resp.Model),
		zap.Int("completion_tokens", resp.Usage.CompletionTokens),
		zap.Duration("duration", time.Since(startTime)),
	)

	return c.JSON(ChatReply{
		Response:  text,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	})
}

// streamCompletion opens an upstream stream and relays fragments to the
// caller as SSE data events, flushing per fragment. Failures before the
// first byte surface as a JSON envelope; failures mid-stream abort it.
func (s *Server) streamCompletion(c *fiber.Ctx, req llm.ChatRequest) error {
	startTime := time.Now()
	id := reqID(c)

	ctx, cancel := context.WithTimeout(c.Context(), s.config.streamTimeout())

	fragments, err := s.completer.Stream(ctx, req)
	if err != nil {
		cancel()
		return s.upstreamFailure(c, err)
	}

	c.Set(fiber.HeaderContentType, "text/event-stream; charset=utf-8")
	c.Set(fiber.HeaderCacheControl, "no-cache")
	c.Set(fiber.HeaderTransferEncoding, "chunked")

	c.Context().SetBodyStreamWriter(fasthttp.StreamWriter(func(w *bufio.Writer) {
		defer cancel()

		var written int
		for frag := range fragments {
			if frag.Err != nil {
				// Status and headers are already on the wire; all we can
				// do is stop sending and let the client see the cut.
				s.logger.Error("stream aborted",
					zap.Error(frag.Err),
					zap.String("request_id", id),
				)
				return
			}

			if frag.Content != "" {
				payload, err := json.Marshal(struct {
					Content string `json:"content"`
				}{frag.Content})
				if err != nil {
					s.logger.Error("failed to encode fragment", zap.Error(err), zap.String("request_id", id))
					return
				}
				w.WriteString("data: ")
				w.Write(payload)
				w.WriteString("\n\n")
				if err := w.Flush(); err != nil {
					s.logger.Debug("client went away", zap.Error(err), zap.String("request_id", id))
					return
				}
				written++
			}

			if frag.Done {
				break
			}
		}

		w.WriteString("data: [DONE]\n\n")
		w.Flush()

		s.logger.Info("stream served",
			zap.String("request_id", id),
			zap.Int("fragments", written),
			zap.Duration("duration", time.Since(startTime)),
		)
	}))

	return nil
}
