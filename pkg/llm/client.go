// Package llm provides internal representations of chat completion API
// requests and responses, plus a client for OpenAI-compatible providers.
package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"
)

// streamDoneMarker terminates an SSE completion stream.
const streamDoneMarker = "[DONE]"

// Client calls an OpenAI-compatible chat completion endpoint
// (Groq, OpenAI, or anything speaking the same wire format).
type Client struct {
	baseURL    string
	apiKey     string
	logger     *zap.Logger
	httpClient *http.Client
}

// NewClient creates a completion client for the given base URL
// (e.g., "https://api.groq.com/openai/v1").
func NewClient(baseURL, apiKey string, logger *zap.Logger) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
		logger:  logger,
		httpClient: &http.Client{
			// LLM completions can be slow; the per-request context carries
			// the caller-facing deadline.
			Timeout: 5 * time.Minute,
		},
	}
}

// Complete sends a blocking completion request and returns the full response.
func (c *Client) Complete(ctx context.Context, req ChatRequest) (*ChatResponse, error) {
	req.Stream = false

	httpResp, err := c.post(ctx, req)
	if err != nil {
		return nil, err
	}
	defer httpResp.Body.Close()

	body, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}

	if httpResp.StatusCode != http.StatusOK {
		return nil, parseUpstreamError(httpResp.StatusCode, body)
	}

	var resp ChatResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("unmarshal response: %w", err)
	}

	return &resp, nil
}

// Stream sends a streaming completion request and returns a channel of
// fragments. The channel is closed after the end-of-stream marker, a
// terminal error, or context cancellation. Errors that occur before any
// data arrives are returned synchronously.
func (c *Client) Stream(ctx context.Context, req ChatRequest) (<-chan Fragment, error) {
	req.Stream = true

	httpResp, err := c.post(ctx, req)
	if err != nil {
		return nil, err
	}

	if httpResp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(httpResp.Body)
		httpResp.Body.Close()
		return nil, parseUpstreamError(httpResp.StatusCode, body)
	}

	ch := make(chan Fragment)
	go c.readStream(ctx, httpResp.Body, ch)
	return ch, nil
}

// post issues the completion request. The context carries the caller's
// deadline so a client disconnect aborts the upstream call.
func (c *Client) post(ctx context.Context, req ChatRequest) (*http.Response, error) {
	reqBody, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("marshal request: %w", err)
	}

	url := c.baseURL + "/chat/completions"
	c.logger.Debug("calling completion endpoint",
		zap.String("url", url),
		zap.String("model", req.Model),
		zap.Int("message_count", len(req.Messages)),
		zap.Bool("stream", req.Stream),
	)

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(reqBody))
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+c.apiKey)

	httpResp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("do request: %w", err)
	}
	return httpResp, nil
}

// readStream parses SSE events off the response body and relays text
// fragments until the [DONE] marker.
func (c *Client) readStream(ctx context.Context, body io.ReadCloser, ch chan<- Fragment) {
	defer close(ch)

	reader := newSSEReader(body)
	defer reader.close()

	// Every send must yield to ctx cancellation: once the consumer
	// abandons the channel nothing will ever receive, and an unguarded
	// send would pin this goroutine and the response body forever.
	send := func(frag Fragment) bool {
		select {
		case ch <- frag:
			return true
		case <-ctx.Done():
			return false
		}
	}

	for {
		ev, err := reader.next()
		if err != nil {
			if err != io.EOF {
				c.logger.Error("error reading completion stream", zap.Error(err))
				send(Fragment{Err: err})
			}
			return
		}

		if strings.TrimSpace(ev.Data) == streamDoneMarker {
			send(Fragment{Done: true})
			return
		}

		var chunk StreamChunk
		if err := json.Unmarshal([]byte(ev.Data), &chunk); err != nil {
			c.logger.Warn("failed to parse stream chunk", zap.Error(err), zap.String("data", ev.Data))
			continue
		}
		if len(chunk.Choices) == 0 {
			continue
		}

		frag := Fragment{Content: chunk.Choices[0].Delta.Content}
		if fr := chunk.Choices[0].FinishReason; fr != nil && *fr != "" {
			frag.Done = true
		}

		if !send(frag) {
			return
		}
		if frag.Done {
			return
		}
	}
}

// parseUpstreamError maps a non-2xx provider response to an UpstreamError,
// extracting the provider's error envelope when the body carries one.
func parseUpstreamError(status int, body []byte) error {
	ue := &UpstreamError{StatusCode: status}

	var envelope apiErrorBody
	if err := json.Unmarshal(body, &envelope); err == nil && envelope.Error.Message != "" {
		ue.Message = envelope.Error.Message
		ue.Type = envelope.Error.Type
		ue.Code = envelope.Error.Code
	} else {
		ue.Message = strings.TrimSpace(string(body))
	}

	return ue
}
