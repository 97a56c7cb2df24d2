package llm

import "fmt"

// apiErrorBody is the error envelope returned by the completion API.
type apiErrorBody struct {
	Error struct {
		Message string `json:"message"`
		Type    string `json:"type"`
		Code    string `json:"code"`
	} `json:"error"`
}

// UpstreamError reports a non-2xx response from the completion provider.
type UpstreamError struct {
	StatusCode int    // HTTP status returned by the provider
	Type       string // Provider error type, if present
	Code       string // Provider error code (e.g., "model_decommissioned")
	Message    string // Human-readable detail from the provider
}

func (e *UpstreamError) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("upstream returned %d (%s): %s", e.StatusCode, e.Code, e.Message)
	}
	return fmt.Sprintf("upstream returned %d: %s", e.StatusCode, e.Message)
}
