package llm

// ChatRequest represents a chat completion request (OpenAI-compatible).
type ChatRequest struct {
	Model    string    `json:"model"`    // Model name (e.g., "llama3-8b-8192")
	Messages []Message `json:"messages"` // Full conversation to complete
	Stream   bool      `json:"stream"`   // Whether to stream the response

	// Sampling parameters
	Temperature float64  `json:"temperature,omitempty"` // Creativity (0.0-2.0)
	TopP        float64  `json:"top_p,omitempty"`       // Nucleus sampling threshold
	MaxTokens   int      `json:"max_tokens,omitempty"`  // Max tokens to generate
	Stop        []string `json:"stop,omitempty"`        // Stop generation at these sequences
}
