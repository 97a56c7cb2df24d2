package llm

// StreamChunk represents a single SSE data payload in a streaming response.
type StreamChunk struct {
	ID      string        `json:"id"`
	Object  string        `json:"object"`
	Created int64         `json:"created"`
	Model   string        `json:"model"`
	Choices []DeltaChoice `json:"choices"`
}

// DeltaChoice carries the incremental part of one completion alternative.
type DeltaChoice struct {
	Index        int     `json:"index"`
	Delta        Delta   `json:"delta"`
	FinishReason *string `json:"finish_reason"`
}

// Delta is the incremental message content within a stream chunk.
type Delta struct {
	Role    string `json:"role,omitempty"`
	Content string `json:"content,omitempty"`
}

// Fragment is one element of the stream a Client hands back to callers:
// a piece of generated text, the end-of-stream marker, or a terminal error.
type Fragment struct {
	Content string
	Done    bool
	Err     error
}
