package server

import (
	"fmt"
	"os"
	"time"
)

// Defaults mirroring the public deployment.
const (
	defaultListenAddr       = ":8080"
	defaultUpstreamURL      = "https://api.groq.com/openai/v1"
	defaultModel            = "llama3-8b-8192"
	defaultTemperature      = 0.7
	defaultMaxTokens        = 1024
	defaultTopP             = 1.0
	defaultHistoryLimit     = 10
	defaultStreamTimeoutSec = 30
)

// Config is the chatbot server configuration. It is constructed once at
// startup and passed in; handlers never read the environment themselves.
type Config struct {
	// ListenAddr is the address to listen on (e.g., ":8080").
	ListenAddr string `toml:"listen_addr"`

	// Environment is "production" or "development". Outside production,
	// internal error detail is echoed to callers.
	Environment string `toml:"environment"`

	// UpstreamURL is the completion provider's base URL.
	UpstreamURL string `toml:"upstream_url"`

	// APIKey is the upstream credential. Never read from the config file.
	APIKey string `toml:"-"`

	// Model and sampling parameters for every completion request.
	Model       string  `toml:"model"`
	Temperature float64 `toml:"temperature"`
	MaxTokens   int     `toml:"max_tokens"`
	TopP        float64 `toml:"top_p"`

	// HistoryLimit caps how many prior turns are forwarded upstream.
	HistoryLimit int `toml:"history_limit"`

	// StreamByDefault selects the streaming dispatch mode when the
	// request does not ask for one explicitly.
	StreamByDefault bool `toml:"stream_by_default"`

	// StreamTimeoutSeconds bounds a single streaming response.
	StreamTimeoutSeconds int `toml:"stream_timeout_seconds"`

	// Persona is the system prompt injected into every conversation.
	// PersonaFile, when set, is read once at startup and wins.
	Persona     string `toml:"persona"`
	PersonaFile string `toml:"persona_file"`

	// Version is reported by the health endpoint.
	Version string `toml:"-"`

	// Debug enables debug logging and the pprof endpoints.
	Debug bool `toml:"-"`
}

func (c *Config) applyDefaults() {
	if c.ListenAddr == "" {
		c.ListenAddr = defaultListenAddr
	}
	if c.Environment == "" {
		c.Environment = "production"
	}
	if c.UpstreamURL == "" {
		c.UpstreamURL = defaultUpstreamURL
	}
	if c.Model == "" {
		c.Model = defaultModel
	}
	if c.Temperature == 0 {
		c.Temperature = defaultTemperature
	}
	if c.MaxTokens == 0 {
		c.MaxTokens = defaultMaxTokens
	}
	if c.TopP == 0 {
		c.TopP = defaultTopP
	}
	if c.HistoryLimit == 0 {
		c.HistoryLimit = defaultHistoryLimit
	}
	if c.StreamTimeoutSeconds == 0 {
		c.StreamTimeoutSeconds = defaultStreamTimeoutSec
	}
}

// Production reports whether error detail should be withheld from callers.
func (c Config) Production() bool {
	return c.Environment == "production"
}

func (c Config) streamTimeout() time.Duration {
	return time.Duration(c.StreamTimeoutSeconds) * time.Second
}

// loadPersona resolves the persona text, preferring PersonaFile.
func (c Config) loadPersona() (string, error) {
	if c.PersonaFile == "" {
		return c.Persona, nil
	}
	data, err := os.ReadFile(c.PersonaFile)
	if err != nil {
		return "", fmt.Errorf("read persona file %s: %w", c.PersonaFile, err)
	}
	return string(data), nil
}
