package server

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigDefaults(t *testing.T) {
	var config Config
	config.applyDefaults()

	assert.Equal(t, ":8080", config.ListenAddr)
	assert.Equal(t, "production", config.Environment)
	assert.Equal(t, "https://api.groq.com/openai/v1", config.UpstreamURL)
	assert.Equal(t, "llama3-8b-8192", config.Model)
	assert.InDelta(t, 0.7, config.Temperature, 0.001)
	assert.Equal(t, 1024, config.MaxTokens)
	assert.InDelta(t, 1.0, config.TopP, 0.001)
	assert.Equal(t, 10, config.HistoryLimit)
	assert.Equal(t, 30*time.Second, config.streamTimeout())
	assert.True(t, config.Production())
}

func TestConfigDefaultsDoNotOverride(t *testing.T) {
	config := Config{
		ListenAddr:  ":9000",
		Environment: "development",
		Model:       "other-model",
	}
	config.applyDefaults()

	assert.Equal(t, ":9000", config.ListenAddr)
	assert.Equal(t, "other-model", config.Model)
	assert.False(t, config.Production())
}

func TestLoadPersonaInline(t *testing.T) {
	config := Config{Persona: "inline persona"}

	persona, err := config.loadPersona()
	require.NoError(t, err)
	assert.Equal(t, "inline persona", persona)
}

func TestLoadPersonaFileWins(t *testing.T) {
	path := filepath.Join(t.TempDir(), "persona.txt")
	require.NoError(t, os.WriteFile(path, []byte("file persona"), 0o644))

	config := Config{Persona: "inline persona", PersonaFile: path}

	persona, err := config.loadPersona()
	require.NoError(t, err)
	assert.Equal(t, "file persona", persona)
}

func TestLoadPersonaFileMissing(t *testing.T) {
	config := Config{PersonaFile: filepath.Join(t.TempDir(), "nope.txt")}

	_, err := config.loadPersona()
	assert.Error(t, err)
}
