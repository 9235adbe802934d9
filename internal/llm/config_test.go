package llm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultGeminiConfig(t *testing.T) {
	cfg := DefaultGeminiConfig()

	assert.Equal(t, ProviderGemini, cfg.Provider)
	assert.Equal(t, "gemini-2.5-flash-lite", cfg.GetModel(TierLite))
	assert.Equal(t, "gemini-2.5-flash", cfg.GetModel(TierStandard))
	assert.NotEmpty(t, cfg.EmbeddingModel)
}

func TestGetModel_FallsBackToLite(t *testing.T) {
	cfg := &Config{Models: map[ModelTier]string{TierLite: "small-model"}}

	assert.Equal(t, "small-model", cfg.GetModel(TierStandard))
}

func TestGetModel_NoModelsConfigured(t *testing.T) {
	cfg := &Config{}
	assert.Empty(t, cfg.GetModel(TierLite))
}

func TestWithModel_DoesNotMutateOriginal(t *testing.T) {
	cfg := DefaultGeminiConfig()
	original := cfg.GetModel(TierLite)

	updated := cfg.WithModel(TierLite, "custom-model")

	require.Equal(t, "custom-model", updated.GetModel(TierLite))
	assert.Equal(t, original, cfg.GetModel(TierLite))
	assert.Equal(t, cfg.EmbeddingModel, updated.EmbeddingModel)
}
