package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func setRequiredEnv(t *testing.T) {
	t.Helper()
	t.Setenv("JWT_ACCESS_SECRET", "access-secret")
	t.Setenv("JWT_REFRESH_SECRET", "refresh-secret")
	t.Setenv("LLM_API_KEY", "sk-test")
}

func TestLoad_Defaults(t *testing.T) {
	setRequiredEnv(t)

	cfg, err := Load()
	require.NoError(t, err)

	require.Equal(t, "localhost:8080", cfg.Server.Address())
	require.Equal(t, LLMProviderOpenAI, cfg.LLM.Provider)
	require.Equal(t, "gpt-3.5-turbo", cfg.LLM.Model)
	require.InDelta(t, 0.7, cfg.LLM.Temperature, 0.0001)
	require.Equal(t, 60*time.Second, cfg.LLM.Timeout)
	require.Equal(t, 15*time.Minute, cfg.JWT.AccessTTL)
}

func TestLoad_OpenAIKeyFallback(t *testing.T) {
	t.Setenv("JWT_ACCESS_SECRET", "a")
	t.Setenv("JWT_REFRESH_SECRET", "r")
	t.Setenv("LLM_API_KEY", "")
	t.Setenv("OPENAI_API_KEY", "sk-legacy")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, "sk-legacy", cfg.LLM.APIKey)
}

func TestLoad_GeminiDefaultModel(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("LLM_PROVIDER", "Gemini")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, LLMProviderGemini, cfg.LLM.Provider)
	require.Equal(t, "gemini-2.5-flash", cfg.LLM.Model)
}

func TestLoad_RejectsUnknownProvider(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("LLM_PROVIDER", "kobold")

	_, err := Load()
	require.Error(t, err)
}

func TestLoad_RequiresAPIKey(t *testing.T) {
	t.Setenv("JWT_ACCESS_SECRET", "a")
	t.Setenv("JWT_REFRESH_SECRET", "r")
	t.Setenv("LLM_API_KEY", "")
	t.Setenv("OPENAI_API_KEY", "")

	_, err := Load()
	require.Error(t, err)
}

func TestDocsEnabled(t *testing.T) {
	cfg := &Config{EnableDocs: true, AppEnv: "development"}
	require.True(t, cfg.DocsEnabled())

	cfg.AppEnv = "production"
	require.False(t, cfg.DocsEnabled())

	var nilCfg *Config
	require.False(t, nilCfg.DocsEnabled())
}

func TestGetEnvAsSlice(t *testing.T) {
	t.Setenv("SOME_LIST", " a, b ,,c ")
	require.Equal(t, []string{"a", "b", "c"}, getEnvAsSlice("SOME_LIST", nil))
}
