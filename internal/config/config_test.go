package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"doctriage/internal/config"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.Server.Port)
	assert.Equal(t, 15*time.Second, cfg.Server.ReadTimeout)
	assert.Equal(t, 30*time.Second, cfg.Server.WriteTimeout)
	assert.Equal(t, "development", cfg.Server.Environment)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.False(t, cfg.Auth.Enabled())
	assert.False(t, cfg.LLM.Enrich)
	assert.Equal(t, 30*time.Second, cfg.LLM.EnrichTimeout)
	assert.Equal(t, "gpt-4o", cfg.OCR.Model)
	assert.Equal(t, int64(10), cfg.OCR.MaxFileSizeMB)
	assert.Equal(t, "whisper-1", cfg.Transcribe.Model)
	assert.Equal(t, int64(25), cfg.Transcribe.MaxFileSizeMB)
	assert.False(t, cfg.Archive.Enabled())
}

func TestLoad_EnvironmentOverrides(t *testing.T) {
	t.Setenv("DOCTRIAGE_SERVER_PORT", ":9090")
	t.Setenv("DOCTRIAGE_OCR_MAX_FILE_SIZE_MB", "5")
	t.Setenv("DOCTRIAGE_LLM_ENRICH", "true")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, ":9090", cfg.Server.Port)
	assert.Equal(t, int64(5), cfg.OCR.MaxFileSizeMB)
	assert.True(t, cfg.LLM.Enrich)
}

func TestLoad_CORSOriginsCommaSplit(t *testing.T) {
	t.Setenv("DOCTRIAGE_CORS_ALLOWED_ORIGINS", "https://app.example.com,https://admin.example.com")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, []string{"https://app.example.com", "https://admin.example.com"}, cfg.CORS.AllowedOrigins)
}

func TestAuthConfig_Enabled(t *testing.T) {
	t.Setenv("DOCTRIAGE_AUTH_JWT_SECRET", "shared-secret")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.True(t, cfg.Auth.Enabled())
	assert.Equal(t, "doctriage", cfg.Auth.Issuer)
}

func TestArchiveConfig_Enabled(t *testing.T) {
	t.Setenv("DOCTRIAGE_ARCHIVE_BUCKET", "doc-archive")
	t.Setenv("DOCTRIAGE_ARCHIVE_REGION", "eu-west-1")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.True(t, cfg.Archive.Enabled())
	assert.Equal(t, "eu-west-1", cfg.Archive.Region)
}

func TestLLMConfig_ProviderConfigsOrder(t *testing.T) {
	t.Setenv("DOCTRIAGE_LLM_PRIMARY_PROVIDER", "openai")
	t.Setenv("DOCTRIAGE_LLM_SECONDARY_PROVIDER", "anthropic")

	cfg, err := config.Load()
	require.NoError(t, err)

	providers := cfg.LLM.ProviderConfigs()
	require.Len(t, providers, 2)
	assert.Equal(t, "openai", providers[0].Provider)
	assert.Equal(t, "anthropic", providers[1].Provider)
}

func TestLLMConfig_NoProvidersConfigured(t *testing.T) {
	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Empty(t, cfg.LLM.ProviderConfigs())
}
