package config

import (
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all application configuration.
type Config struct {
	Server     ServerConfig
	Log        LogConfig
	CORS       CORSConfig
	Auth       AuthConfig
	LLM        LLMConfig
	OCR        OCRConfig
	Transcribe TranscribeConfig
	Archive    ArchiveConfig
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port         string        `mapstructure:"port"`
	ReadTimeout  time.Duration `mapstructure:"read_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
	Environment  string        `mapstructure:"environment"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// AuthConfig holds optional bearer-token settings. Tokens are minted by an
// external identity service; when no secret is configured the API is open.
type AuthConfig struct {
	JWTSecret string `mapstructure:"jwt_secret"`
	Issuer    string `mapstructure:"issuer"`
}

// Enabled reports whether bearer authentication should guard the API.
func (a *AuthConfig) Enabled() bool {
	return a.JWTSecret != ""
}

// LLMProviderConfig holds settings for a single LLM provider.
type LLMProviderConfig struct {
	Provider    string `mapstructure:"provider"`
	APIKey      string `mapstructure:"api_key"`
	Model       string `mapstructure:"model"`
	TimeoutSecs int    `mapstructure:"timeout_secs"`
}

// LLMConfig holds field-enrichment settings with multi-provider fallback.
type LLMConfig struct {
	Enrich        bool              `mapstructure:"enrich"`
	EnrichTimeout time.Duration     `mapstructure:"enrich_timeout"`
	Primary       LLMProviderConfig `mapstructure:"primary"`
	Secondary     LLMProviderConfig `mapstructure:"secondary"`
	Tertiary      LLMProviderConfig `mapstructure:"tertiary"`
}

// ProviderConfigs returns the configured provider configs in fallback order.
func (l *LLMConfig) ProviderConfigs() []*LLMProviderConfig {
	var out []*LLMProviderConfig
	for _, cfg := range []*LLMProviderConfig{&l.Primary, &l.Secondary, &l.Tertiary} {
		if cfg.Provider != "" {
			out = append(out, cfg)
		}
	}
	return out
}

// OCRConfig holds image text-recognition settings.
type OCRConfig struct {
	APIKey        string `mapstructure:"api_key"`
	Model         string `mapstructure:"model"`
	TimeoutSecs   int    `mapstructure:"timeout_secs"`
	MaxFileSizeMB int64  `mapstructure:"max_file_size_mb"`
}

// TranscribeConfig holds audio transcription settings.
type TranscribeConfig struct {
	APIKey        string `mapstructure:"api_key"`
	Model         string `mapstructure:"model"`
	TimeoutSecs   int    `mapstructure:"timeout_secs"`
	MaxFileSizeMB int64  `mapstructure:"max_file_size_mb"`
}

// ArchiveConfig holds S3 settings for optional archival of uploaded media.
// An empty bucket disables archival.
type ArchiveConfig struct {
	Region    string `mapstructure:"region"`
	Bucket    string `mapstructure:"bucket"`
	Endpoint  string `mapstructure:"endpoint"`
	AccessKey string `mapstructure:"access_key"`
	SecretKey string `mapstructure:"secret_key"`
}

// Enabled reports whether uploaded media should be archived.
func (a *ArchiveConfig) Enabled() bool {
	return a.Bucket != ""
}

// Load reads configuration from environment variables with the DOCTRIAGE_
// prefix.
func Load() (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix("DOCTRIAGE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Server defaults
	v.SetDefault("server.port", ":8080")
	v.SetDefault("server.read_timeout", "15s")
	v.SetDefault("server.write_timeout", "30s")
	v.SetDefault("server.environment", "development")

	// Log defaults
	v.SetDefault("log.level", "debug")
	v.SetDefault("log.format", "console")

	// CORS defaults (localhost origins for development)
	v.SetDefault("cors.allowed_origins", "http://localhost:3000,http://127.0.0.1:3000")

	// Auth defaults (disabled unless a secret is provided)
	v.SetDefault("auth.jwt_secret", "")
	v.SetDefault("auth.issuer", "doctriage")

	// LLM enrichment defaults
	v.SetDefault("llm.enrich", false)
	v.SetDefault("llm.enrich_timeout", "30s")
	v.SetDefault("llm.primary.provider", "")
	v.SetDefault("llm.primary.api_key", "")
	v.SetDefault("llm.primary.model", "")
	v.SetDefault("llm.primary.timeout_secs", 60)
	v.SetDefault("llm.secondary.provider", "")
	v.SetDefault("llm.secondary.api_key", "")
	v.SetDefault("llm.secondary.model", "")
	v.SetDefault("llm.secondary.timeout_secs", 60)
	v.SetDefault("llm.tertiary.provider", "")
	v.SetDefault("llm.tertiary.api_key", "")
	v.SetDefault("llm.tertiary.model", "")
	v.SetDefault("llm.tertiary.timeout_secs", 60)

	// OCR defaults
	v.SetDefault("ocr.api_key", "")
	v.SetDefault("ocr.model", "gpt-4o")
	v.SetDefault("ocr.timeout_secs", 120)
	v.SetDefault("ocr.max_file_size_mb", 10)

	// Transcription defaults
	v.SetDefault("transcribe.api_key", "")
	v.SetDefault("transcribe.model", "whisper-1")
	v.SetDefault("transcribe.timeout_secs", 120)
	v.SetDefault("transcribe.max_file_size_mb", 25)

	// Archive defaults (disabled unless a bucket is provided)
	v.SetDefault("archive.region", "us-east-1")
	v.SetDefault("archive.bucket", "")
	v.SetDefault("archive.endpoint", "")
	v.SetDefault("archive.access_key", "")
	v.SetDefault("archive.secret_key", "")

	// Bind environment variables explicitly for nested keys
	envBindings := map[string]string{
		"server.port":                 "DOCTRIAGE_SERVER_PORT",
		"server.read_timeout":         "DOCTRIAGE_SERVER_READ_TIMEOUT",
		"server.write_timeout":        "DOCTRIAGE_SERVER_WRITE_TIMEOUT",
		"server.environment":          "DOCTRIAGE_SERVER_ENVIRONMENT",
		"log.level":                   "DOCTRIAGE_LOG_LEVEL",
		"log.format":                  "DOCTRIAGE_LOG_FORMAT",
		"cors.allowed_origins":        "DOCTRIAGE_CORS_ALLOWED_ORIGINS",
		"auth.jwt_secret":             "DOCTRIAGE_AUTH_JWT_SECRET",
		"auth.issuer":                 "DOCTRIAGE_AUTH_ISSUER",
		"llm.enrich":                  "DOCTRIAGE_LLM_ENRICH",
		"llm.enrich_timeout":          "DOCTRIAGE_LLM_ENRICH_TIMEOUT",
		"llm.primary.provider":        "DOCTRIAGE_LLM_PRIMARY_PROVIDER",
		"llm.primary.api_key":         "DOCTRIAGE_LLM_PRIMARY_API_KEY",
		"llm.primary.model":           "DOCTRIAGE_LLM_PRIMARY_MODEL",
		"llm.primary.timeout_secs":    "DOCTRIAGE_LLM_PRIMARY_TIMEOUT_SECS",
		"llm.secondary.provider":      "DOCTRIAGE_LLM_SECONDARY_PROVIDER",
		"llm.secondary.api_key":       "DOCTRIAGE_LLM_SECONDARY_API_KEY",
		"llm.secondary.model":         "DOCTRIAGE_LLM_SECONDARY_MODEL",
		"llm.tertiary.provider":       "DOCTRIAGE_LLM_TERTIARY_PROVIDER",
		"llm.tertiary.api_key":        "DOCTRIAGE_LLM_TERTIARY_API_KEY",
		"llm.tertiary.model":          "DOCTRIAGE_LLM_TERTIARY_MODEL",
		"ocr.api_key":                 "DOCTRIAGE_OCR_API_KEY",
		"ocr.model":                   "DOCTRIAGE_OCR_MODEL",
		"ocr.timeout_secs":            "DOCTRIAGE_OCR_TIMEOUT_SECS",
		"ocr.max_file_size_mb":        "DOCTRIAGE_OCR_MAX_FILE_SIZE_MB",
		"transcribe.api_key":          "DOCTRIAGE_TRANSCRIBE_API_KEY",
		"transcribe.model":            "DOCTRIAGE_TRANSCRIBE_MODEL",
		"transcribe.timeout_secs":     "DOCTRIAGE_TRANSCRIBE_TIMEOUT_SECS",
		"transcribe.max_file_size_mb": "DOCTRIAGE_TRANSCRIBE_MAX_FILE_SIZE_MB",
		"archive.region":              "DOCTRIAGE_ARCHIVE_REGION",
		"archive.bucket":              "DOCTRIAGE_ARCHIVE_BUCKET",
		"archive.endpoint":            "DOCTRIAGE_ARCHIVE_ENDPOINT",
		"archive.access_key":          "DOCTRIAGE_ARCHIVE_ACCESS_KEY",
		"archive.secret_key":          "DOCTRIAGE_ARCHIVE_SECRET_KEY",
	}
	for key, env := range envBindings {
		if err := v.BindEnv(key, env); err != nil {
			return nil, err
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	// Comma-separated origins arrive as a single string from the environment.
	if len(cfg.CORS.AllowedOrigins) == 1 && strings.Contains(cfg.CORS.AllowedOrigins[0], ",") {
		cfg.CORS.AllowedOrigins = strings.Split(cfg.CORS.AllowedOrigins[0], ",")
	}

	return &cfg, nil
}
