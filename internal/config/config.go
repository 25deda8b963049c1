// Package config provides environment configuration for the API server.
package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application.
type Config struct {
	// Server settings
	ServerPort         string
	ServerReadTimeout  time.Duration
	ServerWriteTimeout time.Duration

	// Completion provider settings
	OpenAIAPIKey    string
	AnthropicAPIKey string
	DefaultProvider string
	DefaultModel    string

	// Memory store settings. Empty NATSURL selects the in-process store.
	NATSURL    string
	NATSToken  string
	NATSBucket string

	// Corpus for label edit operations
	CorpusRoot string

	// Locale bundle (optional YAML file overriding compiled-in strings)
	LocaleBundle    string
	DefaultLanguage string

	// Pending operation confirmation TTL
	PendingTTL time.Duration

	// Streaming pacing
	HeartbeatInterval time.Duration
	SegmentDelay      time.Duration
	ChunkDelay        time.Duration
	ChunkSize         int

	// JWT settings for the admin route group
	JWTSecret string

	// Rate limiting
	RateLimitRequests int
	RateLimitWindow   time.Duration

	// Logging
	LogLevel string

	// Tracing
	TracingEndpoint string
	TracingEnabled  bool
}

// Load reads configuration from the environment, with .env autoload for
// local development.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		ServerPort:         getEnv("PORT", "8080"),
		ServerReadTimeout:  getDurationEnv("SERVER_READ_TIMEOUT", 30*time.Second),
		ServerWriteTimeout: getDurationEnv("SERVER_WRITE_TIMEOUT", 120*time.Second),

		OpenAIAPIKey:    getEnv("OPENAI_API_KEY", ""),
		AnthropicAPIKey: getEnv("ANTHROPIC_API_KEY", ""),
		DefaultProvider: getEnv("DEFAULT_PROVIDER", "openai"),
		DefaultModel:    getEnv("DEFAULT_MODEL", ""),

		NATSURL:    getEnv("NATS_URL", ""),
		NATSToken:  getEnv("NATS_TOKEN", ""),
		NATSBucket: getEnv("NATS_BUCKET", "assistant-memory"),

		CorpusRoot: getEnv("CORPUS_ROOT", "./content"),

		LocaleBundle:    getEnv("LOCALE_BUNDLE", ""),
		DefaultLanguage: getEnv("DEFAULT_LANGUAGE", "ka"),

		PendingTTL: getDurationEnv("PENDING_TTL", 15*time.Minute),

		HeartbeatInterval: getDurationEnv("HEARTBEAT_INTERVAL", time.Second),
		SegmentDelay:      getDurationEnv("SEGMENT_DELAY", 120*time.Millisecond),
		ChunkDelay:        getDurationEnv("CHUNK_DELAY", 30*time.Millisecond),
		ChunkSize:         getIntEnv("CHUNK_SIZE", 48),

		JWTSecret: getEnv("JWT_SECRET", "development-secret-change-in-production"),

		RateLimitRequests: getIntEnv("RATE_LIMIT_REQUESTS", 60),
		RateLimitWindow:   getDurationEnv("RATE_LIMIT_WINDOW", time.Minute),

		LogLevel: getEnv("LOG_LEVEL", "info"),

		TracingEndpoint: getEnv("TRACING_ENDPOINT", "localhost:4318"),
		TracingEnabled:  getBoolEnv("TRACING_ENABLED", false),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getIntEnv(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if i, err := strconv.Atoi(value); err == nil {
			return i
		}
	}
	return defaultValue
}

func getBoolEnv(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return defaultValue
}

func getDurationEnv(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}
