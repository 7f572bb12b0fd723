// Package config provides application configuration.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds all application configuration.
type Config struct {
	Port           string
	DBPath         string
	AllowedOrigins []string
	PersonaPath    string

	Chat          ChatConfig
	LLM           LLMConfig
	SMTP          SMTPConfig
	TranscriptLog TranscriptLogConfig
}

// ChatConfig controls chat validation and history policy.
type ChatConfig struct {
	MaxMessageChars   int
	HistoryWindow     int
	PromptWindow      int
	SessionTTL        time.Duration
	RateLimitRequests int
	RateLimitWindow   time.Duration
}

// LLMConfig selects and tunes the hosted model provider.
type LLMConfig struct {
	Provider    string // "anthropic" or "openai"
	Model       string
	APIKey      string
	BaseURL     string // OpenAI-compatible endpoints only
	MaxTokens   int
	Temperature float64
	TopP        float64
}

// SMTPConfig configures the contact notification sender. Notifications are
// disabled when Host or To is empty.
type SMTPConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
	To       string
}

// Enabled reports whether notification email is configured.
func (c SMTPConfig) Enabled() bool {
	return c.Host != "" && c.From != "" && c.To != ""
}

// TranscriptLogConfig controls NDJSON chat transcript logging.
type TranscriptLogConfig struct {
	Enabled   bool
	Dir       string
	QueueSize int
}

// Load reads configuration from environment variables.
func Load() (*Config, error) {
	queueSize := getEnvInt("TRANSCRIPT_LOG_QUEUE_SIZE", 1000)
	if queueSize <= 0 {
		queueSize = 1000
	}

	cfg := &Config{
		Port:           getEnv("PORT", "8080"),
		DBPath:         getEnv("DB_PATH", "./data/portfolio.db"),
		AllowedOrigins: splitOrigins(getEnv("ALLOWED_ORIGIN", "*")),
		PersonaPath:    getEnv("PERSONA_PATH", ""),
		Chat: ChatConfig{
			MaxMessageChars:   getEnvInt("CHAT_MAX_MESSAGE_CHARS", 1000),
			HistoryWindow:     getEnvInt("CHAT_HISTORY_WINDOW", 5),
			PromptWindow:      getEnvInt("CHAT_PROMPT_WINDOW", 3),
			SessionTTL:        getEnvDuration("CHAT_SESSION_TTL", 2*time.Hour),
			RateLimitRequests: getEnvInt("CHAT_RATE_LIMIT_REQUESTS", 10),
			RateLimitWindow:   getEnvDuration("CHAT_RATE_LIMIT_WINDOW", time.Minute),
		},
		LLM: LLMConfig{
			Provider:    strings.ToLower(getEnv("LLM_PROVIDER", "anthropic")),
			Model:       getEnv("LLM_MODEL", ""),
			APIKey:      getEnv("LLM_API_KEY", os.Getenv("ANTHROPIC_API_KEY")),
			BaseURL:     getEnv("LLM_BASE_URL", ""),
			MaxTokens:   getEnvInt("LLM_MAX_TOKENS", 500),
			Temperature: getEnvFloat("LLM_TEMPERATURE", 0.8),
			TopP:        getEnvFloat("LLM_TOP_P", 0.9),
		},
		SMTP: SMTPConfig{
			Host:     getEnv("SMTP_HOST", ""),
			Port:     getEnvInt("SMTP_PORT", 587),
			Username: getEnv("SMTP_USERNAME", ""),
			Password: getEnv("SMTP_PASSWORD", ""),
			From:     getEnv("SMTP_FROM", ""),
			To:       getEnv("CONTACT_TO_EMAIL", ""),
		},
		TranscriptLog: TranscriptLogConfig{
			Enabled:   getEnvBool("TRANSCRIPT_LOG_ENABLED", false),
			Dir:       getEnv("TRANSCRIPT_LOG_DIR", "./data/logs/transcripts"),
			QueueSize: queueSize,
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// Validate checks that all required configuration fields are set.
func (c *Config) Validate() error {
	if c.Port == "" {
		return fmt.Errorf("PORT cannot be empty")
	}
	if c.DBPath == "" {
		return fmt.Errorf("DB_PATH cannot be empty")
	}
	if c.Chat.MaxMessageChars <= 0 {
		return fmt.Errorf("CHAT_MAX_MESSAGE_CHARS must be > 0")
	}
	if c.Chat.HistoryWindow <= 0 {
		return fmt.Errorf("CHAT_HISTORY_WINDOW must be > 0")
	}
	if c.Chat.PromptWindow <= 0 || c.Chat.PromptWindow > c.Chat.HistoryWindow {
		return fmt.Errorf("CHAT_PROMPT_WINDOW must be in 1..CHAT_HISTORY_WINDOW")
	}
	if c.Chat.SessionTTL <= 0 {
		return fmt.Errorf("CHAT_SESSION_TTL must be > 0")
	}
	switch c.LLM.Provider {
	case "anthropic", "openai":
	default:
		return fmt.Errorf("LLM_PROVIDER must be \"anthropic\" or \"openai\", got %q", c.LLM.Provider)
	}
	if c.LLM.MaxTokens <= 0 {
		return fmt.Errorf("LLM_MAX_TOKENS must be > 0")
	}
	if c.TranscriptLog.Enabled && c.TranscriptLog.Dir == "" {
		return fmt.Errorf("TRANSCRIPT_LOG_DIR cannot be empty when transcript logging is enabled")
	}
	return nil
}

func splitOrigins(raw string) []string {
	parts := strings.Split(raw, ",")
	origins := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			origins = append(origins, p)
		}
	}
	if len(origins) == 0 {
		origins = []string{"*"}
	}
	return origins
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	value, ok := os.LookupEnv(key)
	if !ok {
		return fallback
	}
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "1", "true", "yes", "on":
		return true
	case "0", "false", "no", "off":
		return false
	default:
		return fallback
	}
}

func getEnvInt(key string, fallback int) int {
	value, ok := os.LookupEnv(key)
	if !ok {
		return fallback
	}
	n, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		return fallback
	}
	return n
}

func getEnvFloat(key string, fallback float64) float64 {
	value, ok := os.LookupEnv(key)
	if !ok {
		return fallback
	}
	f, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
	if err != nil {
		return fallback
	}
	return f
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	value, ok := os.LookupEnv(key)
	if !ok {
		return fallback
	}
	d, err := time.ParseDuration(strings.TrimSpace(value))
	if err != nil {
		return fallback
	}
	return d
}
