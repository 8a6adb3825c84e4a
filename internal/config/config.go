package config

import (
	"os"
	"strconv"
	"time"
)

// Config carries everything the server reads from the environment. It is
// loaded once at startup; nothing re-reads the environment afterwards.
type Config struct {
	Port      string
	DataDir   string
	JWTSecret string

	// Transcriber selects the speech-to-text strategy: "mock", "gemini"
	// or "google".
	Transcriber string

	GeminiAPIKey   string
	GeminiModel    string
	GeminiTTSModel string

	// Upload polling against the file API.
	PollInterval time.Duration
	PollTimeout  time.Duration
}

// Load reads configuration from environment variables, applying defaults
// for everything except credentials.
func Load() Config {
	return Config{
		Port:           getEnv("PORT", "8080"),
		DataDir:        getEnv("DATA_DIR", "data"),
		JWTSecret:      getEnv("JWT_SECRET", "wicara-dev-secret"),
		Transcriber:    getEnv("TRANSCRIBER", "gemini"),
		GeminiAPIKey:   os.Getenv("GEMINI_API_KEY"),
		GeminiModel:    getEnv("GEMINI_MODEL", "gemini-2.0-flash"),
		GeminiTTSModel: getEnv("GEMINI_TTS_MODEL", "gemini-2.5-flash-preview-tts"),
		PollInterval:   getDuration("UPLOAD_POLL_INTERVAL", 2*time.Second),
		PollTimeout:    getDuration("UPLOAD_POLL_TIMEOUT", 60*time.Second),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getDuration(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	if d, err := time.ParseDuration(v); err == nil && d > 0 {
		return d
	}
	if secs, err := strconv.Atoi(v); err == nil && secs > 0 {
		return time.Duration(secs) * time.Second
	}
	return fallback
}
