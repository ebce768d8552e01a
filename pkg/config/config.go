// Package config loads process configuration for cmd/ledgerbuf from
// environment variables, in the style of Mindburn-Labs-helm/core/pkg/config.
// Neither pkg/eventbuffer nor pkg/interp depends on this package: both are
// pure libraries, configured entirely by their callers' Go values.
package config

import (
	"os"
	"strconv"
)

// Config holds the demo command's process configuration.
type Config struct {
	LogLevel string

	// MaxBufferSize is the event buffer's total capacity (spec §3.1).
	MaxBufferSize int

	// MaxBufferedChunkSize caps how many items a single Inclusive or
	// LastBufferChunkSuffix slice result returns (spec §3.1).
	MaxBufferedChunkSize int

	// DatabaseURL is read from DATABASE_URL. cmd/ledgerbuf does not use it:
	// the drive demo always runs on in-memory resolvers.
	DatabaseURL string

	// RedisAddr is read from REDIS_ADDR. cmd/ledgerbuf does not use it.
	RedisAddr string
}

// Load reads configuration from the environment, applying the same
// defaults the teacher's Load() does: empty optionals, sane numeric
// fallbacks.
func Load() *Config {
	logLevel := os.Getenv("LOG_LEVEL")
	if logLevel == "" {
		logLevel = "INFO"
	}

	maxBufferSize := envInt("MAX_BUFFER_SIZE", 10000)
	maxChunk := envInt("MAX_BUFFERED_CHUNK_SIZE", 1000)

	return &Config{
		LogLevel:             logLevel,
		MaxBufferSize:        maxBufferSize,
		MaxBufferedChunkSize: maxChunk,
		DatabaseURL:          os.Getenv("DATABASE_URL"),
		RedisAddr:            os.Getenv("REDIS_ADDR"),
	}
}

func envInt(name string, fallback int) int {
	raw := os.Getenv(name)
	if raw == "" {
		return fallback
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return v
}
