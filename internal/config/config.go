// Package config provides configuration loading from environment variables.
package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/usestring/fluidinfo-go/internal/render"
	"github.com/usestring/fluidinfo-go/pkg/fluidinfo"
)

// Config holds all configuration for the fluidinfo CLI.
type Config struct {
	Instance          string        // FLUIDINFO_INSTANCE: "main", "sandbox" or a URL, default main
	Username          string        // FLUIDINFO_USERNAME, default "" (anonymous)
	Password          string        // FLUIDINFO_PASSWORD
	UserAgent         string        // FLUIDINFO_USER_AGENT, default "fluidinfo-go"
	HTTPClientTimeout time.Duration // HTTP_CLIENT_TIMEOUT_MS, default 30000ms (30s)

	// Output compaction (see internal/render)
	CompactMaxArrayItems int // COMPACT_MAX_ARRAY_ITEMS
	CompactMaxStringLen  int // COMPACT_MAX_STRING_LEN

	// Logging configuration
	LogLevel      string // LOG_LEVEL, default "warn"
	LogFile       string // LOG_FILE, default "" (stderr only)
	LogMaxSizeMB  int    // LOG_MAX_SIZE_MB, default 10
	LogMaxBackups int    // LOG_MAX_BACKUPS, default 3
	LogMaxAgeDays int    // LOG_MAX_AGE_DAYS, default 28
	LogCompress   bool   // LOG_COMPRESS, default true
}

// Load reads configuration from environment variables with sensible defaults.
func Load() *Config {
	return &Config{
		Instance:          ResolveInstance(getEnvString("FLUIDINFO_INSTANCE", "main")),
		Username:          getEnvString("FLUIDINFO_USERNAME", ""),
		Password:          getEnvString("FLUIDINFO_PASSWORD", ""),
		UserAgent:         getEnvString("FLUIDINFO_USER_AGENT", "fluidinfo-go"),
		HTTPClientTimeout: getEnvDurationMs("HTTP_CLIENT_TIMEOUT_MS", 30000),

		CompactMaxArrayItems: getEnvInt("COMPACT_MAX_ARRAY_ITEMS", render.DefaultMaxArrayItems),
		CompactMaxStringLen:  getEnvInt("COMPACT_MAX_STRING_LEN", render.DefaultMaxStringLen),

		LogLevel:      getEnvString("LOG_LEVEL", "warn"),
		LogFile:       getEnvString("LOG_FILE", ""),
		LogMaxSizeMB:  getEnvInt("LOG_MAX_SIZE_MB", 10),
		LogMaxBackups: getEnvInt("LOG_MAX_BACKUPS", 3),
		LogMaxAgeDays: getEnvInt("LOG_MAX_AGE_DAYS", 28),
		LogCompress:   getEnvBool("LOG_COMPRESS", true),
	}
}

// ResolveInstance maps the names "main" and "sandbox" to their instance
// URLs. Any other value is taken as a URL.
func ResolveInstance(name string) string {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "main":
		return fluidinfo.MainInstance
	case "sandbox":
		return fluidinfo.SandboxInstance
	}
	return strings.TrimSuffix(name, "/")
}

// HasCredentials reports whether a username is configured.
func (c *Config) HasCredentials() bool {
	return c.Username != ""
}

func getEnvBool(key string, defaultVal bool) bool {
	if v := os.Getenv(key); v != "" {
		switch v {
		case "1", "true", "yes", "on":
			return true
		case "0", "false", "no", "off":
			return false
		}
	}
	return defaultVal
}

func getEnvString(key, defaultVal string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultVal
}

func getEnvInt(key string, defaultVal int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return defaultVal
}

func getEnvDurationMs(key string, defaultMs int) time.Duration {
	ms := getEnvInt(key, defaultMs)
	return time.Duration(ms) * time.Millisecond
}
