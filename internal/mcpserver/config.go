package mcpserver

import (
	"log/slog"
	"os"
	"strconv"

	"github.com/1ean267/nexustack-sub001/internal/naming"
	"github.com/1ean267/nexustack-sub001/openapi"
)

// serverConfig holds all configurable MCP server defaults.
// Loaded once at startup from environment variables via loadConfig().
type serverConfig struct {
	// Document defaults, overridable per tool call.
	Version openapi.Version
	Format  openapi.Format
	Rename  naming.RenameRule
	Inline  bool

	// List tool defaults.
	ListLimit int
	MaxLimit  int
}

// cfg is the active server configuration, initialized at package load time.
var cfg = loadConfig()

// loadConfig reads configuration from NEXUSDOC_* environment variables.
// Invalid values log a warning and fall back to the hardcoded default.
func loadConfig() *serverConfig {
	return &serverConfig{
		Version:   envVersion("NEXUSDOC_VERSION", openapi.Version31),
		Format:    envFormat("NEXUSDOC_FORMAT", openapi.FormatJSON),
		Rename:    envRename("NEXUSDOC_RENAME", naming.CamelCase),
		Inline:    envBool("NEXUSDOC_INLINE", false),
		ListLimit: envInt("NEXUSDOC_LIST_LIMIT", 100),
		MaxLimit:  envInt("NEXUSDOC_MAX_LIMIT", 1000),
	}
}

func envBool(key string, fallback bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		slog.Warn("invalid bool env var, using default", "key", key, "value", v, "default", fallback)
		return fallback
	}
	return b
}

func envInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		slog.Warn("invalid int env var, using default", "key", key, "value", v, "default", fallback)
		return fallback
	}
	return n
}

func envVersion(key string, fallback openapi.Version) openapi.Version {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	version, err := openapi.ParseVersion(v)
	if err != nil {
		slog.Warn("invalid version env var, using default", "key", key, "value", v, "default", fallback.String())
		return fallback
	}
	return version
}

func envFormat(key string, fallback openapi.Format) openapi.Format {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	format, err := openapi.ParseFormat(v)
	if err != nil {
		slog.Warn("invalid format env var, using default", "key", key, "value", v, "default", string(fallback))
		return fallback
	}
	return format
}

func envRename(key string, fallback naming.RenameRule) naming.RenameRule {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return fallback
	}
	rule, err := naming.ParseRenameRule(v)
	if err != nil {
		slog.Warn("invalid rename env var, using default", "key", key, "value", v, "default", fallback.String())
		return fallback
	}
	return rule
}
