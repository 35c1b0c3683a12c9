package mcpserver

import (
	"log/slog"
	"os"
	"runtime"
	"strconv"
	"strings"
	"time"

	"github.com/erraggy/oasdotnet/csharp"
	"github.com/erraggy/oasdotnet/internal/emitters"
)

// serverConfig holds all configurable MCP server defaults.
// Loaded once at startup from environment variables via loadConfig().
type serverConfig struct {
	// Cache settings.
	CacheEnabled       bool
	CacheMaxSize       int
	CacheFileTTL       time.Duration
	CacheURLTTL        time.Duration
	CacheContentTTL    time.Duration
	CacheSweepInterval time.Duration

	// Input limits.
	MaxInlineSize   int64
	AllowPrivateIPs bool

	// Generate tool defaults.
	Emitter         string
	PackageName     string
	TargetFramework string
	UseCsProj       bool
	Concurrency     int

	// OutputRoot, when set, confines output_dir to this directory.
	OutputRoot string
}

// cfg is the active server configuration, initialized at package load time.
var cfg = loadConfig()

// loadConfig reads configuration from OASDOTNET_* environment variables.
// Invalid values log a warning and fall back to the hardcoded default.
func loadConfig() *serverConfig {
	return &serverConfig{
		CacheEnabled:       envBool("OASDOTNET_CACHE_ENABLED", true),
		CacheMaxSize:       envInt("OASDOTNET_CACHE_MAX_SIZE", 10),
		CacheFileTTL:       envDuration("OASDOTNET_CACHE_FILE_TTL", 15*time.Minute),
		CacheURLTTL:        envDuration("OASDOTNET_CACHE_URL_TTL", 5*time.Minute),
		CacheContentTTL:    envDuration("OASDOTNET_CACHE_CONTENT_TTL", 15*time.Minute),
		CacheSweepInterval: envDuration("OASDOTNET_CACHE_SWEEP_INTERVAL", 60*time.Second),
		MaxInlineSize:      envInt64("OASDOTNET_MAX_INLINE_SIZE", 10*1024*1024),
		AllowPrivateIPs:    envBool("OASDOTNET_ALLOW_PRIVATE_IPS", false),
		Emitter:            envEmitter("OASDOTNET_EMITTER"),
		PackageName:        envString("OASDOTNET_PACKAGE_NAME", csharp.DefaultPackageName),
		TargetFramework:    envString("OASDOTNET_TARGET_FRAMEWORK", csharp.DefaultTargetFramework),
		UseCsProj:          envBool("OASDOTNET_USE_CSPROJ", false),
		Concurrency:        envInt("OASDOTNET_CONCURRENCY", runtime.NumCPU()),
		OutputRoot:         os.Getenv("OASDOTNET_OUTPUT_ROOT"),
	}
}

func envBool(key string, fallback bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		slog.Warn("invalid bool env var, using default", "key", key, "value", v, "default", fallback) //nolint:gosec // G706: values are structured log fields, not format strings
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
		slog.Warn("invalid int env var, using default", "key", key, "value", v, "default", fallback) //nolint:gosec // G706: values are structured log fields, not format strings
		return fallback
	}
	return n
}

func envInt64(key string, fallback int64) int64 {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil || n <= 0 {
		slog.Warn("invalid int env var, using default", "key", key, "value", v, "default", fallback) //nolint:gosec // G706: values are structured log fields, not format strings
		return fallback
	}
	return n
}

func envString(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

// envEmitter accepts only registered emitter names.
func envEmitter(key string) string {
	v := os.Getenv(key)
	if v == "" {
		return emitters.Default
	}
	if _, err := emitters.Lookup(v); err != nil {
		slog.Warn("unknown emitter env var, using default", "key", key, "value", v, "default", emitters.Default) //nolint:gosec // G706: values are structured log fields, not format strings
		return emitters.Default
	}
	return strings.ToLower(v)
}

func envDuration(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil || d <= 0 {
		slog.Warn("invalid duration env var, using default", "key", key, "value", v, "default", fallback) //nolint:gosec // G706: values are structured log fields, not format strings
		return fallback
	}
	return d
}
