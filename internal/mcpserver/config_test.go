package mcpserver

import (
	"runtime"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/erraggy/oasdotnet/csharp"
)

// clearOASDOTNETEnv clears all OASDOTNET_* env vars to isolate tests from the ambient environment.
func clearOASDOTNETEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"OASDOTNET_CACHE_ENABLED", "OASDOTNET_CACHE_MAX_SIZE",
		"OASDOTNET_CACHE_FILE_TTL", "OASDOTNET_CACHE_URL_TTL",
		"OASDOTNET_CACHE_CONTENT_TTL", "OASDOTNET_CACHE_SWEEP_INTERVAL",
		"OASDOTNET_MAX_INLINE_SIZE", "OASDOTNET_ALLOW_PRIVATE_IPS",
		"OASDOTNET_EMITTER", "OASDOTNET_PACKAGE_NAME",
		"OASDOTNET_TARGET_FRAMEWORK", "OASDOTNET_USE_CSPROJ",
		"OASDOTNET_CONCURRENCY", "OASDOTNET_OUTPUT_ROOT",
	} {
		t.Setenv(key, "")
	}
}

func TestLoadConfig_Defaults(t *testing.T) {
	clearOASDOTNETEnv(t)

	c := loadConfig()

	assert.True(t, c.CacheEnabled)
	assert.Equal(t, 10, c.CacheMaxSize)
	assert.Equal(t, 15*time.Minute, c.CacheFileTTL)
	assert.Equal(t, 5*time.Minute, c.CacheURLTTL)
	assert.Equal(t, 15*time.Minute, c.CacheContentTTL)
	assert.Equal(t, 60*time.Second, c.CacheSweepInterval)
	assert.Equal(t, int64(10*1024*1024), c.MaxInlineSize)
	assert.False(t, c.AllowPrivateIPs)
	assert.Equal(t, csharp.Name, c.Emitter)
	assert.Equal(t, "IO.Swagger", c.PackageName)
	assert.Equal(t, "net8.0", c.TargetFramework)
	assert.False(t, c.UseCsProj)
	assert.Equal(t, runtime.NumCPU(), c.Concurrency)
	assert.Empty(t, c.OutputRoot)
}

func TestLoadConfig_EnvOverrides(t *testing.T) {
	clearOASDOTNETEnv(t)
	t.Setenv("OASDOTNET_CACHE_ENABLED", "false")
	t.Setenv("OASDOTNET_CACHE_MAX_SIZE", "50")
	t.Setenv("OASDOTNET_CACHE_FILE_TTL", "30m")
	t.Setenv("OASDOTNET_CACHE_URL_TTL", "2m")
	t.Setenv("OASDOTNET_CACHE_CONTENT_TTL", "10m")
	t.Setenv("OASDOTNET_CACHE_SWEEP_INTERVAL", "30s")
	t.Setenv("OASDOTNET_MAX_INLINE_SIZE", "5242880")
	t.Setenv("OASDOTNET_ALLOW_PRIVATE_IPS", "true")
	t.Setenv("OASDOTNET_EMITTER", "CSharp-DotNet-Core")
	t.Setenv("OASDOTNET_PACKAGE_NAME", "Acme.Pets")
	t.Setenv("OASDOTNET_TARGET_FRAMEWORK", "net6.0")
	t.Setenv("OASDOTNET_USE_CSPROJ", "true")
	t.Setenv("OASDOTNET_CONCURRENCY", "3")
	t.Setenv("OASDOTNET_OUTPUT_ROOT", "/srv/out")

	c := loadConfig()

	assert.False(t, c.CacheEnabled)
	assert.Equal(t, 50, c.CacheMaxSize)
	assert.Equal(t, 30*time.Minute, c.CacheFileTTL)
	assert.Equal(t, 2*time.Minute, c.CacheURLTTL)
	assert.Equal(t, 10*time.Minute, c.CacheContentTTL)
	assert.Equal(t, 30*time.Second, c.CacheSweepInterval)
	assert.Equal(t, int64(5242880), c.MaxInlineSize)
	assert.True(t, c.AllowPrivateIPs)
	assert.Equal(t, csharp.Name, c.Emitter)
	assert.Equal(t, "Acme.Pets", c.PackageName)
	assert.Equal(t, "net6.0", c.TargetFramework)
	assert.True(t, c.UseCsProj)
	assert.Equal(t, 3, c.Concurrency)
	assert.Equal(t, "/srv/out", c.OutputRoot)
}

func TestLoadConfig_InvalidValues_UseDefaults(t *testing.T) {
	clearOASDOTNETEnv(t)
	t.Setenv("OASDOTNET_CACHE_MAX_SIZE", "banana")
	t.Setenv("OASDOTNET_CACHE_FILE_TTL", "not-a-duration")
	t.Setenv("OASDOTNET_CACHE_ENABLED", "maybe")
	t.Setenv("OASDOTNET_MAX_INLINE_SIZE", "abc")
	t.Setenv("OASDOTNET_CONCURRENCY", "-5")
	t.Setenv("OASDOTNET_EMITTER", "typo")
	t.Setenv("OASDOTNET_PACKAGE_NAME", "   ")

	c := loadConfig()

	assert.True(t, c.CacheEnabled)
	assert.Equal(t, 10, c.CacheMaxSize)
	assert.Equal(t, 15*time.Minute, c.CacheFileTTL)
	assert.Equal(t, int64(10*1024*1024), c.MaxInlineSize)
	assert.Equal(t, runtime.NumCPU(), c.Concurrency)
	assert.Equal(t, csharp.Name, c.Emitter, "unknown emitter should fall back to the default")
	assert.Equal(t, "IO.Swagger", c.PackageName)
}

func TestLoadConfig_PartialOverrides(t *testing.T) {
	clearOASDOTNETEnv(t)
	t.Setenv("OASDOTNET_TARGET_FRAMEWORK", "net7.0")
	t.Setenv("OASDOTNET_CACHE_URL_TTL", "10m")

	c := loadConfig()

	assert.Equal(t, "net7.0", c.TargetFramework)
	assert.Equal(t, 10*time.Minute, c.CacheURLTTL)
	assert.Equal(t, 15*time.Minute, c.CacheFileTTL)
	assert.True(t, c.CacheEnabled)
	assert.Equal(t, "IO.Swagger", c.PackageName)
}
