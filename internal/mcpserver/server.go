// Package mcpserver implements an MCP (Model Context Protocol) server
// that exposes the oasdotnet emitters as MCP tools over stdio.
package mcpserver

import (
	"context"
	"fmt"
	"path/filepath"
	"regexp"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/erraggy/oasdotnet"
)

const serverInstructions = `oasdotnet MCP server — generates C# .NET Core client libraries from OpenAPI 2.0 and 3.x documents.

Configuration: All defaults are configurable via OASDOTNET_* environment variables set in your MCP client config. The Go MCP SDK does not support initializationOptions; use env vars instead.

Key settings:
- OASDOTNET_EMITTER (default: csharp-dotnet-core) — emitter used when a call names none
- OASDOTNET_PACKAGE_NAME (default: IO.Swagger) — default root namespace
- OASDOTNET_TARGET_FRAMEWORK (default: net8.0) — default target framework moniker
- OASDOTNET_USE_CSPROJ (default: false) — emit a .csproj by default
- OASDOTNET_OUTPUT_ROOT — when set, output_dir must stay inside this directory
- OASDOTNET_CACHE_FILE_TTL (default: 15m) — cache TTL for local file specs
- OASDOTNET_CACHE_URL_TTL (default: 5m) — cache TTL for URL-fetched specs
- OASDOTNET_CACHE_ENABLED (default: true) — disable spec caching entirely
- OASDOTNET_ALLOW_PRIVATE_IPS (default: false) — allow URL inputs on private networks

Caching: Parsed specs are cached per session. File entries use path+mtime as key (auto-invalidated on change). URL entries are cached with a shorter TTL. A background sweeper removes expired entries every 60s.

Workflow: call config_help to see the emitter's options, then generate with dry_run=true to preview the file list before writing.`

// Run starts the MCP server over stdio and blocks until the client disconnects
// or the context is cancelled.
func Run(ctx context.Context) error {
	if cfg.CacheEnabled {
		specCache.startSweeper(ctx, cfg.CacheSweepInterval)
	}

	server := mcp.NewServer(
		&mcp.Implementation{Name: "oasdotnet", Version: oasdotnet.Version()},
		&mcp.ServerOptions{
			Instructions: serverInstructions,
		},
	)
	registerAllTools(server)
	return server.Run(ctx, &mcp.StdioTransport{})
}

func registerAllTools(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "generate",
		Description: "Generate a C# .NET Core client library from an OpenAPI 2.0 or 3.x document. Every generated API method takes a trailing CancellationToken ct. Requires output_dir. Package options (package_name, package_version, client_package, target_framework, use_csproj, doc paths) map to the emitter's additional properties; anything else goes in properties. Use dry_run=true to get the manifest without writing files. Returns a manifest of generated files and any generation issues.",
	}, handleGenerate)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "config_help",
		Description: "Describe an emitter: its name, purpose, and the options it accepts with their defaults. Omit emitter to describe the default (csharp-dotnet-core).",
	}, handleConfigHelp)
}

// makeSlice returns nil when n is 0 (preserving omitempty JSON semantics),
// otherwise returns make([]T, 0, n) for pre-allocated appending.
func makeSlice[T any](n int) []T {
	if n == 0 {
		return nil
	}
	return make([]T, 0, n)
}

// sanitizeError strips absolute filesystem paths from error messages
// to prevent leaking internal directory structure to MCP clients.
var pathPattern = regexp.MustCompile(`(?:/(?:home|tmp|var|Users|etc|opt|usr|private|root|mnt|srv|run|snap|nix)[a-zA-Z0-9._/-]*)`)

func sanitizeError(err error) string {
	if err == nil {
		return ""
	}
	return pathPattern.ReplaceAllString(err.Error(), "<path>")
}

// errResult creates an MCP error result from an error.
func errResult(err error) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		IsError: true,
		Content: []mcp.Content{&mcp.TextContent{Text: sanitizeError(err)}},
	}
}

// resolveOutputDir applies OASDOTNET_OUTPUT_ROOT. Without a root the
// directory is used as given.
func resolveOutputDir(dir string) (string, error) {
	if dir == "" {
		return "", fmt.Errorf("output_dir is required")
	}
	if cfg.OutputRoot == "" {
		return dir, nil
	}
	root, err := filepath.Abs(cfg.OutputRoot)
	if err != nil {
		return "", fmt.Errorf("invalid output root: %w", err)
	}
	rel := dir
	if filepath.IsAbs(dir) {
		if rel, err = filepath.Rel(root, dir); err != nil {
			return "", fmt.Errorf("output_dir must be inside the configured output root")
		}
	}
	if !filepath.IsLocal(rel) {
		return "", fmt.Errorf("output_dir must be inside the configured output root")
	}
	return filepath.Join(root, rel), nil
}
