package commands

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/erraggy/oasdotnet/internal/mcpserver"
)

// MCPCmd runs the MCP server over stdio.
type MCPCmd struct{}

// Run is called by kong when the mcp command is executed. Logs go to stderr;
// stdout carries the protocol.
func (c *MCPCmd) Run(logger *slog.Logger) error {
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info("starting MCP server")
	return mcpserver.Run(ctx)
}
