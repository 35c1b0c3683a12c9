package mcpserver

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/erraggy/oasdotnet/codegen"
	"github.com/erraggy/oasdotnet/internal/emitters"
)

type configHelpInput struct {
	Emitter string `json:"emitter,omitempty" jsonschema:"Emitter name (default: csharp-dotnet-core)"`
}

type configHelpOutput struct {
	Emitter   string              `json:"emitter"`
	Help      string              `json:"help"`
	Tag       string              `json:"tag"`
	Options   []codegen.CliOption `json:"options"`
	Available []string            `json:"available"`
}

func handleConfigHelp(_ context.Context, _ *mcp.CallToolRequest, input configHelpInput) (*mcp.CallToolResult, configHelpOutput, error) {
	name := input.Emitter
	if name == "" {
		name = cfg.Emitter
	}
	emitter, err := emitters.Lookup(name)
	if err != nil {
		return errResult(err), configHelpOutput{}, nil
	}

	return nil, configHelpOutput{
		Emitter:   emitter.Name(),
		Help:      emitter.Help(),
		Tag:       string(emitter.Tag()),
		Options:   emitter.CliOptions(),
		Available: emitters.Names(),
	}, nil
}
