// Package commands provides the kong command tree for the oasdotnet CLI.
package commands

import (
	"encoding/json"
	"fmt"
	"io"

	"go.yaml.in/yaml/v4"
)

// Output format constants
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// Log holds the global logging flags.
type Log struct {
	Level string `help:"Log level: trace, debug, info, warn, error." default:"info" enum:"trace,debug,info,warn,error" env:"OASDOTNET_LOG_LEVEL"`
	File  string `help:"Also write logs to this file." type:"path" env:"OASDOTNET_LOG_FILE"`
}

// CLI is the root command structure for kong.
type CLI struct {
	Log    `embed:"" prefix:"log-"`
	Config string `help:"Configuration file (JSON, YAML or TOML) supplying flag defaults." type:"path" env:"OASDOTNET_CONFIG"`

	Generate   GenerateCmd   `cmd:"" help:"Generate a client library from an OpenAPI document."`
	ConfigHelp ConfigHelpCmd `cmd:"" name:"config-help" help:"Show the options an emitter accepts."`
	List       ListCmd       `cmd:"" help:"List the available emitters."`
	MCP        MCPCmd        `cmd:"" name:"mcp" help:"Run the MCP server over stdio."`
	Version    VersionCmd    `cmd:"" help:"Print version information."`
}

// OutputStructured writes data as indented JSON or YAML.
func OutputStructured(w io.Writer, data any, format string) error {
	var out []byte
	var err error

	switch format {
	case FormatJSON:
		out, err = json.MarshalIndent(data, "", "  ")
	case FormatYAML:
		out, err = yaml.Marshal(data)
	default:
		return fmt.Errorf("invalid format for structured output: %s", format)
	}
	if err != nil {
		return fmt.Errorf("marshaling to %s: %w", format, err)
	}

	_, err = fmt.Fprintln(w, string(out))
	return err
}
