package main

import (
	"fmt"
	"io"
	"os"

	"github.com/alecthomas/kong"
	kongtoml "github.com/alecthomas/kong-toml"
	kongyaml "github.com/alecthomas/kong-yaml"

	"github.com/erraggy/oasdotnet/cmd/oasdotnet/commands"
	"github.com/erraggy/oasdotnet/internal/emitters"
	"github.com/erraggy/oasdotnet/internal/logging"
)

const description = "Generate C# .NET Core client libraries from OpenAPI 2.0 and 3.x documents."

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run parses args, executes the selected command and returns the exit code.
func run(args []string, stdout, stderr io.Writer) int {
	userCfg := findUserConfig(args)
	jsonPaths, yamlPaths, tomlPaths := configCandidatePaths(userCfg)
	if userCfg != "" {
		if err := checkUserConfig(userCfg); err != nil {
			_, _ = fmt.Fprintf(stderr, "Error: %v\n", err)
			return 1
		}
	}

	var cli commands.CLI
	parser, err := kong.New(&cli,
		kong.Name("oasdotnet"),
		kong.Description(description),
		kong.UsageOnError(),
		kong.Writers(stdout, stderr),
		kong.Vars{"default_emitter": emitters.Default},
		// Flags and env override config values.
		kong.Configuration(kong.JSON, jsonPaths...),
		kong.Configuration(kongyaml.Loader, yamlPaths...),
		kong.Configuration(kongtoml.Loader, tomlPaths...),
	)
	if err != nil {
		_, _ = fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}

	ctx, err := parser.Parse(args)
	if err != nil {
		_, _ = fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}

	logger, closer, err := logging.Setup(cli.Log.Level, cli.Log.File)
	if err != nil {
		_, _ = fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	defer func() { _ = closer.Close() }()

	ctx.Bind(logger)
	ctx.BindTo(stdout, (*io.Writer)(nil))

	if err := ctx.Run(); err != nil {
		_, _ = fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}
