package commands

import (
	"io"

	"github.com/erraggy/oasdotnet/codegen"
	"github.com/erraggy/oasdotnet/internal/cliutil"
	"github.com/erraggy/oasdotnet/internal/emitters"
)

// ConfigHelpCmd prints the options an emitter accepts.
type ConfigHelpCmd struct {
	Lang   string `short:"l" default:"${default_emitter}" help:"Emitter name (see 'list')." env:"OASDOTNET_LANG"`
	Format string `short:"f" default:"text" enum:"text,json,yaml" help:"Output format: text, json or yaml."`
}

type configHelp struct {
	Emitter string              `json:"emitter" yaml:"emitter"`
	Help    string              `json:"help" yaml:"help"`
	Options []codegen.CliOption `json:"options" yaml:"options"`
}

// Run is called by kong when the config-help command is executed.
func (c *ConfigHelpCmd) Run(out io.Writer) error {
	emitter, err := emitters.Lookup(c.Lang)
	if err != nil {
		return err
	}
	help := configHelp{Emitter: emitter.Name(), Help: emitter.Help(), Options: emitter.CliOptions()}

	if c.Format != FormatText && c.Format != "" {
		return OutputStructured(out, help, c.Format)
	}

	cliutil.Writef(out, "%s: %s\n\nCONFIG OPTIONS\n", help.Emitter, help.Help)
	rows := make([][]string, 0, len(help.Options))
	for _, o := range help.Options {
		rows = append(rows, []string{o.Name, o.Description, o.Default})
	}
	cliutil.WriteTable(out, []string{"OPTION", "DESCRIPTION", "DEFAULT"}, rows)
	return nil
}
