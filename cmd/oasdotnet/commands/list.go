package commands

import (
	"io"

	"github.com/erraggy/oasdotnet/internal/cliutil"
	"github.com/erraggy/oasdotnet/internal/emitters"
)

// ListCmd prints the registered emitters.
type ListCmd struct{}

// Run is called by kong when the list command is executed.
func (c *ListCmd) Run(out io.Writer) error {
	names := emitters.Names()
	rows := make([][]string, 0, len(names))
	for _, name := range names {
		emitter, err := emitters.Lookup(name)
		if err != nil {
			return err
		}
		rows = append(rows, []string{emitter.Name(), string(emitter.Tag()), emitter.Help()})
	}
	cliutil.WriteTable(out, []string{"NAME", "TYPE", "DESCRIPTION"}, rows)
	return nil
}
