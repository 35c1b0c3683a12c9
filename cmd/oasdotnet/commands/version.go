package commands

import (
	"io"

	"github.com/erraggy/oasdotnet"
	"github.com/erraggy/oasdotnet/internal/cliutil"
)

// VersionCmd prints version information.
type VersionCmd struct {
	Verbose bool `short:"v" help:"Include commit and Go version."`
}

// Run is called by kong when the version command is executed.
func (c *VersionCmd) Run(out io.Writer) error {
	if c.Verbose {
		cliutil.Writef(out, "%s", oasdotnet.BuildInfo())
		return nil
	}
	cliutil.Writef(out, "oasdotnet v%s\n", oasdotnet.Version())
	return nil
}
