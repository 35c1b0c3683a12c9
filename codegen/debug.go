package codegen

import (
	"io"

	"github.com/davecgh/go-spew/spew"
)

var dumpConfig = spew.ConfigState{
	Indent:                  "  ",
	DisablePointerAddresses: true,
	DisableCapacities:       true,
	DisableMethods:          true,
	SortKeys:                true,
}

// dumpGraph writes the processed graph to the debug writers, if any.
func (g *Generator) dumpGraph(groups []*APIGroup, models []*Model) {
	dump(g.DebugOperations, groups)
	dump(g.DebugModels, models)
}

func dump(w io.Writer, v any) {
	if w != nil {
		dumpConfig.Fdump(w, v)
	}
}
