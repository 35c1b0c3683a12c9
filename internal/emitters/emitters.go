// Package emitters maps emitter names to constructors so the CLI and the MCP
// server can select a language emitter by name.
package emitters

import (
	"slices"
	"strings"
	"sync"

	"github.com/erraggy/oasdotnet/codegen"
	"github.com/erraggy/oasdotnet/csharp"
	"github.com/erraggy/oasdotnet/oaserrors"
)

// Factory returns a fresh emitter. Emitters carry per-run state, so every
// generation gets its own instance.
type Factory func() codegen.Config

// Default is the emitter used when none is named.
const Default = csharp.Name

var (
	registry   = make(map[string]Factory)
	registryMu sync.RWMutex
)

func init() {
	Register(csharp.Name, func() codegen.Config { return csharp.New() })
}

// Register adds an emitter under name. Names are case-insensitive; a later
// registration replaces an earlier one.
func Register(name string, f Factory) {
	registryMu.Lock()
	defer registryMu.Unlock()
	registry[strings.ToLower(name)] = f
}

// Lookup returns a new instance of the named emitter. An empty name selects Default.
func Lookup(name string) (codegen.Config, error) {
	if name == "" {
		name = Default
	}
	registryMu.RLock()
	f, ok := registry[strings.ToLower(name)]
	registryMu.RUnlock()
	if !ok {
		return nil, &oaserrors.ConfigError{
			Option:  "emitter",
			Value:   name,
			Message: "unknown emitter; available: " + strings.Join(Names(), ", "),
		}
	}
	return f(), nil
}

// Names returns the registered emitter names in sorted order.
func Names() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}
