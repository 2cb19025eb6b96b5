package mcp

import (
	"strings"

	"github.com/viant/fluxor/model/types"

	"github.com/rhinomcp/grasshopper-mcp/grasshopper"
	"github.com/rhinomcp/grasshopper-mcp/grasshopper/reference"
	"github.com/rhinomcp/grasshopper-mcp/service/action/component"
	"github.com/rhinomcp/grasshopper-mcp/service/action/connection"
	"github.com/rhinomcp/grasshopper-mcp/service/action/document"
	"github.com/rhinomcp/grasshopper-mcp/service/action/pattern"
	"github.com/rhinomcp/grasshopper-mcp/service/action/scripting"
)

// builtinDeps bundles the shared dependencies every built-in action service
// is constructed with.
type builtinDeps struct {
	client  *grasshopper.Client
	library *reference.Library
}

// builtinFactories lists all Grasshopper action services. The key must match
// the service name exposed by its implementation so that pattern matching is
// intuitive.
var builtinFactories = map[string]func(*builtinDeps) types.Service{
	"grasshopper/component":  func(d *builtinDeps) types.Service { return component.New(d.client, d.library) },
	"grasshopper/connection": func(d *builtinDeps) types.Service { return connection.New(d.client) },
	"grasshopper/document":   func(d *builtinDeps) types.Service { return document.New(d.client, d.library) },
	"grasshopper/pattern":    func(d *builtinDeps) types.Service { return pattern.New(d.client) },
	"grasshopper/script":     func(d *builtinDeps) types.Service { return scripting.New(d.client) },
}

// resolveBuiltinServices converts pattern(s) - "*" for all, prefix ending
// with "/" or exact name - into concrete service instances. Duplicate
// patterns are ignored.
func resolveBuiltinServices(patterns []string, deps *builtinDeps) []types.Service {
	selected := make(map[string]struct{})

	add := func(name string) {
		if _, ok := selected[name]; !ok {
			selected[name] = struct{}{}
		}
	}

	for _, p := range patterns {
		switch p {
		case "*":
			for n := range builtinFactories {
				add(n)
			}
		default:
			isPrefix := strings.HasSuffix(p, "/")
			for n := range builtinFactories {
				if (isPrefix && strings.HasPrefix(n, p)) || (!isPrefix && n == p) {
					add(n)
				}
			}
		}
	}

	out := make([]types.Service, 0, len(selected))
	for name := range selected {
		if factory := builtinFactories[name]; factory != nil {
			out = append(out, factory(deps))
		}
	}
	return out
}
