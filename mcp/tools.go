package mcp

import (
	"errors"
	"reflect"

	mcpschema "github.com/viant/mcp-protocol/schema"
	serverproto "github.com/viant/mcp-protocol/server"

	"github.com/rhinomcp/grasshopper-mcp/internal/conv"
	"github.com/rhinomcp/grasshopper-mcp/mcp/matcher"
	"github.com/rhinomcp/grasshopper-mcp/mcp/tool"
	"github.com/rhinomcp/grasshopper-mcp/mcp/tool/conversion"
	"github.com/viant/fluxor/model/types"
)

// errMissingSignatureType marks signatures without reflectable input/output
// types; those fall back to the minimal input-only schema.
var errMissingSignatureType = errors.New("signature has no input/output type")

// toolEntry caches metadata for one MCP tool derived from a Fluxor action
// method. Handlers are built on demand by LookupTool so that every
// registration path shares the single ExecuteTool code path.
type toolEntry struct {
	name        string
	description string
	metadata    mcpschema.Tool
}

// addToolEntries appends tool entries to the shared registry, skipping
// duplicates so that every registration path behaves consistently.
func (s *Service) addToolEntries(entries []toolEntry) {
	for _, e := range entries {
		if s.mcpTools.Has(e.name) {
			continue // keep first definition encountered
		}
		s.mcpTools.Set(e.name, e)
	}
}

// buildMcpToolRegistry converts every registered action method into a tool
// entry once during service bootstrap.
func (s *Service) buildMcpToolRegistry() {
	if s.Workflow.Service == nil {
		return
	}
	actions := s.Workflow.Service.Actions()
	for _, key := range actions.Services() {
		activeService := actions.Lookup(key)
		s.addToolEntries(serviceToToolEntries(activeService))
	}
}

// RegisterExtension adds a custom Fluxor service at runtime and surfaces its
// methods as MCP tools.
func (s *Service) RegisterExtension(svc types.Service) {
	s.Workflow.Service.Actions().Register(svc)
	s.addToolEntries(serviceToToolEntries(svc))
}

// MatchTools returns tool entries whose name satisfies pattern; "*" selects
// all, a slash-notation prefix such as "grasshopper/component/" selects a
// service family and a full tool name selects a single entry.
func (s *Service) MatchTools(pattern string) serverproto.Tools {
	all := s.Tools()
	if pattern == "*" {
		return all
	}
	var result = make(serverproto.Tools, 0)
	for _, entry := range all {
		name := tool.Name(entry.Metadata.Name)
		canonical := name.Service() + "/" + name.Method()
		if matcher.Match(pattern, entry.Metadata.Name) || matcher.Match(pattern, canonical) {
			result = append(result, entry)
		}
	}
	return result
}

// serviceToToolEntries converts a single Fluxor service to tool entries.
func serviceToToolEntries(svc types.Service) []toolEntry {
	entries := make([]toolEntry, 0, len(svc.Methods()))
	for _, sig := range svc.Methods() {
		toolName := tool.NewName(svc.Name(), sig.Name).String()
		var toolMeta mcpschema.Tool
		buildErr := errMissingSignatureType
		if sig.Input != nil && sig.Output != nil {
			toolMeta, buildErr = conversion.BuildSchema(&sig)
		}
		if buildErr != nil {
			// Fallback: derive only the input schema via reflection.
			var inputSchema mcpschema.ToolInputSchema
			if sig.Input != nil {
				var sample interface{}
				if sig.Input.Kind() == reflect.Pointer {
					sample = reflect.New(sig.Input.Elem()).Interface()
				} else {
					sample = reflect.New(sig.Input).Interface()
				}
				_ = inputSchema.Load(sample)
			}
			if inputSchema.Type == "" {
				inputSchema.Type = "object"
			}
			toolMeta = mcpschema.Tool{
				Name:        toolName,
				Description: &sig.Description,
				InputSchema: inputSchema,
			}
		} else {
			toolMeta.Name = toolName
			if toolMeta.Description == nil {
				toolMeta.Description = &sig.Description
			}
		}

		entries = append(entries, toolEntry{
			name:        toolMeta.Name,
			description: conv.Dereference[string](toolMeta.Description),
			metadata:    toolMeta,
		})
	}
	return entries
}
