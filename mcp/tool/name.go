// Package tool defines the naming convention that maps Fluxor action methods
// onto MCP tool names. Service paths use slashes internally; tool names
// replace them with underscores and join the method with a dash, e.g.
// "grasshopper/component" + "add" becomes "grasshopper_component-add".
package tool

import "strings"

// Name represents a tool name.
type Name string

// Service returns the slash-notation service part of the tool name.
func (t Name) Service() string {
	tool := string(t)
	if idx := strings.LastIndex(tool, "-"); idx != -1 {
		return strings.ReplaceAll(tool[:idx], "_", "/")
	}
	return tool
}

// Method returns the method part of the tool name.
func (t Name) Method() string {
	tool := string(t)
	if idx := strings.LastIndex(tool, "-"); idx != -1 {
		return tool[idx+1:]
	}
	return ""
}

func (t Name) String() string {
	return string(t)
}

// NewName builds a tool name from a service and method pair.
func NewName(service, method string) Name {
	return Name(strings.ReplaceAll(service, "/", "_") + "-" + method)
}
