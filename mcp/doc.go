// Package mcp wires together the Fluxor workflow engine with the MCP protocol
// implementation. Its central Service type loads configuration, builds the
// workflow runtime, registers the Grasshopper action services and exposes
// every action method as an MCP tool.
package mcp
