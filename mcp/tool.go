package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/viant/fluxor/runtime/execution"
	"github.com/viant/jsonrpc"
	mcpschema "github.com/viant/mcp-protocol/schema"
	serverproto "github.com/viant/mcp-protocol/server"

	"github.com/rhinomcp/grasshopper-mcp/internal/conv"
	"github.com/rhinomcp/grasshopper-mcp/mcp/tool"
)

// defaultToolTimeout bounds a single tool invocation scheduled on the
// workflow runtime.
const defaultToolTimeout = 15 * time.Minute

// Tools returns entries for every registered tool, ready to be installed
// into an MCP handler registry.
func (s *Service) Tools() serverproto.Tools {
	var result = make(serverproto.Tools, 0)
	for _, name := range s.ToolNames() {
		aTool, err := s.LookupTool(name)
		if err != nil {
			continue
		}
		result = append(result, aTool)
	}
	return result
}

// LookupTool returns a server tool entry for the given name with a handler
// that dispatches through ExecuteTool.
func (s *Service) LookupTool(name string) (*serverproto.ToolEntry, error) {
	if !s.mcpTools.Has(name) {
		return nil, fmt.Errorf("unknown tool: %v", name)
	}
	entry := s.mcpTools.Get(name)
	toolEntry := serverproto.ToolEntry{Metadata: entry.metadata}
	toolEntry.Handler = func(ctx context.Context, request *mcpschema.CallToolRequest) (*mcpschema.CallToolResult, *jsonrpc.Error) {
		output, err := s.ExecuteTool(ctx, request.Params.Name, request.Params.Arguments, defaultToolTimeout)
		res := &mcpschema.CallToolResult{}
		if err != nil {
			res.IsError = conv.Pointer[bool](true)
			res.Content = append(res.Content, mcpschema.CallToolResultContentElem{
				Type: "text",
				Text: err.Error(),
			})
			return res, nil
		}

		var data []byte
		switch actual := output.(type) {
		case string:
			data = []byte(actual)
		case []byte:
			data = actual
		default:
			data, _ = json.Marshal(output)
		}
		res.Content = append(res.Content, mcpschema.CallToolResultContentElem{
			Type: "text",
			Text: string(data),
		})
		return res, nil
	}
	return &toolEntry, nil
}

// ExecuteTool invokes a registered Fluxor action with the supplied arguments.
// Action-level failures come back as a JSON error document rather than a Go
// error so that MCP clients receive a well-formed tool result.
func (s *Service) ExecuteTool(ctx context.Context, name string, args map[string]interface{}, timeout time.Duration) (interface{}, error) {
	toolName := tool.Name(name)

	exec, err := execution.NewAtHocExecution(toolName.Service(), toolName.Method(), args)
	if err != nil {
		return "", err
	}

	waitFn, err := s.Workflow.Runtime.ScheduleExecution(ctx, exec)
	if err != nil {
		return "", err
	}

	anExec, err := waitFn(timeout)
	if err != nil {
		return "", err
	}

	if anExec.Error != "" {
		errorResponse, _ := json.Marshal(map[string]interface{}{"error": anExec.Error})
		return string(errorResponse), nil
	}
	return anExec.Output, nil
}
