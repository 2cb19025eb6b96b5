// Package connection exposes wire management between components as Fluxor
// actions, including the deterministic input-port assignment for binary
// arithmetic targets.
package connection

import (
	"context"
	"reflect"

	"github.com/rhinomcp/grasshopper-mcp/grasshopper"
	"github.com/rhinomcp/grasshopper-mcp/internal/conv"
	"github.com/rhinomcp/grasshopper-mcp/service/action"
)

const serviceName = "grasshopper/connection"

type service struct {
	client *grasshopper.Client
}

// ConnectInput wires a source component output to a target component input.
// When neither target param nor index is given and the target is a binary
// arithmetic component, the bridge picks the first free canonical port.
type ConnectInput struct {
	SourceID         string  `json:"sourceId" description:"Source component identifier (output side)"`
	TargetID         string  `json:"targetId" description:"Target component identifier (input side)"`
	SourceParam      *string `json:"sourceParam,omitempty" description:"Source parameter name"`
	TargetParam      *string `json:"targetParam,omitempty" description:"Target parameter name"`
	SourceParamIndex *int    `json:"sourceParamIndex,omitempty" description:"Source parameter index, used when no name is given"`
	TargetParamIndex *int    `json:"targetParamIndex,omitempty" description:"Target parameter index, used when no name is given"`
}

// ValidateInput checks whether a connection is possible without creating it.
type ValidateInput struct {
	SourceID    string  `json:"sourceId" description:"Source component identifier"`
	TargetID    string  `json:"targetId" description:"Target component identifier"`
	SourceParam *string `json:"sourceParam,omitempty" description:"Source parameter name"`
	TargetParam *string `json:"targetParam,omitempty" description:"Target parameter name"`
}

// New builds the connection action service.
func New(client *grasshopper.Client) *action.Base {
	s := &service{client: client}
	responseType := reflect.TypeOf(&grasshopper.Response{})
	return action.NewBase(serviceName, []action.Definition{
		{
			Name:        "connect",
			Description: "Connect two components, assigning a free input port on arithmetic targets",
			Input:       reflect.TypeOf(&ConnectInput{}),
			Output:      responseType,
			Handler:     s.connect,
		},
		{
			Name:        "validate",
			Description: "Validate whether a connection between two components is possible",
			Input:       reflect.TypeOf(&ValidateInput{}),
			Output:      responseType,
			Handler:     s.validate,
		},
		{
			Name:        "list",
			Description: "List all connections between components in the current document",
			Input:       reflect.TypeOf(&struct{}{}),
			Output:      responseType,
			Handler:     s.list,
		},
	})
}

func (s *service) connect(ctx context.Context, input interface{}) (interface{}, error) {
	in := input.(*ConnectInput)

	targetParam, targetIndex := in.TargetParam, in.TargetParamIndex
	if targetParam == nil && targetIndex == nil {
		// Read the target's type and existing inbound wires first. Another
		// actor may mutate the graph between this read and the write below;
		// the bridge holds no lock, so the assignment is best-effort.
		if targetType, ok := s.targetType(ctx, in.TargetID); ok {
			assignment := grasshopper.ResolveTargetPort(targetType, in.TargetID, s.connections(ctx), nil, nil)
			targetParam, targetIndex = assignment.Param, assignment.ParamIndex
		}
	}

	params := map[string]interface{}{
		"sourceId": in.SourceID,
		"targetId": in.TargetID,
	}
	if in.SourceParam != nil {
		params["sourceParam"] = *in.SourceParam
	} else if in.SourceParamIndex != nil {
		params["sourceParamIndex"] = *in.SourceParamIndex
	}
	if targetParam != nil {
		params["targetParam"] = *targetParam
	} else if targetIndex != nil {
		params["targetParamIndex"] = *targetIndex
	}
	return s.client.Exchange(ctx, grasshopper.OpConnectComponents, params), nil
}

func (s *service) validate(ctx context.Context, input interface{}) (interface{}, error) {
	in := input.(*ValidateInput)
	params := map[string]interface{}{
		"sourceId": in.SourceID,
		"targetId": in.TargetID,
	}
	if in.SourceParam != nil {
		params["sourceParam"] = *in.SourceParam
	}
	if in.TargetParam != nil {
		params["targetParam"] = *in.TargetParam
	}
	return s.client.Exchange(ctx, grasshopper.OpValidateConnection, params), nil
}

func (s *service) list(ctx context.Context, _ interface{}) (interface{}, error) {
	return s.client.Exchange(ctx, grasshopper.OpGetConnections, nil), nil
}

func (s *service) targetType(ctx context.Context, id string) (string, bool) {
	response := s.client.Exchange(ctx, grasshopper.OpGetComponentInfo, map[string]interface{}{"id": id})
	data, ok := action.ResultMap(response)
	if !ok {
		return "", false
	}
	targetType := action.String(data, "type", "")
	return targetType, targetType != ""
}

func (s *service) connections(ctx context.Context) []grasshopper.Connection {
	response := s.client.Exchange(ctx, grasshopper.OpGetConnections, nil)
	if !response.Success {
		return nil
	}
	var connections []grasshopper.Connection
	if err := conv.Convert(response.Result, &connections); err != nil {
		return nil
	}
	return connections
}
