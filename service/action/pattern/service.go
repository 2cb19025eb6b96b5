// Package pattern exposes high-level pattern creation and discovery as
// Fluxor actions. The peer owns the pattern catalog; the bridge only relays
// descriptions and queries.
package pattern

import (
	"context"
	"reflect"

	"github.com/rhinomcp/grasshopper-mcp/grasshopper"
	"github.com/rhinomcp/grasshopper-mcp/service/action"
)

const serviceName = "grasshopper/pattern"

type service struct {
	client *grasshopper.Client
}

// CreateInput describes the pattern to build on the canvas.
type CreateInput struct {
	Description string `json:"description" description:"High-level description of what to create, e.g. '3D voronoi cube'"`
}

// ListInput narrows the available pattern listing.
type ListInput struct {
	Query string `json:"query" description:"Query to search for patterns"`
}

// New builds the pattern action service.
func New(client *grasshopper.Client) *action.Base {
	s := &service{client: client}
	responseType := reflect.TypeOf(&grasshopper.Response{})
	return action.NewBase(serviceName, []action.Definition{
		{
			Name:        "create",
			Description: "Create a pattern of components from a high-level description",
			Input:       reflect.TypeOf(&CreateInput{}),
			Output:      responseType,
			Handler:     s.create,
		},
		{
			Name:        "list",
			Description: "List available patterns matching a query",
			Input:       reflect.TypeOf(&ListInput{}),
			Output:      responseType,
			Handler:     s.list,
		},
	})
}

func (s *service) create(ctx context.Context, input interface{}) (interface{}, error) {
	in := input.(*CreateInput)
	return s.client.Exchange(ctx, grasshopper.OpCreatePattern, map[string]interface{}{
		"description": in.Description,
	}), nil
}

func (s *service) list(ctx context.Context, input interface{}) (interface{}, error) {
	in := input.(*ListInput)
	return s.client.Exchange(ctx, grasshopper.OpGetAvailablePatterns, map[string]interface{}{
		"query": in.Query,
	}), nil
}
