// Package document exposes document lifecycle operations and the aggregated
// canvas status as Fluxor actions.
package document

import (
	"context"
	"fmt"
	"reflect"

	"github.com/rhinomcp/grasshopper-mcp/grasshopper"
	"github.com/rhinomcp/grasshopper-mcp/grasshopper/reference"
	"github.com/rhinomcp/grasshopper-mcp/service/action"
)

const serviceName = "grasshopper/document"

type service struct {
	client  *grasshopper.Client
	library *reference.Library
}

// PathInput addresses a document file on the peer's machine.
type PathInput struct {
	Path string `json:"path" description:"Document path"`
}

// StatusOutput aggregates document info, component summaries, connections and
// static guidance into one canvas overview.
type StatusOutput struct {
	Status          string                    `json:"status"`
	Document        interface{}               `json:"document"`
	Components      []ComponentSummary        `json:"components"`
	Connections     interface{}               `json:"connections"`
	ComponentHints  map[string]reference.Hint `json:"componentHints"`
	Recommendations []string                  `json:"recommendations"`
	CanvasSummary   string                    `json:"canvasSummary"`
}

// ComponentSummary condenses one component for the status overview.
type ComponentSummary struct {
	ID       string                 `json:"id"`
	Type     string                 `json:"type"`
	Position Position               `json:"position"`
	Settings map[string]interface{} `json:"settings,omitempty"`
}

// Position is a canvas coordinate pair.
type Position struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// New builds the document action service.
func New(client *grasshopper.Client, library *reference.Library) *action.Base {
	s := &service{client: client, library: library}
	responseType := reflect.TypeOf(&grasshopper.Response{})
	emptyType := reflect.TypeOf(&struct{}{})
	return action.NewBase(serviceName, []action.Definition{
		{
			Name:        "clear",
			Description: "Clear the Grasshopper document",
			Input:       emptyType,
			Output:      responseType,
			Handler: func(ctx context.Context, _ interface{}) (interface{}, error) {
				return s.client.Exchange(ctx, grasshopper.OpClearDocument, nil), nil
			},
		},
		{
			Name:        "save",
			Description: "Save the Grasshopper document",
			Input:       reflect.TypeOf(&PathInput{}),
			Output:      responseType,
			Handler:     s.save,
		},
		{
			Name:        "load",
			Description: "Load a Grasshopper document",
			Input:       reflect.TypeOf(&PathInput{}),
			Output:      responseType,
			Handler:     s.load,
		},
		{
			Name:        "info",
			Description: "Get information about the Grasshopper document",
			Input:       emptyType,
			Output:      responseType,
			Handler: func(ctx context.Context, _ interface{}) (interface{}, error) {
				return s.client.Exchange(ctx, grasshopper.OpGetDocumentInfo, nil), nil
			},
		},
		{
			Name:        "status",
			Description: "Summarize the canvas: document info, components, connections and usage hints",
			Input:       emptyType,
			Output:      reflect.TypeOf(&StatusOutput{}),
			Handler:     s.status,
		},
	})
}

func (s *service) save(ctx context.Context, input interface{}) (interface{}, error) {
	in := input.(*PathInput)
	return s.client.Exchange(ctx, grasshopper.OpSaveDocument, map[string]interface{}{"path": in.Path}), nil
}

func (s *service) load(ctx context.Context, input interface{}) (interface{}, error) {
	in := input.(*PathInput)
	return s.client.Exchange(ctx, grasshopper.OpLoadDocument, map[string]interface{}{"path": in.Path}), nil
}

func (s *service) status(ctx context.Context, _ interface{}) (interface{}, error) {
	out := &StatusOutput{
		Status:          "Connected to Grasshopper",
		ComponentHints:  s.library.Hints(),
		Recommendations: s.library.Tips(),
		Components:      []ComponentSummary{},
	}

	docInfo := s.client.Exchange(ctx, grasshopper.OpGetDocumentInfo, nil)
	if !docInfo.Success {
		out.Status = fmt.Sprintf("Error: %s", docInfo.Error)
		return out, nil
	}
	out.Document = docInfo.Result

	components := s.client.Exchange(ctx, grasshopper.OpGetAllComponents, nil)
	if items, ok := action.ResultSlice(components); ok {
		for _, item := range items {
			component, ok := item.(map[string]interface{})
			if !ok {
				continue
			}
			summary := ComponentSummary{
				ID:   action.String(component, "id", ""),
				Type: action.String(component, "type", ""),
				Position: Position{
					X: action.Number(component, "x", 0),
					Y: action.Number(component, "y", 0),
				},
			}
			if summary.Type == "Number Slider" {
				summary.Settings = map[string]interface{}{
					"min":      action.Number(component, "min", 0),
					"max":      action.Number(component, "max", 10),
					"value":    action.Number(component, "value", 5),
					"rounding": action.Number(component, "rounding", 0.1),
				}
			}
			out.Components = append(out.Components, summary)
		}
	}

	connections := s.client.Exchange(ctx, grasshopper.OpGetConnections, nil)
	connectionCount := 0
	if list, ok := action.ResultSlice(connections); ok {
		out.Connections = connections.Result
		connectionCount = len(list)
	}

	out.CanvasSummary = fmt.Sprintf("Current canvas has %d components and %d connections",
		len(out.Components), connectionCount)
	return out, nil
}
