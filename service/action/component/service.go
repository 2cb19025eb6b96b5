// Package component exposes canvas component operations (create, configure,
// inspect, search) as Fluxor actions backed by the Grasshopper client.
package component

import (
	"context"
	"reflect"
	"strings"

	"github.com/rhinomcp/grasshopper-mcp/grasshopper"
	"github.com/rhinomcp/grasshopper-mcp/grasshopper/reference"
	"github.com/rhinomcp/grasshopper-mcp/internal/conv"
	"github.com/rhinomcp/grasshopper-mcp/service/action"
)

const serviceName = "grasshopper/component"

type service struct {
	client  *grasshopper.Client
	library *reference.Library
}

// AddInput creates a component on the canvas. Free-form type names are
// resolved against the alias table before the command is sent.
type AddInput struct {
	Type  string   `json:"type" description:"Component type, free-form names like 'slider' or '+' are normalized"`
	X     float64  `json:"x" description:"X coordinate on the canvas"`
	Y     float64  `json:"y" description:"Y coordinate on the canvas"`
	Name  string   `json:"name,omitempty" description:"Optional component name"`
	Min   *float64 `json:"min,omitempty" description:"Minimum value for sliders"`
	Max   *float64 `json:"max,omitempty" description:"Maximum value for sliders"`
	Value *float64 `json:"value,omitempty" description:"Current value for sliders"`
}

// CreateSliderInput creates a Number Slider whose range is inferred from the
// target value when bounds are not supplied.
type CreateSliderInput struct {
	X           float64  `json:"x" description:"X coordinate on the canvas"`
	Y           float64  `json:"y" description:"Y coordinate on the canvas"`
	TargetValue float64  `json:"targetValue" description:"Value the slider needs to support"`
	Name        string   `json:"name,omitempty" description:"Optional slider name"`
	Min         *float64 `json:"min,omitempty" description:"Explicit minimum, overrides inference"`
	Max         *float64 `json:"max,omitempty" description:"Explicit maximum, overrides inference"`
}

// SetValueInput updates the value of a panel, slider or similar component.
type SetValueInput struct {
	ID    string `json:"id" description:"Component identifier"`
	Value string `json:"value" description:"New value"`
}

// IDInput addresses one component by its peer-assigned identifier.
type IDInput struct {
	ID string `json:"id" description:"Component identifier"`
}

// QueryInput carries a free-text search query.
type QueryInput struct {
	Query string `json:"query" description:"Search query"`
}

// TypeInput addresses one component kind by type name.
type TypeInput struct {
	ComponentType string `json:"componentType" description:"Component type name"`
}

// ReferenceInput looks up the static descriptor of a component kind.
type ReferenceInput struct {
	Name string `json:"name" description:"Canonical or free-form component name"`
}

// ReferenceOutput is the local library answer; Found is false when the kind
// is not documented.
type ReferenceOutput struct {
	Found     bool                 `json:"found"`
	Component *reference.Component `json:"component,omitempty"`
}

// New builds the component action service.
func New(client *grasshopper.Client, library *reference.Library) *action.Base {
	s := &service{client: client, library: library}
	responseType := reflect.TypeOf(&grasshopper.Response{})
	return action.NewBase(serviceName, []action.Definition{
		{
			Name:        "add",
			Description: "Add a component to the Grasshopper canvas",
			Input:       reflect.TypeOf(&AddInput{}),
			Output:      responseType,
			Handler:     s.add,
		},
		{
			Name:        "createSlider",
			Description: "Create a Number Slider with a range inferred from the target value",
			Input:       reflect.TypeOf(&CreateSliderInput{}),
			Output:      responseType,
			Handler:     s.createSlider,
		},
		{
			Name:        "setValue",
			Description: "Set the value of a component such as a panel or slider",
			Input:       reflect.TypeOf(&SetValueInput{}),
			Output:      responseType,
			Handler:     s.setValue,
		},
		{
			Name:        "info",
			Description: "Get detailed information about a component, enriched with reference data and connections",
			Input:       reflect.TypeOf(&IDInput{}),
			Output:      responseType,
			Handler:     s.info,
		},
		{
			Name:        "list",
			Description: "List all components in the current document with enriched details",
			Input:       reflect.TypeOf(&struct{}{}),
			Output:      responseType,
			Handler:     s.list,
		},
		{
			Name:        "search",
			Description: "Search available components by name or category",
			Input:       reflect.TypeOf(&QueryInput{}),
			Output:      responseType,
			Handler:     s.search,
		},
		{
			Name:        "parameters",
			Description: "List input and output parameters of a component type",
			Input:       reflect.TypeOf(&TypeInput{}),
			Output:      responseType,
			Handler:     s.parameters,
		},
		{
			Name:        "reference",
			Description: "Look up the static reference descriptor of a component kind",
			Input:       reflect.TypeOf(&ReferenceInput{}),
			Output:      reflect.TypeOf(&ReferenceOutput{}),
			Handler:     s.reference,
		},
	})
}

func (s *service) add(ctx context.Context, input interface{}) (interface{}, error) {
	in := input.(*AddInput)
	componentType := grasshopper.ResolveComponentName(in.Type)

	params := map[string]interface{}{
		"type": componentType,
		"x":    in.X,
		"y":    in.Y,
	}
	if in.Name != "" {
		params["name"] = in.Name
	}

	if strings.Contains(strings.ToLower(componentType), "slider") {
		if in.Min != nil {
			params["min"] = *in.Min
		}
		if in.Max != nil {
			params["max"] = *in.Max
		}
		if in.Value != nil {
			params["value"] = *in.Value
		}
		// Fill in bounds only when the caller supplied none; a single explicit
		// bound is passed through untouched.
		if in.Min == nil && in.Max == nil {
			min, max := grasshopper.AutoBounds(in.Value)
			params["min"], params["max"] = min, max
		}
	}
	return s.client.Exchange(ctx, grasshopper.OpAddComponent, params), nil
}

func (s *service) createSlider(ctx context.Context, input interface{}) (interface{}, error) {
	in := input.(*CreateSliderInput)
	r := grasshopper.InferRange(&in.TargetValue, in.Min, in.Max)
	params := map[string]interface{}{
		"type":     "Number Slider",
		"x":        in.X,
		"y":        in.Y,
		"min":      r.Min,
		"max":      r.Max,
		"value":    r.Value,
		"rounding": r.Rounding,
	}
	if in.Name != "" {
		params["name"] = in.Name
	}
	return s.client.Exchange(ctx, grasshopper.OpAddComponent, params), nil
}

func (s *service) setValue(ctx context.Context, input interface{}) (interface{}, error) {
	in := input.(*SetValueInput)
	return s.client.Exchange(ctx, grasshopper.OpSetComponentValue, map[string]interface{}{
		"id":    in.ID,
		"value": in.Value,
	}), nil
}

func (s *service) info(ctx context.Context, input interface{}) (interface{}, error) {
	in := input.(*IDInput)
	response := s.client.Exchange(ctx, grasshopper.OpGetComponentInfo, map[string]interface{}{"id": in.ID})
	data, ok := action.ResultMap(response)
	if !ok {
		return response, nil
	}

	s.mergeReference(data)
	s.ensureSliderSettings(data)

	// Attach every connection touching this component.
	if related := s.relatedConnections(ctx, in.ID); len(related) > 0 {
		data["connections"] = related
	}
	return response, nil
}

func (s *service) list(ctx context.Context, _ interface{}) (interface{}, error) {
	response := s.client.Exchange(ctx, grasshopper.OpGetAllComponents, nil)
	components, ok := action.ResultSlice(response)
	if !ok {
		return response, nil
	}

	connections := s.allConnections(ctx)
	for _, item := range components {
		component, ok := item.(map[string]interface{})
		if !ok {
			continue
		}
		s.mergeReference(component)

		id := action.String(component, "id", "")
		if related := filterConnections(connections, id); len(related) > 0 {
			component["connections"] = related
		}

		// Sliders additionally report their current settings, fetched per
		// component as the summary listing does not include them.
		if action.String(component, "type", "") == "Number Slider" && id != "" {
			info := s.client.Exchange(ctx, grasshopper.OpGetComponentInfo, map[string]interface{}{"id": id})
			if data, ok := action.ResultMap(info); ok {
				component["currentSettings"] = sliderSettings(data)
			}
		}
	}
	return response, nil
}

func (s *service) search(ctx context.Context, input interface{}) (interface{}, error) {
	in := input.(*QueryInput)
	return s.client.Exchange(ctx, grasshopper.OpSearchComponents, map[string]interface{}{"query": in.Query}), nil
}

func (s *service) parameters(ctx context.Context, input interface{}) (interface{}, error) {
	in := input.(*TypeInput)
	return s.client.Exchange(ctx, grasshopper.OpGetComponentParameters, map[string]interface{}{
		"componentType": grasshopper.ResolveComponentName(in.ComponentType),
	}), nil
}

func (s *service) reference(_ context.Context, input interface{}) (interface{}, error) {
	in := input.(*ReferenceInput)
	component, found := s.library.Lookup(grasshopper.ResolveComponentName(in.Name))
	return &ReferenceOutput{Found: found, Component: component}, nil
}

// mergeReference copies descriptor metadata from the static library into a
// component object returned by the peer.
func (s *service) mergeReference(component map[string]interface{}) {
	componentType := action.String(component, "type", "")
	if componentType == "" {
		return
	}
	descriptor, ok := s.library.Lookup(componentType)
	if !ok {
		return
	}
	if len(descriptor.Settings) > 0 {
		component["availableSettings"] = descriptor.Settings
	}
	if len(descriptor.Inputs) > 0 {
		component["inputDetails"] = descriptor.Inputs
	}
	if len(descriptor.Outputs) > 0 {
		component["outputDetails"] = descriptor.Outputs
	}
	if len(descriptor.UsageExamples) > 0 {
		component["usageExamples"] = descriptor.UsageExamples
	}
	if len(descriptor.CommonIssues) > 0 {
		component["commonIssues"] = descriptor.CommonIssues
	}
}

// ensureSliderSettings fills in the current slider configuration when the
// peer response does not carry one.
func (s *service) ensureSliderSettings(component map[string]interface{}) {
	if action.String(component, "type", "") != "Number Slider" {
		return
	}
	if _, ok := component["currentSettings"]; ok {
		return
	}
	component["currentSettings"] = sliderSettings(component)
}

func sliderSettings(component map[string]interface{}) map[string]interface{} {
	return map[string]interface{}{
		"min":      action.Number(component, "min", 0),
		"max":      action.Number(component, "max", 10),
		"value":    action.Number(component, "value", 5),
		"rounding": action.Number(component, "rounding", 0.1),
	}
}

func (s *service) allConnections(ctx context.Context) []grasshopper.Connection {
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

func (s *service) relatedConnections(ctx context.Context, id string) []grasshopper.Connection {
	return filterConnections(s.allConnections(ctx), id)
}

func filterConnections(connections []grasshopper.Connection, id string) []grasshopper.Connection {
	if id == "" {
		return nil
	}
	var related []grasshopper.Connection
	for _, conn := range connections {
		if conn.SourceID == id || conn.TargetID == id {
			related = append(related, conn)
		}
	}
	return related
}
