// Package scripting exposes script component operations as Fluxor actions:
// creating script components, analyzing their code for parameter candidates
// and publishing a manual setup guide onto the canvas.
package scripting

import (
	"context"
	"reflect"

	"github.com/rhinomcp/grasshopper-mcp/grasshopper"
	"github.com/rhinomcp/grasshopper-mcp/grasshopper/script"
	"github.com/rhinomcp/grasshopper-mcp/service/action"
)

const serviceName = "grasshopper/script"

// guidePanelOffset places the setup guide panel to the right of the script
// component it documents.
const guidePanelOffset = 300.0

type service struct {
	client *grasshopper.Client
}

// ExecuteInput creates a script component carrying the supplied code. Script
// components require manual parameter configuration through the UI; the
// optional parameter specs are forwarded as guidance.
type ExecuteInput struct {
	Code     string         `json:"code" description:"The code to execute"`
	Language string         `json:"language,omitempty" description:"Programming language, python or csharp"`
	X        float64        `json:"x,omitempty" description:"X position for the component"`
	Y        float64        `json:"y,omitempty" description:"Y position for the component"`
	Inputs   []script.Param `json:"inputs,omitempty" description:"Intended input parameters"`
	Outputs  []script.Param `json:"outputs,omitempty" description:"Intended output parameters"`
}

// AnalyzeInput runs the lexical parameter analyzer without touching the peer.
type AnalyzeInput struct {
	Code     string `json:"code" description:"The code to analyze"`
	Language string `json:"language,omitempty" description:"Programming language, python or csharp"`
}

// SetupGuideInput generates a manual setup guide and displays it in a panel
// next to the script component.
type SetupGuideInput struct {
	ComponentID string         `json:"componentId" description:"Identifier of the script component"`
	Code        string         `json:"code" description:"The script code to analyze"`
	Language    string         `json:"language,omitempty" description:"Programming language, python or csharp"`
	Inputs      []script.Param `json:"inputs,omitempty" description:"Expected input parameters"`
	Outputs     []script.Param `json:"outputs,omitempty" description:"Expected output parameters"`
}

// New builds the script action service.
func New(client *grasshopper.Client) *action.Base {
	s := &service{client: client}
	responseType := reflect.TypeOf(&grasshopper.Response{})
	return action.NewBase(serviceName, []action.Definition{
		{
			Name:        "execute",
			Description: "Create a script component that executes python or csharp code",
			Input:       reflect.TypeOf(&ExecuteInput{}),
			Output:      responseType,
			Handler:     s.execute,
		},
		{
			Name:        "analyze",
			Description: "Analyze script code for candidate input and output variables",
			Input:       reflect.TypeOf(&AnalyzeInput{}),
			Output:      reflect.TypeOf(&script.Analysis{}),
			Handler:     s.analyze,
		},
		{
			Name:        "setupGuide",
			Description: "Generate a manual setup guide and display it in a panel next to the script component",
			Input:       reflect.TypeOf(&SetupGuideInput{}),
			Output:      responseType,
			Handler:     s.setupGuide,
		},
	})
}

func (s *service) execute(ctx context.Context, input interface{}) (interface{}, error) {
	in := input.(*ExecuteInput)
	params := map[string]interface{}{
		"code":     in.Code,
		"language": language(in.Language),
		"x":        in.X,
		"y":        in.Y,
	}
	if len(in.Inputs) > 0 {
		params["inputs"] = in.Inputs
	}
	if len(in.Outputs) > 0 {
		params["outputs"] = in.Outputs
	}
	return s.client.Exchange(ctx, grasshopper.OpExecuteCode, params), nil
}

func (s *service) analyze(_ context.Context, input interface{}) (interface{}, error) {
	in := input.(*AnalyzeInput)
	analysis := script.Analyze(in.Code, language(in.Language))
	return &analysis, nil
}

// setupGuide chains four exchanges: read the script component's position,
// create a panel next to it, fill the panel with the composed guide and wire
// the script to the panel. The first failing exchange short-circuits and its
// failure response is returned as-is.
func (s *service) setupGuide(ctx context.Context, input interface{}) (interface{}, error) {
	in := input.(*SetupGuideInput)
	lang := language(in.Language)

	info := s.client.Exchange(ctx, grasshopper.OpGetComponentInfo, map[string]interface{}{"id": in.ComponentID})
	position, ok := action.ResultMap(info)
	if !ok {
		return info, nil
	}
	x := action.Number(position, "x", 100)
	y := action.Number(position, "y", 100)

	analysis := script.Analyze(in.Code, lang)
	guide := script.ComposeGuide(lang, in.Inputs, in.Outputs, analysis)

	panel := s.client.Exchange(ctx, grasshopper.OpAddComponent, map[string]interface{}{
		"type":  "Panel",
		"x":     x + guidePanelOffset,
		"y":     y,
		"name":  "Setup Guide",
		"value": guide,
	})
	panelData, ok := action.ResultMap(panel)
	if !ok {
		return panel, nil
	}
	panelID := action.String(panelData, "id", "")

	set := s.client.Exchange(ctx, grasshopper.OpSetComponentValue, map[string]interface{}{
		"id":    panelID,
		"value": guide,
	})
	if !set.Success {
		return set, nil
	}

	// Wire the script to the panel so the guide is visually attached. A
	// failure here is not fatal - the guide already exists.
	_ = s.client.Exchange(ctx, grasshopper.OpConnectComponents, map[string]interface{}{
		"sourceId": in.ComponentID,
		"targetId": panelID,
	})
	return set, nil
}

func language(value string) string {
	if value == "" {
		return script.LanguagePython
	}
	return value
}
